package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/profile"
	"github.com/cmlabs-hris/career-gateway-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ProfileHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	DeleteResume(w http.ResponseWriter, r *http.Request)
}

type profileHandlerImpl struct {
	profileService profile.ProfileService
}

func NewProfileHandler(profileService profile.ProfileService) ProfileHandler {
	return &profileHandlerImpl{profileService: profileService}
}

// List handles GET /seeker/profile/{resource}
func (h *profileHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.profileService.List(r.Context(), chi.URLParam(r, "resource"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create handles POST /seeker/profile/{resource}
func (h *profileHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		slog.Error("Profile create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.profileService.Create(r.Context(), chi.URLParam(r, "resource"), body)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Profile entry created", result)
}

// DeleteResume handles DELETE /seeker/profile/resumes/{id}
func (h *profileHandlerImpl) DeleteResume(w http.ResponseWriter, r *http.Request) {
	if err := h.profileService.DeleteResume(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Resume deleted", nil)
}
