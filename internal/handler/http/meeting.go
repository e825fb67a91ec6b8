package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/meeting"
	"github.com/cmlabs-hris/career-gateway-go/internal/handler/http/response"
)

type MeetingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	LoginURL(w http.ResponseWriter, r *http.Request)
	LogoutURL(w http.ResponseWriter, r *http.Request)
}

type meetingHandlerImpl struct {
	meetingService meeting.MeetingService
}

func NewMeetingHandler(meetingService meeting.MeetingService) MeetingHandler {
	return &meetingHandlerImpl{meetingService: meetingService}
}

// Create handles POST /hr/meetings
func (h *meetingHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req meeting.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Meeting create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.meetingService.CreateEvent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Meeting scheduled", result)
}

// LoginURL handles GET /hr/meetings/login-url?redirect=
func (h *meetingHandlerImpl) LoginURL(w http.ResponseWriter, r *http.Request) {
	result, err := h.meetingService.LoginURL(r.Context(), r.URL.Query().Get("redirect"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// LogoutURL handles GET /hr/meetings/logout-url?redirect=
func (h *meetingHandlerImpl) LogoutURL(w http.ResponseWriter, r *http.Request) {
	result, err := h.meetingService.LogoutURL(r.Context(), r.URL.Query().Get("redirect"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
