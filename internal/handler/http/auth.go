package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/session"
	"github.com/cmlabs-hris/career-gateway-go/internal/handler/http/response"
)

type AuthHandler interface {
	SeekerLogin(w http.ResponseWriter, r *http.Request)
	EmployerLogin(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	sessionService session.SessionService
}

func NewAuthHandler(sessionService session.SessionService) AuthHandler {
	return &AuthHandlerImpl{sessionService: sessionService}
}

// SeekerLogin implements AuthHandler.
func (a *AuthHandlerImpl) SeekerLogin(w http.ResponseWriter, r *http.Request) {
	a.login(w, r, session.RoleSeeker)
}

// EmployerLogin implements AuthHandler.
func (a *AuthHandlerImpl) EmployerLogin(w http.ResponseWriter, r *http.Request) {
	a.login(w, r, session.RoleEmployer)
}

func (a *AuthHandlerImpl) login(w http.ResponseWriter, r *http.Request, role session.Role) {
	var req session.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Role = role

	tokenResponse, err := a.sessionService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", tokenResponse)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	id, ok := session.FromContext(r.Context())
	if !ok {
		response.HandleError(w, session.ErrUnauthorized)
		return
	}

	if err := a.sessionService.Logout(r.Context(), id.SessionID()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logout successful", nil)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	me, err := a.sessionService.Me(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, me)
}
