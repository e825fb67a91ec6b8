package response

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/attendance"
	"github.com/cmlabs-hris/career-gateway-go/internal/domain/content"
	"github.com/cmlabs-hris/career-gateway-go/internal/domain/employee"
	"github.com/cmlabs-hris/career-gateway-go/internal/domain/leave"
	"github.com/cmlabs-hris/career-gateway-go/internal/domain/meeting"
	"github.com/cmlabs-hris/career-gateway-go/internal/domain/profile"
	"github.com/cmlabs-hris/career-gateway-go/internal/domain/resume"
	"github.com/cmlabs-hris/career-gateway-go/internal/domain/session"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/storage"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/upstream"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A failed resume pipeline reports how far it got
	var pipelineErr *resume.PipelineError
	if errors.As(err, &pipelineErr) {
		details := map[string]string{
			"stage":       string(pipelineErr.Stage),
			"compensated": strconv.FormatBool(pipelineErr.Compensated),
		}
		if pipelineErr.ResumeID != "" {
			details["resume_id"] = pipelineErr.ResumeID
		}
		handleUpstream(w, pipelineErr.Err, details)
		return
	}

	switch {
	// Session errors
	case errors.Is(err, session.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, session.ErrSessionExpired),
		errors.Is(err, session.ErrUnauthorized):
		Unauthorized(w, "Session is missing or has expired")
	case errors.Is(err, session.ErrForbidden):
		Forbidden(w, "Access denied for this role")
	case errors.Is(err, session.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, session.ErrResumeNotFound):
		NotFound(w, "Primary resume not set")

	// Attendance and employee errors
	case errors.Is(err, attendance.ErrEmployeeNotFound),
		errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, attendance.ErrInvalidDate):
		ValidationError(w, map[string]string{"date": err.Error()})

	// Leave errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrRejectReasonRequired):
		ValidationError(w, map[string]string{"reason": err.Error()})

	// Portal errors
	case errors.Is(err, content.ErrUnknownKind):
		NotFound(w, "Unknown content listing")
	case errors.Is(err, profile.ErrUnknownResource):
		NotFound(w, "Unknown profile resource")
	case errors.Is(err, profile.ErrReadOnlyResource):
		Fail(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Profile resource is read-only", nil)
	case errors.Is(err, profile.ErrResumeNotFound):
		NotFound(w, "Resume not found")
	case errors.Is(err, meeting.ErrInvalidRedirect):
		ValidationError(w, map[string]string{"redirect": err.Error()})
	case errors.Is(err, storage.ErrFileNotFound):
		NotFound(w, "File not found")

	default:
		handleUpstream(w, err, nil)
	}
}

func handleUpstream(w http.ResponseWriter, err error, details map[string]string) {
	switch {
	case errors.Is(err, context.Canceled):
		// client went away, nobody reads the answer
		Fail(w, 499, "CLIENT_CLOSED_REQUEST", "Request cancelled", details)
	case errors.Is(err, upstream.ErrRejected):
		UpstreamRejected(w, upstream.Message(err), details)
	case errors.Is(err, upstream.ErrBadStatus):
		msg := upstream.Message(err)
		if msg == "" {
			msg = "Upstream service returned an error"
		}
		BadGateway(w, msg, details)
	case errors.Is(err, upstream.ErrUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		BadGateway(w, "Upstream service unavailable", details)
	case errors.Is(err, upstream.ErrMalformedResponse):
		BadGateway(w, "Upstream service returned a malformed response", details)
	case errors.Is(err, upstream.ErrEndpointUnresolved):
		BadGateway(w, "Upstream endpoint is not available", details)
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
