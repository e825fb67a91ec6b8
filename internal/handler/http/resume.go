package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/resume"
	"github.com/cmlabs-hris/career-gateway-go/internal/domain/session"
	"github.com/cmlabs-hris/career-gateway-go/internal/handler/http/response"
)

// maxPipelineBody leaves room for the form fields around the file.
const maxPipelineBody = resume.MaxFileSize + 1<<20

type ResumeHandler interface {
	GetPrimary(w http.ResponseWriter, r *http.Request)
	SetPrimary(w http.ResponseWriter, r *http.Request)
	RunPipeline(w http.ResponseWriter, r *http.Request)
}

type resumeHandlerImpl struct {
	sessionService session.SessionService
	resumeService  resume.ResumeService
}

func NewResumeHandler(sessionService session.SessionService, resumeService resume.ResumeService) ResumeHandler {
	return &resumeHandlerImpl{
		sessionService: sessionService,
		resumeService:  resumeService,
	}
}

// GetPrimary handles GET /seeker/resumes/primary
func (h *resumeHandlerImpl) GetPrimary(w http.ResponseWriter, r *http.Request) {
	result, err := h.sessionService.GetPrimaryResume(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SetPrimary handles PUT /seeker/resumes/primary
func (h *resumeHandlerImpl) SetPrimary(w http.ResponseWriter, r *http.Request) {
	var req session.SetPrimaryResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetPrimary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.sessionService.SetPrimaryResume(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Primary resume updated", result)
}

// RunPipeline handles POST /seeker/resumes/pipeline (multipart: file,
// run_ats, job_description)
func (h *resumeHandlerImpl) RunPipeline(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPipelineBody)
	if err := r.ParseMultipartForm(maxPipelineBody); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.ValidationError(w, map[string]string{"file": resume.ErrFileTooLarge.Error()})
			return
		}
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}
	defer r.MultipartForm.RemoveAll()

	req := resume.PipelineRequest{
		RunATS:         getBoolFormValue(r, "run_ats"),
		JobDescription: r.FormValue("job_description"),
	}
	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		req.File = resume.File{
			Name:        header.Filename,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
			Content:     file,
		}
	case errors.Is(err, http.ErrMissingFile):
		// left empty, rejected by validation
	default:
		slog.Error("Failed to read uploaded file", "error", err)
		response.BadRequest(w, "Failed to read uploaded file", nil)
		return
	}

	result, err := h.resumeService.RunPipeline(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Resume processed", result)
}
