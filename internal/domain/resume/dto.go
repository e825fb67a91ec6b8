package resume

import (
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/validator"
)

type PipelineRequest struct {
	File           File
	RunATS         bool
	JobDescription string
}

func (r *PipelineRequest) Validate() error {
	var errs validator.ValidationErrors

	switch {
	case r.File.Content == nil || r.File.Size == 0:
		errs.Add("file", ErrFileRequired.Error())
	case r.File.Size > MaxFileSize:
		errs.Add("file", ErrFileTooLarge.Error())
	case !validator.HasExtension(r.File.Name, AllowedExtensions):
		errs.Add("file", ErrInvalidType.Error())
	}
	if r.RunATS && validator.IsEmpty(r.JobDescription) {
		errs.Add("job_description", "job_description is required to compute an ATS score")
	}

	return errs.Err()
}

type PipelineResponse struct {
	ResumeID string         `json:"resume_id"`
	FileURL  string         `json:"file_url,omitempty"`
	Stage    Stage          `json:"stage"`
	Parsed   map[string]any `json:"parsed,omitempty"`
	ATSScore *float64       `json:"ats_score,omitempty"`
	ATS      map[string]any `json:"ats,omitempty"`
	// ATSFailed is set when the resume was stored but scoring failed
	ATSFailed bool `json:"ats_failed,omitempty"`
}
