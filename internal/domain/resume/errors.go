package resume

import (
	"errors"
	"fmt"
)

var (
	ErrFileRequired = errors.New("resume file is required")
	ErrFileTooLarge = errors.New("resume file must not exceed 5MB")
	ErrInvalidType  = errors.New("resume file must be a pdf, doc or docx")
)

// PipelineError reports the stage a pipeline run failed at and whether the
// uploaded resume was cleaned up.
type PipelineError struct {
	Stage       Stage
	ResumeID    string
	Compensated bool
	Err         error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("resume pipeline failed at %s: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }
