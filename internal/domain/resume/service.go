package resume

import "context"

// ResumeService runs upload, parse, store and the optional ATS score as one
// call. A failure after the upload deletes the uploaded resume best-effort.
type ResumeService interface {
	RunPipeline(ctx context.Context, req PipelineRequest) (PipelineResponse, error)
}
