package resume

import (
	"context"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/session"
)

// ResumeRepository drives the resume endpoints of the portal backend, one
// method per pipeline stage.
type ResumeRepository interface {
	Upload(ctx context.Context, id session.Identity, file File) (Uploaded, error)
	Parse(ctx context.Context, id session.Identity, uploaded Uploaded) (map[string]any, error)
	StoreParsed(ctx context.Context, id session.Identity, resumeID string, parsed map[string]any) error
	Score(ctx context.Context, id session.Identity, resumeID, jobDescription string) (Score, error)
	Delete(ctx context.Context, id session.Identity, resumeID string) error
}
