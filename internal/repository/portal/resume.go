package portal

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/resume"
	"github.com/cmlabs-hris/career-gateway-go/internal/domain/session"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/coerce"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/upstream"
)

const (
	resumeUploadPath = "/api/resume/upload"
	resumeParsePath  = "/api/resume/parse"
	resumeStorePath  = "/api/resume/store-parsed-data"
	resumeATSPath    = "/api/resume/ats"
)

var errNoResumeID = errors.New("upload answer carries no resume id")

type resumeRepositoryImpl struct {
	client   *upstream.Client
	profiles *profileRepositoryImpl
}

func NewResumeRepository(client *upstream.Client) resume.ResumeRepository {
	return &resumeRepositoryImpl{client: client, profiles: &profileRepositoryImpl{client: client}}
}

// Upload implements resume.ResumeRepository.
func (r *resumeRepositoryImpl) Upload(ctx context.Context, id session.Identity, file resume.File) (resume.Uploaded, error) {
	payload, err := r.client.Do(ctx, upstream.Request{
		Method: http.MethodPost,
		Path:   resumeUploadPath,
		Form: &upstream.Multipart{
			Fields: map[string]string{"jobseeker_id": id.JobseekerID()},
			Files:  []upstream.FilePart{{Field: "file", FileName: file.Name, Content: file.Content}},
		},
		Credentials: credentials(id, authBearer),
	})
	if err != nil {
		return resume.Uploaded{}, fmt.Errorf("upload resume: %w", err)
	}

	obj := coerce.Single(payload, "resume")
	uploaded := resume.Uploaded{
		ResumeID: coerce.String(coerce.First(obj, "resume_id", "id", "resumeId")),
		FileURL:  coerce.String(coerce.First(obj, "file_url", "url", "fileUrl", "path")),
	}
	if uploaded.ResumeID == "" {
		return resume.Uploaded{}, fmt.Errorf("upload resume: %w: %w", upstream.ErrMalformedResponse, errNoResumeID)
	}
	return uploaded, nil
}

// Parse implements resume.ResumeRepository.
func (r *resumeRepositoryImpl) Parse(ctx context.Context, id session.Identity, uploaded resume.Uploaded) (map[string]any, error) {
	payload, err := r.client.Do(ctx, upstream.Request{
		Method:      http.MethodPost,
		Path:        resumeParsePath,
		Body:        map[string]any{"resume_id": uploaded.ResumeID, "file_url": uploaded.FileURL},
		Credentials: credentials(id, authBearer),
	})
	if err != nil {
		return nil, fmt.Errorf("parse resume %s: %w", uploaded.ResumeID, err)
	}
	parsed := coerce.Single(payload, "parsed_data", "parsed", "result")
	if parsed == nil {
		parsed = coerce.Object{}
	}
	return parsed, nil
}

// StoreParsed implements resume.ResumeRepository.
func (r *resumeRepositoryImpl) StoreParsed(ctx context.Context, id session.Identity, resumeID string, parsed map[string]any) error {
	_, err := r.client.Do(ctx, upstream.Request{
		Method: http.MethodPost,
		Path:   resumeStorePath,
		Body: map[string]any{
			"jobseeker_id": id.JobseekerID(),
			"resume_id":    resumeID,
			"parsed_data":  parsed,
		},
		Credentials: credentials(id, authBearer),
	})
	if err != nil {
		return fmt.Errorf("store parsed resume %s: %w", resumeID, err)
	}
	return nil
}

// Score implements resume.ResumeRepository.
func (r *resumeRepositoryImpl) Score(ctx context.Context, id session.Identity, resumeID, jobDescription string) (resume.Score, error) {
	payload, err := r.client.Do(ctx, upstream.Request{
		Method: http.MethodPost,
		Path:   resumeATSPath,
		Body: map[string]any{
			"jobseeker_id":    id.JobseekerID(),
			"resume_id":       resumeID,
			"job_description": jobDescription,
		},
		Credentials: credentials(id, authBoth),
	})
	if err != nil {
		return resume.Score{}, fmt.Errorf("score resume %s: %w", resumeID, err)
	}
	obj := coerce.Single(payload, "ats", "result")
	if obj == nil {
		obj = coerce.Object{}
	}
	return resume.Score{
		Score:   coerce.Number(coerce.First(obj, "score", "ats_score", "overall_score")),
		Details: obj,
	}, nil
}

// Delete implements resume.ResumeRepository through the profile endpoint.
func (r *resumeRepositoryImpl) Delete(ctx context.Context, id session.Identity, resumeID string) error {
	return r.profiles.DeleteResume(ctx, id, resumeID)
}
