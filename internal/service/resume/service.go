package resume

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/resume"
	"github.com/cmlabs-hris/career-gateway-go/internal/domain/session"
)

const compensateTimeout = 10 * time.Second

type ResumeServiceImpl struct {
	repo resume.ResumeRepository
}

func NewResumeService(repo resume.ResumeRepository) resume.ResumeService {
	return &ResumeServiceImpl{repo: repo}
}

// RunPipeline implements resume.ResumeService. A scoring failure does not
// undo a stored resume; it is reported with ATSFailed.
func (s *ResumeServiceImpl) RunPipeline(ctx context.Context, req resume.PipelineRequest) (resume.PipelineResponse, error) {
	if err := req.Validate(); err != nil {
		return resume.PipelineResponse{}, err
	}
	id, ok := session.FromContext(ctx)
	if !ok {
		return resume.PipelineResponse{}, session.ErrUnauthorized
	}
	if id.JobseekerID() == "" {
		return resume.PipelineResponse{}, session.ErrForbidden
	}

	uploaded, err := s.repo.Upload(ctx, id, req.File)
	if err != nil {
		return resume.PipelineResponse{}, &resume.PipelineError{Stage: resume.StageUpload, Err: err}
	}
	resp := resume.PipelineResponse{
		ResumeID: uploaded.ResumeID,
		FileURL:  uploaded.FileURL,
		Stage:    resume.StageUpload,
	}
	slog.InfoContext(ctx, "Resume uploaded", "resume_id", uploaded.ResumeID, "jobseeker_id", id.JobseekerID())

	parsed, err := s.repo.Parse(ctx, id, uploaded)
	if err != nil {
		return resume.PipelineResponse{}, s.compensate(ctx, id, resume.StageParse, uploaded.ResumeID, err)
	}
	resp.Stage = resume.StageParse
	resp.Parsed = parsed

	if err := s.repo.StoreParsed(ctx, id, uploaded.ResumeID, parsed); err != nil {
		return resume.PipelineResponse{}, s.compensate(ctx, id, resume.StageStore, uploaded.ResumeID, err)
	}
	resp.Stage = resume.StageStore

	if !req.RunATS {
		return resp, nil
	}

	score, err := s.repo.Score(ctx, id, uploaded.ResumeID, req.JobDescription)
	if err != nil {
		slog.WarnContext(ctx, "Failed to score resume", "resume_id", uploaded.ResumeID, "error", err)
		resp.ATSFailed = true
		return resp, nil
	}
	resp.Stage = resume.StageATS
	resp.ATSScore = &score.Score
	resp.ATS = score.Details
	return resp, nil
}

// compensate deletes the uploaded resume after a failed stage so no orphan
// is left behind. The delete outlives a cancelled request.
func (s *ResumeServiceImpl) compensate(ctx context.Context, id session.Identity, stage resume.Stage, resumeID string, cause error) error {
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensateTimeout)
	defer cancel()

	pe := &resume.PipelineError{Stage: stage, ResumeID: resumeID, Err: cause}
	if err := s.repo.Delete(cctx, id, resumeID); err != nil {
		slog.ErrorContext(ctx, "Failed to delete orphaned resume", "resume_id", resumeID, "stage", stage, "error", err)
		return pe
	}
	pe.Compensated = true
	slog.WarnContext(ctx, "Resume pipeline failed, upload removed", "resume_id", resumeID, "stage", stage, "error", cause)
	return pe
}
