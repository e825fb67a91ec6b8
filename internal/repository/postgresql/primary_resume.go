package postgresql

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/session"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type primaryResumeRepositoryImpl struct {
	db *database.DB
}

func NewPrimaryResumeRepository(db *database.DB) session.PrimaryResumeRepository {
	return &primaryResumeRepositoryImpl{db: db}
}

// Get implements session.PrimaryResumeRepository.
func (r *primaryResumeRepositoryImpl) Get(ctx context.Context, seekerID string) (session.PrimaryResume, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT seeker_id, resume_id, updated_at
		FROM primary_resumes
		WHERE seeker_id = $1
	`
	var p session.PrimaryResume
	err := q.QueryRow(ctx, query, seekerID).Scan(&p.SeekerID, &p.ResumeID, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return session.PrimaryResume{}, session.ErrResumeNotFound
		}
		return session.PrimaryResume{}, err
	}
	return p, nil
}

// Upsert implements session.PrimaryResumeRepository. The latest write wins.
func (r *primaryResumeRepositoryImpl) Upsert(ctx context.Context, p session.PrimaryResume) (session.PrimaryResume, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO primary_resumes (seeker_id, resume_id, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (seeker_id) DO UPDATE
		SET resume_id = EXCLUDED.resume_id, updated_at = EXCLUDED.updated_at
		RETURNING seeker_id, resume_id, updated_at
	`
	var out session.PrimaryResume
	err := q.QueryRow(ctx, query, p.SeekerID, p.ResumeID, p.UpdatedAt.UTC()).Scan(&out.SeekerID, &out.ResumeID, &out.UpdatedAt)
	if err != nil {
		return session.PrimaryResume{}, err
	}
	return out, nil
}
