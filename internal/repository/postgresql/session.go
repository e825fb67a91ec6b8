package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/session"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/database"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/secret"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type sessionRepositoryImpl struct {
	db  *database.DB
	box *secret.Box
}

// NewSessionRepository stores sessions with the upstream token sealed by box.
// The session id is bound to the sealed token so rows cannot be swapped.
func NewSessionRepository(db *database.DB, box *secret.Box) session.SessionRepository {
	return &sessionRepositoryImpl{db: db, box: box}
}

// Create implements session.SessionRepository.
func (r *sessionRepositoryImpl) Create(ctx context.Context, s session.Session) (session.Session, error) {
	if s.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return session.Session{}, fmt.Errorf("generate session id: %w", err)
		}
		s.ID = id.String()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}

	sealed, err := r.box.Seal([]byte(s.UpstreamToken), []byte(s.ID))
	if err != nil {
		return session.Session{}, fmt.Errorf("seal upstream token: %w", err)
	}

	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO sessions (id, role, subject_id, name, email, upstream_token, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = q.Exec(ctx, query, s.ID, string(s.Role), s.SubjectID, s.Name, s.Email, sealed, s.CreatedAt.UTC(), s.ExpiresAt.UTC())
	if err != nil {
		return session.Session{}, err
	}
	return s, nil
}

// GetByID implements session.SessionRepository.
func (r *sessionRepositoryImpl) GetByID(ctx context.Context, id string) (session.Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return session.Session{}, session.ErrSessionNotFound
	}

	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, role, subject_id, name, email, upstream_token, created_at, expires_at, revoked_at
		FROM sessions
		WHERE id = $1
	`
	var (
		s      session.Session
		role   string
		sealed []byte
	)
	err := q.QueryRow(ctx, query, id).Scan(&s.ID, &role, &s.SubjectID, &s.Name, &s.Email, &sealed, &s.CreatedAt, &s.ExpiresAt, &s.RevokedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return session.Session{}, session.ErrSessionNotFound
		}
		return session.Session{}, err
	}
	s.Role = session.Role(role)

	token, err := r.box.Open(sealed, []byte(s.ID))
	if err != nil {
		return session.Session{}, fmt.Errorf("open upstream token of session %s: %w", s.ID, err)
	}
	s.UpstreamToken = string(token)
	return s, nil
}

// Revoke implements session.SessionRepository.
func (r *sessionRepositoryImpl) Revoke(ctx context.Context, id string, at time.Time) error {
	if _, err := uuid.Parse(id); err != nil {
		return session.ErrSessionNotFound
	}

	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE sessions
		SET revoked_at = $2
		WHERE id = $1 AND revoked_at IS NULL
	`
	tag, err := q.Exec(ctx, query, id, at.UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return session.ErrSessionNotFound
	}
	return nil
}

// PurgeExpired implements session.SessionRepository.
func (r *sessionRepositoryImpl) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM sessions
		WHERE expires_at < $1 OR revoked_at < $1
	`
	tag, err := q.Exec(ctx, query, before.UTC())
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
