package session

import (
	"context"
	"time"
)

// SessionRepository persists sessions.
type SessionRepository interface {
	Create(ctx context.Context, s Session) (Session, error)
	GetByID(ctx context.Context, id string) (Session, error)
	Revoke(ctx context.Context, id string, at time.Time) error
	// PurgeExpired deletes sessions that expired or were revoked before t
	PurgeExpired(ctx context.Context, before time.Time) (int64, error)
}

// PrimaryResumeRepository keeps one primary resume per seeker. Upsert is
// last-write-wins.
type PrimaryResumeRepository interface {
	Get(ctx context.Context, seekerID string) (PrimaryResume, error)
	Upsert(ctx context.Context, p PrimaryResume) (PrimaryResume, error)
}

// Grant is a successful login answer of the external auth issuer.
type Grant struct {
	SubjectID string
	Name      string
	Email     string
	Token     string
	ExpiresAt time.Time // zero when the issuer did not say
}

// Issuer authenticates credentials against the external auth issuer.
type Issuer interface {
	Login(ctx context.Context, role Role, email, password string) (Grant, error)
}
