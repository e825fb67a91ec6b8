package session

import "context"

// SessionService owns the identity lifecycle: set at login, cleared at
// logout, read-only in between.
type SessionService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Logout(ctx context.Context, sessionID string) error

	// Load returns the identity of an active session
	Load(ctx context.Context, sessionID string) (Identity, error)
	Me(ctx context.Context) (MeResponse, error)

	GetPrimaryResume(ctx context.Context) (PrimaryResumeResponse, error)
	SetPrimaryResume(ctx context.Context, req SetPrimaryResumeRequest) (PrimaryResumeResponse, error)

	// PurgeExpired removes expired and revoked sessions
	PurgeExpired(ctx context.Context) (int64, error)
}
