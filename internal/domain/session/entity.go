package session

import (
	"time"
)

// Role is who a session belongs to.
type Role string

const (
	RoleSeeker   Role = "seeker"
	RoleEmployer Role = "employer"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleSeeker, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

// Session is a server-side login. UpstreamToken is the token issued by the
// external auth issuer; it is stored encrypted.
type Session struct {
	ID            string
	Role          Role
	SubjectID     string
	Name          string
	Email         string
	UpstreamToken string
	CreatedAt     time.Time
	ExpiresAt     time.Time
	RevokedAt     *time.Time
}

// ActiveAt reports whether the session can be used at t.
func (s Session) ActiveAt(t time.Time) bool {
	return s.RevokedAt == nil && t.Before(s.ExpiresAt)
}

// PrimaryResume is the resume a seeker marked as default.
type PrimaryResume struct {
	SeekerID  string
	ResumeID  string
	UpdatedAt time.Time
}
