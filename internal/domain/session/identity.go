package session

import "context"

// Identity is the caller of a request, loaded from its session. It is read
// only: handlers and clients use the getters.
type Identity struct {
	sessionID     string
	role          Role
	subjectID     string
	name          string
	email         string
	upstreamToken string
}

// NewIdentity builds the identity of an active session.
func NewIdentity(s Session) Identity {
	return Identity{
		sessionID:     s.ID,
		role:          s.Role,
		subjectID:     s.SubjectID,
		name:          s.Name,
		email:         s.Email,
		upstreamToken: s.UpstreamToken,
	}
}

func (i Identity) SessionID() string     { return i.sessionID }
func (i Identity) Role() Role            { return i.role }
func (i Identity) SubjectID() string     { return i.subjectID }
func (i Identity) Name() string          { return i.name }
func (i Identity) Email() string         { return i.email }
func (i Identity) UpstreamToken() string { return i.upstreamToken }

// JobseekerID is the subject id of a seeker identity, "" otherwise.
func (i Identity) JobseekerID() string {
	if i.role != RoleSeeker {
		return ""
	}
	return i.subjectID
}

// Tenant is the realtime topic of an employer identity, "" otherwise.
func (i Identity) Tenant() string {
	if i.role != RoleEmployer && i.role != RoleAdmin {
		return ""
	}
	return "employer:" + i.subjectID
}

type identityKey struct{}

// WithIdentity returns a context carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext returns the identity of the request, if any.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
