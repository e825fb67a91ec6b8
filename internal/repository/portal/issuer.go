package portal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/session"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/coerce"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/upstream"
)

var loginPaths = map[session.Role]string{
	session.RoleSeeker:   "/api/seeker/login",
	session.RoleEmployer: "/api/employer/login",
}

var errNoToken = errors.New("login answer carries no token")

type issuerImpl struct {
	client *upstream.Client
	now    func() time.Time
}

// NewIssuer returns the login issuer of the portal backend.
func NewIssuer(client *upstream.Client) session.Issuer {
	return &issuerImpl{client: client, now: time.Now}
}

// Login implements session.Issuer. A 401 or a {"success": false} answer means
// the credentials were refused.
func (i *issuerImpl) Login(ctx context.Context, role session.Role, email, password string) (session.Grant, error) {
	path, ok := loginPaths[role]
	if !ok {
		return session.Grant{}, session.ErrInvalidRole
	}

	payload, err := i.client.Post(ctx, path, map[string]string{"email": email, "password": password})
	if err != nil {
		var se *upstream.StatusError
		if errors.Is(err, upstream.ErrRejected) || (errors.As(err, &se) && (se.Code == http.StatusBadRequest || se.Code == http.StatusUnauthorized || se.Code == http.StatusNotFound)) {
			return session.Grant{}, session.ErrInvalidCredentials
		}
		return session.Grant{}, fmt.Errorf("%s login: %w", role, err)
	}

	obj := coerce.Single(payload)
	if obj == nil {
		return session.Grant{}, fmt.Errorf("%s login: %w", role, upstream.ErrMalformedResponse)
	}
	user := obj
	for _, k := range []string{"user", string(role), "jobseeker", "profile"} {
		if inner, ok := obj[k].(coerce.Object); ok {
			user = inner
			break
		}
	}

	grant := session.Grant{
		Token:     coerce.String(coerce.First(obj, "token", "access_token", "accessToken")),
		SubjectID: coerce.String(coerce.First(user, "id", "jobseeker_id", "employer_id", "user_id")),
		Name:      coerce.String(coerce.First(user, "name", "full_name", "company_name")),
		Email:     coerce.StringOr(user["email"], email),
		ExpiresAt: i.expiry(obj),
	}
	if grant.Token == "" {
		return session.Grant{}, fmt.Errorf("%s login: %w: %w", role, upstream.ErrMalformedResponse, errNoToken)
	}
	if grant.SubjectID == "" {
		grant.SubjectID = coerce.String(coerce.First(obj, "id", "jobseeker_id", "employer_id", "user_id"))
	}
	return grant, nil
}

// expiry reads expires_at as a timestamp or expires_in as seconds.
func (i *issuerImpl) expiry(obj coerce.Object) time.Time {
	if s := coerce.String(coerce.First(obj, "expires_at", "expiresAt")); s != "" {
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
		if unix := coerce.ID(s); unix > 0 {
			return time.Unix(unix, 0)
		}
	}
	if secs := coerce.ID(coerce.First(obj, "expires_in", "expiresIn")); secs > 0 {
		return i.now().Add(time.Duration(secs) * time.Second)
	}
	return time.Time{}
}
