package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/session"
	"github.com/cmlabs-hris/career-gateway-go/internal/handler/http/response"
)

// RequireRole lets through identities holding one of roles. It must run
// after SessionRequired.
func RequireRole(roles ...session.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := session.FromContext(r.Context())
			if !ok {
				response.HandleError(w, session.ErrUnauthorized)
				return
			}
			for _, role := range roles {
				if id.Role() == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.HandleError(w, session.ErrForbidden)
		})
	}
}

// RequireEmployer allows employers and admins.
func RequireEmployer(next http.Handler) http.Handler {
	return RequireRole(session.RoleEmployer, session.RoleAdmin)(next)
}

// RequireSeeker allows seekers.
func RequireSeeker(next http.Handler) http.Handler {
	return RequireRole(session.RoleSeeker)(next)
}
