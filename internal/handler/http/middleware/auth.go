package middleware

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/session"
	"github.com/cmlabs-hris/career-gateway-go/internal/handler/http/response"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/jwt"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// SessionRequired runs after jwtauth.Verifier. It loads the session named by
// the access token and puts its Identity in the request context.
func SessionRequired(sessions session.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token, claims, err := jwtauth.FromContext(ctx)
			if err != nil || token == nil {
				response.Unauthorized(w, "Missing or invalid access token")
				return
			}

			sessionID, ok := jwt.SessionIDFromClaims(claims)
			if !ok {
				response.Unauthorized(w, "Missing or invalid access token")
				return
			}

			id, err := sessions.Load(ctx, sessionID)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			httplog.SetAttrs(ctx,
				slog.String("session_id", id.SessionID()),
				slog.String("role", string(id.Role())),
				slog.String("subject_id", id.SubjectID()),
			)
			next.ServeHTTP(w, r.WithContext(session.WithIdentity(ctx, id)))
		}
		return http.HandlerFunc(hfn)
	}
}
