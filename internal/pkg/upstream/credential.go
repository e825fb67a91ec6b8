package upstream

import (
	"net/http"
)

// Credential authenticates an outbound request.
type Credential interface {
	Apply(req *http.Request)
}

// CredentialFunc adapts a function to Credential.
type CredentialFunc func(req *http.Request)

func (f CredentialFunc) Apply(req *http.Request) { f(req) }

// Bearer sets "Authorization: Bearer <token>". An empty token is a no-op.
func Bearer(token string) Credential {
	return CredentialFunc(func(req *http.Request) {
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	})
}

// QueryParam adds key=value to the request query. An empty value is a no-op.
func QueryParam(key, value string) Credential {
	return CredentialFunc(func(req *http.Request) {
		if value == "" {
			return
		}
		q := req.URL.Query()
		q.Set(key, value)
		req.URL.RawQuery = q.Encode()
	})
}

// Header sets an arbitrary header. An empty value is a no-op.
func Header(key, value string) Credential {
	return CredentialFunc(func(req *http.Request) {
		if value != "" {
			req.Header.Set(key, value)
		}
	})
}
