// Package portal talks to the career-platform backend: public content, the
// seeker profile, the resume pipeline and the login issuer.
package portal

import (
	"github.com/cmlabs-hris/career-gateway-go/internal/domain/session"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/upstream"
)

// authScheme is how an endpoint expects the seeker to be identified. The
// backend is not consistent about it, so every path is listed here and the
// rest of the gateway never deals with it.
type authScheme int

const (
	authBearer authScheme = iota
	authJobseekerQuery
	authBoth
)

func credentials(id session.Identity, scheme authScheme) []upstream.Credential {
	switch scheme {
	case authJobseekerQuery:
		return []upstream.Credential{upstream.QueryParam("jobseeker_id", id.JobseekerID())}
	case authBoth:
		return []upstream.Credential{upstream.Bearer(id.UpstreamToken()), upstream.QueryParam("jobseeker_id", id.JobseekerID())}
	default:
		return []upstream.Credential{upstream.Bearer(id.UpstreamToken())}
	}
}
