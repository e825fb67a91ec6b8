package jwt

import (
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	TokenTypeAccess = "access"
	TokenTypeSSE    = "sse"

	sseTokenLifetime = 5 * time.Minute
)

// AccessClaims are what the gateway puts in its own access tokens. The
// session id is authoritative; role and subject are copies for logging.
type AccessClaims struct {
	SessionID string
	Role      string
	SubjectID string
}

type Service interface {
	GenerateAccessToken(claims AccessClaims, expiresAt time.Time) (token string, err error)
	AccessExpiration() time.Duration
	GenerateSSEToken(topic string) (token string, expiresIn int, err error)
	ValidateSSEToken(tokenString string) (topic string, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessExpiration time.Duration
	tokenAuth        *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessExpiration string) (Service, error) {
	exp, err := time.ParseDuration(accessExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid access token expiration %q: %w", accessExpiration, err)
	}
	return &JWTService{
		accessExpiration: exp,
		tokenAuth:        jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}, nil
}

// AccessExpiration is the configured access token lifetime.
func (j *JWTService) AccessExpiration() time.Duration {
	return j.accessExpiration
}

func (j *JWTService) GenerateAccessToken(claims AccessClaims, expiresAt time.Time) (string, error) {
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"sid":  claims.SessionID,
		"sub":  claims.SubjectID,
		"role": claims.Role,
		"type": TokenTypeAccess,
		"iat":  time.Now().Unix(),
		"exp":  expiresAt.Unix(),
	})
	return tokenString, err
}

// GenerateSSEToken generates a short-lived token for SSE connections
func (j *JWTService) GenerateSSEToken(topic string) (token string, expiresIn int, err error) {
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"topic": topic,
		"type":  TokenTypeSSE,
		"exp":   time.Now().Add(sseTokenLifetime).Unix(),
	})
	if err != nil {
		return "", 0, err
	}

	return tokenString, int(sseTokenLifetime.Seconds()), nil
}

// ValidateSSEToken validates an SSE token and returns the topic it grants
func (j *JWTService) ValidateSSEToken(tokenString string) (topic string, err error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return "", err
	}

	if tokenType, ok := token.Get("type"); !ok || tokenType != TokenTypeSSE {
		return "", jwt.ErrInvalidJWT()
	}

	topicVal, ok := token.Get("topic")
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}
	topic, ok = topicVal.(string)
	if !ok || topic == "" {
		return "", jwt.ErrInvalidJWT()
	}

	return topic, nil
}

// SessionIDFromClaims reads the session id of a verified access token.
func SessionIDFromClaims(claims map[string]interface{}) (string, bool) {
	if t, _ := claims["type"].(string); t != TokenTypeAccess {
		return "", false
	}
	sid, ok := claims["sid"].(string)
	return sid, ok && sid != ""
}
