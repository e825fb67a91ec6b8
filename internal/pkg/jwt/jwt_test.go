package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-unit-tests"

func newService(t *testing.T) Service {
	t.Helper()
	svc, err := NewJWTService(testSecret, "1h")
	require.NoError(t, err)
	return svc
}

func TestNewJWTService_InvalidExpiration(t *testing.T) {
	_, err := NewJWTService(testSecret, "soon")
	assert.Error(t, err)
}

func TestAccessToken_RoundTrip(t *testing.T) {
	svc := newService(t)
	assert.Equal(t, time.Hour, svc.AccessExpiration())

	token, err := svc.GenerateAccessToken(AccessClaims{SessionID: "sid-1", Role: "employer", SubjectID: "9"}, time.Now().Add(time.Hour))
	require.NoError(t, err)

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)

	sid, ok := SessionIDFromClaims(claims)
	assert.True(t, ok)
	assert.Equal(t, "sid-1", sid)
	assert.Equal(t, "employer", claims["role"])
}

func TestAccessToken_Expired(t *testing.T) {
	svc := newService(t)
	token, err := svc.GenerateAccessToken(AccessClaims{SessionID: "sid-1"}, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(svc.JWTAuth(), token)
	assert.Error(t, err)
}

func TestSSEToken(t *testing.T) {
	svc := newService(t)

	token, expiresIn, err := svc.GenerateSSEToken("employer:9")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	topic, err := svc.ValidateSSEToken(token)
	require.NoError(t, err)
	assert.Equal(t, "employer:9", topic)
}

func TestSSEToken_RejectsAccessToken(t *testing.T) {
	svc := newService(t)
	access, err := svc.GenerateAccessToken(AccessClaims{SessionID: "sid-1"}, time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = svc.ValidateSSEToken(access)
	assert.Error(t, err)

	_, err = svc.ValidateSSEToken("not-a-token")
	assert.Error(t, err)
}

func TestSessionIDFromClaims_WrongType(t *testing.T) {
	_, ok := SessionIDFromClaims(map[string]interface{}{"type": "sse", "sid": "x"})
	assert.False(t, ok)
}
