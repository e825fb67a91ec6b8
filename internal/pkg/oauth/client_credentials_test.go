package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceHTTPClient_ClientCredentials(t *testing.T) {
	var tokenCalls atomic.Int32
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "gateway", user)
		assert.Equal(t, "s3cret", pass)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"issued-token","token_type":"bearer","expires_in":3600}`))
	}))
	defer tokenSrv.Close()

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer issued-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer apiSrv.Close()

	client := NewServiceHTTPClient(context.Background(), ServiceClientConfig{
		ClientID:     "gateway",
		ClientSecret: "s3cret",
		TokenURL:     tokenSrv.URL,
		Timeout:      5 * time.Second,
	})

	for i := 0; i < 3; i++ {
		resp, err := client.Get(apiSrv.URL)
		require.NoError(t, err)
		resp.Body.Close()
	}
	assert.Equal(t, int32(1), tokenCalls.Load(), "token is cached until expiry")
}

func TestNewServiceHTTPClient_StaticAndAnonymous(t *testing.T) {
	var got string
	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer apiSrv.Close()

	client := NewServiceHTTPClient(context.Background(), ServiceClientConfig{StaticToken: "static", Timeout: time.Second})
	resp, err := client.Get(apiSrv.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "Bearer static", got)

	client = NewServiceHTTPClient(context.Background(), ServiceClientConfig{Timeout: time.Second})
	resp, err = client.Get(apiSrv.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "", got)
}

func TestNewServiceHTTPClient_CustomHeaderKeepsAuthorization(t *testing.T) {
	var service, user string
	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		service = r.Header.Get("X-Service-Authorization")
		user = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer apiSrv.Close()

	client := NewServiceHTTPClient(context.Background(), ServiceClientConfig{
		StaticToken: "static",
		Header:      "X-Service-Authorization",
		Timeout:     time.Second,
	})
	req, err := http.NewRequest(http.MethodGet, apiSrv.URL, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer employer-token")

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "Bearer static", service)
	assert.Equal(t, "Bearer employer-token", user)
}
