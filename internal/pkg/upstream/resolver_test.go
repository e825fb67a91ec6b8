package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_FirstJSONSuccessWins(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/api/hrms/stats":
			w.WriteHeader(http.StatusNotFound)
		case "/hrms/stats":
			_, _ = w.Write([]byte(`<html>spa fallback</html>`))
		case "/api/employers/hrms/stats":
			_, _ = w.Write([]byte(`{"total_employees":12}`))
		case "/api/hrms/leaves":
			_, _ = w.Write([]byte(`{"success":false,"message":"no data"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	r := NewResolver(NewClient("hrms", srv.URL, nil), map[string][]string{
		"stats":          {"/api/hrms/stats", "/hrms/stats", "/api/employers/hrms/stats"},
		"leave_requests": {"/api/hrms/leaves"},
		"payroll":        {"/api/hrms/payroll"},
	})

	err := r.Resolve(context.Background())
	require.ErrorIs(t, err, ErrEndpointUnresolved)
	assert.Contains(t, err.Error(), "payroll")

	path, err := r.Path("stats")
	require.NoError(t, err)
	assert.Equal(t, "/api/employers/hrms/stats", path)

	path, err = r.Path("leave_requests")
	require.NoError(t, err)
	assert.Equal(t, "/api/hrms/leaves", path)

	_, err = r.Path("payroll")
	assert.ErrorIs(t, err, ErrEndpointUnresolved)
	assert.Equal(t, []string{"payroll"}, r.Unresolved())

	// A second pass only retries what is still missing.
	before := hits.Load()
	_ = r.Resolve(context.Background())
	assert.Equal(t, before+1, hits.Load())
	assert.Len(t, r.Snapshot(), 2)
}

func TestResolver_EmptySuccessDoesNotResolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/hrms/stats":
			w.WriteHeader(http.StatusNoContent)
		case "/hrms/stats":
			w.WriteHeader(http.StatusOK)
		case "/api/employers/hrms/stats":
			_, _ = w.Write([]byte(`{"total_employees":3}`))
		case "/api/hrms/leaves":
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	r := NewResolver(NewClient("hrms", srv.URL, nil), map[string][]string{
		"stats":          {"/api/hrms/stats", "/hrms/stats", "/api/employers/hrms/stats"},
		"leave_requests": {"/api/hrms/leaves"},
	})

	err := r.Resolve(context.Background())
	require.ErrorIs(t, err, ErrEndpointUnresolved)

	path, err := r.Path("stats")
	require.NoError(t, err)
	assert.Equal(t, "/api/employers/hrms/stats", path)
	assert.Equal(t, []string{"leave_requests"}, r.Unresolved())
}
