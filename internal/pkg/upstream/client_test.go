package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Do_DecodesJSONAndInjectsCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer service-token", r.Header.Get("Authorization"))
		assert.Equal(t, "42", r.URL.Query().Get("jobseeker_id"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":1}]}`))
	}))
	defer srv.Close()

	c := NewClient("portal", srv.URL+"/", nil, Bearer("service-token"))
	payload, err := c.Get(context.Background(), "/api/blogs", url.Values{"page": {"2"}}, QueryParam("jobseeker_id", "42"))

	require.NoError(t, err)
	obj, ok := payload.(map[string]any)
	require.True(t, ok)
	items := obj["data"].([]any)
	assert.Equal(t, json.Number("1"), items[0].(map[string]any)["id"])
}

func TestClient_Do_ErrorTaxonomy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/status":
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"message":"maintenance"}`))
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
		case "/html":
			_, _ = w.Write([]byte(`<!doctype html><html></html>`))
		case "/rejected":
			_, _ = w.Write([]byte(`{"success":false,"message":"Already clocked in"}`))
		case "/empty":
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	c := NewClient("hrms", srv.URL, nil)
	ctx := context.Background()

	_, err := c.Get(ctx, "/status", nil)
	assert.ErrorIs(t, err, ErrBadStatus)
	assert.Equal(t, "maintenance", Message(err))

	_, err = c.Get(ctx, "/missing", nil)
	assert.True(t, IsNotFound(err))

	_, err = c.Get(ctx, "/html", nil)
	assert.ErrorIs(t, err, ErrMalformedResponse)

	_, err = c.Get(ctx, "/rejected", nil)
	assert.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, "Already clocked in", Message(err))

	payload, err := c.Get(ctx, "/empty", nil)
	assert.NoError(t, err)
	assert.Nil(t, payload)
}

func TestClient_Do_TransportErrorAndCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	c := NewClient("content", base, nil)
	_, err := c.Get(context.Background(), "/api/courses/list", nil)
	assert.ErrorIs(t, err, ErrUnavailable)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Get(ctx, "/api/courses/list", nil)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestClient_Do_Multipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		assert.Equal(t, "Interview", r.FormValue("summary"))
		f, fh, err := r.FormFile("resume")
		if !assert.NoError(t, err) {
			return
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "cv.pdf", fh.Filename)
		assert.Equal(t, "%PDF", string(data))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient("meet", srv.URL, nil)
	_, err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/create_event",
		Form: &Multipart{
			Fields: map[string]string{"summary": "Interview"},
			Files:  []FilePart{{Field: "resume", FileName: "cv.pdf", Content: strings.NewReader("%PDF")}},
		},
	})
	assert.NoError(t, err)
}
