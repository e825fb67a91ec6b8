package meet

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/meeting"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_CreateEvent(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /create_event", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Interview", r.FormValue("summary"))
		assert.Equal(t, "2024-01-22T09:00:00+07:00", r.FormValue("start_time"))
		assert.Equal(t, "a@x.io,b@x.io", r.FormValue("attendees"))
		_, _ = io.WriteString(w, `{"event_id": "ev1", "hangoutLink": "https://meet.google.com/abc"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	s := NewScheduler(upstream.NewClient("meet", srv.URL, srv.Client()))

	loc := time.FixedZone("WIB", 7*3600)
	created, err := s.CreateEvent(context.Background(), meeting.Event{
		Summary:   "Interview",
		Start:     time.Date(2024, 1, 22, 9, 0, 0, 0, loc),
		End:       time.Date(2024, 1, 22, 10, 0, 0, 0, loc),
		Attendees: []string{"a@x.io", "b@x.io"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ev1", created.EventID)
	assert.Equal(t, "https://meet.google.com/abc", created.MeetLink)
}

func TestScheduler_CreateEventWithoutLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status": "ok"}`)
	}))
	defer srv.Close()
	s := NewScheduler(upstream.NewClient("meet", srv.URL, srv.Client()))

	_, err := s.CreateEvent(context.Background(), meeting.Event{Summary: "x", Start: time.Now(), End: time.Now().Add(time.Hour)})
	assert.ErrorIs(t, err, upstream.ErrMalformedResponse)
}

func TestScheduler_LinkURLs(t *testing.T) {
	s := NewScheduler(upstream.NewClient("meet", "http://meet.local/", nil))

	assert.Equal(t, "http://meet.local/login?redirect=https%3A%2F%2Fapp.test%2Fhr", s.LoginURL("https://app.test/hr"))
	assert.Equal(t, "http://meet.local/logout?redirect=https%3A%2F%2Fapp.test%2F", s.LogoutURL("https://app.test/"))
}
