// Package meet is the client of the Meet-scheduling service.
package meet

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/meeting"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/coerce"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/upstream"
)

const createEventPath = "/create_event"

var errNoMeetLink = errors.New("scheduling answer carries no meet link")

type schedulerImpl struct {
	client *upstream.Client
}

func NewScheduler(client *upstream.Client) meeting.Scheduler {
	return &schedulerImpl{client: client}
}

// CreateEvent implements meeting.Scheduler. The service takes a form post.
func (s *schedulerImpl) CreateEvent(ctx context.Context, event meeting.Event) (meeting.Created, error) {
	fields := map[string]string{
		"summary":     event.Summary,
		"description": event.Description,
		"start_time":  event.Start.Format(time.RFC3339),
		"end_time":    event.End.Format(time.RFC3339),
	}
	if len(event.Attendees) > 0 {
		fields["attendees"] = strings.Join(event.Attendees, ",")
	}
	if event.Timezone != "" {
		fields["timezone"] = event.Timezone
	}

	payload, err := s.client.Do(ctx, upstream.Request{
		Method: http.MethodPost,
		Path:   createEventPath,
		Form:   &upstream.Multipart{Fields: fields},
	})
	if err != nil {
		return meeting.Created{}, fmt.Errorf("create meet event: %w", err)
	}

	obj := coerce.Single(payload, "event")
	created := meeting.Created{
		EventID:  coerce.String(coerce.First(obj, "event_id", "id", "eventId")),
		MeetLink: coerce.String(coerce.First(obj, "meet_link", "hangoutLink", "meetLink", "link")),
		HTMLLink: coerce.String(coerce.First(obj, "html_link", "htmlLink")),
	}
	if created.MeetLink == "" {
		return meeting.Created{}, fmt.Errorf("create meet event: %w: %w", upstream.ErrMalformedResponse, errNoMeetLink)
	}
	return created, nil
}

// LoginURL implements meeting.Scheduler.
func (s *schedulerImpl) LoginURL(redirect string) string {
	return s.client.URL("/login", url.Values{"redirect": {redirect}})
}

// LogoutURL implements meeting.Scheduler.
func (s *schedulerImpl) LogoutURL(redirect string) string {
	return s.client.URL("/logout", url.Values{"redirect": {redirect}})
}
