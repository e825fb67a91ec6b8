package meeting

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/meeting"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/validator"
)

type MeetingServiceImpl struct {
	scheduler meeting.Scheduler
}

func NewMeetingService(scheduler meeting.Scheduler) meeting.MeetingService {
	return &MeetingServiceImpl{scheduler: scheduler}
}

// CreateEvent implements meeting.MeetingService.
func (s *MeetingServiceImpl) CreateEvent(ctx context.Context, req meeting.CreateEventRequest) (meeting.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return meeting.EventResponse{}, err
	}

	// Validate guarantees both parse
	start, _ := validator.IsValidDateTime(req.Start)
	end, _ := validator.IsValidDateTime(req.End)

	attendees := make([]string, 0, len(req.Attendees))
	for _, a := range req.Attendees {
		attendees = append(attendees, strings.TrimSpace(a))
	}

	created, err := s.scheduler.CreateEvent(ctx, meeting.Event{
		Summary:     strings.TrimSpace(req.Summary),
		Description: req.Description,
		Start:       start,
		End:         end,
		Attendees:   attendees,
		Timezone:    req.Timezone,
	})
	if err != nil {
		return meeting.EventResponse{}, fmt.Errorf("failed to create meeting: %w", err)
	}
	slog.InfoContext(ctx, "Meeting created", "event_id", created.EventID, "attendees", len(attendees))

	return meeting.EventResponse{
		EventID:  created.EventID,
		MeetLink: created.MeetLink,
		HTMLLink: created.HTMLLink,
	}, nil
}

// LoginURL implements meeting.MeetingService.
func (s *MeetingServiceImpl) LoginURL(ctx context.Context, redirect string) (meeting.LinkResponse, error) {
	if !validator.IsValidRedirectURL(redirect) {
		return meeting.LinkResponse{}, meeting.ErrInvalidRedirect
	}
	return meeting.LinkResponse{URL: s.scheduler.LoginURL(redirect)}, nil
}

// LogoutURL implements meeting.MeetingService.
func (s *MeetingServiceImpl) LogoutURL(ctx context.Context, redirect string) (meeting.LinkResponse, error) {
	if !validator.IsValidRedirectURL(redirect) {
		return meeting.LinkResponse{}, meeting.ErrInvalidRedirect
	}
	return meeting.LinkResponse{URL: s.scheduler.LogoutURL(redirect)}, nil
}
