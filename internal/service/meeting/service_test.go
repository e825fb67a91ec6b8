package meeting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/meeting"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockScheduler struct {
	mock.Mock
}

func (m *mockScheduler) CreateEvent(ctx context.Context, event meeting.Event) (meeting.Created, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(meeting.Created), args.Error(1)
}

func (m *mockScheduler) LoginURL(redirect string) string {
	return m.Called(redirect).String(0)
}

func (m *mockScheduler) LogoutURL(redirect string) string {
	return m.Called(redirect).String(0)
}

func TestCreateEvent(t *testing.T) {
	scheduler := &mockScheduler{}
	ctx := context.Background()
	scheduler.On("CreateEvent", ctx, mock.MatchedBy(func(e meeting.Event) bool {
		return e.Summary == "Interview" && e.End.Sub(e.Start) == time.Hour && e.Attendees[0] == "ana@test.dev"
	})).Return(meeting.Created{EventID: "ev1", MeetLink: "https://meet.google.com/abc"}, nil)

	resp, err := NewMeetingService(scheduler).CreateEvent(ctx, meeting.CreateEventRequest{
		Summary:   " Interview ",
		Start:     "2024-01-22T09:00:00+07:00",
		End:       "2024-01-22T10:00:00+07:00",
		Attendees: []string{" ana@test.dev"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ev1", resp.EventID)
	assert.Equal(t, "https://meet.google.com/abc", resp.MeetLink)
}

func TestCreateEvent_Validation(t *testing.T) {
	svc := NewMeetingService(&mockScheduler{})

	_, err := svc.CreateEvent(context.Background(), meeting.CreateEventRequest{
		Summary: "Interview",
		Start:   "2024-01-22T10:00:00Z",
		End:     "2024-01-22T09:00:00Z",
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "end")
}

func TestCreateEvent_SchedulerFailure(t *testing.T) {
	scheduler := &mockScheduler{}
	cause := errors.New("meet down")
	scheduler.On("CreateEvent", mock.Anything, mock.Anything).Return(meeting.Created{}, cause)

	_, err := NewMeetingService(scheduler).CreateEvent(context.Background(), meeting.CreateEventRequest{
		Summary: "Sync", Start: "2024-01-22T09:00:00Z", End: "2024-01-22T09:30:00Z",
	})
	assert.ErrorIs(t, err, cause)
}

func TestLinkURLs(t *testing.T) {
	scheduler := &mockScheduler{}
	scheduler.On("LoginURL", "https://app.test/hr").Return("http://meet/login?redirect=x")
	scheduler.On("LogoutURL", "https://app.test/hr").Return("http://meet/logout?redirect=x")
	svc := NewMeetingService(scheduler)
	ctx := context.Background()

	resp, err := svc.LoginURL(ctx, "https://app.test/hr")
	require.NoError(t, err)
	assert.Equal(t, "http://meet/login?redirect=x", resp.URL)

	resp, err = svc.LogoutURL(ctx, "https://app.test/hr")
	require.NoError(t, err)
	assert.Equal(t, "http://meet/logout?redirect=x", resp.URL)

	_, err = svc.LoginURL(ctx, "javascript:alert(1)")
	assert.ErrorIs(t, err, meeting.ErrInvalidRedirect)
	_, err = svc.LogoutURL(ctx, "/relative")
	assert.ErrorIs(t, err, meeting.ErrInvalidRedirect)
}
