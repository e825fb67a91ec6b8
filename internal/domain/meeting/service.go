package meeting

import "context"

type MeetingService interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (EventResponse, error)
	LoginURL(ctx context.Context, redirect string) (LinkResponse, error)
	LogoutURL(ctx context.Context, redirect string) (LinkResponse, error)
}
