package meeting

import "context"

// Scheduler is the external Meet-scheduling service.
type Scheduler interface {
	CreateEvent(ctx context.Context, event Event) (Created, error)
	LoginURL(redirect string) string
	LogoutURL(redirect string) string
}
