package dashboard

import "time"

// State tags where a stats payload came from.
type State string

const (
	StateLive        State = "live"
	StateStale       State = "stale"
	StateUnavailable State = "unavailable"
)

// Stats are the HR headline numbers served by the HRMS stats endpoint.
type Stats struct {
	TotalEmployees       int64
	ActiveEmployees      int64
	PresentToday         int64
	OnLeaveToday         int64
	AbsentToday          int64
	PendingLeaveRequests int64
	// Extra keeps numeric fields the gateway does not know by name.
	Extra map[string]float64
}

// Snapshot is a stats payload with the time it was fetched.
type Snapshot struct {
	Stats     Stats
	FetchedAt time.Time
}
