package dashboard

import "time"

// ========== HR STATS ==========

// StatsResponse is the dashboard headline block. Stats is nil when State is
// unavailable.
type StatsResponse struct {
	State     State         `json:"state"`
	Message   string        `json:"message,omitempty"`
	FetchedAt *time.Time    `json:"fetched_at,omitempty"`
	Stats     *StatsPayload `json:"stats,omitempty"`
}

// StatsPayload is the JSON form of Stats.
type StatsPayload struct {
	TotalEmployees       int64              `json:"total_employees"`
	ActiveEmployees      int64              `json:"active_employees"`
	PresentToday         int64              `json:"present_today"`
	OnLeaveToday         int64              `json:"on_leave_today"`
	AbsentToday          int64              `json:"absent_today"`
	PendingLeaveRequests int64              `json:"pending_leave_requests"`
	Extra                map[string]float64 `json:"extra,omitempty"`
}
