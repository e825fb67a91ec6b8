package dashboard

import (
	"encoding/json"

	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/coerce"
)

var statsKeys = map[string][]string{
	"total_employees":        {"totalEmployees", "total_employees", "total_employee", "employees"},
	"active_employees":       {"activeEmployees", "active_employees", "active_employee", "active"},
	"present_today":          {"presentToday", "present_today", "present"},
	"on_leave_today":         {"onLeaveToday", "on_leave_today", "on_leave", "onLeave"},
	"absent_today":           {"absentToday", "absent_today", "absent"},
	"pending_leave_requests": {"pendingLeaveRequests", "pending_leave_requests", "pending_leaves", "pendingLeaves"},
}

// NormalizeStats reads a stats payload. The numbers may be at the top level or
// inside a data/stats envelope.
func NormalizeStats(payload any) Stats {
	obj, _ := payload.(coerce.Object)
	for _, key := range []string{"data", "stats"} {
		if inner, ok := obj[key].(coerce.Object); ok {
			obj = inner
		}
	}

	count := func(name string) int64 {
		return int64(coerce.Number(coerce.First(obj, statsKeys[name]...)))
	}

	s := Stats{
		TotalEmployees:       count("total_employees"),
		ActiveEmployees:      count("active_employees"),
		PresentToday:         count("present_today"),
		OnLeaveToday:         count("on_leave_today"),
		AbsentToday:          count("absent_today"),
		PendingLeaveRequests: count("pending_leave_requests"),
		Extra:                map[string]float64{},
	}

	known := map[string]bool{}
	for _, keys := range statsKeys {
		for _, k := range keys {
			known[k] = true
		}
	}
	for k, v := range obj {
		if known[k] {
			continue
		}
		if n, ok := v.(json.Number); ok {
			s.Extra[k] = coerce.Number(n)
		}
	}
	return s
}
