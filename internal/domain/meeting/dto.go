package meeting

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/validator"
)

type CreateEventRequest struct {
	Summary     string   `json:"summary"`
	Description string   `json:"description,omitempty"`
	Start       string   `json:"start"` // RFC3339
	End         string   `json:"end"`   // RFC3339
	Attendees   []string `json:"attendees,omitempty"`
	Timezone    string   `json:"timezone,omitempty"`
}

func (r *CreateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Summary) {
		errs.Add("summary", "summary is required")
	}
	if len(r.Summary) > 255 {
		errs.Add("summary", "summary must not exceed 255 characters")
	}

	start, startOK := validator.IsValidDateTime(r.Start)
	if !startOK {
		errs.Add("start", "start must be an RFC3339 timestamp")
	}
	end, endOK := validator.IsValidDateTime(r.End)
	if !endOK {
		errs.Add("end", "end must be an RFC3339 timestamp")
	}
	if startOK && endOK && !end.After(start) {
		errs.Add("end", "end must be after start")
	}

	for _, a := range r.Attendees {
		if !validator.IsValidEmail(strings.TrimSpace(a)) {
			errs.Add("attendees", "attendees must be valid email addresses")
			break
		}
	}
	if r.Timezone != "" {
		if _, err := time.LoadLocation(r.Timezone); err != nil {
			errs.Add("timezone", "timezone must be an IANA timezone name")
		}
	}

	return errs.Err()
}

type EventResponse struct {
	EventID  string `json:"event_id"`
	MeetLink string `json:"meet_link"`
	HTMLLink string `json:"html_link,omitempty"`
}

type LinkResponse struct {
	URL string `json:"url"`
}
