package meeting

import "time"

// Event is a calendar event with a Meet link, as created by the scheduling
// service.
type Event struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Attendees   []string
	Timezone    string
}

// Created is the answer of the scheduling service.
type Created struct {
	EventID  string
	MeetLink string
	HTMLLink string
}
