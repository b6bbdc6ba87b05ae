package gcalendar

import "time"

// CreateEventRequest is the input for creating a calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Europe/Riga"
}

// Event is a simplified representation of a calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
}
