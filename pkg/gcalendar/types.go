package gcalendar

import "time"

// Event colour IDs from the Calendar colors endpoint.
const (
	ColorTomato = "11"
	ColorBanana = "5"
)

// CreateEventRequest describes one time block.
type CreateEventRequest struct {
	CalendarID  string // DefaultCalendarID when empty
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Europe/Berlin"

	ColorID     string
	ReminderMin int // popup reminder before start; 0 keeps the calendar default
}

// Event is what the planner keeps of a created event.
type Event struct {
	ID        string
	Summary   string
	Link      string
	StartTime time.Time
	EndTime   time.Time
}
