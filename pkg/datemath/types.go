package datemath

import (
	"errors"
	"regexp"
	"time"
)

// ISODate is the layout accepted for absolute deadlines.
const ISODate = "2006-01-02"

// ErrUnrecognized is returned when a phrase is neither an ISO date nor a known relative form.
var ErrUnrecognized = errors.New("datemath: unrecognized date")

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

	// Stripped in order, so "due by friday" reads as "friday".
	deadlinePrefixes = []string{"due ", "by ", "on "}

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
		"mon":       time.Monday,
		"tue":       time.Tuesday,
		"wed":       time.Wednesday,
		"thu":       time.Thursday,
		"fri":       time.Friday,
		"sat":       time.Saturday,
		"sun":       time.Sunday,
	}
)
