package datemath

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse converts a relative date string to the start of that day.
// The baseTime is used as the reference point (usually the plan date).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.Join(strings.Fields(strings.ToLower(relative)), " ")
	for _, prefix := range deadlinePrefixes {
		relative = strings.TrimPrefix(relative, prefix)
	}

	switch relative {
	case "today", "eod", "end of day":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	case "eow", "end of week", "end of the week", "this week":
		return p.parseWeekday("friday", baseTime, true)
	case "next week":
		return p.parseWeekday("monday", baseTime, false)
	case "eom", "end of month", "end of the month", "this month":
		t := baseTime.In(p.location)
		return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, p.location), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return p.parseWeekday(strings.TrimPrefix(relative, "next "), baseTime, false)
	}

	// Bare weekday: the coming one, today included.
	if _, ok := weekdays[strings.TrimPrefix(relative, "this ")]; ok {
		return p.parseWeekday(strings.TrimPrefix(relative, "this "), baseTime, true)
	}

	return baseTime, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
}

// ParseDeadline resolves an ISO date or a relative phrase into a calendar date
// at midnight UTC. today is read as a calendar date. An empty string yields no deadline.
func (p *Parser) ParseDeadline(raw string, today time.Time) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "none") || strings.EqualFold(raw, "null") {
		return nil, nil
	}

	if t, err := time.Parse(ISODate, raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return &d, nil
	}

	base := time.Date(today.Year(), today.Month(), today.Day(), 12, 0, 0, 0, p.location)
	t, err := p.Parse(raw, base)
	if err != nil {
		return nil, err
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d, nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("%w: invalid duration %q", ErrUnrecognized, relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return baseTime, fmt.Errorf("%w: %q: %v", ErrUnrecognized, relative, err)
	}
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseWeekday handles "next friday" and bare weekday names.
func (p *Parser) parseWeekday(dayName string, baseTime time.Time, includeToday bool) (time.Time, error) {
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(targetWeekday - baseTime.In(p.location).Weekday())
	if daysUntil < 0 || (daysUntil == 0 && !includeToday) {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
