package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Parser resolves natural-language due-date tokens to absolute time.Time
// values in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a date parser for the given IANA timezone string.
// An empty string means the process-local timezone.
func NewParser(timezone string) (*Parser, error) {
	if timezone == "" {
		timezone = "Local"
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// DueDate resolves a due-date token relative to base. The token may carry a
// "due:" prefix or be bare, and may be "tomorrow", "next week", or a
// YYYY-MM-DD calendar date. Resolved dates are at midnight; a token that
// resolves to nothing reports false.
func (p *Parser) DueDate(token string, base time.Time) (time.Time, bool) {
	val := strings.TrimSpace(token)
	if len(val) >= 4 && strings.EqualFold(val[:4], "due:") {
		val = val[4:]
	}
	val = strings.ToLower(strings.TrimSpace(val))

	switch val {
	case "tomorrow":
		return p.startOfDay(base.AddDate(0, 0, 1)), true
	case "next week":
		return p.startOfDay(base.AddDate(0, 0, 7)), true
	}

	d, err := time.ParseInLocation("2006-01-02", val, p.location)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Clock is an extracted wall-clock time of day, before 12-hour
// normalization.
type Clock struct {
	Hour     int
	Minute   int
	Meridiem string // "am", "pm", or empty for a 24-hour reading
}

// Hour24 normalizes the clock to 24-hour form: "pm" adds 12 unless the hour
// is already 12 or later, "am" maps hour 12 to 0.
func (c Clock) Hour24() int {
	h := c.Hour
	switch strings.ToLower(c.Meridiem) {
	case "pm":
		if h < 12 {
			h += 12
		}
	case "am":
		if h == 12 {
			h = 0
		}
	}
	return h
}

// Merge anchors the clock onto the calendar day of anchor, replacing only
// the time-of-day fields and zeroing seconds and sub-seconds.
func (p *Parser) Merge(anchor time.Time, c Clock) time.Time {
	t := anchor.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), c.Hour24(), c.Minute, 0, 0, p.location)
}

// startOfDay returns midnight at the start of the given day in the parser's
// timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
