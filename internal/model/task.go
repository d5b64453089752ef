package model

import "time"

// Priority values recognized on a task. An empty string means no priority
// was assigned.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// TimeLayout is the canonical ISO-8601 layout for task timestamps:
// timezone-naive local time, fractional seconds kept only when present.
// The persistence gateway and the due-date filter both rely on it.
const TimeLayout = "2006-01-02T15:04:05.999999999"

// Task is a single to-do item. The id is assigned by the repository and is
// immutable afterwards; every other attribute may change over the task's
// lifetime.
type Task struct {
	ID          int
	Description string
	Tags        []string
	Priority    string
	DueDate     *time.Time
	AssignedTo  string
	Time        *time.Time
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Clone returns a copy that shares no mutable state with the receiver.
func (t Task) Clone() Task {
	c := t
	if t.Tags != nil {
		c.Tags = append([]string(nil), t.Tags...)
	}
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	if t.Time != nil {
		tm := *t.Time
		c.Time = &tm
	}
	return c
}

// FormatTime renders a timestamp in the canonical persisted layout.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseTime parses a canonical timestamp, interpreting it as local time.
func ParseTime(s string) (time.Time, error) {
	return time.ParseInLocation(TimeLayout, s, time.Local)
}
