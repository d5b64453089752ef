package repository

import "time"

// TaskPatch is a partial update: only non-nil fields overwrite the stored
// task. Tags use nil-vs-empty to distinguish "leave untouched" from
// "clear".
type TaskPatch struct {
	Description *string
	Tags        []string
	Priority    *string
	DueDate     *time.Time
	AssignedTo  *string
	Time        *time.Time
	Completed   *bool
}
