package task

import (
	"context"

	"personal-task-tracker/internal/model"
)

// UseCase is the business logic interface for the task domain. Mutating
// operations persist the full collection write-through after every
// successful in-memory change; a missing id reports (false, nil), never an
// error. Query operations cannot fail: an invalid pattern yields an empty
// result set.
type UseCase interface {
	// Add parses raw text into a new task, assigns it an id, and persists it.
	Add(ctx context.Context, raw string) (model.Task, error)

	// Update applies the non-absent fields parsed from raw onto an existing
	// task (partial update), refreshing its updated-at timestamp.
	Update(ctx context.Context, id int, raw string) (bool, error)

	// Delete removes a task by id.
	Delete(ctx context.Context, id int) (bool, error)

	// MarkComplete and MarkIncomplete flip the completed flag.
	MarkComplete(ctx context.Context, id int) (bool, error)
	MarkIncomplete(ctx context.Context, id int) (bool, error)

	// ListAll returns a snapshot of every task.
	ListAll(ctx context.Context) []model.Task

	// Search matches the pattern case-insensitively against descriptions and
	// tags (partial match).
	Search(ctx context.Context, pattern string) []model.Task

	// FilterByTag requires the whole tag to match the pattern,
	// case-insensitively (full match, unlike Search).
	FilterByTag(ctx context.Context, pattern string) []model.Task

	// FilterByPriority matches the stored priority exactly, case-sensitive.
	FilterByPriority(ctx context.Context, value string) []model.Task

	// FilterByDue matches the pattern against the canonical ISO-8601 due
	// date string; tasks without a due date are excluded.
	FilterByDue(ctx context.Context, pattern string) []model.Task
}
