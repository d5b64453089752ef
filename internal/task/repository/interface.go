package repository

import "personal-task-tracker/internal/model"

// TaskRepository owns the in-memory task collection for one backing store
// and is the sole authority for id assignment. Mutating operations are
// no-ops reporting false when the id is absent; they never fail for
// data-shape reasons.
type TaskRepository interface {
	// Load replaces the full collection and recomputes the id counter
	// (max existing id + 1, or 1 when empty).
	Load(tasks []model.Task)

	// All returns a snapshot immune to later external mutation.
	All() []model.Task

	// Add assigns the next id and appends, returning the identified task.
	Add(t model.Task) model.Task

	// FindByID returns the task with the given id.
	FindByID(id int) (model.Task, bool)

	// Delete removes a task, reporting whether removal occurred.
	Delete(id int) bool

	// Update applies the fields present in the patch, refreshing the task's
	// updated-at timestamp whenever the id exists.
	Update(id int, patch TaskPatch) bool

	// Filter returns every task the predicate keeps.
	Filter(keep func(model.Task) bool) []model.Task

	// MarkComplete and MarkIncomplete are Update wrappers flipping the
	// completed flag.
	MarkComplete(id int) bool
	MarkIncomplete(id int) bool
}

// TaskStore persists the full task collection as one JSON document.
type TaskStore interface {
	// Load reads the backing document; a missing file yields an empty
	// collection and no error, a malformed one propagates a parse error.
	Load() ([]model.Task, error)

	// Save overwrites the document with the full collection.
	Save(tasks []model.Task) error
}
