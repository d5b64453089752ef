package memory

import (
	"time"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/task/repository"
)

type implRepository struct {
	tasks  []model.Task
	nextID int
}

// New creates an empty in-memory task repository.
func New() repository.TaskRepository {
	return &implRepository{nextID: 1}
}

func (r *implRepository) Load(tasks []model.Task) {
	r.tasks = make([]model.Task, 0, len(tasks))
	r.nextID = 1
	for _, t := range tasks {
		r.tasks = append(r.tasks, t.Clone())
		if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
	}
}

func (r *implRepository) All() []model.Task {
	out := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, t.Clone())
	}
	return out
}

func (r *implRepository) Add(t model.Task) model.Task {
	t.ID = r.nextID
	r.nextID++
	r.tasks = append(r.tasks, t.Clone())
	return t
}

func (r *implRepository) FindByID(id int) (model.Task, bool) {
	for _, t := range r.tasks {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return model.Task{}, false
}

func (r *implRepository) Delete(id int) bool {
	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return true
		}
	}
	return false
}

func (r *implRepository) Update(id int, patch repository.TaskPatch) bool {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			applyPatch(&r.tasks[i], patch)
			return true
		}
	}
	return false
}

func (r *implRepository) Filter(keep func(model.Task) bool) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range r.tasks {
		if keep(t) {
			out = append(out, t.Clone())
		}
	}
	return out
}

func (r *implRepository) MarkComplete(id int) bool {
	done := true
	return r.Update(id, repository.TaskPatch{Completed: &done})
}

func (r *implRepository) MarkIncomplete(id int) bool {
	done := false
	return r.Update(id, repository.TaskPatch{Completed: &done})
}

// applyPatch overwrites only the fields present in the patch. The
// updated-at timestamp is refreshed even for an empty patch.
func applyPatch(t *model.Task, p repository.TaskPatch) {
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Tags != nil {
		t.Tags = append([]string(nil), p.Tags...)
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		d := *p.DueDate
		t.DueDate = &d
	}
	if p.AssignedTo != nil {
		t.AssignedTo = *p.AssignedTo
	}
	if p.Time != nil {
		tm := *p.Time
		t.Time = &tm
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	t.UpdatedAt = time.Now()
}
