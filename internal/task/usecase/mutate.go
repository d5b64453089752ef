package usecase

import (
	"context"
	"time"

	"personal-task-tracker/internal/task/repository"
)

// Update overwrites only the fields parsed as present from raw (partial
// update); omitted markers leave prior values untouched. The task's
// updated-at timestamp is refreshed whenever the id exists, even for a
// marker-free input.
func (uc *implUseCase) Update(ctx context.Context, id int, raw string) (bool, error) {
	fields := uc.parser.Parse(raw, time.Now())

	patch := repository.TaskPatch{
		DueDate: fields.DueDate,
		Time:    fields.Time,
	}
	if fields.Description != "" {
		patch.Description = ptr(fields.Description)
	}
	if len(fields.Tags) > 0 {
		patch.Tags = fields.Tags
	}
	if fields.Priority != "" {
		patch.Priority = ptr(fields.Priority)
	}
	if fields.AssignedTo != "" {
		patch.AssignedTo = ptr(fields.AssignedTo)
	}

	if !uc.repo.Update(id, patch) {
		return false, nil
	}
	if err := uc.persist(ctx); err != nil {
		return false, err
	}

	uc.l.Infof(ctx, "task usecase: updated task id=%d", id)
	return true, nil
}

// Delete removes a task by id. A stale id reports failure without touching
// the store.
func (uc *implUseCase) Delete(ctx context.Context, id int) (bool, error) {
	if !uc.repo.Delete(id) {
		return false, nil
	}
	if err := uc.persist(ctx); err != nil {
		return false, err
	}

	uc.l.Infof(ctx, "task usecase: deleted task id=%d", id)
	return true, nil
}

func (uc *implUseCase) MarkComplete(ctx context.Context, id int) (bool, error) {
	if !uc.repo.MarkComplete(id) {
		return false, nil
	}
	if err := uc.persist(ctx); err != nil {
		return false, err
	}

	uc.l.Infof(ctx, "task usecase: marked task id=%d complete", id)
	return true, nil
}

func (uc *implUseCase) MarkIncomplete(ctx context.Context, id int) (bool, error) {
	if !uc.repo.MarkIncomplete(id) {
		return false, nil
	}
	if err := uc.persist(ctx); err != nil {
		return false, err
	}

	uc.l.Infof(ctx, "task usecase: marked task id=%d incomplete", id)
	return true, nil
}
