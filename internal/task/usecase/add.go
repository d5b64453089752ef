package usecase

import (
	"context"
	"time"

	"personal-task-tracker/internal/model"
)

// Add parses raw text into a new task and persists the collection. Empty
// or marker-free input still creates a task; invalid markers in the text
// are ignored by the parser.
func (uc *implUseCase) Add(ctx context.Context, raw string) (model.Task, error) {
	now := time.Now()
	fields := uc.parser.Parse(raw, now)

	t := model.Task{
		Description: fields.Description,
		Tags:        fields.Tags,
		Priority:    fields.Priority,
		DueDate:     fields.DueDate,
		AssignedTo:  fields.AssignedTo,
		Time:        fields.Time,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	t = uc.repo.Add(t)
	if err := uc.persist(ctx); err != nil {
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "task usecase: added task id=%d description=%q", t.ID, t.Description)
	return t, nil
}
