package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/task/repository"
)

// record is the on-disk shape of one task. Timestamps are ISO-8601 strings
// in local time; absent optional fields round-trip as null.
type record struct {
	ID          int      `json:"id"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Priority    *string  `json:"priority"`
	DueDate     *string  `json:"due_date"`
	AssignedTo  *string  `json:"assigned_to"`
	Time        *string  `json:"time"`
	Completed   bool     `json:"completed"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

type implStore struct {
	path string
}

// New creates a JSON file store at the given path. The parent directory is
// created on first save.
func New(path string) repository.TaskStore {
	return &implStore{path: path}
}

func (s *implStore) Load() ([]model.Task, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []model.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read tasks file %s: %w", s.path, err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse tasks file %s: %w", s.path, err)
	}

	tasks := make([]model.Task, 0, len(records))
	for i, rec := range records {
		t, err := rec.toTask()
		if err != nil {
			return nil, fmt.Errorf("parse tasks file %s: record %d: %w", s.path, i, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (s *implStore) Save(tasks []model.Task) error {
	records := make([]record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, fromTask(t))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create tasks directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write tasks file %s: %w", s.path, err)
	}
	return nil
}

func fromTask(t model.Task) record {
	rec := record{
		ID:          t.ID,
		Description: t.Description,
		Tags:        t.Tags,
		Completed:   t.Completed,
		CreatedAt:   model.FormatTime(t.CreatedAt),
		UpdatedAt:   model.FormatTime(t.UpdatedAt),
	}
	if rec.Tags == nil {
		rec.Tags = []string{}
	}
	if t.Priority != "" {
		p := t.Priority
		rec.Priority = &p
	}
	if t.AssignedTo != "" {
		a := t.AssignedTo
		rec.AssignedTo = &a
	}
	if t.DueDate != nil {
		d := model.FormatTime(*t.DueDate)
		rec.DueDate = &d
	}
	if t.Time != nil {
		tm := model.FormatTime(*t.Time)
		rec.Time = &tm
	}
	return rec
}

func (rec record) toTask() (model.Task, error) {
	t := model.Task{
		ID:          rec.ID,
		Description: rec.Description,
		Tags:        rec.Tags,
		Completed:   rec.Completed,
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if rec.Priority != nil {
		t.Priority = *rec.Priority
	}
	if rec.AssignedTo != nil {
		t.AssignedTo = *rec.AssignedTo
	}

	var err error
	if rec.DueDate != nil {
		d, perr := model.ParseTime(*rec.DueDate)
		if perr != nil {
			return model.Task{}, fmt.Errorf("invalid due_date %q: %w", *rec.DueDate, perr)
		}
		t.DueDate = &d
	}
	if rec.Time != nil {
		tm, perr := model.ParseTime(*rec.Time)
		if perr != nil {
			return model.Task{}, fmt.Errorf("invalid time %q: %w", *rec.Time, perr)
		}
		t.Time = &tm
	}
	if t.CreatedAt, err = model.ParseTime(rec.CreatedAt); err != nil {
		return model.Task{}, fmt.Errorf("invalid created_at %q: %w", rec.CreatedAt, err)
	}
	if t.UpdatedAt, err = model.ParseTime(rec.UpdatedAt); err != nil {
		return model.Task{}, fmt.Errorf("invalid updated_at %q: %w", rec.UpdatedAt, err)
	}
	return t, nil
}
