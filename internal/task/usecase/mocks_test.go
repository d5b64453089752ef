package usecase_test

import (
	"context"
	"testing"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/task"
	"personal-task-tracker/internal/task/repository/memory"
	"personal-task-tracker/internal/task/usecase"
	"personal-task-tracker/pkg/datemath"
	"personal-task-tracker/pkg/parse"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock store for testing, with injectable behavior and a record of every
// write-through.
type mockStore struct {
	loadFunc func() ([]model.Task, error)
	saveFunc func(tasks []model.Task) error
	saved    [][]model.Task
}

func (s *mockStore) Load() ([]model.Task, error) {
	if s.loadFunc != nil {
		return s.loadFunc()
	}
	return []model.Task{}, nil
}

func (s *mockStore) Save(tasks []model.Task) error {
	s.saved = append(s.saved, tasks)
	if s.saveFunc != nil {
		return s.saveFunc(tasks)
	}
	return nil
}

// newTestUseCase wires a real in-memory repository and parser against the
// given mock store.
func newTestUseCase(t *testing.T, store *mockStore) task.UseCase {
	t.Helper()
	uc, err := newUseCaseErr(t, store)
	if err != nil {
		t.Fatalf("unexpected error creating usecase: %v", err)
	}
	return uc
}

// newUseCaseErr is the error-returning variant, for construction-failure
// tests.
func newUseCaseErr(t *testing.T, store *mockStore) (task.UseCase, error) {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("unexpected error creating date parser: %v", err)
	}
	uc, err := usecase.New(&mockLogger{}, parse.New(dates), memory.New(), store)
	if err != nil {
		return nil, err
	}
	return uc, nil
}
