package usecase_test

import (
	"context"
	"testing"

	"personal-task-tracker/internal/model"
)

func TestSearchVersusFilterByTag(t *testing.T) {
	ctx := context.Background()

	// Stored tags are arbitrary strings; "home-office" cannot be written
	// through the @tag marker, so it arrives via the persisted collection.
	store := &mockStore{
		loadFunc: func() ([]model.Task, error) {
			return []model.Task{
				{ID: 1, Description: "Set up the desk", Tags: []string{"home-office"}},
			}, nil
		},
	}
	uc := newTestUseCase(t, store)

	uc.Add(ctx, "Mow the lawn @home")
	uc.Add(ctx, "Finish homework essay")
	uc.Add(ctx, "Unrelated @work")

	t.Run("Search Is Partial Match", func(t *testing.T) {
		got := uc.Search(ctx, "home")
		if len(got) != 3 {
			t.Fatalf("expected 3 partial matches, got %d", len(got))
		}
		found := false
		for _, tk := range got {
			if tk.ID == 1 {
				found = true
			}
		}
		if !found {
			t.Errorf("search must find the home-office task by partial tag match")
		}
	})

	t.Run("Search Is Case Insensitive", func(t *testing.T) {
		got := uc.Search(ctx, "HOME")
		if len(got) != 3 {
			t.Errorf("expected 3 case-insensitive matches, got %d", len(got))
		}
	})

	t.Run("FilterByTag Is Full Match", func(t *testing.T) {
		got := uc.FilterByTag(ctx, "home")
		if len(got) != 1 {
			t.Fatalf("expected exactly 1 full-tag match, got %d", len(got))
		}
		if got[0].Tags[0] != "home" {
			t.Errorf("matched the wrong task: %v", got[0].Tags)
		}
		for _, tk := range got {
			if tk.ID == 1 {
				t.Errorf("home-office must not full-match the pattern %q", "home")
			}
		}
	})

	t.Run("Invalid Pattern Yields Empty", func(t *testing.T) {
		if got := uc.Search(ctx, "("); len(got) != 0 {
			t.Errorf("invalid search pattern should yield empty set, got %d", len(got))
		}
		if got := uc.FilterByTag(ctx, "("); len(got) != 0 {
			t.Errorf("invalid tag pattern should yield empty set, got %d", len(got))
		}
	})
}

func TestFilterByPriority(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, &mockStore{})

	uc.Add(ctx, "urgent thing #high")
	uc.Add(ctx, "someday thing #low")
	uc.Add(ctx, "no priority thing")

	got := uc.FilterByPriority(ctx, model.PriorityHigh)
	if len(got) != 1 || got[0].Priority != model.PriorityHigh {
		t.Fatalf("expected 1 high-priority task, got %v", got)
	}

	// Exact, case-sensitive equality: stored values are lowercase.
	if got := uc.FilterByPriority(ctx, "High"); len(got) != 0 {
		t.Errorf("capitalized value should not match stored priority")
	}
}

func TestFilterByDue(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, &mockStore{})

	uc.Add(ctx, "ship release due:2025-12-01")
	uc.Add(ctx, "other release due:2026-01-15")
	uc.Add(ctx, "no deadline here")

	t.Run("Partial Match On ISO String", func(t *testing.T) {
		got := uc.FilterByDue(ctx, "2025-12")
		if len(got) != 1 {
			t.Fatalf("expected 1 match, got %d", len(got))
		}
		if got[0].Description != "ship release" {
			t.Errorf("matched the wrong task: %q", got[0].Description)
		}
	})

	t.Run("Tasks Without Due Date Are Excluded", func(t *testing.T) {
		got := uc.FilterByDue(ctx, ".")
		if len(got) != 2 {
			t.Errorf("expected only the 2 dated tasks, got %d", len(got))
		}
	})

	t.Run("Invalid Pattern Yields Empty", func(t *testing.T) {
		if got := uc.FilterByDue(ctx, "["); len(got) != 0 {
			t.Errorf("invalid due pattern should yield empty set, got %d", len(got))
		}
	})
}

func TestListAll(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, &mockStore{})

	if got := uc.ListAll(ctx); len(got) != 0 {
		t.Fatalf("fresh collection should be empty, got %d", len(got))
	}

	uc.Add(ctx, "one")
	uc.Add(ctx, "two")

	got := uc.ListAll(ctx)
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}

	// Snapshot: mutating the returned slice must not leak back.
	got[0].Description = "mutated"
	if uc.ListAll(ctx)[0].Description == "mutated" {
		t.Error("ListAll must return an isolated snapshot")
	}
}
