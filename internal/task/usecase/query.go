package usecase

import (
	"context"

	"personal-task-tracker/internal/model"
)

// ListAll returns a snapshot of every task.
func (uc *implUseCase) ListAll(ctx context.Context) []model.Task {
	return uc.repo.All()
}

// Search matches the pattern case-insensitively against each task's
// description and tags (partial match). An invalid pattern yields an empty
// result set rather than failing.
func (uc *implUseCase) Search(ctx context.Context, pattern string) []model.Task {
	re, err := uc.compilePattern(pattern, true)
	if err != nil {
		uc.l.Warnf(ctx, "task usecase: invalid search pattern %q: %v", pattern, err)
		return []model.Task{}
	}

	return uc.repo.Filter(func(t model.Task) bool {
		if re.MatchString(t.Description) {
			return true
		}
		for _, tag := range t.Tags {
			if re.MatchString(tag) {
				return true
			}
		}
		return false
	})
}

// FilterByTag requires the whole tag to match the pattern,
// case-insensitively. Like Search, an invalid pattern yields an empty
// result set.
func (uc *implUseCase) FilterByTag(ctx context.Context, pattern string) []model.Task {
	re, err := uc.compilePattern(`^(?:`+pattern+`)$`, true)
	if err != nil {
		uc.l.Warnf(ctx, "task usecase: invalid tag pattern %q: %v", pattern, err)
		return []model.Task{}
	}

	return uc.repo.Filter(func(t model.Task) bool {
		for _, tag := range t.Tags {
			if re.MatchString(tag) {
				return true
			}
		}
		return false
	})
}

// FilterByPriority matches the stored priority exactly, case-sensitive.
func (uc *implUseCase) FilterByPriority(ctx context.Context, value string) []model.Task {
	return uc.repo.Filter(func(t model.Task) bool {
		return t.Priority == value
	})
}

// FilterByDue matches the pattern against the canonical ISO-8601 due date
// string; tasks without a due date are excluded. An invalid pattern yields
// an empty result set.
func (uc *implUseCase) FilterByDue(ctx context.Context, pattern string) []model.Task {
	re, err := uc.compilePattern(pattern, false)
	if err != nil {
		uc.l.Warnf(ctx, "task usecase: invalid due pattern %q: %v", pattern, err)
		return []model.Task{}
	}

	return uc.repo.Filter(func(t model.Task) bool {
		return t.DueDate != nil && re.MatchString(model.FormatTime(*t.DueDate))
	})
}
