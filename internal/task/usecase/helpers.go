package usecase

import (
	"context"
	"fmt"
	"regexp"
)

// compilePattern compiles a caller-supplied pattern, optionally
// case-insensitive, consulting the LRU cache first. Patterns arrive from
// interactive use, so the same handful tends to repeat within a session.
func (uc *implUseCase) compilePattern(pattern string, caseInsensitive bool) (*regexp.Regexp, error) {
	key := pattern
	if caseInsensitive {
		key = "(?i)" + pattern
	}
	if re, ok := uc.regexCache.Get(key); ok {
		return re, nil
	}
	re, err := regexp.Compile(key)
	if err != nil {
		return nil, err
	}
	uc.regexCache.Add(key, re)
	return re, nil
}

// persist writes the full collection through to the store. Called after
// every successful in-memory mutation.
func (uc *implUseCase) persist(ctx context.Context) error {
	if err := uc.store.Save(uc.repo.All()); err != nil {
		uc.l.Errorf(ctx, "task usecase: persist failed: %v", err)
		return fmt.Errorf("persist tasks: %w", err)
	}
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
