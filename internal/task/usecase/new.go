package usecase

import (
	"fmt"
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"

	"personal-task-tracker/internal/task/repository"
	pkgLog "personal-task-tracker/pkg/log"
	"personal-task-tracker/pkg/parse"
)

// regexCacheSize bounds the cache of compiled search/filter patterns.
const regexCacheSize = 128

type implUseCase struct {
	l          pkgLog.Logger
	parser     *parse.Parser
	repo       repository.TaskRepository
	store      repository.TaskStore
	regexCache *lru.Cache[string, *regexp.Regexp]
}

// New creates the task UseCase and loads the persisted collection into the
// repository. A corrupt backing file is fatal here, before any operation
// can run against a partial view.
func New(
	l pkgLog.Logger,
	parser *parse.Parser,
	repo repository.TaskRepository,
	store repository.TaskStore,
) (*implUseCase, error) {
	tasks, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	repo.Load(tasks)

	cache, err := lru.New[string, *regexp.Regexp](regexCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create regex cache: %w", err)
	}

	return &implUseCase{
		l:          l,
		parser:     parser,
		repo:       repo,
		store:      store,
		regexCache: cache,
	}, nil
}
