package cli

import (
	"context"
	"io"

	"personal-task-tracker/internal/task"
	pkgLog "personal-task-tracker/pkg/log"
)

// Handler is the interface for the command-line delivery handler. Each
// method runs one command against the use case and writes human-readable
// output; RunREPL reads commands from the input stream until exit or EOF.
type Handler interface {
	Add(ctx context.Context, raw string) error
	Update(ctx context.Context, id int, raw string) error
	Delete(ctx context.Context, id int) error
	Complete(ctx context.Context, id int) error
	Incomplete(ctx context.Context, id int) error
	List(ctx context.Context, filter task.ListFilter) error
	Search(ctx context.Context, pattern string) error
	RunREPL(ctx context.Context) error
}

// New creates a new command-line delivery handler.
func New(
	l pkgLog.Logger,
	uc task.UseCase,
	in io.Reader,
	out io.Writer,
) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		in:  in,
		out: out,
	}
}
