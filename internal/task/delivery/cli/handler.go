package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/task"
	pkgLog "personal-task-tracker/pkg/log"
)

// Tokyo Night palette.
var (
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
	idStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7"))
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#7dcfff"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	highStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e"))
	mediumStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68"))
	lowStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	noMatchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68"))
)

type handler struct {
	l   pkgLog.Logger
	uc  task.UseCase
	in  io.Reader
	out io.Writer
}

func (h *handler) Add(ctx context.Context, raw string) error {
	t, err := h.uc.Add(ctx, raw)
	if err != nil {
		return err
	}
	fmt.Fprintf(h.out, "Added task #%d: %s\n", t.ID, t.Description)
	return nil
}

func (h *handler) Update(ctx context.Context, id int, raw string) error {
	ok, err := h.uc.Update(ctx, id, raw)
	if err != nil {
		return err
	}
	h.report(ok, "Updated.")
	return nil
}

func (h *handler) Delete(ctx context.Context, id int) error {
	ok, err := h.uc.Delete(ctx, id)
	if err != nil {
		return err
	}
	h.report(ok, "Deleted.")
	return nil
}

func (h *handler) Complete(ctx context.Context, id int) error {
	ok, err := h.uc.MarkComplete(ctx, id)
	if err != nil {
		return err
	}
	h.report(ok, "Marked complete.")
	return nil
}

func (h *handler) Incomplete(ctx context.Context, id int) error {
	ok, err := h.uc.MarkIncomplete(ctx, id)
	if err != nil {
		return err
	}
	h.report(ok, "Marked incomplete.")
	return nil
}

// List prints the collection, optionally narrowed. Filters are applied in
// field order and each one replaces the previous result, so combining them
// means the last one wins.
func (h *handler) List(ctx context.Context, filter task.ListFilter) error {
	tasks := h.uc.ListAll(ctx)
	if filter.Priority != "" {
		tasks = h.uc.FilterByPriority(ctx, filter.Priority)
	}
	if filter.Tag != "" {
		tasks = h.uc.FilterByTag(ctx, filter.Tag)
	}
	if filter.Due != "" {
		tasks = h.uc.FilterByDue(ctx, filter.Due)
	}
	if len(tasks) == 0 {
		fmt.Fprintln(h.out, noMatchStyle.Render("No tasks."))
		return nil
	}
	for _, t := range tasks {
		fmt.Fprintln(h.out, renderTask(t))
	}
	return nil
}

func (h *handler) Search(ctx context.Context, pattern string) error {
	results := h.uc.Search(ctx, pattern)
	if len(results) == 0 {
		fmt.Fprintln(h.out, noMatchStyle.Render("No matches."))
		return nil
	}
	for _, t := range results {
		fmt.Fprintf(h.out, "%s: %s %s\n",
			idStyle.Render(fmt.Sprintf("%d", t.ID)),
			t.Description,
			tagStyle.Render(fmt.Sprintf("(tags: %v)", t.Tags)),
		)
	}
	return nil
}

func (h *handler) report(ok bool, done string) {
	if ok {
		fmt.Fprintln(h.out, done)
		return
	}
	fmt.Fprintln(h.out, "No such task.")
}

// renderTask formats a single list line: completion glyph, id, description,
// tags, and due date.
func renderTask(t model.Task) string {
	status := " "
	if t.Completed {
		status = doneStyle.Render("✓")
	}

	desc := t.Description
	switch t.Priority {
	case model.PriorityHigh:
		desc = highStyle.Render(desc)
	case model.PriorityMedium:
		desc = mediumStyle.Render(desc)
	case model.PriorityLow:
		desc = lowStyle.Render(desc)
	}

	due := "-"
	if t.DueDate != nil {
		due = model.FormatTime(*t.DueDate)
	}

	return fmt.Sprintf("[%s] %s: %s %s %s",
		status,
		idStyle.Render(fmt.Sprintf("%d", t.ID)),
		desc,
		tagStyle.Render(fmt.Sprintf("(tags: %v)", t.Tags)),
		dimStyle.Render("due: "+due),
	)
}
