package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"personal-task-tracker/internal/task"
)

const prompt = "todo> "

// RunREPL reads commands from the input stream until exit, quit, or EOF.
// Lines are tokenized shell-style so quoted task text survives as a single
// argument.
func (h *handler) RunREPL(ctx context.Context) error {
	fmt.Fprintln(h.out, "Interactive mode. Type 'help' for commands, 'exit' to quit.")

	scanner := bufio.NewScanner(h.in)
	for {
		fmt.Fprint(h.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(h.out)
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch strings.ToLower(line) {
		case "exit", "quit":
			return scanner.Err()
		case "help", "?":
			h.printHelp()
			continue
		}

		tokens, err := shlex.Split(line)
		if err != nil {
			h.l.Warnf(ctx, "cli: unparseable input %q: %v", line, err)
			fmt.Fprintln(h.out, "Invalid command. Type 'help' for usage.")
			continue
		}
		if err := h.dispatch(ctx, tokens); err != nil {
			h.l.Errorf(ctx, "cli: command failed: %v", err)
			fmt.Fprintf(h.out, "Error: %v\n", err)
		}
	}
	return scanner.Err()
}

func (h *handler) printHelp() {
	fmt.Fprintln(h.out, "Commands: add, update, delete, list [--priority P --tag REGEX --due PATTERN],")
	fmt.Fprintln(h.out, "          complete ID, incomplete ID, search PATTERN, exit")
}

// dispatch routes one tokenized command line.
func (h *handler) dispatch(ctx context.Context, tokens []string) error {
	cmd, args := tokens[0], tokens[1:]
	switch strings.ToLower(cmd) {
	case "add":
		if len(args) == 0 {
			return fmt.Errorf("usage: add RAW")
		}
		return h.Add(ctx, strings.Join(args, " "))
	case "update":
		if len(args) < 2 {
			return fmt.Errorf("usage: update ID RAW")
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return h.Update(ctx, id, strings.Join(args[1:], " "))
	case "delete":
		id, err := singleID(args)
		if err != nil {
			return err
		}
		return h.Delete(ctx, id)
	case "complete":
		id, err := singleID(args)
		if err != nil {
			return err
		}
		return h.Complete(ctx, id)
	case "incomplete":
		id, err := singleID(args)
		if err != nil {
			return err
		}
		return h.Incomplete(ctx, id)
	case "list":
		filter, err := parseListFlags(args)
		if err != nil {
			return err
		}
		return h.List(ctx, filter)
	case "search":
		if len(args) == 0 {
			return fmt.Errorf("usage: search PATTERN")
		}
		return h.Search(ctx, strings.Join(args, " "))
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// parseListFlags handles the list command's --priority/--tag/--due flags,
// accepting both "--flag value" and "--flag=value".
func parseListFlags(args []string) (task.ListFilter, error) {
	var f task.ListFilter
	for i := 0; i < len(args); i++ {
		flag := args[i]
		value := ""
		if eq := strings.IndexByte(flag, '='); eq >= 0 {
			flag, value = flag[:eq], flag[eq+1:]
		} else {
			if i+1 >= len(args) {
				return task.ListFilter{}, fmt.Errorf("flag %s needs a value", flag)
			}
			i++
			value = args[i]
		}
		switch flag {
		case "--priority":
			f.Priority = value
		case "--tag":
			f.Tag = value
		case "--due":
			f.Due = value
		default:
			return task.ListFilter{}, fmt.Errorf("unknown flag %q", flag)
		}
	}
	return f, nil
}

func singleID(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one task id")
	}
	return parseID(args[0])
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", s)
	}
	return id, nil
}
