package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"personal-task-tracker/internal/task"
)

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add RAW",
		Short: "Add a task from raw text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := buildHandler()
			if err != nil {
				return err
			}
			return h.Add(cmd.Context(), strings.Join(args, " "))
		},
	}
}

func updateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update ID RAW",
		Short: "Update a task from raw text (only mentioned attributes change)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			h, err := buildHandler()
			if err != nil {
				return err
			}
			return h.Update(cmd.Context(), id, strings.Join(args[1:], " "))
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			h, err := buildHandler()
			if err != nil {
				return err
			}
			return h.Delete(cmd.Context(), id)
		},
	}
}

func listCmd() *cobra.Command {
	var filter task.ListFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := buildHandler()
			if err != nil {
				return err
			}
			return h.List(cmd.Context(), filter)
		},
	}
	cmd.Flags().StringVar(&filter.Priority, "priority", "", "filter by priority (high, medium, low)")
	cmd.Flags().StringVar(&filter.Tag, "tag", "", "filter by tag pattern (full match)")
	cmd.Flags().StringVar(&filter.Due, "due", "", "filter by due-date regex")
	return cmd
}

func completeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete ID",
		Short: "Mark a task complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			h, err := buildHandler()
			if err != nil {
				return err
			}
			return h.Complete(cmd.Context(), id)
		},
	}
}

func incompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "incomplete ID",
		Short: "Mark a task incomplete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			h, err := buildHandler()
			if err != nil {
				return err
			}
			return h.Incomplete(cmd.Context(), id)
		},
	}
}

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search PATTERN",
		Short: "Search descriptions and tags by regex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := buildHandler()
			if err != nil {
				return err
			}
			return h.Search(cmd.Context(), args[0])
		},
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", s)
	}
	return id, nil
}
