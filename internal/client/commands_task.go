// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-task-keeper/models"
)

var (
	ErrNothingToUpdate = errors.New("nothing to update, pass at least one of --title, --description, --status")
	ErrUnknownStatus   = errors.New("unknown task status")
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func taskCommand(env *commandEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Manage your tasks",
		Args:    cobra.NoArgs,
	}

	cmd.AddCommand(
		taskListCommand(env),
		taskCreateCommand(env),
		taskGetCommand(env),
		taskUpdateCommand(env),
		taskDeleteCommand(env),
	)

	return cmd
}

func taskListCommand(env *commandEnv) *cobra.Command {
	var (
		filter models.TaskFilter
		status string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			if filter.Status, err = parseStatus(status); err != nil {
				return err
			}

			page, err := env.api.ListTasks(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return renderTaskList(cmd.OutOrStdout(), page)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&filter.Page, "page", 0, fmt.Sprintf("page number (default %d)", models.DefaultPage))
	flags.IntVar(&filter.Limit, "limit", 0, fmt.Sprintf("tasks per page, at most %d (default %d)", models.MaxLimit, models.DefaultLimit))
	flags.StringVar(&status, "status", "", "only tasks in this status: "+statusNames())
	flags.StringVar(&filter.Search, "search", "", "only tasks whose title contains this text")

	return cmd
}

func taskCreateCommand(env *commandEnv) *cobra.Command {
	var (
		request models.CreateTaskRequest
		status  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			if request.Title == "" {
				if request.Title, err = env.prompt.Line("Title: "); err != nil {
					return err
				}
			}
			if request.Description == "" {
				if request.Description, err = env.prompt.Line("Description: "); err != nil {
					return err
				}
			}
			if request.Status, err = parseStatus(status); err != nil {
				return err
			}
			request.Normalize()

			task, err := env.api.CreateTask(cmd.Context(), request)
			if err != nil {
				return err
			}
			return renderTask(cmd.OutOrStdout(), task)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&request.Title, "title", "t", "", "task title")
	flags.StringVarP(&request.Description, "description", "d", "", "task description, stored encrypted")
	flags.StringVar(&status, "status", "", "initial status: "+statusNames()+" (default "+string(models.StatusPending)+")")

	return cmd
}

func taskGetCommand(env *commandEnv) *cobra.Command {
	var copyDescription bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := env.api.GetTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err = renderTask(cmd.OutOrStdout(), task); err != nil {
				return err
			}

			if !copyDescription {
				return nil
			}
			if err = writeClipboard(task.Description); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			_, err = fmt.Fprintln(cmd.ErrOrStderr(), "Description copied to clipboard")
			return err
		},
	}

	cmd.Flags().BoolVarP(&copyDescription, "copy", "c", false, "copy the description to the clipboard")

	return cmd
}

func taskUpdateCommand(env *commandEnv) *cobra.Command {
	var title, description, status string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the title, description or status of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var update models.TaskUpdate

			flags := cmd.Flags()
			if flags.Changed("title") {
				update.Title = &title
			}
			if flags.Changed("description") {
				update.Description = &description
			}
			if flags.Changed("status") {
				parsed, err := parseStatus(status)
				if err != nil {
					return err
				}
				if parsed == "" {
					return fmt.Errorf("%w: status cannot be empty", ErrUnknownStatus)
				}
				update.Status = &parsed
			}
			if update.IsEmpty() {
				return ErrNothingToUpdate
			}

			task, err := env.api.UpdateTask(cmd.Context(), args[0], update)
			if err != nil {
				return err
			}
			return renderTask(cmd.OutOrStdout(), task)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&title, "title", "t", "", "new title")
	flags.StringVarP(&description, "description", "d", "", "new description, stored encrypted")
	flags.StringVar(&status, "status", "", "new status: "+statusNames())

	return cmd
}

func taskDeleteCommand(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := env.api.DeleteTask(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Task %s deleted\n", args[0])
			return err
		},
	}
}

// parseStatus accepts a status in any case, with '-' or '_' in place of
// spaces. An empty value yields an empty status.
func parseStatus(value string) (models.TaskStatus, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}

	normalized := strings.NewReplacer("-", " ", "_", " ").Replace(value)
	for _, status := range models.TaskStatuses {
		if strings.EqualFold(normalized, string(status)) {
			return status, nil
		}
	}

	return "", fmt.Errorf("%w %q, expected one of %s", ErrUnknownStatus, value, statusNames())
}

func statusNames() string {
	names := make([]string, 0, len(models.TaskStatuses))
	for _, status := range models.TaskStatuses {
		names = append(names, fmt.Sprintf("%q", status))
	}
	return strings.Join(names, ", ")
}
