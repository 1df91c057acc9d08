package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/phrazzld/tasks-api/internal/api"
	"github.com/phrazzld/tasks-api/internal/client"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/spf13/cobra"
)

// newRootCmd builds the taskctl command tree.
func newRootCmd() *cobra.Command {
	var serverURL string

	rootCmd := &cobra.Command{
		Use:           "taskctl",
		Short:         "Manage tasks on a task list server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", client.DefaultBaseURL, "Base URL of the task server")

	newClient := func() (*client.Client, error) {
		return client.New(serverURL)
	}

	rootCmd.AddCommand(
		newListCmd(newClient),
		newAddCmd(newClient),
		newSetCompletedCmd(newClient, "done", "Mark a task as completed", true),
		newSetCompletedCmd(newClient, "undo", "Mark a task as not completed", false),
		newRenameCmd(newClient),
		newRemoveCmd(newClient),
	)

	return rootCmd
}

type clientFactory func() (*client.Client, error)

func newListCmd(newClient clientFactory) *cobra.Command {
	var pending, done bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			tasks, err := c.List(cmd.Context())
			if err != nil {
				return err
			}

			shown := 0
			for _, task := range tasks {
				if (pending && task.Completed) || (done && !task.Completed) {
					continue
				}
				printTask(cmd.OutOrStdout(), task)
				shown++
			}
			if shown == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&pending, "pending", false, "Only show tasks that are not completed")
	cmd.Flags().BoolVar(&done, "done", false, "Only show completed tasks")
	cmd.MarkFlagsMutuallyExclusive("pending", "done")

	return cmd
}

func newAddCmd(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title...>",
		Short: "Create a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			task, err := c.Create(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			printTask(cmd.OutOrStdout(), *task)
			return nil
		},
	}
}

func newSetCompletedCmd(newClient clientFactory, use, short string, completed bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}

			task, err := c.Update(cmd.Context(), id, api.UpdateTaskRequest{Completed: &completed})
			if err != nil {
				return err
			}
			printTask(cmd.OutOrStdout(), *task)
			return nil
		},
	}
}

func newRenameCmd(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <title...>",
		Short: "Change the title of a task",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}

			title := strings.Join(args[1:], " ")
			task, err := c.Update(cmd.Context(), id, api.UpdateTaskRequest{Title: &title})
			if err != nil {
				return err
			}
			printTask(cmd.OutOrStdout(), *task)
			return nil
		},
	}
}

func newRemoveCmd(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}

			deletedID, err := c.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %d\n", deletedID)
			return nil
		},
	}
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task ID %q", raw)
	}
	return id, nil
}

func printTask(w io.Writer, task domain.Task) {
	mark := " "
	if task.Completed {
		mark = "x"
	}
	fmt.Fprintf(w, "[%s] %d\t%s\n", mark, task.ID, task.Title)
}
