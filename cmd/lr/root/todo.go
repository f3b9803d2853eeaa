package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/saportinsta65/life-rpg/internal/engine"
	"github.com/saportinsta65/life-rpg/internal/ui"
)

func newTodoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage checklist items",
	}
	cmd.AddCommand(newTodoAddCmd(), newTodoListCmd(), newTodoDoneCmd(), newTodoRmCmd(), newTodoRemindCmd())
	return cmd
}

func newTodoAddCmd() *cobra.Command {
	var priority string
	var dueDate string
	var dueTime string
	var remindAt string
	var tags []string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a checklist item",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			in := engine.ChecklistInput{
				Title:    args[0],
				Priority: engine.Priority(priority),
				DueDate:  dueDate,
				DueTime:  dueTime,
				Tags:     tags,
			}
			if remindAt != "" {
				t, err := time.Parse(time.RFC3339, remindAt)
				if err != nil {
					return fmt.Errorf("parse reminder time: %w", err)
				}
				in.ReminderAt = &t
			}

			item, err := svc.CreateChecklistItem(in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconTodo+" Added"), item.Title, ui.Muted.Render("("+item.ID+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (low|medium|high)")
	cmd.Flags().StringVar(&dueDate, "due", "", "Due date")
	cmd.Flags().StringVar(&dueTime, "at", "", "Due time (HH:MM)")
	cmd.Flags().StringVar(&remindAt, "remind", "", "Reminder time (RFC 3339)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tags")

	return cmd
}

func newTodoListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List checklist items",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			for _, it := range svc.ChecklistItems() {
				mark := ui.Muted.Render("·")
				if it.Completed {
					mark = ui.Good.Render(ui.IconDone)
				}
				line := fmt.Sprintf("%s %s %s  %s", mark, ui.Key.Render(it.ID), it.Title, ui.Muted.Render(string(it.Priority)))
				if it.ReminderAt != nil {
					line += " " + ui.Muted.Render(ui.IconBell+it.ReminderAt.Format(" 2006-01-02 15:04"))
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

func newTodoDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a checklist item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			item, err := svc.ToggleChecklistItem(args[0])
			if err != nil {
				return err
			}
			if item.Completed {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Done"), item.Title)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Reopened"), item.Title)
			}
			return nil
		},
	}
}

func newTodoRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a checklist item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.DeleteChecklistItem(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Removed"), args[0])
			return nil
		},
	}
}

// todo remind polls for reminders due right now; an external notifier
// would run this on a cadence and deliver however it likes.
func newTodoRemindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Print reminders due now (each fires once)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			due, err := svc.DueReminders(time.Now())
			if err != nil {
				return err
			}
			if len(due) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing due."))
				return nil
			}
			for _, it := range due {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconBell+" "+it.Title))
			}
			return nil
		},
	}
}
