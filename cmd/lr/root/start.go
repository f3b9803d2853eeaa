package root

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saportinsta65/life-rpg/internal/tui"
)

func newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <task-id>",
		Short: "Start the timer for a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task id is required")
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

			if err := svc.StartTimer(args[0]); err != nil {
				return err
			}
			return tui.RunTimer(svc, cmd.OutOrStdout())
		},
	}
}

func newFreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "free [title]",
		Short: "Start a free timer (no task, no scoring)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.StartFreeTimer(strings.Join(args, " ")); err != nil {
				return err
			}
			return tui.RunTimer(svc, cmd.OutOrStdout())
		},
	}
}
