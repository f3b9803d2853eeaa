package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saportinsta65/life-rpg/internal/engine"
	"github.com/saportinsta65/life-rpg/internal/ui"
)

func newGoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals",
	}
	cmd.AddCommand(newGoalAddCmd(), newGoalListCmd(), newGoalEditCmd(), newGoalDoneCmd(), newGoalRmCmd())
	return cmd
}

func newGoalAddCmd() *cobra.Command {
	var kind string
	var domain string
	var description string
	var targetDate string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a goal",
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

			goal, err := svc.CreateGoal(engine.GoalInput{
				Title:       args[0],
				Kind:        engine.GoalKind(kind),
				Domain:      engine.LifeDomain(domain),
				Description: description,
				TargetDate:  targetDate,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconGoal+" Added"), goal.Title, ui.Muted.Render("("+goal.ID+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "k", "weekly", "Goal type (daily|weekly|monthly|yearly)")
	cmd.Flags().StringVar(&domain, "domain", "personal", "Life domain")
	cmd.Flags().StringVar(&description, "desc", "", "Description")
	cmd.Flags().StringVar(&targetDate, "by", "", "Target date")

	return cmd
}

func newGoalListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			for _, g := range svc.Goals() {
				mark := ui.Muted.Render("·")
				if g.Completed {
					mark = ui.Good.Render(ui.IconDone)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s  %s\n", mark, ui.Key.Render(g.ID), g.Title,
					ui.Muted.Render(fmt.Sprintf("%s · %s", g.Kind, g.Domain)))
			}
			return nil
		},
	}
}

func newGoalEditCmd() *cobra.Command {
	var title string
	var kind string
	var domain string
	var description string
	var targetDate string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var up engine.GoalUpdate
			if cmd.Flags().Changed("title") {
				up.Title = &title
			}
			if cmd.Flags().Changed("type") {
				k := engine.GoalKind(kind)
				up.Kind = &k
			}
			if cmd.Flags().Changed("domain") {
				d := engine.LifeDomain(domain)
				up.Domain = &d
			}
			if cmd.Flags().Changed("desc") {
				up.Description = &description
			}
			if cmd.Flags().Changed("by") {
				up.TargetDate = &targetDate
			}

			goal, err := svc.UpdateGoal(args[0], up)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Updated"), goal.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVarP(&kind, "type", "k", "", "Goal type (daily|weekly|monthly|yearly)")
	cmd.Flags().StringVar(&domain, "domain", "", "Life domain")
	cmd.Flags().StringVar(&description, "desc", "", "Description")
	cmd.Flags().StringVar(&targetDate, "by", "", "Target date")

	return cmd
}

func newGoalDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a goal's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			goal, err := svc.ToggleGoal(args[0])
			if err != nil {
				return err
			}
			if goal.Completed {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Completed"), goal.Title)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Reopened"), goal.Title)
			}
			return nil
		},
	}
}

func newGoalRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.DeleteGoal(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Removed"), args[0])
			return nil
		},
	}
}
