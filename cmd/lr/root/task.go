package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saportinsta65/life-rpg/internal/engine"
	"github.com/saportinsta65/life-rpg/internal/ui"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(newTaskAddCmd(), newTaskListCmd(), newTaskEditCmd(), newTaskRmCmd())
	return cmd
}

func newTaskAddCmd() *cobra.Command {
	var recurrence string
	var domain string
	var target int
	var reward int
	var penalty int
	var xp int
	var diff string
	var streakKey string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
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

			difficulty, err := engine.ParseDifficulty(diff)
			if err != nil {
				return err
			}

			task, err := svc.CreateTask(engine.TaskInput{
				Title:           args[0],
				Recurrence:      engine.Recurrence(recurrence),
				Domain:          engine.LifeDomain(domain),
				TargetMin:       target,
				RewardPositive:  reward,
				PenaltyNegative: penalty,
				XP:              xp,
				Difficulty:      difficulty,
				StreakKey:       streakKey,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Added"), task.Title, ui.Muted.Render("("+task.ID+")"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Target", fmt.Sprintf("%d min", task.TargetMin)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Reward", fmt.Sprintf("+%d / %d", task.RewardPositive, task.PenaltyNegative)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&recurrence, "recur", "r", "daily", "Recurrence (daily|weekly|one-time)")
	cmd.Flags().StringVar(&domain, "domain", "personal", "Life domain (learning|work|finance|fun|health|personal)")
	cmd.Flags().IntVarP(&target, "target", "t", 30, "Target duration in minutes")
	cmd.Flags().IntVar(&reward, "reward", 5, "Positive points on success")
	cmd.Flags().IntVar(&penalty, "penalty", -5, "Negative points on failure (non-positive)")
	cmd.Flags().IntVar(&xp, "xp", 25, "Base XP")
	cmd.Flags().StringVarP(&diff, "diff", "d", "Normal", "Difficulty (Easy|Normal|Hard|VeryHard)")
	cmd.Flags().StringVar(&streakKey, "streak", "", "Streak key (consecutive-day counter)")

	return cmd
}

func newTaskListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tasks := svc.Tasks()
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No tasks yet."))
				return nil
			}
			for _, t := range tasks {
				state := ui.Good.Render("active")
				if !t.Active {
					state = ui.Muted.Render("inactive")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s\n", ui.Key.Render(t.ID), t.Title, state)
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", ui.Muted.Render(fmt.Sprintf(
					"%s · %s · %d min · +%d/%d pts · %d xp · %s",
					t.Recurrence, t.Domain, t.TargetMin, t.RewardPositive, t.PenaltyNegative, t.XP, t.Difficulty)))
			}
			return nil
		},
	}
}

func newTaskEditCmd() *cobra.Command {
	var title string
	var target int
	var active bool

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var up engine.TaskUpdate
			if cmd.Flags().Changed("title") {
				up.Title = &title
			}
			if cmd.Flags().Changed("target") {
				up.TargetMin = &target
			}
			if cmd.Flags().Changed("active") {
				up.Active = &active
			}

			task, err := svc.UpdateTask(args[0], up)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Updated"), task.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().IntVarP(&target, "target", "t", 0, "New target duration in minutes")
	cmd.Flags().BoolVar(&active, "active", true, "Active flag")

	return cmd
}

func newTaskRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.DeleteTask(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Removed"), args[0])
			return nil
		},
	}
}
