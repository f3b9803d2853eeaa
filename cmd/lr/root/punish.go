package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saportinsta65/life-rpg/internal/engine"
	"github.com/saportinsta65/life-rpg/internal/ui"
)

func newPunishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "punish",
		Short: "Manage and complete punishments (clear negative points)",
	}
	cmd.AddCommand(newPunishAddCmd(), newPunishListCmd(), newPunishEditCmd(), newPunishDoCmd(), newPunishRmCmd())
	return cmd
}

func newPunishAddCmd() *cobra.Command {
	var clears int
	var xpBonus int
	var diff string
	var category string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a punishment",
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
			pun, err := svc.CreatePunishment(engine.PunishmentInput{
				Title:      args[0],
				Clears:     clears,
				XPBonus:    xpBonus,
				Difficulty: difficulty,
				Category:   category,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconSword+" Added"), pun.Title, ui.Muted.Render(fmt.Sprintf("(clears %d, +%d xp)", pun.Clears, pun.XPBonus)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&clears, "clears", "c", 5, "Negative points cleared")
	cmd.Flags().IntVar(&xpBonus, "xp", 10, "XP bonus granted")
	cmd.Flags().StringVarP(&diff, "diff", "d", "Normal", "Difficulty (Easy|Normal|Hard|VeryHard)")
	cmd.Flags().StringVar(&category, "category", "", "Category")

	return cmd
}

func newPunishListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List punishments",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			debt := svc.Player().NegativeBalance
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSword, "Punishment Arena"), ui.Muted.Render(fmt.Sprintf("(debt %d)", debt)))
			for _, p := range svc.Punishments() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s\n", ui.Key.Render(p.ID), p.Title,
					ui.Muted.Render(fmt.Sprintf("clears %d · +%d xp · %s", p.Clears, p.XPBonus, p.Difficulty)))
			}
			return nil
		},
	}
}

func newPunishEditCmd() *cobra.Command {
	var title string
	var clears int
	var xpBonus int
	var active bool

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a punishment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var up engine.PunishmentUpdate
			if cmd.Flags().Changed("title") {
				up.Title = &title
			}
			if cmd.Flags().Changed("clears") {
				up.Clears = &clears
			}
			if cmd.Flags().Changed("xp") {
				up.XPBonus = &xpBonus
			}
			if cmd.Flags().Changed("active") {
				up.Active = &active
			}

			pun, err := svc.UpdatePunishment(args[0], up)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Updated"), pun.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().IntVarP(&clears, "clears", "c", 0, "Negative points cleared")
	cmd.Flags().IntVar(&xpBonus, "xp", 0, "XP bonus granted")
	cmd.Flags().BoolVar(&active, "active", true, "Active flag")

	return cmd
}

func newPunishDoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a punishment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompletePunishment(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconSword+" Done:"), res.Punishment.Title)
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Cleared", res.Cleared))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Debt", res.Balance))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("XP", fmt.Sprintf("+%d", res.Punishment.XPBonus)))
			if res.LevelUp {
				fmt.Fprintln(cmd.OutOrStdout(), ui.BadgeLevelUp+fmt.Sprintf(" → level %d", res.LevelAfter))
			}
			return nil
		},
	}
}

func newPunishRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a punishment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.DeletePunishment(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Removed"), args[0])
			return nil
		},
	}
}
