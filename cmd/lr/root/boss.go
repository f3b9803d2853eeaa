package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/saportinsta65/life-rpg/internal/engine"
	"github.com/saportinsta65/life-rpg/internal/ui"
)

func newBossCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boss",
		Short: "Track the weekly boss",
	}
	cmd.AddCommand(newBossShowCmd(), newBossRollCmd(), newBossHitCmd(), newBossReqCmd())
	return cmd
}

func printBoss(cmd *cobra.Command, boss *engine.WeeklyBoss) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Heading(ui.IconBoss, boss.Name), ui.Muted.Render("("+boss.Week+")"))
	fmt.Fprintf(out, "%s %d/%d %s\n", ui.Key.Render("HP:"), boss.HP-boss.Damage, boss.HP, ui.ProgressBar(boss.Damage, boss.HP, 25))
	for i, req := range boss.Requirements {
		mark := ui.Muted.Render("·")
		if req.Completed {
			mark = ui.Good.Render(ui.IconDone)
		}
		fmt.Fprintf(out, "%s [%d] %s %s\n", mark, i, req.Label, ui.Muted.Render(fmt.Sprintf("(%d dmg)", req.Damage)))
	}
	fmt.Fprintf(out, "%s %d xp, %d pts", ui.Key.Render("Reward:"), boss.Reward.XP, boss.Reward.PositivePoints)
	if boss.Reward.Loot != "" {
		fmt.Fprintf(out, ", %s", ui.Gold.Render(boss.Reward.Loot))
	}
	fmt.Fprintln(out)
	if boss.Defeated {
		fmt.Fprintln(out, ui.Gold.Render("DEFEATED"))
	}
}

func newBossShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show this week's boss (spawning one if needed)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			boss, err := svc.EnsureWeeklyBoss()
			if err != nil {
				return err
			}
			printBoss(cmd, boss)
			return nil
		},
	}
}

func newBossRollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roll",
		Short: "Discard the boss and spawn a fresh one for the current week",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			boss, err := svc.RollWeeklyBoss()
			if err != nil {
				return err
			}
			printBoss(cmd, boss)
			return nil
		},
	}
}

func newBossHitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hit <damage>",
		Short: "Deal damage to the boss",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("damage is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("damage must be an integer")
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

			dmg, _ := strconv.Atoi(args[0])
			boss, err := svc.DamageBoss(dmg)
			if err != nil {
				return err
			}
			printBoss(cmd, boss)
			return nil
		},
	}
}

func newBossReqCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "req <index>",
		Short: "Mark a boss requirement done and deal its damage",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requirement index is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("index must be an integer")
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

			idx, _ := strconv.Atoi(args[0])
			req, err := svc.CompleteBossRequirement(idx)
			if err != nil {
				return err
			}
			boss, err := svc.DamageBoss(req.Damage)
			if err != nil {
				return err
			}
			printBoss(cmd, boss)
			return nil
		},
	}
}
