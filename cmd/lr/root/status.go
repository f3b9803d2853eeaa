package root

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/saportinsta65/life-rpg/internal/ui"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show player stats, streaks and today's score",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p := svc.Player()
			toNext := p.NextLevelXP - p.TotalXP
			if toNext < 0 {
				toNext = 0
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconXP, "Player Status"))
			fmt.Fprintln(out, ui.LabelValue("Level", p.Level))
			fmt.Fprintln(out, ui.LabelValue("Total XP", fmt.Sprintf("%d (next at %d, %d to go)", p.TotalXP, p.NextLevelXP, toNext)))
			fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf("%s %d   %s %d", ui.IconCoin, p.PositiveBalance, ui.IconDebt, p.NegativeBalance)))
			fmt.Fprintln(out, ui.LabelValue("Lifetime", fmt.Sprintf("+%d / -%d", p.LifetimePositive, p.LifetimeNegative)))
			fmt.Fprintln(out, "")

			if len(p.Streaks) > 0 {
				fmt.Fprintln(out, ui.H2.Render(ui.IconStreak+" Streaks"))
				keys := make([]string, 0, len(p.Streaks))
				for k := range p.Streaks {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Fprintf(out, "- %s: %d days\n", k, p.Streaks[k])
				}
				fmt.Fprintln(out, "")
			}

			today := time.Now().Format("2006-01-02")
			if score, ok := svc.DailyScoreFor(today); ok {
				fmt.Fprintln(out, ui.H2.Render("📅 Today"))
				fmt.Fprintf(out, "- net %+d (%+d / %d) · %d xp · %d done · %d failed · %d punishments\n",
					score.NetScore, score.PositivePoints, score.NegativePoints,
					score.TotalXPEarned, score.TasksCompleted, score.TasksFailed, score.PunishmentsDone)
				fmt.Fprintln(out, "")
			}

			if boss := svc.WeeklyBossState(); boss != nil {
				fmt.Fprintln(out, ui.H2.Render(ui.IconBoss+" "+boss.Name))
				fmt.Fprintf(out, "- %s · HP %d/%d %s\n", boss.Week, boss.HP-boss.Damage, boss.HP, ui.ProgressBar(boss.Damage, boss.HP, 20))
				if boss.Defeated {
					fmt.Fprintln(out, "- "+ui.Gold.Render("DEFEATED"))
				}
			}

			return nil
		},
	}
}
