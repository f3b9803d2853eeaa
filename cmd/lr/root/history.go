package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saportinsta65/life-rpg/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var date string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent sessions and daily scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()

			sessions := svc.Sessions()
			if date != "" {
				sessions = svc.SessionsOn(date)
			}
			if limit > 0 && len(sessions) > limit {
				sessions = sessions[len(sessions)-limit:]
			}

			fmt.Fprintln(out, ui.Heading(ui.IconTimer, "Sessions"))
			if len(sessions) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No sessions recorded."))
			}
			for _, s := range sessions {
				mark := ui.Bad.Render(ui.IconFail)
				if s.Completed {
					mark = ui.Good.Render(ui.IconDone)
				}
				fmt.Fprintf(out, "%s %s  %s  %d min  %+d pts  %d xp\n",
					mark, s.StartedAt.Format("2006-01-02 15:04"), s.TaskTitle,
					s.DurationMin, s.RewardClaimed+s.PenaltyApplied, s.XPEarned)
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📅 Daily scores"))
			for _, d := range svc.DailyScores() {
				fmt.Fprintf(out, "- %s  net %+d · %d xp · %d done · %d failed · %d punishments\n",
					d.Date, d.NetScore, d.TotalXPEarned, d.TasksCompleted, d.TasksFailed, d.PunishmentsDone)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Only sessions on this date (YYYY-MM-DD)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Max sessions to show (0 = all)")

	return cmd
}
