package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saportinsta65/life-rpg/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "lr",
	Short:         "Life-RPG turns your day into a scored, leveled game",
	Long:          "Life-RPG is a personal gamification engine: timed tasks earn XP, levels, points and streaks; failures cost you; a weekly boss keeps score.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newTaskCmd(),
		newStartCmd(),
		newFreeCmd(),
		newStatusCmd(),
		newHistoryCmd(),
		newShopCmd(),
		newPunishCmd(),
		newBossCmd(),
		newGoalCmd(),
		newTodoCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
