package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pookie4u/internal/ui"
)

const Version = "0.1.0"

type rootFlags struct {
	configFile string
	dbPath     string
	driver     string
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "pookie",
		Short:         "Pookie4u: points, levels, streaks and badges for couples",
		Long:          "Pookie4u tracks the love-task progress of one player: points, levels, daily streaks and badges, stored locally.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "Config file (default ./config/config.yaml or ~/.pookie4u/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.dbPath, "db", "", "SQLite database path (overrides storage.path)")
	cmd.PersistentFlags().StringVar(&flags.driver, "driver", "", "Storage driver: sqlite|redis|memory (overrides storage.driver)")

	cmd.AddCommand(
		newStatusCmd(flags),
		newCompleteCmd(flags),
		newStreakCmd(flags),
		newBadgesCmd(flags),
		newLevelsCmd(),
		newHistoryCmd(flags),
		newResetCmd(flags),
		newBoardCmd(flags),
	)
	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
