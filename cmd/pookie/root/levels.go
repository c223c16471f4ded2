package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"pookie4u/internal/progress"
	"pookie4u/internal/ui"
)

func newLevelsCmd() *cobra.Command {
	var upTo int

	cmd := &cobra.Command{
		Use:   "levels",
		Short: "Show the points needed for each level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if upTo < 1 || upTo > progress.MaxLevel {
				return fmt.Errorf("--to must be between 1 and %d", progress.MaxLevel)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Level thresholds"))
			thresholds := progress.LevelThresholds()
			for lvl := 1; lvl <= upTo; lvl++ {
				start := 0
				if lvl > 1 {
					start = thresholds[lvl-1]
				}
				if lvl == progress.MaxLevel {
					fmt.Fprintf(out, "%s %8d %s\n", ui.Key.Render(fmt.Sprintf("lvl %2d", lvl)), start, ui.Gold.Render("max"))
					continue
				}
				fmt.Fprintf(out, "%s %8d %s\n", ui.Key.Render(fmt.Sprintf("lvl %2d", lvl)), start, ui.Muted.Render(fmt.Sprintf("(+%d to next)", progress.PointsToLeaveLevel(lvl))))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&upTo, "to", 20, "Show levels 1..N")

	return cmd
}
