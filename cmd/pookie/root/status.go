package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pookie4u/internal/progress"
	"pookie4u/internal/ui"
)

func newStatusCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, points, streaks and badges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx, flags, cmd.OutOrStdout(), openOptions{})
			if err != nil {
				return err
			}
			defer a.Close()

			printStatus(cmd, a.eng.Snapshot())
			return nil
		},
	}

	return cmd
}

func printStatus(cmd *cobra.Command, s progress.Snapshot) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Heading(ui.IconHeart, "Pookie Progress"))
	fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d / %d", s.CurrentLevel, progress.MaxLevel)))
	if s.CurrentLevel >= progress.MaxLevel {
		fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf("%d %s", s.TotalPoints, ui.Gold.Render("(max level)"))))
	} else {
		next := progress.ThresholdForLevel(s.CurrentLevel)
		fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf("%d (next level at %d, %d to go)", s.TotalPoints, next, s.PointsToNextLevel())))
	}
	fmt.Fprintf(out, "%s %d%%\n", ui.ProgressBar(s.ProgressPercent(), 24), s.ProgressPercent())
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, ui.LabelValue("Streak", ui.StreakText(s.CurrentStreak)))
	fmt.Fprintln(out, ui.LabelValue("Longest streak", s.LongestStreak))
	fmt.Fprintln(out, ui.LabelValue("Tasks completed", s.TasksCompleted))
	fmt.Fprintln(out, ui.LabelValue("Active days", s.ActiveDays))
	fmt.Fprintln(out, ui.LabelValue("Badges", fmt.Sprintf("%d / %d", progress.CountEarned(s), len(progress.BadgeCatalog()))))
	if s.LastActiveDate != nil {
		fmt.Fprintln(out, ui.LabelValue("Last active", ui.Muted.Render(s.LastActiveDate.Local().Format("Mon 2 Jan 2006 15:04"))))
	}
}
