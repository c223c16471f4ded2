package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pookie4u/internal/progress"
	"pookie4u/internal/ui"
)

func newCompleteCmd(flags *rootFlags) *cobra.Command {
	var daily, weekly bool

	cmd := &cobra.Command{
		Use:   "complete [points]",
		Short: "Complete a task and award its points",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("at most one points value")
			}
			if len(args) == 1 {
				if daily || weekly {
					return errors.New("points and --daily/--weekly are mutually exclusive")
				}
				if _, err := strconv.Atoi(args[0]); err != nil {
					return errors.New("points must be an integer")
				}
			}
			if daily && weekly {
				return errors.New("--daily and --weekly are mutually exclusive")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			points := progress.DailyTaskPoints
			switch {
			case len(args) == 1:
				points, _ = strconv.Atoi(args[0])
			case weekly:
				points = progress.WeeklyTaskPoints
			}

			ctx := context.Background()
			a, err := openApp(ctx, flags, cmd.OutOrStdout(), openOptions{})
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.eng.CompleteTask(ctx, points)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			xp := res.Experience
			fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf("+%d (%d → %d)", xp.PointsAwarded, xp.PointsBefore, xp.PointsAfter)))
			level := fmt.Sprintf("%d", xp.LevelAfter)
			if xp.LevelUp {
				level = fmt.Sprintf("%d → %d %s", xp.LevelBefore, xp.LevelAfter, ui.BadgeLevelUp)
			}
			fmt.Fprintln(out, ui.LabelValue("Level", level))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %s", ui.StreakText(res.Streak.StreakAfter), ui.Muted.Render("("+string(res.Streak.Transition)+")"))))
			fmt.Fprintln(out, ui.LabelValue("Tasks completed", res.TasksCompleted))
			return nil
		},
	}

	cmd.Flags().BoolVar(&daily, "daily", false, fmt.Sprintf("Daily task (%d points, the default)", progress.DailyTaskPoints))
	cmd.Flags().BoolVar(&weekly, "weekly", false, fmt.Sprintf("Weekly task (%d points)", progress.WeeklyTaskPoints))

	return cmd
}
