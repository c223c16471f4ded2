package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pookie4u/internal/progress"
	"pookie4u/internal/ui"
)

func newStreakCmd(flags *rootFlags) *cobra.Command {
	var breakIt bool

	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Check in for today without completing a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx, flags, cmd.OutOrStdout(), openOptions{})
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			if breakIt {
				a.eng.BreakStreak(ctx)
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" Streak broken"))
				return nil
			}

			res := a.eng.UpdateStreak(ctx)
			switch res.Transition {
			case progress.StreakSameDay:
				fmt.Fprintln(out, ui.Muted.Render("Already checked in today"))
			case progress.StreakReset:
				fmt.Fprintln(out, ui.Warn.Render("Streak restarted"))
			}
			fmt.Fprintln(out, ui.LabelValue("Streak", ui.StreakText(res.StreakAfter)))
			fmt.Fprintln(out, ui.LabelValue("Longest streak", res.LongestStreak))
			return nil
		},
	}

	cmd.Flags().BoolVar(&breakIt, "break", false, "Reset the current streak to zero")

	return cmd
}
