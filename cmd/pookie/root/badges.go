package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pookie4u/internal/progress"
	"pookie4u/internal/ui"
)

func newBadgesCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "badges",
		Short: "List all badges and which ones are earned",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx, flags, cmd.OutOrStdout(), openOptions{})
			if err != nil {
				return err
			}
			defer a.Close()

			s := a.eng.Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, fmt.Sprintf("Badges (%d/%d)", progress.CountEarned(s), len(progress.BadgeCatalog()))))
			for _, ach := range progress.Achievements(s) {
				fmt.Fprintf(out, "- %s %s %s\n  %s\n", ach.Icon, ui.Key.Render(ach.Name), ui.EarnedText(ach.Earned), ui.Muted.Render(ach.Description))
			}
			return nil
		},
	}

	return cmd
}
