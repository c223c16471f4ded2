package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pookie4u/internal/ui"
)

func newHistoryCmd(flags *rootFlags) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently completed tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx, flags, cmd.OutOrStdout(), openOptions{})
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			if a.journal == nil {
				fmt.Fprintln(out, ui.Muted.Render("History is only kept with the sqlite driver"))
				return nil
			}
			list, err := a.journal.ListRecent(ctx, limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Recent tasks"))
			if len(list) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing yet. Complete a task with `pookie complete`."))
				return nil
			}
			for _, c := range list {
				fmt.Fprintf(out, "- %s %s\n", ui.Muted.Render(c.CompletedAt.Local().Format("2006-01-02 15:04")), ui.Good.Render(fmt.Sprintf("+%d", c.Points)))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show")

	return cmd
}
