package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pookie4u/internal/ui"
)

func newResetCmd(flags *rootFlags) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("reset erases all progress; re-run with --yes to confirm")
			}

			ctx := context.Background()
			a, err := openApp(ctx, flags, cmd.OutOrStdout(), openOptions{})
			if err != nil {
				return err
			}
			defer a.Close()

			a.eng.Reset(ctx)
			if a.journal != nil {
				if err := a.journal.Clear(ctx); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconReset+" Progress reset"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")

	return cmd
}
