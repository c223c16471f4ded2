package root

import (
	"context"

	"github.com/spf13/cobra"

	"pookie4u/internal/tui"
)

func newBoardCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx, flags, cmd.OutOrStdout(), openOptions{logFeedback: true})
			if err != nil {
				return err
			}
			defer a.Close()

			return tui.RunBoard(ctx, a.eng, cmd.OutOrStdout())
		},
	}

	return cmd
}
