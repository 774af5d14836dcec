package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"focustrack/internal/ui/theme"
)

var errNotConfirmed = errors.New("clearing deletes every session, badge and preference; pass --yes to confirm")

func newClearCmd(opts *options) *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all sessions, badges and preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirmed {
				return errNotConfirmed
			}
			ctx := cmd.Context()
			store, cleanup, err := openStore(ctx, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			store.ClearAllData(ctx)
			fmt.Fprintln(cmd.OutOrStdout(), theme.Good.Render(theme.IconDone+" All data cleared"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm deletion")
	return cmd
}
