package root

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"focustrack/internal/core/analytics"
	"focustrack/internal/ui/theme"
)

func newBadgesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "badges",
		Short: "Show earned and locked badges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, cleanup, err := openStore(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer cleanup()

			earned := store.Badges()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, theme.Heading(theme.IconTrophy, "Badges"))
			for _, badge := range analytics.Badges() {
				if slices.Contains(earned, badge.ID) {
					fmt.Fprintf(out, "- %s %s %s\n", badge.Icon, theme.Gold.Render(badge.Name), theme.Muted.Render(badge.Description))
					continue
				}
				fmt.Fprintf(out, "- %s %s %s\n", theme.IconLock, theme.Muted.Render(badge.Name), theme.Muted.Render(badge.Description))
			}
			return nil
		},
	}
}
