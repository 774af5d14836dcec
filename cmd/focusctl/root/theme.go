package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"focustrack/internal/ui/theme"
)

func newThemeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light]",
		Short:     "Show or set the colour theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"dark", "light"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, cleanup, err := openStore(ctx, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) == 1 {
				store.SetDarkMode(ctx, args[0] == "dark")
			}
			if store.DarkMode() {
				fmt.Fprintln(cmd.OutOrStdout(), theme.LabelValue("Theme", theme.IconMoon+" dark"))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), theme.LabelValue("Theme", theme.IconSun+" light"))
			}
			return nil
		},
	}
}
