package root

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"focustrack/internal/ui/theme"
)

func newGoalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "goal [sessions]",
		Short: "Show or set the daily goal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var goal int
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("goal must be a number: %q", args[0])
				}
				goal = parsed
			}

			ctx := cmd.Context()
			store, cleanup, err := openStore(ctx, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) == 1 {
				store.SetDailyGoal(ctx, goal)
				fmt.Fprintln(cmd.OutOrStdout(), theme.Good.Render(theme.IconDone+" Daily goal set"))
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme.LabelValue(theme.IconGoal+" Daily goal", store.DailyGoal()))
			return nil
		},
	}
}
