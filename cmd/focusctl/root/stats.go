package root

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"focustrack/internal/core/analytics"
	"focustrack/internal/ui/theme"
)

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show totals, streak and the last seven days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, cleanup, err := openStore(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer cleanup()

			stats := store.Stats()
			goal := store.DailyGoal()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, theme.Heading(theme.IconChart, "Focus Stats"))
			fmt.Fprintf(out, "%s %s\n", theme.LabelValue("Today", fmt.Sprintf("%d/%d", stats.TodaySessions, goal)), theme.ProgressBar(stats.GoalProgress(goal)/100, 20))
			fmt.Fprintln(out, theme.LabelValue("Total sessions", stats.TotalSessions))
			fmt.Fprintln(out, theme.LabelValue("Total minutes", stats.TotalMinutes))
			fmt.Fprintln(out, theme.LabelValue("Streak", fmt.Sprintf("%d days", stats.CurrentStreak)))
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, theme.H2.Render("Last 7 days"))
			fmt.Fprint(out, theme.Bars(analytics.WeekLabels(time.Now()), stats.WeekSessions, 20))
			return nil
		},
	}
}
