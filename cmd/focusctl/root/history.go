package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"focustrack/internal/ui/theme"
)

func newHistoryCmd(opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 1 {
				return fmt.Errorf("--limit must be at least 1")
			}
			store, cleanup, err := openStore(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, theme.Heading(theme.IconScroll, "History"))
			sessions := store.Sessions()
			if len(sessions) == 0 {
				fmt.Fprintln(out, theme.Muted.Render("No sessions yet."))
				return nil
			}
			for i, session := range sessions {
				if i == limit {
					break
				}
				line := fmt.Sprintf("- %s %s %s",
					theme.Muted.Render(session.Date.Local().Format("2006-01-02 15:04")),
					theme.Key.Render(session.Type),
					fmt.Sprintf("%d min", session.Duration),
				)
				if session.Note != "" {
					line += " " + theme.Muted.Render("· "+session.Note)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "number of sessions to show")
	return cmd
}
