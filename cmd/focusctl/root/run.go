package root

import (
	"github.com/spf13/cobra"

	"focustrack/internal/core/model"
	"focustrack/internal/core/pomodoro"
	"focustrack/internal/core/timer"
	"focustrack/internal/logging"
	"focustrack/internal/platform"
	"focustrack/internal/ui/tui"
)

func newRunCmd(opts *options) *cobra.Command {
	var startBreak bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the timer in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := logging.FromContext(ctx)
			store, cleanup, err := openStore(ctx, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			sessionType := model.SessionFocus
			if startBreak {
				sessionType = model.SessionBreak
			}
			engine := timer.New(sessionType, timer.Config{})
			defer engine.Close()

			notifier := platform.NopNotifier()
			if opts.config.Notifications {
				if notifier, err = platform.NewNotifier(appName); err != nil {
					logger.Warn("desktop notifications unavailable", "err", err)
					notifier = platform.NopNotifier()
				}
			}
			defer notifier.Close()

			controller := pomodoro.New(engine, store, pomodoro.Options{
				AutoSwitch:    opts.config.AutoSwitch,
				Notifications: opts.config.Notifications,
				Notifier:      notifier,
				Logger:        logger,
			})
			return tui.RunTimer(ctx, controller, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&startBreak, "break", false, "start with a break instead of a focus session")
	return cmd
}
