package root

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"focustrack/internal/core/model"
	"focustrack/internal/logging"
	"focustrack/internal/storage"
	"focustrack/internal/ui/theme"
)

const (
	Version = "0.3.0"
	appName = "FocusTrack"
)

// options holds the persistent flags and the config they resolve to.
type options struct {
	configPath string
	memory     bool
	config     model.AppConfig
}

// NewRootCmd builds the focusctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "focusctl",
		Short:         "FocusTrack pomodoro timer and focus statistics",
		Long:          "focusctl runs the FocusTrack timer in the terminal and inspects the sessions, statistics and badges recorded by the tray app.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default <user config dir>/FocusTrack/config.yaml)")
	cmd.PersistentFlags().BoolVar(&opts.memory, "memory", false, "use in-memory storage; nothing is saved")

	cmd.AddCommand(
		newRunCmd(opts),
		newStatsCmd(opts),
		newHistoryCmd(opts),
		newBadgesCmd(opts),
		newGoalCmd(opts),
		newThemeCmd(opts),
		newClearCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs focusctl and exits 1 on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, theme.Bad.Render(theme.IconError+" "+err.Error()))
}

func (opts *options) load(cmd *cobra.Command) error {
	path := opts.configPath
	if path == "" {
		resolved, err := storage.ResolveConfigPath(appName)
		if err != nil {
			return err
		}
		path = resolved
	}
	config, err := storage.LoadConfig(path)
	if err != nil {
		return err
	}
	if opts.memory {
		config.StorageBackend = storage.BackendMemory
	}
	opts.config = config

	level, err := logging.ParseLevel(config.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(cmd.ErrOrStderr(), level)
	cmd.SetContext(logging.ContextWithLogger(cmd.Context(), logger))
	return nil
}
