package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"focustrack/internal/core/analytics"
	"focustrack/internal/core/model"
	"focustrack/internal/core/pomodoro"
	"focustrack/internal/core/timer"
	"focustrack/internal/logging"
	"focustrack/internal/platform"
	"focustrack/internal/storage"
	"focustrack/internal/ui/completion"
	"focustrack/internal/ui/dashboard"
	"focustrack/internal/ui/preferences"
	"focustrack/internal/ui/theme"
	"focustrack/internal/ui/tray"
	"focustrack/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const appName = "FocusTrack"

func main() {
	logger := logging.New(os.Stderr, slog.LevelInfo)

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Info("already running, activated the existing instance")
		}
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	configPath, err := storage.ResolveConfigPath(appName)
	if err != nil {
		logger.Error("resolve config path", "err", err)
		os.Exit(1)
	}
	config, err := storage.LoadConfig(configPath)
	if err != nil {
		logger.Error("load config", "path", configPath, "err", err)
		os.Exit(1)
	}
	if level, err := logging.ParseLevel(config.LogLevel); err == nil {
		logger = logging.New(os.Stderr, level)
	}
	slog.SetDefault(logger)
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := storage.SaveConfig(configPath, config); err != nil {
			logger.Warn("write default config", "err", err)
		}
	}

	ctx := logging.ContextWithLogger(context.Background(), logger)
	backend, err := storage.Open(ctx, config)
	if err != nil {
		logger.Error("open storage", "backend", config.StorageBackend, "path", config.DataPath, "err", err)
		os.Exit(1)
	}
	defer backend.Close()

	store := analytics.NewStore(backend, analytics.WithLogger(logger))
	store.Load(ctx)

	platformService := platform.NewService()
	if err := platform.SyncAutostart(platformService, appName, config.LaunchAtLogin); err != nil {
		logger.Warn("launch at login", "err", err)
	}

	notifier := platform.NopNotifier()
	if config.Notifications {
		if notifier, err = platform.NewNotifier(appName); err != nil {
			logger.Warn("desktop notifications unavailable", "err", err)
			notifier = platform.NopNotifier()
		}
	}
	defer notifier.Close()

	engine := timer.New(model.SessionFocus, timer.Config{})
	defer engine.Close()
	controller := pomodoro.New(engine, store, pomodoro.Options{
		AutoSwitch:    config.AutoSwitch,
		Notifications: config.Notifications,
		Notifier:      notifier,
		Logger:        logger,
	})

	fyneApp := app.NewWithID("io.focustrack.app")
	fyneApp.SetIcon(resources.MustIcon(resources.AppIcon))
	appTheme := theme.New(store.DarkMode())
	fyneApp.Settings().SetTheme(appTheme)

	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		logger.Error("system tray unsupported on this platform")
		return
	}

	trayWindow := fyneApp.NewWindow(appName)
	trayWindow.SetContent(widget.NewLabel("FocusTrack is running in the system tray."))
	trayWindow.SetCloseIntercept(func() {
		trayWindow.Hide()
	})
	trayWindow.Hide()
	desktopApp.SetSystemTrayWindow(trayWindow)

	dashboardWindow := dashboard.New(fyneApp, store, func() {
		store.ClearAllData(ctx)
		fyneApp.Settings().SetTheme(theme.New(store.DarkMode()))
		logger.Info("all data cleared")
	})

	completionWindow := completion.New(fyneApp, appTheme.Palette(), completion.Callbacks{
		OnSave: func(finished model.SessionType, note string) {
			result := controller.Save(ctx, finished, note)
			if message := completion.EarnedMessage(result.Earned); message != "" && config.Notifications {
				if err := notifier.Notify(ctx, platform.Notification{Title: "🏆 FocusTrack", Body: message}); err != nil {
					logger.Warn("notification failed", "err", err)
				}
			}
			dashboardWindow.Refresh()
		},
		OnDiscard: controller.Discard,
	})

	prefsWindow := preferences.New(fyneApp, preferences.FromState(store.Preferences(), config), func(updated preferences.Settings) {
		store.SetDailyGoal(ctx, updated.DailyGoal)
		store.SetDarkMode(ctx, updated.DarkMode)
		selected := theme.New(updated.DarkMode)
		fyneApp.Settings().SetTheme(selected)
		completionWindow.SetPalette(selected.Palette())

		next := updated.ApplyTo(config)
		if next != config {
			if err := storage.SaveConfig(configPath, next); err != nil {
				logger.Error("save config", "err", err)
			}
			if next.LaunchAtLogin != config.LaunchAtLogin {
				if err := platform.SyncAutostart(platformService, appName, next.LaunchAtLogin); err != nil {
					logger.Warn("launch at login", "err", err)
				}
			}
			if next.AutoSwitch != config.AutoSwitch || next.Notifications != config.Notifications {
				logger.Info("behaviour settings apply after restart")
			}
			config = next
		}
		dashboardWindow.Refresh()
	})

	idleIcon := resources.MustIcon(resources.TrayIdleIcon)
	runningIcon := resources.MustIcon(resources.TrayRunningIcon)
	pausedIcon := resources.MustIcon(resources.TrayPausedIcon)

	trayManager := tray.New(desktopApp, tray.Callbacks{
		OnStart:       engine.Start,
		OnPause:       engine.Pause,
		OnReset:       engine.Reset,
		OnFocus:       func() { engine.SwitchType(model.SessionFocus) },
		OnBreak:       func() { engine.SwitchType(model.SessionBreak) },
		OnDashboard:   dashboardWindow.Show,
		OnPreferences: prefsWindow.Show,
		OnQuit: func() {
			engine.Close()
			fyneApp.Quit()
		},
	})
	desktopApp.SetSystemTrayIcon(idleIcon)
	trayManager.SetStatus(controller.Status())

	go guard.Serve(func() {
		fyne.Do(dashboardWindow.Show)
	})

	events := engine.Subscribe(16)
	go func() {
		for event := range events {
			if event.Type == timer.EventCompleted {
				controller.Finished(ctx, event.SessionType)
			}
			fyne.Do(func() {
				handleEvent(event, desktopApp, trayManager, completionWindow, dashboardWindow, trayIcons{idle: idleIcon, running: runningIcon, paused: pausedIcon})
				trayManager.SetStatus(controller.Status())
			})
		}
	}()

	logger.Info("started", "config", configPath, "data", filepath.Clean(config.DataPath), "backend", config.StorageBackend)
	fyneApp.Run()
}

type trayIcons struct {
	idle    fyne.Resource
	running fyne.Resource
	paused  fyne.Resource
}

func handleEvent(event timer.Event, desktopApp desktop.App, trayManager *tray.Manager, completionWindow *completion.Window, dashboardWindow *dashboard.Window, icons trayIcons) {
	trayManager.SetRunning(event.State == timer.StateRunning)
	switch event.Type {
	case timer.EventCompleted:
		desktopApp.SetSystemTrayIcon(icons.idle)
		completionWindow.Show(event.SessionType)
		dashboardWindow.Refresh()
	case timer.EventStateChange:
		switch event.State {
		case timer.StateRunning:
			desktopApp.SetSystemTrayIcon(icons.running)
		case timer.StatePaused:
			desktopApp.SetSystemTrayIcon(icons.paused)
		default:
			desktopApp.SetSystemTrayIcon(icons.idle)
		}
	}
}
