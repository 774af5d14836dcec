package pomodoro

import (
	"context"
	"fmt"
	"log/slog"

	"focustrack/internal/core/analytics"
	"focustrack/internal/core/model"
	"focustrack/internal/core/timer"
	"focustrack/internal/logging"
	"focustrack/internal/platform"
)

// Notifier delivers the completion notification.
type Notifier interface {
	Notify(ctx context.Context, notification platform.Notification) error
}

// Options configures a Controller.
type Options struct {
	AutoSwitch    bool
	Notifications bool
	Notifier      Notifier
	Logger        *slog.Logger
}

// Completion is the result of saving a finished interval.
type Completion struct {
	Session analytics.Session
	Earned  []analytics.Badge
	// Next is the type loaded after the save. It equals the finished type
	// when auto switch is off or the timer was changed meanwhile.
	Next model.SessionType
}

// Controller connects a timer Engine to an analytics Store: it announces
// finished intervals, saves them and moves the timer on to the next type.
type Controller struct {
	engine  *timer.Engine
	store   *analytics.Store
	options Options
	logger  *slog.Logger
}

// New creates a Controller.
func New(engine *timer.Engine, store *analytics.Store, options Options) *Controller {
	if options.Notifier == nil {
		options.Notifier = platform.NopNotifier()
	}
	return &Controller{
		engine:  engine,
		store:   store,
		options: options,
		logger:  logging.Default(options.Logger),
	}
}

func (controller *Controller) Engine() *timer.Engine {
	return controller.engine
}

func (controller *Controller) Store() *analytics.Store {
	return controller.store
}

// Finished announces that an interval of sessionType reached zero.
func (controller *Controller) Finished(ctx context.Context, sessionType model.SessionType) {
	controller.logger.Info("session finished", "type", sessionType)
	if !controller.options.Notifications {
		return
	}
	notification := platform.Notification{
		Title: "🎉 Session complete!",
		Body:  fmt.Sprintf("Nice work! You completed a %d-minute %s session.", sessionType.Minutes(), sessionType.Label()),
	}
	if err := controller.options.Notifier.Notify(ctx, notification); err != nil {
		controller.logger.Warn("notification failed", "err", err)
	}
}

// Save records the finished interval with note. With auto switch enabled the
// timer loads the other type, unless the user already moved it off the
// finished interval.
func (controller *Controller) Save(ctx context.Context, finished model.SessionType, note string) Completion {
	session, added := controller.store.RecordCompletion(ctx, finished, note)
	completion := Completion{Session: session, Next: finished}
	for _, id := range added {
		if badge, ok := analytics.LookupBadge(id); ok {
			completion.Earned = append(completion.Earned, badge)
		}
	}
	controller.logger.Info("session saved", "id", session.ID, "type", finished, "badges", added)

	if !controller.options.AutoSwitch {
		return completion
	}
	snapshot := controller.engine.Snapshot()
	if snapshot.State != timer.StateIdle || snapshot.SessionType != finished {
		return completion
	}
	controller.engine.SwitchType(finished.Other())
	completion.Next = finished.Other()
	return completion
}

// Discard drops a finished interval without saving it.
func (controller *Controller) Discard(finished model.SessionType) {
	controller.logger.Info("session discarded", "type", finished)
}

// Status renders the one line summary shown in the tray and terminal, e.g.
// "Focus 24:13 · Today 2/4 · Streak 3".
func (controller *Controller) Status() string {
	snapshot := controller.engine.Snapshot()
	stats := controller.store.Stats()
	label := "Focus"
	if snapshot.SessionType == model.SessionBreak {
		label = "Break"
	}
	status := fmt.Sprintf("%s %s · Today %d/%d · Streak %d",
		label,
		timer.FormatRemaining(snapshot.Remaining),
		stats.TodaySessions,
		controller.store.DailyGoal(),
		stats.CurrentStreak,
	)
	if snapshot.State == timer.StatePaused {
		status += " (paused)"
	}
	return status
}
