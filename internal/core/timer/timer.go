package timer

import (
	"sync"
	"time"

	"focustrack/internal/core/model"
)

// Config contains runtime options for Engine.
type Config struct {
	TickInterval time.Duration
	// NewTicker builds the periodic source for each countdown. Defaults to
	// time.NewTicker.
	NewTicker func(time.Duration) Ticker
	// Manual disables the countdown goroutine. Ticks are then applied only
	// through Engine.Tick.
	Manual bool
	Now    func() time.Time
}

// countdown is the handle to the one scheduled tick source. Only ticks
// delivered by the handle stored in Engine.active are applied.
type countdown struct {
	ticker Ticker
	stopCh chan struct{}
}

// Engine is a state machine counting down a single focus or break interval.
type Engine struct {
	mu          sync.Mutex
	options     Config
	state       State
	sessionType model.SessionType
	seconds     int
	active      *countdown
	events      []chan Event
	closed      bool
}

// New creates an idle Engine loaded with the full duration of sessionType.
func New(sessionType model.SessionType, options Config) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.NewTicker == nil {
		options.NewTicker = newSystemTicker
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	if !sessionType.Valid() {
		sessionType = model.SessionFocus
	}

	return &Engine{
		options:     options,
		state:       StateIdle,
		sessionType: sessionType,
		seconds:     fullSeconds(sessionType),
	}
}

// Subscribe registers a new observer channel.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		close(ch)
		return ch
	}
	engine.events = append(engine.events, ch)
	engine.mu.Unlock()
	return ch
}

// Start begins or resumes counting down. It is a no-op while running.
func (engine *Engine) Start() {
	engine.mu.Lock()
	if engine.closed || engine.state == StateRunning {
		engine.mu.Unlock()
		return
	}

	engine.cancelLocked()
	handle := &countdown{stopCh: make(chan struct{})}
	if !engine.options.Manual {
		handle.ticker = engine.options.NewTicker(engine.options.TickInterval)
	}
	engine.active = handle
	engine.state = StateRunning
	engine.emitLocked(engine.eventLocked(EventStateChange))
	engine.mu.Unlock()

	if handle.ticker != nil {
		go engine.run(handle)
	}
}

// Pause freezes the countdown, keeping the remaining time.
func (engine *Engine) Pause() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.state != StateRunning {
		return
	}
	engine.cancelLocked()
	engine.state = StatePaused
	engine.emitLocked(engine.eventLocked(EventStateChange))
}

// Reset stops counting and reloads the full duration of the current type.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.cancelLocked()
	engine.state = StateIdle
	engine.seconds = fullSeconds(engine.sessionType)
	engine.emitLocked(engine.eventLocked(EventStateChange))
}

// SwitchType stops counting and loads the full duration of sessionType.
func (engine *Engine) SwitchType(sessionType model.SessionType) {
	if !sessionType.Valid() {
		return
	}
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.cancelLocked()
	engine.sessionType = sessionType
	engine.state = StateIdle
	engine.seconds = fullSeconds(sessionType)
	engine.emitLocked(engine.eventLocked(EventStateChange))
}

// Tick applies one second to a manual Engine. On an Engine with a scheduled
// countdown the tick is not owned by the live countdown and is ignored.
func (engine *Engine) Tick() Outcome {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.active == nil || engine.active.ticker != nil {
		return Outcome{Kind: OutcomeIgnored}
	}
	return engine.stepLocked()
}

// Snapshot returns the current state.
func (engine *Engine) Snapshot() Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return Snapshot{
		State:       engine.state,
		SessionType: engine.sessionType,
		Remaining:   engine.remainingLocked(),
		Total:       engine.sessionType.Duration(),
		Progress:    engine.progressLocked(),
	}
}

// Close stops the countdown and closes observers.
func (engine *Engine) Close() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.closed = true
	engine.cancelLocked()
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (engine *Engine) run(handle *countdown) {
	for {
		select {
		case <-handle.stopCh:
			return
		case <-handle.ticker.C():
			engine.advance(handle)
		}
	}
}

func (engine *Engine) advance(handle *countdown) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.active != handle {
		return
	}
	engine.stepLocked()
}

func (engine *Engine) stepLocked() Outcome {
	if engine.state != StateRunning {
		return Outcome{Kind: OutcomeIgnored}
	}

	engine.seconds--
	if engine.seconds > 0 {
		engine.emitLocked(engine.eventLocked(EventTick))
		return Outcome{Kind: OutcomeTicking, Remaining: engine.remainingLocked()}
	}

	finished := engine.sessionType
	engine.cancelLocked()
	engine.state = StateIdle
	engine.seconds = fullSeconds(finished)
	engine.emitLocked(Event{
		Type:        EventCompleted,
		State:       StateIdle,
		SessionType: finished,
		Remaining:   0,
		Progress:    1,
		At:          engine.options.Now(),
	})
	return Outcome{Kind: OutcomeCompleted, Finished: finished}
}

// cancelLocked stops the live countdown, if any. Calling it with no
// countdown is a no-op.
func (engine *Engine) cancelLocked() {
	if engine.active == nil {
		return
	}
	close(engine.active.stopCh)
	if engine.active.ticker != nil {
		engine.active.ticker.Stop()
	}
	engine.active = nil
}

func (engine *Engine) eventLocked(eventType EventType) Event {
	return Event{
		Type:        eventType,
		State:       engine.state,
		SessionType: engine.sessionType,
		Remaining:   engine.remainingLocked(),
		Progress:    engine.progressLocked(),
		At:          engine.options.Now(),
	}
}

func (engine *Engine) remainingLocked() time.Duration {
	return time.Duration(engine.seconds) * time.Second
}

func (engine *Engine) progressLocked() float64 {
	total := fullSeconds(engine.sessionType)
	if total <= 0 {
		return 1
	}
	progress := float64(total-engine.seconds) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

func (engine *Engine) emitLocked(event Event) {
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func fullSeconds(sessionType model.SessionType) int {
	return int(sessionType.Duration() / time.Second)
}
