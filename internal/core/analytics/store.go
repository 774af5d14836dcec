package analytics

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"
	"time"

	"focustrack/internal/core/model"
	"focustrack/internal/logging"
	"focustrack/internal/storage"
)

// Storage keys. Values are JSON.
const (
	KeySessions  = "sessions"
	KeyStats     = "stats"
	KeyDarkMode  = "darkMode"
	KeyDailyGoal = "dailyGoal"
	KeyBadges    = "badges"
)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report storage failures.
func WithLogger(logger *slog.Logger) Option {
	return func(store *Store) {
		store.logger = logging.Default(logger)
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(store *Store) {
		if now != nil {
			store.now = now
		}
	}
}

// Store owns the session log, its derived stats, earned badges and
// preferences. Memory is updated first; persistence failures are logged and
// never returned.
type Store struct {
	mu       sync.RWMutex
	writeMu  sync.Mutex
	kv       storage.KV
	logger   *slog.Logger
	now      func() time.Time
	sessions []Session
	stats    Stats
	badges   []BadgeID
	prefs    model.Preferences
	lastID   int64
}

type entry struct {
	key   string
	value any
}

// NewStore creates an empty store backed by kv. Call Load to read persisted
// state.
func NewStore(kv storage.KV, options ...Option) *Store {
	store := &Store{
		kv:       kv,
		logger:   slog.Default(),
		now:      time.Now,
		sessions: []Session{},
		stats:    EmptyStats(),
		badges:   []BadgeID{},
		prefs:    model.DefaultPreferences(),
	}
	for _, option := range options {
		option(store)
	}
	return store
}

// Load reads persisted state. Stats are recomputed from the sessions and
// badges are re-evaluated, which repairs a save that was interrupted between
// keys. Unreadable keys keep their defaults.
func (store *Store) Load(ctx context.Context) {
	sessions := []Session{}
	var loadedSessions []Session
	if store.readJSON(ctx, KeySessions, &loadedSessions) && loadedSessions != nil {
		sessions = loadedSessions
	}

	var storedStats Stats
	hasStats := store.readJSON(ctx, KeyStats, &storedStats)

	badges := []BadgeID{}
	var loadedBadges []BadgeID
	if store.readJSON(ctx, KeyBadges, &loadedBadges) {
		badges = loadedBadges
	}

	prefs := model.DefaultPreferences()
	var darkMode bool
	if store.readJSON(ctx, KeyDarkMode, &darkMode) {
		prefs.DarkMode = darkMode
	}
	var dailyGoal int
	if store.readJSON(ctx, KeyDailyGoal, &dailyGoal) {
		prefs.DailyGoal = normalizeGoal(dailyGoal)
	}

	stats := ComputeStats(sessions, store.now())
	if hasStats && !stats.Equal(storedStats) {
		store.logger.Debug("stored stats differ from session log, using recomputed stats",
			"stored_sessions", storedStats.TotalSessions,
			"sessions", stats.TotalSessions)
	}
	badges, repaired := EarnBadges(stats, prefs.DailyGoal, badges)
	if len(repaired) > 0 {
		store.logger.Info("restored badges missing from storage", "badges", repaired)
	}

	var lastID int64
	for _, session := range sessions {
		lastID = max(lastID, session.ID)
	}

	store.mu.Lock()
	store.sessions = sessions
	store.stats = stats
	store.badges = badges
	store.prefs = prefs
	store.lastID = max(store.lastID, lastID)
	store.mu.Unlock()
}

// SaveSession prepends session to the log, recomputes stats and badges and
// persists sessions, stats and badges. It returns the badges this session
// earned.
func (store *Store) SaveSession(ctx context.Context, session Session) []BadgeID {
	store.mu.Lock()
	sessions := make([]Session, 0, len(store.sessions)+1)
	sessions = append(sessions, session)
	sessions = append(sessions, store.sessions...)

	stats := ComputeStats(sessions, store.now())
	badges, added := EarnBadges(stats, store.prefs.DailyGoal, store.badges)

	store.sessions = sessions
	store.stats = stats
	store.badges = badges
	store.lastID = max(store.lastID, session.ID)

	store.writeMu.Lock()
	store.mu.Unlock()
	defer store.writeMu.Unlock()

	store.persist(ctx,
		entry{key: KeySessions, value: sessions},
		entry{key: KeyStats, value: stats},
		entry{key: KeyBadges, value: badges},
	)
	return added
}

// RecordCompletion saves the session for a finished interval of sessionType.
func (store *Store) RecordCompletion(ctx context.Context, sessionType model.SessionType, note string) (Session, []BadgeID) {
	store.mu.Lock()
	completedAt := store.now()
	id := completedAt.UnixMilli()
	if id <= store.lastID {
		id = store.lastID + 1
	}
	store.lastID = id
	store.mu.Unlock()

	session := NewSession(id, sessionType, note, completedAt)
	return session, store.SaveSession(ctx, session)
}

// ClearAllData erases every persisted key and resets memory to a fresh
// store's defaults.
func (store *Store) ClearAllData(ctx context.Context) {
	store.mu.Lock()
	store.sessions = []Session{}
	store.stats = EmptyStats()
	store.badges = []BadgeID{}
	store.prefs = model.DefaultPreferences()

	store.writeMu.Lock()
	store.mu.Unlock()
	defer store.writeMu.Unlock()

	if err := store.kv.Clear(ctx); err != nil {
		store.logger.Error("clear storage failed", "err", err)
	}
}

// SetDarkMode updates and persists the theme preference.
func (store *Store) SetDarkMode(ctx context.Context, darkMode bool) {
	store.mu.Lock()
	store.prefs.DarkMode = darkMode
	store.writeMu.Lock()
	store.mu.Unlock()
	defer store.writeMu.Unlock()

	store.persist(ctx, entry{key: KeyDarkMode, value: darkMode})
}

// SetDailyGoal updates and persists the daily goal. Values below 1 are
// stored as 1.
func (store *Store) SetDailyGoal(ctx context.Context, dailyGoal int) {
	dailyGoal = normalizeGoal(dailyGoal)
	store.mu.Lock()
	store.prefs.DailyGoal = dailyGoal
	store.writeMu.Lock()
	store.mu.Unlock()
	defer store.writeMu.Unlock()

	store.persist(ctx, entry{key: KeyDailyGoal, value: dailyGoal})
}

// Sessions returns the log, newest first.
func (store *Store) Sessions() []Session {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return slices.Clone(store.sessions)
}

// Stats returns the stats computed at the last load or save.
func (store *Store) Stats() Stats {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.stats.Clone()
}

// Badges returns earned badge ids in the order they were earned.
func (store *Store) Badges() []BadgeID {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return slices.Clone(store.badges)
}

// Preferences returns the current preferences.
func (store *Store) Preferences() model.Preferences {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.prefs
}

func (store *Store) DailyGoal() int {
	return store.Preferences().DailyGoal
}

func (store *Store) DarkMode() bool {
	return store.Preferences().DarkMode
}

func (store *Store) readJSON(ctx context.Context, key string, target any) bool {
	raw, ok, err := store.kv.Get(ctx, key)
	if err != nil {
		store.logger.Error("read storage key failed", "key", key, "err", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		store.logger.Error("decode storage key failed", "key", key, "err", err)
		return false
	}
	return true
}

// persist writes entries in order. Callers hold writeMu.
func (store *Store) persist(ctx context.Context, entries ...entry) {
	values := make(map[string]string, len(entries))
	keys := make([]string, 0, len(entries))
	for _, item := range entries {
		data, err := json.Marshal(item.value)
		if err != nil {
			store.logger.Error("encode storage key failed", "key", item.key, "err", err)
			continue
		}
		values[item.key] = string(data)
		keys = append(keys, item.key)
	}

	if batch, ok := store.kv.(storage.BatchWriter); ok && len(values) > 1 {
		if err := batch.SetMany(ctx, values); err != nil {
			store.logger.Error("persist failed", "keys", keys, "err", err)
		}
		return
	}
	for _, key := range keys {
		if err := store.kv.Set(ctx, key, values[key]); err != nil {
			store.logger.Error("persist failed", "key", key, "err", err)
		}
	}
}

func normalizeGoal(dailyGoal int) int {
	if dailyGoal < 1 {
		return 1
	}
	return dailyGoal
}
