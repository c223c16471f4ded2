package progress

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"pookie4u/internal/storage"
)

// DefaultStorageKey is the key the mobile app has always used for the blob.
const DefaultStorageKey = "@pookie4u_game_data"

// Store is the local key/value persistence the engine writes its snapshot to.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Notifier receives fire-and-forget feedback signals. Errors are ignored.
type Notifier interface {
	TaskComplete(ctx context.Context) error
	LevelUp(ctx context.Context, level int) error
	Achievement(ctx context.Context, badge BadgeID) error
}

// Journal records completions outside the snapshot. Best-effort.
type Journal interface {
	RecordCompletion(ctx context.Context, points int, at time.Time) error
}

type nopNotifier struct{}

func (nopNotifier) TaskComplete(context.Context) error         { return nil }
func (nopNotifier) LevelUp(context.Context, int) error         { return nil }
func (nopNotifier) Achievement(context.Context, BadgeID) error { return nil }

// NopNotifier discards every signal.
func NopNotifier() Notifier { return nopNotifier{} }

// Engine owns one player's Snapshot. All methods are safe for concurrent use;
// a single mutex covers each mutate-then-persist sequence.
type Engine struct {
	mu   sync.Mutex
	snap Snapshot

	store    Store
	notifier Notifier
	journal  Journal
	log      *zap.Logger
	now      func() time.Time
	loc      *time.Location
	key      string
}

type Option func(*Engine)

func WithNotifier(n Notifier) Option {
	return func(e *Engine) {
		if n != nil {
			e.notifier = n
		}
	}
}

func WithJournal(j Journal) Option {
	return func(e *Engine) { e.journal = j }
}

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithClock replaces time.Now; tests use it to step across days.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLocation sets the zone whose midnight separates calendar days.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

func WithStorageKey(key string) Option {
	return func(e *Engine) {
		if key != "" {
			e.key = key
		}
	}
}

// NewEngine builds an engine holding default values. Call Load to hydrate it.
// A nil store is replaced by an in-memory one.
func NewEngine(store Store, opts ...Option) *Engine {
	if store == nil {
		store = storage.NewMemory()
	}
	e := &Engine{
		snap:     DefaultSnapshot(),
		store:    store,
		notifier: NopNotifier(),
		log:      zap.NewNop(),
		now:      time.Now,
		loc:      time.Local,
		key:      DefaultStorageKey,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With(zap.String("component", "progress"))
	return e
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snap.clone()
}

type signalKind int

// Signals fire in kind order: level-up, then task-complete, then badges.
const (
	signalLevelUp signalKind = iota
	signalTaskComplete
	signalAchievement
)

type signal struct {
	kind  signalKind
	level int
	badge BadgeID
}

// mutation collects what one public operation changed, so signals can be
// fired once the lock is released.
type mutation struct {
	signals   []signal
	newBadges []BadgeID
}

func (m *mutation) badgesSince(n int) []BadgeID {
	if len(m.newBadges) <= n {
		return nil
	}
	out := make([]BadgeID, len(m.newBadges)-n)
	copy(out, m.newBadges[n:])
	return out
}

func (e *Engine) emit(ctx context.Context, sigs []signal) {
	slices.SortStableFunc(sigs, func(a, b signal) int { return cmp.Compare(a.kind, b.kind) })
	for _, s := range sigs {
		e.fire(ctx, s)
	}
}

func (e *Engine) fire(ctx context.Context, s signal) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Debug("feedback notifier panicked", zap.Any("panic", r))
		}
	}()
	var err error
	switch s.kind {
	case signalTaskComplete:
		err = e.notifier.TaskComplete(ctx)
	case signalLevelUp:
		err = e.notifier.LevelUp(ctx, s.level)
	case signalAchievement:
		err = e.notifier.Achievement(ctx, s.badge)
	}
	if err != nil {
		e.log.Debug("feedback notifier failed", zap.Error(err))
	}
}
