package root

import (
	"context"
	"database/sql"
	"io"

	"go.uber.org/zap"

	"pookie4u/internal/config"
	"pookie4u/internal/feedback"
	"pookie4u/internal/logger"
	"pookie4u/internal/progress"
	"pookie4u/internal/storage"
)

// app is the application root: it owns the engine and everything injected into it.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	eng     *progress.Engine
	journal *storage.CompletionRepo // nil unless the store is SQLite
	closers []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

type openOptions struct {
	// logFeedback routes signals to the logger regardless of feedback.mode.
	// The TUI owns the terminal, so printed lines would tear it.
	logFeedback bool
}

func openApp(ctx context.Context, flags *rootFlags, out io.Writer, opts openOptions) (*app, error) {
	cfg, err := config.Load(flags.configFile)
	if err != nil {
		return nil, err
	}
	if flags.driver != "" {
		cfg.Storage.Driver = flags.driver
	}
	if flags.dbPath != "" {
		cfg.Storage.Path = flags.dbPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, log: log}
	a.closers = append(a.closers, func() { _ = log.Sync() })

	store := a.openStore(ctx)

	loc, err := cfg.Location()
	if err != nil {
		a.Close()
		return nil, err
	}

	mode := cfg.Feedback.Mode
	if opts.logFeedback && mode != "none" {
		mode = "log"
	}
	notifier := feedback.New(mode, out, cfg.Feedback.Bell, log)

	engOpts := []progress.Option{
		progress.WithNotifier(notifier),
		progress.WithLogger(log),
		progress.WithLocation(loc),
		progress.WithStorageKey(cfg.Storage.Key),
	}
	if a.journal != nil {
		engOpts = append(engOpts, progress.WithJournal(a.journal))
	}
	a.eng = progress.NewEngine(store, engOpts...)
	a.eng.Load(ctx)
	return a, nil
}

// openStore selects the configured store. When it cannot be opened the
// engine still runs, on an in-memory store that lasts for this process.
func (a *app) openStore(ctx context.Context) progress.Store {
	switch a.cfg.Storage.Driver {
	case config.DriverMemory:
		return storage.NewMemory()
	case config.DriverRedis:
		rs, err := storage.ConnectRedis(ctx, a.cfg.Storage.RedisURL, "pookie4u:")
		if err != nil {
			a.log.Warn("redis unavailable, progress will not be saved", zap.Error(err))
			return storage.NewMemory()
		}
		a.closers = append(a.closers, func() { _ = rs.Close() })
		return rs
	default:
		db, err := a.openSQLite(ctx)
		if err != nil {
			a.log.Warn("sqlite unavailable, progress will not be saved", zap.Error(err))
			return storage.NewMemory()
		}
		a.closers = append(a.closers, func() { _ = db.Close() })
		a.journal = storage.NewCompletionRepo(db)
		return storage.NewKVRepo(db)
	}
}

func (a *app) openSQLite(ctx context.Context) (*sql.DB, error) {
	path, err := storage.ResolveDBPath(a.cfg.Storage.Path)
	if err != nil {
		return nil, err
	}
	return storage.Open(ctx, path)
}
