package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/five82/quill/internal/config"
	"github.com/five82/quill/internal/i18n"
	"github.com/five82/quill/internal/logging"
	"github.com/five82/quill/internal/prefs"
	"github.com/five82/quill/internal/share"
	"github.com/five82/quill/internal/state"
	"github.com/five82/quill/internal/store"
	"github.com/five82/quill/internal/ui"
)

// Options configure the quill application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/quill/prefs.toml
	PollEvery  int    // seconds; zero uses the configured interval
	Verbose    bool
}

// Run boots the quill TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	logger, err := logging.New(logging.Options{
		File:    cfg.LogFile,
		Level:   cfg.LogLevel,
		Verbose: opts.Verbose,
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Close() }()

	logger.Info("starting quill", "backend", cfg.Backend, "data_dir", cfg.DataDir)

	notes, err := OpenStore(ctx, cfg, logger.Logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := notes.Close(); err != nil {
			logger.Warn("close store", "err", err)
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var changes <-chan struct{}
	if w, ok := notes.(store.Watcher); ok {
		changes, err = w.Watch(ctx)
		if err != nil {
			// Polling still picks up external edits, only later.
			logger.Warn("watch store", "err", err)
		}
	}

	interval := cfg.PollInterval()
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	snapshot := &state.Store{}
	poller := NewPoller(notes, snapshot, interval, changes, logger.Logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return poller.Run(gctx)
	})
	g.Go(func() error {
		// Leaving the UI stops the poller.
		defer cancel()
		return ui.Run(ui.Options{
			Context:   gctx,
			Store:     notes,
			Snapshot:  snapshot,
			Sharer:    share.NewClipboardSharer(),
			Strings:   i18n.FromEnv(cfg.Locale),
			Logger:    logger.Logger,
			Config:    cfg,
			Prefs:     userPrefs,
			PrefsPath: opts.PrefsPath,
		})
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	logger.Info("quill stopped")
	return err
}

// OpenStore opens the backend selected by cfg.
func OpenStore(ctx context.Context, cfg config.Config, logger *log.Logger) (store.Store, error) {
	notes, err := store.Open(ctx, store.Options{
		Backend: cfg.Backend,
		Dir:     cfg.DataDir,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}
	return notes, nil
}
