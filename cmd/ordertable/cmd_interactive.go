package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ordertable/cmd/ordertable/ui"
	"ordertable/internal/logging"
	"ordertable/internal/seed"
	"ordertable/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// runInteractive starts the table UI, plus the seed watcher when enabled.
// Both run under one errgroup; quitting the UI stops the watcher.
func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := logging.Initialize(cfg.Logging.Settings()); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.CloseAll()
	logConfig(cfg)

	list, err := loadSeed(cfg)
	if err != nil {
		return err
	}
	s := store.New(list)

	sortState, err := cfg.InitialSort()
	if err != nil {
		return err
	}
	validator, err := cfg.Validator()
	if err != nil {
		return err
	}
	styles := ui.NewStyles(ui.ThemeFor(cfg.IsDark()))
	model := ui.NewOrderTableModel(s, ui.Options{
		Sort:      sortState,
		PageSize:  cfg.Table.PageSize,
		Validator: validator,
		Styles:    &styles,
	})

	base := cmd.Context()
	if base == nil {
		base = context.Background()
	}
	ctx, stop := signal.NotifyContext(base, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(gctx))

	// Send blocks until the update loop reads the message, and writes made
	// from inside Update notify on that same goroutine.
	unsubscribe := s.Subscribe(func(ev store.Event) {
		go p.Send(ui.StoreChangedMsg{Event: ev})
	})
	defer unsubscribe()

	if cfg.WatchSeed {
		w, err := seed.NewWatcher(cfg.SeedFile, s)
		if err != nil {
			return err
		}
		logging.BootDebug("seed watcher enabled for %s", cfg.SeedFile)
		g.Go(func() error { return watchSeed(gctx, w) })
	}

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})

	logging.Boot("ordertable started with %d orders", s.Len())
	return g.Wait()
}

// watchSeed runs w until ctx ends. The watcher is closed on every path.
func watchSeed(ctx context.Context, w *seed.Watcher) error {
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return err
	}
	<-ctx.Done()
	w.Stop()
	return nil
}
