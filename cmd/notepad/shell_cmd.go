package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/lifecycle"
	"github.com/spf13/cobra"

	notelifecycle "github.com/aretw0/notepad/pkg/adapters/lifecycle"
	"github.com/aretw0/notepad/pkg/core"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Edit notes interactively with autosave",
	Long: `Shell opens an interactive session. The open note is autosaved on a
timer while it has unsaved changes, and switching notes with unsaved changes
asks whether to save, discard or cancel.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		store, blob, err := openStore(ctx)
		if err != nil {
			fatal("Error opening notes", err)
		}
		defer closeStore(store)

		sh := newShell(store, cmd.InOrStdin(), cmd.OutOrStdout())
		logger := slog.Default()

		lifecycle.Go(ctx, func(ctx context.Context) error {
			return notelifecycle.Autosave(ctx, store, notelifecycle.NewTicker(cfg.Autosave), logger)
		}, lifecycle.WithErrorHandler(func(err error) {
			logger.Error("autosave stopped", "error", err)
		}))

		if watchable, ok := blob.(core.Watchable); ok {
			watchExternal(ctx, sh, watchable, storeKey(), logger)
		}

		guard := &exitGuard{store: store}
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigs)
		go func() {
			for range sigs {
				quit, msg := guard.interrupt()
				sh.printf("\n%s\n", msg)
				if quit {
					closeStore(store)
					os.Exit(130)
				}
			}
		}()

		if err := sh.run(ctx); err != nil {
			fatal("Shell error", err)
		}
	},
}

func storeKey() string {
	if cfg.Key != "" {
		return cfg.Key
	}
	return core.DefaultKey
}

// watchExternal prints a notice whenever the stored notes change on disk
// without going through this session.
func watchExternal(ctx context.Context, sh *noteShell, w core.Watchable, key string, logger *slog.Logger) {
	events, err := w.Watch(ctx, key)
	if err != nil {
		logger.Warn("external change detection disabled", "error", err)
		return
	}

	src := notelifecycle.NewSource(events)
	if err := src.Start(ctx); err != nil {
		logger.Warn("external change detection disabled", "error", err)
		return
	}
	lifecycle.Go(ctx, func(ctx context.Context) error {
		for e := range src.Events() {
			sh.notifyExternal(e)
		}
		return nil
	})
}

// exitGuard decides what an interrupt does. With unsaved changes the first
// interrupt only warns; a second one quits.
type exitGuard struct {
	store interface{ BeforeExit() error }
	armed bool
}

func (g *exitGuard) interrupt() (quit bool, msg string) {
	if err := g.store.BeforeExit(); err == nil {
		return true, "Bye."
	}
	if g.armed {
		return true, "Quitting without saving."
	}
	g.armed = true
	return false, "You have unsaved changes. Save them, or press Ctrl-C again to quit without saving."
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
