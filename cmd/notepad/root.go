package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/notepad/internal/config"
)

var (
	verbose bool
	flags   config.CLIFlags
	noSeed  bool
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notepad",
	Short: "A small note keeper that never loses unsaved edits",
	Long: `Notepad keeps plain-text notes in a single stored collection.
Switching away from unsaved edits always asks first, and an autosave timer
writes the open note in the background while the shell is running.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		flags.NoSeed = noSeed
		loaded, err := config.Load(flags)
		if err != nil {
			return err
		}
		cfg = loaded

		level, err := cfg.SlogLevel()
		if err != nil {
			return err
		}
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)

		if cfg.Source != "" {
			logger.Debug("config loaded", "file", cfg.Source)
		}
		return nil
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	pf.StringVar(&flags.ConfigFile, "config", "", "Config file (default ~/.config/notepad/config.yaml)")
	pf.StringVar(&flags.Adapter, "adapter", "", "Storage adapter: fs, sqlite, bolt or memory")
	pf.StringVar(&flags.Path, "path", "", "Storage directory or database file")
	pf.StringVar(&flags.Key, "key", "", "Storage key of the note collection")
	pf.StringVar(&flags.Codec, "codec", "", "Stored format: json or yaml")
	pf.DurationVar(&flags.Autosave, "autosave", 0, "Autosave interval of the shell (default 30s)")
	pf.StringVar(&flags.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.BoolVar(&noSeed, "no-seed", false, "Do not create demo notes on first run")
}
