package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/llehouerou/tracknav/internal/app"
	"github.com/llehouerou/tracknav/internal/config"
	"github.com/llehouerou/tracknav/internal/errmsg"
	"github.com/llehouerou/tracknav/internal/library"
	"github.com/llehouerou/tracknav/internal/logging"
	"github.com/llehouerou/tracknav/internal/player"
	"github.com/llehouerou/tracknav/internal/session"
	"github.com/llehouerou/tracknav/internal/stderr"
	"github.com/llehouerou/tracknav/internal/terminal"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "tracknav",
	Short:         "Keyboard-driven playlist navigator",
	Long:          "tracknav browses the playlists of a local catalog with vim-style commands and plays their tracks.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runNavigator(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: XDG config dir, then ./config.toml)")
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(playlistsCmd)
}

// env is what every command needs after startup.
type env struct {
	cfg     *config.Config
	log     *slog.Logger
	catalog *library.Catalog
	closers []io.Closer
}

func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		_ = e.closers[i].Close()
	}
}

func setup() (*env, error) {
	if _, err := config.EnsureUserConfigDir(); err != nil {
		return nil, fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, logCloser, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
	}
	e := &env{cfg: cfg, log: log, closers: []io.Closer{logCloser}}

	cat, err := library.Open(cfg.Library.Catalog)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("%s: %w", errmsg.OpCatalogOpen, err)
	}
	e.catalog = cat
	e.closers = append(e.closers, cat)
	return e, nil
}

func runNavigator(ctx context.Context) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	if err := importIfEmpty(ctx, e); err != nil {
		return err
	}

	if !e.cfg.HasCredentials() {
		e.log.Info("no session credentials configured")
	}

	clock := player.NewClock(e.cfg.Player.DefaultTrackLength)
	defer clock.Close()

	sess := session.New(e.catalog, clock, session.Credentials{
		Username: e.cfg.Session.Username,
		Password: e.cfg.Session.Password,
	}, e.log)
	events := sess.Subscribe()

	capture, err := stderr.Start(e.log)
	if err != nil {
		e.log.Warn("stderr capture unavailable", "err", err)
	} else {
		defer capture.Stop()
	}

	term, err := terminal.Start(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
	}

	loop, err := app.New(sess, events, term, term, app.Options{
		PollTimeout: e.cfg.UI.PollInterval,
		Logger:      e.log,
	})
	if err != nil {
		_ = term.Close()
		return fmt.Errorf("%s: %w", errmsg.OpPlaylistsLoad, err)
	}

	err = loop.Run(term.Context())
	if closeErr := term.Close(); closeErr != nil {
		e.log.Error("terminal close", "err", closeErr)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
