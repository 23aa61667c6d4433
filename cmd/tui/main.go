package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gamenexus/gamenexus/internal/client"
	"github.com/gamenexus/gamenexus/internal/config"
	"github.com/gamenexus/gamenexus/internal/logging"
	"github.com/gamenexus/gamenexus/internal/navigator"
	"github.com/gamenexus/gamenexus/internal/tui"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_TUI_RUN") == "1" {
		return
	}
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gamenexus-tui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadClient()

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := client.New(client.Config{BaseURL: cfg.APIURL})
	nav := navigator.New(api, navigator.Options{Timeout: cfg.Timeout, Logger: logger})

	p := tea.NewProgram(tui.New(ctx, nav, api), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func newLogger(cfg config.ClientConfig) (*slog.Logger, func(), error) {
	var out io.Writer = io.Discard
	closeFn := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "gamenexus-tui",
		Version: appVersion,
		Output:  out,
	})
	return logger, closeFn, nil
}
