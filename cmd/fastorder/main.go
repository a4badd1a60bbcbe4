package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fastorder/internal/client"
	"fastorder/internal/clipboard"
	"fastorder/internal/config"
	"fastorder/internal/orchestrator"
	"fastorder/internal/session"
	"fastorder/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.ParseClientFlags(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := client.New(cfg.ServerURL, cfg.Token)

	if cfg.CheckHealth {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
		hctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := api.Health(hctx); err != nil {
			slog.Error("server unhealthy", "server", cfg.ServerURL, "error", err)
			return 1
		}
		fmt.Println("ok")
		return 0
	}

	var clip orchestrator.Clipboard = clipboard.System{}
	if cfg.NoClipboard {
		clip = &clipboard.Memory{}
	}

	// ───────────────────────── HEADLESS ─────────────────────────
	if cfg.Headless() {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
		return runOnce(ctx, cfg, orchestrator.New(api, clip))
	}

	// ───────────────────────── TUI ─────────────────────────
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		return 1
	}
	defer logFile.Close()
	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, nil)))

	sess := session.New(orchestrator.New(api, clip))
	p := tea.NewProgram(tui.New(sess), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		slog.Error("tui exited", "error", err)
		fmt.Fprintf(os.Stderr, "fastorder: %v\n", err)
		return 1
	}
	return 0
}

func runOnce(ctx context.Context, cfg config.ClientConfig, orch *orchestrator.Orchestrator) int {
	menu, err := readInput(cfg.MenuFile)
	if err != nil {
		slog.Error("read menu", "error", err)
		return 1
	}
	orders, err := readInput(cfg.OrdersFile)
	if err != nil {
		slog.Error("read orders", "error", err)
		return 1
	}

	out := orch.Submit(ctx, orchestrator.RawInputPair{ListMenu: menu, CurrentOrders: orders})

	var clipErr *orchestrator.ClipboardError
	if cfg.Print || errors.As(out.Err, &clipErr) {
		if out.Message != "" {
			fmt.Println(out.Message)
		}
	}

	if out.Status.Kind == orchestrator.KindError {
		fmt.Fprintln(os.Stderr, out.Status.Message)
		return 1
	}
	if !cfg.NoClipboard {
		fmt.Fprintln(os.Stderr, out.Status.Message)
	}
	return 0
}

// readInput returns "" for an unset path so the classifier sees an empty field.
func readInput(path string) (string, error) {
	switch path {
	case "":
		return "", nil
	case "-":
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	default:
		b, err := os.ReadFile(path)
		return string(b), err
	}
}
