package config

import (
	"io"
	"testing"
)

func TestParseClientFlags_Defaults(t *testing.T) {
	t.Setenv("FASTORDER_SERVER", "")
	t.Setenv("FASTORDER_TOKEN", "")

	cfg, err := ParseClientFlags(nil, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ServerURL != DefaultServerURL {
		t.Errorf("expected %s, got %s", DefaultServerURL, cfg.ServerURL)
	}
	if cfg.Headless() {
		t.Error("expected interactive mode without input files")
	}
	if cfg.LogFile == "" {
		t.Error("expected a default log file")
	}
}

func TestParseClientFlags_EnvFallback(t *testing.T) {
	t.Setenv("FASTORDER_SERVER", "https://order.example.com")
	t.Setenv("FASTORDER_TOKEN", "tok")

	cfg, err := ParseClientFlags([]string{"-orders", "orders.txt"}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ServerURL != "https://order.example.com" || cfg.Token != "tok" {
		t.Errorf("env fallback not applied: %+v", cfg)
	}
	if !cfg.Headless() {
		t.Error("expected headless mode with -orders")
	}
}

func TestParseClientFlags_FlagsWin(t *testing.T) {
	t.Setenv("FASTORDER_SERVER", "https://env.example.com")

	cfg, err := ParseClientFlags([]string{"-server", "http://127.0.0.1:9000", "-no-clipboard"}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ServerURL != "http://127.0.0.1:9000" {
		t.Errorf("expected flag value, got %s", cfg.ServerURL)
	}
	if !cfg.Print {
		t.Error("-no-clipboard should imply -print")
	}
}

func TestParseClientFlags_Errors(t *testing.T) {
	if _, err := ParseClientFlags([]string{"-menu", "-", "-orders", "-"}, io.Discard); err == nil {
		t.Error("expected error when both inputs read stdin")
	}
	if _, err := ParseClientFlags([]string{"-menu", "menu.pdf"}, io.Discard); err == nil {
		t.Error("expected error for a non-text menu file")
	}
	if _, err := ParseClientFlags([]string{"-bogus"}, io.Discard); err == nil {
		t.Error("expected error for unknown flag")
	}
}
