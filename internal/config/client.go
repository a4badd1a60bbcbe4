package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const DefaultServerURL = "http://localhost:8080"

// ClientConfig configures the fastorder terminal client.
type ClientConfig struct {
	ServerURL   string
	Token       string
	MenuFile    string
	OrdersFile  string
	NoClipboard bool
	Print       bool
	LogFile     string
	CheckHealth bool
}

// Headless reports whether the client should submit once instead of
// starting the interactive UI.
func (c ClientConfig) Headless() bool {
	return c.MenuFile != "" || c.OrdersFile != ""
}

// ParseClientFlags reads flags, falling back to FASTORDER_* environment variables.
func ParseClientFlags(args []string, stderr io.Writer) (ClientConfig, error) {
	var cfg ClientConfig

	fs := flag.NewFlagSet("fastorder", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.ServerURL, "server", "", "API base URL (env FASTORDER_SERVER)")
	fs.StringVar(&cfg.Token, "token", "", "bearer token (env FASTORDER_TOKEN)")
	fs.StringVar(&cfg.MenuFile, "menu", "", "read the menu from a file ('-' for stdin) and submit once")
	fs.StringVar(&cfg.OrdersFile, "orders", "", "read current orders from a file ('-' for stdin) and submit once")
	fs.BoolVar(&cfg.NoClipboard, "no-clipboard", false, "do not touch the system clipboard")
	fs.BoolVar(&cfg.Print, "print", false, "print the generated message to stdout")
	fs.StringVar(&cfg.LogFile, "log", "", "log file (default: fastorder.log in the temp dir)")
	fs.BoolVar(&cfg.CheckHealth, "health", false, "probe the API health endpoint and exit")

	if err := fs.Parse(args); err != nil {
		return ClientConfig{}, err
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = getEnv("FASTORDER_SERVER", DefaultServerURL)
	}
	if cfg.Token == "" {
		cfg.Token = os.Getenv("FASTORDER_TOKEN")
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(os.TempDir(), "fastorder.log")
	}

	if cfg.MenuFile == "-" && cfg.OrdersFile == "-" {
		return ClientConfig{}, errors.New("only one of -menu and -orders can read stdin")
	}

	for _, path := range []string{cfg.MenuFile, cfg.OrdersFile} {
		if err := validateInputFile(path); err != nil {
			return ClientConfig{}, err
		}
	}

	// Without a clipboard the message would be lost unless printed.
	if cfg.NoClipboard {
		cfg.Print = true
	}

	return cfg, nil
}

var allowedInputExt = map[string]bool{
	"":     true,
	".txt": true,
	".md":  true,
	".csv": true,
}

// validateInputFile rejects input paths that are clearly not plain text.
func validateInputFile(path string) error {
	if path == "" || path == "-" {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !allowedInputExt[ext] {
		return fmt.Errorf("input file %s: file type not allowed", path)
	}
	return nil
}
