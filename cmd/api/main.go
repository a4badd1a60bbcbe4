package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fastorder/internal/auth"
	"fastorder/internal/config"
	"fastorder/internal/db"
	"fastorder/internal/llm"
	"fastorder/internal/order"
	"fastorder/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	issueToken := flag.String("issue-token", "", "print a bearer token for the named operator and exit")
	tokenTTL := flag.Duration("token-ttl", auth.DefaultTokenTTL, "lifetime of issued tokens")
	flag.Parse()

	if *issueToken != "" {
		if os.Getenv("APP_ENV") != "production" {
			_ = godotenv.Load()
		}
		token, err := auth.GenerateToken(*issueToken, []byte(os.Getenv("JWT_SECRET")), *tokenTTL)
		if err != nil {
			slog.Error("failed to issue token", "error", err)
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config error", "error", err)
		os.Exit(1)
	}

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ───────────────────────── LLM ─────────────────────────
	llmClient, err := newLLMClient(cfg.LLM)
	if err != nil {
		slog.Error("LLM init failed", "error", err)
		os.Exit(1)
	}

	// ───────────────────────── HISTORY ─────────────────────────
	var repo order.Repository
	if cfg.DatabaseURL != "" {
		pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database init failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		repo = order.NewPostgresRepository(pool)
	} else {
		slog.Info("DATABASE_URL not set, keeping order history in memory")
		repo = order.NewInMemoryRepository()
	}

	// ───────────────────────── HANDLERS ─────────────────────────
	orderService := order.NewService(llmClient, repo, cfg.OrderName, cfg.LLM.Timeout)
	orderHandler := order.NewHandler(orderService)

	var secret []byte
	if cfg.JWTSecret != "" {
		secret = []byte(cfg.JWTSecret)
	} else {
		slog.Warn("JWT_SECRET not set, /api is open")
	}

	r := router.NewRouter(orderHandler, router.Options{
		CORSOrigins: cfg.CORSOrigins,
		JWTSecret:   secret,
	})

	// ───────────────────────── START ─────────────────────────
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}()

	slog.Info("API listening", "port", cfg.Port, "provider", cfg.LLM.Provider, "model", cfg.LLM.Model)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("server closed")
}

func newLLMClient(cfg config.LLMConfig) (llm.Client, error) {
	var base llm.Client
	switch cfg.Provider {
	case config.ProviderGemini:
		base = llm.NewGeminiClient(cfg.APIKey, cfg.Model)
	default:
		c, err := llm.NewOpenAIClient(cfg.APIKey, cfg.BaseURL, cfg.Model)
		if err != nil {
			return nil, err
		}
		base = c
	}
	return llm.NewResilientClient(base), nil
}
