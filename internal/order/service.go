package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fastorder/internal/llm"
)

const (
	DefaultRecentLimit = 10
	MaxRecentLimit     = 50

	saveTimeout = 5 * time.Second
)

// ErrEmptyOutput is returned when the LLM produced nothing usable.
var ErrEmptyOutput = errors.New("llm returned an empty order message")

type Service struct {
	llm       llm.Client
	repo      Repository
	orderName string
	timeout   time.Duration
}

func NewService(client llm.Client, repo Repository, orderName string, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{
		llm:       client,
		repo:      repo,
		orderName: orderName,
		timeout:   timeout,
	}
}

// --------------------------------------------------
// Generate the order message for one submission
// --------------------------------------------------
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	mode, err := ParseMode(string(req.Mode))
	if err != nil {
		return "", err
	}

	if err := Validate(mode, req.ListMenu, req.CurrentOrders); err != nil {
		return "", err
	}

	llmCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := BuildPrompt(PromptParams{
		Mode:          mode,
		ListMenu:      req.ListMenu,
		CurrentOrders: req.CurrentOrders,
		OrderName:     s.orderName,
	})

	start := time.Now()
	raw, err := s.llm.Generate(llmCtx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate %s order: %w", mode, err)
	}

	message := llm.SanitizeOrderOutput(raw)
	if message == "" {
		return "", fmt.Errorf("generate %s order: %w", mode, ErrEmptyOutput)
	}
	slog.Info("order generated",
		"mode", mode.String(),
		"duration_ms", time.Since(start).Milliseconds(),
		"length", len(message),
	)

	rec := &Record{
		Mode:             mode,
		ListMenu:         req.ListMenu,
		CurrentOrders:    req.CurrentOrders,
		GeneratedMessage: message,
	}
	// History is best effort; the operator still gets the message.
	saveCtx, cancelSave := context.WithTimeout(context.WithoutCancel(ctx), saveTimeout)
	defer cancelSave()
	if err := s.repo.Save(saveCtx, rec); err != nil {
		slog.Error("failed to save generated order", "error", err)
	}

	return message, nil
}

// --------------------------------------------------
// Recent generations
// --------------------------------------------------
func (s *Service) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}
	return s.repo.ListRecent(ctx, limit)
}
