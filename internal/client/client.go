package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"fastorder/internal/order"
)

// FallbackReason is shown when the server gave no usable reason.
const FallbackReason = "Failed to generate order"

// TransportError covers every way a generation request can fail after it
// has been attempted: network failure, non-2xx status, a malformed body
// or a body without a generated message.
type TransportError struct {
	Reason     string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	return e.Reason
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client speaks to the order generation API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New returns a client for baseURL. The underlying http.Client has no
// timeout; callers bound a request through its context.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{},
	}
}

// Generate posts the request to /api/generate-order and returns the generated message.
func (c *Client) Generate(ctx context.Context, req order.GenerateRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate-order", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		slog.Error("generate request failed", "error", err)
		return "", &TransportError{Reason: FallbackReason, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Reason: FallbackReason, StatusCode: resp.StatusCode, Err: err}
	}

	var data order.GenerateResponse
	decodeErr := json.Unmarshal(raw, &data)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reason := data.Error
		if decodeErr != nil || reason == "" {
			reason = FallbackReason
		}
		slog.Warn("generate request rejected", "status", resp.StatusCode, "reason", reason)
		return "", &TransportError{
			Reason:     reason,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("server returned status %d", resp.StatusCode),
		}
	}

	if decodeErr != nil {
		return "", &TransportError{Reason: FallbackReason, StatusCode: resp.StatusCode, Err: decodeErr}
	}
	if data.GeneratedMessage == "" {
		slog.Warn("generate response missing message", "status", resp.StatusCode)
		return "", &TransportError{
			Reason:     FallbackReason,
			StatusCode: resp.StatusCode,
			Err:        errors.New("response has no generated message"),
		}
	}

	return data.GeneratedMessage, nil
}

// Health probes GET /health.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return errors.New("health check returned " + resp.Status)
	}
	return nil
}
