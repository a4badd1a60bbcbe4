package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"fastorder/internal/order"
)

const genericErrorMessage = "An error occurred"

// RawInputPair is the operator's text as typed. It is never normalized.
type RawInputPair struct {
	ListMenu      string
	CurrentOrders string
}

// Generator requests the formatted message from the generation service.
type Generator interface {
	Generate(ctx context.Context, req order.GenerateRequest) (string, error)
}

// Clipboard is write-only access to the system clipboard.
type Clipboard interface {
	Write(text string) error
}

// ClipboardError means the message was generated but could not be copied.
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string {
	if e.Err == nil || e.Err.Error() == "" {
		return "Failed to copy to clipboard"
	}
	return e.Err.Error()
}

func (e *ClipboardError) Unwrap() error {
	return e.Err
}

// Outcome is the result of one Submit call.
type Outcome struct {
	Status Status
	Mode   order.Mode
	// Message holds the generated text whenever generation succeeded,
	// including when the clipboard write failed, so the caller can retry copying.
	Message string
	Err     error
	// Skipped is set when another submission was in flight and nothing was done.
	Skipped bool
}

type Option func(*Orchestrator)

// WithObserver registers fn to receive every status transition.
func WithObserver(fn func(Status)) Option {
	return func(o *Orchestrator) {
		o.observer = fn
	}
}

// Orchestrator runs at most one submission at a time and reduces every
// outcome to a Status.
type Orchestrator struct {
	gen  Generator
	clip Clipboard

	inFlight atomic.Bool

	mu       sync.Mutex
	status   Status
	observer func(Status)
}

func New(gen Generator, clip Clipboard, opts ...Option) *Orchestrator {
	o := &Orchestrator{gen: gen, clip: clip, status: idle()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Submit classifies, validates and, when valid, requests the message and
// copies it to the clipboard. A call made while another is in flight is
// ignored and reported with Skipped. Errors never escape: they end up in
// the returned Status.
func (o *Orchestrator) Submit(ctx context.Context, pair RawInputPair) (out Outcome) {
	if !o.inFlight.CompareAndSwap(false, true) {
		slog.Debug("submit ignored, request in flight")
		return Outcome{Status: o.Status(), Skipped: true}
	}
	defer o.inFlight.Store(false)
	defer func() {
		if r := recover(); r != nil {
			slog.Error("submit panicked", "panic", r)
			out.Err = fmt.Errorf("submit panicked: %v", r)
			out.Status = o.setStatus(errorStatus(genericErrorMessage))
		}
	}()

	o.setStatus(Status{Kind: KindValidating})

	mode := order.Classify(pair.ListMenu, pair.CurrentOrders)
	out.Mode = mode

	if err := order.Validate(mode, pair.ListMenu, pair.CurrentOrders); err != nil {
		out.Err = err
		out.Status = o.setStatus(errorStatus(err.Error()))
		return out
	}

	o.setStatus(Status{Kind: KindLoading})

	message, err := o.gen.Generate(ctx, order.GenerateRequest{
		ListMenu:      pair.ListMenu,
		CurrentOrders: pair.CurrentOrders,
		Mode:          mode,
	})
	if err != nil {
		slog.Warn("generation failed", "mode", mode.String(), "error", err)
		out.Err = err
		out.Status = o.setStatus(errorStatus(messageOf(err)))
		return out
	}
	out.Message = message

	if err := o.clip.Write(message); err != nil {
		cerr := &ClipboardError{Err: err}
		slog.Warn("clipboard write failed", "error", err)
		out.Err = cerr
		out.Status = o.setStatus(errorStatus(cerr.Error()))
		return out
	}

	out.Status = o.setStatus(successStatus(SuccessMessage(mode)))
	return out
}

// SuccessMessage is the status text shown after a successful copy.
func SuccessMessage(mode order.Mode) string {
	return fmt.Sprintf("Order copied to clipboard! (%s) Press Ctrl+V to paste in WhatsApp", mode.Label())
}

// Reset returns the status to idle. It does nothing while a request is in
// flight, since that request will publish its own result.
func (o *Orchestrator) Reset() bool {
	if o.inFlight.Load() {
		return false
	}
	o.setStatus(idle())
	return true
}

func (o *Orchestrator) InFlight() bool {
	return o.inFlight.Load()
}

func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

func (o *Orchestrator) setStatus(s Status) Status {
	o.mu.Lock()
	o.status = s
	observer := o.observer
	o.mu.Unlock()

	if observer != nil {
		observer(s)
	}
	return s
}

func messageOf(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return genericErrorMessage
}
