// Package session holds the operator's live inputs and routes input events,
// including session-wide shortcuts, to the orchestrator.
package session

import (
	"context"
	"sync"

	"fastorder/internal/orchestrator"
	"fastorder/internal/order"
)

type EventKind int

const (
	EventEditMenu EventKind = iota
	EventEditOrders
	// EventClear empties both fields and resets the status.
	EventClear
	// EventSubmit generates from whatever the fields hold at dispatch time.
	EventSubmit
)

type Event struct {
	Kind EventKind
	Text string
}

func EditMenu(text string) Event   { return Event{Kind: EventEditMenu, Text: text} }
func EditOrders(text string) Event { return Event{Kind: EventEditOrders, Text: text} }
func Clear() Event                 { return Event{Kind: EventClear} }
func Submit() Event                { return Event{Kind: EventSubmit} }

type Session struct {
	orch *orchestrator.Orchestrator

	mu   sync.Mutex
	pair orchestrator.RawInputPair
}

func New(orch *orchestrator.Orchestrator) *Session {
	return &Session{orch: orch}
}

// Dispatch applies one event. Submit blocks until the request settles; the
// other events return immediately. State is read when the event is handled,
// never captured earlier.
func (s *Session) Dispatch(ctx context.Context, ev Event) orchestrator.Outcome {
	switch ev.Kind {
	case EventEditMenu:
		s.mu.Lock()
		s.pair.ListMenu = ev.Text
		s.mu.Unlock()
	case EventEditOrders:
		s.mu.Lock()
		s.pair.CurrentOrders = ev.Text
		s.mu.Unlock()
	case EventClear:
		s.mu.Lock()
		s.pair = orchestrator.RawInputPair{}
		s.mu.Unlock()
		s.orch.Reset()
	case EventSubmit:
		if s.orch.InFlight() {
			return orchestrator.Outcome{Status: s.orch.Status(), Skipped: true}
		}
		return s.orch.Submit(ctx, s.Pair())
	}

	return orchestrator.Outcome{Status: s.orch.Status()}
}

func (s *Session) Pair() orchestrator.RawInputPair {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pair
}

// Mode is the live classification of the current inputs.
func (s *Session) Mode() order.Mode {
	p := s.Pair()
	return order.Classify(p.ListMenu, p.CurrentOrders)
}

func (s *Session) InFlight() bool {
	return s.orch.InFlight()
}

func (s *Session) Status() orchestrator.Status {
	return s.orch.Status()
}
