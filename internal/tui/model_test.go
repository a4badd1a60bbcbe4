package tui

import (
	"context"
	"errors"
	"testing"

	"fastorder/internal/clipboard"
	"fastorder/internal/orchestrator"
	"fastorder/internal/order"
	"fastorder/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

type stubGenerator struct {
	out string
	err error
}

func (g stubGenerator) Generate(ctx context.Context, req order.GenerateRequest) (string, error) {
	return g.out, g.err
}

func newTestModel(gen orchestrator.Generator, clip orchestrator.Clipboard) (Model, *session.Session) {
	s := session.New(orchestrator.New(gen, clip))
	return New(s), s
}

func typeText(m Model, text string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(Model)
}

func press(m Model, k tea.KeyType) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(Model), cmd
}

func TestTypingUpdatesSession(t *testing.T) {
	m, s := newTestModel(stubGenerator{}, &clipboard.Memory{})

	m = typeText(m, "Ceker")
	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "1. farid")

	pair := s.Pair()
	if pair.ListMenu != "Ceker" || pair.CurrentOrders != "1. farid" {
		t.Fatalf("session not updated: %+v", pair)
	}
	if s.Mode() != order.ModeNormal {
		t.Fatalf("expected normal mode, got %s", s.Mode())
	}
}

func TestEscClearsEverything(t *testing.T) {
	m, s := newTestModel(stubGenerator{}, &clipboard.Memory{})

	m = typeText(m, "Ceker")
	m, _ = press(m, tea.KeyEsc)

	if m.menu.Value() != "" {
		t.Fatalf("menu field not cleared: %q", m.menu.Value())
	}
	if s.Pair() != (orchestrator.RawInputPair{}) {
		t.Fatalf("session not cleared: %+v", s.Pair())
	}
}

func TestEnterInOrdersSubmits(t *testing.T) {
	clip := &clipboard.Memory{}
	m, s := newTestModel(stubGenerator{out: "1. farid : nasi 1"}, clip)

	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "1. farid")
	m, cmd := press(m, tea.KeyEnter)

	if cmd == nil || !m.pending {
		t.Fatal("expected a pending submission")
	}

	// a second trigger while pending is ignored
	_, again := press(m, tea.KeyCtrlS)
	if again != nil {
		t.Fatal("expected no command while a submission is pending")
	}

	out := s.Dispatch(context.Background(), session.Submit())
	next, _ := m.Update(submittedMsg{outcome: out})
	m = next.(Model)

	if m.pending {
		t.Fatal("pending should clear after the outcome arrives")
	}
	if clip.Text() != "1. farid : nasi 1" {
		t.Fatalf("unexpected clipboard %q", clip.Text())
	}
	if s.Status().Kind != orchestrator.KindSuccess {
		t.Fatalf("expected success, got %s", s.Status().Kind)
	}
}

func TestEnterInMenuInsertsNewline(t *testing.T) {
	m, s := newTestModel(stubGenerator{}, &clipboard.Memory{})

	m = typeText(m, "Ceker")
	m, _ = press(m, tea.KeyEnter)
	m = typeText(m, "Tempe")

	if m.pending {
		t.Fatal("enter in the menu field must not submit")
	}
	if s.Pair().ListMenu != "Ceker\nTempe" {
		t.Fatalf("unexpected menu %q", s.Pair().ListMenu)
	}
}

func TestClipboardFailureShowsMessage(t *testing.T) {
	clip := &clipboard.Memory{Err: errors.New("no clipboard utility found")}
	m, s := newTestModel(stubGenerator{out: "1. a : nasi 1"}, clip)

	s.Dispatch(context.Background(), session.EditOrders("1. b"))
	out := s.Dispatch(context.Background(), session.Submit())

	next, _ := m.Update(submittedMsg{outcome: out})
	m = next.(Model)

	if m.uncopied != "1. a : nasi 1" {
		t.Fatalf("expected uncopied message to be kept, got %q", m.uncopied)
	}
	if s.Status().Kind != orchestrator.KindError {
		t.Fatalf("expected error status, got %s", s.Status().Kind)
	}
}
