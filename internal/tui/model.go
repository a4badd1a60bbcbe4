package tui

import (
	"context"
	"errors"
	"strings"

	"fastorder/internal/orchestrator"
	"fastorder/internal/session"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

type field int

const (
	fieldMenu field = iota
	fieldOrders
)

type submittedMsg struct {
	outcome orchestrator.Outcome
}

// Model is the Bubble Tea front end over a session.
type Model struct {
	session *session.Session

	menu    textarea.Model
	orders  textarea.Model
	focus   field
	spinner spinner.Model

	// pending is set as soon as a submit is dispatched, before the
	// orchestrator goroutine has taken its latch.
	pending bool
	// uncopied holds a generated message the clipboard refused.
	uncopied string

	width int
}

func New(s *session.Session) Model {
	menu := newField("Paste menu here... (TAB to move to orders)")
	orders := newField("Paste current orders here... (ENTER to generate)")
	// ENTER submits from the orders field, alt+enter inserts a newline.
	orders.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	m := Model{
		session: s,
		menu:    menu,
		orders:  orders,
		spinner: sp,
	}
	m.menu.Focus()
	return m
}

func newField(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(8)
	ta.SetWidth(72)
	return ta
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := msg.Width - 4
		if w > 100 {
			w = 100
		}
		if w > 20 {
			m.menu.SetWidth(w)
			m.orders.SetWidth(w)
		}
		return m, nil

	case submittedMsg:
		m.pending = false
		if !msg.outcome.Skipped {
			m.uncopied = ""
			var cerr *orchestrator.ClipboardError
			if msg.outcome.Message != "" && errors.As(msg.outcome.Err, &cerr) {
				m.uncopied = msg.outcome.Message
			}
		}
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m.clear(), nil
		case "ctrl+s":
			return m.submit()
		case "tab", "shift+tab":
			return m.toggleFocus(), nil
		case "enter":
			if m.focus == fieldOrders {
				return m.submit()
			}
		}
	}

	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	ctx := context.Background()

	if m.focus == fieldMenu {
		before := m.menu.Value()
		m.menu, cmd = m.menu.Update(msg)
		if v := m.menu.Value(); v != before {
			m.session.Dispatch(ctx, session.EditMenu(v))
		}
		return m, cmd
	}

	before := m.orders.Value()
	m.orders, cmd = m.orders.Update(msg)
	if v := m.orders.Value(); v != before {
		m.session.Dispatch(ctx, session.EditOrders(v))
	}
	return m, cmd
}

func (m Model) toggleFocus() Model {
	if m.focus == fieldMenu {
		m.focus = fieldOrders
		m.menu.Blur()
		m.orders.Focus()
	} else {
		m.focus = fieldMenu
		m.orders.Blur()
		m.menu.Focus()
	}
	return m
}

func (m Model) clear() Model {
	m.session.Dispatch(context.Background(), session.Clear())
	m.menu.Reset()
	m.orders.Reset()
	m.uncopied = ""
	return m
}

// submit reads the in-flight state at the moment the key is handled.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.pending || m.session.InFlight() {
		return m, nil
	}
	m.pending = true

	s := m.session
	run := func() tea.Msg {
		return submittedMsg{outcome: s.Dispatch(context.Background(), session.Submit())}
	}
	return m, tea.Batch(run, m.spinner.Tick)
}

func (m Model) busy() bool {
	return m.pending || m.session.Status().Busy()
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("FAST ORDER"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("LIST MENU"))
	b.WriteString(" " + hintStyle.Render("Optional - leave empty for Nitro Mode"))
	b.WriteString("\n")
	b.WriteString(m.menu.View())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("CURRENT ORDERS"))
	b.WriteString(" " + hintStyle.Render("Leave empty for First-Touch Mode"))
	b.WriteString("\n")
	b.WriteString(m.orders.View())
	b.WriteString("\n\n")

	b.WriteString(hintStyle.Render("Mode: " + m.session.Mode().Label()))
	b.WriteString("\n")

	b.WriteString(m.statusView())
	b.WriteString("\n")

	if m.uncopied != "" {
		b.WriteString("\n")
		b.WriteString(messageStyle.Render(m.uncopied))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) statusView() string {
	if m.busy() {
		return m.spinner.View() + " Generating..."
	}

	status := m.session.Status()
	switch status.Kind {
	case orchestrator.KindSuccess:
		return successStyle.Render("✔ " + status.Message)
	case orchestrator.KindError:
		return errorStyle.Render("✖ " + status.Message)
	default:
		return hintStyle.Render("Shortcuts: ENTER to generate • ESC to clear • Ctrl+S to generate • Ctrl+C to quit")
	}
}
