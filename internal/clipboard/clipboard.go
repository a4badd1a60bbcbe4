// Package clipboard provides the write-only clipboard used to hand the
// generated message to the operator.
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

var ErrUnavailable = errors.New("clipboard unavailable")

// System writes to the OS clipboard (pbcopy, xclip/xsel/wl-copy, or the Windows API).
type System struct{}

func (System) Write(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no clipboard utility found", ErrUnavailable)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// Memory keeps the last written text. Used in headless runs and tests.
type Memory struct {
	mu   sync.Mutex
	text string
	// Err, when set, is returned by Write and nothing is stored.
	Err error
}

func (m *Memory) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.text = text
	return nil
}

func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}
