package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Mode decides which validation rule and which prompt shape apply to a submission.
type Mode string

const (
	ModeNormal     Mode = "normal"
	ModeNitro      Mode = "nitro"
	ModeFirstTouch Mode = "first-touch"
)

var ErrInvalidMode = errors.New("invalid mode")

// Classify maps the two raw inputs to a mode. First match wins:
// blank orders is first-touch, blank menu is nitro, anything else is normal.
func Classify(listMenu, currentOrders string) Mode {
	if isBlank(currentOrders) {
		return ModeFirstTouch
	}
	if isBlank(listMenu) {
		return ModeNitro
	}
	return ModeNormal
}

// ParseMode accepts the wire form. An empty string means normal.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "":
		return ModeNormal, nil
	case ModeNormal, ModeNitro, ModeFirstTouch:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Label is the human readable name shown in status messages.
func (m Mode) Label() string {
	switch m {
	case ModeNitro:
		return "Nitro Mode"
	case ModeFirstTouch:
		return "First-Touch Mode"
	default:
		return "Normal Mode"
	}
}

func (m Mode) String() string {
	return string(m)
}

func (m *Mode) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
