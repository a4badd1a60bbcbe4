package order

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mode   Mode
		menu   string
		orders string
		reason string
	}{
		{"first-touch without menu", ModeFirstTouch, "", "", ReasonMenuRequired},
		{"first-touch blank menu", ModeFirstTouch, "   ", "", ReasonMenuRequired},
		{"first-touch with menu", ModeFirstTouch, "Cah buncis", "", ""},
		{"normal without orders", ModeNormal, "menu", "", ReasonOrdersRequired},
		{"nitro without orders", ModeNitro, "", " ", ReasonOrdersRequired},
		{"normal complete", ModeNormal, "menu", "1. a : nasi 1", ""},
		{"nitro complete", ModeNitro, "", "1. a : nasi 1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.mode, tt.menu, tt.orders)
			if tt.reason == "" {
				if err != nil {
					t.Fatalf("expected accept, got %v", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Reason != tt.reason {
				t.Fatalf("expected %q, got %q", tt.reason, verr.Reason)
			}
		})
	}
}
