package llm

import "testing"

func TestSanitizeOrderOutput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"brackets removed", "1. miftah : [nasi 1], [ceker]", "1. miftah : nasi 1, ceker"},
		{"dash separator normalized", "1. farid - nasi 1, tempe", "1. farid : nasi 1, tempe"},
		{"hyphenated words untouched", "2. rian : nasi 1, otak-otak", "2. rian : nasi 1, otak-otak"},
		{"surrounding whitespace trimmed", "\n\n1. a : nasi 1\n", "1. a : nasi 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeOrderOutput(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
