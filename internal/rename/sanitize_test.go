package rename

import "testing"

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain name untouched", "Breaking Bad", "Breaking Bad"},
		{"colon replaced", "Alias: Origins", "Alias Origins"},
		{"slash replaced", "AC/DC Live", "AC DC Live"},
		{"question mark dropped at end", "What If...?", "What If"},
		{"quotes removed", `Show "The Return"`, "Show The Return"},
		{"consecutive illegals collapse", "a<>b", "a b"},
		{"trailing dots trimmed", "Name.", "Name"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.input); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
