package wordfields

import "testing"

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "hello", "hello"},
		{"vertical tab becomes carriage return", "a\vb", "a\rb"},
		{"end of row mark stripped", "a\ac", "ac"},
		{"mixed", "a\vb\ac", "a\rbc"},
		{"only marks", "\a\a", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
