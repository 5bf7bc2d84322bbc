package ranking

import "testing"

func TestWordMatch(t *testing.T) {
	tests := []struct {
		name string
		term string
		text string
		want bool
	}{
		{"Whole word matches", "Ana", "DJ Ana Live", true},
		{"Substring inside a word must not match", "Ana", "Banana Beats", false},
		{"Case-insensitive", "ana", "ANA's Morning Show", true},
		{"Term at start", "Drive", "Drive Time", true},
		{"Term at end", "Time", "Drive Time", true},
		{"Multi-word term", "Drive Time", "The Drive Time Special", true},
		{"Regex metacharacters are literal", "A+B", "The A+B Session", true},
		{"Empty term never matches", "", "Anything", false},
		{"Empty text never matches", "Ana", "", false},
		{"Whitespace-only term never matches", "   ", "Anything", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordMatch(tt.term, tt.text); got != tt.want {
				t.Errorf("WordMatch(%q, %q) = %v, want %v", tt.term, tt.text, got, tt.want)
			}
		})
	}
}
