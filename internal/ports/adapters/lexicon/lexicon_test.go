package lexicon

import (
	"context"
	"testing"
)

func TestScore_Table(t *testing.T) {
	tests := []struct {
		name string
		text string
		sign int // -1, 0, +1
	}{
		{"empty", "", 0},
		{"whitespace", "   ", 0},
		{"neutral", "the camera pans across the street", 0},
		{"positive", "I love this amazing wonderful video!", 1},
		{"negative", "This is terrible and awful", -1},
		{"mixed leaning positive", "A great, amazing start despite a bad ending", 1},
		{"negated positive", "this is not good at all", -1},
		{"case insensitive", "ABSOLUTELY TERRIBLE", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New().Score(context.Background(), tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got < -1 || got > 1 {
				t.Fatalf("score %v out of range", got)
			}
			switch {
			case tt.sign > 0 && got <= 0:
				t.Fatalf("expected positive score, got %v", got)
			case tt.sign < 0 && got >= 0:
				t.Fatalf("expected negative score, got %v", got)
			case tt.sign == 0 && got != 0:
				t.Fatalf("expected neutral score, got %v", got)
			}
		})
	}
}

func TestScore_Deterministic(t *testing.T) {
	a, _ := New().Score(context.Background(), "what a wonderful, happy day")
	b, _ := New().Score(context.Background(), "what a wonderful, happy day")
	if a != b {
		t.Fatalf("scores differ: %v vs %v", a, b)
	}
	if a != 1 {
		t.Fatalf("two positives and nothing else should saturate at 1, got %v", a)
	}
}
