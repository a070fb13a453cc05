package geminiscore

import (
	"errors"
	"testing"

	"github.com/ShaikhWarsi/Creator-Catalyst/internal/ports"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{"plain", "0.7", 0.7, false},
		{"negative", "-0.35", -0.35, false},
		{"padded", "  0.2\n", 0.2, false},
		{"clamped high", "3.5", 1, false},
		{"clamped low", "-2", -1, false},
		{"prose", "The sentiment is 0.7", 0, true},
		{"empty", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseScore(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				if !errors.Is(err, ports.ErrScoringUnavailable) {
					t.Fatalf("expected ErrScoringUnavailable, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("parseScore(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestKeyRotation(t *testing.T) {
	a := New([]string{"k1", "k2", "k3"}, "")
	if a.activeKey() != "k1" {
		t.Fatalf("expected first key active")
	}
	a.rotateKey()
	if a.activeKey() != "k2" {
		t.Fatalf("expected rotation to second key")
	}
	a.rotateKey()
	a.rotateKey()
	if a.activeKey() != "k1" {
		t.Fatalf("expected rotation to wrap around")
	}
}
