package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/ShaikhWarsi/Creator-Catalyst/internal/domain/arc"
	"github.com/ShaikhWarsi/Creator-Catalyst/internal/ports"
)

// keywordScorer is a deterministic stub: +1 per positive keyword, -1 per
// negative keyword, normalized by total hits.
type keywordScorer struct {
	mu    sync.Mutex
	calls []string
}

func (s *keywordScorer) Score(_ context.Context, text string) (float64, error) {
	s.mu.Lock()
	s.calls = append(s.calls, text)
	s.mu.Unlock()

	lower := strings.ToLower(text)
	pos := strings.Count(lower, "love") + strings.Count(lower, "amazing") + strings.Count(lower, "wonderful")
	neg := strings.Count(lower, "terrible") + strings.Count(lower, "awful")
	if pos+neg == 0 {
		return 0, nil
	}
	return float64(pos-neg) / float64(pos+neg), nil
}

type failingScorer struct{}

func (failingScorer) Score(context.Context, string) (float64, error) {
	return 0, ports.ErrScoringUnavailable
}

const twoMoodSRT = "1\n00:00:01,000 --> 00:00:03,000\nI love this amazing wonderful video!\n\n" +
	"2\n00:00:40,000 --> 00:00:42,000\nThis is terrible and awful\n\n"

func TestRun_EndToEnd(t *testing.T) {
	scorer := &keywordScorer{}
	uc := New(Deps{Scorer: scorer})

	res, err := uc.Run(context.Background(), Input{
		RawSRT:        twoMoodSRT,
		ChunkDuration: 30,
		MaxConcurrent: 2,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(res.Points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(res.Points))
	}

	if res.Points[0].TimeLabel != "00:00" || res.Points[1].TimeLabel != "00:30" {
		t.Fatalf("unexpected labels: %q %q", res.Points[0].TimeLabel, res.Points[1].TimeLabel)
	}
	if res.Points[0].Score <= 0 {
		t.Fatalf("expected positive score for first window, got %v", res.Points[0].Score)
	}
	if res.Points[1].Score >= 0 {
		t.Fatalf("expected negative score for second window, got %v", res.Points[1].Score)
	}
	for _, p := range res.Points {
		if !strings.HasSuffix(p.Preview, "...") {
			t.Fatalf("expected truncation marker in preview %q", p.Preview)
		}
	}
}

func TestRun_EmptyTranscript(t *testing.T) {
	scorer := &keywordScorer{}
	uc := New(Deps{Scorer: scorer})

	res, err := uc.Run(context.Background(), Input{RawSRT: "", ChunkDuration: 30, MaxConcurrent: 1})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(res.Points) != 0 {
		t.Fatalf("expected no points, got %d", len(res.Points))
	}
	if len(scorer.calls) != 0 {
		t.Fatalf("scorer must not be called for empty input")
	}
}

func TestRun_SilentWindowsSkipScorer(t *testing.T) {
	// Captions at 1s and 95s leave two empty windows in between.
	raw := "1\n00:00:01,000 --> 00:00:02,000\nhello\n\n" +
		"2\n00:01:35,000 --> 00:01:37,000\nworld\n\n"
	scorer := &keywordScorer{}
	uc := New(Deps{Scorer: scorer})

	res, err := uc.Run(context.Background(), Input{RawSRT: raw, ChunkDuration: 30, MaxConcurrent: 4})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(res.Points) != 4 {
		t.Fatalf("expected 4 points, got %d", len(res.Points))
	}
	for _, i := range []int{1, 2} {
		if res.Points[i].Score != 0 || res.Points[i].Preview != arc.Silence {
			t.Fatalf("window %d should be silent: %+v", i, res.Points[i])
		}
	}
	if len(scorer.calls) != 2 {
		t.Fatalf("expected 2 scorer calls, got %d", len(scorer.calls))
	}
}

func TestRun_ScorerFailurePropagates(t *testing.T) {
	uc := New(Deps{Scorer: failingScorer{}})

	_, err := uc.Run(context.Background(), Input{
		RawSRT:        twoMoodSRT,
		ChunkDuration: 30,
		MaxConcurrent: 2,
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ports.ErrScoringUnavailable) {
		t.Fatalf("expected ErrScoringUnavailable, got %v", err)
	}
}

func TestRun_OrderedResultsUnderConcurrency(t *testing.T) {
	// One caption per window; labels double as window identity below.
	var blocks strings.Builder
	for i := 0; i < 20; i++ {
		blocks.WriteString(fmtBlock(i+1, i*30))
	}

	uc := New(Deps{Scorer: &keywordScorer{}})
	res, err := uc.Run(context.Background(), Input{
		RawSRT:        blocks.String(),
		ChunkDuration: 30,
		MaxConcurrent: 8,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(res.Points) != 20 {
		t.Fatalf("expected 20 points, got %d", len(res.Points))
	}
	for i, p := range res.Points {
		want := arcLabel(i * 30)
		if p.TimeLabel != want {
			t.Fatalf("point %d out of order: label %q, want %q", i, p.TimeLabel, want)
		}
	}
}

func fmtBlock(index, startSec int) string {
	m := startSec / 60
	s := startSec % 60
	return fmt.Sprintf("%d\n00:%02d:%02d,000 --> 00:%02d:%02d,000\ncaption %d\n\n", index, m, s, m, s+1, index)
}

func arcLabel(startSec int) string {
	return fmt.Sprintf("%02d:%02d", startSec/60, startSec%60)
}
