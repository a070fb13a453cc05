package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ShaikhWarsi/Creator-Catalyst/internal/domain/arc"
	"github.com/ShaikhWarsi/Creator-Catalyst/internal/domain/transcript"
	"github.com/ShaikhWarsi/Creator-Catalyst/internal/ports"
	"github.com/ShaikhWarsi/Creator-Catalyst/internal/types"
)

type Deps struct {
	Scorer ports.SentimentScorer
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type Input struct {
	RawSRT        string
	ChunkDuration int
	MaxConcurrent int
	Logf          func(format string, args ...any)
}

type Result struct {
	Points []types.SentimentPoint
}

// Run turns raw SRT text into the ordered sentiment series.
//
// An empty or unparseable transcript yields an empty result, never an error.
// Buckets are scored concurrently up to MaxConcurrent, but the returned
// points are always in ascending bucket order. A scorer failure aborts the
// run with an error satisfying errors.Is(err, ports.ErrScoringUnavailable).
func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	logf := in.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	segments := transcript.Parse(in.RawSRT)
	if len(segments) == 0 {
		logf("no caption blocks found")
		return Result{}, nil
	}
	logf("parsed %d caption segments", len(segments))

	buckets := arc.Aggregate(segments, in.ChunkDuration)
	logf("aggregated into %d windows of %ds", len(buckets), in.ChunkDuration)

	points, err := u.scoreBuckets(ctx, buckets, in)
	if err != nil {
		return Result{}, err
	}
	return Result{Points: points}, nil
}

func (u Usecase) scoreBuckets(ctx context.Context, buckets []types.TimeBucket, in Input) ([]types.SentimentPoint, error) {
	maxConcurrent := in.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	sem := make(chan struct{}, maxConcurrent)
	points := make([]types.SentimentPoint, len(buckets))

	var aborted bool
	for i, b := range buckets {
		merged := arc.MergedText(b)
		label := arc.TimeLabel(b.Index, in.ChunkDuration)

		// Empty windows never reach the scorer: 0.0 is reserved for them.
		if strings.TrimSpace(merged) == "" {
			points[i] = types.SentimentPoint{TimeLabel: label, Score: 0, Preview: arc.Silence}
			continue
		}

		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			aborted = true
		}
		if aborted {
			break
		}

		wg.Add(1)
		go func(i int, merged, label string) {
			defer wg.Done()
			defer func() { <-sem }()

			score, err := u.d.Scorer.Score(ctx, merged)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("score window %d (%s): %w", i, label, err)
					cancel()
				}
				mu.Unlock()
				return
			}
			points[i] = types.SentimentPoint{
				TimeLabel: label,
				Score:     score,
				Preview:   arc.Preview(merged),
			}
		}(i, merged, label)
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	if aborted {
		return nil, ctx.Err()
	}
	return points, nil
}
