package ports

import (
	"context"
	"errors"
)

// ErrScoringUnavailable marks a scorer failure (network error, quota, bad
// model output). It must reach the caller: collapsing it into a neutral 0.0
// would make a broken scorer indistinguishable from a silent bucket.
var ErrScoringUnavailable = errors.New("sentiment scoring unavailable")

// SentimentScorer maps a text to a polarity in [-1.0, 1.0].
// Implementations wrap their failures in ErrScoringUnavailable.
type SentimentScorer interface {
	Score(ctx context.Context, text string) (float64, error)
}
