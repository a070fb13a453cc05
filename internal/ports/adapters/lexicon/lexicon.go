// Package lexicon implements a deterministic, dependency-free sentiment
// scorer. It is the default adapter: cheap, offline, and stable enough for
// arc charts where relative movement matters more than absolute polarity.
package lexicon

import (
	"context"
	"regexp"
	"strings"
)

var (
	rePositive = regexp.MustCompile(`(?i)\b(love|loved|great|amazing|awesome|wonderful|excellent|fantastic|beautiful|best|happy|good|incredible|perfect|enjoy|enjoyed|brilliant|win|won|excited|exciting)\b`)
	reNegative = regexp.MustCompile(`(?i)\b(hate|hated|terrible|awful|horrible|worst|bad|sad|angry|disappointing|disappointed|boring|broken|fail|failed|failure|wrong|ugly|annoying|lose|lost)\b`)
	reNegation = regexp.MustCompile(`(?i)\b(not|never|no|don't|doesn't|didn't|isn't|wasn't|won't|can't)\s+(\w+\s+)?$`)
)

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

// Score counts polarity keywords and returns their normalized balance in
// [-1, 1]. Text with no matches is neutral. A keyword directly preceded by a
// negation contributes to the opposite side ("not good" reads as negative).
func (a *Adapter) Score(_ context.Context, text string) (float64, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return 0, nil
	}

	var pos, neg int
	countMatches(t, rePositive, &pos, &neg)
	countMatches(t, reNegative, &neg, &pos)
	if pos+neg == 0 {
		return 0, nil
	}

	score := float64(pos-neg) / float64(pos+neg)
	return clamp(score, -1, 1), nil
}

// countMatches attributes each match of re to same, or to flipped when the
// match is directly preceded by a negation.
func countMatches(text string, re *regexp.Regexp, same, flipped *int) {
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if reNegation.MatchString(text[:loc[0]]) {
			*flipped++
			continue
		}
		*same++
	}
}

func clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}
