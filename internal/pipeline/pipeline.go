package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ShaikhWarsi/Creator-Catalyst/internal/ports"
	"github.com/ShaikhWarsi/Creator-Catalyst/internal/ports/adapters/geminiscore"
	"github.com/ShaikhWarsi/Creator-Catalyst/internal/ports/adapters/lexicon"
	"github.com/ShaikhWarsi/Creator-Catalyst/internal/ports/adapters/openaiscore"
	"github.com/ShaikhWarsi/Creator-Catalyst/internal/types"
	"github.com/ShaikhWarsi/Creator-Catalyst/internal/usecase"
)

const (
	ScorerLexicon = "lexicon"
	ScorerOpenAI  = "openai"
	ScorerGemini  = "gemini"
)

type Config struct {
	InputSRT      string
	OutDir        string
	ChunkDuration int
	MaxConcurrent int
	Logf          func(format string, args ...any)

	// Scorer selects the sentiment backend: lexicon, openai or gemini.
	Scorer string

	OpenAIAPIKey string
	OpenAIModel  string

	GeminiAPIKeys []string
	GeminiModel   string
}

func (c Config) Validate() error {
	if c.InputSRT == "" {
		return errors.New("input is empty")
	}
	if _, err := os.Stat(c.InputSRT); err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	return c.ValidateScorer()
}

// ValidateScorer checks the analysis settings that do not depend on a
// single input file; watch mode validates with this alone.
func (c Config) ValidateScorer() error {
	if c.ChunkDuration <= 0 {
		return fmt.Errorf("chunk duration must be > 0")
	}
	if c.MaxConcurrent <= 0 {
		return fmt.Errorf("max concurrent must be > 0")
	}
	switch c.Scorer {
	case ScorerLexicon:
	case ScorerOpenAI:
		if c.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY is required for the openai scorer")
		}
	case ScorerGemini:
		if len(c.GeminiAPIKeys) == 0 {
			return errors.New("GEMINI_API_KEYS is required for the gemini scorer")
		}
	default:
		return fmt.Errorf("unknown scorer %q (want %s, %s or %s)", c.Scorer, ScorerLexicon, ScorerOpenAI, ScorerGemini)
	}
	return nil
}

// Run processes a single SRT file and writes its arc manifest.
func Run(ctx context.Context, cfg Config) error {
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	return ProcessFile(ctx, cfg, NewScorer(cfg), cfg.InputSRT, logf)
}

// ProcessFile runs the arc usecase for one transcript file. The scorer is
// passed in so batch callers can reuse one adapter across many files.
func ProcessFile(
	ctx context.Context,
	cfg Config,
	scorer ports.SentimentScorer,
	srtPath string,
	logf func(format string, args ...any),
) error {
	raw, err := os.ReadFile(srtPath)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	uc := usecase.New(usecase.Deps{Scorer: scorer})
	res, err := uc.Run(ctx, usecase.Input{
		RawSRT:        string(raw),
		ChunkDuration: cfg.ChunkDuration,
		MaxConcurrent: cfg.MaxConcurrent,
		Logf:          logf,
	})
	if err != nil {
		return err
	}
	// No parsed captions means no arc, matching the empty-input contract.
	if len(res.Points) == 0 {
		logf("no arc for %s: transcript has no caption blocks", srtPath)
		return nil
	}

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = "out"
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	arc := types.Arc{
		Input:         srtPath,
		ChunkDuration: cfg.ChunkDuration,
		Points:        res.Points,
	}
	b, err := json.MarshalIndent(arc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal arc: %w", err)
	}

	outPath := ArcPath(outDir, srtPath)
	if err := os.WriteFile(outPath, b, 0o644); err != nil {
		return err
	}
	logf("arc written (%d points): %s", len(arc.Points), outPath)
	return nil
}

// NewScorer builds the configured sentiment adapter.
func NewScorer(cfg Config) ports.SentimentScorer {
	switch cfg.Scorer {
	case ScorerOpenAI:
		return openaiscore.New(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	case ScorerGemini:
		return geminiscore.New(cfg.GeminiAPIKeys, cfg.GeminiModel)
	default:
		return lexicon.New()
	}
}

// ArcPath maps a transcript path to its manifest path inside outDir.
func ArcPath(outDir, srtPath string) string {
	name := strings.TrimSuffix(filepath.Base(srtPath), filepath.Ext(srtPath))
	return filepath.Join(outDir, name+".arc.json")
}

// ensure adapters implement the scorer port
var _ ports.SentimentScorer = (*lexicon.Adapter)(nil)
var _ ports.SentimentScorer = (*openaiscore.Adapter)(nil)
var _ ports.SentimentScorer = (*geminiscore.Adapter)(nil)
