package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ShaikhWarsi/Creator-Catalyst/internal/config"
	"github.com/ShaikhWarsi/Creator-Catalyst/internal/pipeline"
	"github.com/ShaikhWarsi/Creator-Catalyst/internal/watch"
)

func run(cmd *cobra.Command, input string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	absIn, err := filepath.Abs(input)
	if err != nil {
		return err
	}
	cfg.InputSRT = absIn

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return pipeline.Run(ctx, cfg)
}

func runWatch(cmd *cobra.Command, dir string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.ValidateScorer(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(cfg, absDir, cfg.Logf)
	if err != nil {
		return err
	}
	defer w.Stop()

	if err := w.Start(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// buildConfig resolves settings with flags taking precedence over the
// optional YAML config file.
func buildConfig(cmd *cobra.Command) (pipeline.Config, error) {
	outDir, _ := cmd.Flags().GetString("out")
	chunk, _ := cmd.Flags().GetInt("chunk")
	scorer, _ := cmd.Flags().GetString("scorer")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	configPath, _ := cmd.Flags().GetString("config")

	cfg := pipeline.Config{
		OutDir:        outDir,
		ChunkDuration: chunk,
		MaxConcurrent: concurrency,
		Scorer:        scorer,
		Logf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		},

		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   os.Getenv("OPENAI_MODEL"),
		GeminiAPIKeys: splitKeys(os.Getenv("GEMINI_API_KEYS")),
		GeminiModel:   os.Getenv("GEMINI_MODEL"),
	}

	if configPath != "" {
		fileCfg, err := config.Load(configPath)
		if err != nil {
			return pipeline.Config{}, err
		}
		if !cmd.Flags().Changed("scorer") {
			cfg.Scorer = fileCfg.Analysis.Scorer
		}
		if !cmd.Flags().Changed("chunk") {
			cfg.ChunkDuration = fileCfg.Analysis.ChunkDuration
		}
		if !cmd.Flags().Changed("concurrency") {
			cfg.MaxConcurrent = fileCfg.Performance.MaxConcurrent
		}
		if !cmd.Flags().Changed("out") {
			cfg.OutDir = fileCfg.Paths.Output
		}
		if fileCfg.OpenAI.Model != "" {
			cfg.OpenAIModel = fileCfg.OpenAI.Model
		}
		if fileCfg.Gemini.Model != "" {
			cfg.GeminiModel = fileCfg.Gemini.Model
		}
	}

	return cfg, nil
}

func splitKeys(s string) []string {
	var keys []string
	for _, k := range strings.Split(s, ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
