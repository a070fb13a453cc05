package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Analysis    AnalysisConfig    `yaml:"analysis"`
	Paths       PathsConfig       `yaml:"paths"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Performance PerformanceConfig `yaml:"performance"`
}

type AnalysisConfig struct {
	Scorer        string `yaml:"scorer"`
	ChunkDuration int    `yaml:"chunk_duration_sec"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type OpenAIConfig struct {
	Model string `yaml:"model"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads and validates a YAML config file.
func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks required fields and fills defaults for optional ones.
func (c *Config) Validate() error {
	switch c.Analysis.Scorer {
	case "", "lexicon", "openai", "gemini":
	default:
		return fmt.Errorf("analysis.scorer %q is not one of lexicon, openai, gemini", c.Analysis.Scorer)
	}
	if c.Analysis.ChunkDuration < 0 {
		return fmt.Errorf("analysis.chunk_duration_sec must be >= 0")
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must be >= 0")
	}

	if c.Analysis.Scorer == "" {
		c.Analysis.Scorer = "lexicon"
	}
	if c.Analysis.ChunkDuration == 0 {
		c.Analysis.ChunkDuration = 30
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 4
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "out"
	}
	return nil
}
