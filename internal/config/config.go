package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LLM backend identifiers accepted in llm.backend
const (
	BackendOpenRouter = "openrouter"
	BackendGemini     = "gemini"
)

type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	Prompts     PromptsConfig     `yaml:"prompts"`
	Section     SectionConfig     `yaml:"section"`
	YouTube     YouTubeConfig     `yaml:"youtube"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type LLMConfig struct {
	Backend         string `yaml:"backend"`
	Model           string `yaml:"model"`
	BaseURL         string `yaml:"base_url"`
	MaxOutputTokens int    `yaml:"max_output_tokens"`
	MaxAttempts     int    `yaml:"max_attempts"`

	// APIKey is never read from the YAML file, only from the environment
	// (OPENROUTER_API_KEY or GEMINI_API_KEY, optionally via .env).
	APIKey string `yaml:"-"`
}

type PromptsConfig struct {
	Cues    string `yaml:"cues"`
	Summary string `yaml:"summary"`
}

type SectionConfig struct {
	StartLabel     string   `yaml:"start_label"`
	EndLabel       string   `yaml:"end_label"`
	FallbackLabels []string `yaml:"fallback_labels"`
}

type YouTubeConfig struct {
	Languages []string `yaml:"languages"`
	YtDlpPath string   `yaml:"ytdlp_path"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads the YAML config file, overlays environment variables and
// applies defaults. Environment values win over file values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// applyEnv loads .env if present and overlays model name and API key.
// godotenv does not overwrite variables already set in the environment.
func (c *Config) applyEnv() {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	if model := os.Getenv("MODEL_NAME"); model != "" {
		c.LLM.Model = model
	}

	if c.LLM.Backend == "" {
		c.LLM.Backend = BackendOpenRouter
	}

	switch c.LLM.Backend {
	case BackendGemini:
		c.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
	default:
		c.LLM.APIKey = os.Getenv("OPENROUTER_API_KEY")
	}
}

func (c *Config) Validate() error {
	if c.LLM.Backend == "" {
		c.LLM.Backend = BackendOpenRouter
	}
	if c.LLM.Backend != BackendOpenRouter && c.LLM.Backend != BackendGemini {
		return fmt.Errorf("llm.backend must be %q or %q, got %q", BackendOpenRouter, BackendGemini, c.LLM.Backend)
	}
	if c.LLM.MaxOutputTokens < 0 {
		return fmt.Errorf("llm.max_output_tokens must be positive")
	}
	if c.LLM.MaxOutputTokens == 0 {
		c.LLM.MaxOutputTokens = 6000
	}
	if c.LLM.MaxAttempts < 0 {
		return fmt.Errorf("llm.max_attempts must be positive")
	}
	if c.LLM.MaxAttempts == 0 {
		c.LLM.MaxAttempts = 3
	}

	if c.Prompts.Cues == "" {
		c.Prompts.Cues = "prompts/cues_prompt.md"
	}
	if c.Prompts.Summary == "" {
		c.Prompts.Summary = "prompts/message_summary_prompt.md"
	}

	if c.Section.StartLabel == "" {
		c.Section.StartLabel = "mensaje"
	}
	if c.Section.EndLabel == "" {
		c.Section.EndLabel = "ministracion"
	}

	if len(c.YouTube.Languages) == 0 {
		c.YouTube.Languages = []string{"es", "en"}
	}
	if c.YouTube.YtDlpPath == "" {
		c.YouTube.YtDlpPath = "yt-dlp"
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
