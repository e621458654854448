package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MODEL_NAME", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	path := writeConfig(t, "llm:\n  model: test-model\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LLM.Backend != BackendOpenRouter {
		t.Errorf("Backend = %q, want %q", cfg.LLM.Backend, BackendOpenRouter)
	}
	if cfg.LLM.Model != "test-model" {
		t.Errorf("Model = %q", cfg.LLM.Model)
	}
	if cfg.LLM.MaxOutputTokens != 6000 {
		t.Errorf("MaxOutputTokens = %d, want 6000", cfg.LLM.MaxOutputTokens)
	}
	if cfg.LLM.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, want 3", cfg.LLM.MaxAttempts)
	}
	if cfg.Section.StartLabel != "mensaje" || cfg.Section.EndLabel != "ministracion" {
		t.Errorf("Section labels = %q/%q", cfg.Section.StartLabel, cfg.Section.EndLabel)
	}
	if len(cfg.YouTube.Languages) != 2 || cfg.YouTube.Languages[0] != "es" {
		t.Errorf("Languages = %v", cfg.YouTube.Languages)
	}
	if cfg.YouTube.YtDlpPath != "yt-dlp" {
		t.Errorf("YtDlpPath = %q", cfg.YouTube.YtDlpPath)
	}
	if cfg.Paths.Output != "data/output" {
		t.Errorf("Paths.Output = %q", cfg.Paths.Output)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %d", cfg.Performance.MaxConcurrent)
	}
}

func TestLoadEnvOverlay(t *testing.T) {
	t.Setenv("MODEL_NAME", "env-model")
	t.Setenv("OPENROUTER_API_KEY", "sk-or-test")

	path := writeConfig(t, "llm:\n  backend: openrouter\n  model: file-model\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LLM.Model != "env-model" {
		t.Errorf("Model = %q, env must win over file", cfg.LLM.Model)
	}
	if cfg.LLM.APIKey != "sk-or-test" {
		t.Errorf("APIKey = %q", cfg.LLM.APIKey)
	}
}

func TestLoadGeminiBackendKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gm-test")
	t.Setenv("OPENROUTER_API_KEY", "sk-or-test")
	t.Setenv("MODEL_NAME", "")

	path := writeConfig(t, "llm:\n  backend: gemini\n  model: gemini-2.0-flash\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LLM.APIKey != "gm-test" {
		t.Errorf("APIKey = %q, want gemini key for gemini backend", cfg.LLM.APIKey)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Error("Load() expected error for missing file")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeConfig(t, "llm: [not a map\n")
		if _, err := Load(path); err == nil {
			t.Error("Load() expected error for invalid yaml")
		}
	})

	t.Run("unknown backend", func(t *testing.T) {
		path := writeConfig(t, "llm:\n  backend: anthropic\n")
		if _, err := Load(path); err == nil {
			t.Error("Load() expected error for unknown backend")
		}
	})

	t.Run("negative tokens", func(t *testing.T) {
		path := writeConfig(t, "llm:\n  max_output_tokens: -1\n")
		if _, err := Load(path); err == nil {
			t.Error("Load() expected error for negative token budget")
		}
	})
}
