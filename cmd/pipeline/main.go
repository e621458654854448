// Command pipeline watches a drop directory for transcript files and
// produces cue and summary artifacts for each one.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chech0x/youtube-cue-generator/internal/config"
	"github.com/chech0x/youtube-cue-generator/internal/cues"
	"github.com/chech0x/youtube-cue-generator/internal/llm"
	"github.com/chech0x/youtube-cue-generator/internal/logger"
	"github.com/chech0x/youtube-cue-generator/internal/processor"
	"github.com/chech0x/youtube-cue-generator/internal/summary"
	"github.com/chech0x/youtube-cue-generator/internal/watcher"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the YAML config file")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Transcript Cue & Summary Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "LLM backend: %s (%s)", cfg.LLM.Backend, cfg.LLM.Model)
	log.Info(ctx, "Max concurrent transcripts: %d", cfg.Performance.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	cueTemplate, err := os.ReadFile(cfg.Prompts.Cues)
	if err != nil {
		log.Error(ctx, "Failed to read cue prompt template: %v", err)
		os.Exit(1)
	}
	summaryTemplate, err := os.ReadFile(cfg.Prompts.Summary)
	if err != nil {
		log.Error(ctx, "Failed to read summary prompt template: %v", err)
		os.Exit(1)
	}

	gen, err := llm.NewFromConfig(ctx, cfg.LLM)
	if err != nil {
		log.Error(ctx, "Failed to create LLM generator: %v", err)
		os.Exit(1)
	}
	policy := llm.PolicyFromConfig(cfg.LLM)

	proc := processor.New(cfg,
		cues.New(gen, policy, string(cueTemplate), log),
		summary.New(gen, policy, string(summaryTemplate), log),
		log,
	)

	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Pipeline is ready. Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Pipeline stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
