// Command cues generates a time-stamped cue outline via the configured
// LLM backend, from a transcript file or straight from a YouTube video.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chech0x/youtube-cue-generator/internal/config"
	"github.com/chech0x/youtube-cue-generator/internal/cues"
	"github.com/chech0x/youtube-cue-generator/internal/llm"
	"github.com/chech0x/youtube-cue-generator/internal/logger"
	"github.com/chech0x/youtube-cue-generator/internal/report"
	"github.com/chech0x/youtube-cue-generator/internal/transcript"
	"github.com/chech0x/youtube-cue-generator/internal/youtube"
	"github.com/chech0x/youtube-cue-generator/pkg/executor"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "config.yaml", "Path to the YAML config file")
	output := flag.String("o", "", "Output path for the cue lines (default: cues_<stem>.txt)")
	languages := flag.String("l", "", "Comma-separated caption language priority for video input (default from config)")
	asJSON := flag.Bool("json", false, "Print the raw JSON response instead of cue lines")
	saveTemp := flag.Bool("save-temp", false, "For video input, keep transcript and cues in a temp directory")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: cues [flags] <transcript file | video id/URL>")
		return 1
	}
	input := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		return 1
	}
	if *languages != "" {
		cfg.YouTube.Languages = splitLanguages(*languages)
	}
	log := logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format)
	ctx := context.Background()

	segments, stem, fromVideo, code := loadSegments(ctx, cfg, log, input)
	if code != 0 {
		return code
	}
	transcriptText := transcript.RenderInitial(segments)

	template, err := os.ReadFile(cfg.Prompts.Cues)
	if err != nil {
		log.Error(ctx, "Read cue prompt template: %v", err)
		return 1
	}

	gen, err := llm.NewFromConfig(ctx, cfg.LLM)
	if err != nil {
		log.Error(ctx, "%v", err)
		return 1
	}

	extractor := cues.New(gen, llm.PolicyFromConfig(cfg.LLM), string(template), log)
	extraction, err := extractor.Extract(ctx, transcriptText, cfg.YouTube.Languages)
	if err != nil {
		var schemaErr *llm.SchemaError
		if errors.As(err, &schemaErr) {
			log.Error(ctx, "Cue extraction did not conform: %v", schemaErr.Err)
			fmt.Fprintf(os.Stderr, "[DEBUG] Raw cues response:\n%s\n", schemaErr.Raw)
			return 3
		}
		log.Error(ctx, "Extract cues: %v", err)
		return 99
	}
	lines := report.CueLines(extraction.Cues)

	if fromVideo {
		// Video input writes nothing unless asked to, mirroring the
		// transcript-file path only when -o or -save-temp is given.
		if *saveTemp {
			tempDir, err := os.MkdirTemp("", "youtube-cues-*")
			if err != nil {
				log.Error(ctx, "%v", err)
				return 99
			}
			writeArtifact(ctx, log, filepath.Join(tempDir, "transcript_ti.txt"), transcriptText)
			writeArtifact(ctx, log, filepath.Join(tempDir, "cues.json"), extraction.Raw)
			writeArtifact(ctx, log, filepath.Join(tempDir, "cues.txt"), lines)
			log.Info(ctx, "Temp files in: %s", tempDir)
		}
		if *output != "" {
			if err := report.WriteLines(*output, lines); err != nil {
				log.Error(ctx, "%v", err)
				return 99
			}
			log.Info(ctx, "Cues saved to: %s (%d cues)", *output, len(extraction.Cues))
		}
	} else {
		outputPath := *output
		if outputPath == "" {
			outputPath = filepath.Join(filepath.Dir(input), "cues_"+stem+".txt")
		}
		if err := report.WriteLines(outputPath, lines); err != nil {
			log.Error(ctx, "%v", err)
			return 99
		}
		writeArtifact(ctx, log, filepath.Join(filepath.Dir(input), "response_"+stem+".txt"), extraction.Raw)
		log.Info(ctx, "Cues saved to: %s (%d cues)", outputPath, len(extraction.Cues))
	}

	if *asJSON {
		fmt.Println(extraction.Raw)
	} else {
		fmt.Println(lines)
	}
	return 0
}

// loadSegments parses the input as a transcript file when one exists at
// that path, otherwise treats it as a video id/URL and fetches captions.
func loadSegments(ctx context.Context, cfg *config.Config, log logger.Logger, input string) ([]transcript.Segment, string, bool, int) {
	if _, err := os.Stat(input); err == nil {
		raw, err := os.ReadFile(input)
		if err != nil {
			log.Error(ctx, "Read transcript: %v", err)
			return nil, "", false, 1
		}
		segments, err := transcript.Parse(string(raw))
		if err != nil {
			log.Error(ctx, "Parse transcript: %v", err)
			return nil, "", false, 2
		}
		stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		return segments, stem, false, 0
	}

	videoID, err := youtube.ExtractVideoID(input)
	if err != nil {
		log.Error(ctx, "Input is neither an existing file nor a video id/URL: %v", err)
		return nil, "", false, 1
	}

	client := youtube.New(executor.New(), cfg.YouTube.YtDlpPath, log)
	captions, err := client.Fetch(ctx, videoID, cfg.YouTube.Languages)
	if err != nil {
		var noCaptions *youtube.NoCaptionsError
		if errors.As(err, &noCaptions) {
			log.Error(ctx, "%v", noCaptions)
			return nil, "", false, 2
		}
		log.Error(ctx, "Fetch captions: %v", err)
		return nil, "", false, 99
	}
	return youtube.Segments(captions), videoID, true, 0
}

func writeArtifact(ctx context.Context, log logger.Logger, path, content string) {
	if err := report.WriteLines(path, content); err != nil {
		log.Warn(ctx, "Failed to write %s: %v", path, err)
	}
}

func splitLanguages(raw string) []string {
	var langs []string
	for _, lang := range strings.Split(raw, ",") {
		if lang = strings.TrimSpace(lang); lang != "" {
			langs = append(langs, lang)
		}
	}
	return langs
}
