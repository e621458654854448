// Command summary condenses the message section of a transcript into
// point-form bullets, locating the section through the cue outline. It
// works from a transcript file plus a cues file, or straight from a
// YouTube video, extracting the cues inline.
package main

import (
	"context"
	"encoding/json"
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
	"github.com/chech0x/youtube-cue-generator/internal/section"
	"github.com/chech0x/youtube-cue-generator/internal/summary"
	"github.com/chech0x/youtube-cue-generator/internal/transcript"
	"github.com/chech0x/youtube-cue-generator/internal/youtube"
	"github.com/chech0x/youtube-cue-generator/pkg/executor"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "config.yaml", "Path to the YAML config file")
	output := flag.String("o", "", "Output path for the summary (default: summary_<stem>.txt)")
	startLabel := flag.String("start-label", "", "Label marking the start of the section (default from config)")
	endLabel := flag.String("end-label", "", "Label marking the end of the section (default from config)")
	maxTokens := flag.Int("max-output-tokens", 0, "Output token budget for the summary (default from config)")
	languages := flag.String("l", "", "Comma-separated caption language priority for video input (default from config)")
	asJSON := flag.Bool("json", false, "Print the summary as JSON instead of lines")
	showRaw := flag.Bool("show-raw", false, "Print the raw model response to stderr")
	saveTemp := flag.Bool("save-temp", false, "For video input, keep intermediate files in a temp directory")
	flag.Parse()

	if flag.NArg() != 1 && flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: summary [flags] <transcript file> <cues file>")
		fmt.Fprintln(os.Stderr, "       summary [flags] <video id/URL>")
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		return 1
	}
	if *startLabel != "" {
		cfg.Section.StartLabel = *startLabel
	}
	if *endLabel != "" {
		cfg.Section.EndLabel = *endLabel
	}
	if *maxTokens > 0 {
		cfg.LLM.MaxOutputTokens = *maxTokens
	}
	if *languages != "" {
		cfg.YouTube.Languages = splitLanguages(*languages)
	}

	log := logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format)
	ctx := context.Background()

	gen, err := llm.NewFromConfig(ctx, cfg.LLM)
	if err != nil {
		log.Error(ctx, "%v", err)
		return 1
	}
	policy := llm.PolicyFromConfig(cfg.LLM)

	var (
		segments      []transcript.Segment
		cueList       []cues.Cue
		cueRaw        string
		stem          string
		fromVideo     bool
		transcriptDir string
	)

	if flag.NArg() == 2 {
		transcriptPath, cuesPath := flag.Arg(0), flag.Arg(1)
		stem = strings.TrimSuffix(filepath.Base(transcriptPath), filepath.Ext(transcriptPath))
		transcriptDir = filepath.Dir(transcriptPath)

		rawTranscript, err := os.ReadFile(transcriptPath)
		if err != nil {
			log.Error(ctx, "Read transcript: %v", err)
			return 2
		}
		rawCues, err := os.ReadFile(cuesPath)
		if err != nil {
			log.Error(ctx, "Read cues: %v", err)
			return 2
		}

		segments, err = transcript.Parse(string(rawTranscript))
		if err != nil {
			log.Error(ctx, "Parse transcript: %v", err)
			return 2
		}
		cueList, err = cues.ParseLines(string(rawCues))
		if err != nil {
			log.Error(ctx, "Parse cues: %v", err)
			return 2
		}
	} else {
		fromVideo = true
		videoID, err := youtube.ExtractVideoID(flag.Arg(0))
		if err != nil {
			log.Error(ctx, "%v", err)
			return 1
		}
		stem = videoID

		client := youtube.New(executor.New(), cfg.YouTube.YtDlpPath, log)
		captions, err := client.Fetch(ctx, videoID, cfg.YouTube.Languages)
		if err != nil {
			var noCaptions *youtube.NoCaptionsError
			if errors.As(err, &noCaptions) {
				log.Error(ctx, "%v", noCaptions)
				return 2
			}
			log.Error(ctx, "Fetch captions: %v", err)
			return 99
		}
		segments = youtube.Segments(captions)

		cueTemplate, err := os.ReadFile(cfg.Prompts.Cues)
		if err != nil {
			log.Error(ctx, "Read cue prompt template: %v", err)
			return 1
		}
		cueExtractor := cues.New(gen, policy, string(cueTemplate), log)
		extraction, err := cueExtractor.Extract(ctx, transcript.RenderInitial(segments), cfg.YouTube.Languages)
		if err != nil {
			var schemaErr *llm.SchemaError
			if errors.As(err, &schemaErr) {
				log.Error(ctx, "Cue extraction did not conform: %v", schemaErr.Err)
				fmt.Fprintf(os.Stderr, "[DEBUG] Raw cues response:\n%s\n", schemaErr.Raw)
				return 4
			}
			log.Error(ctx, "Extract cues: %v", err)
			return 99
		}
		cueList, cueRaw = extraction.Cues, extraction.Raw
	}

	labels := section.NewLabels(cfg.Section.StartLabel, cfg.Section.EndLabel, cfg.Section.FallbackLabels)
	sectionRange, err := section.Resolve(cueList, labels)
	if err != nil {
		log.Error(ctx, "%v", err)
		return 3
	}

	rangeText, err := section.Extract(segments, sectionRange)
	if err != nil {
		log.Error(ctx, "%v", err)
		return 3
	}

	template, err := os.ReadFile(cfg.Prompts.Summary)
	if err != nil {
		log.Error(ctx, "Read summary prompt template: %v", err)
		return 1
	}

	extractor := summary.New(gen, policy, string(template), log)
	extraction, err := extractor.Extract(ctx, rangeText)
	if err != nil {
		var schemaErr *llm.SchemaError
		if errors.As(err, &schemaErr) {
			log.Error(ctx, "Summary did not conform: %v", schemaErr.Err)
			fmt.Fprintf(os.Stderr, "[DEBUG] Raw summary response:\n%s\n", schemaErr.Raw)
			return 4
		}
		log.Error(ctx, "Extract summary: %v", err)
		return 99
	}
	points := extraction.Points

	if *showRaw {
		fmt.Fprintf(os.Stderr, "[DEBUG] Raw summary response:\n%s\n", extraction.Raw)
	}

	lines := report.PointLines(points)
	if fromVideo {
		if *saveTemp {
			tempDir, err := os.MkdirTemp("", "youtube-message-summary-*")
			if err != nil {
				log.Error(ctx, "%v", err)
				return 99
			}
			writeArtifact(ctx, log, filepath.Join(tempDir, "transcript_ti.txt"), transcript.RenderInitial(segments))
			writeArtifact(ctx, log, filepath.Join(tempDir, "cues.json"), cueRaw)
			writeArtifact(ctx, log, filepath.Join(tempDir, "cues.txt"), report.CueLines(cueList))
			writeArtifact(ctx, log, filepath.Join(tempDir, "summary.json"), extraction.Raw)
			writeArtifact(ctx, log, filepath.Join(tempDir, "summary.txt"), lines)
			log.Info(ctx, "Temp files in: %s", tempDir)
		}
		if *output != "" {
			if err := report.WriteLines(*output, lines); err != nil {
				log.Error(ctx, "%v", err)
				return 99
			}
			log.Info(ctx, "Summary saved to: %s (%d points)", *output, len(points))
		}
	} else {
		outputPath := *output
		if outputPath == "" {
			outputPath = filepath.Join(transcriptDir, "summary_"+stem+".txt")
		}
		if err := report.WriteLines(outputPath, lines); err != nil {
			log.Error(ctx, "%v", err)
			return 99
		}
		writeArtifact(ctx, log, filepath.Join(transcriptDir, "summary_response_"+stem+".txt"), extraction.Raw)
		log.Info(ctx, "Summary saved to: %s (%d points)", outputPath, len(points))
	}

	if *asJSON {
		printJSON(points, sectionRange)
	} else {
		fmt.Println(lines)
	}

	log.Info(ctx, "Range used: %s (source: %s)", sectionRange, sectionRange.Source)
	return 0
}

func printJSON(points []summary.Point, r section.Range) {
	lines := make([]string, 0, len(points))
	for _, p := range points {
		lines = append(lines, p.Line())
	}
	end := "END_OF_TRANSCRIPT"
	if r.Source != section.SourceEndOfTranscript {
		end = transcript.FormatClock(r.End)
	}
	payload := map[string]any{
		"summary_points": lines,
		"range": map[string]string{
			"start": transcript.FormatClock(r.Start),
			"end":   end,
		},
		"range_source": string(r.Source),
	}
	data, _ := json.Marshal(payload)
	fmt.Println(string(data))
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
