// Command transcript downloads a YouTube video's captions and writes them
// as a transcript text file in one of the supported formats.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chech0x/youtube-cue-generator/internal/config"
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
	languages := flag.String("l", "", "Comma-separated caption language priority (default from config)")
	output := flag.String("o", "", "Output path (default: transcript_<video_id>.txt)")
	bracketed := flag.Bool("t", false, "Write [HH:MM:SS.mmm --> HH:MM:SS.mmm] text lines")
	compact := flag.Bool("tc", false, "Write start|end|text lines in clock notation")
	initial := flag.Bool("ti", false, "Write HH:MM:SS|text lines using only the start time")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: transcript [flags] <video id or URL>")
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		return 1
	}
	log := logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format)
	ctx := context.Background()

	videoID, err := youtube.ExtractVideoID(flag.Arg(0))
	if err != nil {
		log.Error(ctx, "%v", err)
		return 1
	}

	langs := cfg.YouTube.Languages
	if *languages != "" {
		langs = splitLanguages(*languages)
	}

	client := youtube.New(executor.New(), cfg.YouTube.YtDlpPath, log)
	captions, err := client.Fetch(ctx, videoID, langs)
	if err != nil {
		var noCaptions *youtube.NoCaptionsError
		if errors.As(err, &noCaptions) {
			log.Error(ctx, "%v", noCaptions)
			return 2
		}
		log.Error(ctx, "Fetch captions: %v", err)
		return 99
	}

	segments := youtube.Segments(captions)

	var text string
	switch {
	case *initial:
		text = transcript.RenderInitial(segments)
	case *compact:
		text = transcript.RenderCompact(segments)
	case *bracketed:
		text = transcript.RenderBracketed(segments)
	default:
		text = transcript.RenderPlain(segments)
	}

	outputPath := *output
	if outputPath == "" {
		outputPath = fmt.Sprintf("transcript_%s.txt", videoID)
	}
	if err := report.WriteLines(outputPath, text); err != nil {
		log.Error(ctx, "%v", err)
		return 99
	}

	log.Info(ctx, "Transcript saved to: %s (%d segments)", outputPath, len(segments))
	return 0
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
