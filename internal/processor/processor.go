package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chech0x/youtube-cue-generator/internal/cues"
	"github.com/chech0x/youtube-cue-generator/internal/report"
	"github.com/chech0x/youtube-cue-generator/internal/section"
	"github.com/chech0x/youtube-cue-generator/internal/transcript"
)

// Process runs parse → extract cues → resolve boundary → summarize for
// one transcript file and writes the artifacts. A missing message section
// aborts only the summary: the cue sheet is still written.
func (p *implProcessor) Process(ctx context.Context, transcriptPath string) error {
	startTime := time.Now()
	stem := strings.TrimSuffix(filepath.Base(transcriptPath), filepath.Ext(transcriptPath))

	p.logger.Info(ctx, "Processing transcript: %s", transcriptPath)

	raw, err := os.ReadFile(transcriptPath)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	segments, err := transcript.Parse(string(raw))
	if err != nil {
		return fmt.Errorf("parse transcript: %w", err)
	}
	if len(segments) == 0 {
		return fmt.Errorf("transcript %s has no segments", transcriptPath)
	}

	transcriptText := transcript.RenderInitial(segments)

	extraction, err := p.cueExt.Extract(ctx, transcriptText, p.cfg.YouTube.Languages)
	if err != nil {
		return fmt.Errorf("extract cues: %w", err)
	}
	cueList := extraction.Cues
	p.logger.Info(ctx, "Extracted %d cues", len(cueList))

	cuesPath := filepath.Join(p.cfg.Paths.Output, "cues_"+stem+".txt")
	if err := report.WriteLines(cuesPath, report.CueLines(cueList)); err != nil {
		return fmt.Errorf("write cues: %w", err)
	}
	if err := report.WriteLines(filepath.Join(p.cfg.Paths.Output, "response_"+stem+".txt"), extraction.Raw); err != nil {
		p.logger.Warn(ctx, "Failed to write cues response: %v", err)
	}
	if err := report.WriteCuesDocx(stem, cueList, filepath.Join(p.cfg.Paths.Output, "cues_"+stem+".docx")); err != nil {
		p.logger.Warn(ctx, "Failed to write cues docx: %v", err)
	}

	if err := p.summarize(ctx, stem, segments, cueList); err != nil {
		var boundaryErr *section.BoundaryNotFoundError
		if errors.As(err, &boundaryErr) {
			// Cue output remains valid without a message section.
			p.logger.Warn(ctx, "Skipping summary for %s: %v", stem, boundaryErr)
		} else {
			return err
		}
	}

	if err := p.archive(ctx, transcriptPath); err != nil {
		p.logger.Warn(ctx, "Failed to archive %s: %v", transcriptPath, err)
	}

	p.logger.Info(ctx, "Finished %s in %s", stem, time.Since(startTime))
	return nil
}

func (p *implProcessor) summarize(ctx context.Context, stem string, segments []transcript.Segment, cueList []cues.Cue) error {
	labels := section.NewLabels(p.cfg.Section.StartLabel, p.cfg.Section.EndLabel, p.cfg.Section.FallbackLabels)

	sectionRange, err := section.Resolve(cueList, labels)
	if err != nil {
		return fmt.Errorf("resolve section: %w", err)
	}
	p.logger.Info(ctx, "Summary range: %s (source: %s)", sectionRange, sectionRange.Source)

	rangeText, err := section.Extract(segments, sectionRange)
	if err != nil {
		return fmt.Errorf("extract range: %w", err)
	}

	extraction, err := p.summaryExt.Extract(ctx, rangeText)
	if err != nil {
		return fmt.Errorf("extract summary: %w", err)
	}
	points := extraction.Points
	p.logger.Info(ctx, "Extracted %d summary points", len(points))

	summaryPath := filepath.Join(p.cfg.Paths.Output, "summary_"+stem+".txt")
	if err := report.WriteLines(summaryPath, report.PointLines(points)); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	if err := report.WriteLines(filepath.Join(p.cfg.Paths.Output, "summary_response_"+stem+".txt"), extraction.Raw); err != nil {
		p.logger.Warn(ctx, "Failed to write summary response: %v", err)
	}
	if err := report.WriteSummaryDocx(stem, points, filepath.Join(p.cfg.Paths.Output, "summary_"+stem+".docx")); err != nil {
		p.logger.Warn(ctx, "Failed to write summary docx: %v", err)
	}
	return nil
}

// archive moves the processed transcript out of the drop directory so it
// is not picked up again.
func (p *implProcessor) archive(ctx context.Context, transcriptPath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}
	dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(transcriptPath))
	p.logger.Debug(ctx, "Archiving %s -> %s", transcriptPath, dest)
	if err := os.Rename(transcriptPath, dest); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
