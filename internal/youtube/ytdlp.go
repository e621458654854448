package youtube

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// fetchYtDlp downloads subtitles with yt-dlp into a temp dir and parses
// the json3 file it produces. Used only when the player API has no track.
func (c *implClient) fetchYtDlp(ctx context.Context, videoID string, languages []string) ([]Caption, error) {
	tempDir, err := os.MkdirTemp("", "yt-captions-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	args := []string{
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-langs", strings.Join(languages, ","),
		"--sub-format", "json3",
		"-o", "%(id)s",
		"https://www.youtube.com/watch?v=" + videoID,
	}

	if _, err := c.exec.ExecuteInDir(ctx, tempDir, c.ytdlpPath, args...); err != nil {
		return nil, fmt.Errorf("yt-dlp: %w", err)
	}

	for _, lang := range languages {
		matches, _ := filepath.Glob(filepath.Join(tempDir, videoID+"."+lang+"*.json3"))
		if len(matches) == 0 {
			continue
		}
		data, err := os.ReadFile(matches[0])
		if err != nil {
			return nil, fmt.Errorf("read subtitle file: %w", err)
		}
		return parseJSON3(data)
	}

	return nil, &NoCaptionsError{VideoID: videoID, Languages: languages}
}
