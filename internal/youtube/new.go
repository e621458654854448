package youtube

import (
	"net/http"
	"time"

	"github.com/chech0x/youtube-cue-generator/internal/logger"
	"github.com/chech0x/youtube-cue-generator/pkg/executor"
)

type implClient struct {
	http      *http.Client
	exec      executor.Executor
	ytdlpPath string
	logger    logger.Logger
}

// New creates a caption Client. The innertube API is tried first; when it
// yields no track, yt-dlp at ytdlpPath is used as a fallback.
func New(exec executor.Executor, ytdlpPath string, log logger.Logger) Client {
	return &implClient{
		http:      &http.Client{Timeout: 30 * time.Second},
		exec:      exec,
		ytdlpPath: ytdlpPath,
		logger:    log,
	}
}
