package youtube

import "context"

// Client fetches a video's captions, trying languages in priority order.
type Client interface {
	Fetch(ctx context.Context, videoID string, languages []string) ([]Caption, error)
}
