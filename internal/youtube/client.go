package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const playerEndpoint = "https://www.youtube.com/youtubei/v1/player"

// The ANDROID client context returns caption tracks without the web
// player's attestation requirements.
const androidClientVersion = "19.09.37"

// Fetch implements Client. Captions come from the innertube player API;
// when no track matches, the yt-dlp fallback is tried before giving up
// with a NoCaptionsError.
func (c *implClient) Fetch(ctx context.Context, videoID string, languages []string) ([]Caption, error) {
	captions, err := c.fetchInnertube(ctx, videoID, languages)
	if err == nil {
		return captions, nil
	}

	var noCaptions *NoCaptionsError
	if !errors.As(err, &noCaptions) {
		return nil, err
	}

	c.logger.Warn(ctx, "No caption track via player API for %s, trying yt-dlp fallback", videoID)
	captions, dlpErr := c.fetchYtDlp(ctx, videoID, languages)
	if dlpErr != nil {
		c.logger.Warn(ctx, "yt-dlp fallback failed: %v", dlpErr)
		return nil, err
	}
	return captions, nil
}

type playerResponse struct {
	Captions struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

func (c *implClient) fetchInnertube(ctx context.Context, videoID string, languages []string) ([]Caption, error) {
	body, err := json.Marshal(map[string]any{
		"videoId": videoID,
		"context": map[string]any{
			"client": map[string]any{
				"clientName":    "ANDROID",
				"clientVersion": androidClientVersion,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal player request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, playerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build player request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("player request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("player request failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var player playerResponse
	if err := json.NewDecoder(resp.Body).Decode(&player); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}

	track := pickTrack(player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks, languages)
	if track == nil {
		return nil, &NoCaptionsError{VideoID: videoID, Languages: languages}
	}

	return c.fetchTrack(ctx, track.BaseURL)
}

// pickTrack prefers manual tracks over auto-generated ones within each
// requested language, in priority order.
func pickTrack(tracks []captionTrack, languages []string) *captionTrack {
	for _, lang := range languages {
		var auto *captionTrack
		for i := range tracks {
			track := &tracks[i]
			if !strings.HasPrefix(track.LanguageCode, lang) {
				continue
			}
			if track.Kind != "asr" {
				return track
			}
			if auto == nil {
				auto = track
			}
		}
		if auto != nil {
			return auto
		}
	}
	return nil
}

func (c *implClient) fetchTrack(ctx context.Context, baseURL string) ([]Caption, error) {
	url := baseURL
	if !strings.Contains(url, "fmt=") {
		url += "&fmt=json3"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build track request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("track request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("track request failed (%d)", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read track body: %w", err)
	}

	return parseJSON3(data)
}

type json3Body struct {
	Events []struct {
		TStartMs    int64 `json:"tStartMs"`
		DDurationMs int64 `json:"dDurationMs"`
		Segs        []struct {
			UTF8 string `json:"utf8"`
		} `json:"segs"`
	} `json:"events"`
}

// parseJSON3 converts YouTube's json3 timedtext format into captions,
// collapsing per-word segments and dropping newline-only events.
func parseJSON3(data []byte) ([]Caption, error) {
	var body json3Body
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("decode json3 captions: %w", err)
	}

	var captions []Caption
	for _, event := range body.Events {
		var text strings.Builder
		for _, seg := range event.Segs {
			text.WriteString(seg.UTF8)
		}
		cleaned := strings.TrimSpace(strings.ReplaceAll(text.String(), "\n", " "))
		if cleaned == "" {
			continue
		}
		captions = append(captions, Caption{
			Start:    float64(event.TStartMs) / 1000,
			Duration: float64(event.DDurationMs) / 1000,
			Text:     cleaned,
		})
	}
	return captions, nil
}
