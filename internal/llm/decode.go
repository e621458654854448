package llm

import (
	"encoding/json"
	"errors"
	"strings"
)

// decodeStrict parses a raw model response into out, rejecting unknown
// fields. Models occasionally wrap JSON in a fenced code block or leading
// prose, so fenced and outermost-brace candidates are tried after the
// verbatim text.
func decodeStrict(raw string, out any) error {
	text := strings.TrimSpace(raw)
	if text == "" {
		return errors.New("empty response")
	}

	var lastErr error
	for _, candidate := range jsonCandidates(text) {
		dec := json.NewDecoder(strings.NewReader(candidate))
		dec.DisallowUnknownFields()
		if err := dec.Decode(out); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}

func jsonCandidates(text string) []string {
	candidates := []string{text}

	if strings.HasPrefix(text, "```") {
		lines := strings.Split(text, "\n")
		if len(lines) >= 3 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
			fenced := strings.TrimSpace(strings.Join(lines[1:len(lines)-1], "\n"))
			if fenced != "" {
				candidates = append(candidates, fenced)
			}
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		candidates = append(candidates, text[start:end+1])
	}

	return candidates
}
