package summary

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Point is one summary bullet: a leading emoji, the point text, and an
// optional passage reference quoted verbatim from the summarized text.
type Point struct {
	Emoji     string
	Text      string
	Reference string
}

// Line renders the point back into its "emoji text (reference)" form.
func (p Point) Line() string {
	var b strings.Builder
	if p.Emoji != "" {
		b.WriteString(p.Emoji)
		b.WriteString(" ")
	}
	b.WriteString(p.Text)
	if p.Reference != "" {
		fmt.Fprintf(&b, " (%s)", p.Reference)
	}
	return b.String()
}

// ParsePoint splits a raw model point into emoji, text, and reference.
// The leading pictographic run becomes the emoji; a trailing parenthesized
// clause becomes the reference. A point with no text left is invalid.
func ParsePoint(raw string) (Point, error) {
	s := strings.TrimSpace(raw)
	emoji, rest := splitLeadingEmoji(s)
	rest, reference := splitTrailingReference(strings.TrimSpace(rest))

	if rest == "" {
		return Point{}, fmt.Errorf("summary point %q has no text", raw)
	}
	return Point{Emoji: emoji, Text: rest, Reference: reference}, nil
}

// splitTrailingReference peels off a trailing parenthesized clause,
// matching the final ")" to its opening "(" by balance so references that
// themselves contain parentheses stay whole. An unbalanced trailer is
// left in the text.
func splitTrailingReference(s string) (string, string) {
	if !strings.HasSuffix(s, ")") {
		return s, ""
	}
	depth := 0
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case ')':
			depth++
		case '(':
			depth--
			if depth == 0 {
				return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1 : len(s)-1])
			}
		}
	}
	return s, ""
}

// splitLeadingEmoji peels off the leading pictographic run, including ZWJ
// sequences, skin tone modifiers and variation selectors.
func splitLeadingEmoji(s string) (string, string) {
	var n int
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if isPictographic(r) || (n > 0 && isEmojiJoiner(r)) {
			n += size
			continue
		}
		break
	}
	return s[:n], s[n:]
}

func isPictographic(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF: // pictographs, transport, supplemental, extended
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators
		return true
	case r == 0x2B50 || r == 0x2B55: // star, heavy circle
		return true
	}
	return false
}

func isEmojiJoiner(r rune) bool {
	return r == 0x200D || r == 0xFE0F || (r >= 0x1F3FB && r <= 0x1F3FF)
}
