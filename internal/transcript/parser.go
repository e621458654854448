package transcript

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// FormatError reports a transcript line that matched no supported grammar
// or carried an out-of-range time component. Parsing stops at the first
// failing line; no partial output is returned.
type FormatError struct {
	Line    string
	LineNum int
	Reason  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("transcript line %d: %s: %q", e.LineNum, e.Reason, e.Line)
}

// grammar pairs a shape predicate (the regexp) with a parser for the
// captured groups. Grammars are tried in priority order; once a line's
// shape matches, time-range errors are fatal rather than falling through.
type grammar struct {
	name  string
	re    *regexp.Regexp
	parse func(groups []string) (Segment, error)
}

const clockPattern = `\d+:\d{2}:\d{2}(?:\.\d{1,3})?`

var grammars = []grammar{
	{
		name: "bracketed range",
		re:   regexp.MustCompile(`^\[(` + clockPattern + `) --> (` + clockPattern + `)\]\s*(.*)$`),
		parse: func(g []string) (Segment, error) {
			return rangeSegment(g[1], g[2], g[3])
		},
	},
	{
		name: "compact range",
		re:   regexp.MustCompile(`^(` + clockPattern + `)\|(` + clockPattern + `)\|(.*)$`),
		parse: func(g []string) (Segment, error) {
			return rangeSegment(g[1], g[2], g[3])
		},
	},
	{
		name: "initial only",
		re:   regexp.MustCompile(`^(\d+:\d{2}:\d{2})\|(.*)$`),
		parse: func(g []string) (Segment, error) {
			start, err := ParseClock(g[1])
			if err != nil {
				return Segment{}, err
			}
			return Segment{Start: start, Text: g[2]}, nil
		},
	},
}

func rangeSegment(startClock, endClock, text string) (Segment, error) {
	start, err := ParseClock(startClock)
	if err != nil {
		return Segment{}, err
	}
	end, err := ParseClock(endClock)
	if err != nil {
		return Segment{}, err
	}
	return Segment{Start: start, End: end, HasEnd: true, Text: text}, nil
}

// Parse converts raw transcript text into an ordered sequence of segments.
// Each non-blank line must match one of the supported grammars; the first
// matching grammar wins. Any unparseable line aborts with a FormatError.
func Parse(raw string) ([]Segment, error) {
	var segments []Segment

	for i, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		seg, err := parseLine(trimmed)
		if err != nil {
			return nil, &FormatError{Line: line, LineNum: i + 1, Reason: err.Error()}
		}

		seg.Text = strings.TrimSpace(seg.Text)
		if seg.Text == "" {
			return nil, &FormatError{Line: line, LineNum: i + 1, Reason: "empty text"}
		}
		segments = append(segments, seg)
	}

	sort.SliceStable(segments, func(a, b int) bool {
		return segments[a].Start < segments[b].Start
	})

	return segments, nil
}

func parseLine(line string) (Segment, error) {
	for _, g := range grammars {
		groups := g.re.FindStringSubmatch(line)
		if groups == nil {
			continue
		}
		seg, err := g.parse(groups)
		if err != nil {
			return Segment{}, fmt.Errorf("%s: %w", g.name, err)
		}
		return seg, nil
	}
	return Segment{}, fmt.Errorf("no supported time format")
}
