package transcript

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converts a "HH:MM:SS" or "HH:MM:SS.mmm" string to seconds.
// Minutes and seconds must be in [0,60); hours are unbounded.
func ParseClock(value string) (float64, error) {
	base, frac, hasFrac := strings.Cut(value, ".")

	parts := strings.Split(base, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("clock %q: want HH:MM:SS", value)
	}

	var nums [3]int
	for i, part := range parts {
		n, err := parseDigits(part)
		if err != nil {
			return 0, fmt.Errorf("clock %q: %w", value, err)
		}
		nums[i] = n
	}
	if nums[1] >= 60 {
		return 0, fmt.Errorf("clock %q: minutes %d out of range", value, nums[1])
	}
	if nums[2] >= 60 {
		return 0, fmt.Errorf("clock %q: seconds %d out of range", value, nums[2])
	}

	seconds := float64(nums[0]*3600 + nums[1]*60 + nums[2])

	if hasFrac {
		if len(frac) == 0 || len(frac) > 3 {
			return 0, fmt.Errorf("clock %q: want up to three fractional digits", value)
		}
		ms, err := parseDigits(frac)
		if err != nil {
			return 0, fmt.Errorf("clock %q: %w", value, err)
		}
		for i := len(frac); i < 3; i++ {
			ms *= 10
		}
		seconds += float64(ms) / 1000
	}

	return seconds, nil
}

// FormatClock renders whole seconds as "HH:MM:SS", the exact inverse of
// ParseClock for fraction-free input.
func FormatClock(seconds float64) string {
	total := int(seconds)
	hh := total / 3600
	mm := (total % 3600) / 60
	ss := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hh, mm, ss)
}

// FormatClockMillis renders seconds as "HH:MM:SS.mmm", rounding to the
// nearest millisecond.
func FormatClockMillis(seconds float64) string {
	millis := int64(seconds*1000 + 0.5)
	hh := millis / 3_600_000
	mm := (millis % 3_600_000) / 60_000
	ss := (millis % 60_000) / 1000
	ms := millis % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hh, mm, ss, ms)
}

// parseDigits is a strict base-10 parse: digits only, no signs or spaces.
func parseDigits(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty component")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("component %q is not numeric", s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("component %q: %w", s, err)
	}
	return n, nil
}
