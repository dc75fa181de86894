package engine

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/anatolykoptev/go-kit/strutil"
)

// YouTubeWatchURL is the public watch page prefix for a video ID.
const YouTubeWatchURL = "https://www.youtube.com/watch?v="

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8 (Cyrillic, CJK, emoji).
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

// isoDurationRe matches the PT#H#M#S form YouTube uses for contentDetails.duration.
// Anchored at the start only: trailing garbage after a valid prefix is ignored.
var isoDurationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// SplitISODuration returns the hour, minute and second components of an
// ISO-8601 video duration. ok is false when s does not start with "PT".
// Missing components are 0.
func SplitISODuration(s string) (hours, minutes, seconds int, ok bool) {
	m := isoDurationRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, false
	}
	atoi := func(v string) int {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return n
	}
	return atoi(m[1]), atoi(m[2]), atoi(m[3]), true
}

// FormatDuration renders an ISO-8601 duration for display:
// "1h 5m", "4m 10s", "45s", or "Unknown" when unparseable.
func FormatDuration(iso string) string {
	h, m, s, ok := SplitISODuration(iso)
	switch {
	case !ok:
		return "Unknown"
	case h > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// FormatCount shortens large counters: 1234567 → "1.2M", 4321 → "4.3K".
func FormatCount(n uint64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.FormatUint(n, 10)
	}
}
