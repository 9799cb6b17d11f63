package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDurationRe   = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)
	clockDurationRe = regexp.MustCompile(`^(\d+:)?\d{1,2}:\d{2}$`)
)

// FormatDuration converts an ISO-8601 period ("PT27M35S") to clock format
// ("27:35"). Input already in clock format passes through unchanged;
// anything unparsable yields "0:00".
func FormatDuration(duration string) string {
	if duration == "" {
		return "0:00"
	}
	if clockDurationRe.MatchString(duration) {
		return duration
	}

	matches := isoDurationRe.FindStringSubmatch(duration)
	if matches == nil {
		return "0:00"
	}

	hours := atoiOrZero(matches[1])
	minutes := atoiOrZero(matches[2])
	seconds := atoiOrZero(matches[3])

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatViewCount renders a count as "1.2M views" / "45.0K views".
func FormatViewCount(count int64) string {
	switch {
	case count < 0:
		return "No views"
	case count >= 1_000_000:
		return fmt.Sprintf("%.1fM views", float64(count)/1_000_000)
	case count >= 1_000:
		return fmt.Sprintf("%.1fK views", float64(count)/1_000)
	default:
		return fmt.Sprintf("%d views", count)
	}
}

// FormatPublishedDate renders a timestamp relative to now ("3 days ago").
func FormatPublishedDate(published time.Time) string {
	if published.IsZero() {
		return ""
	}

	diff := time.Since(published)
	if diff < 0 {
		diff = 0
	}

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return plural(int(diff.Minutes()), "minute")
	case diff < 24*time.Hour:
		return plural(int(diff.Hours()), "hour")
	case diff < 7*24*time.Hour:
		return plural(int(diff.Hours()/24), "day")
	case diff < 28*24*time.Hour:
		return plural(int(diff.Hours()/(24*7)), "week")
	case diff < 365*24*time.Hour:
		return plural(int(diff.Hours()/(24*30)), "month")
	default:
		return plural(int(diff.Hours()/(24*365)), "year")
	}
}

// TruncateText shortens text to maxLength characters with an ellipsis.
func TruncateText(text string, maxLength int) string {
	if text == "" || len(text) <= maxLength {
		return text
	}
	return strings.TrimSpace(text[:maxLength]) + "..."
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}
