package tui

import "strings"

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

// firstLine returns the first non-empty line of a note body for use as a
// one-line listing label.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			return s
		}
	}
	return "(voice note)"
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
