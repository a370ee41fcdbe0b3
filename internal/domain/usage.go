package domain

import (
	"strconv"
	"strings"
)

const (
	thousand = 1_000
	million  = 1_000_000
)

// ParseUsage estimates the token count from a display string such as
// "1.2M tokens" or "450K tokens". Local and legacy entries count as zero.
func ParseUsage(usage string) float64 {
	upper := strings.ToUpper(strings.TrimSpace(usage))
	if upper == "" || strings.Contains(upper, "LOCAL") || strings.Contains(upper, "LEGACY") {
		return 0
	}

	end := 0
	for end < len(upper) && (upper[end] == '.' || (upper[end] >= '0' && upper[end] <= '9')) {
		end++
	}

	value, err := strconv.ParseFloat(upper[:end], 64)
	if err != nil {
		return 0
	}

	suffix := strings.TrimSpace(upper[end:])
	switch {
	case strings.HasPrefix(suffix, "M"):
		value *= million
	case strings.HasPrefix(suffix, "K"):
		value *= thousand
	}

	return value
}

// FormatUsage renders a token count as "1.2M", "3.4K" or the plain integer.
func FormatUsage(total float64) string {
	switch {
	case total >= million:
		return strconv.FormatFloat(total/million, 'f', 1, 64) + "M"
	case total >= thousand:
		return strconv.FormatFloat(total/thousand, 'f', 1, 64) + "K"
	default:
		return strconv.FormatFloat(total, 'f', -1, 64)
	}
}
