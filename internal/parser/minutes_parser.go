package parser

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrAll is returned by ParseLeisureAmount when the user asked for all of
// their available leisure.
var ErrAll = errors.New("all available minutes")

var (
	plainRegex    = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)$`)
	unitRegex     = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)\s*(m|min|mins|minute|minutes|h|hr|hrs|hour|hours)$`)
	compoundRegex = regexp.MustCompile(`^(\d+)\s*h\s*(\d+)\s*(?:m|min)?$`)
)

// ParseMinutes parses a duration in minutes
// Supported formats:
// - plain numbers (e.g., "25", "12.5", "12,5")
// - X minutes (e.g., "25m", "90 min", "1 minute")
// - X hours (e.g., "1h", "2 hours", "1.5h")
// - XhYm (e.g., "1h30m", "1h 30")
func ParseMinutes(input string) (float64, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return 0, fmt.Errorf("empty amount")
	}

	if matches := plainRegex.FindStringSubmatch(input); matches != nil {
		return parseNumber(matches[1])
	}

	if matches := compoundRegex.FindStringSubmatch(input); matches != nil {
		hours, err := parseNumber(matches[1])
		if err != nil {
			return 0, err
		}
		minutes, err := parseNumber(matches[2])
		if err != nil {
			return 0, err
		}
		if minutes >= 60 {
			return 0, fmt.Errorf("minutes must be below 60 in %q", input)
		}
		return hours*60 + minutes, nil
	}

	if matches := unitRegex.FindStringSubmatch(input); matches != nil {
		amount, err := parseNumber(matches[1])
		if err != nil {
			return 0, err
		}
		switch matches[2] {
		case "h", "hr", "hrs", "hour", "hours":
			return amount * 60, nil
		default:
			return amount, nil
		}
	}

	return 0, fmt.Errorf("invalid amount %q. Use: 25, 12.5, 25m, 1h30m, or 2 hours", input)
}

// ParseLeisureAmount is ParseMinutes plus "all", reported as ErrAll.
func ParseLeisureAmount(input string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "all", "a", "max":
		return 0, ErrAll
	}
	return ParseMinutes(input)
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

// FormatMinutes formats minutes for display: whole values without a
// decimal, others to one decimal.
func FormatMinutes(minutes float64) string {
	if minutes == math.Trunc(minutes) {
		return strconv.FormatFloat(minutes, 'f', 0, 64)
	}
	return strconv.FormatFloat(minutes, 'f', 1, 64)
}

// FormatClock formats seconds as MM:SS, or H:MM:SS from an hour up.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h, m, s := seconds/3600, seconds/60%60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
