package core

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// FormatDate formats a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateFmt)
}

// ParseDate parses a YYYY-MM-DD string into a midnight-UTC time.Time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFmt, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s' (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// DateOnly truncates a time to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar day at midnight UTC.
func Today() time.Time {
	return DateOnly(time.Now())
}

var relSpecRe = regexp.MustCompile(`^([dwmy])-(\d+)$`)

// ParseDateSpec returns a concrete date for flexible spec strings.
// Supports:
// 1. Exact YYYY-MM-DD
// 2. Relative forms like d-7 (days), w-2 (weeks), m-3 (months), y-1 (years)
func ParseDateSpec(spec string) (time.Time, error) {
	if t, err := time.Parse(DateFmt, spec); err == nil {
		return t, nil
	}

	if matches := relSpecRe.FindStringSubmatch(spec); matches != nil {
		n, _ := strconv.Atoi(matches[2])
		today := Today()
		switch matches[1] {
		case "d":
			return today.AddDate(0, 0, -n), nil
		case "w":
			return today.AddDate(0, 0, -7*n), nil
		case "m":
			return today.AddDate(0, -n, 0), nil
		case "y":
			return today.AddDate(-n, 0, 0), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date spec '%s'", spec)
}
