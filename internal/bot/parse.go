package bot

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const maxRandomCount = 10

// ParseDateArgs parses "<day> <month> <year>" into a calendar date.
func ParseDateArgs(args string) (time.Time, error) {
	parts := strings.Fields(args)
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("usage: /date <day> <month> <year>")
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q", parts[0])
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q", parts[1])
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year %q", parts[2])
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (32 Jan becomes 1 Feb); reject that.
	if d.Day() != day || d.Month() != time.Month(month) || d.Year() != year {
		return time.Time{}, fmt.Errorf("%d-%d-%d is not a calendar date", day, month, year)
	}
	return d, nil
}

// ParseCountArg parses the optional count argument of /random.
// An empty argument means one entry.
func ParseCountArg(args string) (int, error) {
	s := strings.TrimSpace(args)
	if s == "" {
		return 1, nil
	}
	count, err := strconv.Atoi(strings.Fields(s)[0])
	if err != nil {
		return 0, fmt.Errorf("invalid count %q", s)
	}
	if count < 1 || count > maxRandomCount {
		return 0, fmt.Errorf("count must be between 1 and %d", maxRandomCount)
	}
	return count, nil
}
