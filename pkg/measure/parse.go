package measure

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// iso8601Layouts are tried in order when no explicit time format is
// configured. time.Parse accepts fractional seconds on all of them, so
// "2024-01-01T00:00:00.500Z" and friends parse without extra layouts.
var iso8601Layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp converts value using layout when set, ISO 8601 otherwise.
func parseTimestamp(value, layout string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: timestamp", ErrEmptyValue)
	}
	if layout != "" {
		ts, err := time.Parse(layout, value)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q does not match format %q", ErrBadTimestamp, value, layout)
		}
		return ts, nil
	}
	for _, l := range iso8601Layouts {
		if ts, err := time.Parse(l, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q (set an explicit time format)", ErrBadTimestamp, value)
}

// parseFloat converts value to float64, accepting both '.' and ',' as the
// decimal separator. The result must be finite.
func parseFloat(value, column string) (float64, error) {
	text := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	if text == "" {
		return 0, fmt.Errorf("%w: column %q", ErrEmptyValue, column)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q in column %q", ErrBadNumber, value, column)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q in column %q", ErrBadNumber, value, column)
	}
	return f, nil
}
