// Package clock holds the minute-of-day arithmetic the duty calculator
// works in: parsing and rendering HH:MM values, wrap-around time bands
// and day-rolling interval checks.
package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the length of one clock face day.
const MinutesPerDay = 1440

// ErrInvalidTimeFormat is returned for anything that is not a 24-hour HH:MM value.
var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

// Minutes is either a minute-of-day offset or a duration in minutes.
type Minutes int

// Parse turns "HH:MM" into minutes since local midnight (0..1439).
func Parse(s string) (Minutes, error) {
	t := strings.TrimSpace(s)
	parts := strings.Split(t, ":")
	if len(parts) != 2 || !twoDigits(parts[0]) || !twoDigits(parts[1]) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return Minutes(h*60 + m), nil
}

func twoDigits(s string) bool {
	return len(s) == 2 && isDigit(s[0]) && isDigit(s[1])
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// MustParse is Parse for literals; it panics on bad input.
func MustParse(s string) Minutes {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// FormatDuration renders a duration as HH:MM without wrapping at 24h,
// so 1500 prints as "25:00".
func FormatDuration(m Minutes) string {
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%02d:%02d", sign, int(m)/60, int(m)%60)
}

// FormatClock renders m as a wall-clock time after reducing it into [0, 1440).
func FormatClock(m Minutes) string {
	m = OfDay(m)
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// OfDay reduces m into [0, 1440); negative offsets wrap to the previous day.
func OfDay(m Minutes) Minutes {
	r := m % MinutesPerDay
	if r < 0 {
		r += MinutesPerDay
	}
	return r
}

func (m Minutes) String() string {
	return FormatDuration(m)
}
