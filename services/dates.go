package services

import (
	"fmt"
	"strings"
	"time"
)

// StayDateLayout is the wire format for check-in/check-out dates.
const StayDateLayout = "2006-01-02"

// ParseStayDate parses a YYYY-MM-DD date at UTC midnight.
func ParseStayDate(raw string) (time.Time, error) {
	t, err := time.Parse(StayDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, raw)
	}
	return t, nil
}

// parseStay parses both ends of a stay and checks checkOut > checkIn.
func parseStay(checkIn, checkOut string) (time.Time, time.Time, error) {
	ci, err := ParseStayDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	co, err := ParseStayDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !co.After(ci) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s -> %s", ErrInvalidDateRange, checkIn, checkOut)
	}
	return ci, co, nil
}

func beginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Nights is the calendar-day difference between check-in and check-out,
// never negative. A same-day stay is zero nights.
func Nights(checkIn, checkOut time.Time) int {
	start := beginningOfDay(checkIn)
	end := beginningOfDay(checkOut)
	if !end.After(start) {
		return 0
	}
	return int(end.Sub(start).Hours() / 24)
}
