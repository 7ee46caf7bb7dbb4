package utils

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var ErrBadClock = errors.New("time must be in HH:MM format")

// ParseClock parses a wall-clock string like "14:30".
func ParseClock(s string) (hour, minute int, err error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, ErrBadClock
	}
	hour, err = strconv.Atoi(hh)
	if err != nil {
		return 0, 0, ErrBadClock
	}
	minute, err = strconv.Atoi(mm)
	if err != nil {
		return 0, 0, ErrBadClock
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, ErrBadClock
	}
	return hour, minute, nil
}

// DayStart truncates t to local midnight.
func DayStart(t time.Time) time.Time {
	tt := t.In(time.Local)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
}

// AtClock places an hour/minute on the calendar date of day, with seconds
// and nanoseconds zeroed.
func AtClock(day time.Time, hour, minute int) time.Time {
	d := DayStart(day)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, d.Location())
}
