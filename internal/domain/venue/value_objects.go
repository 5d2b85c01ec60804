package venue

import (
	"errors"
	"fmt"
	"time"

	"tablebook/internal/domain/reservation"
)

var (
	ErrInvalidTimeOfDay = errors.New("time of day must be HH:MM")
	ErrWindowInverted   = errors.New("opening time must be before closing time")
)

// TimeOfDay is a minute offset from midnight, parsed from "HH:MM".
type TimeOfDay int

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) Minutes() int {
	return int(t)
}

// At anchors the time of day onto the given date (UTC).
func (t TimeOfDay) At(date time.Time) time.Time {
	d := date.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), int(t)/60, int(t)%60, 0, 0, time.UTC)
}

// OperatingWindow is a venue's daily open/close times. All interval math is
// done on UTC time-of-day minute offsets, independent of the date.
type OperatingWindow struct {
	open  TimeOfDay
	close TimeOfDay
}

func NewOperatingWindow(open, close TimeOfDay) (OperatingWindow, error) {
	if open >= close {
		return OperatingWindow{}, ErrWindowInverted
	}
	return OperatingWindow{open: open, close: close}, nil
}

func ParseOperatingWindow(opening, closing string) (OperatingWindow, error) {
	open, err := ParseTimeOfDay(opening)
	if err != nil {
		return OperatingWindow{}, err
	}
	closeAt, err := ParseTimeOfDay(closing)
	if err != nil {
		return OperatingWindow{}, err
	}
	return NewOperatingWindow(open, closeAt)
}

func (w OperatingWindow) Open() TimeOfDay  { return w.open }
func (w OperatingWindow) Close() TimeOfDay { return w.close }

// Admits reports whether the interval fits inside the window: a booking may
// start exactly at opening and must end at or before closing (both
// boundaries inclusive).
func (w OperatingWindow) Admits(ivl reservation.Interval) bool {
	start := ivl.Start().UTC()
	startMin := start.Hour()*60 + start.Minute()
	endMin := startMin + ivl.DurationMinutes()
	return startMin >= w.open.Minutes() && endMin <= w.close.Minutes()
}
