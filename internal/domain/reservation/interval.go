package reservation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNonPositiveDuration = errors.New("duration must be positive")
)

// Interval is a half-open time range [Start, Start+Duration). Every overlap
// check in the system goes through Overlaps; touching endpoints do not
// conflict.
type Interval struct {
	start    time.Time
	duration time.Duration
}

func NewInterval(start time.Time, duration time.Duration) (Interval, error) {
	if duration <= 0 {
		return Interval{}, ErrNonPositiveDuration
	}
	return Interval{start: start.UTC(), duration: duration}, nil
}

func (i Interval) Start() time.Time {
	return i.start
}

func (i Interval) End() time.Time {
	return i.start.Add(i.duration)
}

func (i Interval) Duration() time.Duration {
	return i.duration
}

func (i Interval) DurationMinutes() int {
	return int(i.duration / time.Minute)
}

func (i Interval) Overlaps(other Interval) bool {
	return i.start.Before(other.End()) && i.End().After(other.start)
}

func (i Interval) IsZero() bool {
	return i.duration == 0
}

// ToTstzrange renders the interval as a PostgreSQL half-open range literal.
func (i Interval) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", i.start.Format(time.RFC3339), i.End().Format(time.RFC3339))
}
