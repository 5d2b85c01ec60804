package reservation

import "time"

// PeakPolicy caps the duration of bookings that start inside the evening
// peak band. The band is expressed in whole hours of the UTC day and is
// inclusive at both ends: with Start=18 and End=21 a booking starting at
// 21:59 is still capped.
type PeakPolicy struct {
	StartHour   int
	EndHour     int
	MaxDuration time.Duration
}

func NewPeakPolicy(startHour, endHour int, maxDuration time.Duration) PeakPolicy {
	return PeakPolicy{
		StartHour:   startHour,
		EndHour:     endHour,
		MaxDuration: maxDuration,
	}
}

func DefaultPeakPolicy() PeakPolicy {
	return PeakPolicy{StartHour: 18, EndHour: 21, MaxDuration: 90 * time.Minute}
}

func (p PeakPolicy) InPeak(start time.Time) bool {
	hour := start.UTC().Hour()
	return hour >= p.StartHour && hour <= p.EndHour
}

// EffectiveDuration returns the duration that is actually persisted.
// It runs before the operating-window and conflict checks.
func (p PeakPolicy) EffectiveDuration(start time.Time, requested time.Duration) time.Duration {
	if !p.InPeak(start) {
		return requested
	}
	if requested > p.MaxDuration {
		return p.MaxDuration
	}
	return requested
}
