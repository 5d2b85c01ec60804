package request

import (
	"strings"
	"time"

	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"
)

type CreateReservationRequest struct {
	GuestName   string    `json:"guest_name" binding:"required"`
	Phone       string    `json:"phone" binding:"required"`
	PartySize   int       `json:"party_size" binding:"required,min=1"`
	Start       time.Time `json:"start" binding:"required"`
	DurationMin *int      `json:"duration_minutes,omitempty" binding:"omitempty,min=1"`
}

func (r CreateReservationRequest) ToParams(venueSlug string) commands.AllocateParams {
	params := commands.AllocateParams{
		VenueSlug: venueSlug,
		GuestName: strings.TrimSpace(r.GuestName),
		Phone:     strings.TrimSpace(r.Phone),
		PartySize: r.PartySize,
		Start:     r.Start,
	}
	if r.DurationMin != nil {
		params.Duration = time.Duration(*r.DurationMin) * time.Minute
	}
	return params
}

type ModifyReservationRequest struct {
	Start       *time.Time `json:"start,omitempty"`
	PartySize   *int       `json:"party_size,omitempty" binding:"omitempty,min=1"`
	DurationMin *int       `json:"duration_minutes,omitempty" binding:"omitempty,min=1"`
}

func (r ModifyReservationRequest) ToParams(reference string) commands.ModifyParams {
	return commands.ModifyParams{
		Reference:   reference,
		Start:       r.Start,
		PartySize:   r.PartySize,
		DurationMin: r.DurationMin,
	}
}

type AvailabilityQuery struct {
	PartySize   int       `form:"party_size" binding:"required,min=1"`
	Start       time.Time `form:"start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	DurationMin *int      `form:"duration_minutes" binding:"omitempty,min=1"`
}

func (q AvailabilityQuery) ToParams(venueSlug string) queries.AvailabilityParams {
	params := queries.AvailabilityParams{
		VenueSlug: venueSlug,
		PartySize: q.PartySize,
		Start:     q.Start,
	}
	if q.DurationMin != nil {
		params.Duration = time.Duration(*q.DurationMin) * time.Minute
	}
	return params
}

type SlotsQuery struct {
	PartySize int    `form:"party_size" binding:"required,min=1"`
	Date      string `form:"date" binding:"required"`
}

func (q SlotsQuery) ToParams(venueSlug string) queries.SlotsParams {
	return queries.SlotsParams{
		VenueSlug: venueSlug,
		PartySize: q.PartySize,
		Date:      q.Date,
	}
}
