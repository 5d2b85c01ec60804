package request

import (
	"strings"
	"time"

	"tablebook/internal/usecase/commands"
)

type JoinWaitlistRequest struct {
	GuestName string    `json:"guest_name" binding:"required"`
	Phone     string    `json:"phone" binding:"required"`
	PartySize int       `json:"party_size" binding:"required,min=1"`
	Preferred time.Time `json:"preferred_time" binding:"required"`
}

func (r JoinWaitlistRequest) ToParams(venueSlug string) commands.JoinWaitlistParams {
	return commands.JoinWaitlistParams{
		VenueSlug: venueSlug,
		GuestName: strings.TrimSpace(r.GuestName),
		Phone:     strings.TrimSpace(r.Phone),
		PartySize: r.PartySize,
		Preferred: r.Preferred,
	}
}
