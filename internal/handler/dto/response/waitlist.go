package response

import (
	"time"

	"tablebook/internal/usecase/commands"

	"github.com/google/uuid"
)

type WaitlistEntryResponse struct {
	ID            uuid.UUID `json:"id"`
	VenueID       uuid.UUID `json:"venueId"`
	GuestName     string    `json:"guestName"`
	Phone         string    `json:"phone"`
	PartySize     int       `json:"partySize"`
	PreferredTime time.Time `json:"preferredTime"`
}

func FromWaitlistSnapshot(snap *commands.WaitlistEntrySnapshot) *WaitlistEntryResponse {
	return &WaitlistEntryResponse{
		ID:            snap.ID,
		VenueID:       snap.VenueID,
		GuestName:     snap.GuestName,
		Phone:         snap.Phone,
		PartySize:     snap.PartySize,
		PreferredTime: snap.Preferred,
	}
}
