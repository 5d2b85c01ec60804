package response

import (
	"time"

	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	Reference       string    `json:"reference"`
	VenueID         uuid.UUID `json:"venueId"`
	TableID         uuid.UUID `json:"tableId"`
	GuestName       string    `json:"guestName"`
	Phone           string    `json:"phone"`
	PartySize       int       `json:"partySize"`
	Start           time.Time `json:"start"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
}

type ReservationDetailResponse struct {
	ReservationResponse
	TableNumber int       `json:"tableNumber"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type AvailabilityResponse struct {
	Available bool           `json:"available"`
	Table     *TableResponse `json:"table,omitempty"`
	Reason    string         `json:"reason,omitempty"`
	// CanWaitlist signals the client may offer the waitlist instead.
	CanWaitlist bool `json:"canWaitlist,omitempty"`
}

type SlotsResponse struct {
	Date      string      `json:"date"`
	PartySize int         `json:"partySize"`
	Slots     []time.Time `json:"slots"`
	Message   string      `json:"message,omitempty"`
}

func FromBookingSnapshot(snap *commands.BookingSnapshot) *ReservationResponse {
	return &ReservationResponse{
		ID:              snap.ID,
		Reference:       snap.Reference,
		VenueID:         snap.VenueID,
		TableID:         snap.TableID,
		GuestName:       snap.GuestName,
		Phone:           snap.Phone,
		PartySize:       snap.PartySize,
		Start:           snap.Start,
		DurationMinutes: int(snap.Duration.Minutes()),
		Status:          string(snap.Status),
	}
}

func FromReservationView(rm *queries.ReservationView) *ReservationDetailResponse {
	return &ReservationDetailResponse{
		ReservationResponse: ReservationResponse{
			ID:              rm.ID,
			Reference:       rm.Reference,
			VenueID:         rm.VenueID,
			TableID:         rm.TableID,
			GuestName:       rm.GuestName,
			Phone:           rm.Phone,
			PartySize:       rm.PartySize,
			Start:           rm.Start,
			DurationMinutes: rm.DurationMinutes,
			Status:          rm.Status,
		},
		TableNumber: rm.TableNumber,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

func FromAvailabilityView(view *queries.AvailabilityView) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		Available:   view.Available,
		Reason:      view.Reason,
		CanWaitlist: !view.Available,
	}
	if view.Table != nil {
		resp.Table = FromTableView(view.Table)
	}
	return resp
}

func FromSlotsView(view *queries.SlotsView) *SlotsResponse {
	return &SlotsResponse{
		Date:      view.Date,
		PartySize: view.PartySize,
		Slots:     view.Slots,
		Message:   view.Message,
	}
}
