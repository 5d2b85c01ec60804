//go:build unit || e2e

package builder

import (
	"time"

	domres "tablebook/internal/domain/reservation"
	reqdto "tablebook/internal/handler/dto/request"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	VenueID   uuid.UUID
	TableID   uuid.UUID
	Reference string
	GuestName string
	Phone     string
	PartySize int
	Start     time.Time
	Duration  time.Duration
	Status    domres.Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &ReservationBuilder{
		VenueID:   uuid.New(),
		TableID:   uuid.New(),
		Reference: "RES-ABC234",
		GuestName: "Alice Smith",
		Phone:     "+15551234567",
		PartySize: 2,
		Start:     now.Add(24 * time.Hour),
		Duration:  90 * time.Minute,
		Status:    domres.StatusConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *ReservationBuilder) WithStart(start time.Time) *ReservationBuilder {
	b.Start = start
	return b
}

func (b *ReservationBuilder) WithDuration(d time.Duration) *ReservationBuilder {
	b.Duration = d
	return b
}

func (b *ReservationBuilder) WithPartySize(size int) *ReservationBuilder {
	b.PartySize = size
	return b
}

func (b *ReservationBuilder) WithStatus(status domres.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithGuestName(name string) *ReservationBuilder {
	b.GuestName = name
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() (*domres.Reservation, error) {
	ivl, err := domres.NewInterval(b.Start, b.Duration)
	if err != nil {
		return nil, err
	}
	return domres.NewReservation(b.VenueID, b.TableID, b.Reference, b.GuestName, b.Phone, b.PartySize, ivl)
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	durationMin := int(b.Duration.Minutes())
	return reqdto.CreateReservationRequest{
		GuestName:   b.GuestName,
		Phone:       b.Phone,
		PartySize:   b.PartySize,
		Start:       b.Start,
		DurationMin: &durationMin,
	}
}

func (b *ReservationBuilder) BuildSnapshot() *commands.BookingSnapshot {
	return &commands.BookingSnapshot{
		ID:        uuid.New(),
		VenueID:   b.VenueID,
		TableID:   b.TableID,
		Reference: b.Reference,
		GuestName: b.GuestName,
		Phone:     b.Phone,
		PartySize: b.PartySize,
		Start:     b.Start,
		Duration:  b.Duration,
		Status:    b.Status,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:              uuid.New(),
		Reference:       b.Reference,
		VenueID:         b.VenueID,
		TableID:         b.TableID,
		TableNumber:     1,
		GuestName:       b.GuestName,
		Phone:           b.Phone,
		PartySize:       b.PartySize,
		Start:           b.Start,
		DurationMinutes: int(b.Duration.Minutes()),
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
