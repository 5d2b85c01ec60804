package commands

import (
	"context"
	"time"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/domain/venue"
	"tablebook/internal/domain/waitlist"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types
type VenueSnapshot struct {
	ID          uuid.UUID
	Slug        string
	Name        string
	Window      venue.OperatingWindow
	TotalTables int
}

type TableSnapshot struct {
	ID       uuid.UUID
	Number   int
	Capacity int
}

type BookingSnapshot struct {
	ID        uuid.UUID
	VenueID   uuid.UUID
	TableID   uuid.UUID
	Reference string
	GuestName string
	Phone     string
	PartySize int
	Start     time.Time
	Duration  time.Duration
	Status    reservation.Status
}

func (b BookingSnapshot) Interval() reservation.Interval {
	ivl, _ := reservation.NewInterval(b.Start, b.Duration)
	return ivl
}

type VenueReads interface {
	BySlug(ctx context.Context, slug string) (*VenueSnapshot, error)
}

// TableCatalog returns tables that can seat the party, smallest capacity
// first; ties are broken by ascending table number. An empty result is a
// valid outcome.
type TableCatalog interface {
	Suitable(ctx context.Context, venueID uuid.UUID, minCapacity int) ([]TableSnapshot, error)
}

// ReservationLedger is the durable set of bookings. Insert and Rebook are
// atomic: the store re-validates "no overlapping active booking on this
// table" at commit time and reports a lost race as KindConflict.
type ReservationLedger interface {
	Insert(ctx context.Context, res *reservation.Reservation) error
	Rebook(ctx context.Context, res *reservation.Reservation) error
	SetStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error
	ByReference(ctx context.Context, reference string) (*BookingSnapshot, error)
	ActiveByTable(ctx context.Context, tableID uuid.UUID, excludeID *uuid.UUID) ([]BookingSnapshot, error)
	ConfirmedByGuest(ctx context.Context, venueID uuid.UUID, phone string) ([]BookingSnapshot, error)
	ReferenceExists(ctx context.Context, reference string) (bool, error)
}

type WaitlistStore interface {
	Insert(ctx context.Context, entry *waitlist.Entry) error
}

// Notifier delivers the post-commit confirmation. Failures are logged by
// the caller, never propagated.
type Notifier interface {
	Send(ctx context.Context, channel, destination, message string) error
}

// ReferenceSource produces a booking code that is unique in the ledger at
// generation time.
type ReferenceSource interface {
	NewReference(ctx context.Context) (string, error)
}
