package reservation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyGuestName     = errors.New("guest name cannot be empty")
	ErrEmptyPhone         = errors.New("phone cannot be empty")
	ErrInvalidPartySize   = errors.New("party size must be positive")
	ErrAlreadyCancelled   = errors.New("reservation is already cancelled")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrGuestNameTooLong   = errors.New("guest name is too long (max 255 characters)")
)

const MaxGuestNameLength = 255

// Reservation is a booking of exactly one table for one interval. After
// creation the only mutations are status transitions and the rebooking
// performed by modify, which may move the reservation to another table.
type Reservation struct {
	id        uuid.UUID
	venueID   uuid.UUID
	tableID   uuid.UUID
	reference string
	guestName string
	phone     string
	partySize int
	interval  Interval
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewReservation(
	venueID, tableID uuid.UUID,
	reference, guestName, phone string,
	partySize int,
	interval Interval,
) (*Reservation, error) {
	guestName = strings.TrimSpace(guestName)
	phone = strings.TrimSpace(phone)

	if guestName == "" {
		return nil, ErrEmptyGuestName
	}
	if len(guestName) > MaxGuestNameLength {
		return nil, ErrGuestNameTooLong
	}
	if phone == "" {
		return nil, ErrEmptyPhone
	}
	if partySize < 1 {
		return nil, ErrInvalidPartySize
	}
	if interval.IsZero() {
		return nil, ErrNonPositiveDuration
	}
	if err := ValidateReference(reference); err != nil {
		return nil, err
	}

	return &Reservation{
		id:        uuid.New(),
		venueID:   venueID,
		tableID:   tableID,
		reference: reference,
		guestName: guestName,
		phone:     phone,
		partySize: partySize,
		interval:  interval,
		status:    StatusConfirmed,
	}, nil
}

func ReconstructReservation(
	id, venueID, tableID uuid.UUID,
	reference, guestName, phone string,
	partySize int,
	interval Interval,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		venueID:   venueID,
		tableID:   tableID,
		reference: reference,
		guestName: guestName,
		phone:     phone,
		partySize: partySize,
		interval:  interval,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Cancel is idempotent: cancelling a cancelled reservation is a no-op.
func (r *Reservation) Cancel() {
	r.status = StatusCancelled
}

func (r *Reservation) CanModify() bool {
	return r.status != StatusCancelled
}

// Rebook applies a modification: new interval, party size, and possibly a
// different table. Fails if the reservation is cancelled.
func (r *Reservation) Rebook(tableID uuid.UUID, interval Interval, partySize int) error {
	if !r.CanModify() {
		return ErrAlreadyCancelled
	}
	if partySize < 1 {
		return ErrInvalidPartySize
	}
	if interval.IsZero() {
		return ErrNonPositiveDuration
	}
	r.tableID = tableID
	r.interval = interval
	r.partySize = partySize
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status.Blocking()
}

func (r *Reservation) ID() uuid.UUID      { return r.id }
func (r *Reservation) VenueID() uuid.UUID { return r.venueID }
func (r *Reservation) TableID() uuid.UUID { return r.tableID }
func (r *Reservation) Reference() string  { return r.reference }
func (r *Reservation) GuestName() string  { return r.guestName }
func (r *Reservation) Phone() string      { return r.phone }
func (r *Reservation) PartySize() int     { return r.partySize }
func (r *Reservation) Interval() Interval { return r.interval }
func (r *Reservation) Status() Status     { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
