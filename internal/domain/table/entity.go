package table

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCapacity    = errors.New("table capacity must be positive")
	ErrInvalidTableNumber = errors.New("table number must be positive")
)

// Table is a bookable unit inside a venue. The number is unique per venue
// and gives the stable tie-break order for equal capacities.
type Table struct {
	id        uuid.UUID
	venueID   uuid.UUID
	number    int
	capacity  int
	createdAt time.Time
	updatedAt time.Time
}

func NewTable(venueID uuid.UUID, number, capacity int) (*Table, error) {
	if number < 1 {
		return nil, ErrInvalidTableNumber
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Table{
		id:       uuid.New(),
		venueID:  venueID,
		number:   number,
		capacity: capacity,
	}, nil
}

func ReconstructTable(id, venueID uuid.UUID, number, capacity int, createdAt, updatedAt time.Time) *Table {
	return &Table{
		id:        id,
		venueID:   venueID,
		number:    number,
		capacity:  capacity,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (t *Table) Fits(partySize int) bool {
	return t.capacity >= partySize
}

func (t *Table) ID() uuid.UUID        { return t.id }
func (t *Table) VenueID() uuid.UUID   { return t.venueID }
func (t *Table) Number() int          { return t.number }
func (t *Table) Capacity() int        { return t.capacity }
func (t *Table) CreatedAt() time.Time { return t.createdAt }
func (t *Table) UpdatedAt() time.Time { return t.updatedAt }
