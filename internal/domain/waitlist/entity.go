package waitlist

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyGuestName   = errors.New("guest name cannot be empty")
	ErrEmptyPhone       = errors.New("phone cannot be empty")
	ErrInvalidPartySize = errors.New("party size must be positive")
)

// Entry records a guest's preference after a failed allocation. Entries are
// terminal for now; promotion on cancellation is an extension point and
// would consume entries in creation order.
type Entry struct {
	id        uuid.UUID
	venueID   uuid.UUID
	guestName string
	phone     string
	partySize int
	preferred time.Time
	createdAt time.Time
}

func NewEntry(venueID uuid.UUID, guestName, phone string, partySize int, preferred time.Time) (*Entry, error) {
	guestName = strings.TrimSpace(guestName)
	phone = strings.TrimSpace(phone)

	if guestName == "" {
		return nil, ErrEmptyGuestName
	}
	if phone == "" {
		return nil, ErrEmptyPhone
	}
	if partySize < 1 {
		return nil, ErrInvalidPartySize
	}

	return &Entry{
		id:        uuid.New(),
		venueID:   venueID,
		guestName: guestName,
		phone:     phone,
		partySize: partySize,
		preferred: preferred.UTC(),
	}, nil
}

func ReconstructEntry(id, venueID uuid.UUID, guestName, phone string, partySize int, preferred, createdAt time.Time) *Entry {
	return &Entry{
		id:        id,
		venueID:   venueID,
		guestName: guestName,
		phone:     phone,
		partySize: partySize,
		preferred: preferred,
		createdAt: createdAt,
	}
}

func (e *Entry) ID() uuid.UUID        { return e.id }
func (e *Entry) VenueID() uuid.UUID   { return e.venueID }
func (e *Entry) GuestName() string    { return e.guestName }
func (e *Entry) Phone() string        { return e.phone }
func (e *Entry) PartySize() int       { return e.partySize }
func (e *Entry) Preferred() time.Time { return e.preferred }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }
