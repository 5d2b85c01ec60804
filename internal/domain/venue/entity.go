package venue

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyVenueName     = errors.New("venue name cannot be empty")
	ErrVenueNameTooLong   = errors.New("venue name is too long (max 255 characters)")
	ErrEmptySlug          = errors.New("venue slug cannot be empty")
	ErrInvalidTotalTables = errors.New("total tables must be at least 1")
)

const MaxVenueNameLength = 255

type Venue struct {
	id          uuid.UUID
	slug        string
	name        string
	window      OperatingWindow
	totalTables int
	createdAt   time.Time
	updatedAt   time.Time
}

func NewVenue(slug, name string, window OperatingWindow, totalTables int) (*Venue, error) {
	name = strings.TrimSpace(name)
	slug = strings.TrimSpace(slug)

	if name == "" {
		return nil, ErrEmptyVenueName
	}
	if len(name) > MaxVenueNameLength {
		return nil, ErrVenueNameTooLong
	}
	if slug == "" {
		return nil, ErrEmptySlug
	}
	if totalTables < 1 {
		return nil, ErrInvalidTotalTables
	}

	return &Venue{
		id:          uuid.New(),
		slug:        slug,
		name:        name,
		window:      window,
		totalTables: totalTables,
	}, nil
}

func ReconstructVenue(
	id uuid.UUID,
	slug, name string,
	window OperatingWindow,
	totalTables int,
	createdAt, updatedAt time.Time,
) *Venue {
	return &Venue{
		id:          id,
		slug:        slug,
		name:        name,
		window:      window,
		totalTables: totalTables,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// CanAddTables reports whether appending n tables stays within the declared
// total.
func (v *Venue) CanAddTables(existing, n int) bool {
	return existing+n <= v.totalTables
}

func (v *Venue) ID() uuid.UUID           { return v.id }
func (v *Venue) Slug() string            { return v.slug }
func (v *Venue) Name() string            { return v.name }
func (v *Venue) Window() OperatingWindow { return v.window }
func (v *Venue) TotalTables() int        { return v.totalTables }
func (v *Venue) CreatedAt() time.Time    { return v.createdAt }
func (v *Venue) UpdatedAt() time.Time    { return v.updatedAt }
