package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID              uuid.UUID `json:"id"`
	Reference       string    `json:"reference"`
	VenueID         uuid.UUID `json:"venue_id"`
	TableID         uuid.UUID `json:"table_id"`
	TableNumber     int       `json:"table_number"`
	GuestName       string    `json:"guest_name"`
	Phone           string    `json:"phone"`
	PartySize       int       `json:"party_size"`
	Start           time.Time `json:"start"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type TableView struct {
	ID       uuid.UUID `json:"id"`
	Number   int       `json:"number"`
	Capacity int       `json:"capacity"`
}

type VenueView struct {
	ID          uuid.UUID    `json:"id"`
	Slug        string       `json:"slug"`
	Name        string       `json:"name"`
	OpeningTime string       `json:"opening_time"`
	ClosingTime string       `json:"closing_time"`
	TotalTables int          `json:"total_tables"`
	Tables      []*TableView `json:"tables,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

type AvailabilityView struct {
	Available bool       `json:"available"`
	Table     *TableView `json:"table,omitempty"`
	Reason    string     `json:"reason,omitempty"`
}

type SlotsView struct {
	Date      string      `json:"date"`
	PartySize int         `json:"party_size"`
	Slots     []time.Time `json:"slots"`
	Message   string      `json:"message,omitempty"`
}

// BookingWindow is the minimal slice of a booking the probe needs.
type BookingWindow struct {
	TableID  uuid.UUID
	Start    time.Time
	Duration time.Duration
}

type VenueReadStore interface {
	BySlug(ctx context.Context, slug string) (*VenueView, error)
	List(ctx context.Context, sortDesc bool, limit int) ([]*VenueView, error)
	TablesByVenue(ctx context.Context, venueID uuid.UUID) ([]*TableView, error)
}

type LedgerReadStore interface {
	ByReference(ctx context.Context, venueID uuid.UUID, reference string) (*ReservationView, error)
	ByVenueBetween(ctx context.Context, venueID uuid.UUID, from, to time.Time) ([]*ReservationView, error)
	ActiveWindowsByTable(ctx context.Context, tableID uuid.UUID) ([]BookingWindow, error)
	ConfirmedWindowsByVenueBetween(ctx context.Context, venueID uuid.UUID, from, to time.Time) ([]BookingWindow, error)
}

type CatalogReadStore interface {
	Suitable(ctx context.Context, venueID uuid.UUID, minCapacity int) ([]*TableView, error)
}
