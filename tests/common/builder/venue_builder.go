//go:build unit || e2e

package builder

import (
	"time"

	domvenue "tablebook/internal/domain/venue"
	reqdto "tablebook/internal/handler/dto/request"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type VenueBuilder struct {
	Name        string
	OpeningTime string
	ClosingTime string
	TotalTables int
	CreatedAt   time.Time
}

func NewVenueBuilder() *VenueBuilder {
	return &VenueBuilder{
		Name:        "The Golden Fork",
		OpeningTime: "10:00",
		ClosingTime: "22:00",
		TotalTables: 10,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

func (b *VenueBuilder) WithName(name string) *VenueBuilder {
	b.Name = name
	return b
}

func (b *VenueBuilder) WithWindow(opening, closing string) *VenueBuilder {
	b.OpeningTime = opening
	b.ClosingTime = closing
	return b
}

func (b *VenueBuilder) WithTotalTables(n int) *VenueBuilder {
	b.TotalTables = n
	return b
}

func (b *VenueBuilder) Slug() string {
	return slug.Make(b.Name)
}

// Build methods
func (b *VenueBuilder) BuildDomain() (*domvenue.Venue, error) {
	window, err := domvenue.ParseOperatingWindow(b.OpeningTime, b.ClosingTime)
	if err != nil {
		return nil, err
	}
	return domvenue.NewVenue(b.Slug(), b.Name, window, b.TotalTables)
}

func (b *VenueBuilder) BuildCreateRequestDTO() reqdto.CreateVenueRequest {
	return reqdto.CreateVenueRequest{
		Name:        b.Name,
		OpeningTime: b.OpeningTime,
		ClosingTime: b.ClosingTime,
		TotalTables: b.TotalTables,
	}
}

func (b *VenueBuilder) BuildSnapshot() *commands.VenueSnapshot {
	window, _ := domvenue.ParseOperatingWindow(b.OpeningTime, b.ClosingTime)
	return &commands.VenueSnapshot{
		ID:          uuid.New(),
		Slug:        b.Slug(),
		Name:        b.Name,
		Window:      window,
		TotalTables: b.TotalTables,
	}
}

func (b *VenueBuilder) BuildView() *queries.VenueView {
	return &queries.VenueView{
		ID:          uuid.New(),
		Slug:        b.Slug(),
		Name:        b.Name,
		OpeningTime: b.OpeningTime,
		ClosingTime: b.ClosingTime,
		TotalTables: b.TotalTables,
		CreatedAt:   b.CreatedAt,
	}
}
