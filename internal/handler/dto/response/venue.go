package response

import (
	"time"

	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type VenueResponse struct {
	ID          uuid.UUID        `json:"id"`
	Slug        string           `json:"slug"`
	Name        string           `json:"name"`
	OpeningTime string           `json:"openingTime"`
	ClosingTime string           `json:"closingTime"`
	TotalTables int              `json:"totalTables"`
	Tables      []*TableResponse `json:"tables,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type TableResponse struct {
	ID       uuid.UUID `json:"id"`
	Number   int       `json:"number"`
	Capacity int       `json:"capacity"`
}

func FromVenueSnapshot(snap *commands.VenueSnapshot) *VenueResponse {
	return &VenueResponse{
		ID:          snap.ID,
		Slug:        snap.Slug,
		Name:        snap.Name,
		OpeningTime: snap.Window.Open().String(),
		ClosingTime: snap.Window.Close().String(),
		TotalTables: snap.TotalTables,
	}
}

func FromVenueView(rm *queries.VenueView) *VenueResponse {
	resp := &VenueResponse{
		ID:          rm.ID,
		Slug:        rm.Slug,
		Name:        rm.Name,
		OpeningTime: rm.OpeningTime,
		ClosingTime: rm.ClosingTime,
		TotalTables: rm.TotalTables,
		CreatedAt:   rm.CreatedAt,
	}
	for _, t := range rm.Tables {
		resp.Tables = append(resp.Tables, FromTableView(t))
	}
	return resp
}

func FromTableView(rm *queries.TableView) *TableResponse {
	return &TableResponse{
		ID:       rm.ID,
		Number:   rm.Number,
		Capacity: rm.Capacity,
	}
}
