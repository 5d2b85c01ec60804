package request

import (
	"strings"

	"tablebook/internal/usecase/commands"
)

type TableSpec struct {
	Number   int `json:"number" binding:"required,min=1"`
	Capacity int `json:"capacity" binding:"required,min=1"`
}

type CreateVenueRequest struct {
	Name        string      `json:"name" binding:"required"`
	OpeningTime string      `json:"opening_time" binding:"required"`
	ClosingTime string      `json:"closing_time" binding:"required"`
	TotalTables int         `json:"total_tables" binding:"required,min=1"`
	Tables      []TableSpec `json:"tables,omitempty"`
}

func (r CreateVenueRequest) ToParams() commands.CreateVenueParams {
	return commands.CreateVenueParams{
		Name:        strings.TrimSpace(r.Name),
		OpeningTime: r.OpeningTime,
		ClosingTime: r.ClosingTime,
		TotalTables: r.TotalTables,
		Tables:      toSpecs(r.Tables),
	}
}

type AddTablesRequest struct {
	Tables []TableSpec `json:"tables" binding:"required,min=1,dive"`
}

func (r AddTablesRequest) ToSpecs() []commands.TableSpec {
	return toSpecs(r.Tables)
}

func toSpecs(tables []TableSpec) []commands.TableSpec {
	specs := make([]commands.TableSpec, 0, len(tables))
	for _, t := range tables {
		specs = append(specs, commands.TableSpec{Number: t.Number, Capacity: t.Capacity})
	}
	return specs
}
