package readstore

import (
	"context"
	"fmt"

	"tablebook/internal/infra"
	"tablebook/internal/infra/db"
	"tablebook/internal/pkg/pgconv"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type VenueReadStore struct {
	db db.DBTX
}

func NewVenueReadStore(pool db.DBTX) *VenueReadStore {
	return &VenueReadStore{db: pool}
}

func (r *VenueReadStore) BySlug(ctx context.Context, slug string) (*queries.VenueView, error) {
	const query = `
		SELECT id, slug, name, opening_time, closing_time, total_tables, created_at
		FROM venues
		WHERE slug = $1`

	view, err := scanVenue(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find venue by slug", err)
	}
	return view, nil
}

func (r *VenueReadStore) List(ctx context.Context, sortDesc bool, limit int) ([]*queries.VenueView, error) {
	direction := "ASC"
	if sortDesc {
		direction = "DESC"
	}
	query := fmt.Sprintf(`
		SELECT id, slug, name, opening_time, closing_time, total_tables, created_at
		FROM venues
		ORDER BY created_at %s`, direction)

	args := []any{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list venues", err)
	}
	defer rows.Close()

	var result []*queries.VenueView
	for rows.Next() {
		view, err := scanVenue(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan venue row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate venue rows", err)
	}
	return result, nil
}

func (r *VenueReadStore) TablesByVenue(ctx context.Context, venueID uuid.UUID) ([]*queries.TableView, error) {
	const query = `
		SELECT id, table_number, capacity
		FROM tables
		WHERE venue_id = $1
		ORDER BY table_number ASC`

	rows, err := r.db.Query(ctx, query, venueID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list venue tables", err)
	}
	defer rows.Close()

	var result []*queries.TableView
	for rows.Next() {
		var view queries.TableView
		if err := rows.Scan(&view.ID, &view.Number, &view.Capacity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan table row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate table rows", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVenue(row rowScanner) (*queries.VenueView, error) {
	var view queries.VenueView
	err := row.Scan(
		&view.ID, &view.Slug, &view.Name,
		&view.OpeningTime, &view.ClosingTime, &view.TotalTables, &view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
