package repository

import (
	"context"

	domvenue "tablebook/internal/domain/venue"
	"tablebook/internal/infra"
	"tablebook/internal/infra/db"
	"tablebook/internal/pkg/pgconv"
	"tablebook/internal/usecase/commands"

	"github.com/google/uuid"
)

type VenueRepository struct {
	db db.DBTX
}

func NewVenueRepository(pool db.DBTX) *VenueRepository {
	return &VenueRepository{db: pool}
}

func (r *VenueRepository) Create(ctx context.Context, dbtx db.DBTX, v *domvenue.Venue) (uuid.UUID, error) {
	const query = `
		INSERT INTO venues (id, slug, name, opening_time, closing_time, total_tables)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		v.ID(), v.Slug(), v.Name(),
		v.Window().Open().String(), v.Window().Close().String(),
		v.TotalTables(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classify("failed to create venue", err)
	}
	return id, nil
}

func (r *VenueRepository) CountTables(ctx context.Context, dbtx db.DBTX, venueID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM tables WHERE venue_id = $1`

	var count int
	if err := dbtx.QueryRow(ctx, query, venueID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count tables", err)
	}
	return count, nil
}

func (r *VenueRepository) BySlug(ctx context.Context, slug string) (*commands.VenueSnapshot, error) {
	const query = `
		SELECT id, slug, name, opening_time, closing_time, total_tables
		FROM venues
		WHERE slug = $1`

	var (
		snap             commands.VenueSnapshot
		opening, closing string
	)
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&snap.ID, &snap.Slug, &snap.Name, &opening, &closing, &snap.TotalTables,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find venue by slug", err)
	}

	window, err := domvenue.ParseOperatingWindow(opening, closing)
	if err != nil {
		return nil, infra.WrapRepoErr("stored operating window is invalid", err)
	}
	snap.Window = window

	return &snap, nil
}
