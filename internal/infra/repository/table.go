package repository

import (
	"context"

	"tablebook/internal/domain/table"
	"tablebook/internal/infra"
	"tablebook/internal/infra/db"
	"tablebook/internal/usecase/commands"

	"github.com/google/uuid"
)

type TableRepository struct {
	db db.DBTX
}

func NewTableRepository(pool db.DBTX) *TableRepository {
	return &TableRepository{db: pool}
}

func (r *TableRepository) BulkCreate(ctx context.Context, dbtx db.DBTX, tables []*table.Table) error {
	const query = `
		INSERT INTO tables (id, venue_id, table_number, capacity)
		VALUES ($1, $2, $3, $4)`

	for _, t := range tables {
		if _, err := dbtx.Exec(ctx, query, t.ID(), t.VenueID(), t.Number(), t.Capacity()); err != nil {
			return classify("failed to create table", err)
		}
	}
	return nil
}

// Suitable returns the best-fit candidate order: smallest adequate capacity
// first, table number as the stable tie-break.
func (r *TableRepository) Suitable(ctx context.Context, venueID uuid.UUID, minCapacity int) ([]commands.TableSnapshot, error) {
	const query = `
		SELECT id, table_number, capacity
		FROM tables
		WHERE venue_id = $1 AND capacity >= $2
		ORDER BY capacity ASC, table_number ASC`

	rows, err := r.db.Query(ctx, query, venueID, minCapacity)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find suitable tables", err)
	}
	defer rows.Close()

	var result []commands.TableSnapshot
	for rows.Next() {
		var snap commands.TableSnapshot
		if err := rows.Scan(&snap.ID, &snap.Number, &snap.Capacity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan table row", err)
		}
		result = append(result, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate table rows", err)
	}
	return result, nil
}
