package readstore

import (
	"context"

	"tablebook/internal/infra"
	"tablebook/internal/infra/db"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(pool db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: pool}
}

// Suitable returns the venue's tables that seat the party, smallest first.
func (r *CatalogReadStore) Suitable(ctx context.Context, venueID uuid.UUID, minCapacity int) ([]*queries.TableView, error) {
	const query = `
		SELECT id, table_number, capacity
		FROM tables
		WHERE venue_id = $1 AND capacity >= $2
		ORDER BY capacity ASC, table_number ASC`

	rows, err := r.db.Query(ctx, query, venueID, minCapacity)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list suitable tables", err)
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
