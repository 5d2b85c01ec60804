package shared

import (
	"context"

	"tablebook/internal/domain/table"
	"tablebook/internal/domain/venue"
	"tablebook/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork scopes multi-statement writes. Venue setup creates the venue
// and its tables as one atomic unit; any step failing rolls back the whole
// thing.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Venues() VenueRepository
	Tables() TableRepository
	DB() db.DBTX
}

type VenueRepository interface {
	Create(ctx context.Context, db db.DBTX, v *venue.Venue) (uuid.UUID, error)
	CountTables(ctx context.Context, db db.DBTX, venueID uuid.UUID) (int, error)
}

type TableRepository interface {
	BulkCreate(ctx context.Context, db db.DBTX, tables []*table.Table) error
}
