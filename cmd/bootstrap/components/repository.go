package components

import (
	"tablebook/internal/infra/db"
	"tablebook/internal/infra/notify"
	"tablebook/internal/infra/readstore"
	"tablebook/internal/infra/refgen"
	repo_impl "tablebook/internal/infra/repository"
	"tablebook/internal/infra/uow"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"
	"tablebook/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Write side
		fx.Annotate(
			repo_impl.NewVenueRepository,
			fx.As(new(commands.VenueReads)),
		),
		fx.Annotate(
			repo_impl.NewTableRepository,
			fx.As(new(commands.TableCatalog)),
		),
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(commands.ReservationLedger)),
			fx.As(new(refgen.ReferenceChecker)),
		),
		fx.Annotate(
			repo_impl.NewWaitlistRepository,
			fx.As(new(commands.WaitlistStore)),
		),
		fx.Annotate(
			refgen.NewGenerator,
			fx.As(new(commands.ReferenceSource)),
		),
		fx.Annotate(
			notify.NewLogNotifier,
			fx.As(new(commands.Notifier)),
		),
		// Read side
		fx.Annotate(
			readstore.NewVenueReadStore,
			fx.As(new(queries.VenueReadStore)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			readstore.NewLedgerReadStore,
			fx.As(new(queries.LedgerReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
