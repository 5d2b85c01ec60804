package components

import (
	"time"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/config"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPeakPolicy,
)

func NewPeakPolicy(cfg config.Config) reservation.PeakPolicy {
	return reservation.NewPeakPolicy(
		cfg.Booking.PeakStartHour,
		cfg.Booking.PeakEndHour,
		time.Duration(cfg.Booking.PeakMaxDurationMin)*time.Minute,
	)
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewReservationCommands,
		commands.NewVenueCommands,
		commands.NewWaitlistCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewReservationQueries,
		queries.NewVenueQueries,
	),
)

func NewReservationCommands(
	cfg config.Config,
	venues commands.VenueReads,
	catalog commands.TableCatalog,
	ledger commands.ReservationLedger,
	references commands.ReferenceSource,
	notifier commands.Notifier,
	clk clock.Clock,
	peak reservation.PeakPolicy,
) commands.ReservationCommands {
	return commands.NewReservationCommands(
		venues, catalog, ledger, references, notifier, clk, peak,
		time.Duration(cfg.Booking.DefaultDurationMin)*time.Minute,
	)
}

func NewReservationQueries(
	cfg config.Config,
	venues queries.VenueReadStore,
	catalog queries.CatalogReadStore,
	ledger queries.LedgerReadStore,
	clk clock.Clock,
) queries.ReservationQueries {
	return queries.NewReservationQueries(
		venues, catalog, ledger, clk,
		time.Duration(cfg.Booking.DefaultDurationMin)*time.Minute,
		time.Duration(cfg.Booking.SlotIntervalMin)*time.Minute,
	)
}
