package commands

import (
	"context"
	"time"

	"tablebook/internal/domain/table"
	domvenue "tablebook/internal/domain/venue"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/shared"

	"github.com/gosimple/slug"
)

var (
	ErrVenueAlreadyExists   = errs.New("venue already exists")
	ErrInvalidWindow        = errs.New("invalid operating window")
	ErrTableLimitExceeded   = errs.New("table count would exceed the declared total")
	ErrDuplicateTableNumber = errs.New("table number already in use")
)

type TableSpec struct {
	Number   int
	Capacity int
}

type CreateVenueParams struct {
	Name        string
	OpeningTime string
	ClosingTime string
	TotalTables int
	// Tables may pre-declare explicit capacities; when empty the venue is
	// seeded with alternating 2- and 4-seat tables up to TotalTables.
	Tables []TableSpec
}

type VenueCommands interface {
	CreateVenue(ctx context.Context, params CreateVenueParams) (*VenueSnapshot, error)
	AddTables(ctx context.Context, venueSlug string, specs []TableSpec) error
}

type venueCommandsImpl struct {
	uow    shared.UnitOfWork
	venues VenueReads
}

func NewVenueCommands(uow shared.UnitOfWork, venues VenueReads) VenueCommands {
	return &venueCommandsImpl{uow: uow, venues: venues}
}

// CreateVenue writes the venue and its initial tables as one atomic unit;
// a failure on any table rolls back the venue as well.
func (v *venueCommandsImpl) CreateVenue(ctx context.Context, params CreateVenueParams) (*VenueSnapshot, error) {
	window, err := domvenue.ParseOperatingWindow(params.OpeningTime, params.ClosingTime)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidWindow)
	}

	ven, err := domvenue.NewVenue(slug.Make(params.Name), params.Name, window, params.TotalTables)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	tables, err := buildTables(ven, params)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Venues().Create(ctx, tx.DB(), ven); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrVenueAlreadyExists
			}
			return errs.Mark(err, ErrStoreFailure)
		}
		if err := tx.Tables().BulkCreate(ctx, tx.DB(), tables); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &VenueSnapshot{
		ID:          ven.ID(),
		Slug:        ven.Slug(),
		Name:        ven.Name(),
		Window:      ven.Window(),
		TotalTables: ven.TotalTables(),
	}, nil
}

// AddTables appends tables to an existing venue, bounded by its declared
// total. The count check and insert share a transaction.
func (v *venueCommandsImpl) AddTables(ctx context.Context, venueSlug string, specs []TableSpec) error {
	snap, err := v.venues.BySlug(ctx, venueSlug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrVenueNotFound
		}
		return errs.Mark(err, ErrStoreFailure)
	}

	ven := domvenue.ReconstructVenue(
		snap.ID, snap.Slug, snap.Name, snap.Window, snap.TotalTables,
		time.Time{}, time.Time{},
	)

	tables := make([]*table.Table, 0, len(specs))
	for _, spec := range specs {
		t, err := table.NewTable(snap.ID, spec.Number, spec.Capacity)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		tables = append(tables, t)
	}

	return v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Venues().CountTables(ctx, tx.DB(), snap.ID)
		if err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		if !ven.CanAddTables(existing, len(tables)) {
			return ErrTableLimitExceeded
		}
		if err := tx.Tables().BulkCreate(ctx, tx.DB(), tables); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateTableNumber
			}
			return errs.Mark(err, ErrStoreFailure)
		}
		return nil
	})
}

func buildTables(ven *domvenue.Venue, params CreateVenueParams) ([]*table.Table, error) {
	specs := params.Tables
	if len(specs) == 0 {
		specs = make([]TableSpec, params.TotalTables)
		for i := range specs {
			capacity := 2
			if i%2 == 1 {
				capacity = 4
			}
			specs[i] = TableSpec{Number: i + 1, Capacity: capacity}
		}
	}
	if len(specs) > ven.TotalTables() {
		return nil, domvenue.ErrInvalidTotalTables
	}

	tables := make([]*table.Table, 0, len(specs))
	for _, spec := range specs {
		t, err := table.NewTable(ven.ID(), spec.Number, spec.Capacity)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}
