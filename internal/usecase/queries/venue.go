package queries

import (
	"context"
	"strings"

	"tablebook/internal/infra"
	"tablebook/internal/pkg/errs"
)

type VenueQueries interface {
	BySlug(ctx context.Context, slug string, includeTables bool) (*VenueView, error)
	List(ctx context.Context, sortDir string, limit int) ([]*VenueView, error)
}

type venueQueriesImpl struct {
	venues VenueReadStore
}

func NewVenueQueries(venues VenueReadStore) VenueQueries {
	return &venueQueriesImpl{venues: venues}
}

func (q *venueQueriesImpl) BySlug(ctx context.Context, slug string, includeTables bool) (*VenueView, error) {
	ven, err := q.venues.BySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	if includeTables {
		tables, err := q.venues.TablesByVenue(ctx, ven.ID)
		if err != nil {
			return nil, errs.Mark(err, ErrStoreFailure)
		}
		ven.Tables = tables
	}

	return ven, nil
}

func (q *venueQueriesImpl) List(ctx context.Context, sortDir string, limit int) ([]*VenueView, error) {
	sortDesc := !strings.EqualFold(sortDir, "asc")

	views, err := q.venues.List(ctx, sortDesc, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return views, nil
}
