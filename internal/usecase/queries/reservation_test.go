//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablebook/internal/infra"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/queries"
)

type fakeVenueStore struct {
	venues map[string]*queries.VenueView
}

func (f *fakeVenueStore) BySlug(_ context.Context, slug string) (*queries.VenueView, error) {
	if v, ok := f.venues[slug]; ok {
		return v, nil
	}
	return nil, infra.WrapRepoErr("venue lookup failed", errs.New("no rows"), infra.KindNotFound)
}

func (f *fakeVenueStore) List(_ context.Context, _ bool, _ int) ([]*queries.VenueView, error) {
	out := make([]*queries.VenueView, 0, len(f.venues))
	for _, v := range f.venues {
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeVenueStore) TablesByVenue(_ context.Context, _ uuid.UUID) ([]*queries.TableView, error) {
	return nil, nil
}

type fakeCatalogStore struct {
	tables []*queries.TableView
}

func (f *fakeCatalogStore) Suitable(_ context.Context, _ uuid.UUID, minCapacity int) ([]*queries.TableView, error) {
	var out []*queries.TableView
	for _, t := range f.tables {
		if t.Capacity >= minCapacity {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeLedgerStore struct {
	windows map[uuid.UUID][]queries.BookingWindow
	views   []*queries.ReservationView
}

func (f *fakeLedgerStore) ByReference(_ context.Context, venueID uuid.UUID, reference string) (*queries.ReservationView, error) {
	for _, v := range f.views {
		if v.VenueID == venueID && v.Reference == reference {
			return v, nil
		}
	}
	return nil, infra.WrapRepoErr("reservation lookup failed", errs.New("no rows"), infra.KindNotFound)
}

func (f *fakeLedgerStore) ByVenueBetween(_ context.Context, venueID uuid.UUID, from, to time.Time) ([]*queries.ReservationView, error) {
	var out []*queries.ReservationView
	for _, v := range f.views {
		if v.VenueID == venueID && !v.Start.Before(from) && v.Start.Before(to) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeLedgerStore) ActiveWindowsByTable(_ context.Context, tableID uuid.UUID) ([]queries.BookingWindow, error) {
	return f.windows[tableID], nil
}

func (f *fakeLedgerStore) ConfirmedWindowsByVenueBetween(_ context.Context, _ uuid.UUID, from, to time.Time) ([]queries.BookingWindow, error) {
	var out []queries.BookingWindow
	for _, ws := range f.windows {
		for _, w := range ws {
			if w.Start.Before(to) && w.Start.Add(w.Duration).After(from) {
				out = append(out, w)
			}
		}
	}
	return out, nil
}

type queryFixture struct {
	queries queries.ReservationQueries
	venue   *queries.VenueView
	ledger  *fakeLedgerStore
	clock   *clock.MockClock
}

var queryNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func newQueryFixture(t *testing.T, tables []*queries.TableView) *queryFixture {
	t.Helper()

	ven := &queries.VenueView{
		ID:          uuid.New(),
		Slug:        "the-golden-fork",
		Name:        "The Golden Fork",
		OpeningTime: "10:00",
		ClosingTime: "22:00",
		TotalTables: len(tables),
	}
	ledger := &fakeLedgerStore{windows: make(map[uuid.UUID][]queries.BookingWindow)}
	clk := clock.NewMockClock(queryNow)

	q := queries.NewReservationQueries(
		&fakeVenueStore{venues: map[string]*queries.VenueView{ven.Slug: ven}},
		&fakeCatalogStore{tables: tables},
		ledger,
		clk,
		90*time.Minute,
		30*time.Minute,
	)
	return &queryFixture{queries: q, venue: ven, ledger: ledger, clock: clk}
}

func queryTables(capacities ...int) []*queries.TableView {
	tables := make([]*queries.TableView, 0, len(capacities))
	for i, c := range capacities {
		tables = append(tables, &queries.TableView{ID: uuid.New(), Number: i + 1, Capacity: c})
	}
	return tables
}

func TestCheckAvailability(t *testing.T) {
	start := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("free table found", func(t *testing.T) {
		tables := queryTables(2, 4)
		fx := newQueryFixture(t, tables)

		view, err := fx.queries.CheckAvailability(context.Background(), queries.AvailabilityParams{
			VenueSlug: "the-golden-fork",
			PartySize: 3,
			Start:     start,
		})
		require.NoError(t, err)
		assert.True(t, view.Available)
		require.NotNil(t, view.Table)
		assert.Equal(t, tables[1].ID, view.Table.ID)
	})

	t.Run("outside operating hours", func(t *testing.T) {
		fx := newQueryFixture(t, queryTables(4))

		view, err := fx.queries.CheckAvailability(context.Background(), queries.AvailabilityParams{
			VenueSlug: "the-golden-fork",
			PartySize: 2,
			Start:     time.Date(2026, 6, 1, 21, 30, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.False(t, view.Available)
		assert.Equal(t, "Outside operating hours", view.Reason)
	})

	t.Run("all tables taken", func(t *testing.T) {
		tables := queryTables(4)
		fx := newQueryFixture(t, tables)
		fx.ledger.windows[tables[0].ID] = []queries.BookingWindow{
			{TableID: tables[0].ID, Start: start.Add(-30 * time.Minute), Duration: 2 * time.Hour},
		}

		view, err := fx.queries.CheckAvailability(context.Background(), queries.AvailabilityParams{
			VenueSlug: "the-golden-fork",
			PartySize: 2,
			Start:     start,
		})
		require.NoError(t, err)
		assert.False(t, view.Available)
		assert.Equal(t, "No tables free for this party size", view.Reason)
	})

	t.Run("party larger than any table", func(t *testing.T) {
		fx := newQueryFixture(t, queryTables(2, 4))

		view, err := fx.queries.CheckAvailability(context.Background(), queries.AvailabilityParams{
			VenueSlug: "the-golden-fork",
			PartySize: 9,
			Start:     start,
		})
		require.NoError(t, err)
		assert.False(t, view.Available)
	})

	t.Run("unknown venue", func(t *testing.T) {
		fx := newQueryFixture(t, queryTables(4))
		_, err := fx.queries.CheckAvailability(context.Background(), queries.AvailabilityParams{
			VenueSlug: "nowhere",
			PartySize: 2,
			Start:     start,
		})
		assert.ErrorIs(t, err, queries.ErrVenueNotFound)
	})
}

func TestAvailableSlots(t *testing.T) {
	t.Run("full grid on an empty day", func(t *testing.T) {
		fx := newQueryFixture(t, queryTables(4))

		view, err := fx.queries.AvailableSlots(context.Background(), queries.SlotsParams{
			VenueSlug: "the-golden-fork",
			PartySize: 2,
			Date:      "2026-06-02",
		})
		require.NoError(t, err)

		// 10:00 through 20:30 on the half-hour grid: the default 90 minutes
		// must still end by closing.
		expected := make([]time.Time, 0, 22)
		for cur := time.Date(2026, 6, 2, 10, 0, 0, 0, time.UTC); !cur.After(time.Date(2026, 6, 2, 20, 30, 0, 0, time.UTC)); cur = cur.Add(30 * time.Minute) {
			expected = append(expected, cur)
		}
		assert.Empty(t, cmp.Diff(expected, view.Slots))
	})

	t.Run("booked table blocks only overlapping starts", func(t *testing.T) {
		tables := queryTables(4)
		fx := newQueryFixture(t, tables)
		fx.ledger.windows[tables[0].ID] = []queries.BookingWindow{
			{TableID: tables[0].ID, Start: time.Date(2026, 6, 2, 12, 0, 0, 0, time.UTC), Duration: 90 * time.Minute},
		}

		view, err := fx.queries.AvailableSlots(context.Background(), queries.SlotsParams{
			VenueSlug: "the-golden-fork",
			PartySize: 2,
			Date:      "2026-06-02",
		})
		require.NoError(t, err)

		blocked := map[string]bool{"11:00": true, "11:30": true, "12:00": true, "12:30": true, "13:00": true}
		for _, slot := range view.Slots {
			assert.False(t, blocked[slot.Format("15:04")], "slot %s should be blocked", slot.Format("15:04"))
		}
		// Back-to-back boundaries stay open on both sides.
		assert.Contains(t, view.Slots, time.Date(2026, 6, 2, 10, 30, 0, 0, time.UTC))
		assert.Contains(t, view.Slots, time.Date(2026, 6, 2, 13, 30, 0, 0, time.UTC))
		assert.Len(t, view.Slots, 17)
	})

	t.Run("second table keeps the grid open", func(t *testing.T) {
		tables := queryTables(4, 4)
		fx := newQueryFixture(t, tables)
		fx.ledger.windows[tables[0].ID] = []queries.BookingWindow{
			{TableID: tables[0].ID, Start: time.Date(2026, 6, 2, 12, 0, 0, 0, time.UTC), Duration: 90 * time.Minute},
		}

		view, err := fx.queries.AvailableSlots(context.Background(), queries.SlotsParams{
			VenueSlug: "the-golden-fork",
			PartySize: 2,
			Date:      "2026-06-02",
		})
		require.NoError(t, err)
		assert.Len(t, view.Slots, 22)
	})

	t.Run("today starts at the current time rounded up", func(t *testing.T) {
		fx := newQueryFixture(t, queryTables(4))
		fx.clock.Set(time.Date(2026, 6, 1, 15, 10, 0, 0, time.UTC))

		view, err := fx.queries.AvailableSlots(context.Background(), queries.SlotsParams{
			VenueSlug: "the-golden-fork",
			PartySize: 2,
			Date:      "2026-06-01",
		})
		require.NoError(t, err)
		require.NotEmpty(t, view.Slots)
		assert.Equal(t, time.Date(2026, 6, 1, 15, 30, 0, 0, time.UTC), view.Slots[0])
	})

	t.Run("closed for the day", func(t *testing.T) {
		fx := newQueryFixture(t, queryTables(4))
		fx.clock.Set(time.Date(2026, 6, 1, 22, 30, 0, 0, time.UTC))

		view, err := fx.queries.AvailableSlots(context.Background(), queries.SlotsParams{
			VenueSlug: "the-golden-fork",
			PartySize: 2,
			Date:      "2026-06-01",
		})
		require.NoError(t, err)
		assert.Empty(t, view.Slots)
		assert.Equal(t, "Venue is closed for the day.", view.Message)
	})

	t.Run("no table fits the party", func(t *testing.T) {
		fx := newQueryFixture(t, queryTables(2))

		view, err := fx.queries.AvailableSlots(context.Background(), queries.SlotsParams{
			VenueSlug: "the-golden-fork",
			PartySize: 6,
			Date:      "2026-06-02",
		})
		require.NoError(t, err)
		assert.Empty(t, view.Slots)
		assert.Equal(t, "No tables available for this party size.", view.Message)
	})

	t.Run("malformed date", func(t *testing.T) {
		fx := newQueryFixture(t, queryTables(4))
		_, err := fx.queries.AvailableSlots(context.Background(), queries.SlotsParams{
			VenueSlug: "the-golden-fork",
			PartySize: 2,
			Date:      "June 2nd",
		})
		assert.ErrorIs(t, err, queries.ErrInvalidDate)
	})
}

func TestListByVenueAndDate(t *testing.T) {
	fx := newQueryFixture(t, queryTables(4))
	fx.ledger.views = []*queries.ReservationView{
		{ID: uuid.New(), VenueID: fx.venue.ID, Reference: "RES-AAAAAA", Start: time.Date(2026, 6, 2, 12, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), VenueID: fx.venue.ID, Reference: "RES-BBBBBB", Start: time.Date(2026, 6, 2, 18, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), VenueID: fx.venue.ID, Reference: "RES-CCCCCC", Start: time.Date(2026, 6, 3, 12, 0, 0, 0, time.UTC)},
	}

	views, err := fx.queries.ListByVenueAndDate(context.Background(), "the-golden-fork", "2026-06-02")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "RES-AAAAAA", views[0].Reference)

	_, err = fx.queries.ListByVenueAndDate(context.Background(), "the-golden-fork", "02/06/2026")
	assert.ErrorIs(t, err, queries.ErrInvalidDate)
}

func TestByReference(t *testing.T) {
	fx := newQueryFixture(t, queryTables(4))
	fx.ledger.views = []*queries.ReservationView{
		{ID: uuid.New(), VenueID: fx.venue.ID, Reference: "RES-AAAAAA"},
	}

	view, err := fx.queries.ByReference(context.Background(), "the-golden-fork", "RES-AAAAAA")
	require.NoError(t, err)
	assert.Equal(t, "RES-AAAAAA", view.Reference)

	_, err = fx.queries.ByReference(context.Background(), "the-golden-fork", "RES-ZZZZZZ")
	assert.ErrorIs(t, err, queries.ErrReservationNotFound)
}
