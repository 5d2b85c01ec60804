package queries

import (
	"context"
	"time"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/domain/venue"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrVenueNotFound       = errs.New("venue not found")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrInvalidDate         = errs.New("date must be YYYY-MM-DD")
	ErrStoreFailure        = errs.New("store operation failed")
)

const dateLayout = "2006-01-02"

type AvailabilityParams struct {
	VenueSlug string
	PartySize int
	Start     time.Time
	// Duration zero means the configured default applies.
	Duration time.Duration
}

type SlotsParams struct {
	VenueSlug string
	PartySize int
	Date      string
}

type ReservationQueries interface {
	// CheckAvailability runs the window check, capacity search and best-fit
	// probe without committing anything.
	CheckAvailability(ctx context.Context, params AvailabilityParams) (*AvailabilityView, error)
	AvailableSlots(ctx context.Context, params SlotsParams) (*SlotsView, error)
	ListByVenueAndDate(ctx context.Context, venueSlug, date string) ([]*ReservationView, error)
	ByReference(ctx context.Context, venueSlug, reference string) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	venues          VenueReadStore
	catalog         CatalogReadStore
	ledger          LedgerReadStore
	clock           clock.Clock
	defaultDuration time.Duration
	slotInterval    time.Duration
}

func NewReservationQueries(
	venues VenueReadStore,
	catalog CatalogReadStore,
	ledger LedgerReadStore,
	clk clock.Clock,
	defaultDuration, slotInterval time.Duration,
) ReservationQueries {
	return &reservationQueriesImpl{
		venues:          venues,
		catalog:         catalog,
		ledger:          ledger,
		clock:           clk,
		defaultDuration: defaultDuration,
		slotInterval:    slotInterval,
	}
}

func (q *reservationQueriesImpl) CheckAvailability(ctx context.Context, params AvailabilityParams) (*AvailabilityView, error) {
	ven, window, err := q.venueWithWindow(ctx, params.VenueSlug)
	if err != nil {
		return nil, err
	}

	duration := params.Duration
	if duration <= 0 {
		duration = q.defaultDuration
	}
	ivl, err := reservation.NewInterval(params.Start, duration)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}

	if !window.Admits(ivl) {
		return &AvailabilityView{Available: false, Reason: "Outside operating hours"}, nil
	}

	candidates, err := q.catalog.Suitable(ctx, ven.ID, params.PartySize)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	for _, candidate := range candidates {
		windows, err := q.ledger.ActiveWindowsByTable(ctx, candidate.ID)
		if err != nil {
			return nil, errs.Mark(err, ErrStoreFailure)
		}
		if !anyWindowOverlap(windows, ivl) {
			return &AvailabilityView{Available: true, Table: candidate}, nil
		}
	}

	return &AvailabilityView{Available: false, Reason: "No tables free for this party size"}, nil
}

// AvailableSlots scans the operating day on a fixed grid and reports every
// start time where at least one suitable table is free for the default
// duration. For today the scan starts at the current time rounded up to
// the grid.
func (q *reservationQueriesImpl) AvailableSlots(ctx context.Context, params SlotsParams) (*SlotsView, error) {
	ven, window, err := q.venueWithWindow(ctx, params.VenueSlug)
	if err != nil {
		return nil, err
	}

	day, err := time.ParseInLocation(dateLayout, params.Date, time.UTC)
	if err != nil {
		return nil, ErrInvalidDate
	}

	opening := window.Open().At(day)
	closing := window.Close().At(day)

	searchStart := opening
	now := q.clock.Now()
	if sameDay(now, day) && now.After(searchStart) {
		searchStart = roundUp(now, q.slotInterval)
	}

	view := &SlotsView{Date: params.Date, PartySize: params.PartySize, Slots: []time.Time{}}

	if !searchStart.Before(closing) {
		view.Message = "Venue is closed for the day."
		return view, nil
	}

	candidates, err := q.catalog.Suitable(ctx, ven.ID, params.PartySize)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if len(candidates) == 0 {
		view.Message = "No tables available for this party size."
		return view, nil
	}

	// One fetch for the whole day, padded so bookings straddling the edges
	// are seen.
	const pad = 4 * time.Hour
	windows, err := q.ledger.ConfirmedWindowsByVenueBetween(ctx, ven.ID, opening.Add(-pad), closing.Add(pad))
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	byTable := make(map[uuid.UUID][]BookingWindow, len(candidates))
	for _, w := range windows {
		byTable[w.TableID] = append(byTable[w.TableID], w)
	}

	for current := searchStart; !current.Add(q.defaultDuration).After(closing); current = current.Add(q.slotInterval) {
		ivl, err := reservation.NewInterval(current, q.defaultDuration)
		if err != nil {
			return nil, errs.Mark(err, ErrStoreFailure)
		}
		for _, candidate := range candidates {
			if !anyWindowOverlap(byTable[candidate.ID], ivl) {
				view.Slots = append(view.Slots, current)
				break
			}
		}
	}

	return view, nil
}

func (q *reservationQueriesImpl) ListByVenueAndDate(ctx context.Context, venueSlug, date string) ([]*ReservationView, error) {
	ven, err := q.venueBySlug(ctx, venueSlug)
	if err != nil {
		return nil, err
	}

	day, err := time.ParseInLocation(dateLayout, date, time.UTC)
	if err != nil {
		return nil, ErrInvalidDate
	}

	views, err := q.ledger.ByVenueBetween(ctx, ven.ID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return views, nil
}

func (q *reservationQueriesImpl) ByReference(ctx context.Context, venueSlug, reference string) (*ReservationView, error) {
	ven, err := q.venueBySlug(ctx, venueSlug)
	if err != nil {
		return nil, err
	}

	view, err := q.ledger.ByReference(ctx, ven.ID, reference)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return view, nil
}

func (q *reservationQueriesImpl) venueBySlug(ctx context.Context, slug string) (*VenueView, error) {
	ven, err := q.venues.BySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return ven, nil
}

func (q *reservationQueriesImpl) venueWithWindow(ctx context.Context, slug string) (*VenueView, venue.OperatingWindow, error) {
	ven, err := q.venueBySlug(ctx, slug)
	if err != nil {
		return nil, venue.OperatingWindow{}, err
	}
	window, err := venue.ParseOperatingWindow(ven.OpeningTime, ven.ClosingTime)
	if err != nil {
		return nil, venue.OperatingWindow{}, errs.Mark(err, ErrStoreFailure)
	}
	return ven, window, nil
}

func anyWindowOverlap(windows []BookingWindow, ivl reservation.Interval) bool {
	for _, w := range windows {
		other, err := reservation.NewInterval(w.Start, w.Duration)
		if err != nil {
			continue
		}
		if other.Overlaps(ivl) {
			return true
		}
	}
	return false
}

func sameDay(t, day time.Time) bool {
	ty, tm, td := t.UTC().Date()
	dy, dm, dd := day.UTC().Date()
	return ty == dy && tm == dm && td == dd
}

func roundUp(t time.Time, interval time.Duration) time.Time {
	rounded := t.Truncate(interval)
	if rounded.Before(t) {
		rounded = rounded.Add(interval)
	}
	return rounded
}
