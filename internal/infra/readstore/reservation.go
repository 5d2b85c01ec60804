package readstore

import (
	"context"
	"time"

	"tablebook/internal/infra"
	"tablebook/internal/infra/db"
	"tablebook/internal/pkg/pgconv"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type LedgerReadStore struct {
	db db.DBTX
}

func NewLedgerReadStore(pool db.DBTX) *LedgerReadStore {
	return &LedgerReadStore{db: pool}
}

const reservationColumns = `
	r.id, r.reference, r.venue_id, r.table_id, t.table_number,
	r.guest_name, r.phone, r.party_size,
	lower(r.slot), upper(r.slot), r.status, r.created_at, r.updated_at`

func (r *LedgerReadStore) ByReference(ctx context.Context, venueID uuid.UUID, reference string) (*queries.ReservationView, error) {
	query := `
		SELECT` + reservationColumns + `
		FROM reservations r
		JOIN tables t ON t.id = r.table_id
		WHERE r.venue_id = $1 AND r.reference = $2`

	view, err := scanReservation(r.db.QueryRow(ctx, query, venueID, reference))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by reference", err)
	}
	return view, nil
}

func (r *LedgerReadStore) ByVenueBetween(ctx context.Context, venueID uuid.UUID, from, to time.Time) ([]*queries.ReservationView, error) {
	query := `
		SELECT` + reservationColumns + `
		FROM reservations r
		JOIN tables t ON t.id = r.table_id
		WHERE r.venue_id = $1 AND lower(r.slot) >= $2 AND lower(r.slot) < $3
		ORDER BY lower(r.slot) ASC`

	rows, err := r.db.Query(ctx, query, venueID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by venue", err)
	}
	defer rows.Close()

	var result []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return result, nil
}

func (r *LedgerReadStore) ActiveWindowsByTable(ctx context.Context, tableID uuid.UUID) ([]queries.BookingWindow, error) {
	const query = `
		SELECT table_id, lower(slot), upper(slot)
		FROM reservations
		WHERE table_id = $1 AND status <> 'cancelled'`

	return r.queryWindows(ctx, "failed to load table booking windows", query, tableID)
}

func (r *LedgerReadStore) ConfirmedWindowsByVenueBetween(ctx context.Context, venueID uuid.UUID, from, to time.Time) ([]queries.BookingWindow, error) {
	const query = `
		SELECT table_id, lower(slot), upper(slot)
		FROM reservations
		WHERE venue_id = $1 AND status = 'confirmed'
		  AND slot && tstzrange($2, $3, '[)')`

	return r.queryWindows(ctx, "failed to load venue booking windows", query, venueID, from, to)
}

func (r *LedgerReadStore) queryWindows(ctx context.Context, msg, query string, args ...any) ([]queries.BookingWindow, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	defer rows.Close()

	var result []queries.BookingWindow
	for rows.Next() {
		var (
			w          queries.BookingWindow
			start, end time.Time
		)
		if err := rows.Scan(&w.TableID, &start, &end); err != nil {
			return nil, infra.WrapRepoErr(msg, err)
		}
		w.Start = start
		w.Duration = end.Sub(start)
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	return result, nil
}

func scanReservation(row rowScanner) (*queries.ReservationView, error) {
	var (
		view       queries.ReservationView
		start, end time.Time
	)
	err := row.Scan(
		&view.ID, &view.Reference, &view.VenueID, &view.TableID, &view.TableNumber,
		&view.GuestName, &view.Phone, &view.PartySize,
		&start, &end, &view.Status, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.Start = start
	view.DurationMinutes = int(end.Sub(start).Minutes())
	return &view, nil
}
