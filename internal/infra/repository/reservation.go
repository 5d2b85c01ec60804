package repository

import (
	"context"
	"time"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"
	"tablebook/internal/infra/db"
	"tablebook/internal/pkg/pgconv"
	"tablebook/internal/usecase/commands"

	"github.com/google/uuid"
)

// ReservationRepository is the durable ledger. The schema's exclusion
// constraint re-validates every insert and rebook, so a probe that went
// stale between read and write surfaces as KindConflict here.
type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(pool db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: pool}
}

func (r *ReservationRepository) Insert(ctx context.Context, res *reservation.Reservation) error {
	const query = `
		INSERT INTO reservations
			(id, venue_id, table_id, reference, guest_name, phone, party_size, slot, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	ivl := res.Interval()
	_, err := r.db.Exec(ctx, query,
		res.ID(), res.VenueID(), res.TableID(),
		res.Reference(), res.GuestName(), res.Phone(), res.PartySize(),
		pgconv.RangeToPgtype(ivl.Start(), ivl.End()),
		res.Status().String(),
	)
	if err != nil {
		return classify("failed to insert reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Rebook(ctx context.Context, res *reservation.Reservation) error {
	const query = `
		UPDATE reservations
		SET table_id = $2, slot = $3, party_size = $4, updated_at = now()
		WHERE id = $1`

	ivl := res.Interval()
	tag, err := r.db.Exec(ctx, query,
		res.ID(), res.TableID(),
		pgconv.RangeToPgtype(ivl.Start(), ivl.End()),
		res.PartySize(),
	)
	if err != nil {
		return classify("failed to rebook reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) SetStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error {
	const query = `
		UPDATE reservations
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status.String())
	if err != nil {
		return classify("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) ByReference(ctx context.Context, reference string) (*commands.BookingSnapshot, error) {
	const query = `
		SELECT id, venue_id, table_id, reference, guest_name, phone, party_size,
		       lower(slot), upper(slot), status
		FROM reservations
		WHERE reference = $1`

	snap, err := scanBooking(r.db.QueryRow(ctx, query, reference))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by reference", err)
	}
	return snap, nil
}

func (r *ReservationRepository) ActiveByTable(ctx context.Context, tableID uuid.UUID, excludeID *uuid.UUID) ([]commands.BookingSnapshot, error) {
	const query = `
		SELECT id, venue_id, table_id, reference, guest_name, phone, party_size,
		       lower(slot), upper(slot), status
		FROM reservations
		WHERE table_id = $1
		  AND status <> 'cancelled'
		  AND ($2::uuid IS NULL OR id <> $2)`

	return r.queryBookings(ctx, query, tableID, excludeID)
}

func (r *ReservationRepository) ConfirmedByGuest(ctx context.Context, venueID uuid.UUID, phone string) ([]commands.BookingSnapshot, error) {
	const query = `
		SELECT id, venue_id, table_id, reference, guest_name, phone, party_size,
		       lower(slot), upper(slot), status
		FROM reservations
		WHERE venue_id = $1 AND phone = $2 AND status = 'confirmed'`

	return r.queryBookings(ctx, query, venueID, phone)
}

func (r *ReservationRepository) ReferenceExists(ctx context.Context, reference string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM reservations WHERE reference = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, reference).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check reference", err)
	}
	return exists, nil
}

func (r *ReservationRepository) queryBookings(ctx context.Context, query string, args ...any) ([]commands.BookingSnapshot, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reservations", err)
	}
	defer rows.Close()

	var result []commands.BookingSnapshot
	for rows.Next() {
		snap, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, *snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*commands.BookingSnapshot, error) {
	var (
		snap       commands.BookingSnapshot
		start, end time.Time
		status     string
	)
	err := row.Scan(
		&snap.ID, &snap.VenueID, &snap.TableID,
		&snap.Reference, &snap.GuestName, &snap.Phone, &snap.PartySize,
		&start, &end, &status,
	)
	if err != nil {
		return nil, err
	}
	snap.Start = start
	snap.Duration = end.Sub(start)
	snap.Status = reservation.Status(status)
	return &snap, nil
}
