package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"
	"tablebook/internal/monitoring"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrVenueNotFound         = errs.New("venue not found")
	ErrPastStartTime         = errs.New("start time is in the past")
	ErrDoubleBooking         = errs.New("guest already holds an overlapping reservation at this venue")
	ErrOutsideOperatingHours = errs.New("reservation falls outside operating hours")
	ErrNoCapacity            = errs.New("no table can seat this party size")
	ErrNoAvailability        = errs.New("no table is free for this time slot")
	ErrAllocationConflict    = errs.New("allocation lost the commit race")
	ErrReservationNotFound   = errs.New("reservation not found")
	ErrNotModifiable         = errs.New("cancelled reservations cannot be modified")
	ErrReferenceExhausted    = errs.New("could not generate a unique reference")
	ErrDomainValidation      = errs.New("domain validation error")
	ErrStoreFailure          = errs.New("store operation failed")
)

type AllocateParams struct {
	VenueSlug string
	GuestName string
	Phone     string
	PartySize int
	Start     time.Time
	// Duration zero means the configured default applies.
	Duration time.Duration
}

type ModifyParams struct {
	Reference   string
	Start       *time.Time
	PartySize   *int
	DurationMin *int
}

type ReservationCommands interface {
	Allocate(ctx context.Context, params AllocateParams) (*BookingSnapshot, error)
	Cancel(ctx context.Context, reference string) error
	Modify(ctx context.Context, params ModifyParams) (*BookingSnapshot, error)
}

type reservationCommandsImpl struct {
	venues          VenueReads
	catalog         TableCatalog
	ledger          ReservationLedger
	references      ReferenceSource
	notifier        Notifier
	clock           clock.Clock
	peak            reservation.PeakPolicy
	defaultDuration time.Duration
}

func NewReservationCommands(
	venues VenueReads,
	catalog TableCatalog,
	ledger ReservationLedger,
	references ReferenceSource,
	notifier Notifier,
	clk clock.Clock,
	peak reservation.PeakPolicy,
	defaultDuration time.Duration,
) ReservationCommands {
	return &reservationCommandsImpl{
		venues:          venues,
		catalog:         catalog,
		ledger:          ledger,
		references:      references,
		notifier:        notifier,
		clock:           clk,
		peak:            peak,
		defaultDuration: defaultDuration,
	}
}

// Allocate runs the booking pipeline in strict order: past-time guard, peak
// duration cap, guest double-booking guard, operating-window guard,
// capacity search, best-fit probe, commit. The commit re-validates the
// probe inside the store; a lost race retries once from the probe step.
func (r *reservationCommandsImpl) Allocate(ctx context.Context, params AllocateParams) (*BookingSnapshot, error) {
	started := r.clock.Now()
	snap, err := r.allocate(ctx, params)
	monitoring.RecordAllocation(allocationOutcome(err), r.clock.Now().Sub(started))
	return snap, err
}

func (r *reservationCommandsImpl) allocate(ctx context.Context, params AllocateParams) (*BookingSnapshot, error) {
	ven, err := r.venueBySlug(ctx, params.VenueSlug)
	if err != nil {
		return nil, err
	}

	if params.Start.Before(r.clock.Now()) {
		return nil, ErrPastStartTime
	}

	requested := params.Duration
	if requested <= 0 {
		requested = r.defaultDuration
	}
	effective := r.peak.EffectiveDuration(params.Start, requested)

	ivl, err := reservation.NewInterval(params.Start, effective)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := r.guardDoubleBooking(ctx, ven.ID, params.Phone, ivl); err != nil {
		return nil, err
	}

	if !ven.Window.Admits(ivl) {
		return nil, ErrOutsideOperatingHours
	}

	res, err := r.probeAndCommit(ctx, ven, params, ivl)
	if err != nil {
		return nil, err
	}

	r.notifyConfirmed(ctx, ven.Name, res)

	return bookingSnapshot(res), nil
}

func (r *reservationCommandsImpl) guardDoubleBooking(ctx context.Context, venueID uuid.UUID, phone string, ivl reservation.Interval) error {
	existing, err := r.ledger.ConfirmedByGuest(ctx, venueID, phone)
	if err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	for _, b := range existing {
		if b.Interval().Overlaps(ivl) {
			return ErrDoubleBooking
		}
	}
	return nil
}

// probeAndCommit is steps 5-8. The linear best-fit probe is the defined
// allocation policy: first conflict-free candidate in capacity order wins,
// ties broken by table number.
func (r *reservationCommandsImpl) probeAndCommit(
	ctx context.Context,
	ven *VenueSnapshot,
	params AllocateParams,
	ivl reservation.Interval,
) (*reservation.Reservation, error) {
	const maxAttempts = 2

	for attempt := 0; attempt < maxAttempts; attempt++ {
		tableID, err := r.probe(ctx, ven.ID, params.PartySize, ivl, nil)
		if err != nil {
			return nil, err
		}

		reference, err := r.references.NewReference(ctx)
		if err != nil {
			return nil, errs.Mark(err, ErrReferenceExhausted)
		}

		res, err := reservation.NewReservation(
			ven.ID, tableID, reference,
			params.GuestName, params.Phone, params.PartySize, ivl,
		)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}

		err = r.ledger.Insert(ctx, res)
		if err == nil {
			return res, nil
		}
		if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
			if attempt+1 < maxAttempts {
				monitoring.RecordCommitRetry()
				continue
			}
			return nil, errs.Mark(err, ErrAllocationConflict)
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	return nil, ErrAllocationConflict
}

// probe returns the first suitable table with no overlapping active booking.
func (r *reservationCommandsImpl) probe(
	ctx context.Context,
	venueID uuid.UUID,
	partySize int,
	ivl reservation.Interval,
	excludeID *uuid.UUID,
) (uuid.UUID, error) {
	candidates, err := r.catalog.Suitable(ctx, venueID, partySize)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrStoreFailure)
	}
	if len(candidates) == 0 {
		return uuid.Nil, ErrNoCapacity
	}

	for _, candidate := range candidates {
		active, err := r.ledger.ActiveByTable(ctx, candidate.ID, excludeID)
		if err != nil {
			return uuid.Nil, errs.Mark(err, ErrStoreFailure)
		}
		if !anyOverlap(active, ivl) {
			return candidate.ID, nil
		}
	}

	return uuid.Nil, ErrNoAvailability
}

func (r *reservationCommandsImpl) Cancel(ctx context.Context, reference string) error {
	snap, err := r.ledger.ByReference(ctx, reference)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrStoreFailure)
	}

	// Idempotent: cancelling a cancelled reservation confirms the state.
	if snap.Status == reservation.StatusCancelled {
		return nil
	}

	if err := r.ledger.SetStatus(ctx, snap.ID, reservation.StatusCancelled); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrStoreFailure)
	}
	return nil
}

// Modify merges the requested changes over the stored booking and re-runs
// the capacity search and best-fit probe against the full candidate set,
// excluding the reservation's own row. The table may change. On any
// failure the original booking is left untouched.
func (r *reservationCommandsImpl) Modify(ctx context.Context, params ModifyParams) (*BookingSnapshot, error) {
	snap, err := r.ledger.ByReference(ctx, params.Reference)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	if snap.Status == reservation.StatusCancelled {
		return nil, ErrNotModifiable
	}

	newStart := patch.Coalesce(params.Start, snap.Start)
	newSize := patch.Coalesce(params.PartySize, snap.PartySize)
	newDuration := snap.Duration
	if params.DurationMin != nil {
		newDuration = time.Duration(*params.DurationMin) * time.Minute
	}

	ivl, err := reservation.NewInterval(newStart, newDuration)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if newSize < 1 {
		return nil, errs.Mark(reservation.ErrInvalidPartySize, ErrDomainValidation)
	}

	const maxAttempts = 2
	for attempt := 0; attempt < maxAttempts; attempt++ {
		tableID, err := r.probe(ctx, snap.VenueID, newSize, ivl, &snap.ID)
		if err != nil {
			return nil, err
		}

		res := reservation.ReconstructReservation(
			snap.ID, snap.VenueID, snap.TableID,
			snap.Reference, snap.GuestName, snap.Phone,
			snap.PartySize, snap.Interval(), snap.Status,
			time.Time{}, time.Time{},
		)
		if err := res.Rebook(tableID, ivl, newSize); err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}

		err = r.ledger.Rebook(ctx, res)
		if err == nil {
			return bookingSnapshot(res), nil
		}
		if infra.IsKind(err, infra.KindConflict) {
			if attempt+1 < maxAttempts {
				monitoring.RecordCommitRetry()
				continue
			}
			return nil, errs.Mark(err, ErrAllocationConflict)
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	return nil, ErrAllocationConflict
}

func (r *reservationCommandsImpl) venueBySlug(ctx context.Context, slug string) (*VenueSnapshot, error) {
	ven, err := r.venues.BySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return ven, nil
}

// notifyConfirmed is fire-and-forget: delivery failure never rolls back a
// committed reservation.
func (r *reservationCommandsImpl) notifyConfirmed(ctx context.Context, venueName string, res *reservation.Reservation) {
	message := fmt.Sprintf(
		"Hi %s, your booking at %s is CONFIRMED. Ref: %s",
		res.GuestName(), venueName, res.Reference(),
	)
	if err := r.notifier.Send(ctx, "sms", res.Phone(), message); err != nil {
		slog.Warn("confirmation notification failed",
			"reference", res.Reference(),
			"error", err.Error())
	}
}

func anyOverlap(bookings []BookingSnapshot, ivl reservation.Interval) bool {
	for _, b := range bookings {
		if b.Interval().Overlaps(ivl) {
			return true
		}
	}
	return false
}

func bookingSnapshot(res *reservation.Reservation) *BookingSnapshot {
	return &BookingSnapshot{
		ID:        res.ID(),
		VenueID:   res.VenueID(),
		TableID:   res.TableID(),
		Reference: res.Reference(),
		GuestName: res.GuestName(),
		Phone:     res.Phone(),
		PartySize: res.PartySize(),
		Start:     res.Interval().Start(),
		Duration:  res.Interval().Duration(),
		Status:    res.Status(),
	}
}

func allocationOutcome(err error) string {
	switch {
	case err == nil:
		return "allocated"
	case errors.Is(err, ErrNoAvailability):
		return "no_availability"
	case errors.Is(err, ErrNoCapacity):
		return "no_capacity"
	case errors.Is(err, ErrDoubleBooking):
		return "double_booking"
	case errors.Is(err, ErrOutsideOperatingHours):
		return "outside_hours"
	case errors.Is(err, ErrAllocationConflict):
		return "conflict"
	default:
		return "error"
	}
}
