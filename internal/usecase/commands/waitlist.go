package commands

import (
	"context"
	"time"

	"tablebook/internal/domain/waitlist"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

type JoinWaitlistParams struct {
	VenueSlug string
	GuestName string
	Phone     string
	PartySize int
	Preferred time.Time
}

type WaitlistEntrySnapshot struct {
	ID        uuid.UUID
	VenueID   uuid.UUID
	GuestName string
	Phone     string
	PartySize int
	Preferred time.Time
}

// WaitlistCommands is deliberately independent of allocation: a failed
// allocation and a waitlist join are two separate requests, never chained
// inside the engine.
type WaitlistCommands interface {
	Join(ctx context.Context, params JoinWaitlistParams) (*WaitlistEntrySnapshot, error)
}

type waitlistCommandsImpl struct {
	venues VenueReads
	store  WaitlistStore
}

func NewWaitlistCommands(venues VenueReads, store WaitlistStore) WaitlistCommands {
	return &waitlistCommandsImpl{venues: venues, store: store}
}

func (w *waitlistCommandsImpl) Join(ctx context.Context, params JoinWaitlistParams) (*WaitlistEntrySnapshot, error) {
	ven, err := w.venues.BySlug(ctx, params.VenueSlug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	entry, err := waitlist.NewEntry(ven.ID, params.GuestName, params.Phone, params.PartySize, params.Preferred)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := w.store.Insert(ctx, entry); err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	return &WaitlistEntrySnapshot{
		ID:        entry.ID(),
		VenueID:   entry.VenueID(),
		GuestName: entry.GuestName(),
		Phone:     entry.Phone(),
		PartySize: entry.PartySize(),
		Preferred: entry.Preferred(),
	}, nil
}
