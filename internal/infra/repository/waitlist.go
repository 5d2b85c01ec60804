package repository

import (
	"context"

	"tablebook/internal/domain/waitlist"
	"tablebook/internal/infra/db"
)

type WaitlistRepository struct {
	db db.DBTX
}

func NewWaitlistRepository(pool db.DBTX) *WaitlistRepository {
	return &WaitlistRepository{db: pool}
}

func (r *WaitlistRepository) Insert(ctx context.Context, entry *waitlist.Entry) error {
	const query = `
		INSERT INTO waitlist_entries
			(id, venue_id, guest_name, phone, party_size, preferred_date_time)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		entry.ID(), entry.VenueID(),
		entry.GuestName(), entry.Phone(), entry.PartySize(), entry.Preferred(),
	)
	if err != nil {
		return classify("failed to insert waitlist entry", err)
	}
	return nil
}
