//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"tablebook/internal/domain/reservation"
	"tablebook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entityCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, reservation.StatusConfirmed, actual.Status())
		assert.Equal(t, "Alice Smith", actual.GuestName())
		assert.Equal(t, 2, actual.PartySize())
		assert.True(t, actual.IsActive())
	})

	t.Run("guest validation", func(t *testing.T) {
		runEntityCases(t, []entityCase{
			{
				name:   "empty guest name",
				mutate: func(b *builder.ReservationBuilder) { b.GuestName = "" },
				errIs:  reservation.ErrEmptyGuestName,
			},
			{
				name:   "whitespace-only guest name",
				mutate: func(b *builder.ReservationBuilder) { b.GuestName = "   " },
				errIs:  reservation.ErrEmptyGuestName,
			},
			{
				name:   "guest name at max length",
				mutate: func(b *builder.ReservationBuilder) { b.GuestName = strings.Repeat("a", reservation.MaxGuestNameLength) },
			},
			{
				name:   "guest name over max length",
				mutate: func(b *builder.ReservationBuilder) { b.GuestName = strings.Repeat("a", reservation.MaxGuestNameLength+1) },
				errIs:  reservation.ErrGuestNameTooLong,
			},
			{
				name:   "empty phone",
				mutate: func(b *builder.ReservationBuilder) { b.Phone = "" },
				errIs:  reservation.ErrEmptyPhone,
			},
		})
	})

	t.Run("party size validation", func(t *testing.T) {
		runEntityCases(t, []entityCase{
			{
				name:   "single guest",
				mutate: func(b *builder.ReservationBuilder) { b.PartySize = 1 },
			},
			{
				name:   "zero party",
				mutate: func(b *builder.ReservationBuilder) { b.PartySize = 0 },
				errIs:  reservation.ErrInvalidPartySize,
			},
			{
				name:   "negative party",
				mutate: func(b *builder.ReservationBuilder) { b.PartySize = -3 },
				errIs:  reservation.ErrInvalidPartySize,
			},
		})
	})

	t.Run("reference validation", func(t *testing.T) {
		runEntityCases(t, []entityCase{
			{
				name:   "malformed reference",
				mutate: func(b *builder.ReservationBuilder) { b.Reference = "BOOKING-1" },
				errIs:  reservation.ErrMalformedReference,
			},
		})
	})
}

func TestReservation_Cancel(t *testing.T) {
	res, err := builder.NewReservationBuilder().BuildDomain()
	require.NoError(t, err)

	res.Cancel()
	assert.Equal(t, reservation.StatusCancelled, res.Status())
	assert.False(t, res.IsActive())

	// Second cancel is a no-op
	res.Cancel()
	assert.Equal(t, reservation.StatusCancelled, res.Status())
}

func TestReservation_Rebook(t *testing.T) {
	newTable := uuid.New()
	newIvl, err := reservation.NewInterval(time.Now().UTC().Add(48*time.Hour), time.Hour)
	require.NoError(t, err)

	t.Run("moves table, interval and party size", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, res.Rebook(newTable, newIvl, 4))
		assert.Equal(t, newTable, res.TableID())
		assert.Equal(t, newIvl, res.Interval())
		assert.Equal(t, 4, res.PartySize())
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
	})

	t.Run("cancelled reservation cannot be rebooked", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		res.Cancel()
		assert.ErrorIs(t, res.Rebook(newTable, newIvl, 4), reservation.ErrAlreadyCancelled)
	})

	t.Run("rejects invalid party size", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, res.Rebook(newTable, newIvl, 0), reservation.ErrInvalidPartySize)
	})
}

func TestStatus_Blocking(t *testing.T) {
	assert.True(t, reservation.StatusPending.Blocking())
	assert.True(t, reservation.StatusConfirmed.Blocking())
	assert.True(t, reservation.StatusCompleted.Blocking())
	assert.False(t, reservation.StatusCancelled.Blocking())
}

func runEntityCases(t *testing.T, cases []entityCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReservationBuilder()
			tc.mutate(b)
			_, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
