//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"card-tracker/internal/domain/card"
	"card-tracker/internal/domain/event"
	"card-tracker/internal/pkg/clock"
	"card-tracker/internal/pkg/qrtoken"
	"card-tracker/internal/usecase/commands"
	"card-tracker/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newCardFixture(t *testing.T) (*fakeStore, *fakeRecorder, commands.CardCommands) {
	t.Helper()
	store := newFakeStore()
	recorder := &fakeRecorder{}
	uc := commands.NewCardCommands(newFakeUoW(store), recorder, clock.NewMockClock(testNow))
	return store, recorder, uc
}

func TestCardCommands_Create(t *testing.T) {
	t.Run("creates an active card with a fresh token", func(t *testing.T) {
		store, recorder, uc := newCardFixture(t)

		id, err := uc.Create(context.Background(), commands.CreateCardInput{
			Title:     "Spring Fundraiser",
			Recipient: "Alice",
			Amount:    20,
		})
		require.NoError(t, err)

		snap := store.cards[id]
		require.NotNil(t, snap)
		assert.Equal(t, "Spring Fundraiser", snap.Title)
		assert.Equal(t, 20, snap.Amount)
		assert.Equal(t, card.StatusActive.String(), snap.Status)
		assert.Len(t, snap.QRToken, qrtoken.Length)

		require.Len(t, recorder.events, 1)
		assert.Equal(t, event.TypeCardCreated, recorder.events[0].Type)
		assert.Equal(t, id.String(), recorder.events[0].Data["cardId"])
	})

	t.Run("rejects amount off the step grid", func(t *testing.T) {
		store, recorder, uc := newCardFixture(t)

		_, err := uc.Create(context.Background(), commands.CreateCardInput{
			Title:     "Card",
			Recipient: "Bob",
			Amount:    7,
		})
		assert.ErrorIs(t, err, card.ErrInvalidAmount)
		assert.Empty(t, store.cards)
		assert.Empty(t, recorder.events)
	})
}

func TestCardCommands_Revoke(t *testing.T) {
	t.Run("revokes an active card", func(t *testing.T) {
		store, recorder, uc := newCardFixture(t)
		id := uuid.New()
		store.addCard(shared.CardSnapshot{ID: id, Title: "Card", Status: card.StatusActive.String(), Amount: 10})

		require.NoError(t, uc.Revoke(context.Background(), id))
		assert.Equal(t, card.StatusRevoked.String(), store.cards[id].Status)
		assert.Equal(t, []event.Type{event.TypeCardRevoked}, recorder.types())
	})

	t.Run("second revoke is a conflict", func(t *testing.T) {
		store, _, uc := newCardFixture(t)
		id := uuid.New()
		store.addCard(shared.CardSnapshot{ID: id, Status: card.StatusRevoked.String()})

		assert.ErrorIs(t, uc.Revoke(context.Background(), id), commands.ErrCardAlreadyRevoked)
	})

	t.Run("unknown card", func(t *testing.T) {
		_, _, uc := newCardFixture(t)
		assert.ErrorIs(t, uc.Revoke(context.Background(), uuid.New()), commands.ErrCardNotFound)
	})
}

func TestCardCommands_Delete(t *testing.T) {
	t.Run("deletes a revoked card", func(t *testing.T) {
		store, recorder, uc := newCardFixture(t)
		id := uuid.New()
		store.addCard(shared.CardSnapshot{ID: id, Status: card.StatusRevoked.String()})

		require.NoError(t, uc.Delete(context.Background(), id))
		assert.NotContains(t, store.cards, id)
		assert.Equal(t, []event.Type{event.TypeCardDeleted}, recorder.types())
	})

	t.Run("active card cannot be deleted", func(t *testing.T) {
		store, _, uc := newCardFixture(t)
		id := uuid.New()
		store.addCard(shared.CardSnapshot{ID: id, Status: card.StatusActive.String()})

		assert.ErrorIs(t, uc.Delete(context.Background(), id), commands.ErrCardNotRevoked)
		assert.Contains(t, store.cards, id)
	})

	t.Run("unknown card", func(t *testing.T) {
		_, _, uc := newCardFixture(t)
		assert.ErrorIs(t, uc.Delete(context.Background(), uuid.New()), commands.ErrCardNotFound)
	})
}
