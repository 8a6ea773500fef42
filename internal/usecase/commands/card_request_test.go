//go:build unit

package commands_test

import (
	"context"
	"testing"

	"card-tracker/internal/domain/card"
	"card-tracker/internal/domain/cardrequest"
	"card-tracker/internal/domain/event"
	"card-tracker/internal/domain/submission"
	"card-tracker/internal/pkg/clock"
	"card-tracker/internal/usecase/commands"
	"card-tracker/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCardRequestFixture(t *testing.T) (*fakeStore, *fakeRecorder, commands.CardRequestCommands) {
	t.Helper()
	store := newFakeStore()
	recorder := &fakeRecorder{}
	uc := commands.NewCardRequestCommands(newFakeUoW(store), recorder, clock.NewMockClock(testNow))
	return store, recorder, uc
}

func TestCardRequestCommands_Submit(t *testing.T) {
	t.Run("creates a pending request", func(t *testing.T) {
		store, recorder, uc := newCardRequestFixture(t)

		id, err := uc.Submit(context.Background(), commands.SubmitCardRequestInput{
			Name:  "Bob",
			Class: "Chemistry",
			Email: "bob@example.com",
		})
		require.NoError(t, err)

		snap := store.cardRequests[id]
		require.NotNil(t, snap)
		assert.Equal(t, "Bob", snap.Name)
		assert.Equal(t, cardrequest.StatusPending.String(), snap.Status)
		assert.Equal(t, []event.Type{event.TypeCardRequestCreated}, recorder.types())
	})

	t.Run("requires contact", func(t *testing.T) {
		store, _, uc := newCardRequestFixture(t)

		_, err := uc.Submit(context.Background(), commands.SubmitCardRequestInput{
			Name:  "Bob",
			Class: "Chemistry",
		})
		assert.ErrorIs(t, err, submission.ErrMissingContact)
		assert.Empty(t, store.cardRequests)
	})
}

func TestCardRequestCommands_Approve(t *testing.T) {
	t.Run("mints a card named after the requester", func(t *testing.T) {
		store, recorder, uc := newCardRequestFixture(t)
		reqID := uuid.New()
		store.addCardRequest(shared.CardRequestSnapshot{ID: reqID, Name: "Bob", Status: cardrequest.StatusPending.String()})

		cardID, err := uc.Approve(context.Background(), reqID, 15)
		require.NoError(t, err)

		snap := store.cards[cardID]
		require.NotNil(t, snap)
		assert.Equal(t, "Card for Bob", snap.Title)
		assert.Equal(t, "Bob", snap.Recipient)
		assert.Equal(t, 15, snap.Amount)
		assert.Equal(t, card.StatusActive.String(), snap.Status)
		assert.Equal(t, cardrequest.StatusApproved.String(), store.cardRequests[reqID].Status)
		assert.Equal(t, []event.Type{event.TypeCardCreated, event.TypeCardRequestApproved}, recorder.types())
	})

	t.Run("amount must sit on the step grid", func(t *testing.T) {
		store, _, uc := newCardRequestFixture(t)
		reqID := uuid.New()
		store.addCardRequest(shared.CardRequestSnapshot{ID: reqID, Name: "Bob", Status: cardrequest.StatusPending.String()})

		_, err := uc.Approve(context.Background(), reqID, 7)
		assert.ErrorIs(t, err, card.ErrInvalidAmount)
		assert.Empty(t, store.cards)
	})

	t.Run("already processed", func(t *testing.T) {
		store, _, uc := newCardRequestFixture(t)
		reqID := uuid.New()
		store.addCardRequest(shared.CardRequestSnapshot{ID: reqID, Name: "Bob", Status: cardrequest.StatusDenied.String()})

		_, err := uc.Approve(context.Background(), reqID, 10)
		assert.ErrorIs(t, err, commands.ErrCardRequestAlreadyProcessed)
	})

	t.Run("unknown request", func(t *testing.T) {
		_, _, uc := newCardRequestFixture(t)
		_, err := uc.Approve(context.Background(), uuid.New(), 10)
		assert.ErrorIs(t, err, commands.ErrCardRequestNotFound)
	})
}

func TestCardRequestCommands_Deny(t *testing.T) {
	t.Run("denies a pending request", func(t *testing.T) {
		store, recorder, uc := newCardRequestFixture(t)
		reqID := uuid.New()
		store.addCardRequest(shared.CardRequestSnapshot{ID: reqID, Name: "Bob", Status: cardrequest.StatusPending.String()})

		require.NoError(t, uc.Deny(context.Background(), reqID))
		assert.Equal(t, cardrequest.StatusDenied.String(), store.cardRequests[reqID].Status)
		assert.Equal(t, []event.Type{event.TypeCardRequestDenied}, recorder.types())
	})

	t.Run("second deny is a conflict", func(t *testing.T) {
		store, _, uc := newCardRequestFixture(t)
		reqID := uuid.New()
		store.addCardRequest(shared.CardRequestSnapshot{ID: reqID, Name: "Bob", Status: cardrequest.StatusPending.String()})

		require.NoError(t, uc.Deny(context.Background(), reqID))
		assert.ErrorIs(t, uc.Deny(context.Background(), reqID), commands.ErrCardRequestAlreadyProcessed)
	})
}
