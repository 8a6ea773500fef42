//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"card-tracker/internal/domain/card"
	"card-tracker/internal/domain/coupon"
	"card-tracker/internal/domain/event"
	"card-tracker/internal/domain/submission"
	"card-tracker/internal/pkg/clock"
	"card-tracker/internal/usecase/commands"
	"card-tracker/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const springToken = "springtoken1234567890abcde"

func newSubmissionFixture(t *testing.T) (*fakeStore, *fakeRecorder, commands.SubmissionCommands, uuid.UUID) {
	t.Helper()
	store := newFakeStore()
	recorder := &fakeRecorder{}
	uc := commands.NewSubmissionCommands(newFakeUoW(store), recorder, clock.NewMockClock(testNow))

	cardID := uuid.New()
	store.addCard(shared.CardSnapshot{
		ID:        cardID,
		Title:     "Spring Fundraiser",
		Recipient: "Alice",
		Amount:    20,
		QRToken:   springToken,
		Status:    card.StatusActive.String(),
		CreatedAt: testNow,
	})
	return store, recorder, uc, cardID
}

func validInput() commands.SubmitSubmissionInput {
	return commands.SubmitSubmissionInput{
		QRToken:    springToken,
		Class:      "Biology 101",
		Assignment: "Lab Report",
		Requested:  5,
		Phone:      "555-0100",
	}
}

func TestSubmissionCommands_Submit(t *testing.T) {
	t.Run("pending submission leaves the balance untouched", func(t *testing.T) {
		store, recorder, uc, cardID := newSubmissionFixture(t)

		id, err := uc.Submit(context.Background(), validInput())
		require.NoError(t, err)

		snap := store.submissions[id]
		require.NotNil(t, snap)
		assert.Equal(t, cardID, snap.CardID)
		assert.Equal(t, 5, snap.Amount)
		assert.Equal(t, submission.StatusPending.String(), snap.Status)
		assert.Equal(t, 20, store.cards[cardID].Amount)
		assert.Equal(t, []event.Type{event.TypeSubmissionCreated}, recorder.types())
	})

	t.Run("promo code discounts and consumes a use", func(t *testing.T) {
		store, _, uc, _ := newSubmissionFixture(t)
		couponID := uuid.New()
		store.addCoupon(shared.CouponSnapshot{ID: couponID, Code: "SAVE5", Discount: 5, UsesLeft: 1})

		input := validInput()
		input.PromoCode = "save5"

		id, err := uc.Submit(context.Background(), input)
		require.NoError(t, err)

		// 5 requested minus 5 discount clamps to the 1 minimum draw.
		assert.Equal(t, 1, store.submissions[id].Amount)
		assert.Equal(t, 0, store.coupons[couponID].UsesLeft)
	})

	t.Run("exhausted promo code", func(t *testing.T) {
		store, recorder, uc, _ := newSubmissionFixture(t)
		store.addCoupon(shared.CouponSnapshot{ID: uuid.New(), Code: "SAVE5", Discount: 5, UsesLeft: 0})

		input := validInput()
		input.PromoCode = "SAVE5"

		_, err := uc.Submit(context.Background(), input)
		assert.ErrorIs(t, err, coupon.ErrExhausted)
		assert.Empty(t, store.submissions)
		assert.Empty(t, recorder.events)
	})

	t.Run("unknown promo code", func(t *testing.T) {
		_, _, uc, _ := newSubmissionFixture(t)
		input := validInput()
		input.PromoCode = "NOPE"

		_, err := uc.Submit(context.Background(), input)
		assert.ErrorIs(t, err, commands.ErrCouponNotFound)
	})

	t.Run("missing contact fails before anything is written", func(t *testing.T) {
		store, recorder, uc, _ := newSubmissionFixture(t)
		input := validInput()
		input.Phone = ""
		input.Email = ""

		_, err := uc.Submit(context.Background(), input)
		assert.ErrorIs(t, err, submission.ErrMissingContact)
		assert.Empty(t, store.submissions)
		assert.Empty(t, recorder.events)
	})

	t.Run("requested amount above balance", func(t *testing.T) {
		_, _, uc, _ := newSubmissionFixture(t)
		input := validInput()
		input.Requested = 25

		_, err := uc.Submit(context.Background(), input)
		assert.ErrorIs(t, err, submission.ErrInsufficientBalance)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, _, uc, _ := newSubmissionFixture(t)
		input := validInput()
		input.QRToken = "nosuchtoken"

		_, err := uc.Submit(context.Background(), input)
		assert.ErrorIs(t, err, commands.ErrCardNotFound)
	})

	t.Run("revoked card", func(t *testing.T) {
		store, _, uc, cardID := newSubmissionFixture(t)
		store.cards[cardID].Status = card.StatusRevoked.String()

		_, err := uc.Submit(context.Background(), validInput())
		assert.ErrorIs(t, err, card.ErrCardRevoked)
	})

	t.Run("expired card", func(t *testing.T) {
		store, _, uc, cardID := newSubmissionFixture(t)
		past := testNow.Add(-time.Hour)
		store.cards[cardID].ExpiresAt = &past

		_, err := uc.Submit(context.Background(), validInput())
		assert.ErrorIs(t, err, card.ErrCardExpired)
	})
}

func TestSubmissionCommands_Approve(t *testing.T) {
	t.Run("approval debits the card", func(t *testing.T) {
		store, recorder, uc, cardID := newSubmissionFixture(t)
		subID := uuid.New()
		store.addSubmission(shared.SubmissionSnapshot{
			ID: subID, CardID: cardID, Amount: 5, Status: submission.StatusPending.String(),
		})

		require.NoError(t, uc.Approve(context.Background(), subID))

		assert.Equal(t, 15, store.cards[cardID].Amount)
		assert.Equal(t, submission.StatusApproved.String(), store.submissions[subID].Status)
		assert.Equal(t, []event.Type{event.TypeSubmissionApproved}, recorder.types())
	})

	t.Run("second approval is a conflict", func(t *testing.T) {
		store, _, uc, cardID := newSubmissionFixture(t)
		subID := uuid.New()
		store.addSubmission(shared.SubmissionSnapshot{
			ID: subID, CardID: cardID, Amount: 5, Status: submission.StatusPending.String(),
		})

		require.NoError(t, uc.Approve(context.Background(), subID))
		err := uc.Approve(context.Background(), subID)
		assert.ErrorIs(t, err, commands.ErrSubmissionAlreadyProcessed)
		// Balance debited exactly once.
		assert.Equal(t, 15, store.cards[cardID].Amount)
	})

	t.Run("balance no longer covers the amount", func(t *testing.T) {
		store, recorder, uc, cardID := newSubmissionFixture(t)
		store.cards[cardID].Amount = 3
		subID := uuid.New()
		store.addSubmission(shared.SubmissionSnapshot{
			ID: subID, CardID: cardID, Amount: 5, Status: submission.StatusPending.String(),
		})

		err := uc.Approve(context.Background(), subID)
		assert.ErrorIs(t, err, submission.ErrInsufficientBalance)
		assert.Equal(t, 3, store.cards[cardID].Amount)
		assert.Empty(t, recorder.events)
	})

	t.Run("unknown submission", func(t *testing.T) {
		_, _, uc, _ := newSubmissionFixture(t)
		assert.ErrorIs(t, uc.Approve(context.Background(), uuid.New()), commands.ErrSubmissionNotFound)
	})
}

func TestSubmissionCommands_Deny(t *testing.T) {
	t.Run("denial leaves the balance untouched", func(t *testing.T) {
		store, recorder, uc, cardID := newSubmissionFixture(t)
		subID := uuid.New()
		store.addSubmission(shared.SubmissionSnapshot{
			ID: subID, CardID: cardID, Amount: 5, Status: submission.StatusPending.String(),
		})

		require.NoError(t, uc.Deny(context.Background(), subID))
		assert.Equal(t, 20, store.cards[cardID].Amount)
		assert.Equal(t, submission.StatusDenied.String(), store.submissions[subID].Status)
		assert.Equal(t, []event.Type{event.TypeSubmissionDenied}, recorder.types())
	})

	t.Run("denying a denied submission is a conflict", func(t *testing.T) {
		store, _, uc, cardID := newSubmissionFixture(t)
		subID := uuid.New()
		store.addSubmission(shared.SubmissionSnapshot{
			ID: subID, CardID: cardID, Amount: 5, Status: submission.StatusDenied.String(),
		})

		assert.ErrorIs(t, uc.Deny(context.Background(), subID), commands.ErrSubmissionAlreadyProcessed)
	})
}
