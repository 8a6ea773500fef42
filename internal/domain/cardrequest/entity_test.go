//go:build unit

package cardrequest_test

import (
	"testing"
	"time"

	"card-tracker/internal/domain/cardrequest"
	"card-tracker/internal/domain/submission"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewCardRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := cardrequest.NewCardRequest("Bob", "Chemistry", submission.NewContact("", "bob@example.com"), "need a card", now)
		require.NoError(t, err)

		assert.Equal(t, "Bob", actual.Name())
		assert.Equal(t, "Chemistry", actual.Class())
		assert.Equal(t, cardrequest.StatusPending, actual.Status())
		require.NotNil(t, actual.Reason())
		assert.Equal(t, "need a card", *actual.Reason())
		assert.Equal(t, "Card for Bob", actual.CardTitle())
	})

	t.Run("blank reason becomes nil", func(t *testing.T) {
		actual, err := cardrequest.NewCardRequest("Bob", "Chemistry", submission.NewContact("555-0100", ""), "   ", now)
		require.NoError(t, err)
		assert.Nil(t, actual.Reason())
	})

	t.Run("validation", func(t *testing.T) {
		contact := submission.NewContact("555-0100", "")

		_, err := cardrequest.NewCardRequest("  ", "Chemistry", contact, "", now)
		assert.ErrorIs(t, err, cardrequest.ErrEmptyName)

		_, err = cardrequest.NewCardRequest("Bob", "", contact, "", now)
		assert.ErrorIs(t, err, cardrequest.ErrEmptyClass)

		_, err = cardrequest.NewCardRequest("Bob", "Chemistry", submission.NewContact("", ""), "", now)
		assert.ErrorIs(t, err, submission.ErrMissingContact)
	})
}
