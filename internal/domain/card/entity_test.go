//go:build unit

package card_test

import (
	"testing"
	"time"

	"card-tracker/internal/domain/card"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewCard(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := card.NewCard("Spring Fundraiser", "Alice", 20, nil, "tok1234567890abcdefghijklm", now)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Spring Fundraiser", actual.Title().String())
		assert.Equal(t, "Alice", actual.Recipient().String())
		assert.Equal(t, 20, actual.Amount().Int())
		assert.Equal(t, card.StatusActive, actual.Status())
		assert.Nil(t, actual.ExpiresAt())
		assert.Equal(t, now, actual.CreatedAt())
	})

	t.Run("amount validation", func(t *testing.T) {
		cases := []struct {
			name   string
			amount int
			errIs  error
		}{
			{name: "zero", amount: 0, errIs: card.ErrInvalidAmount},
			{name: "negative", amount: -5, errIs: card.ErrInvalidAmount},
			{name: "not a multiple of step", amount: 7, errIs: card.ErrInvalidAmount},
			{name: "one below step", amount: 4, errIs: card.ErrInvalidAmount},
			{name: "single step", amount: 5},
			{name: "several steps", amount: 100},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := card.NewCard("Title", "Recipient", tc.amount, nil, "tok", now)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := card.NewCard("  ", "Recipient", 10, nil, "tok", now)
		assert.ErrorIs(t, err, card.ErrEmptyTitle)
	})

	t.Run("empty recipient", func(t *testing.T) {
		_, err := card.NewCard("Title", "", 10, nil, "tok", now)
		assert.ErrorIs(t, err, card.ErrEmptyRecipient)
	})

	t.Run("title and recipient are trimmed", func(t *testing.T) {
		actual, err := card.NewCard("  Title  ", "  Bob  ", 10, nil, "tok", now)
		require.NoError(t, err)
		assert.Equal(t, "Title", actual.Title().String())
		assert.Equal(t, "Bob", actual.Recipient().String())
	})
}

func TestCheckUsable(t *testing.T) {
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name      string
		status    card.Status
		expiresAt *time.Time
		errIs     error
	}{
		{name: "active without expiry", status: card.StatusActive},
		{name: "active with future expiry", status: card.StatusActive, expiresAt: &future},
		{name: "active but expired", status: card.StatusActive, expiresAt: &past, errIs: card.ErrCardExpired},
		{name: "revoked", status: card.StatusRevoked, errIs: card.ErrCardRevoked},
		{name: "revoked wins over expired", status: card.StatusRevoked, expiresAt: &past, errIs: card.ErrCardRevoked},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := card.CheckUsable(tc.status, tc.expiresAt, now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
