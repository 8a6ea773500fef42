//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"card-tracker/internal/domain/coupon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewCoupon(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := coupon.NewCoupon("save5", 5, 10, now)
		require.NoError(t, err)

		assert.Equal(t, "SAVE5", actual.Code().String())
		assert.Equal(t, 5, actual.Discount())
		assert.Equal(t, 10, actual.UsesLeft())
	})

	t.Run("code is trimmed and uppercased", func(t *testing.T) {
		actual, err := coupon.NewCoupon("  early-bird  ", 2, 1, now)
		require.NoError(t, err)
		assert.Equal(t, "EARLY-BIRD", actual.Code().String())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name     string
			code     string
			discount int
			uses     int
			errIs    error
		}{
			{name: "empty code", code: "   ", discount: 5, uses: 1, errIs: coupon.ErrEmptyCode},
			{name: "zero discount", code: "X", discount: 0, uses: 1, errIs: coupon.ErrInvalidDiscount},
			{name: "negative uses", code: "X", discount: 1, uses: -1, errIs: coupon.ErrInvalidUses},
			{name: "zero uses allowed", code: "X", discount: 1, uses: 0},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := coupon.NewCoupon(tc.code, tc.discount, tc.uses, now)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestValidateUsage(t *testing.T) {
	assert.NoError(t, coupon.ValidateUsage(1))
	assert.ErrorIs(t, coupon.ValidateUsage(0), coupon.ErrExhausted)
	assert.ErrorIs(t, coupon.ValidateUsage(-1), coupon.ErrExhausted)
}
