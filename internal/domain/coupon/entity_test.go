//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"coupon-service/internal/domain/coupon"
	"coupon-service/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.CouponBuilder)
	errIs  error
}

func TestCoupon(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.False(t, actual.CreatedAt().IsZero())
		assert.Equal(t, "SALE10", actual.Code().String())
		assert.Equal(t, 2, actual.MaxUses())
		assert.Equal(t, 0, actual.CurrentUses())
		assert.Equal(t, "PL", actual.Country().String())
		assert.False(t, actual.IsExhausted())
	})

	t.Run("code normalization", func(t *testing.T) {
		cases := []struct {
			name     string
			raw      string
			expected string
		}{
			{name: "lower case is upper cased", raw: "sale10", expected: "SALE10"},
			{name: "surrounding whitespace is trimmed", raw: "  SALE10  ", expected: "SALE10"},
			{name: "mixed case with whitespace", raw: " sAlE10\t", expected: "SALE10"},
			{name: "already normalized", raw: "SALE10", expected: "SALE10"},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := builder.NewCouponBuilder().WithCode(c.raw).BuildDomain()
				require.NoError(t, err)
				assert.Equal(t, c.expected, actual.Code().String())
			})
		}
	})

	t.Run("code validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty code",
				mutate: func(b *builder.CouponBuilder) { b.WithCode("") },
				errIs:  coupon.ErrEmptyCouponCode,
			},
			{
				name:   "whitespace only code",
				mutate: func(b *builder.CouponBuilder) { b.WithCode("   ") },
				errIs:  coupon.ErrEmptyCouponCode,
			},
			{
				name:   "single character code",
				mutate: func(b *builder.CouponBuilder) { b.WithCode("A") },
			},
		})
	})

	t.Run("usage limit validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero limit",
				mutate: func(b *builder.CouponBuilder) { b.WithMaxUses(0) },
				errIs:  coupon.ErrInvalidUsageLimit,
			},
			{
				name:   "negative limit",
				mutate: func(b *builder.CouponBuilder) { b.WithMaxUses(-1) },
				errIs:  coupon.ErrInvalidUsageLimit,
			},
			{
				name:   "minimum valid limit",
				mutate: func(b *builder.CouponBuilder) { b.WithMaxUses(1) },
			},
		})
	})

	t.Run("country validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid upper case code",
				mutate: func(b *builder.CouponBuilder) { b.WithCountry("US") },
			},
			{
				name:   "lower case is normalized",
				mutate: func(b *builder.CouponBuilder) { b.WithCountry("pl") },
			},
			{
				name:   "empty country",
				mutate: func(b *builder.CouponBuilder) { b.WithCountry("") },
				errIs:  coupon.ErrInvalidCountry,
			},
			{
				name:   "too short",
				mutate: func(b *builder.CouponBuilder) { b.WithCountry("P") },
				errIs:  coupon.ErrInvalidCountry,
			},
			{
				name:   "too long",
				mutate: func(b *builder.CouponBuilder) { b.WithCountry("POL") },
				errIs:  coupon.ErrInvalidCountry,
			},
			{
				name:   "digits rejected",
				mutate: func(b *builder.CouponBuilder) { b.WithCountry("P1") },
				errIs:  coupon.ErrInvalidCountry,
			},
		})
	})

	t.Run("country normalization", func(t *testing.T) {
		actual, err := builder.NewCouponBuilder().WithCountry("pl").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "PL", actual.Country().String())
	})

	t.Run("country matching is case insensitive", func(t *testing.T) {
		actual, err := builder.NewCouponBuilder().WithCountry("PL").BuildDomain()
		require.NoError(t, err)

		assert.True(t, actual.AllowsCountry("PL"))
		assert.True(t, actual.AllowsCountry("pl"))
		assert.False(t, actual.AllowsCountry("US"))
		assert.False(t, actual.AllowsCountry(""))
	})

	t.Run("use consumes one redemption", func(t *testing.T) {
		actual, err := builder.NewCouponBuilder().WithMaxUses(2).BuildDomain()
		require.NoError(t, err)

		require.NoError(t, actual.Use())
		assert.Equal(t, 1, actual.CurrentUses())
		assert.False(t, actual.IsExhausted())

		require.NoError(t, actual.Use())
		assert.Equal(t, 2, actual.CurrentUses())
		assert.True(t, actual.IsExhausted())
	})

	t.Run("use fails once exhausted", func(t *testing.T) {
		actual, err := builder.NewCouponBuilder().WithMaxUses(1).BuildDomain()
		require.NoError(t, err)

		require.NoError(t, actual.Use())
		err = actual.Use()
		require.Error(t, err)
		require.ErrorIs(t, err, coupon.ErrUsageLimitReached)
		assert.Equal(t, 1, actual.CurrentUses())
	})

	t.Run("restore keeps persisted state verbatim", func(t *testing.T) {
		createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		actual := builder.NewCouponBuilder().
			WithCode("WINTER").
			WithMaxUses(5).
			WithCurrentUses(3).
			WithCountry("DE").
			WithCreatedAt(createdAt).
			BuildRestored()

		assert.Equal(t, "WINTER", actual.Code().String())
		assert.Equal(t, 5, actual.MaxUses())
		assert.Equal(t, 3, actual.CurrentUses())
		assert.Equal(t, "DE", actual.Country().String())
		assert.Equal(t, createdAt, actual.CreatedAt())
		assert.False(t, actual.IsExhausted())
	})

	t.Run("restored exhausted coupon reports exhaustion", func(t *testing.T) {
		actual := builder.NewCouponBuilder().WithMaxUses(2).AsExhausted().BuildRestored()
		assert.True(t, actual.IsExhausted())
		require.ErrorIs(t, actual.Use(), coupon.ErrUsageLimitReached)
	})
}

func TestUsage(t *testing.T) {
	now := time.Now()
	couponID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		actual, err := coupon.NewUsage(couponID, "user-1", now)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, couponID, actual.CouponID())
		assert.Equal(t, "user-1", actual.UserID())
		assert.Equal(t, now, actual.UsedAt())
	})

	t.Run("user id is trimmed", func(t *testing.T) {
		actual, err := coupon.NewUsage(couponID, "  user-1  ", now)
		require.NoError(t, err)
		assert.Equal(t, "user-1", actual.UserID())
	})

	t.Run("empty user id", func(t *testing.T) {
		actual, err := coupon.NewUsage(couponID, "", now)
		require.Nil(t, actual)
		require.ErrorIs(t, err, coupon.ErrEmptyUserID)
	})

	t.Run("whitespace only user id", func(t *testing.T) {
		actual, err := coupon.NewUsage(couponID, "   ", now)
		require.Nil(t, actual)
		require.ErrorIs(t, err, coupon.ErrEmptyUserID)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewCouponBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
