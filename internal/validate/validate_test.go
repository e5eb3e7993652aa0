package validate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frozen pins the clock for the temporal rules.
func frozen(t *testing.T, at time.Time) {
	t.Helper()
	orig := Now
	Now = func() time.Time { return at }
	t.Cleanup(func() { Now = orig })
}

func TestNotFuture(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	frozen(t, now)

	assert.NoError(t, NotFuture("created", now))
	assert.NoError(t, NotFuture("created", now.Add(-time.Hour)))

	err := NotFuture("created", now.Add(time.Second))
	require.Error(t, err)
	ve, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "created", ve.Field)
}

func TestNonNegative(t *testing.T) {
	assert.NoError(t, NonNegative("price", decimal.Zero))
	assert.NoError(t, NonNegative("price", decimal.NewFromFloat(19.99)))
	assert.Error(t, NonNegative("price", decimal.NewFromFloat(-0.01)))
}

func TestWithin(t *testing.T) {
	lo, hi := decimal.Zero, decimal.NewFromInt(5)

	assert.NoError(t, Within("rating", decimal.Zero, lo, hi))
	assert.NoError(t, Within("rating", decimal.NewFromInt(5), lo, hi))
	assert.NoError(t, Within("rating", decimal.NewFromFloat(3.7), lo, hi))
	assert.Error(t, Within("rating", decimal.NewFromFloat(5.01), lo, hi))
	assert.Error(t, Within("rating", decimal.NewFromFloat(-0.5), lo, hi))
}

func TestNotPast(t *testing.T) {
	now := time.Date(2026, 3, 15, 23, 30, 0, 0, time.UTC)
	frozen(t, now)

	today := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, NotPast("date", today), "same day passes regardless of time of day")
	assert.NoError(t, NotPast("date", today.AddDate(0, 0, 1)))
	assert.Error(t, NotPast("date", today.AddDate(0, 0, -1)))
}

func TestRequired(t *testing.T) {
	assert.NoError(t, Required("title", "Hamlet"))
	assert.Error(t, Required("title", ""))
	assert.Error(t, Required("title", "   \t"))
}

func TestTimeOfDay(t *testing.T) {
	assert.NoError(t, TimeOfDay("time", "19:30:00"))
	assert.NoError(t, TimeOfDay("time", "00:00:00"))
	assert.Error(t, TimeOfDay("time", "25:00:00"))
	assert.Error(t, TimeOfDay("time", "19:30"))
	assert.Error(t, TimeOfDay("time", "evening"))
}

func TestAmount(t *testing.T) {
	cases := []struct {
		name  string
		value string
		ok    bool
	}{
		{"simple", "100", true},
		{"two places", "99.99", true},
		{"max digits", "12345678.90", true},
		{"zero", "0", false},
		{"negative", "-5", false},
		{"three places", "1.001", false},
		{"too many digits", "123456789.01", false},
		{"leading zeros ignored", "000123.45", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tc.value)
			require.NoError(t, err)
			got := Amount("money", d, 10, 2)
			if tc.ok {
				assert.NoError(t, got)
			} else {
				assert.Error(t, got)
			}
		})
	}
}

func TestAsError(t *testing.T) {
	_, ok := AsError(assert.AnError)
	assert.False(t, ok)

	ve, ok := AsError(Required("title", ""))
	require.True(t, ok)
	assert.Equal(t, "title", ve.Field)
	assert.Contains(t, ve.Error(), "title:")
}
