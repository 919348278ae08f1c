package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return v
}

func TestEinkommenssteuerBund_ZeroBelowThreshold(t *testing.T) {
	for _, amount := range []string{"0", "1", "7500", "14999.95", "15000"} {
		got := EinkommenssteuerBundCalc(d(t, amount))
		assert.True(t, got.IsZero(), "amount %s should yield zero, got %s", amount, got)
	}
}

func TestEinkommenssteuerBund_SteppedSchedule(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"20000", "38.50"},     // 5000 * 0.77%
		{"32800", "137.05"},    // schedule base value
		{"50000", "413.34"},    // 225.90 + 7100 * 2.64%
		{"100000", "2736.50"},  // 1482.50 + 19000 * 6.6%
		{"200000", "13085.30"}, // 10788.50 + 17400 * 13.2%
	}
	for _, tt := range tests {
		got := EinkommenssteuerBundCalc(d(t, tt.amount))
		assert.True(t, got.Equal(d(t, tt.want)), "amount %s: want %s, got %s", tt.amount, tt.want, got)
	}
}

func TestEinkommenssteuerBund_TopRateFlat(t *testing.T) {
	got := EinkommenssteuerBundCalc(d(t, "783200"))
	assert.True(t, got.Equal(d(t, "90068")), "got %s", got)

	got = EinkommenssteuerBundCalc(d(t, "1000000"))
	assert.True(t, got.Equal(d(t, "115000")), "got %s", got)
}

func TestCalculateIncomeTaxKt_BracketConsumption(t *testing.T) {
	assert.True(t, CalculateIncomeTaxKt(d(t, "6900")).IsZero())
	assert.True(t, CalculateIncomeTaxKt(d(t, "-5")).IsZero())

	// 6900@0 + 4800@2% = 96
	assert.True(t, CalculateIncomeTaxKt(d(t, "11700")).Equal(d(t, "96")))

	// 6900@0 + 4800@2% + 4800@3% + 3500@4% = 96 + 144 + 140
	assert.True(t, CalculateIncomeTaxKt(d(t, "20000")).Equal(d(t, "380")))
}

func TestCalculateIncomeTaxKt_TopBracketUnbounded(t *testing.T) {
	low := CalculateIncomeTaxKt(d(t, "1000000"))
	high := CalculateIncomeTaxKt(d(t, "1001000"))
	// Every additional franc in the top bracket is taxed at 13%.
	assert.True(t, high.Sub(low).Equal(d(t, "130")), "got %s", high.Sub(low))
}

func TestCalculateVermoegenssteuer_ZeroBelowThreshold(t *testing.T) {
	for _, amount := range []string{"0", "50000", "76999.99", "77000"} {
		got := CalculateVermoegenssteuer(d(t, amount))
		assert.True(t, got.IsZero(), "wealth %s should yield zero, got %s", amount, got)
	}
}

func TestCalculateVermoegenssteuer_Progressive(t *testing.T) {
	// 23000 above the free amount at 0.5 per mille.
	assert.True(t, CalculateVermoegenssteuer(d(t, "100000")).Equal(d(t, "11.5")))

	// Full consumption up to the top bracket.
	at57 := CalculateVermoegenssteuer(d(t, "5700000"))
	assert.True(t, at57.Equal(d(t, "11362.5")), "got %s", at57)

	// Top marginal rate is 3 per mille.
	above := CalculateVermoegenssteuer(d(t, "5701000"))
	assert.True(t, above.Sub(at57).Equal(d(t, "3")), "got %s", above.Sub(at57))
}
