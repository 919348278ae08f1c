package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steuerlink/steuerlink/internal/rates"
)

func ratePtr(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	v := d(t, s)
	return &v
}

func testCache(t *testing.T) *rates.Cache {
	t.Helper()
	return rates.NewCache(map[int]rates.MunicipalityTaxRates{
		261: {
			BFSNumber:                    261,
			Name:                         "Zürich",
			BaseRateWithoutChurch:        ratePtr(t, "119"),
			RateWithReformedChurch:       ratePtr(t, "129"),
			RateWithCatholicChurch:       ratePtr(t, "129"),
			RateWithChristCatholicChurch: ratePtr(t, "133"),
			Definitiv:                    true,
		},
		262: {
			BFSNumber:             262,
			Name:                  "Adliswil",
			BaseRateWithoutChurch: ratePtr(t, "97"),
			// no confession rates declared
		},
	}, 0)
}

func intPtr(v int) *int { return &v }

func TestCalculateMunicipalTax_Reference(t *testing.T) {
	got, err := CalculateMunicipalTax(d(t, "1000"), intPtr(261), "keine", testCache(t))
	require.NoError(t, err)
	assert.True(t, got.Equal(d(t, "1190")), "got %s", got)
}

func TestCalculateMunicipalTax_NilBFSDefaultsToReference(t *testing.T) {
	got, err := CalculateMunicipalTax(d(t, "1000"), nil, "keine", testCache(t))
	require.NoError(t, err)
	assert.True(t, got.Equal(d(t, "1190")), "got %s", got)
}

func TestCalculateMunicipalTax_ConfessionRate(t *testing.T) {
	got, err := CalculateMunicipalTax(d(t, "1000"), intPtr(261), "christkatholisch", testCache(t))
	require.NoError(t, err)
	assert.True(t, got.Equal(d(t, "1330")), "got %s", got)
}

func TestCalculateMunicipalTax_MissingRateFallsBack(t *testing.T) {
	// Adliswil declares no reformed rate; fall back to the reference
	// municipality's base rate.
	got, err := CalculateMunicipalTax(d(t, "1000"), intPtr(262), "reformiert", testCache(t))
	require.NoError(t, err)
	assert.True(t, got.Equal(d(t, "1190")), "got %s", got)
}

func TestCalculateMunicipalTax_UnknownBFS(t *testing.T) {
	_, err := CalculateMunicipalTax(d(t, "1000"), intPtr(99999), "keine", testCache(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "99999")
}

func TestCalculateMunicipalTax_NoReferenceFallback(t *testing.T) {
	cache := rates.NewCache(map[int]rates.MunicipalityTaxRates{
		262: {BFSNumber: 262, Name: "Adliswil"},
	}, 0)
	_, err := CalculateMunicipalTax(d(t, "1000"), intPtr(262), "keine", cache)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "262")
}
