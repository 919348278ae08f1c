package tax

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/steuerlink/steuerlink/internal/rates"
)

// ReferenceBFS is the municipality whose base rate serves as the fallback
// when a municipality has no usable rate for the requested confession.
const ReferenceBFS = 261

// ResolveSteuerfuss looks up the municipal tax multiplier (percent) for a
// BFS number and confession. A nil BFS number resolves to the reference
// municipality. A known municipality with a missing or zero rate falls back
// to the reference municipality's base rate; an unknown BFS number is an
// error naming the number.
func ResolveSteuerfuss(bfs *int, konfession string, cache *rates.Cache) (decimal.Decimal, error) {
	effective := ReferenceBFS
	if bfs != nil {
		effective = *bfs
	}

	m, ok := cache.Get(effective)
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown municipality BFS number %d", effective)
	}

	fuss := steuerfussFor(m, konfession)
	if fuss == nil || fuss.Sign() == 0 {
		ref, ok := cache.Get(ReferenceBFS)
		if !ok {
			return decimal.Zero, fmt.Errorf("no rate for municipality BFS %d and reference municipality BFS %d not found", effective, ReferenceBFS)
		}
		fuss = ref.BaseRateWithoutChurch
	}

	if fuss == nil || fuss.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("resolved steuerfuss for municipality BFS %d is invalid", effective)
	}
	return *fuss, nil
}

// CalculateMunicipalTax applies the resolved Steuerfuss to the cantonal tax.
func CalculateMunicipalTax(cantonalTax decimal.Decimal, bfs *int, konfession string, cache *rates.Cache) (decimal.Decimal, error) {
	fuss, err := ResolveSteuerfuss(bfs, konfession, cache)
	if err != nil {
		return decimal.Zero, err
	}
	return cantonalTax.Mul(fuss).Div(dec(100)), nil
}

func steuerfussFor(m rates.MunicipalityTaxRates, konfession string) *decimal.Decimal {
	switch konfession {
	case "reformiert":
		return m.RateWithReformedChurch
	case "roemisch-katholisch":
		return m.RateWithCatholicChurch
	case "christkatholisch":
		return m.RateWithChristCatholicChurch
	default:
		return m.BaseRateWithoutChurch
	}
}

// religionsMultiplikator scales the cantonal tax by confession.
func religionsMultiplikator(konfession string) decimal.Decimal {
	switch konfession {
	case "reformiert", "roemisch-katholisch":
		return rate("1.10")
	case "christkatholisch":
		return rate("1.14")
	default:
		return dec(1)
	}
}
