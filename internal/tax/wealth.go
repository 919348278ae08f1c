package tax

import (
	"github.com/shopspring/decimal"

	"github.com/steuerlink/steuerlink/internal/model"
)

// vehicleBaseYear anchors the declining-balance vehicle valuation.
const vehicleBaseYear = 2023

var vehicleDepreciation = rate("0.6")

// wealthResult holds the asset-side aggregates.
type wealthResult struct {
	Bankguthaben        decimal.Decimal
	Zinsertraege        decimal.Decimal
	Bargeld             decimal.Decimal
	Edelmetalle         decimal.Decimal
	Wertschriften       decimal.Decimal
	Wertschriftenertrag decimal.Decimal
	Fahrzeugwert        decimal.Decimal
	Liegenschaften      decimal.Decimal
	Eigenmietwert       decimal.Decimal
	Schulden            decimal.Decimal
	Total               decimal.Decimal
	Steuerbar           decimal.Decimal
}

func computeWealth(data model.TaxReturnData) wealthResult {
	var res wealthResult

	for _, k := range data.Bankkonten.Data {
		if k.Kontostand != nil {
			res.Bankguthaben = res.Bankguthaben.Add(*k.Kontostand)
		}
		if k.Zinsen != nil {
			res.Zinsertraege = res.Zinsertraege.Add(*k.Zinsen)
		}
	}

	bargeld := data.Bargeld.Data
	if bargeld.Bargeld != nil {
		res.Bargeld = *bargeld.Bargeld
	}
	if bargeld.Edelmetalle != nil {
		res.Edelmetalle = *bargeld.Edelmetalle
	}

	for _, w := range data.Wertschriften.Data {
		if w.Steuerwert != nil {
			res.Wertschriften = res.Wertschriften.Add(*w.Steuerwert)
		}
		if w.Ertrag != nil {
			res.Wertschriftenertrag = res.Wertschriftenertrag.Add(*w.Ertrag)
		}
	}

	for _, f := range data.Fahrzeuge.Data {
		res.Fahrzeugwert = res.Fahrzeugwert.Add(fahrzeugRestwert(f))
	}

	for _, l := range data.Liegenschaften.Data {
		if l.Steuerwert != nil {
			res.Liegenschaften = res.Liegenschaften.Add(*l.Steuerwert)
		}
		if l.Eigenmietwert != nil {
			res.Eigenmietwert = res.Eigenmietwert.Add(*l.Eigenmietwert)
		}
	}

	for _, s := range data.Schulden.Data {
		if s.Betrag != nil {
			res.Schulden = res.Schulden.Add(*s.Betrag)
		}
	}

	res.Total = res.Bankguthaben.
		Add(res.Bargeld).
		Add(res.Edelmetalle).
		Add(res.Wertschriften).
		Add(res.Fahrzeugwert).
		Add(res.Liegenschaften)
	res.Steuerbar = decimal.Max(res.Total.Sub(res.Schulden), decimal.Zero)
	return res
}

// fahrzeugRestwert applies declining-balance depreciation from the purchase
// year to the base year: purchase price * 0.6^(baseYear - purchaseYear).
func fahrzeugRestwert(f model.Fahrzeug) decimal.Decimal {
	if f.Kaufpreis == nil {
		return decimal.Zero
	}
	years := 0
	if f.Kaufjahr != nil && *f.Kaufjahr < vehicleBaseYear {
		years = vehicleBaseYear - *f.Kaufjahr
	}
	value := *f.Kaufpreis
	for i := 0; i < years; i++ {
		value = value.Mul(vehicleDepreciation)
	}
	return value
}
