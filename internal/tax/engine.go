// Package tax derives income, deductions, and progressive tax amounts from
// raw declaration data. All functions are pure apart from reading the
// municipality rate cache; they hold no state between calls.
package tax

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/steuerlink/steuerlink/internal/model"
	"github.com/steuerlink/steuerlink/internal/rates"
)

// Compute derives a full ComputedTaxReturn from a declaration and the
// municipality rate cache. The result is transient; it is never persisted
// and never mutated after return.
func Compute(data model.TaxReturnData, cache *rates.Cache) (model.ComputedTaxReturn, error) {
	personalien := data.Personalien.Data
	married := personalien.Verheiratet()

	konfession := "keine"
	if personalien.Konfession != nil {
		konfession = *personalien.Konfession
	}

	var c model.ComputedTaxReturn
	if personalien.Zivilstand != nil {
		c.Zivilstand = *personalien.Zivilstand
	}
	c.Konfession = konfession
	c.GemeindeBFS = personalien.GemeindeBFS
	c.Verheiratet = married

	// Income.
	income := computeIncome(data.Einkommen.Data, married)
	c.Haupterwerb = income.Haupterwerb
	c.Nebenerwerb = income.Nebenerwerb
	c.Person1Einkommen = income.Person1
	c.Person2Einkommen = income.Person2
	c.TotalEinkuenfte = income.Total

	wealth := computeWealth(data)
	c.Wertschriftenertrag = wealth.Wertschriftenertrag
	c.Zinsertraege = wealth.Zinsertraege
	c.Eigenmietwert = wealth.Eigenmietwert
	c.Gesamteinkuenfte = c.TotalEinkuenfte.
		Add(c.Wertschriftenertrag).
		Add(c.Zinsertraege).
		Add(c.Eigenmietwert)

	// Deductions.
	c.OevArbeit, c.AutoMotorradArbeitWege, c.VeloArbeit, c.FahrtkostenStaat, c.FahrtkostenBund = fahrtkosten(data.Arbeitsweg.Data)
	c.VerpflegungAufArbeit = verpflegung(data.Verpflegung.Data)
	c.Schichtarbeit = schichtarbeit(data.Schichtarbeit.Data)
	if k := data.Wochenaufenthalt.Data.Kosten; k != nil {
		c.Wochenaufenthalt = *k
	}
	if k := data.Ausbildung.Data.Kosten; k != nil {
		c.InAusbildung = *k
	}
	c.UebrigeBerufsauslagen = uebrigeBerufsauslagen(c.Haupterwerb)
	c.NebenerwerbAuslagen = nebenerwerbAuslagen(c.Nebenerwerb)
	c.Saeule3a = saeule3a(data.Saeule3a.Data, married)

	hatVorsorge := c.Saeule3a.Sign() > 0
	c.Versicherungspraemie, c.VersicherungspraemieBund, c.PrivateUnfall = versicherung(data.Versicherung.Data, hatVorsorge)

	c.KinderabzugStaat, c.KinderabzugBund = kinderabzug(data.Kinder.Data)
	c.Schuldzinsen = schuldzinsen(data.Schulden.Data)

	// Donations are capped against taxable income after the other
	// deductions, so total those first.
	vorSpendenStaat := c.FahrtkostenStaat.
		Add(c.VerpflegungAufArbeit).
		Add(c.Schichtarbeit).
		Add(c.Wochenaufenthalt).
		Add(c.InAusbildung).
		Add(c.UebrigeBerufsauslagen).
		Add(c.NebenerwerbAuslagen).
		Add(c.Saeule3a).
		Add(c.Versicherungspraemie).
		Add(c.PrivateUnfall).
		Add(c.KinderabzugStaat).
		Add(c.Schuldzinsen)
	vorSpendenBund := c.FahrtkostenBund.
		Add(c.VerpflegungAufArbeit).
		Add(c.Schichtarbeit).
		Add(c.Wochenaufenthalt).
		Add(c.InAusbildung).
		Add(c.UebrigeBerufsauslagen).
		Add(c.NebenerwerbAuslagen).
		Add(c.Saeule3a).
		Add(c.VersicherungspraemieBund).
		Add(c.PrivateUnfall).
		Add(c.KinderabzugBund).
		Add(c.Schuldzinsen)

	c.Spenden = spenden(data.Spenden.Data, c.Gesamteinkuenfte.Sub(vorSpendenStaat))

	c.TotalAbzuegeStaat = vorSpendenStaat.Add(c.Spenden)
	c.TotalAbzuegeBund = vorSpendenBund.Add(c.Spenden)
	c.SteuerbaresEinkommenStaat = decimal.Max(c.Gesamteinkuenfte.Sub(c.TotalAbzuegeStaat), decimal.Zero)
	c.SteuerbaresEinkommenBund = decimal.Max(c.Gesamteinkuenfte.Sub(c.TotalAbzuegeBund), decimal.Zero)

	// Wealth.
	c.Bankguthaben = wealth.Bankguthaben
	c.Bargeld = wealth.Bargeld
	c.Edelmetalle = wealth.Edelmetalle
	c.WertschriftenVermoegen = wealth.Wertschriften
	c.Fahrzeugwert = wealth.Fahrzeugwert
	c.Liegenschaftenwert = wealth.Liegenschaften
	c.Schulden = wealth.Schulden
	c.TotalVermoegen = wealth.Total
	c.SteuerbaresVermoegen = wealth.Steuerbar

	// Tax amounts.
	c.EinkommenssteuerBund = EinkommenssteuerBundCalc(c.SteuerbaresEinkommenBund)
	c.EinkommenssteuerStaatBasis = CalculateIncomeTaxKt(c.SteuerbaresEinkommenStaat)
	c.EinkommenssteuerStaat = c.EinkommenssteuerStaatBasis.
		Mul(cantonalCoefficient).
		Mul(religionsMultiplikator(konfession))

	fuss, err := ResolveSteuerfuss(c.GemeindeBFS, konfession, cache)
	if err != nil {
		return model.ComputedTaxReturn{}, fmt.Errorf("resolving municipal rate: %w", err)
	}
	c.Steuerfuss = fuss
	c.Gemeindesteuer = c.EinkommenssteuerStaat.Mul(fuss).Div(dec(100))

	c.Vermoegenssteuer = CalculateVermoegenssteuer(c.SteuerbaresVermoegen)

	c.TotalSteuern = c.EinkommenssteuerBund.
		Add(c.EinkommenssteuerStaat).
		Add(c.Gemeindesteuer).
		Add(c.Vermoegenssteuer)

	return c, nil
}

// Summary is the caller-facing roll-up of one computation run.
type Summary struct {
	GrossIncome      decimal.Decimal `json:"grossIncome"`
	DeductableAmount decimal.Decimal `json:"deductableAmount"`
	TaxableIncome    decimal.Decimal `json:"taxableIncome"`
	FederalTax       decimal.Decimal `json:"federalTax"`
	CantonalTax      decimal.Decimal `json:"cantonalTax"`
	MunicipalTax     decimal.Decimal `json:"municipalTax"`
	WealthTax        decimal.Decimal `json:"wealthTax"`
	TotalTax         decimal.Decimal `json:"totalTax"`
}

// Summarize rolls a ComputedTaxReturn up into the summary shape. The
// taxable income is defined as gross income minus deductions, so the
// identity taxableIncome == grossIncome - deductableAmount always holds.
func Summarize(c model.ComputedTaxReturn) Summary {
	return Summary{
		GrossIncome:      c.Gesamteinkuenfte,
		DeductableAmount: c.TotalAbzuegeStaat,
		TaxableIncome:    c.Gesamteinkuenfte.Sub(c.TotalAbzuegeStaat),
		FederalTax:       c.EinkommenssteuerBund,
		CantonalTax:      c.EinkommenssteuerStaat,
		MunicipalTax:     c.Gemeindesteuer,
		WealthTax:        c.Vermoegenssteuer,
		TotalTax:         c.TotalSteuern,
	}
}
