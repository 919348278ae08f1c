package tax

import (
	"github.com/shopspring/decimal"

	"github.com/steuerlink/steuerlink/internal/model"
)

// Deduction caps and flat amounts, in CHF.
var (
	maxFahrtkostenBund  = dec(3200)
	maxFahrtkostenStaat = dec(5200)
	veloPauschale       = dec(700)

	verpflegungProTag             = dec(15)
	verpflegungProTagVerguenstigt = rate("7.50")
	maxVerpflegung                = dec(3200)

	schichtProTag    = dec(15)
	maxSchichtarbeit = dec(3200)

	berufsauslagenSatz = rate("0.03")
	minBerufsauslagen  = dec(2000)
	maxBerufsauslagen  = dec(4000)

	nebenerwerbSatz = rate("0.2")
	minNebenerwerb  = dec(800)
	maxNebenerwerb  = dec(2400)

	maxSaeule3aProPerson = dec(7258)

	// Insurance premium caps: the lower cap applies when pillar 2/3a
	// contributions exist, the higher one when they do not.
	maxVersicherungStaatMitVorsorge  = dec(2900)
	maxVersicherungStaatOhneVorsorge = dec(4350)
	maxVersicherungBundMitVorsorge   = dec(1800)
	maxVersicherungBundOhneVorsorge  = dec(2700)

	minSpende        = dec(100)
	spendenDeckel    = rate("0.2") // of taxable income before donations
	kinderabzugStaat = dec(9300)
	kinderabzugBund  = dec(6800)
)

// fahrtkosten computes the commute deduction components and the jointly
// capped federal/cantonal totals.
func fahrtkosten(data model.ArbeitswegData) (oev, auto, velo, staat, bund decimal.Decimal) {
	if data.OevKosten != nil {
		oev = *data.OevKosten
	}

	for _, w := range data.Autowege {
		if w.AnzahlArbeitstage == nil || w.AnzahlKm == nil || w.FahrtenProTag == nil || w.RappenProKm == nil {
			continue
		}
		auto = auto.Add(w.AnzahlArbeitstage.
			Mul(*w.AnzahlKm).
			Mul(*w.FahrtenProTag).
			Mul(w.RappenProKm.Div(dec(100))))
	}

	if data.Velo != nil && *data.Velo {
		velo = veloPauschale
	}

	total := oev.Add(auto).Add(velo)
	staat = decimal.Min(total, maxFahrtkostenStaat)
	bund = decimal.Min(total, maxFahrtkostenBund)
	return oev, auto, velo, staat, bund
}

// verpflegung computes the meal deduction: a per-day flat amount, halved
// when the employer subsidizes meals.
func verpflegung(data model.VerpflegungData) decimal.Decimal {
	if data.Arbeitstage == nil || *data.Arbeitstage <= 0 {
		return decimal.Zero
	}
	perDay := verpflegungProTag
	if data.Verguenstigt != nil && *data.Verguenstigt {
		perDay = verpflegungProTagVerguenstigt
	}
	return decimal.Min(perDay.Mul(dec(int64(*data.Arbeitstage))), maxVerpflegung)
}

func schichtarbeit(data model.SchichtarbeitData) decimal.Decimal {
	if data.Schichttage == nil || *data.Schichttage <= 0 {
		return decimal.Zero
	}
	return decimal.Min(schichtProTag.Mul(dec(int64(*data.Schichttage))), maxSchichtarbeit)
}

// uebrigeBerufsauslagen is the flat professional-expenses deduction derived
// from the main income.
func uebrigeBerufsauslagen(haupterwerb decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Min(maxBerufsauslagen, haupterwerb.Mul(berufsauslagenSatz)), minBerufsauslagen)
}

// nebenerwerbAuslagen is the side-income expense deduction, zero when there
// is no side income.
func nebenerwerbAuslagen(nebenerwerb decimal.Decimal) decimal.Decimal {
	if nebenerwerb.Sign() <= 0 {
		return decimal.Zero
	}
	return decimal.Max(decimal.Min(nebenerwerb.Mul(nebenerwerbSatz), maxNebenerwerb), minNebenerwerb)
}

// saeule3a caps pillar-3a contributions per person; married filers get
// independent caps for each partner.
func saeule3a(data model.Saeule3aData, married bool) decimal.Decimal {
	total := decimal.Zero
	if data.BeitragPerson1 != nil {
		total = total.Add(decimal.Min(*data.BeitragPerson1, maxSaeule3aProPerson))
	}
	if married && data.BeitragPerson2 != nil {
		total = total.Add(decimal.Min(*data.BeitragPerson2, maxSaeule3aProPerson))
	}
	return total
}

// versicherung caps declared insurance premiums. The cap depends on whether
// pension (pillar 2/3a) contributions exist.
func versicherung(data model.VersicherungData, hatVorsorge bool) (staat, bund, privateUnfall decimal.Decimal) {
	praemien := decimal.Zero
	if data.Praemien != nil {
		praemien = *data.Praemien
	}

	capStaat, capBund := maxVersicherungStaatOhneVorsorge, maxVersicherungBundOhneVorsorge
	if hatVorsorge {
		capStaat, capBund = maxVersicherungStaatMitVorsorge, maxVersicherungBundMitVorsorge
	}
	staat = decimal.Min(praemien, capStaat)
	bund = decimal.Min(praemien, capBund)

	if data.PrivateUnfall != nil {
		privateUnfall = *data.PrivateUnfall
	}
	return staat, bund, privateUnfall
}

// spenden sums donations of at least the minimum gift size and caps the
// total at a share of taxable income before donations.
func spenden(data model.SpendenData, taxableBeforeDonations decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, s := range data.Spenden {
		if s.Betrag == nil || s.Betrag.LessThan(minSpende) {
			continue
		}
		total = total.Add(*s.Betrag)
	}
	deckel := decimal.Max(taxableBeforeDonations, decimal.Zero).Mul(spendenDeckel)
	return decimal.Min(total, deckel)
}

// kinderabzug is the linear per-child deduction over both child lists.
func kinderabzug(data model.KinderData) (staat, bund decimal.Decimal) {
	n := dec(int64(len(data.ImHaushalt) + len(data.Ausserhalb)))
	return kinderabzugStaat.Mul(n), kinderabzugBund.Mul(n)
}

// schuldzinsen sums declared debt interest.
func schuldzinsen(schulden []model.Schuld) decimal.Decimal {
	total := decimal.Zero
	for _, s := range schulden {
		if s.Zinsen != nil {
			total = total.Add(*s.Zinsen)
		}
	}
	return total
}
