package model

import "github.com/shopspring/decimal"

// ComputedTaxReturn is the flat result of one computation run. It is produced
// fresh on every call and never mutated afterwards; rounding to schema
// precision happens in the export pipeline, not here.
type ComputedTaxReturn struct {
	// Circumstances resolved from the declaration.
	Zivilstand  string `json:"zivilstand,omitempty"`
	Konfession  string `json:"konfession,omitempty"`
	GemeindeBFS *int   `json:"gemeindeBFS,omitempty"`
	Verheiratet bool   `json:"verheiratet"`

	// Income.
	Haupterwerb         decimal.Decimal `json:"haupterwerb"`
	Nebenerwerb         decimal.Decimal `json:"nebenerwerb"`
	Person1Einkommen    decimal.Decimal `json:"person1Einkommen"`
	Person2Einkommen    decimal.Decimal `json:"person2Einkommen"`
	TotalEinkuenfte     decimal.Decimal `json:"totalEinkuenfte"`
	Wertschriftenertrag decimal.Decimal `json:"wertschriftenertrag"`
	Zinsertraege        decimal.Decimal `json:"zinsertraege"`
	Eigenmietwert       decimal.Decimal `json:"eigenmietwert"`
	Gesamteinkuenfte    decimal.Decimal `json:"gesamteinkuenfte"`

	// Deductions, individual positions.
	OevArbeit                decimal.Decimal `json:"oevArbeit"`
	AutoMotorradArbeitWege   decimal.Decimal `json:"autoMotorradArbeitWege"`
	VeloArbeit               decimal.Decimal `json:"veloArbeit"`
	FahrtkostenStaat         decimal.Decimal `json:"fahrtkostenStaat"`
	FahrtkostenBund          decimal.Decimal `json:"fahrtkostenBund"`
	VerpflegungAufArbeit     decimal.Decimal `json:"verpflegungAufArbeit"`
	Schichtarbeit            decimal.Decimal `json:"schichtarbeit"`
	Wochenaufenthalt         decimal.Decimal `json:"wochenaufenthalt"`
	InAusbildung             decimal.Decimal `json:"inAusbildung"`
	UebrigeBerufsauslagen    decimal.Decimal `json:"uebrigeBerufsauslagen"`
	NebenerwerbAuslagen      decimal.Decimal `json:"nebenerwerbAuslagen"`
	Saeule3a                 decimal.Decimal `json:"saeule3a"`
	Versicherungspraemie     decimal.Decimal `json:"versicherungspraemie"`
	VersicherungspraemieBund decimal.Decimal `json:"versicherungspraemieBund"`
	PrivateUnfall            decimal.Decimal `json:"privateUnfall"`
	Spenden                  decimal.Decimal `json:"spenden"`
	KinderabzugStaat         decimal.Decimal `json:"kinderabzugStaat"`
	KinderabzugBund          decimal.Decimal `json:"kinderabzugBund"`
	Schuldzinsen             decimal.Decimal `json:"schuldzinsen"`

	// Deduction totals and taxable income.
	TotalAbzuegeStaat         decimal.Decimal `json:"totalAbzuegeStaat"`
	TotalAbzuegeBund          decimal.Decimal `json:"totalAbzuegeBund"`
	SteuerbaresEinkommenStaat decimal.Decimal `json:"steuerbaresEinkommenStaat"`
	SteuerbaresEinkommenBund  decimal.Decimal `json:"steuerbaresEinkommenBund"`

	// Wealth.
	Bankguthaben           decimal.Decimal `json:"bankguthaben"`
	Bargeld                decimal.Decimal `json:"bargeld"`
	Edelmetalle            decimal.Decimal `json:"edelmetalle"`
	WertschriftenVermoegen decimal.Decimal `json:"wertschriftenVermoegen"`
	Fahrzeugwert           decimal.Decimal `json:"fahrzeugwert"`
	Liegenschaftenwert     decimal.Decimal `json:"liegenschaftenwert"`
	Schulden               decimal.Decimal `json:"schulden"`
	TotalVermoegen         decimal.Decimal `json:"totalVermoegen"`
	SteuerbaresVermoegen   decimal.Decimal `json:"steuerbaresVermoegen"`

	// Tax amounts.
	EinkommenssteuerBund       decimal.Decimal `json:"einkommenssteuerBund"`
	EinkommenssteuerStaatBasis decimal.Decimal `json:"einkommenssteuerStaatBasis"`
	EinkommenssteuerStaat      decimal.Decimal `json:"einkommenssteuerStaat"`
	Steuerfuss                 decimal.Decimal `json:"steuerfuss"`
	Gemeindesteuer             decimal.Decimal `json:"gemeindesteuer"`
	Vermoegenssteuer           decimal.Decimal `json:"vermoegenssteuer"`
	TotalSteuern               decimal.Decimal `json:"totalSteuern"`
}
