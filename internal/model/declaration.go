package model

import "github.com/shopspring/decimal"

// TaxReturn is one declaration for one tax year.
type TaxReturn struct {
	Year int           `json:"year"`
	Data TaxReturnData `json:"data"`
}

// TaxReturnData holds the topical sections of a declaration. Sections are
// independent; any leaf field may be absent, meaning "not yet declared".
type TaxReturnData struct {
	Personalien      Section[PersonalienData]      `json:"personalien,omitempty"`
	Einkommen        Section[EinkommenData]        `json:"einkommen,omitempty"`
	Arbeitsweg       Section[ArbeitswegData]       `json:"arbeitsweg,omitempty"`
	Verpflegung      Section[VerpflegungData]      `json:"verpflegung,omitempty"`
	Schichtarbeit    Section[SchichtarbeitData]    `json:"schichtarbeit,omitempty"`
	Wochenaufenthalt Section[WochenaufenthaltData] `json:"wochenaufenthalt,omitempty"`
	Ausbildung       Section[AusbildungData]       `json:"ausbildung,omitempty"`
	Saeule3a         Section[Saeule3aData]         `json:"saeule3a,omitempty"`
	Versicherung     Section[VersicherungData]     `json:"versicherung,omitempty"`
	Spenden          Section[SpendenData]          `json:"spenden,omitempty"`
	Kinder           Section[KinderData]           `json:"kinder,omitempty"`
	Bankkonten       Section[[]Bankkonto]          `json:"bankkonten,omitempty"`
	Wertschriften    Section[[]Wertschrift]        `json:"wertschriften,omitempty"`
	Bargeld          Section[BargeldData]          `json:"bargeld,omitempty"`
	Liegenschaften   Section[[]Liegenschaft]       `json:"liegenschaften,omitempty"`
	Fahrzeuge        Section[[]Fahrzeug]           `json:"fahrzeuge,omitempty"`
	Schulden         Section[[]Schuld]             `json:"schulden,omitempty"`
}

// UnfinishedSections names the topics the taxpayer opened but never
// finished. Computation still runs over them with zero-value defaults; the
// CLI surfaces the list so an incomplete declaration is not exported
// silently.
func (d TaxReturnData) UnfinishedSections() []string {
	sections := []struct {
		name  string
		state SectionState
	}{
		{"personalien", d.Personalien.State()},
		{"einkommen", d.Einkommen.State()},
		{"arbeitsweg", d.Arbeitsweg.State()},
		{"verpflegung", d.Verpflegung.State()},
		{"schichtarbeit", d.Schichtarbeit.State()},
		{"wochenaufenthalt", d.Wochenaufenthalt.State()},
		{"ausbildung", d.Ausbildung.State()},
		{"saeule3a", d.Saeule3a.State()},
		{"versicherung", d.Versicherung.State()},
		{"spenden", d.Spenden.State()},
		{"kinder", d.Kinder.State()},
		{"bankkonten", d.Bankkonten.State()},
		{"wertschriften", d.Wertschriften.State()},
		{"bargeld", d.Bargeld.State()},
		{"liegenschaften", d.Liegenschaften.State()},
		{"fahrzeuge", d.Fahrzeuge.State()},
		{"schulden", d.Schulden.State()},
	}

	var out []string
	for _, s := range sections {
		if s.state == SectionInProgress {
			out = append(out, s.name)
		}
	}
	return out
}

// PersonalienData carries the tax-relevant personal circumstances declared
// in the form itself (identity fields live on User).
type PersonalienData struct {
	Zivilstand          *string `json:"zivilstand,omitempty"` // "ledig", "verheiratet", ...
	Konfession          *string `json:"konfession,omitempty"` // "reformiert", "roemisch-katholisch", "christkatholisch", "keine"
	KonfessionPartner   *string `json:"konfessionPartner,omitempty"`
	GemeindeBFS         *int    `json:"gemeindeBFS,omitempty"`
	VornamePartner      *string `json:"vornamePartner,omitempty"`
	NachnamePartner     *string `json:"nachnamePartner,omitempty"`
	AhvNummerPartner    *string `json:"ahvNummerPartner,omitempty"`
	GeburtsdatumPartner *string `json:"geburtsdatumPartner,omitempty"` // DD.MM.YYYY
}

// Verheiratet reports whether the declared marital status is married.
func (p PersonalienData) Verheiratet() bool {
	return p.Zivilstand != nil && *p.Zivilstand == "verheiratet"
}

// NettolohnEintrag is one salary certificate (Lohnausweis) entry.
type NettolohnEintrag struct {
	Arbeitgeber string           `json:"arbeitgeber,omitempty"`
	Nettolohn   *decimal.Decimal `json:"nettolohn,omitempty"`
	Person      *int             `json:"person,omitempty"` // 1 or 2; absent = 1
}

// PersonTag returns the partner the entry belongs to, defaulting to 1.
func (e NettolohnEintrag) PersonTag() int {
	if e.Person != nil && *e.Person == 2 {
		return 2
	}
	return 1
}

// EinkommenData is the employment income section.
type EinkommenData struct {
	Nettoloehne []NettolohnEintrag `json:"nettoloehne,omitempty"`
}

// ArbeitswegEintrag is one car/motorcycle commute route.
type ArbeitswegEintrag struct {
	AnzahlArbeitstage *decimal.Decimal `json:"anzahlArbeitstage,omitempty"`
	AnzahlKm          *decimal.Decimal `json:"anzahlKm,omitempty"`
	FahrtenProTag     *decimal.Decimal `json:"fahrtenProTag,omitempty"`
	RappenProKm       *decimal.Decimal `json:"rappenProKm,omitempty"`
}

// ArbeitswegData is the commute deduction section.
type ArbeitswegData struct {
	Autowege  []ArbeitswegEintrag `json:"autowege,omitempty"`
	OevKosten *decimal.Decimal    `json:"oevKosten,omitempty"`
	Velo      *bool               `json:"velo,omitempty"`
}

// VerpflegungData covers meals away from home.
type VerpflegungData struct {
	Arbeitstage  *int  `json:"arbeitstage,omitempty"`
	Verguenstigt *bool `json:"verguenstigt,omitempty"` // employer subsidizes meals
}

// SchichtarbeitData covers shift/night work.
type SchichtarbeitData struct {
	Schichttage *int `json:"schichttage,omitempty"`
}

// WochenaufenthaltData covers weekly-stay costs away from the family home.
type WochenaufenthaltData struct {
	Kosten *decimal.Decimal `json:"kosten,omitempty"`
}

// AusbildungData covers job-related education costs.
type AusbildungData struct {
	Kosten *decimal.Decimal `json:"kosten,omitempty"`
}

// Saeule3aData holds pillar-3a contributions per partner.
type Saeule3aData struct {
	BeitragPerson1 *decimal.Decimal `json:"beitragPerson1,omitempty"`
	BeitragPerson2 *decimal.Decimal `json:"beitragPerson2,omitempty"`
}

// VersicherungData holds insurance premium declarations.
type VersicherungData struct {
	Praemien      *decimal.Decimal `json:"praemien,omitempty"`
	PrivateUnfall *decimal.Decimal `json:"privateUnfall,omitempty"`
}

// Spende is a single donation.
type Spende struct {
	Organisation string           `json:"organisation,omitempty"`
	Betrag       *decimal.Decimal `json:"betrag,omitempty"`
}

// SpendenData is the donations section.
type SpendenData struct {
	Spenden []Spende `json:"spenden,omitempty"`
}

// Kind is one child relevant for the child deduction.
type Kind struct {
	Vorname      string  `json:"vorname,omitempty"`
	Geburtsdatum *string `json:"geburtsdatum,omitempty"` // DD.MM.YYYY
}

// KinderData lists children in and outside the household.
type KinderData struct {
	ImHaushalt []Kind `json:"kinderImHaushalt,omitempty"`
	Ausserhalb []Kind `json:"kinderAusserhalb,omitempty"`
}

// Bankkonto is one bank account with year-end balance and interest.
type Bankkonto struct {
	Bank       string           `json:"bank,omitempty"`
	Iban       string           `json:"iban,omitempty"`
	Kontostand *decimal.Decimal `json:"kontostand,omitempty"`
	Zinsen     *decimal.Decimal `json:"zinsen,omitempty"`
}

// Wertschrift is one securities position.
type Wertschrift struct {
	Bezeichnung string           `json:"bezeichnung,omitempty"`
	Valor       string           `json:"valor,omitempty"`
	Steuerwert  *decimal.Decimal `json:"steuerwert,omitempty"`
	Ertrag      *decimal.Decimal `json:"ertrag,omitempty"`
}

// BargeldData holds cash and precious metal holdings.
type BargeldData struct {
	Bargeld     *decimal.Decimal `json:"bargeld,omitempty"`
	Edelmetalle *decimal.Decimal `json:"edelmetalle,omitempty"`
}

// Liegenschaft is one real-estate position.
type Liegenschaft struct {
	Bezeichnung   string           `json:"bezeichnung,omitempty"`
	Steuerwert    *decimal.Decimal `json:"steuerwert,omitempty"`
	Eigenmietwert *decimal.Decimal `json:"eigenmietwert,omitempty"`
}

// Fahrzeug is one vehicle; its residual value counts toward taxable wealth.
type Fahrzeug struct {
	Bezeichnung string           `json:"bezeichnung,omitempty"`
	Kaufpreis   *decimal.Decimal `json:"kaufpreis,omitempty"`
	Kaufjahr    *int             `json:"kaufjahr,omitempty"`
}

// Schuld is one debt position; interest is deductible, principal reduces wealth.
type Schuld struct {
	Glaeubiger string           `json:"glaeubiger,omitempty"`
	Betrag     *decimal.Decimal `json:"betrag,omitempty"`
	Zinsen     *decimal.Decimal `json:"zinsen,omitempty"`
}
