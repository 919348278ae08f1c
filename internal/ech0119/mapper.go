package ech0119

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/steuerlink/steuerlink/internal/canton"
	"github.com/steuerlink/steuerlink/internal/model"
)

// ahvPattern is the AHV number format XXX.XXXX.XXXX.XX.
var ahvPattern = regexp.MustCompile(`^\d{3}\.\d{4}\.\d{4}\.\d{2}$`)

// Tax years accepted for export.
const (
	minTaxYear = 2020
	maxTaxYear = 2026
)

// declaredDateFormat is the DD.MM.YYYY format used in declarations.
const declaredDateFormat = "02.01.2006"

// houseNumberPattern matches a trailing numeric house-number token,
// optionally with a letter suffix ("Bahnhofstrasse 12a").
var houseNumberPattern = regexp.MustCompile(`^(.*\S)\s+(\d+[a-zA-Z]?)$`)

var maritalStatusCodes = map[string]int{
	"ledig":         1,
	"verheiratet":   2,
	"verwitwet":     3,
	"geschieden":    4,
	"getrennt":      5,
	"partnerschaft": 6,
}

var religionCodes = map[string]int{
	"keine":               0,
	"reformiert":          111,
	"roemisch-katholisch": 121,
	"christkatholisch":    122,
}

// Precheck verifies the export preconditions before any mapping occurs:
// tax year range, AHV number format, and presence of person and address
// fields. It returns a descriptive error on the first violation.
func Precheck(tr model.TaxReturn, user model.User) error {
	if tr.Year < minTaxYear || tr.Year > maxTaxYear {
		return fmt.Errorf("tax year %d outside supported range %d-%d", tr.Year, minTaxYear, maxTaxYear)
	}
	if user.AhvNummer == "" {
		return fmt.Errorf("user has no AHV number")
	}
	if !ahvPattern.MatchString(user.AhvNummer) {
		return fmt.Errorf("AHV number %q does not match format XXX.XXXX.XXXX.XX", user.AhvNummer)
	}
	if user.Vorname == "" || user.Nachname == "" {
		return fmt.Errorf("user first and last name are required for export")
	}
	if user.Strasse == "" || user.Plz == "" || user.Ort == "" {
		return fmt.Errorf("user address (street, zip, town) is required for export")
	}
	return nil
}

// Map transforms a declaration, user identity, and computed totals into the
// canonical eCH-0119 message. The transformation is deterministic and
// side-effect-free; canton-specific extension steps run only when the
// registered handler implements the corresponding capability.
func Map(tr model.TaxReturn, user model.User, computed model.ComputedTaxReturn, registry *canton.Registry, cantonCode string) (*Message, error) {
	msg := &Message{
		MinorVersion: 0,
		Header: Header{
			MessageID:         uuid.NewString(),
			TaxPeriod:         tr.Year,
			Source:            "steuerlink",
			SourceDescription: "steuerlink tax declaration export",
			Canton:            cantonCode,
			TransactionDate:   time.Now().Format("2006-01-02"),
		},
	}

	mf := &msg.Content.MainForm
	mf.PersonDataPartner1 = mapPartner1(user, computed)
	mf.PersonDataPartner2 = mapPartner2(tr.Data.Personalien.Data, computed)
	mf.Revenue = mapRevenue(computed)
	mf.Deduction = mapDeduction(computed)
	mf.RevenueCalculation = mapRevenueCalculation(computed)
	mf.Asset = mapAsset(computed)

	if cfg, ok := registry.Get(cantonCode); ok && cfg.Extension != nil {
		if ext, ok := cfg.Extension.(HeaderExtender); ok {
			if err := ext.ExtendHeader(&msg.Header, tr, user); err != nil {
				return nil, fmt.Errorf("canton %s header extension: %w", cfg.Code, err)
			}
		}
		if ext, ok := cfg.Extension.(MainFormExtender); ok {
			if err := ext.ExtendMainForm(mf, tr, computed); err != nil {
				return nil, fmt.Errorf("canton %s main form extension: %w", cfg.Code, err)
			}
		}
	}

	return msg, nil
}

func mapPartner1(user model.User, computed model.ComputedTaxReturn) *PersonData {
	street, houseNumber := SplitStreet(user.Strasse)
	return &PersonData{
		OfficialName:  user.Nachname,
		FirstName:     user.Vorname,
		Vn:            user.AhvNummer,
		DateOfBirth:   ToISODate(user.Geburtsdatum),
		MaritalStatus: maritalStatusCode(computed.Zivilstand),
		Religion:      religionCode(computed.Konfession),
		Address: &Address{
			Street:         street,
			HouseNumber:    houseNumber,
			Town:           user.Ort,
			SwissZipCode:   user.Plz,
			MunicipalityID: computed.GemeindeBFS,
		},
	}
}

// mapPartner2 emits a second person record only when the declaration names
// a partner.
func mapPartner2(p model.PersonalienData, computed model.ComputedTaxReturn) *PersonData {
	if p.NachnamePartner == nil && p.AhvNummerPartner == nil {
		return nil
	}
	pd := &PersonData{
		MaritalStatus: maritalStatusCode(computed.Zivilstand),
	}
	if p.NachnamePartner != nil {
		pd.OfficialName = *p.NachnamePartner
	}
	if p.VornamePartner != nil {
		pd.FirstName = *p.VornamePartner
	}
	if p.AhvNummerPartner != nil {
		pd.Vn = *p.AhvNummerPartner
	}
	if p.GeburtsdatumPartner != nil {
		pd.DateOfBirth = ToISODate(*p.GeburtsdatumPartner)
	}
	if p.KonfessionPartner != nil {
		pd.Religion = religionCode(*p.KonfessionPartner)
	}
	return pd
}

func mapRevenue(c model.ComputedTaxReturn) *Revenue {
	return &Revenue{
		MainRevenue:        money(c.Haupterwerb),
		SideRevenue:        money(c.Nebenerwerb),
		SecuritiesRevenue:  money(c.Wertschriftenertrag),
		InterestRevenue:    money(c.Zinsertraege),
		ImputedRentalValue: money(c.Eigenmietwert),
		TotalRevenue:       money(c.Gesamteinkuenfte),
	}
}

func mapDeduction(c model.ComputedTaxReturn) *Deduction {
	return &Deduction{
		TravelExpenses:            money(c.FahrtkostenStaat),
		MealExpenses:              money(c.VerpflegungAufArbeit),
		ShiftWork:                 money(c.Schichtarbeit),
		WeeklyStay:                money(c.Wochenaufenthalt),
		Education:                 money(c.InAusbildung),
		OtherProfessionalExpenses: money(c.UebrigeBerufsauslagen),
		SideIncomeExpenses:        money(c.NebenerwerbAuslagen),
		Pillar3a:                  money(c.Saeule3a),
		InsurancePremiums:         money(c.Versicherungspraemie),
		AccidentInsurance:         money(c.PrivateUnfall),
		Donations:                 money(c.Spenden),
		ChildDeduction:            money(c.KinderabzugStaat),
		DebtInterest:              money(c.Schuldzinsen),
		TotalDeductions:           money(c.TotalAbzuegeStaat),
	}
}

func mapRevenueCalculation(c model.ComputedTaxReturn) *RevenueCalculation {
	// Net revenue is a reconciliation value and stays present even when
	// deductions exceed income.
	net := c.Gesamteinkuenfte.Sub(c.TotalAbzuegeStaat).Round(2)
	return &RevenueCalculation{
		TotalRevenue:          money(c.Gesamteinkuenfte),
		TotalDeductions:       money(c.TotalAbzuegeStaat),
		NetRevenue:            &net,
		AdjustedNetRevenue:    money(c.SteuerbaresEinkommenStaat),
		TaxableRevenueCanton:  money(c.SteuerbaresEinkommenStaat),
		TaxableRevenueFederal: money(c.SteuerbaresEinkommenBund),
	}
}

func mapAsset(c model.ComputedTaxReturn) *Asset {
	return &Asset{
		BankDeposits:   money1(c.Bankguthaben),
		Cash:           money1(c.Bargeld),
		PreciousMetals: money1(c.Edelmetalle),
		Securities:     money1(c.WertschriftenVermoegen),
		Vehicles:       money1(c.Fahrzeugwert),
		RealEstate:     money1(c.Liegenschaftenwert),
		Debts:          money1(c.Schulden),
		TotalAssets:    money1(c.TotalVermoegen),
		TaxableAssets:  money1(c.SteuerbaresVermoegen),
	}
}

// money maps a computed amount to an optional moneyType2 value, rounded to
// schema precision. Amounts that are non-positive after rounding are
// omitted per the schema's present-if-applicable convention.
func money(d decimal.Decimal) *decimal.Decimal {
	r := d.Round(2)
	if r.Sign() <= 0 {
		return nil
	}
	return &r
}

// money1 maps a computed amount to an optional whole-franc moneyType1 value.
func money1(d decimal.Decimal) *int64 {
	if d.Sign() <= 0 {
		return nil
	}
	v := d.Round(0).IntPart()
	return &v
}

// SplitStreet splits an address line into street and house number by the
// trailing numeric token. Lines without one stay entirely in the street
// part.
func SplitStreet(line string) (street, houseNumber string) {
	if m := houseNumberPattern.FindStringSubmatch(line); m != nil {
		return m[1], m[2]
	}
	return line, ""
}

// ToISODate converts DD.MM.YYYY to YYYY-MM-DD. Unparseable input is
// returned unchanged so the validator can flag it.
func ToISODate(d string) string {
	t, err := time.Parse(declaredDateFormat, d)
	if err != nil {
		return d
	}
	return t.Format("2006-01-02")
}

func maritalStatusCode(zivilstand string) *int {
	if code, ok := maritalStatusCodes[zivilstand]; ok {
		return &code
	}
	return nil
}

func religionCode(konfession string) *int {
	if code, ok := religionCodes[konfession]; ok {
		return &code
	}
	return nil
}
