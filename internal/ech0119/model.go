// Package ech0119 maps computed tax returns onto the eCH-0119 v4
// interchange model, validates the result, and serializes it to XML.
package ech0119

import "github.com/shopspring/decimal"

// SchemaVersion is the eCH-0119 major version this model targets.
const SchemaVersion = 4

// Message is the canonical eCH-0119 message.
type Message struct {
	MinorVersion int
	Header       Header
	Content      Content
}

// Header carries delivery metadata for the receiving tax authority.
type Header struct {
	MessageID         string
	TaxPeriod         int
	Source            string
	SourceDescription string
	Canton            string
	TransactionDate   string // ISO date
	PeriodFrom        *string
	PeriodTo          *string
	Extension         HeaderExtension
}

// HeaderExtension is a closed, per-canton header payload. Each registered
// canton contributes exactly one concrete shape.
type HeaderExtension interface {
	isHeaderExtension()
}

// ZHHeaderExtension is the Zurich header payload.
type ZHHeaderExtension struct {
	GemeindeBFS    *int
	Steuergemeinde string
}

func (ZHHeaderExtension) isHeaderExtension() {}

// Content wraps the main form.
type Content struct {
	MainForm MainForm
}

// MainForm aggregates the person, revenue, deduction, calculation, and
// asset sections.
type MainForm struct {
	PersonDataPartner1 *PersonData
	PersonDataPartner2 *PersonData
	Revenue            *Revenue
	Deduction          *Deduction
	RevenueCalculation *RevenueCalculation
	Asset              *Asset
}

// PersonData identifies one taxpayer or partner.
type PersonData struct {
	OfficialName  string
	FirstName     string
	Vn            string // AHV number
	DateOfBirth   string // ISO date
	MaritalStatus *int
	Religion      *int
	Address       *Address
}

// Address is a structured Swiss address.
type Address struct {
	Street         string
	HouseNumber    string
	Town           string
	SwissZipCode   string
	MunicipalityID *int
}

// Revenue holds the income section. All values are moneyType2 (2-decimal)
// and are present only when applicable.
type Revenue struct {
	MainRevenue        *decimal.Decimal
	SideRevenue        *decimal.Decimal
	SecuritiesRevenue  *decimal.Decimal
	InterestRevenue    *decimal.Decimal
	ImputedRentalValue *decimal.Decimal
	TotalRevenue       *decimal.Decimal
}

// Deduction holds the deduction section (moneyType2 values).
type Deduction struct {
	TravelExpenses            *decimal.Decimal
	MealExpenses              *decimal.Decimal
	ShiftWork                 *decimal.Decimal
	WeeklyStay                *decimal.Decimal
	Education                 *decimal.Decimal
	OtherProfessionalExpenses *decimal.Decimal
	SideIncomeExpenses        *decimal.Decimal
	Pillar3a                  *decimal.Decimal
	InsurancePremiums         *decimal.Decimal
	AccidentInsurance         *decimal.Decimal
	Donations                 *decimal.Decimal
	ChildDeduction            *decimal.Decimal
	DebtInterest              *decimal.Decimal
	TotalDeductions           *decimal.Decimal
}

// RevenueCalculation reconciles revenue against deductions (moneyType2).
type RevenueCalculation struct {
	TotalRevenue          *decimal.Decimal
	TotalDeductions       *decimal.Decimal
	NetRevenue            *decimal.Decimal
	AdjustedNetRevenue    *decimal.Decimal
	TaxableRevenueCanton  *decimal.Decimal
	TaxableRevenueFederal *decimal.Decimal
}

// Asset holds the wealth section. Asset values are moneyType1 (whole
// francs).
type Asset struct {
	BankDeposits   *int64
	Cash           *int64
	PreciousMetals *int64
	Securities     *int64
	Vehicles       *int64
	RealEstate     *int64
	Debts          *int64
	TotalAssets    *int64
	TaxableAssets  *int64
}
