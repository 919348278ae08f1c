package ech0119

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Fixed namespace declarations of the eCH-0119 v4 schema.
const (
	nsECH0119 = "http://www.ech.ch/xmlns/eCH-0119/4"
	nsECH0007 = "http://www.ech.ch/xmlns/eCH-0007/6"
	nsECH0011 = "http://www.ech.ch/xmlns/eCH-0011/8"
	nsECH0044 = "http://www.ech.ch/xmlns/eCH-0044/4"
	nsECH0046 = "http://www.ech.ch/xmlns/eCH-0046/4"
	nsECH0097 = "http://www.ech.ch/xmlns/eCH-0097/3"
)

// The xml* structs mirror the canonical model with the element order the
// schema dictates. Absent optional fields stay nil and produce no element.

type xmlMessage struct {
	XMLName      xml.Name   `xml:"message"`
	Xmlns        string     `xml:"xmlns,attr"`
	XmlnsECH0007 string     `xml:"xmlns:eCH-0007,attr"`
	XmlnsECH0011 string     `xml:"xmlns:eCH-0011,attr"`
	XmlnsECH0044 string     `xml:"xmlns:eCH-0044,attr"`
	XmlnsECH0046 string     `xml:"xmlns:eCH-0046,attr"`
	XmlnsECH0097 string     `xml:"xmlns:eCH-0097,attr"`
	MinorVersion int        `xml:"minorVersion,attr"`
	Header       xmlHeader  `xml:"header"`
	Content      xmlContent `xml:"content"`
}

type xmlHeader struct {
	MessageID         string       `xml:"messageId"`
	TaxPeriod         int          `xml:"taxPeriod"`
	PeriodFrom        *string      `xml:"periodFrom,omitempty"`
	PeriodTo          *string      `xml:"periodTo,omitempty"`
	Canton            string       `xml:"canton"`
	Source            string       `xml:"source"`
	SourceDescription string       `xml:"sourceDescription,omitempty"`
	TransactionDate   string       `xml:"transactionDate"`
	Extension         *xmlZHHeader `xml:"cantonExtension,omitempty"`
}

type xmlZHHeader struct {
	Canton         string  `xml:"canton"`
	MunicipalityID *int    `xml:"municipalityId,omitempty"`
	Steuergemeinde *string `xml:"steuergemeinde,omitempty"`
}

type xmlContent struct {
	MainForm xmlMainForm `xml:"mainForm"`
}

type xmlMainForm struct {
	PersonDataPartner1 *xmlPersonData         `xml:"personDataPartner1,omitempty"`
	PersonDataPartner2 *xmlPersonData         `xml:"personDataPartner2,omitempty"`
	Revenue            *xmlRevenue            `xml:"revenue,omitempty"`
	Deduction          *xmlDeduction          `xml:"deduction,omitempty"`
	RevenueCalculation *xmlRevenueCalculation `xml:"revenueCalculation,omitempty"`
	Asset              *xmlAsset              `xml:"asset,omitempty"`
}

type xmlPersonData struct {
	OfficialName  string      `xml:"officialName,omitempty"`
	FirstName     string      `xml:"firstName,omitempty"`
	Vn            string      `xml:"vn,omitempty"`
	DateOfBirth   string      `xml:"dateOfBirth,omitempty"`
	MaritalStatus *int        `xml:"maritalStatus,omitempty"`
	Religion      *int        `xml:"religion,omitempty"`
	Address       *xmlAddress `xml:"address,omitempty"`
}

type xmlAddress struct {
	Street         string `xml:"street,omitempty"`
	HouseNumber    string `xml:"houseNumber,omitempty"`
	Town           string `xml:"town,omitempty"`
	SwissZipCode   string `xml:"swissZipCode,omitempty"`
	MunicipalityID *int   `xml:"municipalityId,omitempty"`
}

type xmlRevenue struct {
	MainRevenue        *string `xml:"mainRevenue,omitempty"`
	SideRevenue        *string `xml:"sideRevenue,omitempty"`
	SecuritiesRevenue  *string `xml:"securitiesRevenue,omitempty"`
	InterestRevenue    *string `xml:"interestRevenue,omitempty"`
	ImputedRentalValue *string `xml:"imputedRentalValue,omitempty"`
	TotalRevenue       *string `xml:"totalRevenue,omitempty"`
}

type xmlDeduction struct {
	TravelExpenses            *string `xml:"travelExpenses,omitempty"`
	MealExpenses              *string `xml:"mealExpenses,omitempty"`
	ShiftWork                 *string `xml:"shiftWork,omitempty"`
	WeeklyStay                *string `xml:"weeklyStay,omitempty"`
	Education                 *string `xml:"education,omitempty"`
	OtherProfessionalExpenses *string `xml:"otherProfessionalExpenses,omitempty"`
	SideIncomeExpenses        *string `xml:"sideIncomeExpenses,omitempty"`
	Pillar3a                  *string `xml:"pillar3a,omitempty"`
	InsurancePremiums         *string `xml:"insurancePremiums,omitempty"`
	AccidentInsurance         *string `xml:"accidentInsurance,omitempty"`
	Donations                 *string `xml:"donations,omitempty"`
	ChildDeduction            *string `xml:"childDeduction,omitempty"`
	DebtInterest              *string `xml:"debtInterest,omitempty"`
	TotalDeductions           *string `xml:"totalDeductions,omitempty"`
}

type xmlRevenueCalculation struct {
	TotalRevenue          *string `xml:"totalRevenue,omitempty"`
	TotalDeductions       *string `xml:"totalDeductions,omitempty"`
	NetRevenue            *string `xml:"netRevenue,omitempty"`
	AdjustedNetRevenue    *string `xml:"adjustedNetRevenue,omitempty"`
	TaxableRevenueCanton  *string `xml:"taxableRevenueCanton,omitempty"`
	TaxableRevenueFederal *string `xml:"taxableRevenueFederal,omitempty"`
}

type xmlAsset struct {
	BankDeposits   *string `xml:"bankDeposits,omitempty"`
	Cash           *string `xml:"cash,omitempty"`
	PreciousMetals *string `xml:"preciousMetals,omitempty"`
	Securities     *string `xml:"securities,omitempty"`
	Vehicles       *string `xml:"vehicles,omitempty"`
	RealEstate     *string `xml:"realEstate,omitempty"`
	Debts          *string `xml:"debts,omitempty"`
	TotalAssets    *string `xml:"totalAssets,omitempty"`
	TaxableAssets  *string `xml:"taxableAssets,omitempty"`
}

// GenerateXML serializes a canonical message into the namespaced eCH-0119
// document.
func GenerateXML(msg *Message) (string, error) {
	doc := xmlMessage{
		Xmlns:        nsECH0119,
		XmlnsECH0007: nsECH0007,
		XmlnsECH0011: nsECH0011,
		XmlnsECH0044: nsECH0044,
		XmlnsECH0046: nsECH0046,
		XmlnsECH0097: nsECH0097,
		MinorVersion: msg.MinorVersion,
		Header:       buildHeader(msg.Header),
		Content: xmlContent{
			MainForm: buildMainForm(msg.Content.MainForm),
		},
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling eCH-0119 message: %w", err)
	}
	return xml.Header + string(out) + "\n", nil
}

func buildHeader(h Header) xmlHeader {
	out := xmlHeader{
		MessageID:         h.MessageID,
		TaxPeriod:         h.TaxPeriod,
		PeriodFrom:        h.PeriodFrom,
		PeriodTo:          h.PeriodTo,
		Canton:            h.Canton,
		Source:            h.Source,
		SourceDescription: h.SourceDescription,
		TransactionDate:   h.TransactionDate,
	}
	if ext, ok := h.Extension.(ZHHeaderExtension); ok {
		zh := &xmlZHHeader{Canton: "ZH", MunicipalityID: ext.GemeindeBFS}
		if ext.Steuergemeinde != "" {
			zh.Steuergemeinde = &ext.Steuergemeinde
		}
		out.Extension = zh
	}
	return out
}

func buildMainForm(mf MainForm) xmlMainForm {
	out := xmlMainForm{}
	if mf.PersonDataPartner1 != nil {
		out.PersonDataPartner1 = buildPersonData(*mf.PersonDataPartner1)
	}
	if mf.PersonDataPartner2 != nil {
		out.PersonDataPartner2 = buildPersonData(*mf.PersonDataPartner2)
	}
	if mf.Revenue != nil {
		out.Revenue = buildRevenue(*mf.Revenue)
	}
	if mf.Deduction != nil {
		out.Deduction = buildDeduction(*mf.Deduction)
	}
	if mf.RevenueCalculation != nil {
		out.RevenueCalculation = buildRevenueCalculation(*mf.RevenueCalculation)
	}
	if mf.Asset != nil {
		out.Asset = buildAsset(*mf.Asset)
	}
	return out
}

func buildPersonData(p PersonData) *xmlPersonData {
	out := &xmlPersonData{
		OfficialName:  p.OfficialName,
		FirstName:     p.FirstName,
		Vn:            p.Vn,
		DateOfBirth:   p.DateOfBirth,
		MaritalStatus: p.MaritalStatus,
		Religion:      p.Religion,
	}
	if p.Address != nil {
		out.Address = &xmlAddress{
			Street:         p.Address.Street,
			HouseNumber:    p.Address.HouseNumber,
			Town:           p.Address.Town,
			SwissZipCode:   p.Address.SwissZipCode,
			MunicipalityID: p.Address.MunicipalityID,
		}
	}
	return out
}

func buildRevenue(r Revenue) *xmlRevenue {
	return &xmlRevenue{
		MainRevenue:        money2String(r.MainRevenue),
		SideRevenue:        money2String(r.SideRevenue),
		SecuritiesRevenue:  money2String(r.SecuritiesRevenue),
		InterestRevenue:    money2String(r.InterestRevenue),
		ImputedRentalValue: money2String(r.ImputedRentalValue),
		TotalRevenue:       money2String(r.TotalRevenue),
	}
}

func buildDeduction(d Deduction) *xmlDeduction {
	return &xmlDeduction{
		TravelExpenses:            money2String(d.TravelExpenses),
		MealExpenses:              money2String(d.MealExpenses),
		ShiftWork:                 money2String(d.ShiftWork),
		WeeklyStay:                money2String(d.WeeklyStay),
		Education:                 money2String(d.Education),
		OtherProfessionalExpenses: money2String(d.OtherProfessionalExpenses),
		SideIncomeExpenses:        money2String(d.SideIncomeExpenses),
		Pillar3a:                  money2String(d.Pillar3a),
		InsurancePremiums:         money2String(d.InsurancePremiums),
		AccidentInsurance:         money2String(d.AccidentInsurance),
		Donations:                 money2String(d.Donations),
		ChildDeduction:            money2String(d.ChildDeduction),
		DebtInterest:              money2String(d.DebtInterest),
		TotalDeductions:           money2String(d.TotalDeductions),
	}
}

func buildRevenueCalculation(c RevenueCalculation) *xmlRevenueCalculation {
	return &xmlRevenueCalculation{
		TotalRevenue:          money2String(c.TotalRevenue),
		TotalDeductions:       money2String(c.TotalDeductions),
		NetRevenue:            money2String(c.NetRevenue),
		AdjustedNetRevenue:    money2String(c.AdjustedNetRevenue),
		TaxableRevenueCanton:  money2String(c.TaxableRevenueCanton),
		TaxableRevenueFederal: money2String(c.TaxableRevenueFederal),
	}
}

func buildAsset(a Asset) *xmlAsset {
	return &xmlAsset{
		BankDeposits:   money1String(a.BankDeposits),
		Cash:           money1String(a.Cash),
		PreciousMetals: money1String(a.PreciousMetals),
		Securities:     money1String(a.Securities),
		Vehicles:       money1String(a.Vehicles),
		RealEstate:     money1String(a.RealEstate),
		Debts:          money1String(a.Debts),
		TotalAssets:    money1String(a.TotalAssets),
		TaxableAssets:  money1String(a.TaxableAssets),
	}
}

// money2String renders a moneyType2 value with exactly two decimals.
func money2String(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}

// money1String renders a whole-franc moneyType1 value.
func money1String(v *int64) *string {
	if v == nil {
		return nil
	}
	s := strconv.FormatInt(*v, 10)
	return &s
}
