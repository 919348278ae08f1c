package ech0119

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/steuerlink/steuerlink/internal/canton"
	"github.com/steuerlink/steuerlink/internal/model"
)

// Severity classifies a validation finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// ValidationResult is one finding of the message validator.
type ValidationResult struct {
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Field    string   `json:"field,omitempty"`
	Severity Severity `json:"severity"`
	XPath    string   `json:"xpath,omitempty"`
}

// ValidationReport aggregates all findings of one validation pass. Warnings
// never affect validity; IsValid is strictly "no error-severity findings".
type ValidationReport struct {
	IsValid      bool               `json:"isValid"`
	Results      []ValidationResult `json:"results"`
	ErrorCount   int                `json:"errorCount"`
	WarningCount int                `json:"warningCount"`
}

func buildReport(results []ValidationResult) ValidationReport {
	report := ValidationReport{Results: results}
	for _, r := range results {
		switch r.Severity {
		case SeverityError:
			report.ErrorCount++
		case SeverityWarning:
			report.WarningCount++
		}
	}
	report.IsValid = report.ErrorCount == 0
	return report
}

// Tolerance for totals reconciliation.
var reconcileTolerance = decimal.RequireFromString("0.01")

// Validate runs the fixed check sequence over a canonical message: schema
// completeness, semantic consistency, canton rules, decimal precision,
// totals reconciliation against the computed return, and the ZH
// municipality range check. Findings are returned, never raised.
func Validate(msg *Message, computed model.ComputedTaxReturn, registry *canton.Registry, logger *zap.Logger) ValidationReport {
	var results []ValidationResult

	results = append(results, checkSchema(msg)...)
	results = append(results, checkSemantics(msg)...)
	results = append(results, checkCanton(msg, registry, logger)...)
	results = append(results, checkPrecision(msg)...)
	results = append(results, checkTotals(msg, computed)...)
	results = append(results, checkZHMunicipality(msg)...)

	return buildReport(results)
}

func checkSchema(msg *Message) []ValidationResult {
	var results []ValidationResult

	if msg.Header.TaxPeriod == 0 {
		results = append(results, ValidationResult{
			Code:     "schema.header.taxPeriod",
			Message:  "header is missing the tax period",
			Field:    "header.taxPeriod",
			Severity: SeverityError,
			XPath:    "/message/header/taxPeriod",
		})
	}
	if msg.Header.Canton == "" {
		results = append(results, ValidationResult{
			Code:     "schema.header.canton",
			Message:  "header is missing the canton",
			Field:    "header.canton",
			Severity: SeverityError,
			XPath:    "/message/header/canton",
		})
	}
	if msg.Header.TransactionDate == "" {
		results = append(results, ValidationResult{
			Code:     "schema.header.transactionDate",
			Message:  "header is missing the transaction date",
			Field:    "header.transactionDate",
			Severity: SeverityError,
			XPath:    "/message/header/transactionDate",
		})
	}

	p1 := msg.Content.MainForm.PersonDataPartner1
	if p1 == nil {
		results = append(results, ValidationResult{
			Code:     "schema.person.partner1",
			Message:  "main form has no first partner record",
			Field:    "mainForm.personDataPartner1",
			Severity: SeverityError,
			XPath:    "/message/content/mainForm/personDataPartner1",
		})
		return results
	}

	if p1.OfficialName == "" || p1.FirstName == "" {
		results = append(results, ValidationResult{
			Code:     "schema.person.name",
			Message:  "first partner is missing official or first name",
			Field:    "personDataPartner1",
			Severity: SeverityError,
			XPath:    "/message/content/mainForm/personDataPartner1",
		})
	}

	results = append(results, checkAhv(p1.Vn, "personDataPartner1")...)
	if p2 := msg.Content.MainForm.PersonDataPartner2; p2 != nil && p2.Vn != "" {
		results = append(results, checkAhv(p2.Vn, "personDataPartner2")...)
	}

	return results
}

func checkAhv(vn, field string) []ValidationResult {
	if vn != "" && ahvPattern.MatchString(vn) {
		return nil
	}
	return []ValidationResult{{
		Code:     "schema.person.vn",
		Message:  fmt.Sprintf("AHV number %q does not match format XXX.XXXX.XXXX.XX", vn),
		Field:    field + ".vn",
		Severity: SeverityError,
		XPath:    "/message/content/mainForm/" + field + "/vn",
	}}
}

func checkSemantics(msg *Message) []ValidationResult {
	var results []ValidationResult

	p1 := msg.Content.MainForm.PersonDataPartner1
	p2 := msg.Content.MainForm.PersonDataPartner2
	if p1 == nil || p1.MaritalStatus == nil {
		return nil
	}

	switch *p1.MaritalStatus {
	case 1:
		if p2 != nil {
			results = append(results, ValidationResult{
				Code:     "semantic.maritalStatus.partner2",
				Message:  "single taxpayer must not have a second partner record",
				Field:    "mainForm.personDataPartner2",
				Severity: SeverityError,
				XPath:    "/message/content/mainForm/personDataPartner2",
			})
		}
	case 2:
		if p2 == nil {
			results = append(results, ValidationResult{
				Code:     "semantic.maritalStatus.partner2Missing",
				Message:  "married taxpayer has no second partner record",
				Field:    "mainForm.personDataPartner2",
				Severity: SeverityWarning,
				XPath:    "/message/content/mainForm/personDataPartner2",
			})
		}
	}
	return results
}

func checkCanton(msg *Message, registry *canton.Registry, logger *zap.Logger) []ValidationResult {
	cfg, ok := registry.Get(msg.Header.Canton)
	if !ok || cfg.Extension == nil {
		return nil
	}
	validator, ok := cfg.Extension.(MessageValidator)
	if !ok {
		logger.Warn("canton handler implements no message validation, skipping",
			zap.String("canton", cfg.Code))
		return nil
	}
	return validator.ValidateMessage(msg)
}

// checkPrecision walks every decimal leaf of the message and rejects values
// with more than 2 decimal places.
func checkPrecision(msg *Message) []ValidationResult {
	var results []ValidationResult
	walkDecimals(reflect.ValueOf(msg).Elem(), "message", func(path string, d decimal.Decimal) {
		hundred := decimal.NewFromInt(100)
		scaled := d.Mul(hundred)
		if !scaled.Equal(scaled.Floor()) {
			results = append(results, ValidationResult{
				Code:     "precision.decimalPlaces",
				Message:  fmt.Sprintf("value %s has more than 2 decimal places", d),
				Field:    path,
				Severity: SeverityError,
				XPath:    "/" + strings.ReplaceAll(path, ".", "/"),
			})
		}
	})
	return results
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

func walkDecimals(v reflect.Value, path string, visit func(string, decimal.Decimal)) {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if !v.IsNil() {
			walkDecimals(v.Elem(), path, visit)
		}
	case reflect.Struct:
		if v.Type() == decimalType {
			visit(path, v.Interface().(decimal.Decimal))
			return
		}
		for i := 0; i < v.NumField(); i++ {
			f := v.Type().Field(i)
			if !f.IsExported() {
				continue
			}
			walkDecimals(v.Field(i), path+"."+lowerFirst(f.Name), visit)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			walkDecimals(v.Index(i), fmt.Sprintf("%s[%d]", path, i), visit)
		}
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// checkTotals reconciles the message totals against the computed return,
// which is the single source of truth for every expected value.
func checkTotals(msg *Message, computed model.ComputedTaxReturn) []ValidationResult {
	var results []ValidationResult

	check := func(code, field string, got *decimal.Decimal, want decimal.Decimal) {
		actual := decimal.Zero
		if got != nil {
			actual = *got
		}
		if actual.Sub(want).Abs().GreaterThan(reconcileTolerance) {
			results = append(results, ValidationResult{
				Code:     code,
				Message:  fmt.Sprintf("%s is %s, computed value is %s", field, actual, want),
				Field:    field,
				Severity: SeverityError,
				XPath:    "/message/content/mainForm/" + strings.ReplaceAll(field, ".", "/"),
			})
		}
	}

	if rev := msg.Content.MainForm.Revenue; rev != nil {
		check("totals.revenue", "revenue.totalRevenue", rev.TotalRevenue, computed.Gesamteinkuenfte)
	}
	if ded := msg.Content.MainForm.Deduction; ded != nil {
		check("totals.deduction", "deduction.totalDeductions", ded.TotalDeductions, computed.TotalAbzuegeStaat)
	}
	if calc := msg.Content.MainForm.RevenueCalculation; calc != nil {
		check("totals.netRevenue", "revenueCalculation.netRevenue", calc.NetRevenue, computed.Gesamteinkuenfte.Sub(computed.TotalAbzuegeStaat))
		check("totals.adjustedNetRevenue", "revenueCalculation.adjustedNetRevenue", calc.AdjustedNetRevenue, computed.SteuerbaresEinkommenStaat)
	}

	return results
}

// checkZHMunicipality warns when a ZH submission carries a municipality
// identifier outside the canton's valid ranges.
func checkZHMunicipality(msg *Message) []ValidationResult {
	if msg.Header.Canton != "ZH" {
		return nil
	}
	p1 := msg.Content.MainForm.PersonDataPartner1
	if p1 == nil || p1.Address == nil || p1.Address.MunicipalityID == nil {
		return nil
	}
	id := *p1.Address.MunicipalityID
	if (id >= 261 && id <= 299) || (id >= 10000 && id <= 19999) {
		return nil
	}
	return []ValidationResult{{
		Code:     "canton.zh.municipalityRange",
		Message:  fmt.Sprintf("municipality id %d outside ZH ranges 261-299 and 10000-19999", id),
		Field:    "personDataPartner1.address.municipalityId",
		Severity: SeverityWarning,
		XPath:    "/message/content/mainForm/personDataPartner1/address/municipalityId",
	}}
}
