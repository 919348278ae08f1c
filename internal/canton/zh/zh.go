// Package zh implements the Zurich canton extension for eCH-0119 exports.
package zh

import (
	"github.com/steuerlink/steuerlink/internal/canton"
	"github.com/steuerlink/steuerlink/internal/ech0119"
	"github.com/steuerlink/steuerlink/internal/model"
)

// Handler implements the Zurich subset of the export capabilities.
type Handler struct{}

var documentTypeCodes = map[string]string{
	"lohnausweis":         "ZH-LA",
	"saeule3a":            "ZH-3A",
	"wertschriften":       "ZH-WV",
	"spendenbestaetigung": "ZH-SP",
}

var requiredDocuments = []string{
	"lohnausweis",
	"saeule3a",
	"wertschriften",
}

// ExtendHeader attaches the ZH header payload with the taxpayer's
// municipality.
func (Handler) ExtendHeader(h *ech0119.Header, tr model.TaxReturn, _ model.User) error {
	p := tr.Data.Personalien.Data
	h.Extension = ech0119.ZHHeaderExtension{
		GemeindeBFS: p.GemeindeBFS,
	}
	return nil
}

// ValidateMessage requires a municipality identifier on ZH submissions.
func (Handler) ValidateMessage(msg *ech0119.Message) []ech0119.ValidationResult {
	p1 := msg.Content.MainForm.PersonDataPartner1
	if p1 != nil && p1.Address != nil && p1.Address.MunicipalityID != nil {
		return nil
	}
	return []ech0119.ValidationResult{{
		Code:     "canton.zh.municipalityMissing",
		Message:  "ZH submissions should carry the taxpayer's municipality identifier",
		Field:    "personDataPartner1.address.municipalityId",
		Severity: ech0119.SeverityWarning,
		XPath:    "/message/content/mainForm/personDataPartner1/address/municipalityId",
	}}
}

// MapDocumentType maps an internal document type to the ZH submission code.
func (Handler) MapDocumentType(docType string) (string, bool) {
	code, ok := documentTypeCodes[docType]
	return code, ok
}

// RequiredDocuments lists the documents ZH expects with a submission.
func (Handler) RequiredDocuments() []string {
	return requiredDocuments
}

// DefaultRegistry returns a canton registry with the built-in cantons
// registered.
func DefaultRegistry() *canton.Registry {
	r := canton.NewRegistry()
	// Registration only fails on a missing code or name.
	_ = r.Register(canton.Config{
		Code:                 "ZH",
		Name:                 "Zürich",
		DocumentRequirements: requiredDocuments,
		Extension:            Handler{},
	})
	return r
}
