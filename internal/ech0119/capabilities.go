package ech0119

import "github.com/steuerlink/steuerlink/internal/model"

// Canton extension points. A canton handler registered in the canton
// registry may implement any subset of these; missing capabilities are
// skipped, never treated as errors.

// HeaderExtender lets a canton enrich the message header.
type HeaderExtender interface {
	ExtendHeader(h *Header, tr model.TaxReturn, user model.User) error
}

// MainFormExtender lets a canton enrich the main form after mapping.
type MainFormExtender interface {
	ExtendMainForm(mf *MainForm, tr model.TaxReturn, computed model.ComputedTaxReturn) error
}

// MessageValidator lets a canton add validation findings of its own.
type MessageValidator interface {
	ValidateMessage(msg *Message) []ValidationResult
}

// DocumentTypeMapper maps internal document type names to the canton's
// submission codes.
type DocumentTypeMapper interface {
	MapDocumentType(docType string) (string, bool)
}

// RequiredDocumentsProvider lists the documents a canton expects with a
// submission.
type RequiredDocumentsProvider interface {
	RequiredDocuments() []string
}
