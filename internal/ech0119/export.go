package ech0119

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/steuerlink/steuerlink/internal/canton"
	"github.com/steuerlink/steuerlink/internal/model"
	"github.com/steuerlink/steuerlink/internal/rates"
	"github.com/steuerlink/steuerlink/internal/tax"
)

// Export runs the full pipeline: precondition check, tax computation,
// mapping, validation, and XML generation. A validation report with errors
// aborts the export; warnings are logged and do not block.
func Export(tr model.TaxReturn, user model.User, cache *rates.Cache, registry *canton.Registry, cantonCode string, logger *zap.Logger) (string, model.ComputedTaxReturn, error) {
	if err := Precheck(tr, user); err != nil {
		return "", model.ComputedTaxReturn{}, fmt.Errorf("export precondition: %w", err)
	}

	computed, err := tax.Compute(tr.Data, cache)
	if err != nil {
		return "", model.ComputedTaxReturn{}, fmt.Errorf("computing tax return: %w", err)
	}

	msg, err := Map(tr, user, computed, registry, cantonCode)
	if err != nil {
		return "", model.ComputedTaxReturn{}, fmt.Errorf("mapping to eCH-0119: %w", err)
	}

	report := Validate(msg, computed, registry, logger)
	for _, r := range report.Results {
		if r.Severity == SeverityWarning {
			logger.Warn("validation warning",
				zap.String("code", r.Code),
				zap.String("field", r.Field),
				zap.String("message", r.Message))
		}
	}
	if !report.IsValid {
		msgs := make([]string, 0, report.ErrorCount)
		for _, r := range report.Results {
			if r.Severity == SeverityError {
				msgs = append(msgs, r.Code+": "+r.Message)
			}
		}
		return "", computed, fmt.Errorf("message validation failed: %s", strings.Join(msgs, "; "))
	}

	out, err := GenerateXML(msg)
	if err != nil {
		return "", computed, err
	}
	return out, computed, nil
}
