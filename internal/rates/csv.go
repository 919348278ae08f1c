package rates

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// The cantonal Steuerfuss export is semicolon-delimited with quoted fields.
// Only a handful of the 20 columns carry data we need.
const (
	minFields           = 20
	colBFS              = 1
	colName             = 2
	colOhneKirche       = 7
	colReformiert       = 8
	colKatholisch       = 9
	colChristkatholisch = 10
	colJuristisch       = 11
	colDefinitiv        = 19
)

// MunicipalityTaxRates is one municipality's tax multipliers (percent values).
type MunicipalityTaxRates struct {
	BFSNumber                    int
	Name                         string
	BaseRateWithoutChurch        *decimal.Decimal
	RateWithReformedChurch       *decimal.Decimal
	RateWithCatholicChurch       *decimal.Decimal
	RateWithChristCatholicChurch *decimal.Decimal
	JuristischerSteuerfuss       *decimal.Decimal
	Definitiv                    bool
}

// ReadRates parses the semicolon-delimited rate export. Malformed rows are
// skipped with a warning and counted; only an unreadable stream or a file
// without at least a header and one data row is an error. Duplicate BFS
// numbers are resolved last-wins.
func ReadRates(r io.Reader, logger *zap.Logger) (map[int]MunicipalityTaxRates, int, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("reading rates CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, 0, fmt.Errorf("rates CSV has %d lines, need header plus at least one data row", len(records))
	}

	byBFS := make(map[int]MunicipalityTaxRates, len(records)-1)
	duplicates := 0
	for i, rec := range records[1:] {
		row := i + 2
		if len(rec) < minFields {
			logger.Warn("skipping short rates row",
				zap.Int("row", row),
				zap.Int("columns", len(rec)))
			continue
		}

		rates, err := unmarshalRates(rec)
		if err != nil {
			logger.Warn("skipping malformed rates row",
				zap.Int("row", row),
				zap.Error(err))
			continue
		}

		if _, seen := byBFS[rates.BFSNumber]; seen {
			duplicates++
		}
		byBFS[rates.BFSNumber] = rates
	}

	return byBFS, duplicates, nil
}

func unmarshalRates(rec []string) (MunicipalityTaxRates, error) {
	bfs, err := strconv.Atoi(strings.TrimSpace(rec[colBFS]))
	if err != nil {
		return MunicipalityTaxRates{}, fmt.Errorf("parsing BFS number %q: %w", rec[colBFS], err)
	}

	rates := MunicipalityTaxRates{
		BFSNumber: bfs,
		Name:      strings.TrimSpace(rec[colName]),
		Definitiv: strings.TrimSpace(rec[colDefinitiv]) == "1",
	}

	for _, col := range []struct {
		idx  int
		name string
		dst  **decimal.Decimal
	}{
		{colOhneKirche, "base rate", &rates.BaseRateWithoutChurch},
		{colReformiert, "reformed rate", &rates.RateWithReformedChurch},
		{colKatholisch, "catholic rate", &rates.RateWithCatholicChurch},
		{colChristkatholisch, "christ-catholic rate", &rates.RateWithChristCatholicChurch},
		{colJuristisch, "juristischer steuerfuss", &rates.JuristischerSteuerfuss},
	} {
		v, err := parseOptionalRate(rec[col.idx])
		if err != nil {
			return MunicipalityTaxRates{}, fmt.Errorf("parsing %s %q: %w", col.name, rec[col.idx], err)
		}
		*col.dst = v
	}

	return rates, nil
}

// parseOptionalRate maps the empty string to nil; anything else must parse.
func parseOptionalRate(s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
