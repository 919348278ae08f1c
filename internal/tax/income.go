package tax

import (
	"github.com/shopspring/decimal"

	"github.com/steuerlink/steuerlink/internal/model"
)

// incomeResult is the employment income partition.
type incomeResult struct {
	Haupterwerb decimal.Decimal
	Nebenerwerb decimal.Decimal
	Person1     decimal.Decimal
	Person2     decimal.Decimal
	Total       decimal.Decimal
}

// computeIncome partitions salary entries. Haupterwerb is the single largest
// entry, Nebenerwerb the rest. Married filers additionally get per-person
// sums by the entry's person tag; unmarried filers have everything on
// person 1.
func computeIncome(data model.EinkommenData, married bool) incomeResult {
	var res incomeResult

	for _, e := range data.Nettoloehne {
		if e.Nettolohn == nil {
			continue
		}
		lohn := *e.Nettolohn
		res.Total = res.Total.Add(lohn)

		if married && e.PersonTag() == 2 {
			res.Person2 = res.Person2.Add(lohn)
		} else {
			res.Person1 = res.Person1.Add(lohn)
		}

		if lohn.GreaterThan(res.Haupterwerb) {
			res.Haupterwerb = lohn
		}
	}

	res.Nebenerwerb = res.Total.Sub(res.Haupterwerb)
	return res
}
