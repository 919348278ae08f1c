package tax

import "github.com/shopspring/decimal"

// federalTier is one row of the stepped federal income tax schedule
// (direct federal tax, single tariff): tax = Base + (amount-Lower)*Rate.
type federalTier struct {
	Lower decimal.Decimal
	Base  decimal.Decimal
	Rate  decimal.Decimal // marginal rate as a fraction
}

// federalSchedule is the fixed federal schedule. Amounts below the first
// tier pay nothing; above the last breakpoint the flat top rate applies to
// the whole amount.
var federalSchedule = []federalTier{
	{dec(15000), dec(0), rate("0.0077")},
	{dec(32800), rate("137.05"), rate("0.0088")},
	{dec(42900), rate("225.90"), rate("0.0264")},
	{dec(57200), rate("603.40"), rate("0.0297")},
	{dec(75200), rate("1138.00"), rate("0.0594")},
	{dec(81000), rate("1482.50"), rate("0.0660")},
	{dec(107400), rate("3224.90"), rate("0.0880")},
	{dec(139600), rate("6058.50"), rate("0.1100")},
	{dec(182600), rate("10788.50"), rate("0.1320")},
}

var (
	federalTopBreak = dec(783200)
	federalTopRate  = rate("0.115")
)

// bracket is one consumed bracket of a progressive schedule: the lesser of
// the remaining amount and Width is taxed at Rate. Width zero means the
// bracket is unbounded.
type bracket struct {
	Width decimal.Decimal
	Rate  decimal.Decimal // fraction
}

// cantonalSchedule is the fixed 13-tier cantonal base tariff.
var cantonalSchedule = []bracket{
	{dec(6900), dec(0)},
	{dec(4800), rate("0.02")},
	{dec(4800), rate("0.03")},
	{dec(7800), rate("0.04")},
	{dec(9300), rate("0.05")},
	{dec(10700), rate("0.06")},
	{dec(12300), rate("0.07")},
	{dec(15300), rate("0.08")},
	{dec(37000), rate("0.09")},
	{dec(31800), rate("0.10")},
	{dec(45900), rate("0.11")},
	{dec(67700), rate("0.12")},
	{decimal.Zero, rate("0.13")},
}

// wealthSchedule is the fixed 7-tier wealth tax tariff (rates per franc).
var wealthSchedule = []bracket{
	{dec(77000), dec(0)},
	{dec(231000), rate("0.0005")},
	{dec(462000), rate("0.0010")},
	{dec(770000), rate("0.0015")},
	{dec(1540000), rate("0.0020")},
	{dec(2620000), rate("0.0025")},
	{decimal.Zero, rate("0.0030")},
}

// cantonalCoefficient scales the base tariff to the cantonal tax.
var cantonalCoefficient = rate("2.19")

// EinkommenssteuerBundCalc computes the direct federal income tax for a
// taxable income using the stepped schedule.
func EinkommenssteuerBundCalc(amount decimal.Decimal) decimal.Decimal {
	if amount.LessThan(federalSchedule[0].Lower) || amount.IsNegative() {
		return decimal.Zero
	}
	if amount.GreaterThanOrEqual(federalTopBreak) {
		return amount.Mul(federalTopRate)
	}

	// Find the highest tier whose lower bound is <= amount.
	tier := federalSchedule[0]
	for _, t := range federalSchedule {
		if amount.LessThan(t.Lower) {
			break
		}
		tier = t
	}
	return tier.Base.Add(amount.Sub(tier.Lower).Mul(tier.Rate))
}

// CalculateIncomeTaxKt computes the cantonal base tax by walking the bracket
// table in order, taxing the lesser of the remaining income and the bracket
// width at the bracket's rate.
func CalculateIncomeTaxKt(amount decimal.Decimal) decimal.Decimal {
	return consumeBrackets(amount, cantonalSchedule)
}

// CalculateVermoegenssteuer computes the wealth tax over total taxable
// assets using successive bracket consumption.
func CalculateVermoegenssteuer(wealth decimal.Decimal) decimal.Decimal {
	return consumeBrackets(wealth, wealthSchedule)
}

func consumeBrackets(amount decimal.Decimal, schedule []bracket) decimal.Decimal {
	if amount.Sign() <= 0 {
		return decimal.Zero
	}

	remaining := amount
	total := decimal.Zero
	for _, b := range schedule {
		slice := remaining
		if b.Width.Sign() > 0 && slice.GreaterThan(b.Width) {
			slice = b.Width
		}
		total = total.Add(slice.Mul(b.Rate))
		remaining = remaining.Sub(slice)
		if remaining.Sign() <= 0 {
			break
		}
	}
	return total
}

func dec(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func rate(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
