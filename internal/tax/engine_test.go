package tax

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steuerlink/steuerlink/internal/model"
)

func loadFixture(t *testing.T) model.TaxReturnData {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", "taxReport.json"))
	require.NoError(t, err)

	var data model.TaxReturnData
	require.NoError(t, json.Unmarshal(raw, &data))
	return data
}

func assertAmount(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, got.Equal(d(t, want)), "%s: want %s, got %s", field, want, got)
}

func TestCompute_FixtureDeductibles(t *testing.T) {
	computed, err := Compute(loadFixture(t), testCache(t))
	require.NoError(t, err)

	assertAmount(t, "500", computed.OevArbeit, "oevArbeit")
	assertAmount(t, "700", computed.AutoMotorradArbeitWege, "autoMotorradArbeitWege")
	assertAmount(t, "700", computed.VeloArbeit, "veloArbeit")
	assertAmount(t, "1500", computed.VerpflegungAufArbeit, "verpflegungAufArbeit")
	assertAmount(t, "1500", computed.Schichtarbeit, "schichtarbeit")
	assertAmount(t, "2000", computed.Wochenaufenthalt, "wochenaufenthalt")
	assertAmount(t, "500", computed.InAusbildung, "inAusbildung")
	assertAmount(t, "7056", computed.Saeule3a, "saeule3a")
	assertAmount(t, "1000", computed.Versicherungspraemie, "versicherungspraemie")
	assertAmount(t, "1000", computed.PrivateUnfall, "privateUnfall")
	assertAmount(t, "500", computed.Spenden, "spenden")
}

func TestCompute_FixtureIncome(t *testing.T) {
	computed, err := Compute(loadFixture(t), testCache(t))
	require.NoError(t, err)

	assertAmount(t, "80000", computed.Haupterwerb, "haupterwerb")
	assertAmount(t, "0", computed.Nebenerwerb, "nebenerwerb")
	assertAmount(t, "80000", computed.TotalEinkuenfte, "totalEinkuenfte")
	assertAmount(t, "120", computed.Zinsertraege, "zinsertraege")

	// 3% of the main income, within the 2000-4000 band.
	assertAmount(t, "2400", computed.UebrigeBerufsauslagen, "uebrigeBerufsauslagen")
	// No side income, no side-income expense deduction.
	assertAmount(t, "0", computed.NebenerwerbAuslagen, "nebenerwerbAuslagen")
}

func TestCompute_FixtureWealth(t *testing.T) {
	computed, err := Compute(loadFixture(t), testCache(t))
	require.NoError(t, err)

	assertAmount(t, "25000", computed.Bankguthaben, "bankguthaben")
	// 30000 * 0.6^2 for a 2021 purchase.
	assertAmount(t, "10800", computed.Fahrzeugwert, "fahrzeugwert")
	assertAmount(t, "35800", computed.TotalVermoegen, "totalVermoegen")
	// Below the wealth tax free amount.
	assertAmount(t, "0", computed.Vermoegenssteuer, "vermoegenssteuer")
}

func TestCompute_TotalEinkuenfteIdentity(t *testing.T) {
	data := loadFixture(t)
	data.Einkommen.Data.Nettoloehne = []model.NettolohnEintrag{
		{Nettolohn: ratePtr(t, "52000")},
		{Nettolohn: ratePtr(t, "9000")},
		{Nettolohn: ratePtr(t, "3000")},
	}

	computed, err := Compute(data, testCache(t))
	require.NoError(t, err)

	assertAmount(t, "52000", computed.Haupterwerb, "haupterwerb")
	assertAmount(t, "12000", computed.Nebenerwerb, "nebenerwerb")
	assert.True(t, computed.TotalEinkuenfte.Equal(computed.Haupterwerb.Add(computed.Nebenerwerb)))
}

func TestCompute_MarriedPartitioning(t *testing.T) {
	data := loadFixture(t)
	verheiratet := "verheiratet"
	data.Personalien.Data.Zivilstand = &verheiratet
	data.Einkommen.Data.Nettoloehne = []model.NettolohnEintrag{
		{Nettolohn: ratePtr(t, "60000")},
		{Nettolohn: ratePtr(t, "40000"), Person: intPtr(2)},
	}

	computed, err := Compute(data, testCache(t))
	require.NoError(t, err)

	assertAmount(t, "60000", computed.Person1Einkommen, "person1Einkommen")
	assertAmount(t, "40000", computed.Person2Einkommen, "person2Einkommen")
	assertAmount(t, "60000", computed.Haupterwerb, "haupterwerb")
	assertAmount(t, "40000", computed.Nebenerwerb, "nebenerwerb")
}

func TestCompute_Saeule3aCappedPerPerson(t *testing.T) {
	data := loadFixture(t)
	verheiratet := "verheiratet"
	data.Personalien.Data.Zivilstand = &verheiratet
	data.Saeule3a.Data.BeitragPerson1 = ratePtr(t, "9000")
	data.Saeule3a.Data.BeitragPerson2 = ratePtr(t, "5000")

	computed, err := Compute(data, testCache(t))
	require.NoError(t, err)

	// 9000 capped at 7258, 5000 uncapped.
	assertAmount(t, "12258", computed.Saeule3a, "saeule3a")
}

func TestCompute_ChildDeductionDelta(t *testing.T) {
	data := loadFixture(t)
	before, err := Compute(data, testCache(t))
	require.NoError(t, err)

	geb := "14.06.2018"
	data.Kinder.Data.ImHaushalt = append(data.Kinder.Data.ImHaushalt, model.Kind{
		Vorname:      "Mia",
		Geburtsdatum: &geb,
	})
	after, err := Compute(data, testCache(t))
	require.NoError(t, err)

	assertAmount(t, "9300", after.TotalAbzuegeStaat.Sub(before.TotalAbzuegeStaat), "totalAbzuegeStaat delta")
	assertAmount(t, "6800", after.TotalAbzuegeBund.Sub(before.TotalAbzuegeBund), "totalAbzuegeBund delta")
}

func TestCompute_CommuteJointCap(t *testing.T) {
	data := loadFixture(t)
	data.Arbeitsweg.Data.OevKosten = ratePtr(t, "6000")

	computed, err := Compute(data, testCache(t))
	require.NoError(t, err)

	assertAmount(t, "5200", computed.FahrtkostenStaat, "fahrtkostenStaat")
	assertAmount(t, "3200", computed.FahrtkostenBund, "fahrtkostenBund")
}

func TestCompute_MealsSubsidized(t *testing.T) {
	data := loadFixture(t)
	subsidized := true
	data.Verpflegung.Data.Verguenstigt = &subsidized

	computed, err := Compute(data, testCache(t))
	require.NoError(t, err)

	// 100 days at 7.50 instead of 15.
	assertAmount(t, "750", computed.VerpflegungAufArbeit, "verpflegungAufArbeit")
}

func TestCompute_SmallDonationsExcluded(t *testing.T) {
	data := loadFixture(t)
	data.Spenden.Data.Spenden = []model.Spende{
		{Organisation: "A", Betrag: ratePtr(t, "99.95")},
		{Organisation: "B", Betrag: ratePtr(t, "100")},
	}

	computed, err := Compute(data, testCache(t))
	require.NoError(t, err)
	assertAmount(t, "100", computed.Spenden, "spenden")
}

func TestCompute_MunicipalTaxUsesSteuerfuss(t *testing.T) {
	computed, err := Compute(loadFixture(t), testCache(t))
	require.NoError(t, err)

	assertAmount(t, "119", computed.Steuerfuss, "steuerfuss")
	want := computed.EinkommenssteuerStaat.Mul(d(t, "1.19"))
	assert.True(t, computed.Gemeindesteuer.Equal(want),
		"gemeindesteuer: want %s, got %s", want, computed.Gemeindesteuer)
}

func TestCompute_UnknownMunicipality(t *testing.T) {
	data := loadFixture(t)
	data.Personalien.Data.GemeindeBFS = intPtr(99999)

	_, err := Compute(data, testCache(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "99999")
}

func TestSummarize_Identity(t *testing.T) {
	computed, err := Compute(loadFixture(t), testCache(t))
	require.NoError(t, err)

	s := Summarize(computed)
	assert.True(t, s.TaxableIncome.Equal(s.GrossIncome.Sub(s.DeductableAmount)))
	assert.True(t, s.TotalTax.Equal(s.FederalTax.Add(s.CantonalTax).Add(s.MunicipalTax).Add(s.WealthTax)))
}
