package zh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steuerlink/steuerlink/internal/ech0119"
	"github.com/steuerlink/steuerlink/internal/model"
)

func intPtr(v int) *int { return &v }

func TestExtendHeader(t *testing.T) {
	tr := model.TaxReturn{
		Year: 2024,
		Data: model.TaxReturnData{
			Personalien: model.Section[model.PersonalienData]{
				Data: model.PersonalienData{GemeindeBFS: intPtr(261)},
			},
		},
	}

	var h ech0119.Header
	require.NoError(t, Handler{}.ExtendHeader(&h, tr, model.User{}))

	ext, ok := h.Extension.(ech0119.ZHHeaderExtension)
	require.True(t, ok)
	require.NotNil(t, ext.GemeindeBFS)
	assert.Equal(t, 261, *ext.GemeindeBFS)
}

func TestValidateMessage(t *testing.T) {
	msg := &ech0119.Message{}
	msg.Content.MainForm.PersonDataPartner1 = &ech0119.PersonData{
		Address: &ech0119.Address{MunicipalityID: intPtr(261)},
	}
	assert.Empty(t, Handler{}.ValidateMessage(msg))

	msg.Content.MainForm.PersonDataPartner1.Address.MunicipalityID = nil
	results := Handler{}.ValidateMessage(msg)
	require.Len(t, results, 1)
	assert.Equal(t, "canton.zh.municipalityMissing", results[0].Code)
	assert.Equal(t, ech0119.SeverityWarning, results[0].Severity)
}

func TestMapDocumentType(t *testing.T) {
	code, ok := Handler{}.MapDocumentType("lohnausweis")
	require.True(t, ok)
	assert.Equal(t, "ZH-LA", code)

	_, ok = Handler{}.MapDocumentType("mietvertrag")
	assert.False(t, ok)
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	cfg, ok := r.Get("ZH")
	require.True(t, ok)
	assert.Equal(t, "Zürich", cfg.Name)
	assert.Contains(t, cfg.DocumentRequirements, "lohnausweis")

	// The handler satisfies the capabilities the export pipeline dispatches on.
	_, ok = cfg.Extension.(ech0119.HeaderExtender)
	assert.True(t, ok)
	_, ok = cfg.Extension.(ech0119.MessageValidator)
	assert.True(t, ok)
}
