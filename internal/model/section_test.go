package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(v bool) *bool { return &v }

func TestSectionState(t *testing.T) {
	tests := []struct {
		name    string
		section Section[EinkommenData]
		want    SectionState
	}{
		{"untouched", Section[EinkommenData]{}, SectionNotStarted},
		{"started", Section[EinkommenData]{Start: boolPtr(true)}, SectionInProgress},
		{"start flag false", Section[EinkommenData]{Start: boolPtr(false)}, SectionNotStarted},
		{"finished", Section[EinkommenData]{Start: boolPtr(true), Finished: boolPtr(true)}, SectionComplete},
		{"finished without start", Section[EinkommenData]{Finished: boolPtr(true)}, SectionComplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.section.State())
			assert.Equal(t, tt.want != SectionNotStarted, tt.section.Started())
		})
	}
}

func TestUnfinishedSections(t *testing.T) {
	var d TaxReturnData
	assert.Empty(t, d.UnfinishedSections())

	d.Einkommen.Start = boolPtr(true)
	d.Spenden.Start = boolPtr(true)
	d.Kinder.Start = boolPtr(true)
	d.Kinder.Finished = boolPtr(true)

	assert.Equal(t, []string{"einkommen", "spenden"}, d.UnfinishedSections())
}
