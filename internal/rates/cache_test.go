package rates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestLoad(t *testing.T) {
	csv := ratesHeader + "\n" +
		row("261", "Zürich", "119", "129", "129", "133", "", "1") + "\n" +
		row("261", "Zürich", "119", "129", "129", "133", "", "1") + "\n" +
		row("262", "Adliswil", "97", "107", "107", "111", "", "")

	path := filepath.Join(t.TempDir(), "steuerfuesse.csv")
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	cache, err := Load(path, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 2, cache.Len())
	assert.Equal(t, 1, cache.Duplicates())

	m, ok := cache.Get(261)
	require.True(t, ok)
	assert.Equal(t, "Zürich", m.Name)

	_, ok = cache.Get(99999)
	assert.False(t, ok)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), zap.NewNop())
	require.Error(t, err)
}
