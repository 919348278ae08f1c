package canton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Config{Code: "zh", Name: "Zürich"}))

	cfg, ok := r.Get("ZH")
	require.True(t, ok)
	assert.Equal(t, "ZH", cfg.Code, "code is normalized to uppercase")
	assert.Equal(t, "Zürich", cfg.Name)
}

func TestRegister_MissingFields(t *testing.T) {
	r := NewRegistry()

	err := r.Register(Config{Name: "Zürich"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code")

	err = r.Register(Config{Code: "ZH"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestRegister_Overwrite(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Config{Code: "ZH", Name: "Zurich"}))
	require.NoError(t, r.Register(Config{Code: "ZH", Name: "Zürich"}))

	cfg, _ := r.Get("ZH")
	assert.Equal(t, "Zürich", cfg.Name)
	assert.Len(t, r.All(), 1)
}

func TestGet_CaseInsensitive(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Config{Code: "ZH", Name: "Zürich"}))

	assert.True(t, r.Has("zh"))
	assert.True(t, r.Has("Zh"))
	assert.False(t, r.Has("BE"))

	_, ok := r.Get("be")
	assert.False(t, ok)
}

func TestCodes_Sorted(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Config{Code: "ZH", Name: "Zürich"}))
	require.NoError(t, r.Register(Config{Code: "AG", Name: "Aargau"}))
	require.NoError(t, r.Register(Config{Code: "BE", Name: "Bern"}))

	assert.Equal(t, []string{"AG", "BE", "ZH"}, r.Codes())

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, "AG", all[0].Code)
	assert.Equal(t, "ZH", all[2].Code)
}
