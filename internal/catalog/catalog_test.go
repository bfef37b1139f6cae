package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AmISober/internal/model"
)

func TestAll_FixedOrder(t *testing.T) {
	all := All()
	require.Len(t, all, 5)

	keys := make([]model.BeverageKey, len(all))
	for i, p := range all {
		keys[i] = p.Key
	}
	assert.Equal(t, []model.BeverageKey{
		model.BeverageSomaek,
		model.BeverageSoju,
		model.BeverageBeer,
		model.BeverageMakgeolli,
		model.BeverageLiquor,
	}, keys)
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].MillilitersPerGlass = 999

	p, err := Lookup("somaek")
	require.NoError(t, err)
	assert.Equal(t, 200.0, p.MillilitersPerGlass)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		key string
		ml  float64
		abv float64
	}{
		{"somaek", 200, 7.0},
		{"soju", 50, 16.5},
		{"beer", 200, 4.5},
		{"makgeolli", 250, 6.0},
		{"liquor", 30, 40.0},
		{" BEER ", 200, 4.5},
	}
	for _, tt := range tests {
		p, err := Lookup(tt.key)
		require.NoError(t, err, tt.key)
		assert.Equal(t, tt.ml, p.MillilitersPerGlass, tt.key)
		assert.Equal(t, tt.abv, p.DefaultAbvPercent, tt.key)
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("wine")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownBeverage)
	assert.Contains(t, err.Error(), "wine")
}

func TestSelectedAbv_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		key  string
		want float64
	}{
		{"somaek", 7},
		{"soju", 17},
		{"beer", 5},
		{"makgeolli", 6},
		{"liquor", 40},
	}
	for _, tt := range tests {
		p, err := Lookup(tt.key)
		require.NoError(t, err)
		assert.Equal(t, tt.want, SelectedAbv(p), tt.key)
	}
}

func TestDefaultKey_InCatalog(t *testing.T) {
	_, err := Lookup(string(DefaultKey))
	assert.NoError(t, err)
}
