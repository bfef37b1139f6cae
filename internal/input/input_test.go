package input

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AmISober/internal/catalog"
	"AmISober/internal/model"
)

func abv(v float64) *float64 { return &v }

func TestNormalize_Defaults(t *testing.T) {
	in, err := Normalize(RawInput{
		WeightKg:   80,
		Sex:        "male",
		Beverage:   "somaek",
		GlassCount: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, 80.0, in.WeightKg)
	assert.Equal(t, model.SexMale, in.Sex)
	assert.Equal(t, model.BeverageSomaek, in.Beverage.Key)
	assert.Equal(t, 10.0, in.GlassCount)
	assert.Equal(t, 7.0, in.AbvPercent)
	assert.Equal(t, 0.0, in.ElapsedHours)
}

func TestNormalize_AbvDefaultIsRounded(t *testing.T) {
	in, err := Normalize(RawInput{WeightKg: 70, Sex: "f", Beverage: "beer", GlassCount: 1})
	require.NoError(t, err)
	assert.Equal(t, 5.0, in.AbvPercent)

	in, err = Normalize(RawInput{WeightKg: 70, Sex: "f", Beverage: "beer", GlassCount: 1, AbvPercent: abv(4.5)})
	require.NoError(t, err)
	assert.Equal(t, 4.5, in.AbvPercent)
}

func TestNormalize_Clamps(t *testing.T) {
	tests := []struct {
		name string
		raw  RawInput
		want model.EstimationInput
	}{
		{
			name: "below minimum",
			raw:  RawInput{WeightKg: 20, GlassCount: 0, AbvPercent: abv(0), ElapsedHours: -1},
			want: model.EstimationInput{WeightKg: 35, GlassCount: 1, AbvPercent: 1, ElapsedHours: 0},
		},
		{
			name: "above maximum",
			raw:  RawInput{WeightKg: 300, GlassCount: 99, AbvPercent: abv(96), ElapsedHours: 12},
			want: model.EstimationInput{WeightKg: 150, GlassCount: 30, AbvPercent: 70, ElapsedHours: 5},
		},
		{
			name: "non-finite",
			raw:  RawInput{WeightKg: math.NaN(), GlassCount: math.Inf(1), AbvPercent: abv(math.Inf(-1)), ElapsedHours: math.NaN()},
			want: model.EstimationInput{WeightKg: 35, GlassCount: 30, AbvPercent: 1, ElapsedHours: 0},
		},
		{
			name: "in range",
			raw:  RawInput{WeightKg: 62.5, GlassCount: 4, AbvPercent: abv(12), ElapsedHours: 2.5},
			want: model.EstimationInput{WeightKg: 62.5, GlassCount: 4, AbvPercent: 12, ElapsedHours: 2.5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.raw.Sex = "female"
			tt.raw.Beverage = "soju"
			in, err := Normalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want.WeightKg, in.WeightKg)
			assert.Equal(t, tt.want.GlassCount, in.GlassCount)
			assert.Equal(t, tt.want.AbvPercent, in.AbvPercent)
			assert.Equal(t, tt.want.ElapsedHours, in.ElapsedHours)
		})
	}
}

func TestNormalize_UnknownBeverage(t *testing.T) {
	_, err := Normalize(RawInput{WeightKg: 80, Sex: "male", Beverage: "cider", GlassCount: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrUnknownBeverage)
}

func TestNormalize_UnknownSex(t *testing.T) {
	_, err := Normalize(RawInput{WeightKg: 80, Sex: "x", Beverage: "beer", GlassCount: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnknownSex)
	assert.Contains(t, err.Error(), `"x"`)
}

func TestSnapHours(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.2, 0},
		{0.25, 0.5},
		{0.74, 0.5},
		{1.8, 2},
		{4.9, 5},
		{7, 5},
		{-2, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SnapHours(tt.in), "hours=%v", tt.in)
	}
}

func TestAdvance(t *testing.T) {
	in := model.EstimationInput{ElapsedHours: 0}
	in = Advance(in)
	assert.Equal(t, 0.5, in.ElapsedHours)

	in.ElapsedHours = 5
	in = Advance(in)
	assert.Equal(t, 5.0, in.ElapsedHours)
}
