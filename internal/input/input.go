package input

import (
	"fmt"
	"math"

	"AmISober/internal/catalog"
	"AmISober/internal/model"
)

// Form ranges.
const (
	MinWeightKg     = 35
	MaxWeightKg     = 150
	MinGlassCount   = 1
	MaxGlassCount   = 30
	MinAbvPercent   = 1
	MaxAbvPercent   = 70
	MaxElapsedHours = 5
	ElapsedStep     = 0.5
)

// RawInput is the form as entered, before any clamping.
type RawInput struct {
	WeightKg     float64
	Sex          string
	Beverage     string
	GlassCount   float64
	AbvPercent   *float64 // nil = the selected beverage's rounded default
	ElapsedHours float64
}

// Normalize resolves the beverage and sex and clamps every number into its
// form range. Errors only come from the two string fields.
func Normalize(raw RawInput) (model.EstimationInput, error) {
	bev, err := catalog.Lookup(raw.Beverage)
	if err != nil {
		return model.EstimationInput{}, fmt.Errorf("normalize input: %w", err)
	}
	sex, err := model.ParseSex(raw.Sex)
	if err != nil {
		return model.EstimationInput{}, fmt.Errorf("normalize input: %w", err)
	}

	abv := catalog.SelectedAbv(bev)
	if raw.AbvPercent != nil {
		abv = *raw.AbvPercent
	}

	return model.EstimationInput{
		WeightKg:     Clamp(raw.WeightKg, MinWeightKg, MaxWeightKg),
		Sex:          sex,
		Beverage:     bev,
		GlassCount:   Clamp(raw.GlassCount, MinGlassCount, MaxGlassCount),
		AbvPercent:   Clamp(abv, MinAbvPercent, MaxAbvPercent),
		ElapsedHours: SnapHours(raw.ElapsedHours),
	}, nil
}

// Clamp bounds v to [lo, hi]. NaN maps to lo.
func Clamp(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v), v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

// SnapHours clamps h to [0, MaxElapsedHours] and rounds it to the nearest step.
func SnapHours(h float64) float64 {
	h = Clamp(h, 0, MaxElapsedHours)
	return math.Round(h/ElapsedStep) * ElapsedStep
}

// Advance returns in with ElapsedHours moved forward by one step, capped at the
// form maximum.
func Advance(in model.EstimationInput) model.EstimationInput {
	in.ElapsedHours = SnapHours(in.ElapsedHours + ElapsedStep)
	return in
}
