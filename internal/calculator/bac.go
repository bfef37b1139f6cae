package calculator

import (
	"math"

	"AmISober/internal/model"
)

const (
	EthanolDensity     = 0.7894 // g/mL
	MaleDistribution   = 0.7
	FemaleDistribution = 0.6
	EliminationRate    = 0.015 // % per hour

	// Safety-net floors. The input layer clamps first; these only guard
	// against a zero or negative divisor.
	minWeightKg   = 35
	minGlassCount = 1
	minAbvPercent = 1
)

// DistributionRatio returns the Widmark r for the given sex.
func DistributionRatio(sex model.Sex) float64 {
	if sex == model.SexMale {
		return MaleDistribution
	}
	return FemaleDistribution
}

// AlcoholGrams converts a drink volume and ABV into grams of pure ethanol.
func AlcoholGrams(volumeMl, abvPercent float64) float64 {
	return volumeMl * (abvPercent / 100) * EthanolDensity
}

// EstimateBAC computes BAC (%) with the Widmark formula and linear elimination.
// Always returns a finite value >= 0.
func EstimateBAC(in model.EstimationInput) float64 {
	weight := atLeast(in.WeightKg, minWeightKg)
	glasses := atLeast(in.GlassCount, minGlassCount)
	abv := atLeast(in.AbvPercent, minAbvPercent)
	hours := in.ElapsedHours
	if math.IsNaN(hours) || hours < 0 {
		hours = 0
	}

	totalVolume := glasses * in.Beverage.MillilitersPerGlass
	grams := AlcoholGrams(totalVolume, abv)
	raw := (grams / (weight * DistributionRatio(in.Sex))) * 0.1
	// The explicit conversion keeps the subtraction from being fused, so
	// results are bit-identical on every architecture.
	bac := raw - float64(hours*EliminationRate)

	// +Inf inputs saturate; Inf-Inf and a degenerate profile give NaN.
	switch {
	case math.IsNaN(bac), bac < 0:
		return 0
	case math.IsInf(bac, 1):
		return math.MaxFloat64
	}
	return bac
}

// HoursUntilBelow returns how many more hours of elimination it takes for bac
// to fall to threshold. Zero if bac is already at or below it.
func HoursUntilBelow(bac, threshold float64) float64 {
	if !(bac > threshold) {
		return 0
	}
	return (bac - threshold) / EliminationRate
}

func atLeast(v, lo float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	return v
}
