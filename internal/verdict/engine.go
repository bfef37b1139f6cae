package verdict

import (
	"math"

	"AmISober/internal/calculator"
	"AmISober/internal/input"
	"AmISober/internal/model"
)

// GaugeScale is the BAC shown at the right edge of the gauge.
const GaugeScale = 0.2

// Evaluate computes the full assessment for one input snapshot.
func Evaluate(in model.EstimationInput) *model.Assessment {
	bac := calculator.EstimateBAC(in)
	return &model.Assessment{
		Input:           in,
		BAC:             bac,
		Status:          Classify(bac),
		GaugePercent:    GaugePercent(bac),
		HoursUntilLegal: calculator.HoursUntilBelow(bac, SuspensionThreshold),
		HoursUntilSober: calculator.HoursUntilBelow(bac, 0),
	}
}

// GaugePercent is the pointer position (0~100) of bac on the gauge.
func GaugePercent(bac float64) float64 {
	return math.Min(100, bac/GaugeScale*100)
}

// Project evaluates in at every elapsed-time step from 0 to the form maximum.
func Project(in model.EstimationInput) []model.ProjectionPoint {
	steps := int(input.MaxElapsedHours/input.ElapsedStep) + 1
	points := make([]model.ProjectionPoint, 0, steps)
	for i := 0; i < steps; i++ {
		in.ElapsedHours = float64(i) * input.ElapsedStep
		bac := calculator.EstimateBAC(in)
		points = append(points, model.ProjectionPoint{
			ElapsedHours: in.ElapsedHours,
			BAC:          bac,
			Status:       Classify(bac),
		})
	}
	return points
}
