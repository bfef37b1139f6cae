package model

// StatusLevel orders the legal-status buckets from lowest to highest BAC.
type StatusLevel int

const (
	LevelNormal StatusLevel = iota
	LevelAdvisory
	LevelSuspension
	LevelRevocation
)

func (l StatusLevel) String() string {
	switch l {
	case LevelNormal:
		return "normal"
	case LevelAdvisory:
		return "advisory"
	case LevelSuspension:
		return "suspension"
	case LevelRevocation:
		return "revocation"
	default:
		return "unknown"
	}
}

// StatusBucket is a legal-status range with its display text.
type StatusBucket struct {
	Level       StatusLevel
	Label       string
	Description string
}

// Assessment is the full output rendered for one input snapshot.
type Assessment struct {
	Input           EstimationInput
	BAC             float64
	Status          StatusBucket
	GaugePercent    float64 // 0 ~ 100, pointer position on the 0.2% scale
	HoursUntilLegal float64
	HoursUntilSober float64
}

// ProjectionPoint is the estimate at one elapsed-time step.
type ProjectionPoint struct {
	ElapsedHours float64
	BAC          float64
	Status       StatusBucket
}
