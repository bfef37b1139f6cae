package verdict

import "AmISober/internal/model"

// Legal thresholds (%). Each is the inclusive lower bound of the next bucket.
const (
	SuspensionThreshold = 0.03
	RevocationThreshold = 0.08
)

var (
	Normal = model.StatusBucket{
		Level:       model.LevelNormal,
		Label:       "Normal",
		Description: "No alcohol detected in the blood.",
	}
	Advisory = model.StatusBucket{
		Level:       model.LevelAdvisory,
		Label:       "Advisory",
		Description: "Below the legal enforcement limit (0.03%).",
	}
	Suspension = model.StatusBucket{
		Level:       model.LevelSuspension,
		Label:       "Suspension",
		Description: "License suspended for 100 days (0.03% to 0.08%).",
	}
	Revocation = model.StatusBucket{
		Level:       model.LevelRevocation,
		Label:       "Revocation",
		Description: "License revoked and disqualified (0.08% and above).",
	}
)

// Buckets lists every status in ascending order.
var Buckets = []model.StatusBucket{Normal, Advisory, Suspension, Revocation}

// Classify maps a BAC to its legal-status bucket.
func Classify(bac float64) model.StatusBucket {
	switch {
	case bac <= 0:
		return Normal
	case bac < SuspensionThreshold:
		return Advisory
	case bac < RevocationThreshold:
		return Suspension
	default:
		return Revocation
	}
}
