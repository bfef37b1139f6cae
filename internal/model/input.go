package model

import (
	"errors"
	"fmt"
	"strings"
)

// Sex selects the Widmark body-water distribution ratio.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ErrUnknownSex is returned by ParseSex for anything but male or female.
var ErrUnknownSex = errors.New("unknown sex")

// ParseSex accepts "male"/"female" (and "m"/"f") in any case.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return SexMale, nil
	case "female", "f":
		return SexFemale, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSex, s)
	}
}

// EstimationInput is a complete, already clamped snapshot of the form.
type EstimationInput struct {
	WeightKg     float64
	Sex          Sex
	Beverage     BeverageProfile
	GlassCount   float64
	AbvPercent   float64
	ElapsedHours float64 // 0 ~ 5, step 0.5
}
