package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"AmISober/internal/model"
)

// ErrUnknownBeverage is returned when a key is not in the catalog.
var ErrUnknownBeverage = errors.New("unknown beverage")

// DefaultKey is the beverage selected when nothing else is configured.
const DefaultKey = model.BeverageSomaek

// profiles is the fixed catalog in display order.
var profiles = []model.BeverageProfile{
	{Key: model.BeverageSomaek, Name: "Somaek (soju + beer)", MillilitersPerGlass: 200, DefaultAbvPercent: 7.0},
	{Key: model.BeverageSoju, Name: "Soju", MillilitersPerGlass: 50, DefaultAbvPercent: 16.5},
	{Key: model.BeverageBeer, Name: "Beer", MillilitersPerGlass: 200, DefaultAbvPercent: 4.5},
	{Key: model.BeverageMakgeolli, Name: "Makgeolli (rice wine)", MillilitersPerGlass: 250, DefaultAbvPercent: 6.0},
	{Key: model.BeverageLiquor, Name: "Liquor (hard spirits)", MillilitersPerGlass: 30, DefaultAbvPercent: 40.0},
}

// All returns a copy of the catalog in display order.
func All() []model.BeverageProfile {
	out := make([]model.BeverageProfile, len(profiles))
	copy(out, profiles)
	return out
}

// Lookup returns the profile for key. Keys are matched case-insensitively.
func Lookup(key string) (model.BeverageProfile, error) {
	k := model.BeverageKey(strings.ToLower(strings.TrimSpace(key)))
	for _, p := range profiles {
		if p.Key == k {
			return p, nil
		}
	}
	return model.BeverageProfile{}, fmt.Errorf("%w: %q", ErrUnknownBeverage, key)
}

// SelectedAbv is the ABV the form shows right after a beverage is picked:
// the default rounded to a whole percent.
func SelectedAbv(p model.BeverageProfile) float64 {
	return math.Round(p.DefaultAbvPercent)
}
