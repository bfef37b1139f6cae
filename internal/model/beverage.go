package model

// BeverageKey is the stable lookup key of a catalog entry.
type BeverageKey string

const (
	BeverageSomaek    BeverageKey = "somaek"
	BeverageSoju      BeverageKey = "soju"
	BeverageBeer      BeverageKey = "beer"
	BeverageMakgeolli BeverageKey = "makgeolli"
	BeverageLiquor    BeverageKey = "liquor"
)

// BeverageProfile describes one standard glass of a drink.
type BeverageProfile struct {
	Key                 BeverageKey
	Name                string
	MillilitersPerGlass float64
	DefaultAbvPercent   float64
}
