package model

// DerivedReport holds the percentage metrics computed from one poll cycle
// plus the composed multi-line text. Percentages are pre-formatted to two
// decimal places; the record store persists them as written.
type DerivedReport struct {
	Day                  string
	ClosedProfitToday    string
	TradesToday          int
	ClosedProfitPctTotal string
	OpenProfitPctTotal   string
	PositionSizePct      string
	BestPair             string
	BestPairProfitPct    string
	AllTrades            int
	ClosedTrades         int
	LastAction           string
	AvgDuration          string
	Text                 string
}
