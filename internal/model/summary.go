package model

// ProfitSummary is the control API's aggregate profit response.
type ProfitSummary struct {
	ProfitClosedCoin float64 `json:"profit_closed_coin"`
	ProfitAllCoin    float64 `json:"profit_all_coin"`
	BestPair         string  `json:"best_pair"`
	BestRate         float64 `json:"best_rate"`
	TradeCount       int     `json:"trade_count"`
	ClosedTradeCount int     `json:"closed_trade_count"`
	FirstTradeDate   string  `json:"first_trade_date"`
	LatestTradeDate  string  `json:"latest_trade_date"`
	AvgDuration      string  `json:"avg_duration"`
}

// DailyEntry is a single day's performance within a daily summary response.
type DailyEntry struct {
	Date       string  `json:"date"`
	AbsProfit  float64 `json:"abs_profit"`
	FiatValue  float64 `json:"fiat_value"`
	TradeCount int     `json:"trade_count"`
}

// DailyResult is the control API's daily summary response. Entries are
// ordered most recent first; only the first entry is consumed per cycle.
type DailyResult struct {
	Data []DailyEntry `json:"data"`
}

// Latest returns the most recent day entry, or nil if the response is empty.
func (d *DailyResult) Latest() *DailyEntry {
	if d == nil || len(d.Data) == 0 {
		return nil
	}
	return &d.Data[0]
}
