package metrics

import (
	"fmt"
	"strings"

	"ProfitPulse/internal/model"
)

// ComposeReport derives the percentage metrics for one poll cycle and
// composes the 8-line report text. Line order is fixed: the record store and
// the social post both rely on it.
//
// All percentages divide by startingCapital except the position size, which
// divides by current capital (starting capital plus closed profit) so that
// position sizing compounds with realized profit.
func ComposeReport(profit *model.ProfitSummary, day *model.DailyEntry, startingCapital, positionSize float64) (*model.DerivedReport, error) {
	closedProfitToday, err := Percentage(day.AbsProfit, startingCapital)
	if err != nil {
		return nil, fmt.Errorf("closed profit today: %w", err)
	}
	closedProfitPctTotal, err := Percentage(profit.ProfitClosedCoin, startingCapital)
	if err != nil {
		return nil, fmt.Errorf("closed profit total: %w", err)
	}
	openProfitPctTotal, err := Percentage(profit.ProfitAllCoin, startingCapital)
	if err != nil {
		return nil, fmt.Errorf("open profit total: %w", err)
	}
	currentCapital := startingCapital + profit.ProfitClosedCoin
	positionSizePct, err := Percentage(positionSize, currentCapital)
	if err != nil {
		return nil, fmt.Errorf("position size: %w", err)
	}
	bestPairProfitPct, err := Percentage(profit.BestRate, startingCapital)
	if err != nil {
		return nil, fmt.Errorf("best pair profit: %w", err)
	}

	rep := &model.DerivedReport{
		Day:                  day.Date,
		ClosedProfitToday:    closedProfitToday,
		TradesToday:          day.TradeCount,
		ClosedProfitPctTotal: closedProfitPctTotal,
		OpenProfitPctTotal:   openProfitPctTotal,
		PositionSizePct:      positionSizePct,
		BestPair:             profit.BestPair,
		BestPairProfitPct:    bestPairProfitPct,
		AllTrades:            profit.TradeCount,
		ClosedTrades:         profit.ClosedTradeCount,
		LastAction:           profit.LatestTradeDate,
		AvgDuration:          profit.AvgDuration,
	}

	lines := []string{
		fmt.Sprintf("Closed profit today (%s): %s%%", rep.Day, rep.ClosedProfitToday),
		fmt.Sprintf("Trades today: %d", rep.TradesToday),
		fmt.Sprintf("Open/closed total profit: %s%%/%s%%", rep.OpenProfitPctTotal, rep.ClosedProfitPctTotal),
		fmt.Sprintf("Position size: %s%%", rep.PositionSizePct),
		fmt.Sprintf("Best: %s (%s%%)", rep.BestPair, rep.BestPairProfitPct),
		fmt.Sprintf("All trades/closed: %d/%d", rep.AllTrades, rep.ClosedTrades),
		fmt.Sprintf("Last action: %s", rep.LastAction),
		fmt.Sprintf("Average trade duration: %s", rep.AvgDuration),
	}
	rep.Text = strings.Join(lines, "\n")
	return rep, nil
}
