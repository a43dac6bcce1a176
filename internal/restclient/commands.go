package restclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"ProfitPulse/internal/model"
)

// Start starts the bot if it is in the stopped state.
func (c *Client) Start() (json.RawMessage, error) { return c.post("start", nil, nil) }

// Stop stops the bot.
func (c *Client) Stop() (json.RawMessage, error) { return c.post("stop", nil, nil) }

// StopBuy stops buying while handling open sells gracefully.
func (c *Client) StopBuy() (json.RawMessage, error) { return c.post("stopbuy", nil, nil) }

// ReloadConf reloads the bot configuration.
func (c *Client) ReloadConf() (json.RawMessage, error) { return c.post("reload_conf", nil, nil) }

// Balance returns the account balance.
func (c *Client) Balance() (json.RawMessage, error) { return c.get("balance", nil) }

// Count returns the number of open trades.
func (c *Client) Count() (json.RawMessage, error) { return c.get("count", nil) }

// Edge returns edge information.
func (c *Client) Edge() (json.RawMessage, error) { return c.get("edge", nil) }

// Performance returns the performance of the different pairs.
func (c *Client) Performance() (json.RawMessage, error) { return c.get("performance", nil) }

// Status returns the status of open trades.
func (c *Client) Status() (json.RawMessage, error) { return c.get("status", nil) }

// Version returns the bot version.
func (c *Client) Version() (json.RawMessage, error) { return c.get("version", nil) }

// ShowConfig returns the trading-relevant parts of the running configuration.
func (c *Client) ShowConfig() (json.RawMessage, error) { return c.get("show_config", nil) }

// Whitelist returns the current pair whitelist.
func (c *Client) Whitelist() (json.RawMessage, error) { return c.get("whitelist", nil) }

// Trades returns trade history, limited to the last limit trades when
// limit > 0.
func (c *Client) Trades(limit int) (json.RawMessage, error) {
	var params url.Values
	if limit > 0 {
		params = url.Values{"limit": {strconv.Itoa(limit)}}
	}
	return c.get("trades", params)
}

// Blacklist returns the pair blacklist. With pairs given, it appends them
// and returns the updated list.
func (c *Client) Blacklist(pairs ...string) (json.RawMessage, error) {
	if len(pairs) == 0 {
		return c.get("blacklist", nil)
	}
	return c.post("blacklist", nil, map[string]any{"blacklist": pairs})
}

// ForceBuy buys a pair, at the given price when price > 0.
func (c *Client) ForceBuy(pair string, price float64) (json.RawMessage, error) {
	body := map[string]any{"pair": pair}
	if price > 0 {
		body["price"] = price
	}
	return c.post("forcebuy", nil, body)
}

// ForceSell sells the trade with the given id.
func (c *Client) ForceSell(tradeID string) (json.RawMessage, error) {
	return c.post("forcesell", nil, map[string]any{"tradeid": tradeID})
}

// Profit fetches and decodes the aggregate profit summary. A connection
// failure yields (nil, nil): no data this cycle.
func (c *Client) Profit() (*model.ProfitSummary, error) {
	raw, err := c.get("profit", nil)
	if err != nil || raw == nil {
		return nil, err
	}
	var p model.ProfitSummary
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode profit: %w", err)
	}
	return &p, nil
}

// Daily fetches and decodes the per-day summary for the last days days
// (server default when days <= 0). A connection failure yields (nil, nil).
func (c *Client) Daily(days int) (*model.DailyResult, error) {
	var params url.Values
	if days > 0 {
		params = url.Values{"timescale": {strconv.Itoa(days)}}
	}
	raw, err := c.get("daily", params)
	if err != nil || raw == nil {
		return nil, err
	}
	var d model.DailyResult
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode daily: %w", err)
	}
	return &d, nil
}
