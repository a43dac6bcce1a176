package restclient

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// Method is an HTTP verb supported by the control API.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

// ErrInvalidMethod indicates a command configured with an unsupported HTTP
// verb. The fixed registry only carries valid verbs, so hitting this at
// runtime is a programmer error.
var ErrInvalidMethod = errors.New("restclient: invalid HTTP method")

func (m Method) valid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return true
	}
	return false
}

// request is the bound outcome of a command invocation: the verb to use,
// URL query parameters, and an optional JSON body.
type request struct {
	method Method
	params url.Values
	body   any
}

// Command describes one remote operation: its name, default verb, API path
// segment, a one-line description for the help listing, and an optional rule
// binding positional arguments to query parameters or a JSON body.
type Command struct {
	Name        string
	Method      Method
	Path        string
	Description string

	bind func(args []string) (request, error)
}

// registry is the fixed set of remote commands, defined once at startup and
// never mutated. Order is the help-listing order.
var registry = []Command{
	{Name: "start", Method: MethodPost, Path: "start", Description: "Start the bot if it is in the stopped state."},
	{Name: "stop", Method: MethodPost, Path: "stop", Description: "Stop the bot. Use start to restart."},
	{Name: "stopbuy", Method: MethodPost, Path: "stopbuy", Description: "Stop buying but handle open sells gracefully. Use reload_conf to reset."},
	{Name: "reload_conf", Method: MethodPost, Path: "reload_conf", Description: "Reload the bot configuration."},
	{Name: "balance", Method: MethodGet, Path: "balance", Description: "Get the account balance."},
	{Name: "count", Method: MethodGet, Path: "count", Description: "Get the number of open trades."},
	{Name: "daily", Method: MethodGet, Path: "daily", Description: "Get per-day profit, optionally for the last <days> days.", bind: bindDaily},
	{Name: "edge", Method: MethodGet, Path: "edge", Description: "Get edge information."},
	{Name: "profit", Method: MethodGet, Path: "profit", Description: "Get the aggregate profit summary."},
	{Name: "performance", Method: MethodGet, Path: "performance", Description: "Get the performance of the different pairs."},
	{Name: "status", Method: MethodGet, Path: "status", Description: "Get the status of open trades."},
	{Name: "version", Method: MethodGet, Path: "version", Description: "Get the bot version."},
	{Name: "show_config", Method: MethodGet, Path: "show_config", Description: "Get the trading-relevant parts of the running configuration."},
	{Name: "trades", Method: MethodGet, Path: "trades", Description: "Get trade history, optionally limited to the last <limit> trades.", bind: bindTrades},
	{Name: "whitelist", Method: MethodGet, Path: "whitelist", Description: "Get the current pair whitelist."},
	{Name: "blacklist", Method: MethodGet, Path: "blacklist", Description: "Get the pair blacklist, or append the given pairs and return the result.", bind: bindBlacklist},
	{Name: "forcebuy", Method: MethodPost, Path: "forcebuy", Description: "Buy a pair, optionally at the given price.", bind: bindForceBuy},
	{Name: "forcesell", Method: MethodPost, Path: "forcesell", Description: "Sell the trade with the given id.", bind: bindForceSell},
}

// Commands returns the full command registry in help-listing order. It never
// performs network I/O.
func Commands() []Command {
	out := make([]Command, len(registry))
	copy(out, registry)
	return out
}

func lookup(name string) (*Command, bool) {
	for i := range registry {
		if registry[i].Name == name {
			return &registry[i], true
		}
	}
	return nil, false
}

func bindDaily(args []string) (request, error) {
	r := request{method: MethodGet}
	switch len(args) {
	case 0:
	case 1:
		if _, err := strconv.Atoi(args[0]); err != nil {
			return r, fmt.Errorf("days must be an integer, got %q", args[0])
		}
		r.params = url.Values{"timescale": {args[0]}}
	default:
		return r, errors.New("expected at most one argument: <days>")
	}
	return r, nil
}

func bindTrades(args []string) (request, error) {
	r := request{method: MethodGet}
	switch len(args) {
	case 0:
	case 1:
		if _, err := strconv.Atoi(args[0]); err != nil {
			return r, fmt.Errorf("limit must be an integer, got %q", args[0])
		}
		r.params = url.Values{"limit": {args[0]}}
	default:
		return r, errors.New("expected at most one argument: <limit>")
	}
	return r, nil
}

// bindBlacklist is the one dual-verb command: a plain GET without arguments,
// a POST appending the given pairs otherwise.
func bindBlacklist(args []string) (request, error) {
	if len(args) == 0 {
		return request{method: MethodGet}, nil
	}
	return request{method: MethodPost, body: map[string]any{"blacklist": args}}, nil
}

func bindForceBuy(args []string) (request, error) {
	r := request{method: MethodPost}
	switch len(args) {
	case 1:
		r.body = map[string]any{"pair": args[0]}
	case 2:
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return r, fmt.Errorf("price must be a number, got %q", args[1])
		}
		r.body = map[string]any{"pair": args[0], "price": price}
	default:
		return r, errors.New("expected arguments: <pair> [price]")
	}
	return r, nil
}

func bindForceSell(args []string) (request, error) {
	if len(args) != 1 {
		return request{}, errors.New("expected exactly one argument: <tradeid>")
	}
	return request{method: MethodPost, body: map[string]any{"tradeid": args[0]}}, nil
}
