package restclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const apiPrefix = "/api/v1/"

// Client talks to the trading bot's control API. One method call translates
// into exactly one HTTP request; responses are returned as raw JSON with no
// schema validation.
type Client struct {
	baseURL  string
	username string
	password string
	http     *http.Client
	logger   zerolog.Logger
}

// New creates a client for the given base URL. When username is non-empty,
// every request carries HTTP basic authentication.
func New(baseURL, username, password string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		password: password,
		http:     &http.Client{Timeout: 30 * time.Second},
		logger:   log.With().Str("module", "restclient").Logger(),
	}
}

// call sends one request. A transport-level connection failure is not an
// error to the caller: it is logged as a warning and surfaces as (nil, nil),
// meaning "no data this cycle". Non-2xx statuses are returned as errors.
func (c *Client) call(method Method, apipath string, params url.Values, body any) (json.RawMessage, error) {
	if !method.valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}

	endpoint := c.baseURL + apiPrefix + apipath
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(string(method), endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("path", apipath).Msg("connection error, no data this cycle")
		return nil, nil
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s %s: status %d, body: %s", method, apipath, resp.StatusCode, string(raw))
	}
	return json.RawMessage(raw), nil
}

func (c *Client) get(apipath string, params url.Values) (json.RawMessage, error) {
	return c.call(MethodGet, apipath, params, nil)
}

func (c *Client) post(apipath string, params url.Values, body any) (json.RawMessage, error) {
	return c.call(MethodPost, apipath, params, body)
}

// Invoke runs a registry command by name with CLI-style positional arguments.
// The command's binding rule maps the arguments onto query parameters or a
// JSON body; unknown names and malformed arguments fail before any network
// I/O.
func (c *Client) Invoke(name string, args []string) (json.RawMessage, error) {
	cmd, ok := lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown command %q", name)
	}
	r := request{method: cmd.Method}
	if cmd.bind != nil {
		var err error
		r, err = cmd.bind(args)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	} else if len(args) > 0 {
		return nil, fmt.Errorf("%s takes no arguments", name)
	}
	return c.call(r.method, cmd.Path, r.params, r.body)
}
