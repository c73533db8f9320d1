// Package xueqiu fetches real-time spot quotes from the Xueqiu quote
// endpoint. Like the kline client, all request state lives on an
// explicit Config; there is no shared session.
package xueqiu

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/liekkasfc/real-time-stock-mcp-service/internal/model"
)

// Config carries the quote endpoint and request headers. The endpoint
// wants a logged-in session cookie; without one it answers 400.
type Config struct {
	QuoteURL  string
	UserAgent string
	Referer   string
	Cookie    string // raw Cookie header value
	Timeout   time.Duration
}

// DefaultConfig returns the production endpoint with browser-like
// headers. Cookie must be supplied by the caller.
func DefaultConfig() Config {
	return Config{
		QuoteURL:  "https://stock.xueqiu.com/v5/stock/quote.json",
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/142.0.0.0 Safari/537.36",
		Referer:   "https://xueqiu.com/",
		Timeout:   10 * time.Second,
	}
}

// Client fetches spot quotes. Safe for concurrent use.
type Client struct {
	cfg  Config
	http *http.Client
}

// New builds a Client around the given config.
func New(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				TLSHandshakeTimeout: 10 * time.Second,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 4,
			},
		},
	}
}

// UpstreamError reports a non-zero error code in the quote response
// body, for example an expired session token.
type UpstreamError struct {
	Code        int
	Description string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("quote upstream error %d: %s", e.Code, e.Description)
}

// Quote is the spot snapshot for one security. Numeric fields are
// pointers: the upstream sends null for suspended or pre-listing
// securities, and null must stay distinct from zero.
type Quote struct {
	Symbol    string   `json:"symbol"`
	Name      string   `json:"name"`
	Current   *float64 `json:"current"`
	Chg       *float64 `json:"chg"`
	Percent   *float64 `json:"percent"`
	Open      *float64 `json:"open"`
	High      *float64 `json:"high"`
	Low       *float64 `json:"low"`
	LastClose *float64 `json:"last_close"`
	AvgPrice  *float64 `json:"avg_price"`

	Volume       *int64   `json:"volume"`
	Amount       *float64 `json:"amount"`
	TurnoverRate *float64 `json:"turnover_rate"`
	VolumeRatio  *float64 `json:"volume_ratio"`
	Amplitude    *float64 `json:"amplitude"`

	MarketCapital      *float64 `json:"market_capital"`
	FloatMarketCapital *float64 `json:"float_market_capital"`
	PETTM              *float64 `json:"pe_ttm"`
	PB                 *float64 `json:"pb"`
	EPS                *float64 `json:"eps"`
	NAVPS              *float64 `json:"navps"`
	DividendYield      *float64 `json:"dividend_yield"`

	LimitUp            *float64 `json:"limit_up"`
	LimitDown          *float64 `json:"limit_down"`
	High52W            *float64 `json:"high52w"`
	Low52W             *float64 `json:"low52w"`
	CurrentYearPercent *float64 `json:"current_year_percent"`

	Timestamp *int64 `json:"timestamp"` // epoch milliseconds
}

// MarketStatus is the trading-session state reported with the quote.
type MarketStatus struct {
	Status string `json:"status"`
}

// QuoteResult bundles the quote with its market session state.
type QuoteResult struct {
	Quote  Quote        `json:"quote"`
	Market MarketStatus `json:"market"`
}

type quoteResponse struct {
	Data             *QuoteResult `json:"data"`
	ErrorCode        int          `json:"error_code"`
	ErrorDescription string       `json:"error_description"`
}

// Quote fetches the spot snapshot for a security.
func (c *Client) Quote(ctx context.Context, id model.SecurityID) (*QuoteResult, error) {
	params := url.Values{
		"symbol": {id.ExchangeSymbol()},
		"extend": {"detail"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.QuoteURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json, text/plain, */*")
	if c.cfg.Referer != "" {
		req.Header.Set("Referer", c.cfg.Referer)
	}
	if c.cfg.Cookie != "" {
		req.Header.Set("Cookie", c.cfg.Cookie)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quote fetch %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote fetch %s: upstream status %d", id, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("quote fetch %s: %w", id, err)
	}

	var decoded quoteResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("quote decode %s: %w", id, err)
	}
	if decoded.ErrorCode != 0 {
		return nil, &UpstreamError{Code: decoded.ErrorCode, Description: decoded.ErrorDescription}
	}
	if decoded.Data == nil {
		return nil, fmt.Errorf("quote decode %s: empty data", id)
	}
	return decoded.Data, nil
}
