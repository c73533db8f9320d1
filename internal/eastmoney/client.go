// Package eastmoney fetches raw kline records and security matches from
// the Eastmoney / SSE public endpoints.
//
// All request state — headers, cookies, timeouts — lives on an explicit
// Config passed at construction. There is no shared session or global
// mutable state; independent Clients never interfere.
package eastmoney

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/liekkasfc/real-time-stock-mcp-service/internal/model"
)

// Price adjustment modes (fqt).
const (
	AdjustNone     = 0
	AdjustForward  = 1
	AdjustBackward = 2
)

// fields1/fields2 select the response metadata and the per-bar columns.
// fields2 (f51..f61) maps to the 11-field record the bar parser expects.
const (
	klineFields1 = "f1,f2,f3,f4,f5,f6,f7,f8,f9,f10,f11,f12,f13"
	klineFields2 = "f51,f52,f53,f54,f55,f56,f57,f58,f59,f60,f61"
	klineUT      = "fa5fd1943c7b386f172d6893dbfba10b"
)

// Config carries everything a Client needs to talk to the upstream.
type Config struct {
	KlineURL  string
	SearchURL string
	UserAgent string
	Referer   string
	Timeout   time.Duration
	Cookies   map[string]string
}

// DefaultConfig returns the production endpoints with browser-like
// headers. The cookie set is optional; the kline endpoint usually
// answers without it.
func DefaultConfig() Config {
	return Config{
		KlineURL:  "https://push2his.eastmoney.com/api/qt/stock/kline/get",
		SearchURL: "https://www.sse.org.cn/api/report/shortname/gethangqing",
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/142.0.0.0 Safari/537.36",
		Referer:   "https://quote.eastmoney.com/",
		Timeout:   20 * time.Second,
	}
}

// Client fetches klines and search results. Safe for concurrent use.
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

// NoDataError reports an upstream response that carried no klines for
// the query. Deterministic and non-retryable: the security/date range
// combination simply has no bars.
type NoDataError struct {
	Secid string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no kline data for secid %s", e.Secid)
}

type klineResponse struct {
	Data *struct {
		Code   string   `json:"code"`
		Name   string   `json:"name"`
		Klines []string `json:"klines"`
	} `json:"data"`
}

// Klines fetches raw kline records for a security. beg and end are
// YYYYMMDD dates; klt is the period code (model.Frequency.Klt); fqt the
// adjustment mode. Returns the raw delimited records untouched — parsing
// is the series assembler's job.
func (c *Client) Klines(ctx context.Context, id model.SecurityID, beg, end string, klt, fqt int) ([]string, error) {
	params := url.Values{
		"fields1": {klineFields1},
		"fields2": {klineFields2},
		"beg":     {beg},
		"end":     {end},
		"ut":      {klineUT},
		"rtntype": {"6"},
		"secid":   {id.String()},
		"klt":     {strconv.Itoa(klt)},
		"fqt":     {strconv.Itoa(fqt)},
	}

	body, err := c.get(ctx, c.cfg.KlineURL, params)
	if err != nil {
		return nil, fmt.Errorf("kline fetch %s: %w", id, err)
	}

	var resp klineResponse
	if err := json.Unmarshal(unwrapJSONP(body), &resp); err != nil {
		return nil, fmt.Errorf("kline decode %s: %w", id, err)
	}
	if resp.Data == nil || len(resp.Data.Klines) == 0 {
		return nil, &NoDataError{Secid: id.String()}
	}
	return resp.Data.Klines, nil
}

func (c *Client) get(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json, text/plain, */*")
	if c.cfg.Referer != "" {
		req.Header.Set("Referer", c.cfg.Referer)
	}
	for name, value := range c.cfg.Cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 16<<20))
}
