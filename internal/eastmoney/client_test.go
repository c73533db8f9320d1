package eastmoney

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/liekkasfc/real-time-stock-mcp-service/internal/model"
)

func testClient(srv *httptest.Server) *Client {
	cfg := DefaultConfig()
	cfg.KlineURL = srv.URL + "/kline"
	cfg.SearchURL = srv.URL + "/search"
	cfg.Timeout = 5 * time.Second
	cfg.Cookies = map[string]string{"qgqp_b_id": "test"}
	return New(cfg)
}

func secID(t *testing.T, code string) model.SecurityID {
	t.Helper()
	id, err := model.Normalize(code)
	if err != nil {
		t.Fatalf("Normalize(%q): %v", code, err)
	}
	return id
}

func TestKlines_RequestShape(t *testing.T) {
	var got url.Values
	var gotUA, gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		gotUA = r.Header.Get("User-Agent")
		if c, err := r.Cookie("qgqp_b_id"); err == nil {
			gotCookie = c.Value
		}
		w.Write([]byte(`{"data":{"code":"600519","name":"贵州茅台","klines":["2024-01-02,10.50,10.20,10.60,10.10,100000,1050000.00,4.76,2.94,0.30,1.20"]}}`))
	}))
	defer srv.Close()

	c := testClient(srv)
	lines, err := c.Klines(context.Background(), secID(t, "600519"), "20240101", "20240131", 101, AdjustForward)
	if err != nil {
		t.Fatalf("Klines: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}

	want := map[string]string{
		"secid":   "1.600519",
		"klt":     "101",
		"fqt":     "1",
		"beg":     "20240101",
		"end":     "20240131",
		"rtntype": "6",
		"ut":      klineUT,
		"fields2": klineFields2,
	}
	for k, v := range want {
		if got.Get(k) != v {
			t.Errorf("query %s = %q, want %q", k, got.Get(k), v)
		}
	}
	if gotUA == "" {
		t.Error("User-Agent header not sent")
	}
	if gotCookie != "test" {
		t.Errorf("cookie qgqp_b_id = %q, want test", gotCookie)
	}
}

func TestKlines_JSONPUnwrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`jQuery351_1234({"data":{"code":"000977","name":"浪潮信息","klines":["2024-01-02,10.50,10.20,10.60,10.10,100000,1050000.00,4.76,2.94,0.30,1.20"]}});`))
	}))
	defer srv.Close()

	lines, err := testClient(srv).Klines(context.Background(), secID(t, "000977"), "20240101", "20240131", 101, AdjustNone)
	if err != nil {
		t.Fatalf("Klines with JSONP body: %v", err)
	}
	if len(lines) != 1 {
		t.Errorf("got %d lines, want 1", len(lines))
	}
}

func TestKlines_NoData(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"null data", `{"data":null}`},
		{"empty klines", `{"data":{"code":"600519","name":"x","klines":[]}}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(c.body))
			}))
			defer srv.Close()

			_, err := testClient(srv).Klines(context.Background(), secID(t, "600519"), "20240101", "20240131", 101, AdjustForward)
			var noData *NoDataError
			if !errors.As(err, &noData) {
				t.Fatalf("error = %v, want *NoDataError", err)
			}
			if noData.Secid != "1.600519" {
				t.Errorf("Secid = %q, want 1.600519", noData.Secid)
			}
		})
	}
}

func TestKlines_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testClient(srv).Klines(context.Background(), secID(t, "600519"), "20240101", "20240131", 101, AdjustForward)
	if err == nil {
		t.Fatal("expected error on upstream 502")
	}
	var noData *NoDataError
	if errors.As(err, &noData) {
		t.Error("a transport failure must not look like a no-data answer")
	}
}

func TestSearch(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"data":[{"code":"600519","name":"贵州茅台","pinyinString":"gzmt"}]}`))
	}))
	defer srv.Close()

	results, err := testClient(srv).Search(context.Background(), "茅台")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Code != "600519" || results[0].Pinyin != "gzmt" {
		t.Errorf("results = %+v", results)
	}
	if got.Get("input") != "茅台" {
		t.Errorf("input param = %q, want 茅台", got.Get("input"))
	}
	if got.Get("dataType") != "[agzqdm]" {
		t.Errorf("dataType param = %q, want [agzqdm]", got.Get("dataType"))
	}
	if got.Get("random") == "" {
		t.Error("cache-buster random param missing")
	}
}

func TestSearch_EmptyResultIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	results, err := testClient(srv).Search(context.Background(), "nosuch")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %+v, want empty", results)
	}
}

func TestUnwrapJSONP(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain object", `{"a":1}`, `{"a":1}`},
		{"plain array", `[1,2]`, `[1,2]`},
		{"callback", `cb({"a":1});`, `{"a":1}`},
		{"callback no semicolon", `jsonp_42({"a":1})`, `{"a":1}`},
		{"whitespace", `  {"a":1}  `, `{"a":1}`},
		{"no parens", `garbage`, `garbage`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := string(unwrapJSONP([]byte(c.in))); got != c.want {
				t.Errorf("unwrapJSONP(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}
