package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/liekkasfc/real-time-stock-mcp-service/internal/eastmoney"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/kline"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/logger"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/model"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/render"
)

type queryParams struct {
	code   string
	start  string
	end    string
	freq   model.Frequency
	format string // "json" or "markdown"
}

func parseQuery(r *http.Request) (queryParams, error) {
	q := r.URL.Query()
	p := queryParams{
		code:   q.Get("code"),
		start:  q.Get("start"),
		end:    q.Get("end"),
		freq:   model.Frequency(q.Get("frequency")),
		format: q.Get("format"),
	}
	if p.code == "" || p.start == "" || p.end == "" {
		return p, errors.New("code, start and end are required")
	}
	if p.freq == "" {
		p.freq = model.FreqDaily
	}
	if p.format == "" {
		p.format = "json"
	}
	if p.format != "json" && p.format != "markdown" {
		return p, fmt.Errorf("unknown format %q", p.format)
	}
	return p, nil
}

func (s *Server) handleKline(w http.ResponseWriter, r *http.Request) {
	p, err := parseQuery(r)
	if err != nil {
		s.fail(w, r, "kline", http.StatusBadRequest, err)
		return
	}

	s.respondCached(w, r, "kline", p, func(ctx context.Context) (string, string, error) {
		id, series, err := s.svc.GetKline(ctx, p.code, p.start, p.end, p.freq)
		if err != nil {
			return "", "", err
		}
		if p.format == "markdown" {
			return render.KlineTable(p.code, series, p.freq), "text/markdown; charset=utf-8", nil
		}
		return jsonBody(map[string]any{"secid": id.String(), "bars": series})
	})
}

func (s *Server) handleIndicators(w http.ResponseWriter, r *http.Request) {
	p, err := parseQuery(r)
	if err != nil {
		s.fail(w, r, "indicators", http.StatusBadRequest, err)
		return
	}

	s.respondCached(w, r, "indicators", p, func(ctx context.Context) (string, string, error) {
		id, points, err := s.svc.GetTechnicalIndicators(ctx, p.code, p.start, p.end, p.freq)
		if err != nil {
			return "", "", err
		}
		if p.format == "markdown" {
			return render.IndicatorTable(p.code, points, p.freq), "text/markdown; charset=utf-8", nil
		}
		return jsonBody(map[string]any{"secid": id.String(), "indicators": points})
	})
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		s.fail(w, r, "quote", http.StatusBadRequest, errors.New("code is required"))
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "markdown" {
		s.fail(w, r, "quote", http.StatusBadRequest, fmt.Errorf("unknown format %q", format))
		return
	}

	// Spot data goes stale in seconds; it bypasses the response cache.
	id, res, err := s.svc.GetRealTimeQuote(r.Context(), code)
	if err != nil {
		s.fail(w, r, "quote", statusFor(err), err)
		return
	}
	if format == "markdown" {
		s.ok(w, "quote", render.QuoteList(res), "text/markdown; charset=utf-8")
		return
	}
	body, contentType, _ := jsonBody(map[string]any{"secid": id.String(), "quote": res.Quote, "market": res.Market})
	s.ok(w, "quote", body, contentType)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	if keyword == "" {
		s.fail(w, r, "search", http.StatusBadRequest, errors.New("keyword is required"))
		return
	}
	results, err := s.svc.Search(r.Context(), keyword)
	if err != nil {
		s.fail(w, r, "search", http.StatusBadGateway, err)
		return
	}
	if results == nil {
		results = []eastmoney.SearchResult{}
	}
	body, contentType, _ := jsonBody(map[string]any{"results": results})
	s.ok(w, "search", body, contentType)
}

// respondCached serves from the response cache when possible, otherwise
// builds the payload and stores it.
func (s *Server) respondCached(w http.ResponseWriter, r *http.Request, endpoint string, p queryParams, build func(context.Context) (body, contentType string, err error)) {
	key := fmt.Sprintf("%s|%s|%s|%s|%s|%s", endpoint, p.code, p.start, p.end, p.freq, p.format)
	contentType := "application/json"
	if p.format == "markdown" {
		contentType = "text/markdown; charset=utf-8"
	}

	if s.cache != nil {
		if body, err := s.cache.Get(r.Context(), key); err == nil {
			s.met.CacheHits.Inc()
			s.ok(w, endpoint, body, contentType)
			return
		}
		s.met.CacheMisses.Inc()
	}

	body, contentType, err := build(r.Context())
	if err != nil {
		s.fail(w, r, endpoint, statusFor(err), err)
		return
	}
	if s.cache != nil {
		s.cache.Set(r.Context(), key, body)
	}
	s.ok(w, endpoint, body, contentType)
}

func (s *Server) ok(w http.ResponseWriter, endpoint, body, contentType string) {
	s.met.RequestsTotal.WithLabelValues(endpoint, "200").Inc()
	w.Header().Set("Content-Type", contentType)
	w.Write([]byte(body))
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, endpoint string, status int, err error) {
	s.met.RequestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	attrs := append(logger.LogWithTrace(r.Context()),
		slog.String("endpoint", endpoint), slog.Int("status", status), slog.Any("err", err))
	s.log.Warn("request failed", attrs...)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// statusFor maps the service error taxonomy onto HTTP statuses: caller
// mistakes are 4xx, upstream data problems 502.
func statusFor(err error) int {
	var invalidID *model.InvalidIdentifierError
	var noData *eastmoney.NoDataError
	var malformed *model.MalformedRecordError
	switch {
	case errors.As(err, &invalidID):
		return http.StatusBadRequest
	case errors.As(err, &noData), errors.Is(err, model.ErrEmptySeries):
		return http.StatusNotFound
	case errors.Is(err, kline.ErrNoQuoteSource):
		return http.StatusNotImplemented
	case errors.As(err, &malformed):
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}

func jsonBody(v any) (string, string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", "", err
	}
	return string(b), "application/json", nil
}
