// Package kline composes the pipeline behind the service's query
// operations: normalize the identifier, fetch raw records, assemble the
// series, compute indicators. The packages underneath stay pure; all
// I/O and fallback policy lives here.
package kline

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/liekkasfc/real-time-stock-mcp-service/internal/eastmoney"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/indicator"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/metrics"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/model"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/xueqiu"
)

// warmupDays is how far GetTechnicalIndicators extends the fetch window
// before the requested start so MA60/MACD/RSI have history to warm up
// on. The extra leading points are filtered out of the response.
const warmupDays = 60

// Fetcher retrieves raw kline records for a security.
type Fetcher interface {
	Klines(ctx context.Context, id model.SecurityID, beg, end string, klt, fqt int) ([]string, error)
}

// Quoter retrieves a real-time spot quote for a security.
type Quoter interface {
	Quote(ctx context.Context, id model.SecurityID) (*xueqiu.QuoteResult, error)
}

// BarStore persists raw records and serves them back by date range.
type BarStore interface {
	Put(ctx context.Context, secid string, klt int, lines []string) error
	Range(ctx context.Context, secid string, klt int, beg, end string) ([]string, error)
}

// Service answers kline, indicator and spot-quote queries.
type Service struct {
	fetcher Fetcher
	quoter  Quoter   // optional; nil disables real-time quotes
	store   BarStore // optional; nil disables the local fallback
	met     *metrics.Metrics
	log     *slog.Logger
	fqt     int
}

// New builds a Service. quoter and store may be nil.
func New(fetcher Fetcher, quoter Quoter, store BarStore, met *metrics.Metrics, log *slog.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		quoter:  quoter,
		store:   store,
		met:     met,
		log:     log,
		fqt:     eastmoney.AdjustForward,
	}
}

// GetKline returns the assembled bar series for a security between two
// YYYY-MM-DD dates (inclusive).
func (s *Service) GetKline(ctx context.Context, code, start, end string, freq model.Frequency) (model.SecurityID, model.BarSeries, error) {
	id, err := model.Normalize(code)
	if err != nil {
		return model.SecurityID{}, nil, err
	}

	lines, err := s.fetch(ctx, id, start, end, freq.Klt())
	if err != nil {
		return id, nil, err
	}

	series, err := model.Assemble(lines)
	if err != nil {
		return id, nil, err
	}
	s.met.BarsAssembled.Add(float64(len(series)))
	return id, series, nil
}

// GetTechnicalIndicators returns indicator points for a security between
// two YYYY-MM-DD dates. The fetch window is silently extended backwards
// by warmupDays so the leading points of the requested range carry
// fully warmed-up values; points before start are dropped afterwards.
func (s *Service) GetTechnicalIndicators(ctx context.Context, code, start, end string, freq model.Frequency) (model.SecurityID, []model.IndicatorPoint, error) {
	id, err := model.Normalize(code)
	if err != nil {
		return model.SecurityID{}, nil, err
	}

	extStart := start
	if t, perr := time.Parse("2006-01-02", start); perr == nil {
		extStart = t.AddDate(0, 0, -warmupDays).Format("2006-01-02")
	}

	lines, err := s.fetch(ctx, id, extStart, end, freq.Klt())
	if err != nil {
		return id, nil, err
	}

	series, err := model.Assemble(lines)
	if err != nil {
		return id, nil, err
	}
	s.met.BarsAssembled.Add(float64(len(series)))

	began := time.Now()
	points, err := indicator.Compute(series)
	if err != nil {
		return id, nil, err
	}
	s.met.ComputeDur.Observe(time.Since(began).Seconds())

	// Drop the warm-up extension; dates are ISO-ordered strings so a
	// plain comparison is a date comparison.
	kept := points[:0:0]
	for _, p := range points {
		if p.Date >= start {
			kept = append(kept, p)
		}
	}
	return id, kept, nil
}

// ErrNoQuoteSource is returned by GetRealTimeQuote when no quote
// upstream is configured.
var ErrNoQuoteSource = errors.New("no real-time quote source configured")

// GetRealTimeQuote returns the spot snapshot for a security.
func (s *Service) GetRealTimeQuote(ctx context.Context, code string) (model.SecurityID, *xueqiu.QuoteResult, error) {
	id, err := model.Normalize(code)
	if err != nil {
		return model.SecurityID{}, nil, err
	}
	if s.quoter == nil {
		return id, nil, ErrNoQuoteSource
	}

	res, err := s.quoter.Quote(ctx, id)
	if err != nil {
		s.met.QuotesTotal.WithLabelValues("error").Inc()
		return id, nil, err
	}
	s.met.QuotesTotal.WithLabelValues("ok").Inc()
	return id, res, nil
}

// Search proxies a keyword search when the fetcher supports it.
func (s *Service) Search(ctx context.Context, keyword string) ([]eastmoney.SearchResult, error) {
	type searcher interface {
		Search(ctx context.Context, keyword string) ([]eastmoney.SearchResult, error)
	}
	if sr, ok := s.fetcher.(searcher); ok {
		return sr.Search(ctx, keyword)
	}
	return nil, nil
}

// fetch pulls records from upstream, writing through to the local store
// on success. On an upstream transport failure it serves the stored
// range instead, so a flaky feed degrades to stale data rather than an
// error. A NoDataError is authoritative and is never masked by the
// store.
func (s *Service) fetch(ctx context.Context, id model.SecurityID, start, end string, klt int) ([]string, error) {
	lines, err := s.fetcher.Klines(ctx, id, compactDate(start), compactDate(end), klt, s.fqt)
	switch {
	case err == nil:
		s.met.FetchesTotal.WithLabelValues("ok").Inc()
		if s.store != nil {
			if perr := s.store.Put(ctx, id.String(), klt, lines); perr != nil {
				s.log.Warn("bar store write failed", slog.String("secid", id.String()), slog.Any("err", perr))
			}
		}
		return lines, nil

	case isNoData(err):
		s.met.FetchesTotal.WithLabelValues("no_data").Inc()
		return nil, err

	default:
		s.met.FetchesTotal.WithLabelValues("error").Inc()
		if s.store == nil {
			return nil, err
		}
		stored, serr := s.store.Range(ctx, id.String(), klt, start, end)
		if serr != nil || len(stored) == 0 {
			return nil, err
		}
		s.met.StaleServes.Inc()
		s.log.Warn("serving stale bars after upstream failure",
			slog.String("secid", id.String()), slog.Int("bars", len(stored)), slog.Any("err", err))
		return stored, nil
	}
}

func isNoData(err error) bool {
	var nde *eastmoney.NoDataError
	return errors.As(err, &nde)
}

// compactDate turns "2024-01-02" into the upstream's "20240102".
func compactDate(d string) string {
	return strings.ReplaceAll(d, "-", "")
}
