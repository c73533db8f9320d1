package indicator

import (
	"errors"

	"github.com/liekkasfc/real-time-stock-mcp-service/internal/model"
)

// ErrInsufficientData is returned by Compute for an empty series.
// Everything else — flat windows, one-sided markets, short histories —
// resolves to defined values or warm-up nils, never an error.
var ErrInsufficientData = errors.New("insufficient data: bar series is empty")

// Compute derives the full indicator set for a series: MA 5/10/20/60,
// MACD(12,26,9), RSI 6/12/24 and KDJ(9,3,3). The output has exactly one
// point per input bar, date-aligned in order. The series is never
// mutated; concurrent callers may share it.
func Compute(series model.BarSeries) ([]model.IndicatorPoint, error) {
	if len(series) == 0 {
		return nil, ErrInsufficientData
	}

	closes := series.Closes()
	highs := series.Highs()
	lows := series.Lows()

	ma5 := MA(closes, 5)
	ma10 := MA(closes, 10)
	ma20 := MA(closes, 20)
	ma60 := MA(closes, 60)

	dif, dea, hist := MACD(closes, macdFast, macdSlow, macdSignal)
	rsi6 := RSI(closes, 6)
	rsi12 := RSI(closes, 12)
	rsi24 := RSI(closes, 24)
	k, d, j := KDJ(highs, lows, closes, kdjPeriod, kdjKSmooth, kdjDSmooth)

	points := make([]model.IndicatorPoint, len(series))
	for i := range series {
		points[i] = model.IndicatorPoint{
			Date:     series[i].Date,
			MA5:      ma5[i],
			MA10:     ma10[i],
			MA20:     ma20[i],
			MA60:     ma60[i],
			MACDDif:  dif[i],
			MACDDea:  dea[i],
			MACDHist: hist[i],
			RSI6:     rsi6[i],
			RSI12:    rsi12[i],
			RSI24:    rsi24[i],
			KDJK:     k[i],
			KDJD:     d[i],
			KDJJ:     j[i],
		}
	}
	return points, nil
}
