package model

import "sort"

// BarSeries is an ordered bar sequence: strictly ascending by date, no
// duplicate dates. It is owned by the caller; the indicator engine only
// ever reads it.
type BarSeries []Bar

// Assemble parses raw kline records into a BarSeries. Records are sorted
// ascending by date (providers do not all return a stable order). When
// the feed re-sends a date, the later record in feed order wins — a
// re-sent bar supersedes the earlier one.
//
// Returns ErrEmptySeries when lines is empty and the first parse error
// otherwise; a single malformed record rejects the whole batch.
func Assemble(lines []string) (BarSeries, error) {
	if len(lines) == 0 {
		return nil, ErrEmptySeries
	}

	bars := make(BarSeries, 0, len(lines))
	for _, line := range lines {
		bar, err := ParseBar(line)
		if err != nil {
			return nil, err
		}
		bars = append(bars, bar)
	}

	// Stable sort keeps feed order within a date, so keep-last below
	// keeps the record the feed sent last.
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Date < bars[j].Date })

	out := bars[:1]
	for _, bar := range bars[1:] {
		if out[len(out)-1].Date == bar.Date {
			out[len(out)-1] = bar
			continue
		}
		out = append(out, bar)
	}
	return out, nil
}

// Closes returns the close column.
func (s BarSeries) Closes() []float64 {
	out := make([]float64, len(s))
	for i := range s {
		out[i] = s[i].Close
	}
	return out
}

// Highs returns the high column.
func (s BarSeries) Highs() []float64 {
	out := make([]float64, len(s))
	for i := range s {
		out[i] = s[i].High
	}
	return out
}

// Lows returns the low column.
func (s BarSeries) Lows() []float64 {
	out := make([]float64, len(s))
	for i := range s {
		out[i] = s[i].Low
	}
	return out
}
