package model

import (
	"strconv"
	"strings"
)

// barFieldCount is the minimum number of comma-separated fields in an
// upstream kline record.
const barFieldCount = 11

// Bar is one trading-period observation (day/week/month/N-minutes).
// Immutable once parsed. low <= open,close <= high is expected but not
// enforced — upstream data occasionally violates it and downstream code
// must tolerate that.
type Bar struct {
	Date         string  `json:"date"` // "2024-01-02", or "2024-01-02 10:30" intraday
	Open         float64 `json:"open"`
	High         float64 `json:"high"`
	Low          float64 `json:"low"`
	Close        float64 `json:"close"`
	Volume       int64   `json:"volume"`
	Amount       float64 `json:"amount"`
	AmplitudePct float64 `json:"amplitude_pct"`
	ChangePct    float64 `json:"change_pct"`
	ChangeAbs    float64 `json:"change_abs"`
	TurnoverPct  float64 `json:"turnover_pct"`
}

// ParseBar converts one raw kline record into a Bar. The record is
// comma-separated with at least 11 fields in feed order:
//
//	date, close, open, high, low, volume, amount,
//	amplitude_pct, change_pct, change_abs, turnover_pct
//
// Close comes before open in the feed; the positional access stops here
// so nothing downstream ever indexes the record again.
func ParseBar(line string) (Bar, error) {
	fields := strings.Split(line, ",")
	if len(fields) < barFieldCount {
		return Bar{}, &MalformedRecordError{
			Line:   line,
			Reason: "expected at least 11 fields, got " + strconv.Itoa(len(fields)),
		}
	}

	bar := Bar{Date: fields[0]}

	numeric := []struct {
		name string
		pos  int
		dst  *float64
	}{
		{"close", 1, &bar.Close},
		{"open", 2, &bar.Open},
		{"high", 3, &bar.High},
		{"low", 4, &bar.Low},
		{"amount", 6, &bar.Amount},
		{"amplitude_pct", 7, &bar.AmplitudePct},
		{"change_pct", 8, &bar.ChangePct},
		{"change_abs", 9, &bar.ChangeAbs},
		{"turnover_pct", 10, &bar.TurnoverPct},
	}
	for _, f := range numeric {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[f.pos]), 64)
		if err != nil {
			return Bar{}, &MalformedRecordError{Line: line, Reason: "bad " + f.name + " field"}
		}
		*f.dst = v
	}

	vol, err := strconv.ParseInt(strings.TrimSpace(fields[5]), 10, 64)
	if err != nil {
		return Bar{}, &MalformedRecordError{Line: line, Reason: "bad volume field"}
	}
	bar.Volume = vol

	return bar, nil
}
