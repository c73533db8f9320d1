// Package indicator computes MA, MACD, RSI and KDJ columns over an
// assembled bar series.
//
// Every function is pure: same input, bit-identical output. Each output
// column has the same length as the input, with nil marking the warm-up
// indices where the indicator is undefined. Defined values are rounded
// to 2 decimals with round-half-to-even, applied once on the final value
// of each formula — never on intermediate terms.
package indicator

import "strconv"

// Standard chart parameters.
const (
	macdFast   = 12
	macdSlow   = 26
	macdSignal = 9

	kdjPeriod  = 9
	kdjKSmooth = 3
	kdjDSmooth = 3
)

// round2 rounds to two decimal places, half to even, correctly rounded
// from the float's exact value. Multiplying by 100 first is not
// equivalent: the product can land on an exact .5 purely through binary
// error (100.94500000000001*100 is exactly 10094.5) and a non-tie value
// then gets tie-broken a cent off. The decimal formatter sees the true
// value, so only genuine ties hit the even rule.
func round2(x float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	return v
}

func f64(v float64) *float64 { return &v }

// Column lifts a fully-defined value slice into an optional column.
func Column(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		out[i] = &values[i]
	}
	return out
}
