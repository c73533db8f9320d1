package indicator

// EMA computes an exponential moving average over an optional column
// with multiplier 2/(period+1).
//
// The recurrence seeds at the first defined input value — not a simple
// mean of the first period values — so the EMA of a fully-defined column
// is defined from index 0. Indices before the seed stay nil; a nil input
// after the seed yields a nil output without disturbing the running
// value. Output values are unrounded: callers that publish EMA-derived
// numbers round once at the end of their own formula.
func EMA(values []*float64, period int) []*float64 {
	out := make([]*float64, len(values))
	multiplier := 2.0 / float64(period+1)

	ema := 0.0
	seeded := false
	for i, v := range values {
		if v == nil {
			continue
		}
		if !seeded {
			ema = *v
			seeded = true
		} else {
			ema = (*v-ema)*multiplier + ema
		}
		out[i] = f64(ema)
	}
	return out
}
