package indicator

// MA computes the arithmetic moving average of values over the given
// window. Undefined (nil) until a full window is available at index
// period-1. Each defined value is the rounded mean of a freshly summed
// window — no rolling subtraction, so recomputation is bit-identical.
func MA(values []float64, period int) []*float64 {
	out := make([]*float64, len(values))
	if period <= 0 {
		return out
	}
	for i := period - 1; i < len(values); i++ {
		sum := 0.0
		for j := i - period + 1; j <= i; j++ {
			sum += values[j]
		}
		out[i] = f64(round2(sum / float64(period)))
	}
	return out
}
