package indicator

// RSI computes the Relative Strength Index with Wilder smoothing.
//
// The first average gain/loss is a simple mean of the first period
// changes, so the column becomes defined exactly at index period (index
// 0 has no change and never receives a value). From there the averages
// follow Wilder's recurrence avg = (avg*(period-1) + x) / period. A zero
// average loss yields exactly 100 — a one-sided market is a defined
// reading, not an error. Series of length <= period are entirely
// undefined.
func RSI(closes []float64, period int) []*float64 {
	n := len(closes)
	out := make([]*float64, n)
	if period <= 0 || n <= period {
		return out
	}

	gains := make([]float64, n)
	losses := make([]float64, n)
	for i := 1; i < n; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains[i] = change
		} else {
			losses[i] = -change
		}
	}

	sumGain, sumLoss := 0.0, 0.0
	for i := 1; i <= period; i++ {
		sumGain += gains[i]
		sumLoss += losses[i]
	}
	p := float64(period)
	avgGain := sumGain / p
	avgLoss := sumLoss / p
	out[period] = rsiValue(avgGain, avgLoss)

	for i := period + 1; i < n; i++ {
		avgGain = (avgGain*(p-1) + gains[i]) / p
		avgLoss = (avgLoss*(p-1) + losses[i]) / p
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out
}

func rsiValue(avgGain, avgLoss float64) *float64 {
	if avgLoss == 0 {
		return f64(100.0)
	}
	rs := avgGain / avgLoss
	return f64(round2(100 - 100/(1+rs)))
}
