package indicator

// KDJ computes the stochastic K/D/J columns.
//
// RSV at index i is the position of the close within the period-window
// high/low range, scaled to 0..100; a flat window (high == low) reads
// exactly 50 rather than dividing by zero. K and D smooth recursively
// from a fixed seed of 50 carried from before the first RSV exists: K
// recurses on its own unrounded running value against each RSV, while D
// consumes the published (rounded) K readings — the convention charting
// packages follow. J = 3K - 2D from the published K and D. All three are
// nil until the first full RSV window.
func KDJ(highs, lows, closes []float64, period, kSmooth, dSmooth int) (kOut, dOut, jOut []*float64) {
	n := len(closes)
	kOut = make([]*float64, n)
	dOut = make([]*float64, n)
	jOut = make([]*float64, n)

	rsv := make([]*float64, n)
	for i := period - 1; i < n; i++ {
		windowHigh := highs[i-period+1]
		windowLow := lows[i-period+1]
		for j := i - period + 2; j <= i; j++ {
			if highs[j] > windowHigh {
				windowHigh = highs[j]
			}
			if lows[j] < windowLow {
				windowLow = lows[j]
			}
		}
		if windowHigh == windowLow {
			rsv[i] = f64(50)
		} else {
			rsv[i] = f64((closes[i] - windowLow) / (windowHigh - windowLow) * 100)
		}
	}

	k := 50.0
	for i, r := range rsv {
		if r == nil {
			continue
		}
		k = (k*float64(kSmooth-1) + *r) / float64(kSmooth)
		kOut[i] = f64(round2(k))
	}

	d := 50.0
	for i, kv := range kOut {
		if kv == nil {
			continue
		}
		d = (d*float64(dSmooth-1) + *kv) / float64(dSmooth)
		dOut[i] = f64(round2(d))
	}

	for i := 0; i < n; i++ {
		if kOut[i] != nil && dOut[i] != nil {
			jOut[i] = f64(round2(3**kOut[i] - 2**dOut[i]))
		}
	}
	return kOut, dOut, jOut
}
