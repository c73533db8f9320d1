package indicator

// MACD computes DIF, DEA and the histogram over a close column.
//
//	DIF  = EMA(close, fast) - EMA(close, slow)
//	DEA  = EMA(DIF, signal)
//	hist = 2 * (DIF - DEA)
//
// The histogram is computed from the unrounded DIF/DEA and rounded
// last; rounding the inputs first drifts the histogram away from
// standard charting output. DIF and DEA are rounded independently for
// publication.
func MACD(closes []float64, fast, slow, signal int) (dif, dea, hist []*float64) {
	n := len(closes)
	dif = make([]*float64, n)
	dea = make([]*float64, n)
	hist = make([]*float64, n)
	if n == 0 {
		return dif, dea, hist
	}

	emaFast := EMA(Column(closes), fast)
	emaSlow := EMA(Column(closes), slow)

	rawDif := make([]*float64, n)
	for i := 0; i < n; i++ {
		if emaFast[i] != nil && emaSlow[i] != nil {
			rawDif[i] = f64(*emaFast[i] - *emaSlow[i])
		}
	}
	rawDea := EMA(rawDif, signal)

	for i := 0; i < n; i++ {
		if rawDif[i] != nil && rawDea[i] != nil {
			hist[i] = f64(round2(2 * (*rawDif[i] - *rawDea[i])))
		}
		if rawDif[i] != nil {
			dif[i] = f64(round2(*rawDif[i]))
		}
		if rawDea[i] != nil {
			dea[i] = f64(round2(*rawDea[i]))
		}
	}
	return dif, dea, hist
}
