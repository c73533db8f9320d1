package model

// IndicatorPoint is the per-bar indicator output. Nil fields are
// undefined — the indicator's warm-up window has not passed yet. That is
// a first-class state, distinct from zero, and marshals as JSON null.
type IndicatorPoint struct {
	Date string `json:"date"`

	MA5  *float64 `json:"ma5"`
	MA10 *float64 `json:"ma10"`
	MA20 *float64 `json:"ma20"`
	MA60 *float64 `json:"ma60"`

	MACDDif  *float64 `json:"macd_dif"`
	MACDDea  *float64 `json:"macd_dea"`
	MACDHist *float64 `json:"macd_hist"`

	RSI6  *float64 `json:"rsi6"`
	RSI12 *float64 `json:"rsi12"`
	RSI24 *float64 `json:"rsi24"`

	KDJK *float64 `json:"kdj_k"`
	KDJD *float64 `json:"kdj_d"`
	KDJJ *float64 `json:"kdj_j"`
}
