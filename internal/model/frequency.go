package model

// Frequency selects the kline period.
type Frequency string

const (
	FreqDaily   Frequency = "d"
	FreqWeekly  Frequency = "w"
	FreqMonthly Frequency = "m"
	Freq5Min    Frequency = "5"
	Freq15Min   Frequency = "15"
	Freq30Min   Frequency = "30"
	Freq60Min   Frequency = "60"
)

// Klt returns the upstream klt parameter for this frequency.
// Unrecognized frequencies fall back to daily, matching the upstream
// client's behavior.
func (f Frequency) Klt() int {
	switch f {
	case Freq5Min:
		return 5
	case Freq15Min:
		return 15
	case Freq30Min:
		return 30
	case Freq60Min:
		return 60
	case FreqWeekly:
		return 102
	case FreqMonthly:
		return 103
	default:
		return 101
	}
}

// Intraday reports whether the frequency is minute-level.
func (f Frequency) Intraday() bool {
	switch f {
	case Freq5Min, Freq15Min, Freq30Min, Freq60Min:
		return true
	}
	return false
}
