package render

import (
	"fmt"
	"strings"
)

// Number formats a value with thousand separators and two decimals.
func Number(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	whole, frac, _ := strings.Cut(s, ".")
	return addCommas(whole) + "." + frac
}

// Optional formats an indicator value, rendering undefined (nil) as
// "N/A" so a warm-up gap can never be confused with a zero reading.
func Optional(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return Number(*v)
}

// LargeNumber formats volumes and turnover amounts in the 万/亿 units
// the upstream charts use.
func LargeNumber(v float64) string {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1e8:
		return fmt.Sprintf("%.2f亿", v/1e8)
	case abs >= 1e4:
		return fmt.Sprintf("%.2f万", v/1e4)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

func addCommas(whole string) string {
	neg := strings.HasPrefix(whole, "-")
	if neg {
		whole = whole[1:]
	}
	if len(whole) > 3 {
		var parts []string
		for len(whole) > 3 {
			parts = append([]string{whole[len(whole)-3:]}, parts...)
			whole = whole[:len(whole)-3]
		}
		whole = whole + "," + strings.Join(parts, ",")
	}
	if neg {
		return "-" + whole
	}
	return whole
}
