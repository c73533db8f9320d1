package markethours

import "time"

// Exchange holidays for 2026, shared by SSE and SZSE.
// Source: the exchanges' joint closure announcement. Lunar-calendar
// dates past mid-year are tentative until the final notice.
var holidays2026 = []struct {
	month time.Month
	day   int
}{
	{time.January, 1}, // New Year's Day
	{time.January, 2}, // New Year's Day (bridge)

	// Spring Festival
	{time.February, 16},
	{time.February, 17},
	{time.February, 18},
	{time.February, 19},
	{time.February, 20},
	{time.February, 23},

	{time.April, 6}, // Qingming Festival (observed)

	// Labour Day
	{time.May, 1},
	{time.May, 4},
	{time.May, 5},

	{time.June, 19}, // Dragon Boat Festival (tentative)

	{time.September, 25}, // Mid-Autumn Festival (tentative)

	// National Day
	{time.October, 1},
	{time.October, 2},
	{time.October, 5},
	{time.October, 6},
	{time.October, 7},
}

// IsHoliday reports whether t (in CST) falls on an exchange holiday.
func IsHoliday(t time.Time) bool {
	cst := t.In(CST)
	if cst.Year() != 2026 {
		return false
	}
	for _, h := range holidays2026 {
		if cst.Month() == h.month && cst.Day() == h.day {
			return true
		}
	}
	return false
}
