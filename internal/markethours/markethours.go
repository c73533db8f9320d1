// Package markethours answers whether the Shanghai/Shenzhen exchanges
// are trading at a given instant, so pollers can idle outside sessions.
package markethours

import (
	"fmt"
	"time"
)

// CST is China Standard Time (UTC+8). Both exchanges trade on it.
var CST = time.FixedZone("CST", 8*3600)

// A-share sessions in CST. The exchanges trade a split day with a lunch
// break between the morning and afternoon sessions.
const (
	MorningOpenHour     = 9
	MorningOpenMinute   = 30
	MorningCloseHour    = 11
	MorningCloseMinute  = 30
	AfternoonOpenHour   = 13
	AfternoonOpenMinute = 0
	CloseHour           = 15
	CloseMinute         = 0
)

// IsMarketOpen reports whether t falls within an A-share trading
// session (9:30–11:30 or 13:00–15:00 CST, Mon–Fri, excluding holidays).
func IsMarketOpen(t time.Time) bool {
	cst := t.In(CST)
	if !IsTradingDay(cst) {
		return false
	}
	hm := cst.Hour()*60 + cst.Minute()
	morning := hm >= MorningOpenHour*60+MorningOpenMinute && hm < MorningCloseHour*60+MorningCloseMinute
	afternoon := hm >= AfternoonOpenHour*60+AfternoonOpenMinute && hm < CloseHour*60+CloseMinute
	return morning || afternoon
}

// IsWeekday reports whether t is Mon–Fri in CST.
func IsWeekday(t time.Time) bool {
	wd := t.In(CST).Weekday()
	return wd >= time.Monday && wd <= time.Friday
}

// IsTradingDay reports whether t is a weekday and not an exchange
// holiday.
func IsTradingDay(t time.Time) bool {
	cst := t.In(CST)
	return IsWeekday(cst) && !IsHoliday(cst)
}

// NextOpen returns the next session open: the morning open of the next
// trading day, today's morning open if t is before it, or today's
// afternoon open during the lunch break.
func NextOpen(t time.Time) time.Time {
	cst := t.In(CST)

	if IsTradingDay(cst) {
		morning := time.Date(cst.Year(), cst.Month(), cst.Day(), MorningOpenHour, MorningOpenMinute, 0, 0, CST)
		if cst.Before(morning) {
			return morning
		}
		afternoon := time.Date(cst.Year(), cst.Month(), cst.Day(), AfternoonOpenHour, AfternoonOpenMinute, 0, 0, CST)
		lunchStart := time.Date(cst.Year(), cst.Month(), cst.Day(), MorningCloseHour, MorningCloseMinute, 0, 0, CST)
		if !cst.Before(lunchStart) && cst.Before(afternoon) {
			return afternoon
		}
	}

	d := cst.AddDate(0, 0, 1)
	for i := 0; i < 30; i++ { // Spring Festival closures can run over a week
		if IsTradingDay(d) {
			return time.Date(d.Year(), d.Month(), d.Day(), MorningOpenHour, MorningOpenMinute, 0, 0, CST)
		}
		d = d.AddDate(0, 0, 1)
	}
	return time.Date(cst.Year(), cst.Month(), cst.Day()+1, MorningOpenHour, MorningOpenMinute, 0, 0, CST)
}

// TodayClose returns today's final close (15:00 CST).
func TodayClose(t time.Time) time.Time {
	cst := t.In(CST)
	return time.Date(cst.Year(), cst.Month(), cst.Day(), CloseHour, CloseMinute, 0, 0, CST)
}

// TimeUntilClose returns the duration until today's final close, or 0
// if it has passed.
func TimeUntilClose(t time.Time) time.Duration {
	d := TodayClose(t).Sub(t.In(CST))
	if d < 0 {
		return 0
	}
	return d
}

// StatusString returns a human-readable market status.
func StatusString(t time.Time) string {
	if IsMarketOpen(t) {
		return fmt.Sprintf("Market Open — closes in %s", fmtDur(TimeUntilClose(t)))
	}
	next := NextOpen(t)
	cst := next.In(CST)
	return fmt.Sprintf("Market Closed — opens %s %s (%s)",
		cst.Weekday().String()[:3], cst.Format("15:04"), fmtDur(next.Sub(t)))
}

func fmtDur(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
