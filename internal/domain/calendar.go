package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DayKeyLayout is the canonical day key layout. Keys sort lexically in chronological order.
const DayKeyLayout = "2006-01-02"

// ToDayKey returns the YYYY-MM-DD key of t's calendar day in t's own location.
func ToDayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// DayKeyToDate returns midnight of the day named by key in loc.
// A missing or unparseable year falls back to the current year, month to January
// and day to the 1st. Out-of-range values normalize the way time.Date does.
func DayKeyToDate(key string, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	parts := strings.Split(strings.TrimSpace(key), "-")
	part := func(i, fallback int) int {
		if i >= len(parts) {
			return fallback
		}
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return fallback
		}
		return n
	}
	y := part(0, time.Now().In(loc).Year())
	m := part(1, 1)
	d := part(2, 1)
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc)
}

// FormatRange renders "02 January · 15:04–16:30" with both instants shown in loc.
func FormatRange(start, end time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	s, e := start.In(loc), end.In(loc)
	return fmt.Sprintf("%s · %s–%s", s.Format("02 January"), s.Format("15:04"), e.Format("15:04"))
}

// IsWeekendDay reports whether t falls on Saturday or Sunday.
func IsWeekendDay(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsFridayOrSaturday reports whether t falls on Friday or Saturday.
func IsFridayOrSaturday(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Friday || wd == time.Saturday
}

// HumanDuration renders d rounded to minutes as "1h 5m" or "45m". Negative values render as "0m".
func HumanDuration(d time.Duration) string {
	m := int(d.Round(time.Minute) / time.Minute)
	if m < 0 {
		m = 0
	}
	if h := m / 60; h > 0 {
		return fmt.Sprintf("%dh %dm", h, m%60)
	}
	return fmt.Sprintf("%dm", m)
}

// DayLimits returns the first and last visible hour of the day table.
// Friday and Saturday run past midnight, so their last hour is 25 (01:00 next day).
// These are the nights a booking may roll over, so Sunday closes at 23.
func DayLimits(day time.Time) (startHour, endHour int) {
	if IsFridayOrSaturday(day) {
		return 6, 25
	}
	return 6, 23
}

// MonthMatrix returns the 42 days of a Monday-first month grid containing the given month.
func MonthMatrix(year int, month time.Month, loc *time.Location) []time.Time {
	if loc == nil {
		loc = time.Local
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	pad := (int(first.Weekday()) + 6) % 7
	start := first.AddDate(0, 0, -pad)
	days := make([]time.Time, 42)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}
