package domain

import (
	"slices"
	"time"
)

// DefaultWindowDays is the number of days shown when none is requested.
const DefaultWindowDays = 7

// WindowDayOptions are the window lengths offered to users.
var WindowDayOptions = []int{1, 3, 5, 7, 10, 14}

// Window is the visible span of calendar days starting at From (a day key).
type Window struct {
	From string
	Days int
}

// Bounds returns the half-open instant range [start, end) covered by w in loc.
func (w Window) Bounds(loc *time.Location) (start, end time.Time) {
	start = DayKeyToDate(w.From, loc)
	end = start.Add(time.Duration(w.Days) * 24 * time.Hour)
	return start, end
}

// Overlaps reports whether b intersects the half-open range [start, end).
func Overlaps(b Booking, start, end time.Time) bool {
	return !(!b.End.After(start) || !b.Start.Before(end))
}

// Buckets is the derived, disposable view of the booking list.
type Buckets struct {
	// FutureByDay maps a day key (of the booking start in the view location) to
	// bookings ordered by start.
	FutureByDay map[string][]Booking
	// Days lists the keys of FutureByDay in chronological order.
	Days []string
	// Past holds bookings that already ended, most recently ended first.
	Past []Booking
	// FutureCount is the number of bookings placed into FutureByDay.
	FutureCount int
}

// Bucket splits bookings into past and future-by-day groups. A booking is past when
// it ended before now; otherwise it is shown when it overlaps the window. Both groups
// honour filters. Bucket is a pure function of its arguments and never modifies
// the bookings slice.
func Bucket(bookings []Booking, now time.Time, w Window, f Filters, loc *time.Location) Buckets {
	if loc == nil {
		loc = time.Local
	}
	ws, we := w.Bounds(loc)

	sorted := slices.Clone(bookings)
	slices.SortStableFunc(sorted, func(a, b Booking) int {
		return a.Start.Compare(b.Start)
	})

	out := Buckets{
		FutureByDay: make(map[string][]Booking),
		Days:        []string{},
		Past:        []Booking{},
	}
	for _, b := range sorted {
		if b.End.Before(now) {
			if f.Match(b) {
				out.Past = append(out.Past, b)
			}
			continue
		}
		if !Overlaps(b, ws, we) || !f.Match(b) {
			continue
		}
		key := ToDayKey(b.Start.In(loc))
		if _, ok := out.FutureByDay[key]; !ok {
			out.Days = append(out.Days, key)
		}
		out.FutureByDay[key] = append(out.FutureByDay[key], b)
		out.FutureCount++
	}

	slices.Sort(out.Days)
	slices.SortStableFunc(out.Past, func(a, b Booking) int {
		return b.End.Compare(a.End)
	})
	return out
}

// Progress reports whether b is running at now and how much of it has elapsed, in [0, 1].
func Progress(b Booking, now time.Time) (active bool, ratio float64) {
	if now.Before(b.Start) || now.After(b.End) {
		return false, 0
	}
	total := b.End.Sub(b.Start)
	if total <= 0 {
		return true, 1
	}
	ratio = float64(now.Sub(b.Start)) / float64(total)
	return true, min(1, max(0, ratio))
}
