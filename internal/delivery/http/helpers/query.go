package helpers

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/IlyNosov/Dormitory-Booking/internal/domain"
)

// ParseWindow reads from and days from the query string. A missing from means the
// day of now in loc; a missing days means domain.DefaultWindowDays. days must be one
// of domain.WindowDayOptions.
func ParseWindow(r *http.Request, now time.Time, loc *time.Location) (domain.Window, error) {
	q := r.URL.Query()
	w := domain.Window{From: domain.ToDayKey(now.In(loc)), Days: domain.DefaultWindowDays}
	if s := strings.TrimSpace(q.Get("from")); s != "" {
		if _, err := time.ParseInLocation(domain.DayKeyLayout, s, loc); err != nil {
			return domain.Window{}, fmt.Errorf("from must be YYYY-MM-DD")
		}
		w.From = s
	}
	if s := strings.TrimSpace(q.Get("days")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || !slices.Contains(domain.WindowDayOptions, n) {
			return domain.Window{}, fmt.Errorf("days must be one of %v", domain.WindowDayOptions)
		}
		w.Days = n
	}
	return w, nil
}

// ParseFilters reads room and visibility from the query string.
func ParseFilters(r *http.Request) (domain.Filters, error) {
	q := r.URL.Query()
	room, err := domain.ParseRoomFilter(q.Get("room"))
	if err != nil {
		return domain.Filters{}, fmt.Errorf("room must be all, 21, 132 or 256")
	}
	vis, err := domain.ParseVisibilityFilter(q.Get("visibility"))
	if err != nil {
		return domain.Filters{}, fmt.Errorf("visibility must be all, public or private")
	}
	return domain.Filters{Room: room, Visibility: vis}, nil
}

// ParseMonth reads year and month from the query string, defaulting to now's month.
func ParseMonth(r *http.Request, now time.Time) (int, time.Month, error) {
	q := r.URL.Query()
	year, month := now.Year(), now.Month()
	if s := strings.TrimSpace(q.Get("year")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 9999 {
			return 0, 0, fmt.Errorf("year must be a number between 1 and 9999")
		}
		year = n
	}
	if s := strings.TrimSpace(q.Get("month")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 12 {
			return 0, 0, fmt.Errorf("month must be a number between 1 and 12")
		}
		month = time.Month(n)
	}
	return year, month, nil
}
