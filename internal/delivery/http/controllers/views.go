package controllers

import (
	"time"

	"github.com/IlyNosov/Dormitory-Booking/internal/domain"
)

// BookingView is a booking as rendered on the board.
type BookingView struct {
	domain.Booking
	Range    string  `json:"range"`
	Duration string  `json:"duration"`
	Active   bool    `json:"active"`
	Progress float64 `json:"progress"`
}

// DayGroup is one calendar day of upcoming bookings.
type DayGroup struct {
	Day      string        `json:"day"`
	Weekend  bool          `json:"weekend"`
	Bookings []BookingView `json:"bookings"`
}

// BoardResponse is the response body for GET /api/board.
type BoardResponse struct {
	Now         time.Time     `json:"now"`
	From        string        `json:"from"`
	Days        int           `json:"days"`
	WindowStart time.Time     `json:"windowStart"`
	WindowEnd   time.Time     `json:"windowEnd"`
	Room        string        `json:"room"`
	Visibility  string        `json:"visibility"`
	Upcoming    []DayGroup    `json:"upcoming"`
	Past        []BookingView `json:"past"`
	FutureCount int           `json:"futureCount"`
}

func newBookingView(b domain.Booking, now time.Time, loc *time.Location) BookingView {
	active, progress := domain.Progress(b, now)
	return BookingView{
		Booking:  b,
		Range:    domain.FormatRange(b.Start, b.End, loc),
		Duration: domain.HumanDuration(b.End.Sub(b.Start)),
		Active:   active,
		Progress: progress,
	}
}

func newBoardResponse(v domain.BoardView, loc *time.Location) BoardResponse {
	resp := BoardResponse{
		Now:         v.Now,
		From:        v.Window.From,
		Days:        v.Window.Days,
		WindowStart: v.WindowStart,
		WindowEnd:   v.WindowEnd,
		Room:        v.Filters.Room.String(),
		Visibility:  string(v.Filters.Visibility),
		Upcoming:    make([]DayGroup, 0, len(v.Buckets.Days)),
		Past:        make([]BookingView, 0, len(v.Buckets.Past)),
		FutureCount: v.Buckets.FutureCount,
	}
	for _, day := range v.Buckets.Days {
		group := DayGroup{
			Day:     day,
			Weekend: domain.IsWeekendDay(domain.DayKeyToDate(day, loc)),
		}
		for _, b := range v.Buckets.FutureByDay[day] {
			group.Bookings = append(group.Bookings, newBookingView(b, v.Now, loc))
		}
		resp.Upcoming = append(resp.Upcoming, group)
	}
	for _, b := range v.Buckets.Past {
		resp.Past = append(resp.Past, newBookingView(b, v.Now, loc))
	}
	return resp
}
