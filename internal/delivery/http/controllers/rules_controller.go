package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/IlyNosov/Dormitory-Booking/internal/delivery/http/helpers"
	"github.com/IlyNosov/Dormitory-Booking/internal/domain"
)

// RulesResponse is the response body for GET /api/rules.
type RulesResponse struct {
	Rules              []string      `json:"rules"`
	Rooms              []domain.Room `json:"rooms"`
	WindowDayOptions   []int         `json:"windowDayOptions"`
	DefaultWindowDays  int           `json:"defaultWindowDays"`
	MaxPrivateDuration string        `json:"maxPrivateDuration"`
	TimeZone           string        `json:"timeZone"`
}

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date      string `json:"date"`
	InMonth   bool   `json:"inMonth"`
	Weekend   bool   `json:"weekend"`
	Today     bool   `json:"today"`
	FirstHour int    `json:"firstHour"`
	LastHour  int    `json:"lastHour"`
	Bookings  int    `json:"bookings"`
}

// CalendarResponse is the response body for GET /api/calendar.
type CalendarResponse struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []CalendarDay `json:"days"`
}

// RulesSuccessResponse is the success response envelope for GET /api/rules (200).
type RulesSuccessResponse struct {
	Data  RulesResponse     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CalendarSuccessResponse is the success response envelope for GET /api/calendar (200).
type CalendarSuccessResponse struct {
	Data  CalendarResponse  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type RulesController struct {
	Logger *slog.Logger
	Board  domain.BoardService
}

func NewRulesController(logger *slog.Logger, board domain.BoardService) *RulesController {
	return &RulesController{
		Logger: logger,
		Board:  board,
	}
}

// Rules godoc
// @Summary Booking rules
// @Description Lists the booking rules and the options offered by the board.
// @Tags rules
// @Produce json
// @Success 200 {object} controllers.RulesSuccessResponse
// @Router /api/rules [get]
func (c *RulesController) Rules(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, RulesResponse{
		Rules:              domain.RulesSummary(),
		Rooms:              domain.Rooms(),
		WindowDayOptions:   domain.WindowDayOptions,
		DefaultWindowDays:  domain.DefaultWindowDays,
		MaxPrivateDuration: domain.HumanDuration(domain.MaxPrivateDuration),
		TimeZone:           c.Board.Location().String(),
	})
}

// Calendar godoc
// @Summary Month grid
// @Description Returns a six-week, Monday-first grid for the month with the number of bookings starting on each day.
// @Tags rules
// @Produce json
// @Param year query int false "Year, default current"
// @Param month query int false "Month 1-12, default current"
// @Success 200 {object} controllers.CalendarSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /api/calendar [get]
func (c *RulesController) Calendar(w http.ResponseWriter, r *http.Request) {
	loc := c.Board.Location()
	now := c.Board.Now()
	year, month, err := helpers.ParseMonth(r, now)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}

	perDay := make(map[string]int)
	for _, b := range c.Board.Bookings() {
		perDay[domain.ToDayKey(b.Start.In(loc))]++
	}
	today := domain.ToDayKey(now)

	resp := CalendarResponse{Year: year, Month: int(month)}
	for _, day := range domain.MonthMatrix(year, month, loc) {
		key := domain.ToDayKey(day)
		first, last := domain.DayLimits(day)
		resp.Days = append(resp.Days, CalendarDay{
			Date:      key,
			InMonth:   day.Month() == month,
			Weekend:   domain.IsWeekendDay(day),
			Today:     key == today,
			FirstHour: first,
			LastHour:  last,
			Bookings:  perDay[key],
		})
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /healthz [get]
func (c *RulesController) Health(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok", "time": c.Board.Now().Format(time.RFC3339)})
}
