package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/IlyNosov/Dormitory-Booking/internal/delivery/http/helpers"
	"github.com/IlyNosov/Dormitory-Booking/internal/domain"
)

// CreateBookingRequest is the request body for POST /api/bookings. Date is YYYY-MM-DD,
// startTime and endTime are HH:MM wall-clock values in the board time zone.
type CreateBookingRequest struct {
	Date         string      `json:"date"`
	StartTime    string      `json:"startTime"`
	EndTime      string      `json:"endTime"`
	Room         domain.Room `json:"room"`
	Title        string      `json:"title"`
	OwnerContact string      `json:"ownerContact"`
	IsPrivate    bool        `json:"isPrivate"`
	Description  string      `json:"description"`
}

// Validate implements Validator. Only presence of the time fields is checked here;
// the booking rules run in the board service.
func (c CreateBookingRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Date) == "" {
		errs = append(errs, "date is required")
	}
	if strings.TrimSpace(c.StartTime) == "" {
		errs = append(errs, "startTime is required")
	}
	if strings.TrimSpace(c.EndTime) == "" {
		errs = append(errs, "endTime is required")
	}
	return errs
}

func (c CreateBookingRequest) candidate() domain.Candidate {
	return domain.Candidate{
		Date:         c.Date,
		StartTime:    c.StartTime,
		EndTime:      c.EndTime,
		Room:         c.Room,
		Title:        c.Title,
		OwnerContact: c.OwnerContact,
		IsPrivate:    c.IsPrivate,
		Description:  c.Description,
	}
}

// BoardSuccessResponse is the success response envelope for GET /api/board (200).
type BoardSuccessResponse struct {
	Data  BoardResponse     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// BookingSuccessResponse is the success response envelope for POST /api/bookings (201).
type BookingSuccessResponse struct {
	Data  BookingView       `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// BookingListSuccessResponse is the success response envelope for GET /api/bookings (200).
type BookingListSuccessResponse struct {
	Data  []BookingView     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type BoardController struct {
	Logger *slog.Logger
	Board  domain.BoardService
}

func NewBoardController(logger *slog.Logger, board domain.BoardService) *BoardController {
	return &BoardController{
		Logger: logger,
		Board:  board,
	}
}

// GetBoard godoc
// @Summary Get the booking board
// @Description Buckets the current booking list into upcoming bookings grouped by day (within the window) and past bookings (most recently ended first). Filters never change the underlying list.
// @Tags board
// @Produce json
// @Param from query string false "First day of the window (YYYY-MM-DD), default today"
// @Param days query int false "Window length in days: 1, 3, 5, 7, 10 or 14" default(7)
// @Param room query string false "all, 21, 132 or 256" default(all)
// @Param visibility query string false "all, public or private" default(all)
// @Success 200 {object} controllers.BoardSuccessResponse "data contains the bucketed board"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /api/board [get]
func (c *BoardController) GetBoard(w http.ResponseWriter, r *http.Request) {
	loc := c.Board.Location()
	window, err := helpers.ParseWindow(r, c.Board.Now(), loc)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	filters, err := helpers.ParseFilters(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, newBoardResponse(c.Board.View(window, filters), loc))
}

// ListBookings godoc
// @Summary List bookings
// @Description Returns the full in-memory booking list as last fetched from the booking store.
// @Tags bookings
// @Produce json
// @Success 200 {object} controllers.BookingListSuccessResponse "data contains all bookings"
// @Router /api/bookings [get]
func (c *BoardController) ListBookings(w http.ResponseWriter, r *http.Request) {
	now, loc := c.Board.Now(), c.Board.Location()
	list := c.Board.Bookings()
	out := make([]BookingView, 0, len(list))
	for _, b := range list {
		out = append(out, newBookingView(b, now, loc))
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, out)
}

// CreateBooking godoc
// @Summary Create a booking
// @Description Validates the request against the booking rules and submits it to the booking store. Rule violations are reported without contacting the store. The created booking is added to the board without a refetch.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body CreateBookingRequest true "Booking request"
// @Success 201 {object} controllers.BookingSuccessResponse "data contains the created booking"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 422 {object} helpers.APIResponse "error.code: validation_failed"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /api/bookings [post]
func (c *BoardController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	created, err := c.Board.Create(r.Context(), req.candidate())
	if err != nil {
		writeBoardError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, newBookingView(created, c.Board.Now(), c.Board.Location()))
}

// DeleteBooking godoc
// @Summary Delete a booking
// @Description Removes the booking from the board and asks the booking store to delete it. If the store refuses, the board is refetched and the store's reason is returned. The store decides who may delete; the owner contact and any admin token are passed through.
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Param ownerContact query string false "Owner contact of the booking"
// @Success 204 "deleted"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /api/bookings/{id} [delete]
func (c *BoardController) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	if err := c.Board.Delete(r.Context(), id, r.URL.Query().Get("ownerContact")); err != nil {
		writeBoardError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Refresh godoc
// @Summary Refetch bookings
// @Description Replaces the board's booking list with the booking store's. Under the return_empty fetch policy a failing store yields an empty board instead of an error.
// @Tags board
// @Produce json
// @Success 200 {object} controllers.BookingListSuccessResponse "data contains all bookings"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /api/refresh [post]
func (c *BoardController) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := c.Board.Refresh(r.Context()); err != nil {
		writeBoardError(w, r, c.Logger, err)
		return
	}
	c.ListBookings(w, r)
}
