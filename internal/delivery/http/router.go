package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IlyNosov/Dormitory-Booking/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(board *controllers.BoardController, admin *controllers.AdminController, rules *controllers.RulesController) *http.ServeMux {
	mux := http.NewServeMux()

	// Board
	mux.HandleFunc("GET /api/board", board.GetBoard)
	mux.HandleFunc("GET /api/bookings", board.ListBookings)
	mux.HandleFunc("POST /api/bookings", board.CreateBooking)
	mux.HandleFunc("DELETE /api/bookings/{id}", board.DeleteBooking)
	mux.HandleFunc("POST /api/refresh", board.Refresh)

	// Reference data
	mux.HandleFunc("GET /api/rules", rules.Rules)
	mux.HandleFunc("GET /api/calendar", rules.Calendar)
	mux.HandleFunc("GET /healthz", rules.Health)

	// Admin token
	mux.HandleFunc("GET /admin/status", admin.Status)
	mux.HandleFunc("POST /admin/login", admin.Login)
	mux.HandleFunc("POST /admin/logout", admin.Logout)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
