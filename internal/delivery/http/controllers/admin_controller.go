package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/IlyNosov/Dormitory-Booking/internal/delivery/http/helpers"
	"github.com/IlyNosov/Dormitory-Booking/internal/domain"
)

// AdminLoginRequest is the request body for POST /admin/login.
type AdminLoginRequest struct {
	Token string `json:"token"`
}

// AdminStatus reports whether an admin token is stored.
type AdminStatus struct {
	Admin bool `json:"admin"`
}

// AdminStatusSuccessResponse is the success response envelope for the admin endpoints (200).
type AdminStatusSuccessResponse struct {
	Data  AdminStatus       `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type AdminController struct {
	Logger  *slog.Logger
	Service domain.AdminService
	// Board is refetched after login and logout so store-computed permissions follow the token.
	Board domain.BoardService
}

func NewAdminController(logger *slog.Logger, svc domain.AdminService, board domain.BoardService) *AdminController {
	return &AdminController{
		Logger:  logger,
		Service: svc,
		Board:   board,
	}
}

// Status godoc
// @Summary Admin status
// @Description Reports whether an admin token is stored locally.
// @Tags admin
// @Produce json
// @Success 200 {object} controllers.AdminStatusSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/status [get]
func (c *AdminController) Status(w http.ResponseWriter, r *http.Request) {
	admin, err := c.Service.IsAdmin(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, AdminStatus{Admin: admin})
}

// Login godoc
// @Summary Store an admin token
// @Description Stores the token locally; it is sent verbatim with every following booking store request. The token is not verified here.
// @Tags admin
// @Accept json
// @Produce json
// @Param login body AdminLoginRequest true "Admin token"
// @Success 200 {object} controllers.AdminStatusSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/login [post]
func (c *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var req AdminLoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.Login(r.Context(), req.Token); err != nil {
		if errors.Is(err, domain.ErrAdminTokenBlank) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "token is required")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	c.refetch(r)
	helpers.WriteJSONSuccess(w, http.StatusOK, AdminStatus{Admin: true})
}

// Logout godoc
// @Summary Remove the admin token
// @Tags admin
// @Produce json
// @Success 200 {object} controllers.AdminStatusSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/logout [post]
func (c *AdminController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Logout(r.Context()); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	c.refetch(r)
	helpers.WriteJSONSuccess(w, http.StatusOK, AdminStatus{Admin: false})
}

func (c *AdminController) refetch(r *http.Request) {
	if c.Board == nil {
		return
	}
	if err := c.Board.Refresh(r.Context()); err != nil {
		c.Logger.WarnContext(r.Context(), "refetch after admin change failed", "err", err)
	}
}
