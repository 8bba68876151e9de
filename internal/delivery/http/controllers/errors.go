package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/IlyNosov/Dormitory-Booking/internal/delivery/http/helpers"
	"github.com/IlyNosov/Dormitory-Booking/internal/domain"
)

// writeBoardError maps a board operation error onto the response envelope. Rule
// violations are 422, store rejections keep their meaning, and anything else
// from the store is reported as a bad gateway with a readable message.
func writeBoardError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeValidationFailed, verr.Error())
		return
	}

	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)

	var serr *domain.StoreError
	if errors.As(err, &serr) {
		status, code := helpers.RelayStatus(serr.Status)
		helpers.WriteJSONError(w, status, code, domain.HumanizeStoreError(serr.Error()))
		return
	}
	helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeUpstream, domain.HumanizeStoreError(err.Error()))
}
