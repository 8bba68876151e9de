package helpers

import (
	"encoding/json"
	"net/http"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeNotFound         = "not_found"
	ErrCodeUnauthorized     = "unauthorized"
	ErrCodeForbidden        = "forbidden"
	ErrCodeConflict         = "conflict"
	ErrCodePayloadTooLarge  = "payload_too_large"
	ErrCodeUpstream         = "upstream_error"
	ErrCodeInternalError    = "internal_error"
)

// statusCodes lists the statuses a booking store rejection keeps when relayed.
var statusCodes = map[int]string{
	http.StatusBadRequest:   ErrCodeBadRequest,
	http.StatusUnauthorized: ErrCodeUnauthorized,
	http.StatusForbidden:    ErrCodeForbidden,
	http.StatusNotFound:     ErrCodeNotFound,
	http.StatusConflict:     ErrCodeConflict,
}

// APIError is the error object in the standardized API response envelope.
// Details lists individual problems when there is more than one.
// swagger:model APIError
type APIError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// APIResponse is the standardized envelope for all API responses.
// On success: Data is set, Error is nil. On error: Data is nil, Error is set.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// RelayStatus maps an upstream status onto the status and code the board answers
// with. Statuses the client can act on pass through; everything else is a bad gateway.
func RelayStatus(upstream int) (int, string) {
	if code, ok := statusCodes[upstream]; ok {
		return upstream, code
	}
	return http.StatusBadGateway, ErrCodeUpstream
}

// WriteJSONSuccess writes data in the envelope with error set to nil.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeEnvelope(w, statusCode, APIResponse{Data: data})
}

// WriteJSONError writes an envelope with data nil and the given error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	writeEnvelope(w, statusCode, APIResponse{Error: &APIError{Code: code, Message: message}})
}

// WriteJSONErrorDetails is WriteJSONError with the individual problems attached.
func WriteJSONErrorDetails(w http.ResponseWriter, statusCode int, code, message string, details []string) {
	writeEnvelope(w, statusCode, APIResponse{Error: &APIError{Code: code, Message: message, Details: details}})
}

func writeEnvelope(w http.ResponseWriter, statusCode int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}
