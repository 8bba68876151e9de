package helpers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

// MaxBodyBytes caps request bodies. A booking request is a few hundred bytes.
const MaxBodyBytes = 64 << 10

// Validator is implemented by request DTOs that check their own required fields.
// Validate returns one message per problem; nil or empty means valid.
type Validator interface {
	Validate() []string
}

// DecodeAndValidate reads exactly one JSON object into dest, rejecting unknown fields,
// then runs Validate when dest is a Validator. On failure it writes the error envelope
// and returns false; callers return immediately.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		writeDecodeError(w, err)
		return false
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, "request body must contain a single JSON object")
		return false
	}
	if v, ok := dest.(Validator); ok {
		if errs := v.Validate(); len(errs) > 0 {
			WriteJSONErrorDetails(w, http.StatusBadRequest, ErrCodeBadRequest, strings.Join(errs, "; "), errs)
			return false
		}
	}
	return true
}

func writeDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		WriteJSONError(w, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, "request body is too large")
	case errors.Is(err, io.EOF):
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, "request body is required")
	default:
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	}
}
