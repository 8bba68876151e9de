package middleware

import (
	"net/http"
	"strings"

	"github.com/IlyNosov/Dormitory-Booking/internal/requestid"
)

const maxRequestIDLen = 128

// RequestID takes the request id from the X-Request-Id header, or generates one, stores it
// in the request context and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(requestid.Header))
		if id == "" || len(id) > maxRequestIDLen {
			id = requestid.New()
		}
		w.Header().Set(requestid.Header, id)
		next.ServeHTTP(w, r.WithContext(requestid.NewContext(r.Context(), id)))
	})
}
