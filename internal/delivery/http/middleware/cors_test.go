package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	handler := CORS([]string{"http://board.test/", " "}, next)

	tests := []struct {
		name       string
		method     string
		origin     string
		wantStatus int
		wantOrigin string
	}{
		{"preflight allowed", http.MethodOptions, "http://board.test", http.StatusNoContent, "http://board.test"},
		{"preflight other origin", http.MethodOptions, "http://evil.test", http.StatusNoContent, ""},
		{"get allowed", http.MethodGet, "http://board.test", http.StatusOK, "http://board.test"},
		{"get other origin", http.MethodGet, "http://evil.test", http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/board", nil)
			req.Header.Set("Origin", tt.origin)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			if tt.method == http.MethodOptions && tt.wantOrigin != "" {
				assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "X-Request-Id")
			}
		})
	}
}
