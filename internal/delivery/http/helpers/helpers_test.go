package helpers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IlyNosov/Dormitory-Booking/internal/domain"
)

var msk = time.FixedZone("MSK", 3*60*60)

func TestParseWindow(t *testing.T) {
	now := time.Date(2025, 1, 8, 22, 30, 0, 0, time.UTC) // already the 9th in MSK
	tests := []struct {
		name    string
		query   string
		want    domain.Window
		wantErr bool
	}{
		{name: "defaults", query: "", want: domain.Window{From: "2025-01-09", Days: 7}},
		{name: "explicit", query: "?from=2025-02-01&days=14", want: domain.Window{From: "2025-02-01", Days: 14}},
		{name: "bad from", query: "?from=01.02.2025", wantErr: true},
		{name: "days not offered", query: "?days=2", wantErr: true},
		{name: "days not a number", query: "?days=week", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/board"+tt.query, nil)
			got, err := ParseWindow(r, now, msk)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFilters(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    domain.Filters
		wantErr bool
	}{
		{name: "defaults", query: "", want: domain.Filters{Room: domain.RoomFilterAll, Visibility: domain.VisibilityAll}},
		{name: "room and private", query: "?room=256&visibility=private", want: domain.Filters{Room: 256, Visibility: domain.VisibilityPrivate}},
		{name: "unknown room", query: "?room=100", wantErr: true},
		{name: "unknown visibility", query: "?visibility=secret", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/board"+tt.query, nil)
			got, err := ParseFilters(r)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMonth(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, msk)

	y, m, err := ParseMonth(httptest.NewRequest(http.MethodGet, "/api/calendar", nil), now)
	require.NoError(t, err)
	assert.Equal(t, 2025, y)
	assert.Equal(t, time.March, m)

	y, m, err = ParseMonth(httptest.NewRequest(http.MethodGet, "/api/calendar?year=2024&month=2", nil), now)
	require.NoError(t, err)
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.February, m)

	_, _, err = ParseMonth(httptest.NewRequest(http.MethodGet, "/api/calendar?month=13", nil), now)
	assert.Error(t, err)
}

type validatedBody struct {
	Name string `json:"name"`
}

func (b validatedBody) Validate() []string {
	if b.Name == "" {
		return []string{"name is required"}
	}
	return nil
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantOK      bool
		wantStatus  int
		wantCode    string
		wantSubstr  string
		wantDetails []string
	}{
		{name: "valid", body: `{"name":"x"}`, wantOK: true},
		{name: "invalid json", body: `{`, wantStatus: http.StatusBadRequest, wantCode: ErrCodeBadRequest, wantSubstr: "unexpected EOF"},
		{name: "empty body", body: ``, wantStatus: http.StatusBadRequest, wantCode: ErrCodeBadRequest, wantSubstr: "body is required"},
		{name: "unknown field", body: `{"name":"x","extra":1}`, wantStatus: http.StatusBadRequest, wantCode: ErrCodeBadRequest, wantSubstr: "unknown field"},
		{name: "trailing object", body: `{"name":"x"}{"name":"y"}`, wantStatus: http.StatusBadRequest, wantCode: ErrCodeBadRequest, wantSubstr: "single JSON object"},
		{
			name:        "validation",
			body:        `{}`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrCodeBadRequest,
			wantSubstr:  "name is required",
			wantDetails: []string{"name is required"},
		},
		{
			name:       "too large",
			body:       `{"name":"` + strings.Repeat("x", MaxBodyBytes) + `"}`,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   ErrCodePayloadTooLarge,
			wantSubstr: "too large",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			var dest validatedBody
			ok := DecodeAndValidate(rr, r, &dest)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "x", dest.Name)
				return
			}
			require.Equal(t, tt.wantStatus, rr.Code)
			var env APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			assert.Contains(t, env.Error.Message, tt.wantSubstr)
			assert.Equal(t, tt.wantDetails, env.Error.Details)
		})
	}
}

func TestRelayStatus(t *testing.T) {
	tests := []struct {
		upstream   int
		wantStatus int
		wantCode   string
	}{
		{http.StatusBadRequest, http.StatusBadRequest, ErrCodeBadRequest},
		{http.StatusUnauthorized, http.StatusUnauthorized, ErrCodeUnauthorized},
		{http.StatusForbidden, http.StatusForbidden, ErrCodeForbidden},
		{http.StatusNotFound, http.StatusNotFound, ErrCodeNotFound},
		{http.StatusConflict, http.StatusConflict, ErrCodeConflict},
		{http.StatusTooManyRequests, http.StatusBadGateway, ErrCodeUpstream},
		{http.StatusInternalServerError, http.StatusBadGateway, ErrCodeUpstream},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.upstream), func(t *testing.T) {
			status, code := RelayStatus(tt.upstream)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestWriteJSONSuccess(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSONSuccess(rr, http.StatusCreated, map[string]string{"id": "b1"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
	assert.JSONEq(t, `{"data":{"id":"b1"},"error":null}`, rr.Body.String())
}
