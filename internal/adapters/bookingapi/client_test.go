package bookingapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IlyNosov/Dormitory-Booking/internal/domain"
	"github.com/IlyNosov/Dormitory-Booking/internal/requestid"
)

var (
	userCreds  = domain.Credentials{UserEmail: "student@edu.hse.ru"}
	adminCreds = domain.Credentials{UserEmail: "student@edu.hse.ru", AdminToken: "s3cret"}
)

func TestClient_List(t *testing.T) {
	var gotReq *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"b1","start":"2025-01-08T11:00:00Z","end":"2025-01-08T12:00:00Z","room":132,"title":"Chess","ownerContact":"@alice","isPrivate":true}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", srv.Client())
	bookings, err := c.List(context.Background(), adminCreds)
	require.NoError(t, err)
	require.Len(t, bookings, 1)

	b := bookings[0]
	assert.Equal(t, "b1", b.ID)
	assert.Equal(t, domain.Room132, b.Room)
	assert.True(t, b.IsPrivate)
	assert.True(t, time.Date(2025, 1, 8, 11, 0, 0, 0, time.UTC).Equal(b.Start))

	require.NotNil(t, gotReq)
	assert.Equal(t, http.MethodGet, gotReq.Method)
	assert.Equal(t, "/api/bookings", gotReq.URL.Path)
	assert.Equal(t, "student@edu.hse.ru", gotReq.Header.Get(HeaderUserEmail))
	assert.Equal(t, "s3cret", gotReq.Header.Get(HeaderAdminToken))
	assert.NotEmpty(t, gotReq.Header.Get(requestid.Header))
}

func TestClient_List_FailurePolicy(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{"html instead of json", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<!doctype html><html></html>"))
		}},
		{"object instead of array", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"bookings":[]}`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			empty := NewClient(srv.URL, srv.Client())
			bookings, err := empty.List(context.Background(), userCreds)
			require.NoError(t, err)
			assert.NotNil(t, bookings)
			assert.Empty(t, bookings)

			strict := NewClient(srv.URL, srv.Client(), WithFetchFailurePolicy(ReturnError))
			_, err = strict.List(context.Background(), userCreds)
			assert.Error(t, err)
		})
	}
}

func TestClient_List_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	bookings, err := NewClient(url, nil).List(context.Background(), userCreds)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestClient_Create(t *testing.T) {
	var got domain.CreateBookingPayload
	var adminHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/bookings", r.URL.Path)
		adminHeader = r.Header.Get(HeaderAdminToken)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.Booking{
			ID:           "new-1",
			Start:        time.Date(2025, 1, 8, 11, 0, 0, 0, time.UTC),
			End:          time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC),
			Room:         got.Room,
			Title:        got.Title,
			OwnerContact: got.OwnerContact,
		})
	}))
	defer srv.Close()

	desc := "bring cards"
	payload := domain.CreateBookingPayload{
		Start:        "2025-01-08T11:00:00.000Z",
		End:          "2025-01-08T12:00:00.000Z",
		Room:         domain.Room21,
		Title:        "Poker",
		OwnerContact: "@bob",
		Description:  &desc,
	}
	created, err := NewClient(srv.URL, srv.Client()).Create(context.Background(), userCreds, payload)
	require.NoError(t, err)

	assert.Equal(t, "new-1", created.ID)
	assert.Equal(t, payload, got)
	assert.Empty(t, adminHeader)
}

func TestClient_Create_StoreError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "booking overlaps existing booking", http.StatusConflict)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, srv.Client()).Create(context.Background(), userCreds, domain.CreateBookingPayload{Room: domain.Room21})
	var serr *domain.StoreError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, http.StatusConflict, serr.Status)
	assert.Equal(t, "booking overlaps existing booking", serr.Body)
}

func TestClient_StoreErrorBody(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        string
	}{
		{"json error field", "application/json", `{"error":"booking overlaps existing booking"}`, "booking overlaps existing booking"},
		{"json message field", "application/json; charset=utf-8", `{"message":"room is closed"}`, "room is closed"},
		{"json without known field", "application/json", `{"code":7}`, `{"code":7}`},
		{"json shaped text", "text/plain", `{"error":"kept raw"}`, `{"error":"kept raw"}`},
		{"html page", "text/html", "<!doctype html><p>nginx</p>", "<!doctype html><p>nginx</p>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(http.StatusConflict)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, srv.Client()).Create(context.Background(), userCreds, domain.CreateBookingPayload{Room: domain.Room21})
			var serr *domain.StoreError
			require.True(t, errors.As(err, &serr))
			assert.Equal(t, http.StatusConflict, serr.Status)
			assert.Equal(t, tt.want, serr.Body)
		})
	}
}

func TestClient_Delete(t *testing.T) {
	tests := []struct {
		name       string
		owner      string
		status     int
		body       string
		wantQuery  string
		wantStatus int
	}{
		{name: "no content", owner: "@alice", status: http.StatusNoContent, wantQuery: "ownerContact=%40alice"},
		{name: "ok without owner", status: http.StatusOK},
		{name: "forbidden", owner: "@eve", status: http.StatusForbidden, body: "forbidden", wantQuery: "ownerContact=%40eve", wantStatus: http.StatusForbidden},
		{name: "not found", status: http.StatusNotFound, body: "not found", wantStatus: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotQuery string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				gotPath = r.URL.Path
				gotQuery = r.URL.RawQuery
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := NewClient(srv.URL, srv.Client()).Delete(context.Background(), adminCreds, "b 1", tt.owner)
			assert.Equal(t, "/api/bookings/b 1", gotPath)
			assert.Equal(t, tt.wantQuery, gotQuery)
			if tt.wantStatus == 0 {
				require.NoError(t, err)
				return
			}
			var serr *domain.StoreError
			require.True(t, errors.As(err, &serr))
			assert.Equal(t, tt.wantStatus, serr.Status)
			assert.Equal(t, tt.body, serr.Body)
		})
	}
}

func TestClient_RequestIDPropagation(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(requestid.Header)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ctx := requestid.NewContext(context.Background(), "req-42")
	_, err := NewClient(srv.URL, srv.Client()).List(ctx, userCreds)
	require.NoError(t, err)
	assert.Equal(t, "req-42", got)
}

func TestParseFetchFailurePolicy(t *testing.T) {
	p, err := ParseFetchFailurePolicy("")
	require.NoError(t, err)
	assert.Equal(t, ReturnEmpty, p)

	p, err = ParseFetchFailurePolicy("RETURN_ERROR")
	require.NoError(t, err)
	assert.Equal(t, ReturnError, p)
	assert.Equal(t, "return_error", p.String())

	_, err = ParseFetchFailurePolicy("panic")
	assert.Error(t, err)
}
