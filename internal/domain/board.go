package domain

import (
	"context"
	"time"
)

// BoardView is a consistent snapshot of the bucketed booking list.
type BoardView struct {
	Now         time.Time
	Window      Window
	WindowStart time.Time
	WindowEnd   time.Time
	Filters     Filters
	Buckets     Buckets
}

// BoardService owns the in-memory booking list and derives views from it.
type BoardService interface {
	Refresh(ctx context.Context) error
	Bookings() []Booking
	View(w Window, f Filters) BoardView
	Create(ctx context.Context, c Candidate) (Booking, error)
	Delete(ctx context.Context, id, ownerContact string) error
	Now() time.Time
	Location() *time.Location
}

// CredentialsSource yields the credentials for the next store call.
type CredentialsSource interface {
	Credentials(ctx context.Context) (Credentials, error)
}

// AdminService manages the locally persisted admin token.
type AdminService interface {
	CredentialsSource
	Login(ctx context.Context, token string) error
	Logout(ctx context.Context) error
	IsAdmin(ctx context.Context) (bool, error)
}
