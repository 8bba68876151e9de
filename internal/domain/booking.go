package domain

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"
)

// Room is one of the bookable physical rooms.
type Room int

const (
	Room21  Room = 21
	Room132 Room = 132
	Room256 Room = 256
)

// Rooms returns the bookable rooms in display order.
func Rooms() []Room {
	return []Room{Room21, Room256, Room132}
}

// IsValidRoom reports whether r is one of the bookable rooms.
func IsValidRoom(r Room) bool {
	switch r {
	case Room21, Room132, Room256:
		return true
	default:
		return false
	}
}

// Booking is a reservation as stored by the booking store. It is immutable once created.
type Booking struct {
	ID           string    `json:"id"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Room         Room      `json:"room"`
	Title        string    `json:"title"`
	OwnerContact string    `json:"ownerContact"`
	IsPrivate    bool      `json:"isPrivate"`
	Description  string    `json:"description,omitempty"`
	CanManage    bool      `json:"canManage,omitempty"`
}

// Interval is a resolved [Start, End) instant pair.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Duration returns End - Start.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Candidate is a booking request as entered by the user, before validation.
// Date is a day key (YYYY-MM-DD); StartTime and EndTime are HH:MM wall-clock values.
type Candidate struct {
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Room         Room   `json:"room"`
	Title        string `json:"title"`
	OwnerContact string `json:"ownerContact"`
	IsPrivate    bool   `json:"isPrivate"`
	Description  string `json:"description"`
}

// CreateBookingPayload is the body sent to the booking store on create.
type CreateBookingPayload struct {
	Start        string  `json:"start"`
	End          string  `json:"end"`
	Room         Room    `json:"room"`
	Title        string  `json:"title"`
	OwnerContact string  `json:"ownerContact"`
	IsPrivate    bool    `json:"isPrivate"`
	Description  *string `json:"description,omitempty"`
}

// Credentials identify the acting user on every outbound store request.
// AdminToken is passed through verbatim; the store alone interprets it.
type Credentials struct {
	UserEmail  string
	AdminToken string
}

// IsAdmin reports whether an admin credential is present.
func (c Credentials) IsAdmin() bool {
	return strings.TrimSpace(c.AdminToken) != ""
}

// RoomFilter selects a single room, or every room when RoomFilterAll.
type RoomFilter int

// RoomFilterAll matches bookings in any room.
const RoomFilterAll RoomFilter = 0

// ParseRoomFilter accepts "all" (or empty) and the room numbers.
func ParseRoomFilter(s string) (RoomFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return RoomFilterAll, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || !IsValidRoom(Room(n)) {
		return RoomFilterAll, ErrInvalidRoom
	}
	return RoomFilter(n), nil
}

func (f RoomFilter) String() string {
	if f == RoomFilterAll {
		return "all"
	}
	return strconv.Itoa(int(f))
}

// VisibilityFilter selects public, private or all bookings.
type VisibilityFilter string

const (
	VisibilityAll     VisibilityFilter = "all"
	VisibilityPublic  VisibilityFilter = "public"
	VisibilityPrivate VisibilityFilter = "private"
)

// ParseVisibilityFilter accepts all|public|private; empty means all.
func ParseVisibilityFilter(s string) (VisibilityFilter, error) {
	switch v := VisibilityFilter(strings.ToLower(strings.TrimSpace(s))); v {
	case "", VisibilityAll:
		return VisibilityAll, nil
	case VisibilityPublic, VisibilityPrivate:
		return v, nil
	default:
		return VisibilityAll, ErrInvalidVisibility
	}
}

// Filters is the view state applied to the booking list. It never changes the list itself.
type Filters struct {
	Room       RoomFilter
	Visibility VisibilityFilter
}

// Match reports whether b passes both filters.
func (f Filters) Match(b Booking) bool {
	if f.Room != RoomFilterAll && b.Room != Room(f.Room) {
		return false
	}
	switch f.Visibility {
	case VisibilityPublic:
		return !b.IsPrivate
	case VisibilityPrivate:
		return b.IsPrivate
	}
	return true
}

var (
	// ErrNotFound is returned when a booking or stored key does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned for malformed requests that are not rule violations.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidRoom is returned when a room is outside the bookable set.
	ErrInvalidRoom = errors.New("invalid room")
	// ErrInvalidVisibility is returned for an unknown visibility filter.
	ErrInvalidVisibility = errors.New("invalid visibility filter")
	// ErrAdminTokenBlank is returned when an admin login carries an empty token.
	ErrAdminTokenBlank = errors.New("admin token is blank")
)

// BookingStore is the remote store that owns the bookings.
type BookingStore interface {
	List(ctx context.Context, creds Credentials) ([]Booking, error)
	Create(ctx context.Context, creds Credentials, payload CreateBookingPayload) (Booking, error)
	Delete(ctx context.Context, creds Credentials, id, ownerContact string) error
}

// KeyValueStore is client-local storage for small settings such as the admin token.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// BookingNotifier is told about bookings the board created or deleted.
type BookingNotifier interface {
	BookingCreated(ctx context.Context, b Booking) error
	BookingDeleted(ctx context.Context, b Booking) error
}
