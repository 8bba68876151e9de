package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/IlyNosov/Dormitory-Booking/internal/domain"
)

// DefaultClockInterval is how often the board's notion of "now" advances.
const DefaultClockInterval = 30 * time.Second

// BoardConfig configures NewBoardService. Zero values pick defaults.
type BoardConfig struct {
	Rules           domain.Rules
	Location        *time.Location
	ClockInterval   time.Duration
	RefreshInterval time.Duration // 0 disables periodic refetch
	Clock           func() time.Time
	Notifier        domain.BookingNotifier
	Logger          *slog.Logger
}

// BoardService is the single owner of the in-memory booking list. Views are
// derived from it on demand and never cached.
type BoardService struct {
	store  domain.BookingStore
	creds  domain.CredentialsSource
	cfg    BoardConfig
	logger *slog.Logger

	mu       sync.RWMutex
	bookings []domain.Booking
	now      time.Time
}

var _ domain.BoardService = (*BoardService)(nil)

// NewBoardService returns a board backed by store. The list starts empty until Refresh.
func NewBoardService(store domain.BookingStore, creds domain.CredentialsSource, cfg BoardConfig) *BoardService {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.ClockInterval <= 0 {
		cfg.ClockInterval = DefaultClockInterval
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &BoardService{
		store:    store,
		creds:    creds,
		cfg:      cfg,
		logger:   logger,
		bookings: []domain.Booking{},
		now:      cfg.Clock(),
	}
}

// Location returns the zone wall-clock times are interpreted in.
func (s *BoardService) Location() *time.Location {
	return s.cfg.Location
}

// Now returns the board's current instant, advanced by Run or Tick.
func (s *BoardService) Now() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now.In(s.cfg.Location)
}

// Tick advances the board clock. It never touches booking data.
func (s *BoardService) Tick() {
	now := s.cfg.Clock()
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

// Bookings returns a copy of the current list.
func (s *BoardService) Bookings() []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.bookings)
}

// Refresh replaces the list with the store's. Concurrent refreshes race; the last one to
// finish wins.
func (s *BoardService) Refresh(ctx context.Context) error {
	creds, err := s.creds.Credentials(ctx)
	if err != nil {
		return err
	}
	list, err := s.store.List(ctx, creds)
	if err != nil {
		return fmt.Errorf("refresh bookings: %w", err)
	}
	s.mu.Lock()
	s.bookings = list
	s.mu.Unlock()
	s.logger.DebugContext(ctx, "bookings refreshed", "count", len(list))
	return nil
}

// View buckets the current list for window w and filters f.
func (s *BoardService) View(w domain.Window, f domain.Filters) domain.BoardView {
	s.mu.RLock()
	bookings := s.bookings
	now := s.now
	s.mu.RUnlock()

	loc := s.cfg.Location
	start, end := w.Bounds(loc)
	return domain.BoardView{
		Now:         now.In(loc),
		Window:      w,
		WindowStart: start,
		WindowEnd:   end,
		Filters:     f,
		Buckets:     domain.Bucket(bookings, now, w, f, loc),
	}
}

// Create validates c locally and submits it. Validation errors are returned before any
// store call. On success the created booking is added to the list without a refetch.
func (s *BoardService) Create(ctx context.Context, c domain.Candidate) (domain.Booking, error) {
	payload, err := domain.BuildPayload(c, s.cfg.Rules, s.cfg.Location)
	if err != nil {
		return domain.Booking{}, err
	}
	creds, err := s.creds.Credentials(ctx)
	if err != nil {
		return domain.Booking{}, err
	}
	created, err := s.store.Create(ctx, creds, payload)
	if err != nil {
		return domain.Booking{}, err
	}

	s.mu.Lock()
	s.bookings = append([]domain.Booking{created}, s.bookings...)
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "booking created", "id", created.ID, "room", created.Room, "private", created.IsPrivate)
	s.notify(ctx, func(n domain.BookingNotifier) error { return n.BookingCreated(ctx, created) })
	return created, nil
}

// Delete removes booking id in two phases: it is dropped from the list first, then the
// store is asked to delete it. If the store refuses, the list is resynchronised from the
// store and the store error is returned.
func (s *BoardService) Delete(ctx context.Context, id, ownerContact string) error {
	removed, ok := s.removeTentatively(id)

	creds, err := s.creds.Credentials(ctx)
	if err == nil {
		err = s.store.Delete(ctx, creds, id, ownerContact)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "booking delete failed, resynchronising", "id", id, "err", err)
		if rerr := s.Refresh(ctx); rerr != nil {
			s.logger.ErrorContext(ctx, "resynchronise after failed delete", "err", rerr)
			if ok {
				s.restore(removed)
			}
		}
		return err
	}

	s.logger.InfoContext(ctx, "booking deleted", "id", id)
	if ok {
		s.notify(ctx, func(n domain.BookingNotifier) error { return n.BookingDeleted(ctx, removed) })
	}
	return nil
}

func (s *BoardService) removeTentatively(id string) (domain.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.bookings, func(b domain.Booking) bool { return b.ID == id })
	if i < 0 {
		return domain.Booking{}, false
	}
	removed := s.bookings[i]
	s.bookings = slices.Delete(slices.Clone(s.bookings), i, i+1)
	return removed, true
}

func (s *BoardService) restore(b domain.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.ContainsFunc(s.bookings, func(x domain.Booking) bool { return x.ID == b.ID }) {
		return
	}
	s.bookings = append(slices.Clone(s.bookings), b)
}

func (s *BoardService) notify(ctx context.Context, send func(domain.BookingNotifier) error) {
	if s.cfg.Notifier == nil {
		return
	}
	if err := send(s.cfg.Notifier); err != nil {
		s.logger.WarnContext(ctx, "booking notification failed", "err", err)
	}
}

// Run advances the clock every ClockInterval and, when RefreshInterval is set, refetches
// the list periodically. It returns when ctx is done.
func (s *BoardService) Run(ctx context.Context) {
	clock := time.NewTicker(s.cfg.ClockInterval)
	defer clock.Stop()

	var refresh <-chan time.Time
	if s.cfg.RefreshInterval > 0 {
		t := time.NewTicker(s.cfg.RefreshInterval)
		defer t.Stop()
		refresh = t.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-clock.C:
			s.Tick()
		case <-refresh:
			if err := s.Refresh(ctx); err != nil {
				s.logger.WarnContext(ctx, "periodic refresh failed", "err", err)
			}
		}
	}
}
