package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/IlyNosov/Dormitory-Booking/internal/domain"
	"github.com/IlyNosov/Dormitory-Booking/internal/requestid"
)

// Headers sent with every store request.
const (
	HeaderUserEmail  = "X-User-Email"
	HeaderAdminToken = "X-Admin-Token"
)

const bookingsPath = "/api/bookings"

// FetchFailurePolicy decides what List does when the store cannot be read.
type FetchFailurePolicy int

const (
	// ReturnEmpty logs the failure and reports an empty booking list.
	ReturnEmpty FetchFailurePolicy = iota
	// ReturnError hands the failure to the caller.
	ReturnError
)

// ParseFetchFailurePolicy accepts "return_empty" (or empty) and "return_error".
func ParseFetchFailurePolicy(s string) (FetchFailurePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "return_empty":
		return ReturnEmpty, nil
	case "return_error":
		return ReturnError, nil
	default:
		return ReturnEmpty, fmt.Errorf("unknown fetch failure policy %q", s)
	}
}

func (p FetchFailurePolicy) String() string {
	if p == ReturnError {
		return "return_error"
	}
	return "return_empty"
}

// Client talks to the remote booking store over HTTP/JSON.
type Client struct {
	baseURL string
	client  *http.Client
	policy  FetchFailurePolicy
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithFetchFailurePolicy sets what List does on failure. The default is ReturnEmpty.
func WithFetchFailurePolicy(p FetchFailurePolicy) Option {
	return func(c *Client) { c.policy = p }
}

// WithLogger sets the logger used for swallowed failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient returns a store client rooted at baseURL. A nil httpClient uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		baseURL: strings.TrimSuffix(strings.TrimSpace(baseURL), "/"),
		client:  httpClient,
		policy:  ReturnEmpty,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ domain.BookingStore = (*Client)(nil)

// List fetches every booking. Failures follow the client's FetchFailurePolicy.
func (c *Client) List(ctx context.Context, creds domain.Credentials) ([]domain.Booking, error) {
	bookings, err := c.list(ctx, creds)
	if err != nil {
		if c.policy == ReturnError {
			return nil, err
		}
		c.logger.WarnContext(ctx, "booking list unavailable, showing none", "err", err)
		return []domain.Booking{}, nil
	}
	return bookings, nil
}

func (c *Client) list(ctx context.Context, creds domain.Credentials) ([]domain.Booking, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.baseURL+bookingsPath, nil, creds)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStoreError(resp)
	}
	var bookings []domain.Booking
	if err := json.NewDecoder(resp.Body).Decode(&bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings, nil
}

// Create submits a new booking and returns the stored record.
// A non-2xx response is returned as *domain.StoreError carrying the body text.
func (c *Client) Create(ctx context.Context, creds domain.Credentials, payload domain.CreateBookingPayload) (domain.Booking, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("failed to encode booking: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, c.baseURL+bookingsPath, bytes.NewReader(body), creds)
	if err != nil {
		return domain.Booking{}, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.Booking{}, newStoreError(resp)
	}
	var created domain.Booking
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return domain.Booking{}, fmt.Errorf("failed to decode created booking: %w", err)
	}
	return created, nil
}

// Delete removes a booking. ownerContact is sent only when non-blank.
func (c *Client) Delete(ctx context.Context, creds domain.Credentials, id, ownerContact string) error {
	u := c.baseURL + bookingsPath + "/" + url.PathEscape(id)
	if owner := strings.TrimSpace(ownerContact); owner != "" {
		u += "?" + url.Values{"ownerContact": {owner}}.Encode()
	}
	req, err := c.newRequest(ctx, http.MethodDelete, u, nil, creds)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return newStoreError(resp)
}

func (c *Client) newRequest(ctx context.Context, method, u string, body io.Reader, creds domain.Credentials) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestid.Header, requestid.FromContextOrNew(ctx))
	if email := strings.TrimSpace(creds.UserEmail); email != "" {
		req.Header.Set(HeaderUserEmail, email)
	}
	if creds.IsAdmin() {
		req.Header.Set(HeaderAdminToken, creds.AdminToken)
	}
	return req, nil
}

// newStoreError keeps the JSON "error" (or "message") field of a JSON error body and
// the raw text otherwise.
func newStoreError(resp *http.Response) *domain.StoreError {
	body := readBody(resp.Body)
	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		var parsed struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal([]byte(body), &parsed); err == nil {
			msg := parsed.Error
			if msg == "" {
				msg = parsed.Message
			}
			if msg = strings.TrimSpace(msg); msg != "" {
				body = msg
			}
		}
	}
	return &domain.StoreError{Status: resp.StatusCode, Body: body}
}

func readBody(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
