package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StoreError is a non-2xx response from the booking store. Body holds the
// server's error text.
type StoreError struct {
	Status int
	Body   string
}

func (e *StoreError) Error() string {
	if strings.TrimSpace(e.Body) == "" {
		return fmt.Sprintf("booking store returned status %d", e.Status)
	}
	return e.Body
}

// HumanizeStoreError maps raw store error text to a message fit for users.
// JSON bodies are unwrapped through their "error" or "message" field first.
// Unrecognized text is returned as is.
func HumanizeStoreError(raw string) string {
	s := strings.TrimSpace(raw)

	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(s), &parsed); err == nil {
		msg := parsed.Error
		if msg == "" {
			msg = parsed.Message
		}
		if msg = strings.TrimSpace(msg); msg != "" {
			s = msg
		}
	}

	m := strings.ToLower(s)
	switch {
	case strings.Contains(m, "overlaps"):
		return "This booking overlaps an existing one."
	case strings.Contains(m, "not found"):
		return "Not found."
	case strings.Contains(m, "forbidden"):
		return "You are not allowed to do this."
	case strings.Contains(m, "unauthorized"):
		return "You need to sign in."
	case strings.Contains(m, "invalid"):
		return "Invalid data."
	case strings.Contains(m, "bad request"):
		return "Invalid request."
	case strings.Contains(m, "internal server error"):
		return "Server error. Try again later."
	case strings.Contains(m, "<!doctype") || strings.Contains(m, "<html"):
		return "Booking API error: received an HTML page instead of JSON. Check BOOKING_API_BASE and the /api path."
	}
	return s
}
