package domain

import (
	"strings"
	"time"
)

// WireTimeLayout is the absolute-time format used on the wire.
const WireTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatWireTime renders t as a UTC ISO-8601 instant.
func FormatWireTime(t time.Time) string {
	return t.UTC().Format(WireTimeLayout)
}

// BuildPayload validates c with rules and turns it into a store create payload.
// Text fields are trimmed and an empty description is omitted.
func BuildPayload(c Candidate, rules Rules, loc *time.Location) (CreateBookingPayload, error) {
	iv, err := rules.Validate(c, loc)
	if err != nil {
		return CreateBookingPayload{}, err
	}
	p := CreateBookingPayload{
		Start:        FormatWireTime(iv.Start),
		End:          FormatWireTime(iv.End),
		Room:         c.Room,
		Title:        strings.TrimSpace(c.Title),
		OwnerContact: strings.TrimSpace(c.OwnerContact),
		IsPrivate:    c.IsPrivate,
	}
	if d := strings.TrimSpace(c.Description); d != "" {
		p.Description = &d
	}
	return p, nil
}
