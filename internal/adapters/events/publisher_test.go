package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/IlyNosov/Dormitory-Booking/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func header(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestPublisher(t *testing.T) {
	b := domain.Booking{
		ID:    "bk-1",
		Start: time.Date(2025, 1, 10, 20, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 10, 21, 30, 0, 0, time.UTC),
		Room:  domain.Room256,
		Title: "Movie night",
	}
	fixed := time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		publish  func(p *Publisher) error
		wantType string
	}{
		{"created", func(p *Publisher) error { return p.BookingCreated(context.Background(), b) }, EventBookingCreated},
		{"deleted", func(p *Publisher) error { return p.BookingDeleted(context.Background(), b) }, EventBookingDeleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &fakeWriter{}
			p := newPublisher(w, testLogger)
			p.now = func() time.Time { return fixed }

			require.NoError(t, tt.publish(p))
			require.Len(t, w.msgs, 1)
			msg := w.msgs[0]
			assert.Equal(t, "bk-1", string(msg.Key))
			assert.Equal(t, tt.wantType, header(msg, "event_type"))

			var ev Event
			require.NoError(t, json.Unmarshal(msg.Value, &ev))
			assert.Equal(t, tt.wantType, ev.Type)
			assert.Equal(t, header(msg, "event_id"), ev.ID)
			assert.True(t, fixed.Equal(ev.OccurredAt))
			assert.Equal(t, "bk-1", ev.Booking.ID)
			assert.Equal(t, domain.Room256, ev.Booking.Room)
		})
	}
}

func TestPublisher_WriteError(t *testing.T) {
	w := &fakeWriter{err: errors.New("leader not available")}
	p := newPublisher(w, testLogger)
	err := p.BookingCreated(context.Background(), domain.Booking{ID: "x"})
	assert.ErrorContains(t, err, "leader not available")

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestPublisher_TraceHeaders(t *testing.T) {
	prev := otel.GetTextMapPropagator()
	otel.SetTextMapPropagator(propagation.TraceContext{})
	defer otel.SetTextMapPropagator(prev)

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID, TraceFlags: trace.FlagsSampled})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	w := &fakeWriter{}
	require.NoError(t, newPublisher(w, testLogger).BookingCreated(ctx, domain.Booking{ID: "bk-1"}))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01", header(w.msgs[0], "traceparent"))
}
