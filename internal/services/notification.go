package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/IlyNosov/Dormitory-Booking/internal/domain"
)

const (
	templateBookingCreated = "booking_created"
	templateBookingDeleted = "booking_deleted"
)

type notificationService struct {
	mailer    domain.Mailer
	renderer  domain.EmailTemplateRenderer
	recipient string
	loc       *time.Location
	logger    *slog.Logger
}

// NewNotificationService returns a BookingNotifier that mails booking changes to recipient.
// A blank recipient yields a notifier that sends nothing.
func NewNotificationService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, recipient string, loc *time.Location, logger *slog.Logger) domain.BookingNotifier {
	return &notificationService{
		mailer:    mailer,
		renderer:  renderer,
		recipient: strings.TrimSpace(recipient),
		loc:       loc,
		logger:    logger,
	}
}

func (s *notificationService) BookingCreated(ctx context.Context, b domain.Booking) error {
	return s.send(ctx, templateBookingCreated, b)
}

func (s *notificationService) BookingDeleted(ctx context.Context, b domain.Booking) error {
	return s.send(ctx, templateBookingDeleted, b)
}

func (s *notificationService) send(ctx context.Context, template string, b domain.Booking) error {
	if s.recipient == "" {
		return nil
	}
	data := &domain.BookingEmailData{
		Booking:   b,
		Range:     domain.FormatRange(b.Start, b.End, s.loc),
		Duration:  domain.HumanDuration(b.End.Sub(b.Start)),
		Room:      b.Room,
		Private:   b.IsPrivate,
		Recipient: s.recipient,
	}
	subject, htmlBody, textBody, err := s.renderer.Render(template, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", template, err)
	}
	if err := s.mailer.Send(ctx, s.recipient, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send %s email: %w", template, err)
	}
	s.logger.InfoContext(ctx, "booking email sent", "template", template, "booking_id", b.ID)
	return nil
}

type multiNotifier []domain.BookingNotifier

// Notifiers fans every change out to each non-nil notifier. All of them are called even
// when one fails; the failures are joined.
func Notifiers(ns ...domain.BookingNotifier) domain.BookingNotifier {
	var out multiNotifier
	for _, n := range ns {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

func (m multiNotifier) BookingCreated(ctx context.Context, b domain.Booking) error {
	var errs []error
	for _, n := range m {
		errs = append(errs, n.BookingCreated(ctx, b))
	}
	return errors.Join(errs...)
}

func (m multiNotifier) BookingDeleted(ctx context.Context, b domain.Booking) error {
	var errs []error
	for _, n := range m {
		errs = append(errs, n.BookingDeleted(ctx, b))
	}
	return errors.Join(errs...)
}
