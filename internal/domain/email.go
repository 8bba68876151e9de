package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// BookingEmailData holds data for the booking_created and booking_deleted emails.
type BookingEmailData struct {
	Booking   Booking
	Range     string // formatted day and time range
	Duration  string
	Room      Room
	Private   bool
	Recipient string
}
