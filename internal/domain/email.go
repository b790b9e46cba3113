package domain

import "context"

// Mailer sends a single email message. Implementations may use SES or a
// no-op sink for development.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders a named email template into subject, html,
// and text bodies.
type EmailTemplateRenderer interface {
	Render(templateName string, data interface{}) (subject, htmlBody, textBody string, err error)
}

// ShareEmailData is the template data for a presentation-shared notification.
type ShareEmailData struct {
	Email          string
	Title          string
	PresentationID string
}

// EmailService defines the outbound email operations.
type EmailService interface {
	SendPresentationShared(ctx context.Context, data *ShareEmailData) error
}
