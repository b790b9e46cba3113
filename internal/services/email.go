package services

import (
	"context"
	"fmt"
	"log"

	"slidedeck/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendPresentationShared sends a share notification using the
// "presentation_shared" template and the given data.
func (s *emailService) SendPresentationShared(ctx context.Context, data *domain.ShareEmailData) error {
	if data == nil {
		return fmt.Errorf("share email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("presentation_shared", data)
	if err != nil {
		return fmt.Errorf("failed to render presentation_shared template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send share email: %w", err)
	}
	log.Printf("[EMAIL] Share notification sent to %s", data.Email)
	return nil
}
