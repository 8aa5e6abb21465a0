package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"poapregistry/internal/domain"
)

type emailNotifier struct {
	mailer     domain.Mailer
	renderer   domain.EmailTemplateRenderer
	recipients []string
}

// NewEmailNotifier returns a NotificationPublisher that e-mails every notification to recipients.
// With no recipients it publishes nothing.
func NewEmailNotifier(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, recipients []string) domain.NotificationPublisher {
	return &emailNotifier{mailer: mailer, renderer: renderer, recipients: recipients}
}

func (s *emailNotifier) Publish(ctx context.Context, n domain.Notification) error {
	if len(s.recipients) == 0 {
		return nil
	}
	data := &domain.NotificationEmailData{
		Type:     n.Type,
		Event:    n.Attr("event"),
		Owner:    n.Attr("owner"),
		Attendee: n.Attr("attendee"),
	}
	templateName := strings.ReplaceAll(n.Type, "-", "_")
	subject, htmlBody, textBody, err := s.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", templateName, err)
	}
	var errs []error
	for _, to := range s.recipients {
		if err := s.mailer.Send(to, subject, htmlBody, textBody); err != nil {
			errs = append(errs, fmt.Errorf("send to %s: %w", to, err))
		}
	}
	return errors.Join(errs...)
}
