package services

import (
	"context"
	"fmt"

	"slotswapper/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendSwapProposed notifies the requestee that a swap was proposed against one
// of their slots, using the "swap_proposed" template.
func (s *emailService) SendSwapProposed(ctx context.Context, data *domain.SwapProposedEmailData) error {
	if data == nil {
		return fmt.Errorf("swap proposed data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("swap_proposed", data)
	if err != nil {
		return fmt.Errorf("render swap_proposed template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send swap proposed email: %w", err)
	}
	return nil
}

// SendSwapResolved notifies the requester of the outcome of their proposal,
// using the "swap_resolved" template.
func (s *emailService) SendSwapResolved(ctx context.Context, data *domain.SwapResolvedEmailData) error {
	if data == nil {
		return fmt.Errorf("swap resolved data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("swap_resolved", data)
	if err != nil {
		return fmt.Errorf("render swap_resolved template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send swap resolved email: %w", err)
	}
	return nil
}
