package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// SwapProposedEmailData holds data for the email sent to the requestee when a
// swap is proposed against one of their slots.
type SwapProposedEmailData struct {
	Email              string
	RequesteeName      string
	RequesterName      string
	OfferedSlotTitle   string
	RequestedSlotTitle string
}

// SwapResolvedEmailData holds data for the email sent to the requester when
// their proposal is accepted or rejected.
type SwapResolvedEmailData struct {
	Email              string
	RequesterName      string
	RequesteeName      string
	RequestedSlotTitle string
	Accepted           bool
}

// EmailService defines the contract for sending domain-level emails.
// Sends are best-effort; the engine never fails an operation on a mail error.
type EmailService interface {
	SendSwapProposed(ctx context.Context, data *SwapProposedEmailData) error
	SendSwapResolved(ctx context.Context, data *SwapResolvedEmailData) error
}
