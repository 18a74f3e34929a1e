package services

import (
	"context"
	"errors"
	"testing"

	"slotswapper/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMailer records sent emails.
type fakeMailer struct {
	to      []string
	subject []string
	err     error
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	if f.err != nil {
		return f.err
	}
	f.to = append(f.to, to)
	f.subject = append(f.subject, subject)
	return nil
}

// fakeRenderer returns canned content for any template.
type fakeRenderer struct {
	err error
}

func (f *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	if f.err != nil {
		return "", "", "", f.err
	}
	return "subject:" + templateName, "<p>html</p>", "text", nil
}

func TestEmailService_SendSwapProposed(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewEmailService(mailer, &fakeRenderer{})
		err := svc.SendSwapProposed(ctx, &domain.SwapProposedEmailData{Email: "bob@example.com"})
		require.NoError(t, err)
		require.Len(t, mailer.to, 1)
		assert.Equal(t, "bob@example.com", mailer.to[0])
		assert.Equal(t, "subject:swap_proposed", mailer.subject[0])
	})

	t.Run("nil data", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{}, &fakeRenderer{})
		require.Error(t, svc.SendSwapProposed(ctx, nil))
	})

	t.Run("render error", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{}, &fakeRenderer{err: errors.New("bad template")})
		require.Error(t, svc.SendSwapProposed(ctx, &domain.SwapProposedEmailData{Email: "bob@example.com"}))
	})

	t.Run("send error", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{err: errors.New("smtp down")}, &fakeRenderer{})
		require.Error(t, svc.SendSwapProposed(ctx, &domain.SwapProposedEmailData{Email: "bob@example.com"}))
	})
}

func TestEmailService_SendSwapResolved(t *testing.T) {
	ctx := context.Background()
	mailer := &fakeMailer{}
	svc := NewEmailService(mailer, &fakeRenderer{})

	err := svc.SendSwapResolved(ctx, &domain.SwapResolvedEmailData{Email: "alice@example.com", Accepted: true})
	require.NoError(t, err)
	require.Len(t, mailer.to, 1)
	assert.Equal(t, "alice@example.com", mailer.to[0])
	assert.Equal(t, "subject:swap_resolved", mailer.subject[0])
}
