package email

import (
	"testing"

	"slotswapper/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_SwapProposed(t *testing.T) {
	renderer := NewTemplateRenderer()
	data := &domain.SwapProposedEmailData{
		Email:              "bob@example.com",
		RequesteeName:      "Bob",
		RequesterName:      "Alice",
		OfferedSlotTitle:   "Morning standup",
		RequestedSlotTitle: "Afternoon review",
	}

	subject, html, text, err := renderer.Render("swap_proposed", data)
	require.NoError(t, err)
	assert.NotEmpty(t, subject)
	assert.Contains(t, html, "Alice")
	assert.Contains(t, html, "Afternoon review")
	assert.Contains(t, text, "Alice")
	assert.Contains(t, text, "Morning standup")
}

func TestTemplateRenderer_SwapResolved(t *testing.T) {
	renderer := NewTemplateRenderer()

	t.Run("accepted", func(t *testing.T) {
		subject, html, text, err := renderer.Render("swap_resolved", &domain.SwapResolvedEmailData{
			Email:              "alice@example.com",
			RequesterName:      "Alice",
			RequesteeName:      "Bob",
			RequestedSlotTitle: "Afternoon review",
			Accepted:           true,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, subject)
		assert.Contains(t, html, "accepted")
		assert.Contains(t, text, "accepted")
	})

	t.Run("rejected", func(t *testing.T) {
		_, html, text, err := renderer.Render("swap_resolved", &domain.SwapResolvedEmailData{
			Email:              "alice@example.com",
			RequesterName:      "Alice",
			RequesteeName:      "Bob",
			RequestedSlotTitle: "Afternoon review",
			Accepted:           false,
		})
		require.NoError(t, err)
		assert.Contains(t, html, "rejected")
		assert.Contains(t, text, "rejected")
	})
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	renderer := NewTemplateRenderer()
	_, _, _, err := renderer.Render("no_such_template", nil)
	require.Error(t, err)
}
