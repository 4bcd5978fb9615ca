package draft

import (
	"context"
	"testing"

	"github.com/salesflowhq/salesflow/ent/schema/schematype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() schematype.CampaignContext {
	return schematype.CampaignContext{
		CompanyName:        "Acme",
		ProductDescription: "Widgets that assemble themselves",
		ProblemSolved:      "manual assembly",
		CallToAction:       "Book a demo",
		Tone:               "friendly",
	}
}

func TestTemplateDrafter(t *testing.T) {
	d := NewTemplateDrafter()

	t.Run("First email", func(t *testing.T) {
		email, err := d.Draft(context.Background(), Input{
			Context:  testContext(),
			LeadName: "Jane Doe",
			Position: 1,
			Total:    3,
		})

		require.NoError(t, err)
		assert.Contains(t, email.Subject, "Acme")
		assert.Contains(t, email.Body, "Hi Jane Doe")
		assert.Contains(t, email.Body, "Book a demo")
	})

	t.Run("Follow-up references the earlier note", func(t *testing.T) {
		email, err := d.Draft(context.Background(), Input{
			Context:  testContext(),
			Position: 2,
			Total:    3,
		})

		require.NoError(t, err)
		assert.Contains(t, email.Subject, "Re:")
		assert.Contains(t, email.Body, "Following up")
	})
}

func TestParseCompletion(t *testing.T) {
	t.Run("Subject prefix stripped", func(t *testing.T) {
		email := parseCompletion("Subject: Quick question\n\nHi there,\nshort body.")
		assert.Equal(t, "Quick question", email.Subject)
		assert.Contains(t, email.Body, "short body")
	})

	t.Run("No prefix still yields a subject line", func(t *testing.T) {
		email := parseCompletion("Quick question\nbody text")
		assert.Equal(t, "Quick question", email.Subject)
		assert.Equal(t, "body text", email.Body)
	})

	t.Run("Single line falls back to full content as body", func(t *testing.T) {
		email := parseCompletion("Subject: only a subject")
		assert.Equal(t, "only a subject", email.Subject)
		assert.Equal(t, "Subject: only a subject", email.Body)
	})
}
