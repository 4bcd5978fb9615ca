package campaign

import (
	"testing"

	"github.com/salesflowhq/salesflow/ent/schema/schematype"
	"github.com/salesflowhq/salesflow/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() ValidationInput {
	minScore := 50
	status := "new"
	return ValidationInput{
		Name: "Q3 Outbound",
		Context: schematype.CampaignContext{
			CompanyName:        "Acme",
			ProductDescription: "Widgets that assemble themselves",
			ProblemSolved:      "Manual assembly is slow",
			CallToAction:       "Book a demo",
			Tone:               "friendly",
		},
		Delays:     schematype.Delays{"1": 0, "2": 3},
		LeadFilter: &schematype.LeadFilter{MinScore: &minScore, Status: &status},
	}
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusDraft, StatusActive))
	assert.True(t, CanTransition(StatusActive, StatusInactive))
	assert.True(t, CanTransition(StatusInactive, StatusActive))

	assert.False(t, CanTransition(StatusDraft, StatusInactive))
	assert.False(t, CanTransition(StatusActive, StatusDraft))
	assert.False(t, CanTransition(StatusInactive, StatusDraft))
	assert.False(t, CanTransition(StatusActive, StatusActive))
	assert.False(t, CanTransition(StatusDraft, StatusDraft))
}

func TestCheckTransition(t *testing.T) {
	require.NoError(t, CheckTransition(StatusDraft, StatusActive))

	err := CheckTransition(StatusDraft, StatusInactive)
	require.Error(t, err)
	assert.True(t, domain.IsInvalidTransition(err))

	de := &domain.DomainError{}
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "draft", de.Current)
	assert.Equal(t, "inactive", de.Requested)

	err = CheckTransition(StatusDraft, Status("archived"))
	require.Error(t, err)
	assert.True(t, domain.IsInvalidTransition(err))
}

func TestValidate(t *testing.T) {
	t.Run("Fully configured campaign passes", func(t *testing.T) {
		assert.Empty(t, Validate(validInput()))
	})

	t.Run("No lead filter is fine", func(t *testing.T) {
		in := validInput()
		in.LeadFilter = nil
		assert.Empty(t, Validate(in))
	})

	t.Run("Empty name", func(t *testing.T) {
		in := validInput()
		in.Name = ""

		violations := Validate(in)
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0], "name")
	})

	t.Run("Every missing context field is reported", func(t *testing.T) {
		in := validInput()
		in.Context.ProductDescription = ""
		in.Context.CallToAction = ""
		in.Context.Tone = ""

		violations := Validate(in)
		require.Len(t, violations, 3)
		assert.Contains(t, violations[0], "context.product_description")
		assert.Contains(t, violations[1], "context.call_to_action")
		assert.Contains(t, violations[2], "context.tone")
	})

	t.Run("Empty delays", func(t *testing.T) {
		in := validInput()
		in.Delays = schematype.Delays{}

		violations := Validate(in)
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0], "delays must contain at least one step")
	})

	t.Run("Negative delay", func(t *testing.T) {
		in := validInput()
		in.Delays = schematype.Delays{"1": 0, "2": -3}

		violations := Validate(in)
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0], "delays[2] must be >= 0")
	})

	t.Run("Non-numeric and non-positive step keys", func(t *testing.T) {
		in := validInput()
		in.Delays = schematype.Delays{"first": 0, "0": 1}

		violations := Validate(in)
		require.Len(t, violations, 2)
		assert.Contains(t, violations[0], `"0"`)
		assert.Contains(t, violations[1], `"first"`)
	})

	t.Run("Sparse step keys are valid", func(t *testing.T) {
		in := validInput()
		in.Delays = schematype.Delays{"1": 0, "3": 5}

		assert.Empty(t, Validate(in))
	})

	t.Run("Bad lead filter values", func(t *testing.T) {
		minScore := 150
		status := "negotiating"
		source := "carrier_pigeon"
		in := validInput()
		in.LeadFilter = &schematype.LeadFilter{MinScore: &minScore, Status: &status, Source: &source}

		violations := Validate(in)
		require.Len(t, violations, 3)
		assert.Contains(t, violations[0], "min_score")
		assert.Contains(t, violations[1], `"negotiating"`)
		assert.Contains(t, violations[2], `"carrier_pigeon"`)
	})

	t.Run("All violations reported together", func(t *testing.T) {
		minScore := -1
		in := ValidationInput{
			Name:       "",
			Context:    schematype.CampaignContext{},
			Delays:     nil,
			LeadFilter: &schematype.LeadFilter{MinScore: &minScore},
		}

		violations := Validate(in)
		// name + 5 context fields + delays + min_score
		assert.Len(t, violations, 8)
	})
}
