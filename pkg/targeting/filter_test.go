package targeting

import (
	"testing"

	"github.com/salesflowhq/salesflow/ent"
	"github.com/salesflowhq/salesflow/ent/lead"
	"github.com/salesflowhq/salesflow/ent/schema/schematype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeLead(id, score int, status, source string) *ent.Lead {
	return &ent.Lead{
		ID:     id,
		Score:  score,
		Status: lead.Status(status),
		Source: lead.Source(source),
	}
}

func TestTargets(t *testing.T) {
	leads := []*ent.Lead{
		makeLead(1, 85, "new", "linkedin"),
		makeLead(2, 40, "contacted", "website"),
		makeLead(3, 70, "new", "referral"),
		makeLead(4, 95, "qualified", "linkedin"),
		makeLead(5, 10, "new", "other"),
	}

	t.Run("Nil filter matches everything", func(t *testing.T) {
		assert.Equal(t, leads, Targets(nil, leads))
	})

	t.Run("Empty filter matches everything", func(t *testing.T) {
		result := Targets(&schematype.LeadFilter{}, leads)
		assert.Equal(t, leads, result)
	})

	t.Run("Min score", func(t *testing.T) {
		minScore := 70
		result := Targets(&schematype.LeadFilter{MinScore: &minScore}, leads)

		require.Len(t, result, 3)
		assert.Equal(t, []int{1, 3, 4}, ids(result))
	})

	t.Run("Status only", func(t *testing.T) {
		status := "new"
		result := Targets(&schematype.LeadFilter{Status: &status}, leads)

		assert.Equal(t, []int{1, 3, 5}, ids(result))
	})

	t.Run("Source only", func(t *testing.T) {
		source := "linkedin"
		result := Targets(&schematype.LeadFilter{Source: &source}, leads)

		assert.Equal(t, []int{1, 4}, ids(result))
	})

	t.Run("All constraints combined", func(t *testing.T) {
		minScore := 50
		status := "new"
		source := "linkedin"
		result := Targets(&schematype.LeadFilter{MinScore: &minScore, Status: &status, Source: &source}, leads)

		assert.Equal(t, []int{1}, ids(result))
	})

	t.Run("Nothing matches", func(t *testing.T) {
		minScore := 99
		status := "new"
		result := Targets(&schematype.LeadFilter{MinScore: &minScore, Status: &status}, leads)

		assert.Empty(t, result)
	})

	t.Run("Order preserved regardless of filter", func(t *testing.T) {
		minScore := 1
		result := Targets(&schematype.LeadFilter{MinScore: &minScore}, leads)

		assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(result))
	})

	t.Run("Input never mutated", func(t *testing.T) {
		minScore := 70
		_ = Targets(&schematype.LeadFilter{MinScore: &minScore}, leads)

		assert.Len(t, leads, 5)
		assert.Equal(t, 40, leads[1].Score)
	})

	t.Run("Every returned lead satisfies the predicate", func(t *testing.T) {
		minScore := 50
		filter := &schematype.LeadFilter{MinScore: &minScore}
		for _, l := range Targets(filter, leads) {
			assert.True(t, Matches(filter, l))
		}
	})
}

func TestMatches_MinScoreDefaultsToZero(t *testing.T) {
	l := makeLead(1, 0, "new", "other")
	assert.True(t, Matches(&schematype.LeadFilter{}, l))
	assert.True(t, Matches(nil, l))
}

func ids(leads []*ent.Lead) []int {
	out := make([]int, len(leads))
	for i, l := range leads {
		out[i] = l.ID
	}
	return out
}
