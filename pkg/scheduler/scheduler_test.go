package scheduler

import (
	"testing"
	"time"

	"github.com/salesflowhq/salesflow/ent/schema/schematype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule(t *testing.T) {
	t0 := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Sparse step keys honored in position order", func(t *testing.T) {
		due := Schedule(schematype.Delays{"1": 0, "3": 5}, t0, []int{42})

		require.Len(t, due, 2)
		assert.Equal(t, DueEmail{LeadID: 42, Position: 1, DueAt: t0}, due[0])
		assert.Equal(t, DueEmail{LeadID: 42, Position: 3, DueAt: t0.AddDate(0, 0, 5)}, due[1])
	})

	t.Run("Leads in input order, steps ascending within each lead", func(t *testing.T) {
		due := Schedule(schematype.Delays{"2": 3, "1": 0}, t0, []int{7, 3})

		require.Len(t, due, 4)
		assert.Equal(t, 7, due[0].LeadID)
		assert.Equal(t, 1, due[0].Position)
		assert.Equal(t, 7, due[1].LeadID)
		assert.Equal(t, 2, due[1].Position)
		assert.Equal(t, 3, due[2].LeadID)
		assert.Equal(t, 1, due[2].Position)
		assert.Equal(t, 3, due[3].LeadID)
		assert.Equal(t, 2, due[3].Position)
	})

	t.Run("Idempotent - identical inputs produce identical output", func(t *testing.T) {
		delays := schematype.Delays{"1": 0, "2": 2, "5": 10}
		leads := []int{1, 2, 3}

		first := Schedule(delays, t0, leads)
		second := Schedule(delays, t0, leads)

		assert.Equal(t, first, second)
	})

	t.Run("No leads", func(t *testing.T) {
		assert.Empty(t, Schedule(schematype.Delays{"1": 0}, t0, nil))
	})

	t.Run("No delays", func(t *testing.T) {
		assert.Empty(t, Schedule(schematype.Delays{}, t0, []int{1}))
	})

	t.Run("Unparsable keys skipped", func(t *testing.T) {
		due := Schedule(schematype.Delays{"1": 0, "oops": 3, "0": 1}, t0, []int{1})

		require.Len(t, due, 1)
		assert.Equal(t, 1, due[0].Position)
	})

	t.Run("Day offsets cross month boundaries", func(t *testing.T) {
		start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
		due := Schedule(schematype.Delays{"1": 4}, start, []int{1})

		require.Len(t, due, 1)
		assert.Equal(t, time.Date(2026, 9, 3, 12, 0, 0, 0, time.UTC), due[0].DueAt)
	})
}
