// Package scheduler derives the due timestamp of every email step for each
// targeted lead of a campaign, and persists the resulting execution records.
package scheduler

import (
	"sort"
	"strconv"
	"time"

	"github.com/salesflowhq/salesflow/ent/schema/schematype"
)

// DueEmail is one derived (lead, step) execution slot.
type DueEmail struct {
	LeadID   int       `json:"lead_id"`
	Position int       `json:"position"`
	DueAt    time.Time `json:"due_at"`
}

type step struct {
	position int
	days     int
}

// parseSteps converts the delay mapping into steps ordered ascending by
// position. Keys that do not parse as positive integers are skipped; the
// campaign validator rejects them before activation.
func parseSteps(delays schematype.Delays) []step {
	steps := make([]step, 0, len(delays))
	for key, days := range delays {
		pos, err := strconv.Atoi(key)
		if err != nil || pos < 1 {
			continue
		}
		steps = append(steps, step{position: pos, days: days})
	}
	sort.Slice(steps, func(i, j int) bool { return steps[i].position < steps[j].position })
	return steps
}

// Schedule computes the due list for a set of targeted leads: for each lead,
// in input order, one entry per step ascending by position, due at
// scheduledStart plus the step's day offset. Pure and deterministic: the same
// inputs always produce the same ordered output.
func Schedule(delays schematype.Delays, scheduledStart time.Time, leadIDs []int) []DueEmail {
	steps := parseSteps(delays)

	due := make([]DueEmail, 0, len(leadIDs)*len(steps))
	for _, leadID := range leadIDs {
		for _, st := range steps {
			due = append(due, DueEmail{
				LeadID:   leadID,
				Position: st.position,
				DueAt:    scheduledStart.AddDate(0, 0, st.days),
			})
		}
	}
	return due
}
