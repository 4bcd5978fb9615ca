// Package targeting evaluates a campaign's lead filter against a lead set to
// produce the target cohort. It is pure: it never mutates leads and never
// touches storage.
package targeting

import (
	"github.com/salesflowhq/salesflow/ent"
	"github.com/salesflowhq/salesflow/ent/schema/schematype"
)

// Matches reports whether a single lead satisfies the filter. A nil or empty
// filter matches every lead; min_score defaults to 0.
func Matches(filter *schematype.LeadFilter, l *ent.Lead) bool {
	if filter == nil {
		return true
	}
	if filter.MinScore != nil && l.Score < *filter.MinScore {
		return false
	}
	if filter.Status != nil && string(l.Status) != *filter.Status {
		return false
	}
	if filter.Source != nil && string(l.Source) != *filter.Source {
		return false
	}
	return true
}

// Targets returns the subset of leads matching the filter, preserving the
// relative order of the input.
func Targets(filter *schematype.LeadFilter, leads []*ent.Lead) []*ent.Lead {
	if filter == nil || filter.IsEmpty() {
		return leads
	}

	matched := make([]*ent.Lead, 0, len(leads))
	for _, l := range leads {
		if Matches(filter, l) {
			matched = append(matched, l)
		}
	}
	return matched
}
