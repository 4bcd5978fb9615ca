package campaign

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/salesflowhq/salesflow/ent/schema/schematype"
	"github.com/salesflowhq/salesflow/pkg/domain"
	"github.com/salesflowhq/salesflow/pkg/leadlifecycle"
)

// Status represents a campaign lifecycle status.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// allowedTransitions is the campaign workflow edge table. There is no
// terminal state; active and inactive cycle freely. draft -> inactive is
// rejected: a campaign pauses only after it has been activated once.
var allowedTransitions = map[Status]map[Status]bool{
	StatusDraft:    {StatusActive: true},
	StatusActive:   {StatusInactive: true},
	StatusInactive: {StatusActive: true},
}

// knownLeadSources mirrors the lead source enum. A lead_filter referencing
// anything else can never match and is a configuration mistake.
var knownLeadSources = map[string]bool{
	"apollo":     true,
	"linkedin":   true,
	"website":    true,
	"referral":   true,
	"cold_email": true,
	"event":      true,
	"other":      true,
}

// IsValid reports whether s is a known campaign status.
func IsValid(s Status) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransition reports whether the edge from → to is in the workflow table.
func CanTransition(from, to Status) bool {
	return allowedTransitions[from][to]
}

// CheckTransition validates the edge from → to, returning an
// InvalidTransition domain error carrying both states when it is not
// allowed.
func CheckTransition(from, to Status) error {
	if !IsValid(to) || !CanTransition(from, to) {
		return domain.NewInvalidTransitionError(string(from), string(to))
	}
	return nil
}

// ValidationInput is the subset of campaign fields the activation check
// reads.
type ValidationInput struct {
	Name       string
	Context    schematype.CampaignContext
	Delays     schematype.Delays
	LeadFilter *schematype.LeadFilter
}

// Validate runs every activation rule and returns the complete list of
// violations, never stopping at the first one. An empty slice means the
// campaign may activate.
func Validate(in ValidationInput) []string {
	var violations []string

	if in.Name == "" {
		violations = append(violations, "name must not be empty")
	}

	violations = append(violations, validateContext(in.Context)...)
	violations = append(violations, validateDelays(in.Delays)...)

	if in.LeadFilter != nil {
		violations = append(violations, validateLeadFilter(*in.LeadFilter)...)
	}

	return violations
}

func validateContext(c schematype.CampaignContext) []string {
	var violations []string

	fields := []struct {
		name  string
		value string
	}{
		{"company_name", c.CompanyName},
		{"product_description", c.ProductDescription},
		{"problem_solved", c.ProblemSolved},
		{"call_to_action", c.CallToAction},
		{"tone", c.Tone},
	}
	for _, f := range fields {
		if f.value == "" {
			violations = append(violations, fmt.Sprintf("context.%s must not be empty", f.name))
		}
	}

	return violations
}

func validateDelays(d schematype.Delays) []string {
	if len(d) == 0 {
		return []string{"delays must contain at least one step"}
	}

	keys := make([]string, 0, len(d))
	for key := range d {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var violations []string
	for _, key := range keys {
		days := d[key]
		pos, err := strconv.Atoi(key)
		if err != nil || pos < 1 {
			violations = append(violations, fmt.Sprintf("delays key %q must be a positive integer step position", key))
		}
		if days < 0 {
			violations = append(violations, fmt.Sprintf("delays[%s] must be >= 0, got %d", key, days))
		}
	}

	return violations
}

func validateLeadFilter(f schematype.LeadFilter) []string {
	var violations []string

	if f.MinScore != nil && (*f.MinScore < 0 || *f.MinScore > 100) {
		violations = append(violations, fmt.Sprintf("lead_filter.min_score must be between 0 and 100, got %d", *f.MinScore))
	}
	if f.Status != nil && !leadlifecycle.IsValid(leadlifecycle.Status(*f.Status)) {
		violations = append(violations, fmt.Sprintf("lead_filter.status %q is not a valid lead status", *f.Status))
	}
	if f.Source != nil && !knownLeadSources[*f.Source] {
		violations = append(violations, fmt.Sprintf("lead_filter.source %q is not a valid lead source", *f.Source))
	}

	return violations
}
