// Package schematype defines the structured JSON values stored on ent
// entities. Keeping them here lets both the schemas and the services share
// one definition without an import cycle through the generated code.
package schematype

// CampaignContext is the user-provided context a campaign's emails are
// drafted from. Every field must be populated before a campaign can
// activate.
type CampaignContext struct {
	CompanyName        string `json:"company_name"`
	ProductDescription string `json:"product_description"`
	ProblemSolved      string `json:"problem_solved"`
	CallToAction       string `json:"call_to_action"`
	Tone               string `json:"tone"`
}

// Delays maps a 1-based sequence step position (serialized as a string key,
// e.g. "1", "3") to a day offset from the campaign's scheduled start. Gaps
// between positions are allowed and honored as-is.
type Delays map[string]int

// LeadFilter selects the cohort of leads a campaign targets. All fields are
// optional; the zero value matches every lead.
type LeadFilter struct {
	MinScore *int    `json:"min_score,omitempty"`
	Status   *string `json:"status,omitempty"`
	Source   *string `json:"source,omitempty"`
}

// IsEmpty reports whether the filter has no constraints.
func (f LeadFilter) IsEmpty() bool {
	return f.MinScore == nil && f.Status == nil && f.Source == nil
}
