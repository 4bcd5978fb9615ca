package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead holds the schema definition for the Lead entity. Each lead is a
// prospective contact scoped to one company and tracked through the sales
// status workflow.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.Int("company_id").
			Positive().
			Comment("Tenant this lead belongs to"),
		field.String("email").
			NotEmpty().
			Comment("Primary contact email (unique per company)"),
		field.String("first_name").
			Optional().
			Comment("First name"),
		field.String("last_name").
			Optional().
			Comment("Last name"),
		field.String("company_name").
			Optional().
			Comment("Prospect's company name"),
		field.String("job_title").
			Optional().
			Comment("Job title"),
		field.String("phone").
			Optional().
			Comment("Phone number (E.164 when normalizable)"),
		field.String("linkedin_url").
			Optional().
			Comment("LinkedIn profile URL"),
		field.Enum("source").
			Values("apollo", "linkedin", "website", "referral", "cold_email", "event", "other").
			Default("other").
			Comment("Where the lead came from"),
		field.Enum("status").
			Values("new", "qualified", "contacted", "responded", "converted", "closed", "unqualified").
			Default("new").
			Comment("Lead lifecycle status"),
		field.Time("status_changed_at").
			Default(time.Now).
			Comment("When the status was last changed"),
		field.Int("score").
			Default(0).
			Min(0).
			Max(100).
			Comment("Derived quality score (0-100), recomputed on every scored-field change"),
		field.JSON("custom_fields", map[string]interface{}{}).
			Optional().
			Comment("Company-specific custom fields"),
		field.Text("notes").
			Optional().
			Comment("Free-form notes"),
		field.Int("created_by").
			Optional().
			Comment("User who created the lead (0 for system-created)"),
		field.Bool("is_deleted").
			Default(false).
			Comment("Soft-delete flag; leads are never hard-deleted"),
		field.Int("version").
			Default(1).
			Positive().
			Comment("Optimistic concurrency version, bumped on every write"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Lead.
func (Lead) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("leads").
			Field("company_id").
			Unique().
			Required(),
		edge.To("status_history", LeadStatusHistory.Type),
		edge.To("campaign_emails", CampaignEmail.Type),
	}
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "email").
			Unique().
			StorageKey("idx_leads_company_email"),
		index.Fields("company_id", "status", "is_deleted").
			StorageKey("idx_leads_company_status"),
		index.Fields("company_id", "score", "status").
			StorageKey("idx_leads_score"),
		index.Fields("company_id", "source"),
		index.Fields("created_at"),
	}
}
