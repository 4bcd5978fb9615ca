package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/salesflowhq/salesflow/ent/schema/schematype"
)

// Campaign holds the schema definition for the Campaign entity: a configured
// multi-step email outreach definition. `status` is the single canonical
// lifecycle representation (draft, active, inactive).
type Campaign struct {
	ent.Schema
}

// Fields of the Campaign.
func (Campaign) Fields() []ent.Field {
	return []ent.Field{
		field.Int("company_id").
			Positive().
			Comment("Tenant this campaign belongs to"),
		field.Int("user_id").
			Positive().
			Comment("User who created the campaign"),
		field.String("name").
			NotEmpty().
			MaxLen(200).
			Comment("Campaign name"),
		field.JSON("context", schematype.CampaignContext{}).
			Optional().
			Comment("Drafting context; fully populated before activation"),
		field.JSON("delays", schematype.Delays{}).
			Optional().
			Comment("Step position (string key, 1-based) to day offset; non-empty before activation"),
		field.JSON("lead_filter", &schematype.LeadFilter{}).
			Optional().
			Comment("Targeting filter; nil or empty matches every lead"),
		field.Enum("status").
			Values("draft", "active", "inactive").
			Default("draft").
			Comment("Campaign lifecycle status"),
		field.Time("scheduled_start").
			Default(time.Now).
			Comment("Sequence anchor; step due times are offsets from this"),
		field.Int("email_count").
			Default(0).
			NonNegative().
			Comment("Scheduled execution records"),
		field.Int("sent_count").
			Default(0).
			NonNegative().
			Comment("Successfully sent emails"),
		field.Int("failed_count").
			Default(0).
			NonNegative().
			Comment("Failed sends"),
		field.Int("version").
			Default(1).
			Positive().
			Comment("Optimistic concurrency version, bumped on every write"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft-delete timestamp"),
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

// Edges of the Campaign.
func (Campaign) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("campaigns").
			Field("company_id").
			Unique().
			Required(),
		edge.From("user", User.Type).
			Ref("campaigns").
			Field("user_id").
			Unique().
			Required(),
		edge.To("emails", CampaignEmail.Type),
	}
}

// Indexes of the Campaign.
func (Campaign) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "status"),
		index.Fields("user_id"),
		index.Fields("scheduled_start"),
		index.Fields("created_at"),
	}
}
