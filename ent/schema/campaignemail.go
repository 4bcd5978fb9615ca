package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CampaignEmail holds the schema definition for the CampaignEmail entity:
// one execution record per (campaign, lead, sequence step). The campaign
// stores the configuration; this tracks what actually gets sent.
type CampaignEmail struct {
	ent.Schema
}

// Fields of the CampaignEmail.
func (CampaignEmail) Fields() []ent.Field {
	return []ent.Field{
		field.Int("campaign_id").
			Positive().
			Comment("Campaign this email belongs to"),
		field.Int("lead_id").
			Positive().
			Comment("Lead this email targets"),
		field.Int("sequence_position").
			Positive().
			Comment("1-based step position within the campaign sequence"),
		field.String("subject").
			Optional().
			MaxLen(500).
			Comment("Subject line (empty until drafted)"),
		field.Text("body").
			Optional().
			Comment("Email body (empty until drafted)"),
		field.Enum("status").
			Values("pending", "scheduled", "sent", "failed").
			Default("pending").
			Comment("Sending pipeline status"),
		field.Time("scheduled_send_at").
			Comment("When this email is due, derived from the campaign delays"),
		field.Time("sent_at").
			Optional().
			Nillable().
			Comment("Actual send timestamp"),
		field.Text("error_message").
			Optional().
			Comment("Failure detail when status is failed"),
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

// Edges of the CampaignEmail.
func (CampaignEmail) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("campaign", Campaign.Type).
			Ref("emails").
			Field("campaign_id").
			Unique().
			Required(),
		edge.From("lead", Lead.Type).
			Ref("campaign_emails").
			Field("lead_id").
			Unique().
			Required(),
	}
}

// Indexes of the CampaignEmail.
func (CampaignEmail) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("campaign_id", "lead_id", "sequence_position").
			Unique().
			StorageKey("idx_campaign_emails_dedup"),
		index.Fields("status", "scheduled_send_at").
			StorageKey("idx_campaign_emails_due"),
		index.Fields("lead_id"),
	}
}
