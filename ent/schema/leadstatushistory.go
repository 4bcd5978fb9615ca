package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LeadStatusHistory holds the schema definition for the LeadStatusHistory
// entity: one row per lead status transition (who/when/from/to).
type LeadStatusHistory struct {
	ent.Schema
}

// Fields of the LeadStatusHistory.
func (LeadStatusHistory) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lead_id").
			Positive().
			Comment("Lead whose status changed"),
		field.Int("user_id").
			Positive().
			Comment("User who requested the transition"),
		field.Enum("old_status").
			Values("new", "qualified", "contacted", "responded", "converted", "closed", "unqualified").
			Comment("Status before the transition"),
		field.Enum("new_status").
			Values("new", "qualified", "contacted", "responded", "converted", "closed", "unqualified").
			Comment("Status after the transition"),
		field.Text("reason").
			Optional().
			MaxLen(1000).
			Comment("Optional reason supplied by the caller"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the transition occurred"),
	}
}

// Edges of the LeadStatusHistory.
func (LeadStatusHistory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lead", Lead.Type).
			Ref("status_history").
			Field("lead_id").
			Unique().
			Required(),
		edge.From("user", User.Type).
			Ref("lead_status_changes").
			Field("user_id").
			Unique().
			Required(),
	}
}

// Indexes of the LeadStatusHistory.
func (LeadStatusHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lead_id", "created_at").
			StorageKey("idx_lead_status_history_lead_time"),
		index.Fields("user_id").
			StorageKey("idx_lead_status_history_user"),
	}
}
