package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.Int("company_id").
			Positive().
			Comment("Company this user belongs to"),
		field.String("email").
			Unique().
			NotEmpty().
			Comment("Login email"),
		field.String("password_hash").
			NotEmpty().
			Sensitive().
			Comment("bcrypt password hash"),
		field.String("name").
			NotEmpty().
			Comment("Display name"),
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

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("users").
			Field("company_id").
			Unique().
			Required(),
		edge.To("lead_status_changes", LeadStatusHistory.Type),
		edge.To("campaigns", Campaign.Type),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
		index.Fields("company_id"),
	}
}
