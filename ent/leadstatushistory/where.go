// Code generated by ent, DO NOT EDIT.

package leadstatushistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/salesflowhq/salesflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldLTE(FieldID, id))
}

// LeadID applies equality check predicate on the "lead_id" field. It's identical to LeadIDEQ.
func LeadID(v int) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldEQ(FieldLeadID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldEQ(FieldUserID, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldEQ(FieldReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// LeadIDEQ applies the EQ predicate on the "lead_id" field.
func LeadIDEQ(v int) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldEQ(FieldLeadID, v))
}

// LeadIDNEQ applies the NEQ predicate on the "lead_id" field.
func LeadIDNEQ(v int) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldNEQ(FieldLeadID, v))
}

// LeadIDIn applies the In predicate on the "lead_id" field.
func LeadIDIn(vs ...int) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldIn(FieldLeadID, vs...))
}

// LeadIDNotIn applies the NotIn predicate on the "lead_id" field.
func LeadIDNotIn(vs ...int) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldNotIn(FieldLeadID, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldNotIn(FieldUserID, vs...))
}

// OldStatusEQ applies the EQ predicate on the "old_status" field.
func OldStatusEQ(v OldStatus) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldEQ(FieldOldStatus, v))
}

// OldStatusNEQ applies the NEQ predicate on the "old_status" field.
func OldStatusNEQ(v OldStatus) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldNEQ(FieldOldStatus, v))
}

// OldStatusIn applies the In predicate on the "old_status" field.
func OldStatusIn(vs ...OldStatus) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldIn(FieldOldStatus, vs...))
}

// OldStatusNotIn applies the NotIn predicate on the "old_status" field.
func OldStatusNotIn(vs ...OldStatus) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldNotIn(FieldOldStatus, vs...))
}

// NewStatusEQ applies the EQ predicate on the "new_status" field.
func NewStatusEQ(v NewStatus) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldEQ(FieldNewStatus, v))
}

// NewStatusNEQ applies the NEQ predicate on the "new_status" field.
func NewStatusNEQ(v NewStatus) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldNEQ(FieldNewStatus, v))
}

// NewStatusIn applies the In predicate on the "new_status" field.
func NewStatusIn(vs ...NewStatus) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldIn(FieldNewStatus, vs...))
}

// NewStatusNotIn applies the NotIn predicate on the "new_status" field.
func NewStatusNotIn(vs ...NewStatus) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldNotIn(FieldNewStatus, vs...))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldContainsFold(FieldReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.FieldLTE(FieldCreatedAt, v))
}

// HasLead applies the HasEdge predicate on the "lead" edge.
func HasLead() predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LeadTable, LeadColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLeadWith applies the HasEdge predicate on the "lead" edge with a given conditions (other predicates).
func HasLeadWith(preds ...predicate.Lead) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(func(s *sql.Selector) {
		step := newLeadStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LeadStatusHistory) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LeadStatusHistory) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LeadStatusHistory) predicate.LeadStatusHistory {
	return predicate.LeadStatusHistory(sql.NotPredicates(p))
}
