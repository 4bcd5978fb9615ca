// Code generated by ent, DO NOT EDIT.

package leadstatushistory

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the leadstatushistory type in the database.
	Label = "lead_status_history"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLeadID holds the string denoting the lead_id field in the database.
	FieldLeadID = "lead_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldOldStatus holds the string denoting the old_status field in the database.
	FieldOldStatus = "old_status"
	// FieldNewStatus holds the string denoting the new_status field in the database.
	FieldNewStatus = "new_status"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeLead holds the string denoting the lead edge name in mutations.
	EdgeLead = "lead"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// Table holds the table name of the leadstatushistory in the database.
	Table = "lead_status_histories"
	// LeadTable is the table that holds the lead relation/edge.
	LeadTable = "lead_status_histories"
	// LeadInverseTable is the table name for the Lead entity.
	// It exists in this package in order to avoid circular dependency with the "lead" package.
	LeadInverseTable = "leads"
	// LeadColumn is the table column denoting the lead relation/edge.
	LeadColumn = "lead_id"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "lead_status_histories"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
)

// Columns holds all SQL columns for leadstatushistory fields.
var Columns = []string{
	FieldID,
	FieldLeadID,
	FieldUserID,
	FieldOldStatus,
	FieldNewStatus,
	FieldReason,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LeadIDValidator is a validator for the "lead_id" field. It is called by the builders before save.
	LeadIDValidator func(int) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(int) error
	// ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	ReasonValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OldStatus defines the type for the "old_status" enum field.
type OldStatus string

// OldStatus values.
const (
	OldStatusNew         OldStatus = "new"
	OldStatusQualified   OldStatus = "qualified"
	OldStatusContacted   OldStatus = "contacted"
	OldStatusResponded   OldStatus = "responded"
	OldStatusConverted   OldStatus = "converted"
	OldStatusClosed      OldStatus = "closed"
	OldStatusUnqualified OldStatus = "unqualified"
)

func (os OldStatus) String() string {
	return string(os)
}

// OldStatusValidator is a validator for the "old_status" field enum values. It is called by the builders before save.
func OldStatusValidator(os OldStatus) error {
	switch os {
	case OldStatusNew, OldStatusQualified, OldStatusContacted, OldStatusResponded, OldStatusConverted, OldStatusClosed, OldStatusUnqualified:
		return nil
	default:
		return fmt.Errorf("leadstatushistory: invalid enum value for old_status field: %q", os)
	}
}

// NewStatus defines the type for the "new_status" enum field.
type NewStatus string

// NewStatus values.
const (
	NewStatusNew         NewStatus = "new"
	NewStatusQualified   NewStatus = "qualified"
	NewStatusContacted   NewStatus = "contacted"
	NewStatusResponded   NewStatus = "responded"
	NewStatusConverted   NewStatus = "converted"
	NewStatusClosed      NewStatus = "closed"
	NewStatusUnqualified NewStatus = "unqualified"
)

func (ns NewStatus) String() string {
	return string(ns)
}

// NewStatusValidator is a validator for the "new_status" field enum values. It is called by the builders before save.
func NewStatusValidator(ns NewStatus) error {
	switch ns {
	case NewStatusNew, NewStatusQualified, NewStatusContacted, NewStatusResponded, NewStatusConverted, NewStatusClosed, NewStatusUnqualified:
		return nil
	default:
		return fmt.Errorf("leadstatushistory: invalid enum value for new_status field: %q", ns)
	}
}

// OrderOption defines the ordering options for the LeadStatusHistory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLeadID orders the results by the lead_id field.
func ByLeadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeadID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByOldStatus orders the results by the old_status field.
func ByOldStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOldStatus, opts...).ToFunc()
}

// ByNewStatus orders the results by the new_status field.
func ByNewStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewStatus, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLeadField orders the results by lead field.
func ByLeadField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLeadStep(), sql.OrderByField(field, opts...))
	}
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}
func newLeadStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LeadInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LeadTable, LeadColumn),
	)
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
