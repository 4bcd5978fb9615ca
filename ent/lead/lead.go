// Code generated by ent, DO NOT EDIT.

package lead

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the lead type in the database.
	Label = "lead"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldFirstName holds the string denoting the first_name field in the database.
	FieldFirstName = "first_name"
	// FieldLastName holds the string denoting the last_name field in the database.
	FieldLastName = "last_name"
	// FieldCompanyName holds the string denoting the company_name field in the database.
	FieldCompanyName = "company_name"
	// FieldJobTitle holds the string denoting the job_title field in the database.
	FieldJobTitle = "job_title"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldLinkedinURL holds the string denoting the linkedin_url field in the database.
	FieldLinkedinURL = "linkedin_url"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStatusChangedAt holds the string denoting the status_changed_at field in the database.
	FieldStatusChangedAt = "status_changed_at"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldCustomFields holds the string denoting the custom_fields field in the database.
	FieldCustomFields = "custom_fields"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldIsDeleted holds the string denoting the is_deleted field in the database.
	FieldIsDeleted = "is_deleted"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCompany holds the string denoting the company edge name in mutations.
	EdgeCompany = "company"
	// EdgeStatusHistory holds the string denoting the status_history edge name in mutations.
	EdgeStatusHistory = "status_history"
	// EdgeCampaignEmails holds the string denoting the campaign_emails edge name in mutations.
	EdgeCampaignEmails = "campaign_emails"
	// Table holds the table name of the lead in the database.
	Table = "leads"
	// CompanyTable is the table that holds the company relation/edge.
	CompanyTable = "leads"
	// CompanyInverseTable is the table name for the Company entity.
	// It exists in this package in order to avoid circular dependency with the "company" package.
	CompanyInverseTable = "companies"
	// CompanyColumn is the table column denoting the company relation/edge.
	CompanyColumn = "company_id"
	// StatusHistoryTable is the table that holds the status_history relation/edge.
	StatusHistoryTable = "lead_status_histories"
	// StatusHistoryInverseTable is the table name for the LeadStatusHistory entity.
	// It exists in this package in order to avoid circular dependency with the "leadstatushistory" package.
	StatusHistoryInverseTable = "lead_status_histories"
	// StatusHistoryColumn is the table column denoting the status_history relation/edge.
	StatusHistoryColumn = "lead_id"
	// CampaignEmailsTable is the table that holds the campaign_emails relation/edge.
	CampaignEmailsTable = "campaign_emails"
	// CampaignEmailsInverseTable is the table name for the CampaignEmail entity.
	// It exists in this package in order to avoid circular dependency with the "campaignemail" package.
	CampaignEmailsInverseTable = "campaign_emails"
	// CampaignEmailsColumn is the table column denoting the campaign_emails relation/edge.
	CampaignEmailsColumn = "lead_id"
)

// Columns holds all SQL columns for lead fields.
var Columns = []string{
	FieldID,
	FieldCompanyID,
	FieldEmail,
	FieldFirstName,
	FieldLastName,
	FieldCompanyName,
	FieldJobTitle,
	FieldPhone,
	FieldLinkedinURL,
	FieldSource,
	FieldStatus,
	FieldStatusChangedAt,
	FieldScore,
	FieldCustomFields,
	FieldNotes,
	FieldCreatedBy,
	FieldIsDeleted,
	FieldVersion,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// CompanyIDValidator is a validator for the "company_id" field. It is called by the builders before save.
	CompanyIDValidator func(int) error
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// DefaultStatusChangedAt holds the default value on creation for the "status_changed_at" field.
	DefaultStatusChangedAt func() time.Time
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore int
	// ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	ScoreValidator func(int) error
	// DefaultIsDeleted holds the default value on creation for the "is_deleted" field.
	DefaultIsDeleted bool
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// VersionValidator is a validator for the "version" field. It is called by the builders before save.
	VersionValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Source defines the type for the "source" enum field.
type Source string

// SourceOther is the default value of the Source enum.
const DefaultSource = SourceOther

// Source values.
const (
	SourceApollo    Source = "apollo"
	SourceLinkedin  Source = "linkedin"
	SourceWebsite   Source = "website"
	SourceReferral  Source = "referral"
	SourceColdEmail Source = "cold_email"
	SourceEvent     Source = "event"
	SourceOther     Source = "other"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceApollo, SourceLinkedin, SourceWebsite, SourceReferral, SourceColdEmail, SourceEvent, SourceOther:
		return nil
	default:
		return fmt.Errorf("lead: invalid enum value for source field: %q", s)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusNew is the default value of the Status enum.
const DefaultStatus = StatusNew

// Status values.
const (
	StatusNew         Status = "new"
	StatusQualified   Status = "qualified"
	StatusContacted   Status = "contacted"
	StatusResponded   Status = "responded"
	StatusConverted   Status = "converted"
	StatusClosed      Status = "closed"
	StatusUnqualified Status = "unqualified"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusNew, StatusQualified, StatusContacted, StatusResponded, StatusConverted, StatusClosed, StatusUnqualified:
		return nil
	default:
		return fmt.Errorf("lead: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Lead queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByFirstName orders the results by the first_name field.
func ByFirstName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstName, opts...).ToFunc()
}

// ByLastName orders the results by the last_name field.
func ByLastName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastName, opts...).ToFunc()
}

// ByCompanyName orders the results by the company_name field.
func ByCompanyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyName, opts...).ToFunc()
}

// ByJobTitle orders the results by the job_title field.
func ByJobTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobTitle, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByLinkedinURL orders the results by the linkedin_url field.
func ByLinkedinURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinkedinURL, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStatusChangedAt orders the results by the status_changed_at field.
func ByStatusChangedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusChangedAt, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByIsDeleted orders the results by the is_deleted field.
func ByIsDeleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDeleted, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompanyField orders the results by company field.
func ByCompanyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCompanyStep(), sql.OrderByField(field, opts...))
	}
}

// ByStatusHistoryCount orders the results by status_history count.
func ByStatusHistoryCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStatusHistoryStep(), opts...)
	}
}

// ByStatusHistory orders the results by status_history terms.
func ByStatusHistory(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStatusHistoryStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCampaignEmailsCount orders the results by campaign_emails count.
func ByCampaignEmailsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCampaignEmailsStep(), opts...)
	}
}

// ByCampaignEmails orders the results by campaign_emails terms.
func ByCampaignEmails(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCampaignEmailsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCompanyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CompanyInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
	)
}
func newStatusHistoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StatusHistoryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StatusHistoryTable, StatusHistoryColumn),
	)
}
func newCampaignEmailsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CampaignEmailsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CampaignEmailsTable, CampaignEmailsColumn),
	)
}
