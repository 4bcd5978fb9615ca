// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/salesflowhq/salesflow/ent/campaign"
	"github.com/salesflowhq/salesflow/ent/company"
	"github.com/salesflowhq/salesflow/ent/schema/schematype"
	"github.com/salesflowhq/salesflow/ent/user"
)

// Campaign is the model entity for the Campaign schema.
type Campaign struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Tenant this campaign belongs to
	CompanyID int `json:"company_id,omitempty"`
	// User who created the campaign
	UserID int `json:"user_id,omitempty"`
	// Campaign name
	Name string `json:"name,omitempty"`
	// Drafting context; fully populated before activation
	Context schematype.CampaignContext `json:"context,omitempty"`
	// Step position (string key, 1-based) to day offset; non-empty before activation
	Delays schematype.Delays `json:"delays,omitempty"`
	// Targeting filter; nil or empty matches every lead
	LeadFilter *schematype.LeadFilter `json:"lead_filter,omitempty"`
	// Campaign lifecycle status
	Status campaign.Status `json:"status,omitempty"`
	// Sequence anchor; step due times are offsets from this
	ScheduledStart time.Time `json:"scheduled_start,omitempty"`
	// Scheduled execution records
	EmailCount int `json:"email_count,omitempty"`
	// Successfully sent emails
	SentCount int `json:"sent_count,omitempty"`
	// Failed sends
	FailedCount int `json:"failed_count,omitempty"`
	// Optimistic concurrency version, bumped on every write
	Version int `json:"version,omitempty"`
	// Soft-delete timestamp
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CampaignQuery when eager-loading is set.
	Edges        CampaignEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CampaignEdges holds the relations/edges for other nodes in the graph.
type CampaignEdges struct {
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Emails holds the value of the emails edge.
	Emails []*CampaignEmail `json:"emails,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CampaignEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CampaignEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// EmailsOrErr returns the Emails value or an error if the edge
// was not loaded in eager-loading.
func (e CampaignEdges) EmailsOrErr() ([]*CampaignEmail, error) {
	if e.loadedTypes[2] {
		return e.Emails, nil
	}
	return nil, &NotLoadedError{edge: "emails"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Campaign) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case campaign.FieldContext, campaign.FieldDelays, campaign.FieldLeadFilter:
			values[i] = new([]byte)
		case campaign.FieldID, campaign.FieldCompanyID, campaign.FieldUserID, campaign.FieldEmailCount, campaign.FieldSentCount, campaign.FieldFailedCount, campaign.FieldVersion:
			values[i] = new(sql.NullInt64)
		case campaign.FieldName, campaign.FieldStatus:
			values[i] = new(sql.NullString)
		case campaign.FieldScheduledStart, campaign.FieldDeletedAt, campaign.FieldCreatedAt, campaign.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Campaign fields.
func (_m *Campaign) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case campaign.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case campaign.FieldCompanyID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = int(value.Int64)
			}
		case campaign.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case campaign.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case campaign.FieldContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Context); err != nil {
					return fmt.Errorf("unmarshal field context: %w", err)
				}
			}
		case campaign.FieldDelays:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field delays", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Delays); err != nil {
					return fmt.Errorf("unmarshal field delays: %w", err)
				}
			}
		case campaign.FieldLeadFilter:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field lead_filter", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LeadFilter); err != nil {
					return fmt.Errorf("unmarshal field lead_filter: %w", err)
				}
			}
		case campaign.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = campaign.Status(value.String)
			}
		case campaign.FieldScheduledStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_start", values[i])
			} else if value.Valid {
				_m.ScheduledStart = value.Time
			}
		case campaign.FieldEmailCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field email_count", values[i])
			} else if value.Valid {
				_m.EmailCount = int(value.Int64)
			}
		case campaign.FieldSentCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sent_count", values[i])
			} else if value.Valid {
				_m.SentCount = int(value.Int64)
			}
		case campaign.FieldFailedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_count", values[i])
			} else if value.Valid {
				_m.FailedCount = int(value.Int64)
			}
		case campaign.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case campaign.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case campaign.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case campaign.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Campaign.
// This includes values selected through modifiers, order, etc.
func (_m *Campaign) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompany queries the "company" edge of the Campaign entity.
func (_m *Campaign) QueryCompany() *CompanyQuery {
	return NewCampaignClient(_m.config).QueryCompany(_m)
}

// QueryUser queries the "user" edge of the Campaign entity.
func (_m *Campaign) QueryUser() *UserQuery {
	return NewCampaignClient(_m.config).QueryUser(_m)
}

// QueryEmails queries the "emails" edge of the Campaign entity.
func (_m *Campaign) QueryEmails() *CampaignEmailQuery {
	return NewCampaignClient(_m.config).QueryEmails(_m)
}

// Update returns a builder for updating this Campaign.
// Note that you need to call Campaign.Unwrap() before calling this method if this Campaign
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Campaign) Update() *CampaignUpdateOne {
	return NewCampaignClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Campaign entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Campaign) Unwrap() *Campaign {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Campaign is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Campaign) String() string {
	var builder strings.Builder
	builder.WriteString("Campaign(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(fmt.Sprintf("%v", _m.Context))
	builder.WriteString(", ")
	builder.WriteString("delays=")
	builder.WriteString(fmt.Sprintf("%v", _m.Delays))
	builder.WriteString(", ")
	builder.WriteString("lead_filter=")
	builder.WriteString(fmt.Sprintf("%v", _m.LeadFilter))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("scheduled_start=")
	builder.WriteString(_m.ScheduledStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("email_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailCount))
	builder.WriteString(", ")
	builder.WriteString("sent_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SentCount))
	builder.WriteString(", ")
	builder.WriteString("failed_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedCount))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Campaigns is a parsable slice of Campaign.
type Campaigns []*Campaign
