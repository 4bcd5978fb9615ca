// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/salesflowhq/salesflow/ent/company"
	"github.com/salesflowhq/salesflow/ent/lead"
)

// Lead is the model entity for the Lead schema.
type Lead struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Tenant this lead belongs to
	CompanyID int `json:"company_id,omitempty"`
	// Primary contact email (unique per company)
	Email string `json:"email,omitempty"`
	// First name
	FirstName string `json:"first_name,omitempty"`
	// Last name
	LastName string `json:"last_name,omitempty"`
	// Prospect's company name
	CompanyName string `json:"company_name,omitempty"`
	// Job title
	JobTitle string `json:"job_title,omitempty"`
	// Phone number (E.164 when normalizable)
	Phone string `json:"phone,omitempty"`
	// LinkedIn profile URL
	LinkedinURL string `json:"linkedin_url,omitempty"`
	// Where the lead came from
	Source lead.Source `json:"source,omitempty"`
	// Lead lifecycle status
	Status lead.Status `json:"status,omitempty"`
	// When the status was last changed
	StatusChangedAt time.Time `json:"status_changed_at,omitempty"`
	// Derived quality score (0-100), recomputed on every scored-field change
	Score int `json:"score,omitempty"`
	// Company-specific custom fields
	CustomFields map[string]interface{} `json:"custom_fields,omitempty"`
	// Free-form notes
	Notes string `json:"notes,omitempty"`
	// User who created the lead (0 for system-created)
	CreatedBy int `json:"created_by,omitempty"`
	// Soft-delete flag; leads are never hard-deleted
	IsDeleted bool `json:"is_deleted,omitempty"`
	// Optimistic concurrency version, bumped on every write
	Version int `json:"version,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LeadQuery when eager-loading is set.
	Edges        LeadEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LeadEdges holds the relations/edges for other nodes in the graph.
type LeadEdges struct {
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// StatusHistory holds the value of the status_history edge.
	StatusHistory []*LeadStatusHistory `json:"status_history,omitempty"`
	// CampaignEmails holds the value of the campaign_emails edge.
	CampaignEmails []*CampaignEmail `json:"campaign_emails,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LeadEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// StatusHistoryOrErr returns the StatusHistory value or an error if the edge
// was not loaded in eager-loading.
func (e LeadEdges) StatusHistoryOrErr() ([]*LeadStatusHistory, error) {
	if e.loadedTypes[1] {
		return e.StatusHistory, nil
	}
	return nil, &NotLoadedError{edge: "status_history"}
}

// CampaignEmailsOrErr returns the CampaignEmails value or an error if the edge
// was not loaded in eager-loading.
func (e LeadEdges) CampaignEmailsOrErr() ([]*CampaignEmail, error) {
	if e.loadedTypes[2] {
		return e.CampaignEmails, nil
	}
	return nil, &NotLoadedError{edge: "campaign_emails"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Lead) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lead.FieldCustomFields:
			values[i] = new([]byte)
		case lead.FieldIsDeleted:
			values[i] = new(sql.NullBool)
		case lead.FieldID, lead.FieldCompanyID, lead.FieldScore, lead.FieldCreatedBy, lead.FieldVersion:
			values[i] = new(sql.NullInt64)
		case lead.FieldEmail, lead.FieldFirstName, lead.FieldLastName, lead.FieldCompanyName, lead.FieldJobTitle, lead.FieldPhone, lead.FieldLinkedinURL, lead.FieldSource, lead.FieldStatus, lead.FieldNotes:
			values[i] = new(sql.NullString)
		case lead.FieldStatusChangedAt, lead.FieldCreatedAt, lead.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Lead fields.
func (_m *Lead) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lead.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lead.FieldCompanyID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = int(value.Int64)
			}
		case lead.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case lead.FieldFirstName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_name", values[i])
			} else if value.Valid {
				_m.FirstName = value.String
			}
		case lead.FieldLastName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_name", values[i])
			} else if value.Valid {
				_m.LastName = value.String
			}
		case lead.FieldCompanyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_name", values[i])
			} else if value.Valid {
				_m.CompanyName = value.String
			}
		case lead.FieldJobTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_title", values[i])
			} else if value.Valid {
				_m.JobTitle = value.String
			}
		case lead.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case lead.FieldLinkedinURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field linkedin_url", values[i])
			} else if value.Valid {
				_m.LinkedinURL = value.String
			}
		case lead.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = lead.Source(value.String)
			}
		case lead.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = lead.Status(value.String)
			}
		case lead.FieldStatusChangedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field status_changed_at", values[i])
			} else if value.Valid {
				_m.StatusChangedAt = value.Time
			}
		case lead.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case lead.FieldCustomFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field custom_fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CustomFields); err != nil {
					return fmt.Errorf("unmarshal field custom_fields: %w", err)
				}
			}
		case lead.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case lead.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = int(value.Int64)
			}
		case lead.FieldIsDeleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_deleted", values[i])
			} else if value.Valid {
				_m.IsDeleted = value.Bool
			}
		case lead.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case lead.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case lead.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Lead.
// This includes values selected through modifiers, order, etc.
func (_m *Lead) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompany queries the "company" edge of the Lead entity.
func (_m *Lead) QueryCompany() *CompanyQuery {
	return NewLeadClient(_m.config).QueryCompany(_m)
}

// QueryStatusHistory queries the "status_history" edge of the Lead entity.
func (_m *Lead) QueryStatusHistory() *LeadStatusHistoryQuery {
	return NewLeadClient(_m.config).QueryStatusHistory(_m)
}

// QueryCampaignEmails queries the "campaign_emails" edge of the Lead entity.
func (_m *Lead) QueryCampaignEmails() *CampaignEmailQuery {
	return NewLeadClient(_m.config).QueryCampaignEmails(_m)
}

// Update returns a builder for updating this Lead.
// Note that you need to call Lead.Unwrap() before calling this method if this Lead
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Lead) Update() *LeadUpdateOne {
	return NewLeadClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Lead entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Lead) Unwrap() *Lead {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Lead is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Lead) String() string {
	var builder strings.Builder
	builder.WriteString("Lead(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyID))
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("first_name=")
	builder.WriteString(_m.FirstName)
	builder.WriteString(", ")
	builder.WriteString("last_name=")
	builder.WriteString(_m.LastName)
	builder.WriteString(", ")
	builder.WriteString("company_name=")
	builder.WriteString(_m.CompanyName)
	builder.WriteString(", ")
	builder.WriteString("job_title=")
	builder.WriteString(_m.JobTitle)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("linkedin_url=")
	builder.WriteString(_m.LinkedinURL)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("status_changed_at=")
	builder.WriteString(_m.StatusChangedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("custom_fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.CustomFields))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedBy))
	builder.WriteString(", ")
	builder.WriteString("is_deleted=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDeleted))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Leads is a parsable slice of Lead.
type Leads []*Lead
