// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/salesflowhq/salesflow/ent/campaign"
	"github.com/salesflowhq/salesflow/ent/campaignemail"
	"github.com/salesflowhq/salesflow/ent/lead"
)

// CampaignEmail is the model entity for the CampaignEmail schema.
type CampaignEmail struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Campaign this email belongs to
	CampaignID int `json:"campaign_id,omitempty"`
	// Lead this email targets
	LeadID int `json:"lead_id,omitempty"`
	// 1-based step position within the campaign sequence
	SequencePosition int `json:"sequence_position,omitempty"`
	// Subject line (empty until drafted)
	Subject string `json:"subject,omitempty"`
	// Email body (empty until drafted)
	Body string `json:"body,omitempty"`
	// Sending pipeline status
	Status campaignemail.Status `json:"status,omitempty"`
	// When this email is due, derived from the campaign delays
	ScheduledSendAt time.Time `json:"scheduled_send_at,omitempty"`
	// Actual send timestamp
	SentAt *time.Time `json:"sent_at,omitempty"`
	// Failure detail when status is failed
	ErrorMessage string `json:"error_message,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CampaignEmailQuery when eager-loading is set.
	Edges        CampaignEmailEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CampaignEmailEdges holds the relations/edges for other nodes in the graph.
type CampaignEmailEdges struct {
	// Campaign holds the value of the campaign edge.
	Campaign *Campaign `json:"campaign,omitempty"`
	// Lead holds the value of the lead edge.
	Lead *Lead `json:"lead,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// CampaignOrErr returns the Campaign value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CampaignEmailEdges) CampaignOrErr() (*Campaign, error) {
	if e.Campaign != nil {
		return e.Campaign, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: campaign.Label}
	}
	return nil, &NotLoadedError{edge: "campaign"}
}

// LeadOrErr returns the Lead value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CampaignEmailEdges) LeadOrErr() (*Lead, error) {
	if e.Lead != nil {
		return e.Lead, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: lead.Label}
	}
	return nil, &NotLoadedError{edge: "lead"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CampaignEmail) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case campaignemail.FieldID, campaignemail.FieldCampaignID, campaignemail.FieldLeadID, campaignemail.FieldSequencePosition:
			values[i] = new(sql.NullInt64)
		case campaignemail.FieldSubject, campaignemail.FieldBody, campaignemail.FieldStatus, campaignemail.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case campaignemail.FieldScheduledSendAt, campaignemail.FieldSentAt, campaignemail.FieldCreatedAt, campaignemail.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CampaignEmail fields.
func (_m *CampaignEmail) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case campaignemail.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case campaignemail.FieldCampaignID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_id", values[i])
			} else if value.Valid {
				_m.CampaignID = int(value.Int64)
			}
		case campaignemail.FieldLeadID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lead_id", values[i])
			} else if value.Valid {
				_m.LeadID = int(value.Int64)
			}
		case campaignemail.FieldSequencePosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence_position", values[i])
			} else if value.Valid {
				_m.SequencePosition = int(value.Int64)
			}
		case campaignemail.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case campaignemail.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case campaignemail.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = campaignemail.Status(value.String)
			}
		case campaignemail.FieldScheduledSendAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_send_at", values[i])
			} else if value.Valid {
				_m.ScheduledSendAt = value.Time
			}
		case campaignemail.FieldSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sent_at", values[i])
			} else if value.Valid {
				_m.SentAt = new(time.Time)
				*_m.SentAt = value.Time
			}
		case campaignemail.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case campaignemail.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case campaignemail.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CampaignEmail.
// This includes values selected through modifiers, order, etc.
func (_m *CampaignEmail) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCampaign queries the "campaign" edge of the CampaignEmail entity.
func (_m *CampaignEmail) QueryCampaign() *CampaignQuery {
	return NewCampaignEmailClient(_m.config).QueryCampaign(_m)
}

// QueryLead queries the "lead" edge of the CampaignEmail entity.
func (_m *CampaignEmail) QueryLead() *LeadQuery {
	return NewCampaignEmailClient(_m.config).QueryLead(_m)
}

// Update returns a builder for updating this CampaignEmail.
// Note that you need to call CampaignEmail.Unwrap() before calling this method if this CampaignEmail
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CampaignEmail) Update() *CampaignEmailUpdateOne {
	return NewCampaignEmailClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CampaignEmail entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CampaignEmail) Unwrap() *CampaignEmail {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CampaignEmail is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CampaignEmail) String() string {
	var builder strings.Builder
	builder.WriteString("CampaignEmail(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("campaign_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CampaignID))
	builder.WriteString(", ")
	builder.WriteString("lead_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LeadID))
	builder.WriteString(", ")
	builder.WriteString("sequence_position=")
	builder.WriteString(fmt.Sprintf("%v", _m.SequencePosition))
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("scheduled_send_at=")
	builder.WriteString(_m.ScheduledSendAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.SentAt; v != nil {
		builder.WriteString("sent_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CampaignEmails is a parsable slice of CampaignEmail.
type CampaignEmails []*CampaignEmail
