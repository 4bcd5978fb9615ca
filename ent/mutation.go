// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/salesflowhq/salesflow/ent/campaign"
	"github.com/salesflowhq/salesflow/ent/campaignemail"
	"github.com/salesflowhq/salesflow/ent/company"
	"github.com/salesflowhq/salesflow/ent/lead"
	"github.com/salesflowhq/salesflow/ent/leadstatushistory"
	"github.com/salesflowhq/salesflow/ent/predicate"
	"github.com/salesflowhq/salesflow/ent/schema/schematype"
	"github.com/salesflowhq/salesflow/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCampaign          = "Campaign"
	TypeCampaignEmail     = "CampaignEmail"
	TypeCompany           = "Company"
	TypeLead              = "Lead"
	TypeLeadStatusHistory = "LeadStatusHistory"
	TypeUser              = "User"
)

// CampaignMutation represents an operation that mutates the Campaign nodes in the graph.
type CampaignMutation struct {
	config
	op              Op
	typ             string
	id              *int
	name            *string
	context         *schematype.CampaignContext
	delays          *schematype.Delays
	lead_filter     **schematype.LeadFilter
	status          *campaign.Status
	scheduled_start *time.Time
	email_count     *int
	addemail_count  *int
	sent_count      *int
	addsent_count   *int
	failed_count    *int
	addfailed_count *int
	version         *int
	addversion      *int
	deleted_at      *time.Time
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	company         *int
	clearedcompany  bool
	user            *int
	cleareduser     bool
	emails          map[int]struct{}
	removedemails   map[int]struct{}
	clearedemails   bool
	done            bool
	oldValue        func(context.Context) (*Campaign, error)
	predicates      []predicate.Campaign
}

var _ ent.Mutation = (*CampaignMutation)(nil)

// campaignOption allows management of the mutation configuration using functional options.
type campaignOption func(*CampaignMutation)

// newCampaignMutation creates new mutation for the Campaign entity.
func newCampaignMutation(c config, op Op, opts ...campaignOption) *CampaignMutation {
	m := &CampaignMutation{
		config:        c,
		op:            op,
		typ:           TypeCampaign,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCampaignID sets the ID field of the mutation.
func withCampaignID(id int) campaignOption {
	return func(m *CampaignMutation) {
		var (
			err   error
			once  sync.Once
			value *Campaign
		)
		m.oldValue = func(ctx context.Context) (*Campaign, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Campaign.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCampaign sets the old Campaign of the mutation.
func withCampaign(node *Campaign) campaignOption {
	return func(m *CampaignMutation) {
		m.oldValue = func(context.Context) (*Campaign, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CampaignMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CampaignMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CampaignMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CampaignMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Campaign.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *CampaignMutation) SetCompanyID(i int) {
	m.company = &i
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *CampaignMutation) CompanyID() (r int, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldCompanyID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *CampaignMutation) ResetCompanyID() {
	m.company = nil
}

// SetUserID sets the "user_id" field.
func (m *CampaignMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CampaignMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CampaignMutation) ResetUserID() {
	m.user = nil
}

// SetName sets the "name" field.
func (m *CampaignMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CampaignMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CampaignMutation) ResetName() {
	m.name = nil
}

// SetContext sets the "context" field.
func (m *CampaignMutation) SetContext(sc schematype.CampaignContext) {
	m.context = &sc
}

// Context returns the value of the "context" field in the mutation.
func (m *CampaignMutation) Context() (r schematype.CampaignContext, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldContext(ctx context.Context) (v schematype.CampaignContext, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *CampaignMutation) ClearContext() {
	m.context = nil
	m.clearedFields[campaign.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *CampaignMutation) ContextCleared() bool {
	_, ok := m.clearedFields[campaign.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *CampaignMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, campaign.FieldContext)
}

// SetDelays sets the "delays" field.
func (m *CampaignMutation) SetDelays(s schematype.Delays) {
	m.delays = &s
}

// Delays returns the value of the "delays" field in the mutation.
func (m *CampaignMutation) Delays() (r schematype.Delays, exists bool) {
	v := m.delays
	if v == nil {
		return
	}
	return *v, true
}

// OldDelays returns the old "delays" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldDelays(ctx context.Context) (v schematype.Delays, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDelays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDelays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDelays: %w", err)
	}
	return oldValue.Delays, nil
}

// ClearDelays clears the value of the "delays" field.
func (m *CampaignMutation) ClearDelays() {
	m.delays = nil
	m.clearedFields[campaign.FieldDelays] = struct{}{}
}

// DelaysCleared returns if the "delays" field was cleared in this mutation.
func (m *CampaignMutation) DelaysCleared() bool {
	_, ok := m.clearedFields[campaign.FieldDelays]
	return ok
}

// ResetDelays resets all changes to the "delays" field.
func (m *CampaignMutation) ResetDelays() {
	m.delays = nil
	delete(m.clearedFields, campaign.FieldDelays)
}

// SetLeadFilter sets the "lead_filter" field.
func (m *CampaignMutation) SetLeadFilter(sf *schematype.LeadFilter) {
	m.lead_filter = &sf
}

// LeadFilter returns the value of the "lead_filter" field in the mutation.
func (m *CampaignMutation) LeadFilter() (r *schematype.LeadFilter, exists bool) {
	v := m.lead_filter
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadFilter returns the old "lead_filter" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldLeadFilter(ctx context.Context) (v *schematype.LeadFilter, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadFilter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadFilter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadFilter: %w", err)
	}
	return oldValue.LeadFilter, nil
}

// ClearLeadFilter clears the value of the "lead_filter" field.
func (m *CampaignMutation) ClearLeadFilter() {
	m.lead_filter = nil
	m.clearedFields[campaign.FieldLeadFilter] = struct{}{}
}

// LeadFilterCleared returns if the "lead_filter" field was cleared in this mutation.
func (m *CampaignMutation) LeadFilterCleared() bool {
	_, ok := m.clearedFields[campaign.FieldLeadFilter]
	return ok
}

// ResetLeadFilter resets all changes to the "lead_filter" field.
func (m *CampaignMutation) ResetLeadFilter() {
	m.lead_filter = nil
	delete(m.clearedFields, campaign.FieldLeadFilter)
}

// SetStatus sets the "status" field.
func (m *CampaignMutation) SetStatus(c campaign.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CampaignMutation) Status() (r campaign.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldStatus(ctx context.Context) (v campaign.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CampaignMutation) ResetStatus() {
	m.status = nil
}

// SetScheduledStart sets the "scheduled_start" field.
func (m *CampaignMutation) SetScheduledStart(t time.Time) {
	m.scheduled_start = &t
}

// ScheduledStart returns the value of the "scheduled_start" field in the mutation.
func (m *CampaignMutation) ScheduledStart() (r time.Time, exists bool) {
	v := m.scheduled_start
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledStart returns the old "scheduled_start" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldScheduledStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledStart: %w", err)
	}
	return oldValue.ScheduledStart, nil
}

// ResetScheduledStart resets all changes to the "scheduled_start" field.
func (m *CampaignMutation) ResetScheduledStart() {
	m.scheduled_start = nil
}

// SetEmailCount sets the "email_count" field.
func (m *CampaignMutation) SetEmailCount(i int) {
	m.email_count = &i
	m.addemail_count = nil
}

// EmailCount returns the value of the "email_count" field in the mutation.
func (m *CampaignMutation) EmailCount() (r int, exists bool) {
	v := m.email_count
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailCount returns the old "email_count" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldEmailCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailCount: %w", err)
	}
	return oldValue.EmailCount, nil
}

// AddEmailCount adds i to the "email_count" field.
func (m *CampaignMutation) AddEmailCount(i int) {
	if m.addemail_count != nil {
		*m.addemail_count += i
	} else {
		m.addemail_count = &i
	}
}

// AddedEmailCount returns the value that was added to the "email_count" field in this mutation.
func (m *CampaignMutation) AddedEmailCount() (r int, exists bool) {
	v := m.addemail_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetEmailCount resets all changes to the "email_count" field.
func (m *CampaignMutation) ResetEmailCount() {
	m.email_count = nil
	m.addemail_count = nil
}

// SetSentCount sets the "sent_count" field.
func (m *CampaignMutation) SetSentCount(i int) {
	m.sent_count = &i
	m.addsent_count = nil
}

// SentCount returns the value of the "sent_count" field in the mutation.
func (m *CampaignMutation) SentCount() (r int, exists bool) {
	v := m.sent_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSentCount returns the old "sent_count" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldSentCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentCount: %w", err)
	}
	return oldValue.SentCount, nil
}

// AddSentCount adds i to the "sent_count" field.
func (m *CampaignMutation) AddSentCount(i int) {
	if m.addsent_count != nil {
		*m.addsent_count += i
	} else {
		m.addsent_count = &i
	}
}

// AddedSentCount returns the value that was added to the "sent_count" field in this mutation.
func (m *CampaignMutation) AddedSentCount() (r int, exists bool) {
	v := m.addsent_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSentCount resets all changes to the "sent_count" field.
func (m *CampaignMutation) ResetSentCount() {
	m.sent_count = nil
	m.addsent_count = nil
}

// SetFailedCount sets the "failed_count" field.
func (m *CampaignMutation) SetFailedCount(i int) {
	m.failed_count = &i
	m.addfailed_count = nil
}

// FailedCount returns the value of the "failed_count" field in the mutation.
func (m *CampaignMutation) FailedCount() (r int, exists bool) {
	v := m.failed_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedCount returns the old "failed_count" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldFailedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedCount: %w", err)
	}
	return oldValue.FailedCount, nil
}

// AddFailedCount adds i to the "failed_count" field.
func (m *CampaignMutation) AddFailedCount(i int) {
	if m.addfailed_count != nil {
		*m.addfailed_count += i
	} else {
		m.addfailed_count = &i
	}
}

// AddedFailedCount returns the value that was added to the "failed_count" field in this mutation.
func (m *CampaignMutation) AddedFailedCount() (r int, exists bool) {
	v := m.addfailed_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedCount resets all changes to the "failed_count" field.
func (m *CampaignMutation) ResetFailedCount() {
	m.failed_count = nil
	m.addfailed_count = nil
}

// SetVersion sets the "version" field.
func (m *CampaignMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *CampaignMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *CampaignMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *CampaignMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *CampaignMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *CampaignMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *CampaignMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *CampaignMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[campaign.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *CampaignMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[campaign.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *CampaignMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, campaign.FieldDeletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *CampaignMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CampaignMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CampaignMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CampaignMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CampaignMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CampaignMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *CampaignMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[campaign.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *CampaignMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *CampaignMutation) CompanyIDs() (ids []int) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *CampaignMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// ClearUser clears the "user" edge to the User entity.
func (m *CampaignMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[campaign.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *CampaignMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *CampaignMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *CampaignMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddEmailIDs adds the "emails" edge to the CampaignEmail entity by ids.
func (m *CampaignMutation) AddEmailIDs(ids ...int) {
	if m.emails == nil {
		m.emails = make(map[int]struct{})
	}
	for i := range ids {
		m.emails[ids[i]] = struct{}{}
	}
}

// ClearEmails clears the "emails" edge to the CampaignEmail entity.
func (m *CampaignMutation) ClearEmails() {
	m.clearedemails = true
}

// EmailsCleared reports if the "emails" edge to the CampaignEmail entity was cleared.
func (m *CampaignMutation) EmailsCleared() bool {
	return m.clearedemails
}

// RemoveEmailIDs removes the "emails" edge to the CampaignEmail entity by IDs.
func (m *CampaignMutation) RemoveEmailIDs(ids ...int) {
	if m.removedemails == nil {
		m.removedemails = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.emails, ids[i])
		m.removedemails[ids[i]] = struct{}{}
	}
}

// RemovedEmails returns the removed IDs of the "emails" edge to the CampaignEmail entity.
func (m *CampaignMutation) RemovedEmailsIDs() (ids []int) {
	for id := range m.removedemails {
		ids = append(ids, id)
	}
	return
}

// EmailsIDs returns the "emails" edge IDs in the mutation.
func (m *CampaignMutation) EmailsIDs() (ids []int) {
	for id := range m.emails {
		ids = append(ids, id)
	}
	return
}

// ResetEmails resets all changes to the "emails" edge.
func (m *CampaignMutation) ResetEmails() {
	m.emails = nil
	m.clearedemails = false
	m.removedemails = nil
}

// Where appends a list predicates to the CampaignMutation builder.
func (m *CampaignMutation) Where(ps ...predicate.Campaign) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CampaignMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CampaignMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Campaign, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CampaignMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CampaignMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Campaign).
func (m *CampaignMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CampaignMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.company != nil {
		fields = append(fields, campaign.FieldCompanyID)
	}
	if m.user != nil {
		fields = append(fields, campaign.FieldUserID)
	}
	if m.name != nil {
		fields = append(fields, campaign.FieldName)
	}
	if m.context != nil {
		fields = append(fields, campaign.FieldContext)
	}
	if m.delays != nil {
		fields = append(fields, campaign.FieldDelays)
	}
	if m.lead_filter != nil {
		fields = append(fields, campaign.FieldLeadFilter)
	}
	if m.status != nil {
		fields = append(fields, campaign.FieldStatus)
	}
	if m.scheduled_start != nil {
		fields = append(fields, campaign.FieldScheduledStart)
	}
	if m.email_count != nil {
		fields = append(fields, campaign.FieldEmailCount)
	}
	if m.sent_count != nil {
		fields = append(fields, campaign.FieldSentCount)
	}
	if m.failed_count != nil {
		fields = append(fields, campaign.FieldFailedCount)
	}
	if m.version != nil {
		fields = append(fields, campaign.FieldVersion)
	}
	if m.deleted_at != nil {
		fields = append(fields, campaign.FieldDeletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, campaign.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, campaign.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CampaignMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case campaign.FieldCompanyID:
		return m.CompanyID()
	case campaign.FieldUserID:
		return m.UserID()
	case campaign.FieldName:
		return m.Name()
	case campaign.FieldContext:
		return m.Context()
	case campaign.FieldDelays:
		return m.Delays()
	case campaign.FieldLeadFilter:
		return m.LeadFilter()
	case campaign.FieldStatus:
		return m.Status()
	case campaign.FieldScheduledStart:
		return m.ScheduledStart()
	case campaign.FieldEmailCount:
		return m.EmailCount()
	case campaign.FieldSentCount:
		return m.SentCount()
	case campaign.FieldFailedCount:
		return m.FailedCount()
	case campaign.FieldVersion:
		return m.Version()
	case campaign.FieldDeletedAt:
		return m.DeletedAt()
	case campaign.FieldCreatedAt:
		return m.CreatedAt()
	case campaign.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CampaignMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case campaign.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case campaign.FieldUserID:
		return m.OldUserID(ctx)
	case campaign.FieldName:
		return m.OldName(ctx)
	case campaign.FieldContext:
		return m.OldContext(ctx)
	case campaign.FieldDelays:
		return m.OldDelays(ctx)
	case campaign.FieldLeadFilter:
		return m.OldLeadFilter(ctx)
	case campaign.FieldStatus:
		return m.OldStatus(ctx)
	case campaign.FieldScheduledStart:
		return m.OldScheduledStart(ctx)
	case campaign.FieldEmailCount:
		return m.OldEmailCount(ctx)
	case campaign.FieldSentCount:
		return m.OldSentCount(ctx)
	case campaign.FieldFailedCount:
		return m.OldFailedCount(ctx)
	case campaign.FieldVersion:
		return m.OldVersion(ctx)
	case campaign.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case campaign.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case campaign.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Campaign field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignMutation) SetField(name string, value ent.Value) error {
	switch name {
	case campaign.FieldCompanyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case campaign.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case campaign.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case campaign.FieldContext:
		v, ok := value.(schematype.CampaignContext)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case campaign.FieldDelays:
		v, ok := value.(schematype.Delays)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDelays(v)
		return nil
	case campaign.FieldLeadFilter:
		v, ok := value.(*schematype.LeadFilter)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadFilter(v)
		return nil
	case campaign.FieldStatus:
		v, ok := value.(campaign.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case campaign.FieldScheduledStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledStart(v)
		return nil
	case campaign.FieldEmailCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailCount(v)
		return nil
	case campaign.FieldSentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentCount(v)
		return nil
	case campaign.FieldFailedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedCount(v)
		return nil
	case campaign.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case campaign.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case campaign.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case campaign.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Campaign field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CampaignMutation) AddedFields() []string {
	var fields []string
	if m.addemail_count != nil {
		fields = append(fields, campaign.FieldEmailCount)
	}
	if m.addsent_count != nil {
		fields = append(fields, campaign.FieldSentCount)
	}
	if m.addfailed_count != nil {
		fields = append(fields, campaign.FieldFailedCount)
	}
	if m.addversion != nil {
		fields = append(fields, campaign.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CampaignMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case campaign.FieldEmailCount:
		return m.AddedEmailCount()
	case campaign.FieldSentCount:
		return m.AddedSentCount()
	case campaign.FieldFailedCount:
		return m.AddedFailedCount()
	case campaign.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignMutation) AddField(name string, value ent.Value) error {
	switch name {
	case campaign.FieldEmailCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEmailCount(v)
		return nil
	case campaign.FieldSentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSentCount(v)
		return nil
	case campaign.FieldFailedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedCount(v)
		return nil
	case campaign.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Campaign numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CampaignMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(campaign.FieldContext) {
		fields = append(fields, campaign.FieldContext)
	}
	if m.FieldCleared(campaign.FieldDelays) {
		fields = append(fields, campaign.FieldDelays)
	}
	if m.FieldCleared(campaign.FieldLeadFilter) {
		fields = append(fields, campaign.FieldLeadFilter)
	}
	if m.FieldCleared(campaign.FieldDeletedAt) {
		fields = append(fields, campaign.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CampaignMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CampaignMutation) ClearField(name string) error {
	switch name {
	case campaign.FieldContext:
		m.ClearContext()
		return nil
	case campaign.FieldDelays:
		m.ClearDelays()
		return nil
	case campaign.FieldLeadFilter:
		m.ClearLeadFilter()
		return nil
	case campaign.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Campaign nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CampaignMutation) ResetField(name string) error {
	switch name {
	case campaign.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case campaign.FieldUserID:
		m.ResetUserID()
		return nil
	case campaign.FieldName:
		m.ResetName()
		return nil
	case campaign.FieldContext:
		m.ResetContext()
		return nil
	case campaign.FieldDelays:
		m.ResetDelays()
		return nil
	case campaign.FieldLeadFilter:
		m.ResetLeadFilter()
		return nil
	case campaign.FieldStatus:
		m.ResetStatus()
		return nil
	case campaign.FieldScheduledStart:
		m.ResetScheduledStart()
		return nil
	case campaign.FieldEmailCount:
		m.ResetEmailCount()
		return nil
	case campaign.FieldSentCount:
		m.ResetSentCount()
		return nil
	case campaign.FieldFailedCount:
		m.ResetFailedCount()
		return nil
	case campaign.FieldVersion:
		m.ResetVersion()
		return nil
	case campaign.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case campaign.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case campaign.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Campaign field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CampaignMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.company != nil {
		edges = append(edges, campaign.EdgeCompany)
	}
	if m.user != nil {
		edges = append(edges, campaign.EdgeUser)
	}
	if m.emails != nil {
		edges = append(edges, campaign.EdgeEmails)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CampaignMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case campaign.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case campaign.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case campaign.EdgeEmails:
		ids := make([]ent.Value, 0, len(m.emails))
		for id := range m.emails {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CampaignMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedemails != nil {
		edges = append(edges, campaign.EdgeEmails)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CampaignMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case campaign.EdgeEmails:
		ids := make([]ent.Value, 0, len(m.removedemails))
		for id := range m.removedemails {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CampaignMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcompany {
		edges = append(edges, campaign.EdgeCompany)
	}
	if m.cleareduser {
		edges = append(edges, campaign.EdgeUser)
	}
	if m.clearedemails {
		edges = append(edges, campaign.EdgeEmails)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CampaignMutation) EdgeCleared(name string) bool {
	switch name {
	case campaign.EdgeCompany:
		return m.clearedcompany
	case campaign.EdgeUser:
		return m.cleareduser
	case campaign.EdgeEmails:
		return m.clearedemails
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CampaignMutation) ClearEdge(name string) error {
	switch name {
	case campaign.EdgeCompany:
		m.ClearCompany()
		return nil
	case campaign.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Campaign unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CampaignMutation) ResetEdge(name string) error {
	switch name {
	case campaign.EdgeCompany:
		m.ResetCompany()
		return nil
	case campaign.EdgeUser:
		m.ResetUser()
		return nil
	case campaign.EdgeEmails:
		m.ResetEmails()
		return nil
	}
	return fmt.Errorf("unknown Campaign edge %s", name)
}

// CampaignEmailMutation represents an operation that mutates the CampaignEmail nodes in the graph.
type CampaignEmailMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	sequence_position    *int
	addsequence_position *int
	subject              *string
	body                 *string
	status               *campaignemail.Status
	scheduled_send_at    *time.Time
	sent_at              *time.Time
	error_message        *string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	campaign             *int
	clearedcampaign      bool
	lead                 *int
	clearedlead          bool
	done                 bool
	oldValue             func(context.Context) (*CampaignEmail, error)
	predicates           []predicate.CampaignEmail
}

var _ ent.Mutation = (*CampaignEmailMutation)(nil)

// campaignemailOption allows management of the mutation configuration using functional options.
type campaignemailOption func(*CampaignEmailMutation)

// newCampaignEmailMutation creates new mutation for the CampaignEmail entity.
func newCampaignEmailMutation(c config, op Op, opts ...campaignemailOption) *CampaignEmailMutation {
	m := &CampaignEmailMutation{
		config:        c,
		op:            op,
		typ:           TypeCampaignEmail,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCampaignEmailID sets the ID field of the mutation.
func withCampaignEmailID(id int) campaignemailOption {
	return func(m *CampaignEmailMutation) {
		var (
			err   error
			once  sync.Once
			value *CampaignEmail
		)
		m.oldValue = func(ctx context.Context) (*CampaignEmail, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CampaignEmail.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCampaignEmail sets the old CampaignEmail of the mutation.
func withCampaignEmail(node *CampaignEmail) campaignemailOption {
	return func(m *CampaignEmailMutation) {
		m.oldValue = func(context.Context) (*CampaignEmail, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CampaignEmailMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CampaignEmailMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CampaignEmailMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CampaignEmailMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CampaignEmail.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCampaignID sets the "campaign_id" field.
func (m *CampaignEmailMutation) SetCampaignID(i int) {
	m.campaign = &i
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *CampaignEmailMutation) CampaignID() (r int, exists bool) {
	v := m.campaign
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the CampaignEmail entity.
// If the CampaignEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignEmailMutation) OldCampaignID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *CampaignEmailMutation) ResetCampaignID() {
	m.campaign = nil
}

// SetLeadID sets the "lead_id" field.
func (m *CampaignEmailMutation) SetLeadID(i int) {
	m.lead = &i
}

// LeadID returns the value of the "lead_id" field in the mutation.
func (m *CampaignEmailMutation) LeadID() (r int, exists bool) {
	v := m.lead
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadID returns the old "lead_id" field's value of the CampaignEmail entity.
// If the CampaignEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignEmailMutation) OldLeadID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadID: %w", err)
	}
	return oldValue.LeadID, nil
}

// ResetLeadID resets all changes to the "lead_id" field.
func (m *CampaignEmailMutation) ResetLeadID() {
	m.lead = nil
}

// SetSequencePosition sets the "sequence_position" field.
func (m *CampaignEmailMutation) SetSequencePosition(i int) {
	m.sequence_position = &i
	m.addsequence_position = nil
}

// SequencePosition returns the value of the "sequence_position" field in the mutation.
func (m *CampaignEmailMutation) SequencePosition() (r int, exists bool) {
	v := m.sequence_position
	if v == nil {
		return
	}
	return *v, true
}

// OldSequencePosition returns the old "sequence_position" field's value of the CampaignEmail entity.
// If the CampaignEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignEmailMutation) OldSequencePosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequencePosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequencePosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequencePosition: %w", err)
	}
	return oldValue.SequencePosition, nil
}

// AddSequencePosition adds i to the "sequence_position" field.
func (m *CampaignEmailMutation) AddSequencePosition(i int) {
	if m.addsequence_position != nil {
		*m.addsequence_position += i
	} else {
		m.addsequence_position = &i
	}
}

// AddedSequencePosition returns the value that was added to the "sequence_position" field in this mutation.
func (m *CampaignEmailMutation) AddedSequencePosition() (r int, exists bool) {
	v := m.addsequence_position
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequencePosition resets all changes to the "sequence_position" field.
func (m *CampaignEmailMutation) ResetSequencePosition() {
	m.sequence_position = nil
	m.addsequence_position = nil
}

// SetSubject sets the "subject" field.
func (m *CampaignEmailMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *CampaignEmailMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the CampaignEmail entity.
// If the CampaignEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignEmailMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *CampaignEmailMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[campaignemail.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *CampaignEmailMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[campaignemail.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *CampaignEmailMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, campaignemail.FieldSubject)
}

// SetBody sets the "body" field.
func (m *CampaignEmailMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *CampaignEmailMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the CampaignEmail entity.
// If the CampaignEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignEmailMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ClearBody clears the value of the "body" field.
func (m *CampaignEmailMutation) ClearBody() {
	m.body = nil
	m.clearedFields[campaignemail.FieldBody] = struct{}{}
}

// BodyCleared returns if the "body" field was cleared in this mutation.
func (m *CampaignEmailMutation) BodyCleared() bool {
	_, ok := m.clearedFields[campaignemail.FieldBody]
	return ok
}

// ResetBody resets all changes to the "body" field.
func (m *CampaignEmailMutation) ResetBody() {
	m.body = nil
	delete(m.clearedFields, campaignemail.FieldBody)
}

// SetStatus sets the "status" field.
func (m *CampaignEmailMutation) SetStatus(c campaignemail.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CampaignEmailMutation) Status() (r campaignemail.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CampaignEmail entity.
// If the CampaignEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignEmailMutation) OldStatus(ctx context.Context) (v campaignemail.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CampaignEmailMutation) ResetStatus() {
	m.status = nil
}

// SetScheduledSendAt sets the "scheduled_send_at" field.
func (m *CampaignEmailMutation) SetScheduledSendAt(t time.Time) {
	m.scheduled_send_at = &t
}

// ScheduledSendAt returns the value of the "scheduled_send_at" field in the mutation.
func (m *CampaignEmailMutation) ScheduledSendAt() (r time.Time, exists bool) {
	v := m.scheduled_send_at
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledSendAt returns the old "scheduled_send_at" field's value of the CampaignEmail entity.
// If the CampaignEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignEmailMutation) OldScheduledSendAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledSendAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledSendAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledSendAt: %w", err)
	}
	return oldValue.ScheduledSendAt, nil
}

// ResetScheduledSendAt resets all changes to the "scheduled_send_at" field.
func (m *CampaignEmailMutation) ResetScheduledSendAt() {
	m.scheduled_send_at = nil
}

// SetSentAt sets the "sent_at" field.
func (m *CampaignEmailMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *CampaignEmailMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the CampaignEmail entity.
// If the CampaignEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignEmailMutation) OldSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ClearSentAt clears the value of the "sent_at" field.
func (m *CampaignEmailMutation) ClearSentAt() {
	m.sent_at = nil
	m.clearedFields[campaignemail.FieldSentAt] = struct{}{}
}

// SentAtCleared returns if the "sent_at" field was cleared in this mutation.
func (m *CampaignEmailMutation) SentAtCleared() bool {
	_, ok := m.clearedFields[campaignemail.FieldSentAt]
	return ok
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *CampaignEmailMutation) ResetSentAt() {
	m.sent_at = nil
	delete(m.clearedFields, campaignemail.FieldSentAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *CampaignEmailMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *CampaignEmailMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the CampaignEmail entity.
// If the CampaignEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignEmailMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *CampaignEmailMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[campaignemail.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *CampaignEmailMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[campaignemail.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *CampaignEmailMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, campaignemail.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *CampaignEmailMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CampaignEmailMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CampaignEmail entity.
// If the CampaignEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignEmailMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CampaignEmailMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CampaignEmailMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CampaignEmailMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CampaignEmail entity.
// If the CampaignEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignEmailMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CampaignEmailMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (m *CampaignEmailMutation) ClearCampaign() {
	m.clearedcampaign = true
	m.clearedFields[campaignemail.FieldCampaignID] = struct{}{}
}

// CampaignCleared reports if the "campaign" edge to the Campaign entity was cleared.
func (m *CampaignEmailMutation) CampaignCleared() bool {
	return m.clearedcampaign
}

// CampaignIDs returns the "campaign" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CampaignID instead. It exists only for internal usage by the builders.
func (m *CampaignEmailMutation) CampaignIDs() (ids []int) {
	if id := m.campaign; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCampaign resets all changes to the "campaign" edge.
func (m *CampaignEmailMutation) ResetCampaign() {
	m.campaign = nil
	m.clearedcampaign = false
}

// ClearLead clears the "lead" edge to the Lead entity.
func (m *CampaignEmailMutation) ClearLead() {
	m.clearedlead = true
	m.clearedFields[campaignemail.FieldLeadID] = struct{}{}
}

// LeadCleared reports if the "lead" edge to the Lead entity was cleared.
func (m *CampaignEmailMutation) LeadCleared() bool {
	return m.clearedlead
}

// LeadIDs returns the "lead" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LeadID instead. It exists only for internal usage by the builders.
func (m *CampaignEmailMutation) LeadIDs() (ids []int) {
	if id := m.lead; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLead resets all changes to the "lead" edge.
func (m *CampaignEmailMutation) ResetLead() {
	m.lead = nil
	m.clearedlead = false
}

// Where appends a list predicates to the CampaignEmailMutation builder.
func (m *CampaignEmailMutation) Where(ps ...predicate.CampaignEmail) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CampaignEmailMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CampaignEmailMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CampaignEmail, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CampaignEmailMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CampaignEmailMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CampaignEmail).
func (m *CampaignEmailMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CampaignEmailMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.campaign != nil {
		fields = append(fields, campaignemail.FieldCampaignID)
	}
	if m.lead != nil {
		fields = append(fields, campaignemail.FieldLeadID)
	}
	if m.sequence_position != nil {
		fields = append(fields, campaignemail.FieldSequencePosition)
	}
	if m.subject != nil {
		fields = append(fields, campaignemail.FieldSubject)
	}
	if m.body != nil {
		fields = append(fields, campaignemail.FieldBody)
	}
	if m.status != nil {
		fields = append(fields, campaignemail.FieldStatus)
	}
	if m.scheduled_send_at != nil {
		fields = append(fields, campaignemail.FieldScheduledSendAt)
	}
	if m.sent_at != nil {
		fields = append(fields, campaignemail.FieldSentAt)
	}
	if m.error_message != nil {
		fields = append(fields, campaignemail.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, campaignemail.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, campaignemail.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CampaignEmailMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case campaignemail.FieldCampaignID:
		return m.CampaignID()
	case campaignemail.FieldLeadID:
		return m.LeadID()
	case campaignemail.FieldSequencePosition:
		return m.SequencePosition()
	case campaignemail.FieldSubject:
		return m.Subject()
	case campaignemail.FieldBody:
		return m.Body()
	case campaignemail.FieldStatus:
		return m.Status()
	case campaignemail.FieldScheduledSendAt:
		return m.ScheduledSendAt()
	case campaignemail.FieldSentAt:
		return m.SentAt()
	case campaignemail.FieldErrorMessage:
		return m.ErrorMessage()
	case campaignemail.FieldCreatedAt:
		return m.CreatedAt()
	case campaignemail.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CampaignEmailMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case campaignemail.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case campaignemail.FieldLeadID:
		return m.OldLeadID(ctx)
	case campaignemail.FieldSequencePosition:
		return m.OldSequencePosition(ctx)
	case campaignemail.FieldSubject:
		return m.OldSubject(ctx)
	case campaignemail.FieldBody:
		return m.OldBody(ctx)
	case campaignemail.FieldStatus:
		return m.OldStatus(ctx)
	case campaignemail.FieldScheduledSendAt:
		return m.OldScheduledSendAt(ctx)
	case campaignemail.FieldSentAt:
		return m.OldSentAt(ctx)
	case campaignemail.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case campaignemail.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case campaignemail.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CampaignEmail field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignEmailMutation) SetField(name string, value ent.Value) error {
	switch name {
	case campaignemail.FieldCampaignID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case campaignemail.FieldLeadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadID(v)
		return nil
	case campaignemail.FieldSequencePosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequencePosition(v)
		return nil
	case campaignemail.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case campaignemail.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case campaignemail.FieldStatus:
		v, ok := value.(campaignemail.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case campaignemail.FieldScheduledSendAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledSendAt(v)
		return nil
	case campaignemail.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case campaignemail.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case campaignemail.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case campaignemail.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CampaignEmail field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CampaignEmailMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_position != nil {
		fields = append(fields, campaignemail.FieldSequencePosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CampaignEmailMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case campaignemail.FieldSequencePosition:
		return m.AddedSequencePosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignEmailMutation) AddField(name string, value ent.Value) error {
	switch name {
	case campaignemail.FieldSequencePosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequencePosition(v)
		return nil
	}
	return fmt.Errorf("unknown CampaignEmail numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CampaignEmailMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(campaignemail.FieldSubject) {
		fields = append(fields, campaignemail.FieldSubject)
	}
	if m.FieldCleared(campaignemail.FieldBody) {
		fields = append(fields, campaignemail.FieldBody)
	}
	if m.FieldCleared(campaignemail.FieldSentAt) {
		fields = append(fields, campaignemail.FieldSentAt)
	}
	if m.FieldCleared(campaignemail.FieldErrorMessage) {
		fields = append(fields, campaignemail.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CampaignEmailMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CampaignEmailMutation) ClearField(name string) error {
	switch name {
	case campaignemail.FieldSubject:
		m.ClearSubject()
		return nil
	case campaignemail.FieldBody:
		m.ClearBody()
		return nil
	case campaignemail.FieldSentAt:
		m.ClearSentAt()
		return nil
	case campaignemail.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown CampaignEmail nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CampaignEmailMutation) ResetField(name string) error {
	switch name {
	case campaignemail.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case campaignemail.FieldLeadID:
		m.ResetLeadID()
		return nil
	case campaignemail.FieldSequencePosition:
		m.ResetSequencePosition()
		return nil
	case campaignemail.FieldSubject:
		m.ResetSubject()
		return nil
	case campaignemail.FieldBody:
		m.ResetBody()
		return nil
	case campaignemail.FieldStatus:
		m.ResetStatus()
		return nil
	case campaignemail.FieldScheduledSendAt:
		m.ResetScheduledSendAt()
		return nil
	case campaignemail.FieldSentAt:
		m.ResetSentAt()
		return nil
	case campaignemail.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case campaignemail.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case campaignemail.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CampaignEmail field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CampaignEmailMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.campaign != nil {
		edges = append(edges, campaignemail.EdgeCampaign)
	}
	if m.lead != nil {
		edges = append(edges, campaignemail.EdgeLead)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CampaignEmailMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case campaignemail.EdgeCampaign:
		if id := m.campaign; id != nil {
			return []ent.Value{*id}
		}
	case campaignemail.EdgeLead:
		if id := m.lead; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CampaignEmailMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CampaignEmailMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CampaignEmailMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcampaign {
		edges = append(edges, campaignemail.EdgeCampaign)
	}
	if m.clearedlead {
		edges = append(edges, campaignemail.EdgeLead)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CampaignEmailMutation) EdgeCleared(name string) bool {
	switch name {
	case campaignemail.EdgeCampaign:
		return m.clearedcampaign
	case campaignemail.EdgeLead:
		return m.clearedlead
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CampaignEmailMutation) ClearEdge(name string) error {
	switch name {
	case campaignemail.EdgeCampaign:
		m.ClearCampaign()
		return nil
	case campaignemail.EdgeLead:
		m.ClearLead()
		return nil
	}
	return fmt.Errorf("unknown CampaignEmail unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CampaignEmailMutation) ResetEdge(name string) error {
	switch name {
	case campaignemail.EdgeCampaign:
		m.ResetCampaign()
		return nil
	case campaignemail.EdgeLead:
		m.ResetLead()
		return nil
	}
	return fmt.Errorf("unknown CampaignEmail edge %s", name)
}

// CompanyMutation represents an operation that mutates the Company nodes in the graph.
type CompanyMutation struct {
	config
	op               Op
	typ              string
	id               *int
	name             *string
	slug             *string
	active           *bool
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	users            map[int]struct{}
	removedusers     map[int]struct{}
	clearedusers     bool
	leads            map[int]struct{}
	removedleads     map[int]struct{}
	clearedleads     bool
	campaigns        map[int]struct{}
	removedcampaigns map[int]struct{}
	clearedcampaigns bool
	done             bool
	oldValue         func(context.Context) (*Company, error)
	predicates       []predicate.Company
}

var _ ent.Mutation = (*CompanyMutation)(nil)

// companyOption allows management of the mutation configuration using functional options.
type companyOption func(*CompanyMutation)

// newCompanyMutation creates new mutation for the Company entity.
func newCompanyMutation(c config, op Op, opts ...companyOption) *CompanyMutation {
	m := &CompanyMutation{
		config:        c,
		op:            op,
		typ:           TypeCompany,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompanyID sets the ID field of the mutation.
func withCompanyID(id int) companyOption {
	return func(m *CompanyMutation) {
		var (
			err   error
			once  sync.Once
			value *Company
		)
		m.oldValue = func(ctx context.Context) (*Company, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Company.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompany sets the old Company of the mutation.
func withCompany(node *Company) companyOption {
	return func(m *CompanyMutation) {
		m.oldValue = func(context.Context) (*Company, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompanyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompanyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompanyMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompanyMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Company.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CompanyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CompanyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CompanyMutation) ResetName() {
	m.name = nil
}

// SetSlug sets the "slug" field.
func (m *CompanyMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *CompanyMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *CompanyMutation) ResetSlug() {
	m.slug = nil
}

// SetActive sets the "active" field.
func (m *CompanyMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *CompanyMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *CompanyMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CompanyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompanyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompanyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CompanyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CompanyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CompanyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddUserIDs adds the "users" edge to the User entity by ids.
func (m *CompanyMutation) AddUserIDs(ids ...int) {
	if m.users == nil {
		m.users = make(map[int]struct{})
	}
	for i := range ids {
		m.users[ids[i]] = struct{}{}
	}
}

// ClearUsers clears the "users" edge to the User entity.
func (m *CompanyMutation) ClearUsers() {
	m.clearedusers = true
}

// UsersCleared reports if the "users" edge to the User entity was cleared.
func (m *CompanyMutation) UsersCleared() bool {
	return m.clearedusers
}

// RemoveUserIDs removes the "users" edge to the User entity by IDs.
func (m *CompanyMutation) RemoveUserIDs(ids ...int) {
	if m.removedusers == nil {
		m.removedusers = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.users, ids[i])
		m.removedusers[ids[i]] = struct{}{}
	}
}

// RemovedUsers returns the removed IDs of the "users" edge to the User entity.
func (m *CompanyMutation) RemovedUsersIDs() (ids []int) {
	for id := range m.removedusers {
		ids = append(ids, id)
	}
	return
}

// UsersIDs returns the "users" edge IDs in the mutation.
func (m *CompanyMutation) UsersIDs() (ids []int) {
	for id := range m.users {
		ids = append(ids, id)
	}
	return
}

// ResetUsers resets all changes to the "users" edge.
func (m *CompanyMutation) ResetUsers() {
	m.users = nil
	m.clearedusers = false
	m.removedusers = nil
}

// AddLeadIDs adds the "leads" edge to the Lead entity by ids.
func (m *CompanyMutation) AddLeadIDs(ids ...int) {
	if m.leads == nil {
		m.leads = make(map[int]struct{})
	}
	for i := range ids {
		m.leads[ids[i]] = struct{}{}
	}
}

// ClearLeads clears the "leads" edge to the Lead entity.
func (m *CompanyMutation) ClearLeads() {
	m.clearedleads = true
}

// LeadsCleared reports if the "leads" edge to the Lead entity was cleared.
func (m *CompanyMutation) LeadsCleared() bool {
	return m.clearedleads
}

// RemoveLeadIDs removes the "leads" edge to the Lead entity by IDs.
func (m *CompanyMutation) RemoveLeadIDs(ids ...int) {
	if m.removedleads == nil {
		m.removedleads = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.leads, ids[i])
		m.removedleads[ids[i]] = struct{}{}
	}
}

// RemovedLeads returns the removed IDs of the "leads" edge to the Lead entity.
func (m *CompanyMutation) RemovedLeadsIDs() (ids []int) {
	for id := range m.removedleads {
		ids = append(ids, id)
	}
	return
}

// LeadsIDs returns the "leads" edge IDs in the mutation.
func (m *CompanyMutation) LeadsIDs() (ids []int) {
	for id := range m.leads {
		ids = append(ids, id)
	}
	return
}

// ResetLeads resets all changes to the "leads" edge.
func (m *CompanyMutation) ResetLeads() {
	m.leads = nil
	m.clearedleads = false
	m.removedleads = nil
}

// AddCampaignIDs adds the "campaigns" edge to the Campaign entity by ids.
func (m *CompanyMutation) AddCampaignIDs(ids ...int) {
	if m.campaigns == nil {
		m.campaigns = make(map[int]struct{})
	}
	for i := range ids {
		m.campaigns[ids[i]] = struct{}{}
	}
}

// ClearCampaigns clears the "campaigns" edge to the Campaign entity.
func (m *CompanyMutation) ClearCampaigns() {
	m.clearedcampaigns = true
}

// CampaignsCleared reports if the "campaigns" edge to the Campaign entity was cleared.
func (m *CompanyMutation) CampaignsCleared() bool {
	return m.clearedcampaigns
}

// RemoveCampaignIDs removes the "campaigns" edge to the Campaign entity by IDs.
func (m *CompanyMutation) RemoveCampaignIDs(ids ...int) {
	if m.removedcampaigns == nil {
		m.removedcampaigns = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.campaigns, ids[i])
		m.removedcampaigns[ids[i]] = struct{}{}
	}
}

// RemovedCampaigns returns the removed IDs of the "campaigns" edge to the Campaign entity.
func (m *CompanyMutation) RemovedCampaignsIDs() (ids []int) {
	for id := range m.removedcampaigns {
		ids = append(ids, id)
	}
	return
}

// CampaignsIDs returns the "campaigns" edge IDs in the mutation.
func (m *CompanyMutation) CampaignsIDs() (ids []int) {
	for id := range m.campaigns {
		ids = append(ids, id)
	}
	return
}

// ResetCampaigns resets all changes to the "campaigns" edge.
func (m *CompanyMutation) ResetCampaigns() {
	m.campaigns = nil
	m.clearedcampaigns = false
	m.removedcampaigns = nil
}

// Where appends a list predicates to the CompanyMutation builder.
func (m *CompanyMutation) Where(ps ...predicate.Company) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompanyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompanyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Company, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompanyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompanyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Company).
func (m *CompanyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompanyMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, company.FieldName)
	}
	if m.slug != nil {
		fields = append(fields, company.FieldSlug)
	}
	if m.active != nil {
		fields = append(fields, company.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, company.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, company.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompanyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case company.FieldName:
		return m.Name()
	case company.FieldSlug:
		return m.Slug()
	case company.FieldActive:
		return m.Active()
	case company.FieldCreatedAt:
		return m.CreatedAt()
	case company.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompanyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case company.FieldName:
		return m.OldName(ctx)
	case company.FieldSlug:
		return m.OldSlug(ctx)
	case company.FieldActive:
		return m.OldActive(ctx)
	case company.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case company.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Company field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case company.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case company.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case company.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case company.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case company.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompanyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompanyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Company numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompanyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompanyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompanyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Company nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompanyMutation) ResetField(name string) error {
	switch name {
	case company.FieldName:
		m.ResetName()
		return nil
	case company.FieldSlug:
		m.ResetSlug()
		return nil
	case company.FieldActive:
		m.ResetActive()
		return nil
	case company.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case company.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompanyMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.users != nil {
		edges = append(edges, company.EdgeUsers)
	}
	if m.leads != nil {
		edges = append(edges, company.EdgeLeads)
	}
	if m.campaigns != nil {
		edges = append(edges, company.EdgeCampaigns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompanyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.users))
		for id := range m.users {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeLeads:
		ids := make([]ent.Value, 0, len(m.leads))
		for id := range m.leads {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeCampaigns:
		ids := make([]ent.Value, 0, len(m.campaigns))
		for id := range m.campaigns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompanyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedusers != nil {
		edges = append(edges, company.EdgeUsers)
	}
	if m.removedleads != nil {
		edges = append(edges, company.EdgeLeads)
	}
	if m.removedcampaigns != nil {
		edges = append(edges, company.EdgeCampaigns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompanyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.removedusers))
		for id := range m.removedusers {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeLeads:
		ids := make([]ent.Value, 0, len(m.removedleads))
		for id := range m.removedleads {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeCampaigns:
		ids := make([]ent.Value, 0, len(m.removedcampaigns))
		for id := range m.removedcampaigns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompanyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedusers {
		edges = append(edges, company.EdgeUsers)
	}
	if m.clearedleads {
		edges = append(edges, company.EdgeLeads)
	}
	if m.clearedcampaigns {
		edges = append(edges, company.EdgeCampaigns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompanyMutation) EdgeCleared(name string) bool {
	switch name {
	case company.EdgeUsers:
		return m.clearedusers
	case company.EdgeLeads:
		return m.clearedleads
	case company.EdgeCampaigns:
		return m.clearedcampaigns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompanyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Company unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompanyMutation) ResetEdge(name string) error {
	switch name {
	case company.EdgeUsers:
		m.ResetUsers()
		return nil
	case company.EdgeLeads:
		m.ResetLeads()
		return nil
	case company.EdgeCampaigns:
		m.ResetCampaigns()
		return nil
	}
	return fmt.Errorf("unknown Company edge %s", name)
}

// LeadMutation represents an operation that mutates the Lead nodes in the graph.
type LeadMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	email                  *string
	first_name             *string
	last_name              *string
	company_name           *string
	job_title              *string
	phone                  *string
	linkedin_url           *string
	source                 *lead.Source
	status                 *lead.Status
	status_changed_at      *time.Time
	score                  *int
	addscore               *int
	custom_fields          *map[string]interface{}
	notes                  *string
	created_by             *int
	addcreated_by          *int
	is_deleted             *bool
	version                *int
	addversion             *int
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	company                *int
	clearedcompany         bool
	status_history         map[int]struct{}
	removedstatus_history  map[int]struct{}
	clearedstatus_history  bool
	campaign_emails        map[int]struct{}
	removedcampaign_emails map[int]struct{}
	clearedcampaign_emails bool
	done                   bool
	oldValue               func(context.Context) (*Lead, error)
	predicates             []predicate.Lead
}

var _ ent.Mutation = (*LeadMutation)(nil)

// leadOption allows management of the mutation configuration using functional options.
type leadOption func(*LeadMutation)

// newLeadMutation creates new mutation for the Lead entity.
func newLeadMutation(c config, op Op, opts ...leadOption) *LeadMutation {
	m := &LeadMutation{
		config:        c,
		op:            op,
		typ:           TypeLead,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadID sets the ID field of the mutation.
func withLeadID(id int) leadOption {
	return func(m *LeadMutation) {
		var (
			err   error
			once  sync.Once
			value *Lead
		)
		m.oldValue = func(ctx context.Context) (*Lead, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lead.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLead sets the old Lead of the mutation.
func withLead(node *Lead) leadOption {
	return func(m *LeadMutation) {
		m.oldValue = func(context.Context) (*Lead, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lead.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *LeadMutation) SetCompanyID(i int) {
	m.company = &i
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *LeadMutation) CompanyID() (r int, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCompanyID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *LeadMutation) ResetCompanyID() {
	m.company = nil
}

// SetEmail sets the "email" field.
func (m *LeadMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *LeadMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *LeadMutation) ResetEmail() {
	m.email = nil
}

// SetFirstName sets the "first_name" field.
func (m *LeadMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *LeadMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ClearFirstName clears the value of the "first_name" field.
func (m *LeadMutation) ClearFirstName() {
	m.first_name = nil
	m.clearedFields[lead.FieldFirstName] = struct{}{}
}

// FirstNameCleared returns if the "first_name" field was cleared in this mutation.
func (m *LeadMutation) FirstNameCleared() bool {
	_, ok := m.clearedFields[lead.FieldFirstName]
	return ok
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *LeadMutation) ResetFirstName() {
	m.first_name = nil
	delete(m.clearedFields, lead.FieldFirstName)
}

// SetLastName sets the "last_name" field.
func (m *LeadMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *LeadMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ClearLastName clears the value of the "last_name" field.
func (m *LeadMutation) ClearLastName() {
	m.last_name = nil
	m.clearedFields[lead.FieldLastName] = struct{}{}
}

// LastNameCleared returns if the "last_name" field was cleared in this mutation.
func (m *LeadMutation) LastNameCleared() bool {
	_, ok := m.clearedFields[lead.FieldLastName]
	return ok
}

// ResetLastName resets all changes to the "last_name" field.
func (m *LeadMutation) ResetLastName() {
	m.last_name = nil
	delete(m.clearedFields, lead.FieldLastName)
}

// SetCompanyName sets the "company_name" field.
func (m *LeadMutation) SetCompanyName(s string) {
	m.company_name = &s
}

// CompanyName returns the value of the "company_name" field in the mutation.
func (m *LeadMutation) CompanyName() (r string, exists bool) {
	v := m.company_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyName returns the old "company_name" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCompanyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyName: %w", err)
	}
	return oldValue.CompanyName, nil
}

// ClearCompanyName clears the value of the "company_name" field.
func (m *LeadMutation) ClearCompanyName() {
	m.company_name = nil
	m.clearedFields[lead.FieldCompanyName] = struct{}{}
}

// CompanyNameCleared returns if the "company_name" field was cleared in this mutation.
func (m *LeadMutation) CompanyNameCleared() bool {
	_, ok := m.clearedFields[lead.FieldCompanyName]
	return ok
}

// ResetCompanyName resets all changes to the "company_name" field.
func (m *LeadMutation) ResetCompanyName() {
	m.company_name = nil
	delete(m.clearedFields, lead.FieldCompanyName)
}

// SetJobTitle sets the "job_title" field.
func (m *LeadMutation) SetJobTitle(s string) {
	m.job_title = &s
}

// JobTitle returns the value of the "job_title" field in the mutation.
func (m *LeadMutation) JobTitle() (r string, exists bool) {
	v := m.job_title
	if v == nil {
		return
	}
	return *v, true
}

// OldJobTitle returns the old "job_title" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldJobTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobTitle: %w", err)
	}
	return oldValue.JobTitle, nil
}

// ClearJobTitle clears the value of the "job_title" field.
func (m *LeadMutation) ClearJobTitle() {
	m.job_title = nil
	m.clearedFields[lead.FieldJobTitle] = struct{}{}
}

// JobTitleCleared returns if the "job_title" field was cleared in this mutation.
func (m *LeadMutation) JobTitleCleared() bool {
	_, ok := m.clearedFields[lead.FieldJobTitle]
	return ok
}

// ResetJobTitle resets all changes to the "job_title" field.
func (m *LeadMutation) ResetJobTitle() {
	m.job_title = nil
	delete(m.clearedFields, lead.FieldJobTitle)
}

// SetPhone sets the "phone" field.
func (m *LeadMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *LeadMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *LeadMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[lead.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *LeadMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[lead.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *LeadMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, lead.FieldPhone)
}

// SetLinkedinURL sets the "linkedin_url" field.
func (m *LeadMutation) SetLinkedinURL(s string) {
	m.linkedin_url = &s
}

// LinkedinURL returns the value of the "linkedin_url" field in the mutation.
func (m *LeadMutation) LinkedinURL() (r string, exists bool) {
	v := m.linkedin_url
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkedinURL returns the old "linkedin_url" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldLinkedinURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkedinURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkedinURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkedinURL: %w", err)
	}
	return oldValue.LinkedinURL, nil
}

// ClearLinkedinURL clears the value of the "linkedin_url" field.
func (m *LeadMutation) ClearLinkedinURL() {
	m.linkedin_url = nil
	m.clearedFields[lead.FieldLinkedinURL] = struct{}{}
}

// LinkedinURLCleared returns if the "linkedin_url" field was cleared in this mutation.
func (m *LeadMutation) LinkedinURLCleared() bool {
	_, ok := m.clearedFields[lead.FieldLinkedinURL]
	return ok
}

// ResetLinkedinURL resets all changes to the "linkedin_url" field.
func (m *LeadMutation) ResetLinkedinURL() {
	m.linkedin_url = nil
	delete(m.clearedFields, lead.FieldLinkedinURL)
}

// SetSource sets the "source" field.
func (m *LeadMutation) SetSource(l lead.Source) {
	m.source = &l
}

// Source returns the value of the "source" field in the mutation.
func (m *LeadMutation) Source() (r lead.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldSource(ctx context.Context) (v lead.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *LeadMutation) ResetSource() {
	m.source = nil
}

// SetStatus sets the "status" field.
func (m *LeadMutation) SetStatus(l lead.Status) {
	m.status = &l
}

// Status returns the value of the "status" field in the mutation.
func (m *LeadMutation) Status() (r lead.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldStatus(ctx context.Context) (v lead.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LeadMutation) ResetStatus() {
	m.status = nil
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (m *LeadMutation) SetStatusChangedAt(t time.Time) {
	m.status_changed_at = &t
}

// StatusChangedAt returns the value of the "status_changed_at" field in the mutation.
func (m *LeadMutation) StatusChangedAt() (r time.Time, exists bool) {
	v := m.status_changed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusChangedAt returns the old "status_changed_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldStatusChangedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusChangedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusChangedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusChangedAt: %w", err)
	}
	return oldValue.StatusChangedAt, nil
}

// ResetStatusChangedAt resets all changes to the "status_changed_at" field.
func (m *LeadMutation) ResetStatusChangedAt() {
	m.status_changed_at = nil
}

// SetScore sets the "score" field.
func (m *LeadMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *LeadMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *LeadMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *LeadMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *LeadMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetCustomFields sets the "custom_fields" field.
func (m *LeadMutation) SetCustomFields(value map[string]interface{}) {
	m.custom_fields = &value
}

// CustomFields returns the value of the "custom_fields" field in the mutation.
func (m *LeadMutation) CustomFields() (r map[string]interface{}, exists bool) {
	v := m.custom_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomFields returns the old "custom_fields" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCustomFields(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomFields: %w", err)
	}
	return oldValue.CustomFields, nil
}

// ClearCustomFields clears the value of the "custom_fields" field.
func (m *LeadMutation) ClearCustomFields() {
	m.custom_fields = nil
	m.clearedFields[lead.FieldCustomFields] = struct{}{}
}

// CustomFieldsCleared returns if the "custom_fields" field was cleared in this mutation.
func (m *LeadMutation) CustomFieldsCleared() bool {
	_, ok := m.clearedFields[lead.FieldCustomFields]
	return ok
}

// ResetCustomFields resets all changes to the "custom_fields" field.
func (m *LeadMutation) ResetCustomFields() {
	m.custom_fields = nil
	delete(m.clearedFields, lead.FieldCustomFields)
}

// SetNotes sets the "notes" field.
func (m *LeadMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *LeadMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *LeadMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[lead.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *LeadMutation) NotesCleared() bool {
	_, ok := m.clearedFields[lead.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *LeadMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, lead.FieldNotes)
}

// SetCreatedBy sets the "created_by" field.
func (m *LeadMutation) SetCreatedBy(i int) {
	m.created_by = &i
	m.addcreated_by = nil
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *LeadMutation) CreatedBy() (r int, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCreatedBy(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// AddCreatedBy adds i to the "created_by" field.
func (m *LeadMutation) AddCreatedBy(i int) {
	if m.addcreated_by != nil {
		*m.addcreated_by += i
	} else {
		m.addcreated_by = &i
	}
}

// AddedCreatedBy returns the value that was added to the "created_by" field in this mutation.
func (m *LeadMutation) AddedCreatedBy() (r int, exists bool) {
	v := m.addcreated_by
	if v == nil {
		return
	}
	return *v, true
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *LeadMutation) ClearCreatedBy() {
	m.created_by = nil
	m.addcreated_by = nil
	m.clearedFields[lead.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *LeadMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[lead.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *LeadMutation) ResetCreatedBy() {
	m.created_by = nil
	m.addcreated_by = nil
	delete(m.clearedFields, lead.FieldCreatedBy)
}

// SetIsDeleted sets the "is_deleted" field.
func (m *LeadMutation) SetIsDeleted(b bool) {
	m.is_deleted = &b
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *LeadMutation) IsDeleted() (r bool, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldIsDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *LeadMutation) ResetIsDeleted() {
	m.is_deleted = nil
}

// SetVersion sets the "version" field.
func (m *LeadMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *LeadMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *LeadMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *LeadMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *LeadMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LeadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LeadMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LeadMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LeadMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *LeadMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[lead.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *LeadMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *LeadMutation) CompanyIDs() (ids []int) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *LeadMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// AddStatusHistoryIDs adds the "status_history" edge to the LeadStatusHistory entity by ids.
func (m *LeadMutation) AddStatusHistoryIDs(ids ...int) {
	if m.status_history == nil {
		m.status_history = make(map[int]struct{})
	}
	for i := range ids {
		m.status_history[ids[i]] = struct{}{}
	}
}

// ClearStatusHistory clears the "status_history" edge to the LeadStatusHistory entity.
func (m *LeadMutation) ClearStatusHistory() {
	m.clearedstatus_history = true
}

// StatusHistoryCleared reports if the "status_history" edge to the LeadStatusHistory entity was cleared.
func (m *LeadMutation) StatusHistoryCleared() bool {
	return m.clearedstatus_history
}

// RemoveStatusHistoryIDs removes the "status_history" edge to the LeadStatusHistory entity by IDs.
func (m *LeadMutation) RemoveStatusHistoryIDs(ids ...int) {
	if m.removedstatus_history == nil {
		m.removedstatus_history = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.status_history, ids[i])
		m.removedstatus_history[ids[i]] = struct{}{}
	}
}

// RemovedStatusHistory returns the removed IDs of the "status_history" edge to the LeadStatusHistory entity.
func (m *LeadMutation) RemovedStatusHistoryIDs() (ids []int) {
	for id := range m.removedstatus_history {
		ids = append(ids, id)
	}
	return
}

// StatusHistoryIDs returns the "status_history" edge IDs in the mutation.
func (m *LeadMutation) StatusHistoryIDs() (ids []int) {
	for id := range m.status_history {
		ids = append(ids, id)
	}
	return
}

// ResetStatusHistory resets all changes to the "status_history" edge.
func (m *LeadMutation) ResetStatusHistory() {
	m.status_history = nil
	m.clearedstatus_history = false
	m.removedstatus_history = nil
}

// AddCampaignEmailIDs adds the "campaign_emails" edge to the CampaignEmail entity by ids.
func (m *LeadMutation) AddCampaignEmailIDs(ids ...int) {
	if m.campaign_emails == nil {
		m.campaign_emails = make(map[int]struct{})
	}
	for i := range ids {
		m.campaign_emails[ids[i]] = struct{}{}
	}
}

// ClearCampaignEmails clears the "campaign_emails" edge to the CampaignEmail entity.
func (m *LeadMutation) ClearCampaignEmails() {
	m.clearedcampaign_emails = true
}

// CampaignEmailsCleared reports if the "campaign_emails" edge to the CampaignEmail entity was cleared.
func (m *LeadMutation) CampaignEmailsCleared() bool {
	return m.clearedcampaign_emails
}

// RemoveCampaignEmailIDs removes the "campaign_emails" edge to the CampaignEmail entity by IDs.
func (m *LeadMutation) RemoveCampaignEmailIDs(ids ...int) {
	if m.removedcampaign_emails == nil {
		m.removedcampaign_emails = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.campaign_emails, ids[i])
		m.removedcampaign_emails[ids[i]] = struct{}{}
	}
}

// RemovedCampaignEmails returns the removed IDs of the "campaign_emails" edge to the CampaignEmail entity.
func (m *LeadMutation) RemovedCampaignEmailsIDs() (ids []int) {
	for id := range m.removedcampaign_emails {
		ids = append(ids, id)
	}
	return
}

// CampaignEmailsIDs returns the "campaign_emails" edge IDs in the mutation.
func (m *LeadMutation) CampaignEmailsIDs() (ids []int) {
	for id := range m.campaign_emails {
		ids = append(ids, id)
	}
	return
}

// ResetCampaignEmails resets all changes to the "campaign_emails" edge.
func (m *LeadMutation) ResetCampaignEmails() {
	m.campaign_emails = nil
	m.clearedcampaign_emails = false
	m.removedcampaign_emails = nil
}

// Where appends a list predicates to the LeadMutation builder.
func (m *LeadMutation) Where(ps ...predicate.Lead) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lead, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lead).
func (m *LeadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.company != nil {
		fields = append(fields, lead.FieldCompanyID)
	}
	if m.email != nil {
		fields = append(fields, lead.FieldEmail)
	}
	if m.first_name != nil {
		fields = append(fields, lead.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, lead.FieldLastName)
	}
	if m.company_name != nil {
		fields = append(fields, lead.FieldCompanyName)
	}
	if m.job_title != nil {
		fields = append(fields, lead.FieldJobTitle)
	}
	if m.phone != nil {
		fields = append(fields, lead.FieldPhone)
	}
	if m.linkedin_url != nil {
		fields = append(fields, lead.FieldLinkedinURL)
	}
	if m.source != nil {
		fields = append(fields, lead.FieldSource)
	}
	if m.status != nil {
		fields = append(fields, lead.FieldStatus)
	}
	if m.status_changed_at != nil {
		fields = append(fields, lead.FieldStatusChangedAt)
	}
	if m.score != nil {
		fields = append(fields, lead.FieldScore)
	}
	if m.custom_fields != nil {
		fields = append(fields, lead.FieldCustomFields)
	}
	if m.notes != nil {
		fields = append(fields, lead.FieldNotes)
	}
	if m.created_by != nil {
		fields = append(fields, lead.FieldCreatedBy)
	}
	if m.is_deleted != nil {
		fields = append(fields, lead.FieldIsDeleted)
	}
	if m.version != nil {
		fields = append(fields, lead.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, lead.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, lead.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldCompanyID:
		return m.CompanyID()
	case lead.FieldEmail:
		return m.Email()
	case lead.FieldFirstName:
		return m.FirstName()
	case lead.FieldLastName:
		return m.LastName()
	case lead.FieldCompanyName:
		return m.CompanyName()
	case lead.FieldJobTitle:
		return m.JobTitle()
	case lead.FieldPhone:
		return m.Phone()
	case lead.FieldLinkedinURL:
		return m.LinkedinURL()
	case lead.FieldSource:
		return m.Source()
	case lead.FieldStatus:
		return m.Status()
	case lead.FieldStatusChangedAt:
		return m.StatusChangedAt()
	case lead.FieldScore:
		return m.Score()
	case lead.FieldCustomFields:
		return m.CustomFields()
	case lead.FieldNotes:
		return m.Notes()
	case lead.FieldCreatedBy:
		return m.CreatedBy()
	case lead.FieldIsDeleted:
		return m.IsDeleted()
	case lead.FieldVersion:
		return m.Version()
	case lead.FieldCreatedAt:
		return m.CreatedAt()
	case lead.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lead.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case lead.FieldEmail:
		return m.OldEmail(ctx)
	case lead.FieldFirstName:
		return m.OldFirstName(ctx)
	case lead.FieldLastName:
		return m.OldLastName(ctx)
	case lead.FieldCompanyName:
		return m.OldCompanyName(ctx)
	case lead.FieldJobTitle:
		return m.OldJobTitle(ctx)
	case lead.FieldPhone:
		return m.OldPhone(ctx)
	case lead.FieldLinkedinURL:
		return m.OldLinkedinURL(ctx)
	case lead.FieldSource:
		return m.OldSource(ctx)
	case lead.FieldStatus:
		return m.OldStatus(ctx)
	case lead.FieldStatusChangedAt:
		return m.OldStatusChangedAt(ctx)
	case lead.FieldScore:
		return m.OldScore(ctx)
	case lead.FieldCustomFields:
		return m.OldCustomFields(ctx)
	case lead.FieldNotes:
		return m.OldNotes(ctx)
	case lead.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case lead.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case lead.FieldVersion:
		return m.OldVersion(ctx)
	case lead.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case lead.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Lead field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lead.FieldCompanyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case lead.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case lead.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case lead.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case lead.FieldCompanyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyName(v)
		return nil
	case lead.FieldJobTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobTitle(v)
		return nil
	case lead.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case lead.FieldLinkedinURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkedinURL(v)
		return nil
	case lead.FieldSource:
		v, ok := value.(lead.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case lead.FieldStatus:
		v, ok := value.(lead.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case lead.FieldStatusChangedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusChangedAt(v)
		return nil
	case lead.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case lead.FieldCustomFields:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomFields(v)
		return nil
	case lead.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case lead.FieldCreatedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case lead.FieldIsDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case lead.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case lead.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case lead.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, lead.FieldScore)
	}
	if m.addcreated_by != nil {
		fields = append(fields, lead.FieldCreatedBy)
	}
	if m.addversion != nil {
		fields = append(fields, lead.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldScore:
		return m.AddedScore()
	case lead.FieldCreatedBy:
		return m.AddedCreatedBy()
	case lead.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lead.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case lead.FieldCreatedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedBy(v)
		return nil
	case lead.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Lead numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lead.FieldFirstName) {
		fields = append(fields, lead.FieldFirstName)
	}
	if m.FieldCleared(lead.FieldLastName) {
		fields = append(fields, lead.FieldLastName)
	}
	if m.FieldCleared(lead.FieldCompanyName) {
		fields = append(fields, lead.FieldCompanyName)
	}
	if m.FieldCleared(lead.FieldJobTitle) {
		fields = append(fields, lead.FieldJobTitle)
	}
	if m.FieldCleared(lead.FieldPhone) {
		fields = append(fields, lead.FieldPhone)
	}
	if m.FieldCleared(lead.FieldLinkedinURL) {
		fields = append(fields, lead.FieldLinkedinURL)
	}
	if m.FieldCleared(lead.FieldCustomFields) {
		fields = append(fields, lead.FieldCustomFields)
	}
	if m.FieldCleared(lead.FieldNotes) {
		fields = append(fields, lead.FieldNotes)
	}
	if m.FieldCleared(lead.FieldCreatedBy) {
		fields = append(fields, lead.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadMutation) ClearField(name string) error {
	switch name {
	case lead.FieldFirstName:
		m.ClearFirstName()
		return nil
	case lead.FieldLastName:
		m.ClearLastName()
		return nil
	case lead.FieldCompanyName:
		m.ClearCompanyName()
		return nil
	case lead.FieldJobTitle:
		m.ClearJobTitle()
		return nil
	case lead.FieldPhone:
		m.ClearPhone()
		return nil
	case lead.FieldLinkedinURL:
		m.ClearLinkedinURL()
		return nil
	case lead.FieldCustomFields:
		m.ClearCustomFields()
		return nil
	case lead.FieldNotes:
		m.ClearNotes()
		return nil
	case lead.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Lead nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadMutation) ResetField(name string) error {
	switch name {
	case lead.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case lead.FieldEmail:
		m.ResetEmail()
		return nil
	case lead.FieldFirstName:
		m.ResetFirstName()
		return nil
	case lead.FieldLastName:
		m.ResetLastName()
		return nil
	case lead.FieldCompanyName:
		m.ResetCompanyName()
		return nil
	case lead.FieldJobTitle:
		m.ResetJobTitle()
		return nil
	case lead.FieldPhone:
		m.ResetPhone()
		return nil
	case lead.FieldLinkedinURL:
		m.ResetLinkedinURL()
		return nil
	case lead.FieldSource:
		m.ResetSource()
		return nil
	case lead.FieldStatus:
		m.ResetStatus()
		return nil
	case lead.FieldStatusChangedAt:
		m.ResetStatusChangedAt()
		return nil
	case lead.FieldScore:
		m.ResetScore()
		return nil
	case lead.FieldCustomFields:
		m.ResetCustomFields()
		return nil
	case lead.FieldNotes:
		m.ResetNotes()
		return nil
	case lead.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case lead.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case lead.FieldVersion:
		m.ResetVersion()
		return nil
	case lead.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case lead.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.company != nil {
		edges = append(edges, lead.EdgeCompany)
	}
	if m.status_history != nil {
		edges = append(edges, lead.EdgeStatusHistory)
	}
	if m.campaign_emails != nil {
		edges = append(edges, lead.EdgeCampaignEmails)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lead.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case lead.EdgeStatusHistory:
		ids := make([]ent.Value, 0, len(m.status_history))
		for id := range m.status_history {
			ids = append(ids, id)
		}
		return ids
	case lead.EdgeCampaignEmails:
		ids := make([]ent.Value, 0, len(m.campaign_emails))
		for id := range m.campaign_emails {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedstatus_history != nil {
		edges = append(edges, lead.EdgeStatusHistory)
	}
	if m.removedcampaign_emails != nil {
		edges = append(edges, lead.EdgeCampaignEmails)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case lead.EdgeStatusHistory:
		ids := make([]ent.Value, 0, len(m.removedstatus_history))
		for id := range m.removedstatus_history {
			ids = append(ids, id)
		}
		return ids
	case lead.EdgeCampaignEmails:
		ids := make([]ent.Value, 0, len(m.removedcampaign_emails))
		for id := range m.removedcampaign_emails {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcompany {
		edges = append(edges, lead.EdgeCompany)
	}
	if m.clearedstatus_history {
		edges = append(edges, lead.EdgeStatusHistory)
	}
	if m.clearedcampaign_emails {
		edges = append(edges, lead.EdgeCampaignEmails)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadMutation) EdgeCleared(name string) bool {
	switch name {
	case lead.EdgeCompany:
		return m.clearedcompany
	case lead.EdgeStatusHistory:
		return m.clearedstatus_history
	case lead.EdgeCampaignEmails:
		return m.clearedcampaign_emails
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadMutation) ClearEdge(name string) error {
	switch name {
	case lead.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown Lead unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadMutation) ResetEdge(name string) error {
	switch name {
	case lead.EdgeCompany:
		m.ResetCompany()
		return nil
	case lead.EdgeStatusHistory:
		m.ResetStatusHistory()
		return nil
	case lead.EdgeCampaignEmails:
		m.ResetCampaignEmails()
		return nil
	}
	return fmt.Errorf("unknown Lead edge %s", name)
}

// LeadStatusHistoryMutation represents an operation that mutates the LeadStatusHistory nodes in the graph.
type LeadStatusHistoryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	old_status    *leadstatushistory.OldStatus
	new_status    *leadstatushistory.NewStatus
	reason        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	lead          *int
	clearedlead   bool
	user          *int
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*LeadStatusHistory, error)
	predicates    []predicate.LeadStatusHistory
}

var _ ent.Mutation = (*LeadStatusHistoryMutation)(nil)

// leadstatushistoryOption allows management of the mutation configuration using functional options.
type leadstatushistoryOption func(*LeadStatusHistoryMutation)

// newLeadStatusHistoryMutation creates new mutation for the LeadStatusHistory entity.
func newLeadStatusHistoryMutation(c config, op Op, opts ...leadstatushistoryOption) *LeadStatusHistoryMutation {
	m := &LeadStatusHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeLeadStatusHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadStatusHistoryID sets the ID field of the mutation.
func withLeadStatusHistoryID(id int) leadstatushistoryOption {
	return func(m *LeadStatusHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *LeadStatusHistory
		)
		m.oldValue = func(ctx context.Context) (*LeadStatusHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LeadStatusHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLeadStatusHistory sets the old LeadStatusHistory of the mutation.
func withLeadStatusHistory(node *LeadStatusHistory) leadstatushistoryOption {
	return func(m *LeadStatusHistoryMutation) {
		m.oldValue = func(context.Context) (*LeadStatusHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadStatusHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadStatusHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadStatusHistoryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadStatusHistoryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LeadStatusHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLeadID sets the "lead_id" field.
func (m *LeadStatusHistoryMutation) SetLeadID(i int) {
	m.lead = &i
}

// LeadID returns the value of the "lead_id" field in the mutation.
func (m *LeadStatusHistoryMutation) LeadID() (r int, exists bool) {
	v := m.lead
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadID returns the old "lead_id" field's value of the LeadStatusHistory entity.
// If the LeadStatusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStatusHistoryMutation) OldLeadID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadID: %w", err)
	}
	return oldValue.LeadID, nil
}

// ResetLeadID resets all changes to the "lead_id" field.
func (m *LeadStatusHistoryMutation) ResetLeadID() {
	m.lead = nil
}

// SetUserID sets the "user_id" field.
func (m *LeadStatusHistoryMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LeadStatusHistoryMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LeadStatusHistory entity.
// If the LeadStatusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStatusHistoryMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LeadStatusHistoryMutation) ResetUserID() {
	m.user = nil
}

// SetOldStatus sets the "old_status" field.
func (m *LeadStatusHistoryMutation) SetOldStatus(ls leadstatushistory.OldStatus) {
	m.old_status = &ls
}

// OldStatus returns the value of the "old_status" field in the mutation.
func (m *LeadStatusHistoryMutation) OldStatus() (r leadstatushistory.OldStatus, exists bool) {
	v := m.old_status
	if v == nil {
		return
	}
	return *v, true
}

// OldOldStatus returns the old "old_status" field's value of the LeadStatusHistory entity.
// If the LeadStatusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStatusHistoryMutation) OldOldStatus(ctx context.Context) (v leadstatushistory.OldStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldStatus: %w", err)
	}
	return oldValue.OldStatus, nil
}

// ResetOldStatus resets all changes to the "old_status" field.
func (m *LeadStatusHistoryMutation) ResetOldStatus() {
	m.old_status = nil
}

// SetNewStatus sets the "new_status" field.
func (m *LeadStatusHistoryMutation) SetNewStatus(ls leadstatushistory.NewStatus) {
	m.new_status = &ls
}

// NewStatus returns the value of the "new_status" field in the mutation.
func (m *LeadStatusHistoryMutation) NewStatus() (r leadstatushistory.NewStatus, exists bool) {
	v := m.new_status
	if v == nil {
		return
	}
	return *v, true
}

// OldNewStatus returns the old "new_status" field's value of the LeadStatusHistory entity.
// If the LeadStatusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStatusHistoryMutation) OldNewStatus(ctx context.Context) (v leadstatushistory.NewStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewStatus: %w", err)
	}
	return oldValue.NewStatus, nil
}

// ResetNewStatus resets all changes to the "new_status" field.
func (m *LeadStatusHistoryMutation) ResetNewStatus() {
	m.new_status = nil
}

// SetReason sets the "reason" field.
func (m *LeadStatusHistoryMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *LeadStatusHistoryMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the LeadStatusHistory entity.
// If the LeadStatusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStatusHistoryMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *LeadStatusHistoryMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[leadstatushistory.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *LeadStatusHistoryMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[leadstatushistory.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *LeadStatusHistoryMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, leadstatushistory.FieldReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *LeadStatusHistoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeadStatusHistoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LeadStatusHistory entity.
// If the LeadStatusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStatusHistoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeadStatusHistoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearLead clears the "lead" edge to the Lead entity.
func (m *LeadStatusHistoryMutation) ClearLead() {
	m.clearedlead = true
	m.clearedFields[leadstatushistory.FieldLeadID] = struct{}{}
}

// LeadCleared reports if the "lead" edge to the Lead entity was cleared.
func (m *LeadStatusHistoryMutation) LeadCleared() bool {
	return m.clearedlead
}

// LeadIDs returns the "lead" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LeadID instead. It exists only for internal usage by the builders.
func (m *LeadStatusHistoryMutation) LeadIDs() (ids []int) {
	if id := m.lead; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLead resets all changes to the "lead" edge.
func (m *LeadStatusHistoryMutation) ResetLead() {
	m.lead = nil
	m.clearedlead = false
}

// ClearUser clears the "user" edge to the User entity.
func (m *LeadStatusHistoryMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[leadstatushistory.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *LeadStatusHistoryMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *LeadStatusHistoryMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *LeadStatusHistoryMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the LeadStatusHistoryMutation builder.
func (m *LeadStatusHistoryMutation) Where(ps ...predicate.LeadStatusHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadStatusHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadStatusHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LeadStatusHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadStatusHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadStatusHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LeadStatusHistory).
func (m *LeadStatusHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadStatusHistoryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.lead != nil {
		fields = append(fields, leadstatushistory.FieldLeadID)
	}
	if m.user != nil {
		fields = append(fields, leadstatushistory.FieldUserID)
	}
	if m.old_status != nil {
		fields = append(fields, leadstatushistory.FieldOldStatus)
	}
	if m.new_status != nil {
		fields = append(fields, leadstatushistory.FieldNewStatus)
	}
	if m.reason != nil {
		fields = append(fields, leadstatushistory.FieldReason)
	}
	if m.created_at != nil {
		fields = append(fields, leadstatushistory.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadStatusHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case leadstatushistory.FieldLeadID:
		return m.LeadID()
	case leadstatushistory.FieldUserID:
		return m.UserID()
	case leadstatushistory.FieldOldStatus:
		return m.OldStatus()
	case leadstatushistory.FieldNewStatus:
		return m.NewStatus()
	case leadstatushistory.FieldReason:
		return m.Reason()
	case leadstatushistory.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadStatusHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case leadstatushistory.FieldLeadID:
		return m.OldLeadID(ctx)
	case leadstatushistory.FieldUserID:
		return m.OldUserID(ctx)
	case leadstatushistory.FieldOldStatus:
		return m.OldOldStatus(ctx)
	case leadstatushistory.FieldNewStatus:
		return m.OldNewStatus(ctx)
	case leadstatushistory.FieldReason:
		return m.OldReason(ctx)
	case leadstatushistory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LeadStatusHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadStatusHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case leadstatushistory.FieldLeadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadID(v)
		return nil
	case leadstatushistory.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case leadstatushistory.FieldOldStatus:
		v, ok := value.(leadstatushistory.OldStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldStatus(v)
		return nil
	case leadstatushistory.FieldNewStatus:
		v, ok := value.(leadstatushistory.NewStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewStatus(v)
		return nil
	case leadstatushistory.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case leadstatushistory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LeadStatusHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadStatusHistoryMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadStatusHistoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadStatusHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LeadStatusHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadStatusHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(leadstatushistory.FieldReason) {
		fields = append(fields, leadstatushistory.FieldReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadStatusHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadStatusHistoryMutation) ClearField(name string) error {
	switch name {
	case leadstatushistory.FieldReason:
		m.ClearReason()
		return nil
	}
	return fmt.Errorf("unknown LeadStatusHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadStatusHistoryMutation) ResetField(name string) error {
	switch name {
	case leadstatushistory.FieldLeadID:
		m.ResetLeadID()
		return nil
	case leadstatushistory.FieldUserID:
		m.ResetUserID()
		return nil
	case leadstatushistory.FieldOldStatus:
		m.ResetOldStatus()
		return nil
	case leadstatushistory.FieldNewStatus:
		m.ResetNewStatus()
		return nil
	case leadstatushistory.FieldReason:
		m.ResetReason()
		return nil
	case leadstatushistory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LeadStatusHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadStatusHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.lead != nil {
		edges = append(edges, leadstatushistory.EdgeLead)
	}
	if m.user != nil {
		edges = append(edges, leadstatushistory.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadStatusHistoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case leadstatushistory.EdgeLead:
		if id := m.lead; id != nil {
			return []ent.Value{*id}
		}
	case leadstatushistory.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadStatusHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadStatusHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadStatusHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedlead {
		edges = append(edges, leadstatushistory.EdgeLead)
	}
	if m.cleareduser {
		edges = append(edges, leadstatushistory.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadStatusHistoryMutation) EdgeCleared(name string) bool {
	switch name {
	case leadstatushistory.EdgeLead:
		return m.clearedlead
	case leadstatushistory.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadStatusHistoryMutation) ClearEdge(name string) error {
	switch name {
	case leadstatushistory.EdgeLead:
		m.ClearLead()
		return nil
	case leadstatushistory.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown LeadStatusHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadStatusHistoryMutation) ResetEdge(name string) error {
	switch name {
	case leadstatushistory.EdgeLead:
		m.ResetLead()
		return nil
	case leadstatushistory.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown LeadStatusHistory edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                         Op
	typ                        string
	id                         *int
	email                      *string
	password_hash              *string
	name                       *string
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	company                    *int
	clearedcompany             bool
	lead_status_changes        map[int]struct{}
	removedlead_status_changes map[int]struct{}
	clearedlead_status_changes bool
	campaigns                  map[int]struct{}
	removedcampaigns           map[int]struct{}
	clearedcampaigns           bool
	done                       bool
	oldValue                   func(context.Context) (*User, error)
	predicates                 []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *UserMutation) SetCompanyID(i int) {
	m.company = &i
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *UserMutation) CompanyID() (r int, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCompanyID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *UserMutation) ResetCompanyID() {
	m.company = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *UserMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[user.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *UserMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *UserMutation) CompanyIDs() (ids []int) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *UserMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// AddLeadStatusChangeIDs adds the "lead_status_changes" edge to the LeadStatusHistory entity by ids.
func (m *UserMutation) AddLeadStatusChangeIDs(ids ...int) {
	if m.lead_status_changes == nil {
		m.lead_status_changes = make(map[int]struct{})
	}
	for i := range ids {
		m.lead_status_changes[ids[i]] = struct{}{}
	}
}

// ClearLeadStatusChanges clears the "lead_status_changes" edge to the LeadStatusHistory entity.
func (m *UserMutation) ClearLeadStatusChanges() {
	m.clearedlead_status_changes = true
}

// LeadStatusChangesCleared reports if the "lead_status_changes" edge to the LeadStatusHistory entity was cleared.
func (m *UserMutation) LeadStatusChangesCleared() bool {
	return m.clearedlead_status_changes
}

// RemoveLeadStatusChangeIDs removes the "lead_status_changes" edge to the LeadStatusHistory entity by IDs.
func (m *UserMutation) RemoveLeadStatusChangeIDs(ids ...int) {
	if m.removedlead_status_changes == nil {
		m.removedlead_status_changes = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.lead_status_changes, ids[i])
		m.removedlead_status_changes[ids[i]] = struct{}{}
	}
}

// RemovedLeadStatusChanges returns the removed IDs of the "lead_status_changes" edge to the LeadStatusHistory entity.
func (m *UserMutation) RemovedLeadStatusChangesIDs() (ids []int) {
	for id := range m.removedlead_status_changes {
		ids = append(ids, id)
	}
	return
}

// LeadStatusChangesIDs returns the "lead_status_changes" edge IDs in the mutation.
func (m *UserMutation) LeadStatusChangesIDs() (ids []int) {
	for id := range m.lead_status_changes {
		ids = append(ids, id)
	}
	return
}

// ResetLeadStatusChanges resets all changes to the "lead_status_changes" edge.
func (m *UserMutation) ResetLeadStatusChanges() {
	m.lead_status_changes = nil
	m.clearedlead_status_changes = false
	m.removedlead_status_changes = nil
}

// AddCampaignIDs adds the "campaigns" edge to the Campaign entity by ids.
func (m *UserMutation) AddCampaignIDs(ids ...int) {
	if m.campaigns == nil {
		m.campaigns = make(map[int]struct{})
	}
	for i := range ids {
		m.campaigns[ids[i]] = struct{}{}
	}
}

// ClearCampaigns clears the "campaigns" edge to the Campaign entity.
func (m *UserMutation) ClearCampaigns() {
	m.clearedcampaigns = true
}

// CampaignsCleared reports if the "campaigns" edge to the Campaign entity was cleared.
func (m *UserMutation) CampaignsCleared() bool {
	return m.clearedcampaigns
}

// RemoveCampaignIDs removes the "campaigns" edge to the Campaign entity by IDs.
func (m *UserMutation) RemoveCampaignIDs(ids ...int) {
	if m.removedcampaigns == nil {
		m.removedcampaigns = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.campaigns, ids[i])
		m.removedcampaigns[ids[i]] = struct{}{}
	}
}

// RemovedCampaigns returns the removed IDs of the "campaigns" edge to the Campaign entity.
func (m *UserMutation) RemovedCampaignsIDs() (ids []int) {
	for id := range m.removedcampaigns {
		ids = append(ids, id)
	}
	return
}

// CampaignsIDs returns the "campaigns" edge IDs in the mutation.
func (m *UserMutation) CampaignsIDs() (ids []int) {
	for id := range m.campaigns {
		ids = append(ids, id)
	}
	return
}

// ResetCampaigns resets all changes to the "campaigns" edge.
func (m *UserMutation) ResetCampaigns() {
	m.campaigns = nil
	m.clearedcampaigns = false
	m.removedcampaigns = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.company != nil {
		fields = append(fields, user.FieldCompanyID)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCompanyID:
		return m.CompanyID()
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldName:
		return m.Name()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCompanyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.company != nil {
		edges = append(edges, user.EdgeCompany)
	}
	if m.lead_status_changes != nil {
		edges = append(edges, user.EdgeLeadStatusChanges)
	}
	if m.campaigns != nil {
		edges = append(edges, user.EdgeCampaigns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case user.EdgeLeadStatusChanges:
		ids := make([]ent.Value, 0, len(m.lead_status_changes))
		for id := range m.lead_status_changes {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeCampaigns:
		ids := make([]ent.Value, 0, len(m.campaigns))
		for id := range m.campaigns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedlead_status_changes != nil {
		edges = append(edges, user.EdgeLeadStatusChanges)
	}
	if m.removedcampaigns != nil {
		edges = append(edges, user.EdgeCampaigns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeLeadStatusChanges:
		ids := make([]ent.Value, 0, len(m.removedlead_status_changes))
		for id := range m.removedlead_status_changes {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeCampaigns:
		ids := make([]ent.Value, 0, len(m.removedcampaigns))
		for id := range m.removedcampaigns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcompany {
		edges = append(edges, user.EdgeCompany)
	}
	if m.clearedlead_status_changes {
		edges = append(edges, user.EdgeLeadStatusChanges)
	}
	if m.clearedcampaigns {
		edges = append(edges, user.EdgeCampaigns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeCompany:
		return m.clearedcompany
	case user.EdgeLeadStatusChanges:
		return m.clearedlead_status_changes
	case user.EdgeCampaigns:
		return m.clearedcampaigns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeCompany:
		m.ResetCompany()
		return nil
	case user.EdgeLeadStatusChanges:
		m.ResetLeadStatusChanges()
		return nil
	case user.EdgeCampaigns:
		m.ResetCampaigns()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
