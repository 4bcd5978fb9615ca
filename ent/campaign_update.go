// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/salesflowhq/salesflow/ent/campaign"
	"github.com/salesflowhq/salesflow/ent/campaignemail"
	"github.com/salesflowhq/salesflow/ent/company"
	"github.com/salesflowhq/salesflow/ent/predicate"
	"github.com/salesflowhq/salesflow/ent/schema/schematype"
	"github.com/salesflowhq/salesflow/ent/user"
)

// CampaignUpdate is the builder for updating Campaign entities.
type CampaignUpdate struct {
	config
	hooks    []Hook
	mutation *CampaignMutation
}

// Where appends a list predicates to the CampaignUpdate builder.
func (_u *CampaignUpdate) Where(ps ...predicate.Campaign) *CampaignUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *CampaignUpdate) SetCompanyID(v int) *CampaignUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableCompanyID(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CampaignUpdate) SetUserID(v int) *CampaignUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableUserID(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CampaignUpdate) SetName(v string) *CampaignUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableName(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *CampaignUpdate) SetContext(v schematype.CampaignContext) *CampaignUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableContext(v *schematype.CampaignContext) *CampaignUpdate {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *CampaignUpdate) ClearContext() *CampaignUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetDelays sets the "delays" field.
func (_u *CampaignUpdate) SetDelays(v schematype.Delays) *CampaignUpdate {
	_u.mutation.SetDelays(v)
	return _u
}

// ClearDelays clears the value of the "delays" field.
func (_u *CampaignUpdate) ClearDelays() *CampaignUpdate {
	_u.mutation.ClearDelays()
	return _u
}

// SetLeadFilter sets the "lead_filter" field.
func (_u *CampaignUpdate) SetLeadFilter(v *schematype.LeadFilter) *CampaignUpdate {
	_u.mutation.SetLeadFilter(v)
	return _u
}

// ClearLeadFilter clears the value of the "lead_filter" field.
func (_u *CampaignUpdate) ClearLeadFilter() *CampaignUpdate {
	_u.mutation.ClearLeadFilter()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CampaignUpdate) SetStatus(v campaign.Status) *CampaignUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableStatus(v *campaign.Status) *CampaignUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScheduledStart sets the "scheduled_start" field.
func (_u *CampaignUpdate) SetScheduledStart(v time.Time) *CampaignUpdate {
	_u.mutation.SetScheduledStart(v)
	return _u
}

// SetNillableScheduledStart sets the "scheduled_start" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableScheduledStart(v *time.Time) *CampaignUpdate {
	if v != nil {
		_u.SetScheduledStart(*v)
	}
	return _u
}

// SetEmailCount sets the "email_count" field.
func (_u *CampaignUpdate) SetEmailCount(v int) *CampaignUpdate {
	_u.mutation.ResetEmailCount()
	_u.mutation.SetEmailCount(v)
	return _u
}

// SetNillableEmailCount sets the "email_count" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableEmailCount(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetEmailCount(*v)
	}
	return _u
}

// AddEmailCount adds value to the "email_count" field.
func (_u *CampaignUpdate) AddEmailCount(v int) *CampaignUpdate {
	_u.mutation.AddEmailCount(v)
	return _u
}

// SetSentCount sets the "sent_count" field.
func (_u *CampaignUpdate) SetSentCount(v int) *CampaignUpdate {
	_u.mutation.ResetSentCount()
	_u.mutation.SetSentCount(v)
	return _u
}

// SetNillableSentCount sets the "sent_count" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableSentCount(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetSentCount(*v)
	}
	return _u
}

// AddSentCount adds value to the "sent_count" field.
func (_u *CampaignUpdate) AddSentCount(v int) *CampaignUpdate {
	_u.mutation.AddSentCount(v)
	return _u
}

// SetFailedCount sets the "failed_count" field.
func (_u *CampaignUpdate) SetFailedCount(v int) *CampaignUpdate {
	_u.mutation.ResetFailedCount()
	_u.mutation.SetFailedCount(v)
	return _u
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableFailedCount(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetFailedCount(*v)
	}
	return _u
}

// AddFailedCount adds value to the "failed_count" field.
func (_u *CampaignUpdate) AddFailedCount(v int) *CampaignUpdate {
	_u.mutation.AddFailedCount(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *CampaignUpdate) SetVersion(v int) *CampaignUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableVersion(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *CampaignUpdate) AddVersion(v int) *CampaignUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *CampaignUpdate) SetDeletedAt(v time.Time) *CampaignUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableDeletedAt(v *time.Time) *CampaignUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *CampaignUpdate) ClearDeletedAt() *CampaignUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CampaignUpdate) SetUpdatedAt(v time.Time) *CampaignUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *CampaignUpdate) SetCompany(v *Company) *CampaignUpdate {
	return _u.SetCompanyID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *CampaignUpdate) SetUser(v *User) *CampaignUpdate {
	return _u.SetUserID(v.ID)
}

// AddEmailIDs adds the "emails" edge to the CampaignEmail entity by IDs.
func (_u *CampaignUpdate) AddEmailIDs(ids ...int) *CampaignUpdate {
	_u.mutation.AddEmailIDs(ids...)
	return _u
}

// AddEmails adds the "emails" edges to the CampaignEmail entity.
func (_u *CampaignUpdate) AddEmails(v ...*CampaignEmail) *CampaignUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEmailIDs(ids...)
}

// Mutation returns the CampaignMutation object of the builder.
func (_u *CampaignUpdate) Mutation() *CampaignMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *CampaignUpdate) ClearCompany() *CampaignUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *CampaignUpdate) ClearUser() *CampaignUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearEmails clears all "emails" edges to the CampaignEmail entity.
func (_u *CampaignUpdate) ClearEmails() *CampaignUpdate {
	_u.mutation.ClearEmails()
	return _u
}

// RemoveEmailIDs removes the "emails" edge to CampaignEmail entities by IDs.
func (_u *CampaignUpdate) RemoveEmailIDs(ids ...int) *CampaignUpdate {
	_u.mutation.RemoveEmailIDs(ids...)
	return _u
}

// RemoveEmails removes "emails" edges to CampaignEmail entities.
func (_u *CampaignUpdate) RemoveEmails(v ...*CampaignEmail) *CampaignUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEmailIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CampaignUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CampaignUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CampaignUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := campaign.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignUpdate) check() error {
	if v, ok := _u.mutation.CompanyID(); ok {
		if err := campaign.CompanyIDValidator(v); err != nil {
			return &ValidationError{Name: "company_id", err: fmt.Errorf(`ent: validator failed for field "Campaign.company_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := campaign.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Campaign.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := campaign.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Campaign.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmailCount(); ok {
		if err := campaign.EmailCountValidator(v); err != nil {
			return &ValidationError{Name: "email_count", err: fmt.Errorf(`ent: validator failed for field "Campaign.email_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SentCount(); ok {
		if err := campaign.SentCountValidator(v); err != nil {
			return &ValidationError{Name: "sent_count", err: fmt.Errorf(`ent: validator failed for field "Campaign.sent_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedCount(); ok {
		if err := campaign.FailedCountValidator(v); err != nil {
			return &ValidationError{Name: "failed_count", err: fmt.Errorf(`ent: validator failed for field "Campaign.failed_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := campaign.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Campaign.version": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Campaign.company"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Campaign.user"`)
	}
	return nil
}

func (_u *CampaignUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaign.Table, campaign.Columns, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(campaign.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(campaign.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(campaign.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Delays(); ok {
		_spec.SetField(campaign.FieldDelays, field.TypeJSON, value)
	}
	if _u.mutation.DelaysCleared() {
		_spec.ClearField(campaign.FieldDelays, field.TypeJSON)
	}
	if value, ok := _u.mutation.LeadFilter(); ok {
		_spec.SetField(campaign.FieldLeadFilter, field.TypeJSON, value)
	}
	if _u.mutation.LeadFilterCleared() {
		_spec.ClearField(campaign.FieldLeadFilter, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledStart(); ok {
		_spec.SetField(campaign.FieldScheduledStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EmailCount(); ok {
		_spec.SetField(campaign.FieldEmailCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEmailCount(); ok {
		_spec.AddField(campaign.FieldEmailCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SentCount(); ok {
		_spec.SetField(campaign.FieldSentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSentCount(); ok {
		_spec.AddField(campaign.FieldSentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedCount(); ok {
		_spec.SetField(campaign.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedCount(); ok {
		_spec.AddField(campaign.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(campaign.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(campaign.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(campaign.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(campaign.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(campaign.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaign.CompanyTable,
			Columns: []string{campaign.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaign.CompanyTable,
			Columns: []string{campaign.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaign.UserTable,
			Columns: []string{campaign.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaign.UserTable,
			Columns: []string{campaign.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EmailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.EmailsTable,
			Columns: []string{campaign.EmailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaignemail.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEmailsIDs(); len(nodes) > 0 && !_u.mutation.EmailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.EmailsTable,
			Columns: []string{campaign.EmailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaignemail.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmailsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.EmailsTable,
			Columns: []string{campaign.EmailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaignemail.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaign.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CampaignUpdateOne is the builder for updating a single Campaign entity.
type CampaignUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CampaignMutation
}

// SetCompanyID sets the "company_id" field.
func (_u *CampaignUpdateOne) SetCompanyID(v int) *CampaignUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableCompanyID(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CampaignUpdateOne) SetUserID(v int) *CampaignUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableUserID(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CampaignUpdateOne) SetName(v string) *CampaignUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableName(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *CampaignUpdateOne) SetContext(v schematype.CampaignContext) *CampaignUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableContext(v *schematype.CampaignContext) *CampaignUpdateOne {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *CampaignUpdateOne) ClearContext() *CampaignUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetDelays sets the "delays" field.
func (_u *CampaignUpdateOne) SetDelays(v schematype.Delays) *CampaignUpdateOne {
	_u.mutation.SetDelays(v)
	return _u
}

// ClearDelays clears the value of the "delays" field.
func (_u *CampaignUpdateOne) ClearDelays() *CampaignUpdateOne {
	_u.mutation.ClearDelays()
	return _u
}

// SetLeadFilter sets the "lead_filter" field.
func (_u *CampaignUpdateOne) SetLeadFilter(v *schematype.LeadFilter) *CampaignUpdateOne {
	_u.mutation.SetLeadFilter(v)
	return _u
}

// ClearLeadFilter clears the value of the "lead_filter" field.
func (_u *CampaignUpdateOne) ClearLeadFilter() *CampaignUpdateOne {
	_u.mutation.ClearLeadFilter()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CampaignUpdateOne) SetStatus(v campaign.Status) *CampaignUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableStatus(v *campaign.Status) *CampaignUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScheduledStart sets the "scheduled_start" field.
func (_u *CampaignUpdateOne) SetScheduledStart(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetScheduledStart(v)
	return _u
}

// SetNillableScheduledStart sets the "scheduled_start" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableScheduledStart(v *time.Time) *CampaignUpdateOne {
	if v != nil {
		_u.SetScheduledStart(*v)
	}
	return _u
}

// SetEmailCount sets the "email_count" field.
func (_u *CampaignUpdateOne) SetEmailCount(v int) *CampaignUpdateOne {
	_u.mutation.ResetEmailCount()
	_u.mutation.SetEmailCount(v)
	return _u
}

// SetNillableEmailCount sets the "email_count" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableEmailCount(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetEmailCount(*v)
	}
	return _u
}

// AddEmailCount adds value to the "email_count" field.
func (_u *CampaignUpdateOne) AddEmailCount(v int) *CampaignUpdateOne {
	_u.mutation.AddEmailCount(v)
	return _u
}

// SetSentCount sets the "sent_count" field.
func (_u *CampaignUpdateOne) SetSentCount(v int) *CampaignUpdateOne {
	_u.mutation.ResetSentCount()
	_u.mutation.SetSentCount(v)
	return _u
}

// SetNillableSentCount sets the "sent_count" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableSentCount(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetSentCount(*v)
	}
	return _u
}

// AddSentCount adds value to the "sent_count" field.
func (_u *CampaignUpdateOne) AddSentCount(v int) *CampaignUpdateOne {
	_u.mutation.AddSentCount(v)
	return _u
}

// SetFailedCount sets the "failed_count" field.
func (_u *CampaignUpdateOne) SetFailedCount(v int) *CampaignUpdateOne {
	_u.mutation.ResetFailedCount()
	_u.mutation.SetFailedCount(v)
	return _u
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableFailedCount(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetFailedCount(*v)
	}
	return _u
}

// AddFailedCount adds value to the "failed_count" field.
func (_u *CampaignUpdateOne) AddFailedCount(v int) *CampaignUpdateOne {
	_u.mutation.AddFailedCount(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *CampaignUpdateOne) SetVersion(v int) *CampaignUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableVersion(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *CampaignUpdateOne) AddVersion(v int) *CampaignUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *CampaignUpdateOne) SetDeletedAt(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableDeletedAt(v *time.Time) *CampaignUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *CampaignUpdateOne) ClearDeletedAt() *CampaignUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CampaignUpdateOne) SetUpdatedAt(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *CampaignUpdateOne) SetCompany(v *Company) *CampaignUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *CampaignUpdateOne) SetUser(v *User) *CampaignUpdateOne {
	return _u.SetUserID(v.ID)
}

// AddEmailIDs adds the "emails" edge to the CampaignEmail entity by IDs.
func (_u *CampaignUpdateOne) AddEmailIDs(ids ...int) *CampaignUpdateOne {
	_u.mutation.AddEmailIDs(ids...)
	return _u
}

// AddEmails adds the "emails" edges to the CampaignEmail entity.
func (_u *CampaignUpdateOne) AddEmails(v ...*CampaignEmail) *CampaignUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEmailIDs(ids...)
}

// Mutation returns the CampaignMutation object of the builder.
func (_u *CampaignUpdateOne) Mutation() *CampaignMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *CampaignUpdateOne) ClearCompany() *CampaignUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *CampaignUpdateOne) ClearUser() *CampaignUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearEmails clears all "emails" edges to the CampaignEmail entity.
func (_u *CampaignUpdateOne) ClearEmails() *CampaignUpdateOne {
	_u.mutation.ClearEmails()
	return _u
}

// RemoveEmailIDs removes the "emails" edge to CampaignEmail entities by IDs.
func (_u *CampaignUpdateOne) RemoveEmailIDs(ids ...int) *CampaignUpdateOne {
	_u.mutation.RemoveEmailIDs(ids...)
	return _u
}

// RemoveEmails removes "emails" edges to CampaignEmail entities.
func (_u *CampaignUpdateOne) RemoveEmails(v ...*CampaignEmail) *CampaignUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEmailIDs(ids...)
}

// Where appends a list predicates to the CampaignUpdate builder.
func (_u *CampaignUpdateOne) Where(ps ...predicate.Campaign) *CampaignUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CampaignUpdateOne) Select(field string, fields ...string) *CampaignUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Campaign entity.
func (_u *CampaignUpdateOne) Save(ctx context.Context) (*Campaign, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignUpdateOne) SaveX(ctx context.Context) *Campaign {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CampaignUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CampaignUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := campaign.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignUpdateOne) check() error {
	if v, ok := _u.mutation.CompanyID(); ok {
		if err := campaign.CompanyIDValidator(v); err != nil {
			return &ValidationError{Name: "company_id", err: fmt.Errorf(`ent: validator failed for field "Campaign.company_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := campaign.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Campaign.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := campaign.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Campaign.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmailCount(); ok {
		if err := campaign.EmailCountValidator(v); err != nil {
			return &ValidationError{Name: "email_count", err: fmt.Errorf(`ent: validator failed for field "Campaign.email_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SentCount(); ok {
		if err := campaign.SentCountValidator(v); err != nil {
			return &ValidationError{Name: "sent_count", err: fmt.Errorf(`ent: validator failed for field "Campaign.sent_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedCount(); ok {
		if err := campaign.FailedCountValidator(v); err != nil {
			return &ValidationError{Name: "failed_count", err: fmt.Errorf(`ent: validator failed for field "Campaign.failed_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := campaign.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Campaign.version": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Campaign.company"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Campaign.user"`)
	}
	return nil
}

func (_u *CampaignUpdateOne) sqlSave(ctx context.Context) (_node *Campaign, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaign.Table, campaign.Columns, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Campaign.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, campaign.FieldID)
		for _, f := range fields {
			if !campaign.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != campaign.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(campaign.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(campaign.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(campaign.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Delays(); ok {
		_spec.SetField(campaign.FieldDelays, field.TypeJSON, value)
	}
	if _u.mutation.DelaysCleared() {
		_spec.ClearField(campaign.FieldDelays, field.TypeJSON)
	}
	if value, ok := _u.mutation.LeadFilter(); ok {
		_spec.SetField(campaign.FieldLeadFilter, field.TypeJSON, value)
	}
	if _u.mutation.LeadFilterCleared() {
		_spec.ClearField(campaign.FieldLeadFilter, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledStart(); ok {
		_spec.SetField(campaign.FieldScheduledStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EmailCount(); ok {
		_spec.SetField(campaign.FieldEmailCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEmailCount(); ok {
		_spec.AddField(campaign.FieldEmailCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SentCount(); ok {
		_spec.SetField(campaign.FieldSentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSentCount(); ok {
		_spec.AddField(campaign.FieldSentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedCount(); ok {
		_spec.SetField(campaign.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedCount(); ok {
		_spec.AddField(campaign.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(campaign.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(campaign.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(campaign.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(campaign.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(campaign.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaign.CompanyTable,
			Columns: []string{campaign.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaign.CompanyTable,
			Columns: []string{campaign.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaign.UserTable,
			Columns: []string{campaign.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaign.UserTable,
			Columns: []string{campaign.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EmailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.EmailsTable,
			Columns: []string{campaign.EmailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaignemail.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEmailsIDs(); len(nodes) > 0 && !_u.mutation.EmailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.EmailsTable,
			Columns: []string{campaign.EmailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaignemail.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmailsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.EmailsTable,
			Columns: []string{campaign.EmailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaignemail.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Campaign{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaign.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
