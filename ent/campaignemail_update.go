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
	"github.com/salesflowhq/salesflow/ent/lead"
	"github.com/salesflowhq/salesflow/ent/predicate"
)

// CampaignEmailUpdate is the builder for updating CampaignEmail entities.
type CampaignEmailUpdate struct {
	config
	hooks    []Hook
	mutation *CampaignEmailMutation
}

// Where appends a list predicates to the CampaignEmailUpdate builder.
func (_u *CampaignEmailUpdate) Where(ps ...predicate.CampaignEmail) *CampaignEmailUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCampaignID sets the "campaign_id" field.
func (_u *CampaignEmailUpdate) SetCampaignID(v int) *CampaignEmailUpdate {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *CampaignEmailUpdate) SetNillableCampaignID(v *int) *CampaignEmailUpdate {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *CampaignEmailUpdate) SetLeadID(v int) *CampaignEmailUpdate {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *CampaignEmailUpdate) SetNillableLeadID(v *int) *CampaignEmailUpdate {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetSequencePosition sets the "sequence_position" field.
func (_u *CampaignEmailUpdate) SetSequencePosition(v int) *CampaignEmailUpdate {
	_u.mutation.ResetSequencePosition()
	_u.mutation.SetSequencePosition(v)
	return _u
}

// SetNillableSequencePosition sets the "sequence_position" field if the given value is not nil.
func (_u *CampaignEmailUpdate) SetNillableSequencePosition(v *int) *CampaignEmailUpdate {
	if v != nil {
		_u.SetSequencePosition(*v)
	}
	return _u
}

// AddSequencePosition adds value to the "sequence_position" field.
func (_u *CampaignEmailUpdate) AddSequencePosition(v int) *CampaignEmailUpdate {
	_u.mutation.AddSequencePosition(v)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *CampaignEmailUpdate) SetSubject(v string) *CampaignEmailUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *CampaignEmailUpdate) SetNillableSubject(v *string) *CampaignEmailUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *CampaignEmailUpdate) ClearSubject() *CampaignEmailUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetBody sets the "body" field.
func (_u *CampaignEmailUpdate) SetBody(v string) *CampaignEmailUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *CampaignEmailUpdate) SetNillableBody(v *string) *CampaignEmailUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *CampaignEmailUpdate) ClearBody() *CampaignEmailUpdate {
	_u.mutation.ClearBody()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CampaignEmailUpdate) SetStatus(v campaignemail.Status) *CampaignEmailUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CampaignEmailUpdate) SetNillableStatus(v *campaignemail.Status) *CampaignEmailUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScheduledSendAt sets the "scheduled_send_at" field.
func (_u *CampaignEmailUpdate) SetScheduledSendAt(v time.Time) *CampaignEmailUpdate {
	_u.mutation.SetScheduledSendAt(v)
	return _u
}

// SetNillableScheduledSendAt sets the "scheduled_send_at" field if the given value is not nil.
func (_u *CampaignEmailUpdate) SetNillableScheduledSendAt(v *time.Time) *CampaignEmailUpdate {
	if v != nil {
		_u.SetScheduledSendAt(*v)
	}
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *CampaignEmailUpdate) SetSentAt(v time.Time) *CampaignEmailUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *CampaignEmailUpdate) SetNillableSentAt(v *time.Time) *CampaignEmailUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *CampaignEmailUpdate) ClearSentAt() *CampaignEmailUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CampaignEmailUpdate) SetErrorMessage(v string) *CampaignEmailUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CampaignEmailUpdate) SetNillableErrorMessage(v *string) *CampaignEmailUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CampaignEmailUpdate) ClearErrorMessage() *CampaignEmailUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CampaignEmailUpdate) SetUpdatedAt(v time.Time) *CampaignEmailUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_u *CampaignEmailUpdate) SetCampaign(v *Campaign) *CampaignEmailUpdate {
	return _u.SetCampaignID(v.ID)
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *CampaignEmailUpdate) SetLead(v *Lead) *CampaignEmailUpdate {
	return _u.SetLeadID(v.ID)
}

// Mutation returns the CampaignEmailMutation object of the builder.
func (_u *CampaignEmailUpdate) Mutation() *CampaignEmailMutation {
	return _u.mutation
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (_u *CampaignEmailUpdate) ClearCampaign() *CampaignEmailUpdate {
	_u.mutation.ClearCampaign()
	return _u
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *CampaignEmailUpdate) ClearLead() *CampaignEmailUpdate {
	_u.mutation.ClearLead()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CampaignEmailUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignEmailUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CampaignEmailUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignEmailUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CampaignEmailUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := campaignemail.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignEmailUpdate) check() error {
	if v, ok := _u.mutation.CampaignID(); ok {
		if err := campaignemail.CampaignIDValidator(v); err != nil {
			return &ValidationError{Name: "campaign_id", err: fmt.Errorf(`ent: validator failed for field "CampaignEmail.campaign_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LeadID(); ok {
		if err := campaignemail.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "CampaignEmail.lead_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SequencePosition(); ok {
		if err := campaignemail.SequencePositionValidator(v); err != nil {
			return &ValidationError{Name: "sequence_position", err: fmt.Errorf(`ent: validator failed for field "CampaignEmail.sequence_position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := campaignemail.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "CampaignEmail.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := campaignemail.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CampaignEmail.status": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CampaignEmail.campaign"`)
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CampaignEmail.lead"`)
	}
	return nil
}

func (_u *CampaignEmailUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaignemail.Table, campaignemail.Columns, sqlgraph.NewFieldSpec(campaignemail.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SequencePosition(); ok {
		_spec.SetField(campaignemail.FieldSequencePosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequencePosition(); ok {
		_spec.AddField(campaignemail.FieldSequencePosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(campaignemail.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(campaignemail.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(campaignemail.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(campaignemail.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(campaignemail.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledSendAt(); ok {
		_spec.SetField(campaignemail.FieldScheduledSendAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(campaignemail.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(campaignemail.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(campaignemail.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(campaignemail.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(campaignemail.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CampaignCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaignemail.CampaignTable,
			Columns: []string{campaignemail.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaignemail.CampaignTable,
			Columns: []string{campaignemail.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaignemail.LeadTable,
			Columns: []string{campaignemail.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaignemail.LeadTable,
			Columns: []string{campaignemail.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaignemail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CampaignEmailUpdateOne is the builder for updating a single CampaignEmail entity.
type CampaignEmailUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CampaignEmailMutation
}

// SetCampaignID sets the "campaign_id" field.
func (_u *CampaignEmailUpdateOne) SetCampaignID(v int) *CampaignEmailUpdateOne {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *CampaignEmailUpdateOne) SetNillableCampaignID(v *int) *CampaignEmailUpdateOne {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *CampaignEmailUpdateOne) SetLeadID(v int) *CampaignEmailUpdateOne {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *CampaignEmailUpdateOne) SetNillableLeadID(v *int) *CampaignEmailUpdateOne {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetSequencePosition sets the "sequence_position" field.
func (_u *CampaignEmailUpdateOne) SetSequencePosition(v int) *CampaignEmailUpdateOne {
	_u.mutation.ResetSequencePosition()
	_u.mutation.SetSequencePosition(v)
	return _u
}

// SetNillableSequencePosition sets the "sequence_position" field if the given value is not nil.
func (_u *CampaignEmailUpdateOne) SetNillableSequencePosition(v *int) *CampaignEmailUpdateOne {
	if v != nil {
		_u.SetSequencePosition(*v)
	}
	return _u
}

// AddSequencePosition adds value to the "sequence_position" field.
func (_u *CampaignEmailUpdateOne) AddSequencePosition(v int) *CampaignEmailUpdateOne {
	_u.mutation.AddSequencePosition(v)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *CampaignEmailUpdateOne) SetSubject(v string) *CampaignEmailUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *CampaignEmailUpdateOne) SetNillableSubject(v *string) *CampaignEmailUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *CampaignEmailUpdateOne) ClearSubject() *CampaignEmailUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetBody sets the "body" field.
func (_u *CampaignEmailUpdateOne) SetBody(v string) *CampaignEmailUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *CampaignEmailUpdateOne) SetNillableBody(v *string) *CampaignEmailUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *CampaignEmailUpdateOne) ClearBody() *CampaignEmailUpdateOne {
	_u.mutation.ClearBody()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CampaignEmailUpdateOne) SetStatus(v campaignemail.Status) *CampaignEmailUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CampaignEmailUpdateOne) SetNillableStatus(v *campaignemail.Status) *CampaignEmailUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScheduledSendAt sets the "scheduled_send_at" field.
func (_u *CampaignEmailUpdateOne) SetScheduledSendAt(v time.Time) *CampaignEmailUpdateOne {
	_u.mutation.SetScheduledSendAt(v)
	return _u
}

// SetNillableScheduledSendAt sets the "scheduled_send_at" field if the given value is not nil.
func (_u *CampaignEmailUpdateOne) SetNillableScheduledSendAt(v *time.Time) *CampaignEmailUpdateOne {
	if v != nil {
		_u.SetScheduledSendAt(*v)
	}
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *CampaignEmailUpdateOne) SetSentAt(v time.Time) *CampaignEmailUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *CampaignEmailUpdateOne) SetNillableSentAt(v *time.Time) *CampaignEmailUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *CampaignEmailUpdateOne) ClearSentAt() *CampaignEmailUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CampaignEmailUpdateOne) SetErrorMessage(v string) *CampaignEmailUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CampaignEmailUpdateOne) SetNillableErrorMessage(v *string) *CampaignEmailUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CampaignEmailUpdateOne) ClearErrorMessage() *CampaignEmailUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CampaignEmailUpdateOne) SetUpdatedAt(v time.Time) *CampaignEmailUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_u *CampaignEmailUpdateOne) SetCampaign(v *Campaign) *CampaignEmailUpdateOne {
	return _u.SetCampaignID(v.ID)
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *CampaignEmailUpdateOne) SetLead(v *Lead) *CampaignEmailUpdateOne {
	return _u.SetLeadID(v.ID)
}

// Mutation returns the CampaignEmailMutation object of the builder.
func (_u *CampaignEmailUpdateOne) Mutation() *CampaignEmailMutation {
	return _u.mutation
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (_u *CampaignEmailUpdateOne) ClearCampaign() *CampaignEmailUpdateOne {
	_u.mutation.ClearCampaign()
	return _u
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *CampaignEmailUpdateOne) ClearLead() *CampaignEmailUpdateOne {
	_u.mutation.ClearLead()
	return _u
}

// Where appends a list predicates to the CampaignEmailUpdate builder.
func (_u *CampaignEmailUpdateOne) Where(ps ...predicate.CampaignEmail) *CampaignEmailUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CampaignEmailUpdateOne) Select(field string, fields ...string) *CampaignEmailUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CampaignEmail entity.
func (_u *CampaignEmailUpdateOne) Save(ctx context.Context) (*CampaignEmail, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignEmailUpdateOne) SaveX(ctx context.Context) *CampaignEmail {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CampaignEmailUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignEmailUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CampaignEmailUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := campaignemail.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignEmailUpdateOne) check() error {
	if v, ok := _u.mutation.CampaignID(); ok {
		if err := campaignemail.CampaignIDValidator(v); err != nil {
			return &ValidationError{Name: "campaign_id", err: fmt.Errorf(`ent: validator failed for field "CampaignEmail.campaign_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LeadID(); ok {
		if err := campaignemail.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "CampaignEmail.lead_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SequencePosition(); ok {
		if err := campaignemail.SequencePositionValidator(v); err != nil {
			return &ValidationError{Name: "sequence_position", err: fmt.Errorf(`ent: validator failed for field "CampaignEmail.sequence_position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := campaignemail.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "CampaignEmail.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := campaignemail.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CampaignEmail.status": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CampaignEmail.campaign"`)
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CampaignEmail.lead"`)
	}
	return nil
}

func (_u *CampaignEmailUpdateOne) sqlSave(ctx context.Context) (_node *CampaignEmail, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaignemail.Table, campaignemail.Columns, sqlgraph.NewFieldSpec(campaignemail.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CampaignEmail.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, campaignemail.FieldID)
		for _, f := range fields {
			if !campaignemail.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != campaignemail.FieldID {
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
	if value, ok := _u.mutation.SequencePosition(); ok {
		_spec.SetField(campaignemail.FieldSequencePosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequencePosition(); ok {
		_spec.AddField(campaignemail.FieldSequencePosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(campaignemail.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(campaignemail.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(campaignemail.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(campaignemail.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(campaignemail.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledSendAt(); ok {
		_spec.SetField(campaignemail.FieldScheduledSendAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(campaignemail.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(campaignemail.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(campaignemail.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(campaignemail.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(campaignemail.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CampaignCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaignemail.CampaignTable,
			Columns: []string{campaignemail.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaignemail.CampaignTable,
			Columns: []string{campaignemail.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaignemail.LeadTable,
			Columns: []string{campaignemail.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaignemail.LeadTable,
			Columns: []string{campaignemail.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CampaignEmail{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaignemail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
