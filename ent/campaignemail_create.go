// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/salesflowhq/salesflow/ent/campaign"
	"github.com/salesflowhq/salesflow/ent/campaignemail"
	"github.com/salesflowhq/salesflow/ent/lead"
)

// CampaignEmailCreate is the builder for creating a CampaignEmail entity.
type CampaignEmailCreate struct {
	config
	mutation *CampaignEmailMutation
	hooks    []Hook
}

// SetCampaignID sets the "campaign_id" field.
func (_c *CampaignEmailCreate) SetCampaignID(v int) *CampaignEmailCreate {
	_c.mutation.SetCampaignID(v)
	return _c
}

// SetLeadID sets the "lead_id" field.
func (_c *CampaignEmailCreate) SetLeadID(v int) *CampaignEmailCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetSequencePosition sets the "sequence_position" field.
func (_c *CampaignEmailCreate) SetSequencePosition(v int) *CampaignEmailCreate {
	_c.mutation.SetSequencePosition(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *CampaignEmailCreate) SetSubject(v string) *CampaignEmailCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *CampaignEmailCreate) SetNillableSubject(v *string) *CampaignEmailCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetBody sets the "body" field.
func (_c *CampaignEmailCreate) SetBody(v string) *CampaignEmailCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_c *CampaignEmailCreate) SetNillableBody(v *string) *CampaignEmailCreate {
	if v != nil {
		_c.SetBody(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CampaignEmailCreate) SetStatus(v campaignemail.Status) *CampaignEmailCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CampaignEmailCreate) SetNillableStatus(v *campaignemail.Status) *CampaignEmailCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetScheduledSendAt sets the "scheduled_send_at" field.
func (_c *CampaignEmailCreate) SetScheduledSendAt(v time.Time) *CampaignEmailCreate {
	_c.mutation.SetScheduledSendAt(v)
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *CampaignEmailCreate) SetSentAt(v time.Time) *CampaignEmailCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *CampaignEmailCreate) SetNillableSentAt(v *time.Time) *CampaignEmailCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *CampaignEmailCreate) SetErrorMessage(v string) *CampaignEmailCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *CampaignEmailCreate) SetNillableErrorMessage(v *string) *CampaignEmailCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CampaignEmailCreate) SetCreatedAt(v time.Time) *CampaignEmailCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CampaignEmailCreate) SetNillableCreatedAt(v *time.Time) *CampaignEmailCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CampaignEmailCreate) SetUpdatedAt(v time.Time) *CampaignEmailCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CampaignEmailCreate) SetNillableUpdatedAt(v *time.Time) *CampaignEmailCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_c *CampaignEmailCreate) SetCampaign(v *Campaign) *CampaignEmailCreate {
	return _c.SetCampaignID(v.ID)
}

// SetLead sets the "lead" edge to the Lead entity.
func (_c *CampaignEmailCreate) SetLead(v *Lead) *CampaignEmailCreate {
	return _c.SetLeadID(v.ID)
}

// Mutation returns the CampaignEmailMutation object of the builder.
func (_c *CampaignEmailCreate) Mutation() *CampaignEmailMutation {
	return _c.mutation
}

// Save creates the CampaignEmail in the database.
func (_c *CampaignEmailCreate) Save(ctx context.Context) (*CampaignEmail, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CampaignEmailCreate) SaveX(ctx context.Context) *CampaignEmail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignEmailCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignEmailCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CampaignEmailCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := campaignemail.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := campaignemail.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := campaignemail.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CampaignEmailCreate) check() error {
	if _, ok := _c.mutation.CampaignID(); !ok {
		return &ValidationError{Name: "campaign_id", err: errors.New(`ent: missing required field "CampaignEmail.campaign_id"`)}
	}
	if v, ok := _c.mutation.CampaignID(); ok {
		if err := campaignemail.CampaignIDValidator(v); err != nil {
			return &ValidationError{Name: "campaign_id", err: fmt.Errorf(`ent: validator failed for field "CampaignEmail.campaign_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LeadID(); !ok {
		return &ValidationError{Name: "lead_id", err: errors.New(`ent: missing required field "CampaignEmail.lead_id"`)}
	}
	if v, ok := _c.mutation.LeadID(); ok {
		if err := campaignemail.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "CampaignEmail.lead_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SequencePosition(); !ok {
		return &ValidationError{Name: "sequence_position", err: errors.New(`ent: missing required field "CampaignEmail.sequence_position"`)}
	}
	if v, ok := _c.mutation.SequencePosition(); ok {
		if err := campaignemail.SequencePositionValidator(v); err != nil {
			return &ValidationError{Name: "sequence_position", err: fmt.Errorf(`ent: validator failed for field "CampaignEmail.sequence_position": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := campaignemail.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "CampaignEmail.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CampaignEmail.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := campaignemail.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CampaignEmail.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScheduledSendAt(); !ok {
		return &ValidationError{Name: "scheduled_send_at", err: errors.New(`ent: missing required field "CampaignEmail.scheduled_send_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CampaignEmail.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CampaignEmail.updated_at"`)}
	}
	if len(_c.mutation.CampaignIDs()) == 0 {
		return &ValidationError{Name: "campaign", err: errors.New(`ent: missing required edge "CampaignEmail.campaign"`)}
	}
	if len(_c.mutation.LeadIDs()) == 0 {
		return &ValidationError{Name: "lead", err: errors.New(`ent: missing required edge "CampaignEmail.lead"`)}
	}
	return nil
}

func (_c *CampaignEmailCreate) sqlSave(ctx context.Context) (*CampaignEmail, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CampaignEmailCreate) createSpec() (*CampaignEmail, *sqlgraph.CreateSpec) {
	var (
		_node = &CampaignEmail{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(campaignemail.Table, sqlgraph.NewFieldSpec(campaignemail.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SequencePosition(); ok {
		_spec.SetField(campaignemail.FieldSequencePosition, field.TypeInt, value)
		_node.SequencePosition = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(campaignemail.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(campaignemail.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(campaignemail.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ScheduledSendAt(); ok {
		_spec.SetField(campaignemail.FieldScheduledSendAt, field.TypeTime, value)
		_node.ScheduledSendAt = value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(campaignemail.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(campaignemail.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(campaignemail.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(campaignemail.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CampaignIDs(); len(nodes) > 0 {
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
		_node.CampaignID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LeadIDs(); len(nodes) > 0 {
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
		_node.LeadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CampaignEmailCreateBulk is the builder for creating many CampaignEmail entities in bulk.
type CampaignEmailCreateBulk struct {
	config
	err      error
	builders []*CampaignEmailCreate
}

// Save creates the CampaignEmail entities in the database.
func (_c *CampaignEmailCreateBulk) Save(ctx context.Context) ([]*CampaignEmail, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CampaignEmail, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CampaignEmailMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CampaignEmailCreateBulk) SaveX(ctx context.Context) []*CampaignEmail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignEmailCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignEmailCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
