// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/salesflowhq/salesflow/ent/lead"
	"github.com/salesflowhq/salesflow/ent/leadstatushistory"
	"github.com/salesflowhq/salesflow/ent/user"
)

// LeadStatusHistoryCreate is the builder for creating a LeadStatusHistory entity.
type LeadStatusHistoryCreate struct {
	config
	mutation *LeadStatusHistoryMutation
	hooks    []Hook
}

// SetLeadID sets the "lead_id" field.
func (_c *LeadStatusHistoryCreate) SetLeadID(v int) *LeadStatusHistoryCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *LeadStatusHistoryCreate) SetUserID(v int) *LeadStatusHistoryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetOldStatus sets the "old_status" field.
func (_c *LeadStatusHistoryCreate) SetOldStatus(v leadstatushistory.OldStatus) *LeadStatusHistoryCreate {
	_c.mutation.SetOldStatus(v)
	return _c
}

// SetNewStatus sets the "new_status" field.
func (_c *LeadStatusHistoryCreate) SetNewStatus(v leadstatushistory.NewStatus) *LeadStatusHistoryCreate {
	_c.mutation.SetNewStatus(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *LeadStatusHistoryCreate) SetReason(v string) *LeadStatusHistoryCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *LeadStatusHistoryCreate) SetNillableReason(v *string) *LeadStatusHistoryCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LeadStatusHistoryCreate) SetCreatedAt(v time.Time) *LeadStatusHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LeadStatusHistoryCreate) SetNillableCreatedAt(v *time.Time) *LeadStatusHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLead sets the "lead" edge to the Lead entity.
func (_c *LeadStatusHistoryCreate) SetLead(v *Lead) *LeadStatusHistoryCreate {
	return _c.SetLeadID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_c *LeadStatusHistoryCreate) SetUser(v *User) *LeadStatusHistoryCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the LeadStatusHistoryMutation object of the builder.
func (_c *LeadStatusHistoryCreate) Mutation() *LeadStatusHistoryMutation {
	return _c.mutation
}

// Save creates the LeadStatusHistory in the database.
func (_c *LeadStatusHistoryCreate) Save(ctx context.Context) (*LeadStatusHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeadStatusHistoryCreate) SaveX(ctx context.Context) *LeadStatusHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadStatusHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadStatusHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeadStatusHistoryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := leadstatushistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeadStatusHistoryCreate) check() error {
	if _, ok := _c.mutation.LeadID(); !ok {
		return &ValidationError{Name: "lead_id", err: errors.New(`ent: missing required field "LeadStatusHistory.lead_id"`)}
	}
	if v, ok := _c.mutation.LeadID(); ok {
		if err := leadstatushistory.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "LeadStatusHistory.lead_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LeadStatusHistory.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := leadstatushistory.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LeadStatusHistory.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OldStatus(); !ok {
		return &ValidationError{Name: "old_status", err: errors.New(`ent: missing required field "LeadStatusHistory.old_status"`)}
	}
	if v, ok := _c.mutation.OldStatus(); ok {
		if err := leadstatushistory.OldStatusValidator(v); err != nil {
			return &ValidationError{Name: "old_status", err: fmt.Errorf(`ent: validator failed for field "LeadStatusHistory.old_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NewStatus(); !ok {
		return &ValidationError{Name: "new_status", err: errors.New(`ent: missing required field "LeadStatusHistory.new_status"`)}
	}
	if v, ok := _c.mutation.NewStatus(); ok {
		if err := leadstatushistory.NewStatusValidator(v); err != nil {
			return &ValidationError{Name: "new_status", err: fmt.Errorf(`ent: validator failed for field "LeadStatusHistory.new_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := leadstatushistory.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "LeadStatusHistory.reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LeadStatusHistory.created_at"`)}
	}
	if len(_c.mutation.LeadIDs()) == 0 {
		return &ValidationError{Name: "lead", err: errors.New(`ent: missing required edge "LeadStatusHistory.lead"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "LeadStatusHistory.user"`)}
	}
	return nil
}

func (_c *LeadStatusHistoryCreate) sqlSave(ctx context.Context) (*LeadStatusHistory, error) {
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

func (_c *LeadStatusHistoryCreate) createSpec() (*LeadStatusHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &LeadStatusHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(leadstatushistory.Table, sqlgraph.NewFieldSpec(leadstatushistory.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.OldStatus(); ok {
		_spec.SetField(leadstatushistory.FieldOldStatus, field.TypeEnum, value)
		_node.OldStatus = value
	}
	if value, ok := _c.mutation.NewStatus(); ok {
		_spec.SetField(leadstatushistory.FieldNewStatus, field.TypeEnum, value)
		_node.NewStatus = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(leadstatushistory.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(leadstatushistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.LeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadstatushistory.LeadTable,
			Columns: []string{leadstatushistory.LeadColumn},
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
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadstatushistory.UserTable,
			Columns: []string{leadstatushistory.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LeadStatusHistoryCreateBulk is the builder for creating many LeadStatusHistory entities in bulk.
type LeadStatusHistoryCreateBulk struct {
	config
	err      error
	builders []*LeadStatusHistoryCreate
}

// Save creates the LeadStatusHistory entities in the database.
func (_c *LeadStatusHistoryCreateBulk) Save(ctx context.Context) ([]*LeadStatusHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LeadStatusHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeadStatusHistoryMutation)
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
func (_c *LeadStatusHistoryCreateBulk) SaveX(ctx context.Context) []*LeadStatusHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadStatusHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadStatusHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
