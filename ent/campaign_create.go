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
	"github.com/salesflowhq/salesflow/ent/company"
	"github.com/salesflowhq/salesflow/ent/schema/schematype"
	"github.com/salesflowhq/salesflow/ent/user"
)

// CampaignCreate is the builder for creating a Campaign entity.
type CampaignCreate struct {
	config
	mutation *CampaignMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *CampaignCreate) SetCompanyID(v int) *CampaignCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *CampaignCreate) SetUserID(v int) *CampaignCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CampaignCreate) SetName(v string) *CampaignCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetContext sets the "context" field.
func (_c *CampaignCreate) SetContext(v schematype.CampaignContext) *CampaignCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableContext(v *schematype.CampaignContext) *CampaignCreate {
	if v != nil {
		_c.SetContext(*v)
	}
	return _c
}

// SetDelays sets the "delays" field.
func (_c *CampaignCreate) SetDelays(v schematype.Delays) *CampaignCreate {
	_c.mutation.SetDelays(v)
	return _c
}

// SetLeadFilter sets the "lead_filter" field.
func (_c *CampaignCreate) SetLeadFilter(v *schematype.LeadFilter) *CampaignCreate {
	_c.mutation.SetLeadFilter(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CampaignCreate) SetStatus(v campaign.Status) *CampaignCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableStatus(v *campaign.Status) *CampaignCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetScheduledStart sets the "scheduled_start" field.
func (_c *CampaignCreate) SetScheduledStart(v time.Time) *CampaignCreate {
	_c.mutation.SetScheduledStart(v)
	return _c
}

// SetNillableScheduledStart sets the "scheduled_start" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableScheduledStart(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetScheduledStart(*v)
	}
	return _c
}

// SetEmailCount sets the "email_count" field.
func (_c *CampaignCreate) SetEmailCount(v int) *CampaignCreate {
	_c.mutation.SetEmailCount(v)
	return _c
}

// SetNillableEmailCount sets the "email_count" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableEmailCount(v *int) *CampaignCreate {
	if v != nil {
		_c.SetEmailCount(*v)
	}
	return _c
}

// SetSentCount sets the "sent_count" field.
func (_c *CampaignCreate) SetSentCount(v int) *CampaignCreate {
	_c.mutation.SetSentCount(v)
	return _c
}

// SetNillableSentCount sets the "sent_count" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableSentCount(v *int) *CampaignCreate {
	if v != nil {
		_c.SetSentCount(*v)
	}
	return _c
}

// SetFailedCount sets the "failed_count" field.
func (_c *CampaignCreate) SetFailedCount(v int) *CampaignCreate {
	_c.mutation.SetFailedCount(v)
	return _c
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableFailedCount(v *int) *CampaignCreate {
	if v != nil {
		_c.SetFailedCount(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *CampaignCreate) SetVersion(v int) *CampaignCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableVersion(v *int) *CampaignCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *CampaignCreate) SetDeletedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableDeletedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CampaignCreate) SetCreatedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableCreatedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CampaignCreate) SetUpdatedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableUpdatedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *CampaignCreate) SetCompany(v *Company) *CampaignCreate {
	return _c.SetCompanyID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_c *CampaignCreate) SetUser(v *User) *CampaignCreate {
	return _c.SetUserID(v.ID)
}

// AddEmailIDs adds the "emails" edge to the CampaignEmail entity by IDs.
func (_c *CampaignCreate) AddEmailIDs(ids ...int) *CampaignCreate {
	_c.mutation.AddEmailIDs(ids...)
	return _c
}

// AddEmails adds the "emails" edges to the CampaignEmail entity.
func (_c *CampaignCreate) AddEmails(v ...*CampaignEmail) *CampaignCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEmailIDs(ids...)
}

// Mutation returns the CampaignMutation object of the builder.
func (_c *CampaignCreate) Mutation() *CampaignMutation {
	return _c.mutation
}

// Save creates the Campaign in the database.
func (_c *CampaignCreate) Save(ctx context.Context) (*Campaign, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CampaignCreate) SaveX(ctx context.Context) *Campaign {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CampaignCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := campaign.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ScheduledStart(); !ok {
		v := campaign.DefaultScheduledStart()
		_c.mutation.SetScheduledStart(v)
	}
	if _, ok := _c.mutation.EmailCount(); !ok {
		v := campaign.DefaultEmailCount
		_c.mutation.SetEmailCount(v)
	}
	if _, ok := _c.mutation.SentCount(); !ok {
		v := campaign.DefaultSentCount
		_c.mutation.SetSentCount(v)
	}
	if _, ok := _c.mutation.FailedCount(); !ok {
		v := campaign.DefaultFailedCount
		_c.mutation.SetFailedCount(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := campaign.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := campaign.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := campaign.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CampaignCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "Campaign.company_id"`)}
	}
	if v, ok := _c.mutation.CompanyID(); ok {
		if err := campaign.CompanyIDValidator(v); err != nil {
			return &ValidationError{Name: "company_id", err: fmt.Errorf(`ent: validator failed for field "Campaign.company_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Campaign.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := campaign.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Campaign.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Campaign.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := campaign.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Campaign.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Campaign.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScheduledStart(); !ok {
		return &ValidationError{Name: "scheduled_start", err: errors.New(`ent: missing required field "Campaign.scheduled_start"`)}
	}
	if _, ok := _c.mutation.EmailCount(); !ok {
		return &ValidationError{Name: "email_count", err: errors.New(`ent: missing required field "Campaign.email_count"`)}
	}
	if v, ok := _c.mutation.EmailCount(); ok {
		if err := campaign.EmailCountValidator(v); err != nil {
			return &ValidationError{Name: "email_count", err: fmt.Errorf(`ent: validator failed for field "Campaign.email_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SentCount(); !ok {
		return &ValidationError{Name: "sent_count", err: errors.New(`ent: missing required field "Campaign.sent_count"`)}
	}
	if v, ok := _c.mutation.SentCount(); ok {
		if err := campaign.SentCountValidator(v); err != nil {
			return &ValidationError{Name: "sent_count", err: fmt.Errorf(`ent: validator failed for field "Campaign.sent_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FailedCount(); !ok {
		return &ValidationError{Name: "failed_count", err: errors.New(`ent: missing required field "Campaign.failed_count"`)}
	}
	if v, ok := _c.mutation.FailedCount(); ok {
		if err := campaign.FailedCountValidator(v); err != nil {
			return &ValidationError{Name: "failed_count", err: fmt.Errorf(`ent: validator failed for field "Campaign.failed_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Campaign.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := campaign.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Campaign.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Campaign.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Campaign.updated_at"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required edge "Campaign.company"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Campaign.user"`)}
	}
	return nil
}

func (_c *CampaignCreate) sqlSave(ctx context.Context) (*Campaign, error) {
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

func (_c *CampaignCreate) createSpec() (*Campaign, *sqlgraph.CreateSpec) {
	var (
		_node = &Campaign{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(campaign.Table, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(campaign.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(campaign.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.Delays(); ok {
		_spec.SetField(campaign.FieldDelays, field.TypeJSON, value)
		_node.Delays = value
	}
	if value, ok := _c.mutation.LeadFilter(); ok {
		_spec.SetField(campaign.FieldLeadFilter, field.TypeJSON, value)
		_node.LeadFilter = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ScheduledStart(); ok {
		_spec.SetField(campaign.FieldScheduledStart, field.TypeTime, value)
		_node.ScheduledStart = value
	}
	if value, ok := _c.mutation.EmailCount(); ok {
		_spec.SetField(campaign.FieldEmailCount, field.TypeInt, value)
		_node.EmailCount = value
	}
	if value, ok := _c.mutation.SentCount(); ok {
		_spec.SetField(campaign.FieldSentCount, field.TypeInt, value)
		_node.SentCount = value
	}
	if value, ok := _c.mutation.FailedCount(); ok {
		_spec.SetField(campaign.FieldFailedCount, field.TypeInt, value)
		_node.FailedCount = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(campaign.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(campaign.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(campaign.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(campaign.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_node.CompanyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EmailsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CampaignCreateBulk is the builder for creating many Campaign entities in bulk.
type CampaignCreateBulk struct {
	config
	err      error
	builders []*CampaignCreate
}

// Save creates the Campaign entities in the database.
func (_c *CampaignCreateBulk) Save(ctx context.Context) ([]*Campaign, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Campaign, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CampaignMutation)
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
func (_c *CampaignCreateBulk) SaveX(ctx context.Context) []*Campaign {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
