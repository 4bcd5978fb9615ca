// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/salesflowhq/salesflow/ent/campaignemail"
	"github.com/salesflowhq/salesflow/ent/company"
	"github.com/salesflowhq/salesflow/ent/lead"
	"github.com/salesflowhq/salesflow/ent/leadstatushistory"
)

// LeadCreate is the builder for creating a Lead entity.
type LeadCreate struct {
	config
	mutation *LeadMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *LeadCreate) SetCompanyID(v int) *LeadCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *LeadCreate) SetEmail(v string) *LeadCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *LeadCreate) SetFirstName(v string) *LeadCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_c *LeadCreate) SetNillableFirstName(v *string) *LeadCreate {
	if v != nil {
		_c.SetFirstName(*v)
	}
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *LeadCreate) SetLastName(v string) *LeadCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_c *LeadCreate) SetNillableLastName(v *string) *LeadCreate {
	if v != nil {
		_c.SetLastName(*v)
	}
	return _c
}

// SetCompanyName sets the "company_name" field.
func (_c *LeadCreate) SetCompanyName(v string) *LeadCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCompanyName(v *string) *LeadCreate {
	if v != nil {
		_c.SetCompanyName(*v)
	}
	return _c
}

// SetJobTitle sets the "job_title" field.
func (_c *LeadCreate) SetJobTitle(v string) *LeadCreate {
	_c.mutation.SetJobTitle(v)
	return _c
}

// SetNillableJobTitle sets the "job_title" field if the given value is not nil.
func (_c *LeadCreate) SetNillableJobTitle(v *string) *LeadCreate {
	if v != nil {
		_c.SetJobTitle(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *LeadCreate) SetPhone(v string) *LeadCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *LeadCreate) SetNillablePhone(v *string) *LeadCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetLinkedinURL sets the "linkedin_url" field.
func (_c *LeadCreate) SetLinkedinURL(v string) *LeadCreate {
	_c.mutation.SetLinkedinURL(v)
	return _c
}

// SetNillableLinkedinURL sets the "linkedin_url" field if the given value is not nil.
func (_c *LeadCreate) SetNillableLinkedinURL(v *string) *LeadCreate {
	if v != nil {
		_c.SetLinkedinURL(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *LeadCreate) SetSource(v lead.Source) *LeadCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *LeadCreate) SetNillableSource(v *lead.Source) *LeadCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *LeadCreate) SetStatus(v lead.Status) *LeadCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LeadCreate) SetNillableStatus(v *lead.Status) *LeadCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (_c *LeadCreate) SetStatusChangedAt(v time.Time) *LeadCreate {
	_c.mutation.SetStatusChangedAt(v)
	return _c
}

// SetNillableStatusChangedAt sets the "status_changed_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableStatusChangedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetStatusChangedAt(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *LeadCreate) SetScore(v int) *LeadCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *LeadCreate) SetNillableScore(v *int) *LeadCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetCustomFields sets the "custom_fields" field.
func (_c *LeadCreate) SetCustomFields(v map[string]interface{}) *LeadCreate {
	_c.mutation.SetCustomFields(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *LeadCreate) SetNotes(v string) *LeadCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *LeadCreate) SetNillableNotes(v *string) *LeadCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *LeadCreate) SetCreatedBy(v int) *LeadCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCreatedBy(v *int) *LeadCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *LeadCreate) SetIsDeleted(v bool) *LeadCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *LeadCreate) SetNillableIsDeleted(v *bool) *LeadCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *LeadCreate) SetVersion(v int) *LeadCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *LeadCreate) SetNillableVersion(v *int) *LeadCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LeadCreate) SetCreatedAt(v time.Time) *LeadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCreatedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LeadCreate) SetUpdatedAt(v time.Time) *LeadCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableUpdatedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *LeadCreate) SetCompany(v *Company) *LeadCreate {
	return _c.SetCompanyID(v.ID)
}

// AddStatusHistoryIDs adds the "status_history" edge to the LeadStatusHistory entity by IDs.
func (_c *LeadCreate) AddStatusHistoryIDs(ids ...int) *LeadCreate {
	_c.mutation.AddStatusHistoryIDs(ids...)
	return _c
}

// AddStatusHistory adds the "status_history" edges to the LeadStatusHistory entity.
func (_c *LeadCreate) AddStatusHistory(v ...*LeadStatusHistory) *LeadCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStatusHistoryIDs(ids...)
}

// AddCampaignEmailIDs adds the "campaign_emails" edge to the CampaignEmail entity by IDs.
func (_c *LeadCreate) AddCampaignEmailIDs(ids ...int) *LeadCreate {
	_c.mutation.AddCampaignEmailIDs(ids...)
	return _c
}

// AddCampaignEmails adds the "campaign_emails" edges to the CampaignEmail entity.
func (_c *LeadCreate) AddCampaignEmails(v ...*CampaignEmail) *LeadCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCampaignEmailIDs(ids...)
}

// Mutation returns the LeadMutation object of the builder.
func (_c *LeadCreate) Mutation() *LeadMutation {
	return _c.mutation
}

// Save creates the Lead in the database.
func (_c *LeadCreate) Save(ctx context.Context) (*Lead, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeadCreate) SaveX(ctx context.Context) *Lead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeadCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := lead.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := lead.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StatusChangedAt(); !ok {
		v := lead.DefaultStatusChangedAt()
		_c.mutation.SetStatusChangedAt(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := lead.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := lead.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := lead.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lead.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := lead.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeadCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "Lead.company_id"`)}
	}
	if v, ok := _c.mutation.CompanyID(); ok {
		if err := lead.CompanyIDValidator(v); err != nil {
			return &ValidationError{Name: "company_id", err: fmt.Errorf(`ent: validator failed for field "Lead.company_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Lead.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := lead.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Lead.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Lead.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := lead.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Lead.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Lead.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := lead.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Lead.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StatusChangedAt(); !ok {
		return &ValidationError{Name: "status_changed_at", err: errors.New(`ent: missing required field "Lead.status_changed_at"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Lead.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := lead.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Lead.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "Lead.is_deleted"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Lead.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := lead.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Lead.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Lead.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Lead.updated_at"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required edge "Lead.company"`)}
	}
	return nil
}

func (_c *LeadCreate) sqlSave(ctx context.Context) (*Lead, error) {
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

func (_c *LeadCreate) createSpec() (*Lead, *sqlgraph.CreateSpec) {
	var (
		_node = &Lead{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lead.Table, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(lead.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(lead.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(lead.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = value
	}
	if value, ok := _c.mutation.JobTitle(); ok {
		_spec.SetField(lead.FieldJobTitle, field.TypeString, value)
		_node.JobTitle = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.LinkedinURL(); ok {
		_spec.SetField(lead.FieldLinkedinURL, field.TypeString, value)
		_node.LinkedinURL = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(lead.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(lead.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StatusChangedAt(); ok {
		_spec.SetField(lead.FieldStatusChangedAt, field.TypeTime, value)
		_node.StatusChangedAt = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(lead.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.CustomFields(); ok {
		_spec.SetField(lead.FieldCustomFields, field.TypeJSON, value)
		_node.CustomFields = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(lead.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(lead.FieldCreatedBy, field.TypeInt, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(lead.FieldIsDeleted, field.TypeBool, value)
		_node.IsDeleted = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(lead.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lead.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lead.CompanyTable,
			Columns: []string{lead.CompanyColumn},
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
	if nodes := _c.mutation.StatusHistoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.StatusHistoryTable,
			Columns: []string{lead.StatusHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(leadstatushistory.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CampaignEmailsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.CampaignEmailsTable,
			Columns: []string{lead.CampaignEmailsColumn},
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

// LeadCreateBulk is the builder for creating many Lead entities in bulk.
type LeadCreateBulk struct {
	config
	err      error
	builders []*LeadCreate
}

// Save creates the Lead entities in the database.
func (_c *LeadCreateBulk) Save(ctx context.Context) ([]*Lead, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lead, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeadMutation)
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
func (_c *LeadCreateBulk) SaveX(ctx context.Context) []*Lead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
