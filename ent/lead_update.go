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
	"github.com/salesflowhq/salesflow/ent/campaignemail"
	"github.com/salesflowhq/salesflow/ent/company"
	"github.com/salesflowhq/salesflow/ent/lead"
	"github.com/salesflowhq/salesflow/ent/leadstatushistory"
	"github.com/salesflowhq/salesflow/ent/predicate"
)

// LeadUpdate is the builder for updating Lead entities.
type LeadUpdate struct {
	config
	hooks    []Hook
	mutation *LeadMutation
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdate) Where(ps ...predicate.Lead) *LeadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *LeadUpdate) SetCompanyID(v int) *LeadUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableCompanyID(v *int) *LeadUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *LeadUpdate) SetEmail(v string) *LeadUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableEmail(v *string) *LeadUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *LeadUpdate) SetFirstName(v string) *LeadUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableFirstName(v *string) *LeadUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// ClearFirstName clears the value of the "first_name" field.
func (_u *LeadUpdate) ClearFirstName() *LeadUpdate {
	_u.mutation.ClearFirstName()
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *LeadUpdate) SetLastName(v string) *LeadUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableLastName(v *string) *LeadUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *LeadUpdate) ClearLastName() *LeadUpdate {
	_u.mutation.ClearLastName()
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *LeadUpdate) SetCompanyName(v string) *LeadUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableCompanyName(v *string) *LeadUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// ClearCompanyName clears the value of the "company_name" field.
func (_u *LeadUpdate) ClearCompanyName() *LeadUpdate {
	_u.mutation.ClearCompanyName()
	return _u
}

// SetJobTitle sets the "job_title" field.
func (_u *LeadUpdate) SetJobTitle(v string) *LeadUpdate {
	_u.mutation.SetJobTitle(v)
	return _u
}

// SetNillableJobTitle sets the "job_title" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableJobTitle(v *string) *LeadUpdate {
	if v != nil {
		_u.SetJobTitle(*v)
	}
	return _u
}

// ClearJobTitle clears the value of the "job_title" field.
func (_u *LeadUpdate) ClearJobTitle() *LeadUpdate {
	_u.mutation.ClearJobTitle()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LeadUpdate) SetPhone(v string) *LeadUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LeadUpdate) SetNillablePhone(v *string) *LeadUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *LeadUpdate) ClearPhone() *LeadUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetLinkedinURL sets the "linkedin_url" field.
func (_u *LeadUpdate) SetLinkedinURL(v string) *LeadUpdate {
	_u.mutation.SetLinkedinURL(v)
	return _u
}

// SetNillableLinkedinURL sets the "linkedin_url" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableLinkedinURL(v *string) *LeadUpdate {
	if v != nil {
		_u.SetLinkedinURL(*v)
	}
	return _u
}

// ClearLinkedinURL clears the value of the "linkedin_url" field.
func (_u *LeadUpdate) ClearLinkedinURL() *LeadUpdate {
	_u.mutation.ClearLinkedinURL()
	return _u
}

// SetSource sets the "source" field.
func (_u *LeadUpdate) SetSource(v lead.Source) *LeadUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableSource(v *lead.Source) *LeadUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *LeadUpdate) SetStatus(v lead.Status) *LeadUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableStatus(v *lead.Status) *LeadUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (_u *LeadUpdate) SetStatusChangedAt(v time.Time) *LeadUpdate {
	_u.mutation.SetStatusChangedAt(v)
	return _u
}

// SetNillableStatusChangedAt sets the "status_changed_at" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableStatusChangedAt(v *time.Time) *LeadUpdate {
	if v != nil {
		_u.SetStatusChangedAt(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *LeadUpdate) SetScore(v int) *LeadUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableScore(v *int) *LeadUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *LeadUpdate) AddScore(v int) *LeadUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetCustomFields sets the "custom_fields" field.
func (_u *LeadUpdate) SetCustomFields(v map[string]interface{}) *LeadUpdate {
	_u.mutation.SetCustomFields(v)
	return _u
}

// ClearCustomFields clears the value of the "custom_fields" field.
func (_u *LeadUpdate) ClearCustomFields() *LeadUpdate {
	_u.mutation.ClearCustomFields()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *LeadUpdate) SetNotes(v string) *LeadUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableNotes(v *string) *LeadUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *LeadUpdate) ClearNotes() *LeadUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *LeadUpdate) SetCreatedBy(v int) *LeadUpdate {
	_u.mutation.ResetCreatedBy()
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableCreatedBy(v *int) *LeadUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// AddCreatedBy adds value to the "created_by" field.
func (_u *LeadUpdate) AddCreatedBy(v int) *LeadUpdate {
	_u.mutation.AddCreatedBy(v)
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *LeadUpdate) ClearCreatedBy() *LeadUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *LeadUpdate) SetIsDeleted(v bool) *LeadUpdate {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableIsDeleted(v *bool) *LeadUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *LeadUpdate) SetVersion(v int) *LeadUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableVersion(v *int) *LeadUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *LeadUpdate) AddVersion(v int) *LeadUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadUpdate) SetUpdatedAt(v time.Time) *LeadUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *LeadUpdate) SetCompany(v *Company) *LeadUpdate {
	return _u.SetCompanyID(v.ID)
}

// AddStatusHistoryIDs adds the "status_history" edge to the LeadStatusHistory entity by IDs.
func (_u *LeadUpdate) AddStatusHistoryIDs(ids ...int) *LeadUpdate {
	_u.mutation.AddStatusHistoryIDs(ids...)
	return _u
}

// AddStatusHistory adds the "status_history" edges to the LeadStatusHistory entity.
func (_u *LeadUpdate) AddStatusHistory(v ...*LeadStatusHistory) *LeadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatusHistoryIDs(ids...)
}

// AddCampaignEmailIDs adds the "campaign_emails" edge to the CampaignEmail entity by IDs.
func (_u *LeadUpdate) AddCampaignEmailIDs(ids ...int) *LeadUpdate {
	_u.mutation.AddCampaignEmailIDs(ids...)
	return _u
}

// AddCampaignEmails adds the "campaign_emails" edges to the CampaignEmail entity.
func (_u *LeadUpdate) AddCampaignEmails(v ...*CampaignEmail) *LeadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCampaignEmailIDs(ids...)
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdate) Mutation() *LeadMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *LeadUpdate) ClearCompany() *LeadUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// ClearStatusHistory clears all "status_history" edges to the LeadStatusHistory entity.
func (_u *LeadUpdate) ClearStatusHistory() *LeadUpdate {
	_u.mutation.ClearStatusHistory()
	return _u
}

// RemoveStatusHistoryIDs removes the "status_history" edge to LeadStatusHistory entities by IDs.
func (_u *LeadUpdate) RemoveStatusHistoryIDs(ids ...int) *LeadUpdate {
	_u.mutation.RemoveStatusHistoryIDs(ids...)
	return _u
}

// RemoveStatusHistory removes "status_history" edges to LeadStatusHistory entities.
func (_u *LeadUpdate) RemoveStatusHistory(v ...*LeadStatusHistory) *LeadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatusHistoryIDs(ids...)
}

// ClearCampaignEmails clears all "campaign_emails" edges to the CampaignEmail entity.
func (_u *LeadUpdate) ClearCampaignEmails() *LeadUpdate {
	_u.mutation.ClearCampaignEmails()
	return _u
}

// RemoveCampaignEmailIDs removes the "campaign_emails" edge to CampaignEmail entities by IDs.
func (_u *LeadUpdate) RemoveCampaignEmailIDs(ids ...int) *LeadUpdate {
	_u.mutation.RemoveCampaignEmailIDs(ids...)
	return _u
}

// RemoveCampaignEmails removes "campaign_emails" edges to CampaignEmail entities.
func (_u *LeadUpdate) RemoveCampaignEmails(v ...*CampaignEmail) *LeadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCampaignEmailIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeadUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadUpdate) check() error {
	if v, ok := _u.mutation.CompanyID(); ok {
		if err := lead.CompanyIDValidator(v); err != nil {
			return &ValidationError{Name: "company_id", err: fmt.Errorf(`ent: validator failed for field "Lead.company_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := lead.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Lead.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := lead.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Lead.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := lead.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Lead.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := lead.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Lead.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := lead.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Lead.version": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Lead.company"`)
	}
	return nil
}

func (_u *LeadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(lead.FieldFirstName, field.TypeString, value)
	}
	if _u.mutation.FirstNameCleared() {
		_spec.ClearField(lead.FieldFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(lead.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(lead.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(lead.FieldCompanyName, field.TypeString, value)
	}
	if _u.mutation.CompanyNameCleared() {
		_spec.ClearField(lead.FieldCompanyName, field.TypeString)
	}
	if value, ok := _u.mutation.JobTitle(); ok {
		_spec.SetField(lead.FieldJobTitle, field.TypeString, value)
	}
	if _u.mutation.JobTitleCleared() {
		_spec.ClearField(lead.FieldJobTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(lead.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.LinkedinURL(); ok {
		_spec.SetField(lead.FieldLinkedinURL, field.TypeString, value)
	}
	if _u.mutation.LinkedinURLCleared() {
		_spec.ClearField(lead.FieldLinkedinURL, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(lead.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(lead.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusChangedAt(); ok {
		_spec.SetField(lead.FieldStatusChangedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(lead.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(lead.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CustomFields(); ok {
		_spec.SetField(lead.FieldCustomFields, field.TypeJSON, value)
	}
	if _u.mutation.CustomFieldsCleared() {
		_spec.ClearField(lead.FieldCustomFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(lead.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(lead.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(lead.FieldCreatedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreatedBy(); ok {
		_spec.AddField(lead.FieldCreatedBy, field.TypeInt, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(lead.FieldCreatedBy, field.TypeInt)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(lead.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(lead.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(lead.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatusHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStatusHistoryIDs(); len(nodes) > 0 && !_u.mutation.StatusHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatusHistoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CampaignEmailsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCampaignEmailsIDs(); len(nodes) > 0 && !_u.mutation.CampaignEmailsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignEmailsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeadUpdateOne is the builder for updating a single Lead entity.
type LeadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeadMutation
}

// SetCompanyID sets the "company_id" field.
func (_u *LeadUpdateOne) SetCompanyID(v int) *LeadUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableCompanyID(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *LeadUpdateOne) SetEmail(v string) *LeadUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableEmail(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *LeadUpdateOne) SetFirstName(v string) *LeadUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableFirstName(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// ClearFirstName clears the value of the "first_name" field.
func (_u *LeadUpdateOne) ClearFirstName() *LeadUpdateOne {
	_u.mutation.ClearFirstName()
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *LeadUpdateOne) SetLastName(v string) *LeadUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableLastName(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *LeadUpdateOne) ClearLastName() *LeadUpdateOne {
	_u.mutation.ClearLastName()
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *LeadUpdateOne) SetCompanyName(v string) *LeadUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableCompanyName(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// ClearCompanyName clears the value of the "company_name" field.
func (_u *LeadUpdateOne) ClearCompanyName() *LeadUpdateOne {
	_u.mutation.ClearCompanyName()
	return _u
}

// SetJobTitle sets the "job_title" field.
func (_u *LeadUpdateOne) SetJobTitle(v string) *LeadUpdateOne {
	_u.mutation.SetJobTitle(v)
	return _u
}

// SetNillableJobTitle sets the "job_title" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableJobTitle(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetJobTitle(*v)
	}
	return _u
}

// ClearJobTitle clears the value of the "job_title" field.
func (_u *LeadUpdateOne) ClearJobTitle() *LeadUpdateOne {
	_u.mutation.ClearJobTitle()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LeadUpdateOne) SetPhone(v string) *LeadUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillablePhone(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *LeadUpdateOne) ClearPhone() *LeadUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetLinkedinURL sets the "linkedin_url" field.
func (_u *LeadUpdateOne) SetLinkedinURL(v string) *LeadUpdateOne {
	_u.mutation.SetLinkedinURL(v)
	return _u
}

// SetNillableLinkedinURL sets the "linkedin_url" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableLinkedinURL(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetLinkedinURL(*v)
	}
	return _u
}

// ClearLinkedinURL clears the value of the "linkedin_url" field.
func (_u *LeadUpdateOne) ClearLinkedinURL() *LeadUpdateOne {
	_u.mutation.ClearLinkedinURL()
	return _u
}

// SetSource sets the "source" field.
func (_u *LeadUpdateOne) SetSource(v lead.Source) *LeadUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableSource(v *lead.Source) *LeadUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *LeadUpdateOne) SetStatus(v lead.Status) *LeadUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableStatus(v *lead.Status) *LeadUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (_u *LeadUpdateOne) SetStatusChangedAt(v time.Time) *LeadUpdateOne {
	_u.mutation.SetStatusChangedAt(v)
	return _u
}

// SetNillableStatusChangedAt sets the "status_changed_at" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableStatusChangedAt(v *time.Time) *LeadUpdateOne {
	if v != nil {
		_u.SetStatusChangedAt(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *LeadUpdateOne) SetScore(v int) *LeadUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableScore(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *LeadUpdateOne) AddScore(v int) *LeadUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetCustomFields sets the "custom_fields" field.
func (_u *LeadUpdateOne) SetCustomFields(v map[string]interface{}) *LeadUpdateOne {
	_u.mutation.SetCustomFields(v)
	return _u
}

// ClearCustomFields clears the value of the "custom_fields" field.
func (_u *LeadUpdateOne) ClearCustomFields() *LeadUpdateOne {
	_u.mutation.ClearCustomFields()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *LeadUpdateOne) SetNotes(v string) *LeadUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableNotes(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *LeadUpdateOne) ClearNotes() *LeadUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *LeadUpdateOne) SetCreatedBy(v int) *LeadUpdateOne {
	_u.mutation.ResetCreatedBy()
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableCreatedBy(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// AddCreatedBy adds value to the "created_by" field.
func (_u *LeadUpdateOne) AddCreatedBy(v int) *LeadUpdateOne {
	_u.mutation.AddCreatedBy(v)
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *LeadUpdateOne) ClearCreatedBy() *LeadUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *LeadUpdateOne) SetIsDeleted(v bool) *LeadUpdateOne {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableIsDeleted(v *bool) *LeadUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *LeadUpdateOne) SetVersion(v int) *LeadUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableVersion(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *LeadUpdateOne) AddVersion(v int) *LeadUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadUpdateOne) SetUpdatedAt(v time.Time) *LeadUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *LeadUpdateOne) SetCompany(v *Company) *LeadUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// AddStatusHistoryIDs adds the "status_history" edge to the LeadStatusHistory entity by IDs.
func (_u *LeadUpdateOne) AddStatusHistoryIDs(ids ...int) *LeadUpdateOne {
	_u.mutation.AddStatusHistoryIDs(ids...)
	return _u
}

// AddStatusHistory adds the "status_history" edges to the LeadStatusHistory entity.
func (_u *LeadUpdateOne) AddStatusHistory(v ...*LeadStatusHistory) *LeadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatusHistoryIDs(ids...)
}

// AddCampaignEmailIDs adds the "campaign_emails" edge to the CampaignEmail entity by IDs.
func (_u *LeadUpdateOne) AddCampaignEmailIDs(ids ...int) *LeadUpdateOne {
	_u.mutation.AddCampaignEmailIDs(ids...)
	return _u
}

// AddCampaignEmails adds the "campaign_emails" edges to the CampaignEmail entity.
func (_u *LeadUpdateOne) AddCampaignEmails(v ...*CampaignEmail) *LeadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCampaignEmailIDs(ids...)
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdateOne) Mutation() *LeadMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *LeadUpdateOne) ClearCompany() *LeadUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// ClearStatusHistory clears all "status_history" edges to the LeadStatusHistory entity.
func (_u *LeadUpdateOne) ClearStatusHistory() *LeadUpdateOne {
	_u.mutation.ClearStatusHistory()
	return _u
}

// RemoveStatusHistoryIDs removes the "status_history" edge to LeadStatusHistory entities by IDs.
func (_u *LeadUpdateOne) RemoveStatusHistoryIDs(ids ...int) *LeadUpdateOne {
	_u.mutation.RemoveStatusHistoryIDs(ids...)
	return _u
}

// RemoveStatusHistory removes "status_history" edges to LeadStatusHistory entities.
func (_u *LeadUpdateOne) RemoveStatusHistory(v ...*LeadStatusHistory) *LeadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatusHistoryIDs(ids...)
}

// ClearCampaignEmails clears all "campaign_emails" edges to the CampaignEmail entity.
func (_u *LeadUpdateOne) ClearCampaignEmails() *LeadUpdateOne {
	_u.mutation.ClearCampaignEmails()
	return _u
}

// RemoveCampaignEmailIDs removes the "campaign_emails" edge to CampaignEmail entities by IDs.
func (_u *LeadUpdateOne) RemoveCampaignEmailIDs(ids ...int) *LeadUpdateOne {
	_u.mutation.RemoveCampaignEmailIDs(ids...)
	return _u
}

// RemoveCampaignEmails removes "campaign_emails" edges to CampaignEmail entities.
func (_u *LeadUpdateOne) RemoveCampaignEmails(v ...*CampaignEmail) *LeadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCampaignEmailIDs(ids...)
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdateOne) Where(ps ...predicate.Lead) *LeadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeadUpdateOne) Select(field string, fields ...string) *LeadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lead entity.
func (_u *LeadUpdateOne) Save(ctx context.Context) (*Lead, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdateOne) SaveX(ctx context.Context) *Lead {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadUpdateOne) check() error {
	if v, ok := _u.mutation.CompanyID(); ok {
		if err := lead.CompanyIDValidator(v); err != nil {
			return &ValidationError{Name: "company_id", err: fmt.Errorf(`ent: validator failed for field "Lead.company_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := lead.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Lead.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := lead.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Lead.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := lead.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Lead.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := lead.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Lead.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := lead.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Lead.version": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Lead.company"`)
	}
	return nil
}

func (_u *LeadUpdateOne) sqlSave(ctx context.Context) (_node *Lead, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lead.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lead.FieldID)
		for _, f := range fields {
			if !lead.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lead.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(lead.FieldFirstName, field.TypeString, value)
	}
	if _u.mutation.FirstNameCleared() {
		_spec.ClearField(lead.FieldFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(lead.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(lead.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(lead.FieldCompanyName, field.TypeString, value)
	}
	if _u.mutation.CompanyNameCleared() {
		_spec.ClearField(lead.FieldCompanyName, field.TypeString)
	}
	if value, ok := _u.mutation.JobTitle(); ok {
		_spec.SetField(lead.FieldJobTitle, field.TypeString, value)
	}
	if _u.mutation.JobTitleCleared() {
		_spec.ClearField(lead.FieldJobTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(lead.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.LinkedinURL(); ok {
		_spec.SetField(lead.FieldLinkedinURL, field.TypeString, value)
	}
	if _u.mutation.LinkedinURLCleared() {
		_spec.ClearField(lead.FieldLinkedinURL, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(lead.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(lead.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusChangedAt(); ok {
		_spec.SetField(lead.FieldStatusChangedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(lead.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(lead.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CustomFields(); ok {
		_spec.SetField(lead.FieldCustomFields, field.TypeJSON, value)
	}
	if _u.mutation.CustomFieldsCleared() {
		_spec.ClearField(lead.FieldCustomFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(lead.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(lead.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(lead.FieldCreatedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreatedBy(); ok {
		_spec.AddField(lead.FieldCreatedBy, field.TypeInt, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(lead.FieldCreatedBy, field.TypeInt)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(lead.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(lead.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(lead.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatusHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStatusHistoryIDs(); len(nodes) > 0 && !_u.mutation.StatusHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatusHistoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CampaignEmailsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCampaignEmailsIDs(); len(nodes) > 0 && !_u.mutation.CampaignEmailsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignEmailsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Lead{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
