// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/opennacc/declaration-extractor/gen/ent/document"
	"github.com/opennacc/declaration-extractor/gen/ent/predicate"
	"github.com/opennacc/declaration-extractor/gen/ent/verdict"
)

// VerdictUpdate is the builder for updating Verdict entities.
type VerdictUpdate struct {
	config
	hooks    []Hook
	mutation *VerdictMutation
}

// Where appends a list predicates to the VerdictUpdate builder.
func (_u *VerdictUpdate) Where(ps ...predicate.Verdict) *VerdictUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *VerdictUpdate) SetDocumentID(v uuid.UUID) *VerdictUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *VerdictUpdate) SetNillableDocumentID(v *uuid.UUID) *VerdictUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetRule sets the "rule" field.
func (_u *VerdictUpdate) SetRule(v string) *VerdictUpdate {
	_u.mutation.SetRule(v)
	return _u
}

// SetNillableRule sets the "rule" field if the given value is not nil.
func (_u *VerdictUpdate) SetNillableRule(v *string) *VerdictUpdate {
	if v != nil {
		_u.SetRule(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *VerdictUpdate) SetSeverity(v string) *VerdictUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *VerdictUpdate) SetNillableSeverity(v *string) *VerdictUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *VerdictUpdate) SetPassed(v bool) *VerdictUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *VerdictUpdate) SetNillablePassed(v *bool) *VerdictUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *VerdictUpdate) SetDetail(v string) *VerdictUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *VerdictUpdate) SetNillableDetail(v *string) *VerdictUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *VerdictUpdate) ClearDetail() *VerdictUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *VerdictUpdate) SetDocument(v *Document) *VerdictUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the VerdictMutation object of the builder.
func (_u *VerdictUpdate) Mutation() *VerdictMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *VerdictUpdate) ClearDocument() *VerdictUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerdictUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerdictUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerdictUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerdictUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerdictUpdate) check() error {
	if v, ok := _u.mutation.Rule(); ok {
		if err := verdict.RuleValidator(v); err != nil {
			return &ValidationError{Name: "rule", err: fmt.Errorf(`ent: validator failed for field "Verdict.rule": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := verdict.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Verdict.severity": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Verdict.document"`)
	}
	return nil
}

func (_u *VerdictUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verdict.Table, verdict.Columns, sqlgraph.NewFieldSpec(verdict.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Rule(); ok {
		_spec.SetField(verdict.FieldRule, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(verdict.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(verdict.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(verdict.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(verdict.FieldDetail, field.TypeString)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verdict.DocumentTable,
			Columns: []string{verdict.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verdict.DocumentTable,
			Columns: []string{verdict.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verdict.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerdictUpdateOne is the builder for updating a single Verdict entity.
type VerdictUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerdictMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *VerdictUpdateOne) SetDocumentID(v uuid.UUID) *VerdictUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *VerdictUpdateOne) SetNillableDocumentID(v *uuid.UUID) *VerdictUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetRule sets the "rule" field.
func (_u *VerdictUpdateOne) SetRule(v string) *VerdictUpdateOne {
	_u.mutation.SetRule(v)
	return _u
}

// SetNillableRule sets the "rule" field if the given value is not nil.
func (_u *VerdictUpdateOne) SetNillableRule(v *string) *VerdictUpdateOne {
	if v != nil {
		_u.SetRule(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *VerdictUpdateOne) SetSeverity(v string) *VerdictUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *VerdictUpdateOne) SetNillableSeverity(v *string) *VerdictUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *VerdictUpdateOne) SetPassed(v bool) *VerdictUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *VerdictUpdateOne) SetNillablePassed(v *bool) *VerdictUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *VerdictUpdateOne) SetDetail(v string) *VerdictUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *VerdictUpdateOne) SetNillableDetail(v *string) *VerdictUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *VerdictUpdateOne) ClearDetail() *VerdictUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *VerdictUpdateOne) SetDocument(v *Document) *VerdictUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the VerdictMutation object of the builder.
func (_u *VerdictUpdateOne) Mutation() *VerdictMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *VerdictUpdateOne) ClearDocument() *VerdictUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the VerdictUpdate builder.
func (_u *VerdictUpdateOne) Where(ps ...predicate.Verdict) *VerdictUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerdictUpdateOne) Select(field string, fields ...string) *VerdictUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Verdict entity.
func (_u *VerdictUpdateOne) Save(ctx context.Context) (*Verdict, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerdictUpdateOne) SaveX(ctx context.Context) *Verdict {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerdictUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerdictUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerdictUpdateOne) check() error {
	if v, ok := _u.mutation.Rule(); ok {
		if err := verdict.RuleValidator(v); err != nil {
			return &ValidationError{Name: "rule", err: fmt.Errorf(`ent: validator failed for field "Verdict.rule": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := verdict.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Verdict.severity": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Verdict.document"`)
	}
	return nil
}

func (_u *VerdictUpdateOne) sqlSave(ctx context.Context) (_node *Verdict, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verdict.Table, verdict.Columns, sqlgraph.NewFieldSpec(verdict.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Verdict.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verdict.FieldID)
		for _, f := range fields {
			if !verdict.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verdict.FieldID {
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
	if value, ok := _u.mutation.Rule(); ok {
		_spec.SetField(verdict.FieldRule, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(verdict.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(verdict.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(verdict.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(verdict.FieldDetail, field.TypeString)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verdict.DocumentTable,
			Columns: []string{verdict.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verdict.DocumentTable,
			Columns: []string{verdict.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Verdict{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verdict.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
