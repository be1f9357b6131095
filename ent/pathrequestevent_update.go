// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/learnlens/learnlens/ent/pathrequestevent"
	"github.com/learnlens/learnlens/ent/predicate"
)

// PathRequestEventUpdate is the builder for updating PathRequestEvent entities.
type PathRequestEventUpdate struct {
	config
	hooks    []Hook
	mutation *PathRequestEventMutation
}

// Where appends a list predicates to the PathRequestEventUpdate builder.
func (_u *PathRequestEventUpdate) Where(ps ...predicate.PathRequestEvent) *PathRequestEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *PathRequestEventUpdate) SetTopic(v string) *PathRequestEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *PathRequestEventUpdate) SetNillableTopic(v *string) *PathRequestEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *PathRequestEventUpdate) SetLevel(v string) *PathRequestEventUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *PathRequestEventUpdate) SetNillableLevel(v *string) *PathRequestEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetStepsPlanned sets the "steps_planned" field.
func (_u *PathRequestEventUpdate) SetStepsPlanned(v int) *PathRequestEventUpdate {
	_u.mutation.ResetStepsPlanned()
	_u.mutation.SetStepsPlanned(v)
	return _u
}

// SetNillableStepsPlanned sets the "steps_planned" field if the given value is not nil.
func (_u *PathRequestEventUpdate) SetNillableStepsPlanned(v *int) *PathRequestEventUpdate {
	if v != nil {
		_u.SetStepsPlanned(*v)
	}
	return _u
}

// AddStepsPlanned adds value to the "steps_planned" field.
func (_u *PathRequestEventUpdate) AddStepsPlanned(v int) *PathRequestEventUpdate {
	_u.mutation.AddStepsPlanned(v)
	return _u
}

// SetStepsReturned sets the "steps_returned" field.
func (_u *PathRequestEventUpdate) SetStepsReturned(v int) *PathRequestEventUpdate {
	_u.mutation.ResetStepsReturned()
	_u.mutation.SetStepsReturned(v)
	return _u
}

// SetNillableStepsReturned sets the "steps_returned" field if the given value is not nil.
func (_u *PathRequestEventUpdate) SetNillableStepsReturned(v *int) *PathRequestEventUpdate {
	if v != nil {
		_u.SetStepsReturned(*v)
	}
	return _u
}

// AddStepsReturned adds value to the "steps_returned" field.
func (_u *PathRequestEventUpdate) AddStepsReturned(v int) *PathRequestEventUpdate {
	_u.mutation.AddStepsReturned(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *PathRequestEventUpdate) SetDurationMs(v int64) *PathRequestEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *PathRequestEventUpdate) SetNillableDurationMs(v *int64) *PathRequestEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *PathRequestEventUpdate) AddDurationMs(v int64) *PathRequestEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *PathRequestEventUpdate) SetSuccess(v bool) *PathRequestEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *PathRequestEventUpdate) SetNillableSuccess(v *bool) *PathRequestEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PathRequestEventUpdate) SetErrorMessage(v string) *PathRequestEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PathRequestEventUpdate) SetNillableErrorMessage(v *string) *PathRequestEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the PathRequestEventMutation object of the builder.
func (_u *PathRequestEventUpdate) Mutation() *PathRequestEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PathRequestEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathRequestEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PathRequestEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathRequestEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PathRequestEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(pathrequestevent.Table, pathrequestevent.Columns, sqlgraph.NewFieldSpec(pathrequestevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(pathrequestevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(pathrequestevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepsPlanned(); ok {
		_spec.SetField(pathrequestevent.FieldStepsPlanned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepsPlanned(); ok {
		_spec.AddField(pathrequestevent.FieldStepsPlanned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepsReturned(); ok {
		_spec.SetField(pathrequestevent.FieldStepsReturned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepsReturned(); ok {
		_spec.AddField(pathrequestevent.FieldStepsReturned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(pathrequestevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(pathrequestevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(pathrequestevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pathrequestevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathrequestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PathRequestEventUpdateOne is the builder for updating a single PathRequestEvent entity.
type PathRequestEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PathRequestEventMutation
}

// SetTopic sets the "topic" field.
func (_u *PathRequestEventUpdateOne) SetTopic(v string) *PathRequestEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *PathRequestEventUpdateOne) SetNillableTopic(v *string) *PathRequestEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *PathRequestEventUpdateOne) SetLevel(v string) *PathRequestEventUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *PathRequestEventUpdateOne) SetNillableLevel(v *string) *PathRequestEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetStepsPlanned sets the "steps_planned" field.
func (_u *PathRequestEventUpdateOne) SetStepsPlanned(v int) *PathRequestEventUpdateOne {
	_u.mutation.ResetStepsPlanned()
	_u.mutation.SetStepsPlanned(v)
	return _u
}

// SetNillableStepsPlanned sets the "steps_planned" field if the given value is not nil.
func (_u *PathRequestEventUpdateOne) SetNillableStepsPlanned(v *int) *PathRequestEventUpdateOne {
	if v != nil {
		_u.SetStepsPlanned(*v)
	}
	return _u
}

// AddStepsPlanned adds value to the "steps_planned" field.
func (_u *PathRequestEventUpdateOne) AddStepsPlanned(v int) *PathRequestEventUpdateOne {
	_u.mutation.AddStepsPlanned(v)
	return _u
}

// SetStepsReturned sets the "steps_returned" field.
func (_u *PathRequestEventUpdateOne) SetStepsReturned(v int) *PathRequestEventUpdateOne {
	_u.mutation.ResetStepsReturned()
	_u.mutation.SetStepsReturned(v)
	return _u
}

// SetNillableStepsReturned sets the "steps_returned" field if the given value is not nil.
func (_u *PathRequestEventUpdateOne) SetNillableStepsReturned(v *int) *PathRequestEventUpdateOne {
	if v != nil {
		_u.SetStepsReturned(*v)
	}
	return _u
}

// AddStepsReturned adds value to the "steps_returned" field.
func (_u *PathRequestEventUpdateOne) AddStepsReturned(v int) *PathRequestEventUpdateOne {
	_u.mutation.AddStepsReturned(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *PathRequestEventUpdateOne) SetDurationMs(v int64) *PathRequestEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *PathRequestEventUpdateOne) SetNillableDurationMs(v *int64) *PathRequestEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *PathRequestEventUpdateOne) AddDurationMs(v int64) *PathRequestEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *PathRequestEventUpdateOne) SetSuccess(v bool) *PathRequestEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *PathRequestEventUpdateOne) SetNillableSuccess(v *bool) *PathRequestEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PathRequestEventUpdateOne) SetErrorMessage(v string) *PathRequestEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PathRequestEventUpdateOne) SetNillableErrorMessage(v *string) *PathRequestEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the PathRequestEventMutation object of the builder.
func (_u *PathRequestEventUpdateOne) Mutation() *PathRequestEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PathRequestEventUpdate builder.
func (_u *PathRequestEventUpdateOne) Where(ps ...predicate.PathRequestEvent) *PathRequestEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PathRequestEventUpdateOne) Select(field string, fields ...string) *PathRequestEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PathRequestEvent entity.
func (_u *PathRequestEventUpdateOne) Save(ctx context.Context) (*PathRequestEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathRequestEventUpdateOne) SaveX(ctx context.Context) *PathRequestEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PathRequestEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathRequestEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PathRequestEventUpdateOne) sqlSave(ctx context.Context) (_node *PathRequestEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(pathrequestevent.Table, pathrequestevent.Columns, sqlgraph.NewFieldSpec(pathrequestevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PathRequestEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pathrequestevent.FieldID)
		for _, f := range fields {
			if !pathrequestevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pathrequestevent.FieldID {
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
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(pathrequestevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(pathrequestevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepsPlanned(); ok {
		_spec.SetField(pathrequestevent.FieldStepsPlanned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepsPlanned(); ok {
		_spec.AddField(pathrequestevent.FieldStepsPlanned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepsReturned(); ok {
		_spec.SetField(pathrequestevent.FieldStepsReturned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepsReturned(); ok {
		_spec.AddField(pathrequestevent.FieldStepsReturned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(pathrequestevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(pathrequestevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(pathrequestevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pathrequestevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &PathRequestEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathrequestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
