// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/learnlens/learnlens/ent/pathrequestevent"
)

// PathRequestEventCreate is the builder for creating a PathRequestEvent entity.
type PathRequestEventCreate struct {
	config
	mutation *PathRequestEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PathRequestEventCreate) SetSequence(v int64) *PathRequestEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PathRequestEventCreate) SetTimestamp(v time.Time) *PathRequestEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PathRequestEventCreate) SetNillableTimestamp(v *time.Time) *PathRequestEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *PathRequestEventCreate) SetTopic(v string) *PathRequestEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *PathRequestEventCreate) SetLevel(v string) *PathRequestEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetStepsPlanned sets the "steps_planned" field.
func (_c *PathRequestEventCreate) SetStepsPlanned(v int) *PathRequestEventCreate {
	_c.mutation.SetStepsPlanned(v)
	return _c
}

// SetNillableStepsPlanned sets the "steps_planned" field if the given value is not nil.
func (_c *PathRequestEventCreate) SetNillableStepsPlanned(v *int) *PathRequestEventCreate {
	if v != nil {
		_c.SetStepsPlanned(*v)
	}
	return _c
}

// SetStepsReturned sets the "steps_returned" field.
func (_c *PathRequestEventCreate) SetStepsReturned(v int) *PathRequestEventCreate {
	_c.mutation.SetStepsReturned(v)
	return _c
}

// SetNillableStepsReturned sets the "steps_returned" field if the given value is not nil.
func (_c *PathRequestEventCreate) SetNillableStepsReturned(v *int) *PathRequestEventCreate {
	if v != nil {
		_c.SetStepsReturned(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *PathRequestEventCreate) SetDurationMs(v int64) *PathRequestEventCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *PathRequestEventCreate) SetNillableDurationMs(v *int64) *PathRequestEventCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *PathRequestEventCreate) SetSuccess(v bool) *PathRequestEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *PathRequestEventCreate) SetErrorMessage(v string) *PathRequestEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *PathRequestEventCreate) SetNillableErrorMessage(v *string) *PathRequestEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the PathRequestEventMutation object of the builder.
func (_c *PathRequestEventCreate) Mutation() *PathRequestEventMutation {
	return _c.mutation
}

// Save creates the PathRequestEvent in the database.
func (_c *PathRequestEventCreate) Save(ctx context.Context) (*PathRequestEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PathRequestEventCreate) SaveX(ctx context.Context) *PathRequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PathRequestEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PathRequestEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PathRequestEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := pathrequestevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.StepsPlanned(); !ok {
		v := pathrequestevent.DefaultStepsPlanned
		_c.mutation.SetStepsPlanned(v)
	}
	if _, ok := _c.mutation.StepsReturned(); !ok {
		v := pathrequestevent.DefaultStepsReturned
		_c.mutation.SetStepsReturned(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := pathrequestevent.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := pathrequestevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PathRequestEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PathRequestEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PathRequestEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "PathRequestEvent.topic"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "PathRequestEvent.level"`)}
	}
	if _, ok := _c.mutation.StepsPlanned(); !ok {
		return &ValidationError{Name: "steps_planned", err: errors.New(`ent: missing required field "PathRequestEvent.steps_planned"`)}
	}
	if _, ok := _c.mutation.StepsReturned(); !ok {
		return &ValidationError{Name: "steps_returned", err: errors.New(`ent: missing required field "PathRequestEvent.steps_returned"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "PathRequestEvent.duration_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "PathRequestEvent.success"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "PathRequestEvent.error_message"`)}
	}
	return nil
}

func (_c *PathRequestEventCreate) sqlSave(ctx context.Context) (*PathRequestEvent, error) {
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

func (_c *PathRequestEventCreate) createSpec() (*PathRequestEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PathRequestEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pathrequestevent.Table, sqlgraph.NewFieldSpec(pathrequestevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(pathrequestevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(pathrequestevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(pathrequestevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(pathrequestevent.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.StepsPlanned(); ok {
		_spec.SetField(pathrequestevent.FieldStepsPlanned, field.TypeInt, value)
		_node.StepsPlanned = value
	}
	if value, ok := _c.mutation.StepsReturned(); ok {
		_spec.SetField(pathrequestevent.FieldStepsReturned, field.TypeInt, value)
		_node.StepsReturned = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(pathrequestevent.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(pathrequestevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(pathrequestevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// PathRequestEventCreateBulk is the builder for creating many PathRequestEvent entities in bulk.
type PathRequestEventCreateBulk struct {
	config
	err      error
	builders []*PathRequestEventCreate
}

// Save creates the PathRequestEvent entities in the database.
func (_c *PathRequestEventCreateBulk) Save(ctx context.Context) ([]*PathRequestEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PathRequestEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PathRequestEventMutation)
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
func (_c *PathRequestEventCreateBulk) SaveX(ctx context.Context) []*PathRequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PathRequestEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PathRequestEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
