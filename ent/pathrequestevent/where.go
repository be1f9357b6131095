// Code generated by ent, DO NOT EDIT.

package pathrequestevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/learnlens/learnlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldEQ(FieldTopic, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldEQ(FieldLevel, v))
}

// StepsPlanned applies equality check predicate on the "steps_planned" field. It's identical to StepsPlannedEQ.
func StepsPlanned(v int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldEQ(FieldStepsPlanned, v))
}

// StepsReturned applies equality check predicate on the "steps_returned" field. It's identical to StepsReturnedEQ.
func StepsReturned(v int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldEQ(FieldStepsReturned, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldEQ(FieldDurationMs, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldEQ(FieldSuccess, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldLTE(FieldTimestamp, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldContainsFold(FieldTopic, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldContainsFold(FieldLevel, v))
}

// StepsPlannedEQ applies the EQ predicate on the "steps_planned" field.
func StepsPlannedEQ(v int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldEQ(FieldStepsPlanned, v))
}

// StepsPlannedNEQ applies the NEQ predicate on the "steps_planned" field.
func StepsPlannedNEQ(v int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldNEQ(FieldStepsPlanned, v))
}

// StepsPlannedIn applies the In predicate on the "steps_planned" field.
func StepsPlannedIn(vs ...int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldIn(FieldStepsPlanned, vs...))
}

// StepsPlannedNotIn applies the NotIn predicate on the "steps_planned" field.
func StepsPlannedNotIn(vs ...int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldNotIn(FieldStepsPlanned, vs...))
}

// StepsPlannedGT applies the GT predicate on the "steps_planned" field.
func StepsPlannedGT(v int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldGT(FieldStepsPlanned, v))
}

// StepsPlannedGTE applies the GTE predicate on the "steps_planned" field.
func StepsPlannedGTE(v int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldGTE(FieldStepsPlanned, v))
}

// StepsPlannedLT applies the LT predicate on the "steps_planned" field.
func StepsPlannedLT(v int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldLT(FieldStepsPlanned, v))
}

// StepsPlannedLTE applies the LTE predicate on the "steps_planned" field.
func StepsPlannedLTE(v int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldLTE(FieldStepsPlanned, v))
}

// StepsReturnedEQ applies the EQ predicate on the "steps_returned" field.
func StepsReturnedEQ(v int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldEQ(FieldStepsReturned, v))
}

// StepsReturnedNEQ applies the NEQ predicate on the "steps_returned" field.
func StepsReturnedNEQ(v int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldNEQ(FieldStepsReturned, v))
}

// StepsReturnedIn applies the In predicate on the "steps_returned" field.
func StepsReturnedIn(vs ...int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldIn(FieldStepsReturned, vs...))
}

// StepsReturnedNotIn applies the NotIn predicate on the "steps_returned" field.
func StepsReturnedNotIn(vs ...int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldNotIn(FieldStepsReturned, vs...))
}

// StepsReturnedGT applies the GT predicate on the "steps_returned" field.
func StepsReturnedGT(v int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldGT(FieldStepsReturned, v))
}

// StepsReturnedGTE applies the GTE predicate on the "steps_returned" field.
func StepsReturnedGTE(v int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldGTE(FieldStepsReturned, v))
}

// StepsReturnedLT applies the LT predicate on the "steps_returned" field.
func StepsReturnedLT(v int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldLT(FieldStepsReturned, v))
}

// StepsReturnedLTE applies the LTE predicate on the "steps_returned" field.
func StepsReturnedLTE(v int) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldLTE(FieldStepsReturned, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldLTE(FieldDurationMs, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PathRequestEvent) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PathRequestEvent) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PathRequestEvent) predicate.PathRequestEvent {
	return predicate.PathRequestEvent(sql.NotPredicates(p))
}
