// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/learnlens/learnlens/ent/llmrequestevent"
	"github.com/learnlens/learnlens/ent/pathrequestevent"
	"github.com/learnlens/learnlens/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	pathrequesteventMixin := schema.PathRequestEvent{}.Mixin()
	pathrequesteventMixinFields0 := pathrequesteventMixin[0].Fields()
	_ = pathrequesteventMixinFields0
	pathrequesteventFields := schema.PathRequestEvent{}.Fields()
	_ = pathrequesteventFields
	// pathrequesteventDescTimestamp is the schema descriptor for timestamp field.
	pathrequesteventDescTimestamp := pathrequesteventMixinFields0[1].Descriptor()
	// pathrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	pathrequestevent.DefaultTimestamp = pathrequesteventDescTimestamp.Default.(func() time.Time)
	// pathrequesteventDescStepsPlanned is the schema descriptor for steps_planned field.
	pathrequesteventDescStepsPlanned := pathrequesteventFields[2].Descriptor()
	// pathrequestevent.DefaultStepsPlanned holds the default value on creation for the steps_planned field.
	pathrequestevent.DefaultStepsPlanned = pathrequesteventDescStepsPlanned.Default.(int)
	// pathrequesteventDescStepsReturned is the schema descriptor for steps_returned field.
	pathrequesteventDescStepsReturned := pathrequesteventFields[3].Descriptor()
	// pathrequestevent.DefaultStepsReturned holds the default value on creation for the steps_returned field.
	pathrequestevent.DefaultStepsReturned = pathrequesteventDescStepsReturned.Default.(int)
	// pathrequesteventDescDurationMs is the schema descriptor for duration_ms field.
	pathrequesteventDescDurationMs := pathrequesteventFields[4].Descriptor()
	// pathrequestevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	pathrequestevent.DefaultDurationMs = pathrequesteventDescDurationMs.Default.(int64)
	// pathrequesteventDescErrorMessage is the schema descriptor for error_message field.
	pathrequesteventDescErrorMessage := pathrequesteventFields[6].Descriptor()
	// pathrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	pathrequestevent.DefaultErrorMessage = pathrequesteventDescErrorMessage.Default.(string)
}
