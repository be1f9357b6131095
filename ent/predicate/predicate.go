// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PathRequestEvent is the predicate function for pathrequestevent builders.
type PathRequestEvent func(*sql.Selector)
