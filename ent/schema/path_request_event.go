package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PathRequestEvent records one end-to-end learning-path construction,
// whether served over HTTP or from the CLI.
type PathRequestEvent struct {
	ent.Schema
}

func (PathRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PathRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic"),
		field.String("level").
			Comment("Requested learner level, as received"),
		field.Int("steps_planned").
			Default(0).
			Comment("Roadmap length from the planner, normally 3"),
		field.Int("steps_returned").
			Default(0).
			Comment("Steps in the final path after discovery skips"),
		field.Int64("duration_ms").
			Default(0),
		field.Bool("success").
			Comment("False only for orchestrator-fatal failures"),
		field.String("error_message").
			Default(""),
	}
}

func (PathRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
		index.Fields("success"),
	}
}
