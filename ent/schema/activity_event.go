package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityEvent records one learner action within a session.
type ActivityEvent struct {
	ent.Schema
}

func (ActivityEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ActivityEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session the action belongs to"),
		field.String("username").
			Default("").
			Comment("Handle of the user logged in at the time"),
		field.String("action").
			NotEmpty().
			Comment("login, logout, lesson_completed, code_run, solution_submitted, project_started or project_completed"),
		field.String("subject_kind").
			Default("").
			Comment("lesson, problem or project"),
		field.Int("subject_id").
			Default(0).
			Comment("ID of the subject entity"),
		field.String("detail").
			Default("").
			Comment("Subject title at the time of the action"),
	}
}

func (ActivityEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "seq"),
	}
}
