package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
)

// EventMixin provides the base fields shared by journal entities:
// a global sequence number and a nanosecond timestamp.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("seq").
			Unique().
			Immutable().
			Comment("Monotonically increasing global sequence number"),
		field.Int64("created_at").
			Immutable().
			Comment("Unix nanoseconds of the event"),
	}
}
