package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalyticsEvent records a named interaction such as a mode switch.
type AnalyticsEvent struct {
	ent.Schema
}

func (AnalyticsEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnalyticsEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("Session the event belongs to"),
		field.String("name").
			NotEmpty().
			Comment("Event name, e.g. select_math_mode"),
		field.String("params").
			Default("{}").
			Comment("JSON object of string parameters"),
	}
}

func (AnalyticsEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
