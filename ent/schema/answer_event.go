package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single scored answer within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("mode").
			NotEmpty().
			Comment("multiplication, division, order or fractions"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.String("expected_answer").
			NotEmpty().
			Comment("The canonical correct answer"),
		field.String("learner_answer").
			NotEmpty().
			Comment("What the learner entered, normalized"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("mode"),
	}
}
