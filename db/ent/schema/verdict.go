package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Verdict struct{ ent.Schema }

func (Verdict) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "verdict"},
	}
}

func (Verdict) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		field.String("rule").NotEmpty(),
		field.String("severity").NotEmpty(),
		field.Bool("passed"),
		field.String("detail").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Verdict) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("verdicts").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (Verdict) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "rule"),
	}
}
