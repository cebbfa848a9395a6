package store

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entschema "github.com/abhisek/mathdrill/ent/schema"
)

const (
	analyticsEventsTable = "analytics_events"
	answerEventsTable    = "answer_events"
	sessionEventsTable   = "session_events"
)

// entity binds an ent schema definition to the table it is stored in.
type entity struct {
	label  string
	table  string
	schema ent.Interface
}

var entities = []entity{
	{label: "analyticsevent", table: analyticsEventsTable, schema: entschema.AnalyticsEvent{}},
	{label: "answerevent", table: answerEventsTable, schema: entschema.AnswerEvent{}},
	{label: "sessionevent", table: sessionEventsTable, schema: entschema.SessionEvent{}},
}

// Tables builds the migration tables from the ent schema definitions.
// Mixin fields come first, after the auto-increment id column, and index
// names follow ent's "<type>_<field>" convention.
func Tables() ([]*schema.Table, error) {
	tables := make([]*schema.Table, 0, len(entities))
	for _, e := range entities {
		t, err := tableFor(e)
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", e.table, err)
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func tableFor(e entity) (*schema.Table, error) {
	var (
		fields  []ent.Field
		indexes []ent.Index
	)
	for _, m := range e.schema.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, e.schema.Fields()...)
	indexes = append(indexes, e.schema.Indexes()...)

	id := &schema.Column{Name: "id", Type: field.TypeInt, Increment: true}
	t := schema.NewTable(e.table).AddPrimary(id)

	for _, f := range fields {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("field %s: %w", d.Name, d.Err)
		}
		col := &schema.Column{
			Name:     d.Name,
			Type:     d.Info.Type,
			Unique:   d.Unique,
			Nullable: d.Optional,
		}
		// Function defaults like time.Now are applied by the writer.
		if d.Default != nil && reflect.TypeOf(d.Default).Kind() != reflect.Func {
			col.Default = d.Default
		}
		t.AddColumn(col)
	}

	for _, ix := range indexes {
		d := ix.Descriptor()
		for _, name := range d.Fields {
			if !t.HasColumn(name) {
				return nil, fmt.Errorf("index on unknown field %q", name)
			}
		}
		name := d.StorageKey
		if name == "" {
			name = e.label + "_" + strings.Join(d.Fields, "_")
		}
		t.AddIndex(name, d.Unique, d.Fields)
	}
	return t, nil
}

// migrate creates or updates all event tables.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	tables, err := Tables()
	if err != nil {
		return err
	}
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("new migrate: %w", err)
	}
	return m.Create(ctx, tables...)
}

// builder returns an ent SQL builder for the SQLite dialect.
func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}
