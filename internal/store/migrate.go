package store

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent"
	entsql "entgo.io/ent/dialect/sql"
	entschema "entgo.io/ent/dialect/sql/schema"

	"github.com/abhisek/pylearn/ent/schema"
)

// primaryField is the mixin field used as the auto-increment key.
const primaryField = "seq"

// activityEventsTable describes activity_events from the ent schema, so
// the declared fields and indexes are the only definition of the table.
func activityEventsTable() *entschema.Table {
	fields := append(schema.EventMixin{}.Fields(), schema.ActivityEvent{}.Fields()...)

	t := &entschema.Table{Name: activityTable}
	byName := make(map[string]*entschema.Column, len(fields))
	for _, f := range fields {
		col := column(f)
		t.Columns = append(t.Columns, col)
		byName[col.Name] = col
		if col.Name == primaryField {
			t.PrimaryKey = []*entschema.Column{col}
		}
	}

	for _, idx := range (schema.ActivityEvent{}).Indexes() {
		d := idx.Descriptor()
		ix := &entschema.Index{
			Name:   "activityevent_" + strings.Join(d.Fields, "_"),
			Unique: d.Unique,
		}
		for _, name := range d.Fields {
			ix.Columns = append(ix.Columns, byName[name])
		}
		t.Indexes = append(t.Indexes, ix)
	}
	return t
}

func column(f ent.Field) *entschema.Column {
	d := f.Descriptor()
	col := &entschema.Column{
		Name:     d.Name,
		Type:     d.Info.Type,
		Nullable: d.Optional,
		Default:  d.Default,
	}
	if d.Name == primaryField {
		col.Increment = true
	} else {
		col.Unique = d.Unique
	}
	return col
}

// migrate creates or updates the journal tables.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	m, err := entschema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	return m.Create(ctx, activityEventsTable())
}
