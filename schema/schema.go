// Package schema holds the finished entity/query model that the upstream
// analysis phase hands to the code generator. Parsing, import resolution and
// type inference all happen upstream; by the time a Model reaches quill it
// is a plain, fully resolved description of what to generate.
//
// The structs carry msgpack tags because a Model can be frozen into a
// versioned snapshot (see compiler/snapshot) and generated against later.
package schema

// A Model is one generation input: the entities and queries of one source
// module, plus the module identifier generated units belong to.
type Model struct {
	// Module identifies the logical module the model was analyzed from,
	// e.g. "app/db". Non-modular generation emits one unit with this id.
	Module   string    `msgpack:"module"`
	Entities []*Entity `msgpack:"entities"`
}

// Entity lookups are by declared name.
func (m *Model) Entity(name string) *Entity {
	for _, e := range m.Entities {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// An Entity is one table-backed declaration: its fields, its queries, and
// optionally a user-authored substitute for the generated data-holder type.
type Entity struct {
	// Name is the declared entity name, as written in the source schema.
	Name string `msgpack:"name"`
	// Table is the backing table name. Empty means derive from Name.
	Table string `msgpack:"table,omitempty"`
	// Fields in declaration order.
	Fields []*Field `msgpack:"fields"`
	// Queries declared against this entity, in declaration order.
	Queries []*Query `msgpack:"queries,omitempty"`
	// ExistingType names a user-authored data-holder type to use instead
	// of a generated one. Nil when the user declared none.
	ExistingType *ExistingType `msgpack:"existing_type,omitempty"`
}

// An ExistingType points at a user-authored data-holder declaration in some
// module of the user's codebase.
type ExistingType struct {
	Module string `msgpack:"module"`
	Name   string `msgpack:"name"`
}

// A Field is one resolved column of an entity.
type Field struct {
	// Name is the declared field name.
	Name string `msgpack:"name"`
	// Type is the target-language type of the data-holder field, already
	// resolved by the upstream type-conversion rules.
	Type string `msgpack:"type"`
	// TypeModule is the origin module of Type when it is a named type
	// rather than a builtin. Empty for builtins.
	TypeModule string `msgpack:"type_module,omitempty"`
	// Nullable reports whether the column admits NULL.
	Nullable bool `msgpack:"nullable,omitempty"`
	// PrimaryKey reports whether the column is part of the primary key.
	PrimaryKey bool `msgpack:"primary_key,omitempty"`
}

// A Query is one resolved statement declared against an entity.
type Query struct {
	// Name is the declared query name; the generated method is named
	// after it.
	Name string `msgpack:"name"`
	// SQL is the statement text shared by all dialects.
	SQL string `msgpack:"sql"`
	// DialectSQL overrides SQL for specific dialects, keyed by dialect
	// name.
	DialectSQL map[string]string `msgpack:"dialect_sql,omitempty"`
}

// StatementFor returns the statement text for the given dialect, falling
// back to the shared text when no override exists.
func (q *Query) StatementFor(dialect string) string {
	if s, ok := q.DialectSQL[dialect]; ok {
		return s
	}
	return q.SQL
}
