// Package orm is the small mapping runtime that generated table
// definitions compile against. A Registry owns an ordered set of table
// mappings; generated code registers tables with MustTable and services
// read table and column metadata back out of it.
package orm

import "fmt"

// Kind identifies a mapping-layer column type.
type Kind string

const (
	KindString     Kind = "String"
	KindBigInteger Kind = "BigInteger"
	KindNumeric    Kind = "Numeric"
	KindDate       Kind = "Date"
	KindDateTime   Kind = "DateTime"
	KindBoolean    Kind = "Boolean"
)

// Type describes a column type with its optional size parameters.
type Type struct {
	Kind      Kind
	Size      int // sized strings, 0 = unbounded
	Precision int
	Scale     int
}

// String returns a string type, optionally sized: String(50).
func String(size ...int) Type {
	t := Type{Kind: KindString}
	if len(size) > 0 {
		t.Size = size[0]
	}
	return t
}

// Numeric returns a fixed-point numeric type: Numeric(15, 4).
func Numeric(args ...int) Type {
	t := Type{Kind: KindNumeric}
	if len(args) > 0 {
		t.Precision = args[0]
	}
	if len(args) > 1 {
		t.Scale = args[1]
	}
	return t
}

func BigInteger() Type { return Type{Kind: KindBigInteger} }
func Date() Type       { return Type{Kind: KindDate} }
func DateTime() Type   { return Type{Kind: KindDateTime} }
func Boolean() Type    { return Type{Kind: KindBoolean} }

// ColumnSpec binds one struct field to one table column.
type ColumnSpec struct {
	Name    string
	Type    Type
	Primary bool
	// Required mirrors NOT NULL. Primary key columns are always required.
	Required bool
	// Default holds a verbatim default expression, "" means none.
	Default string
	// Now marks the current-timestamp default recognized by the runtime.
	Now bool
}

// ColumnOption configures a ColumnSpec.
type ColumnOption func(*ColumnSpec)

// Column builds a column binding for a table registration.
func Column(name string, t Type, opts ...ColumnOption) ColumnSpec {
	c := ColumnSpec{Name: name, Type: t}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// PrimaryKey marks the column as part of the table's primary key.
func PrimaryKey() ColumnOption {
	return func(c *ColumnSpec) {
		c.Primary = true
		c.Required = true
	}
}

// NotNull marks the column as non-nullable.
func NotNull() ColumnOption {
	return func(c *ColumnSpec) { c.Required = true }
}

// Default attaches a verbatim default expression.
func Default(expr string) ColumnOption {
	return func(c *ColumnSpec) { c.Default = expr }
}

// DefaultNow attaches the current-timestamp default marker.
func DefaultNow() ColumnOption {
	return func(c *ColumnSpec) { c.Now = true }
}

// Table is one registered table mapping.
type Table struct {
	Name    string
	Columns []ColumnSpec
}

// PrimaryKey returns the primary key column names in declaration order.
func (t *Table) PrimaryKey() []string {
	var cols []string
	for _, c := range t.Columns {
		if c.Primary {
			cols = append(cols, c.Name)
		}
	}
	return cols
}

// ColumnNames returns all column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}
	return names
}

// Column returns the named column binding.
func (t *Table) Column(name string) (ColumnSpec, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnSpec{}, false
}

// Registry owns an ordered collection of table mappings. Cross-table
// features only work between tables registered on the same registry, so
// a combined module must share exactly one.
type Registry struct {
	tables []*Table
	byName map[string]*Table
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Table)}
}

// AddTable registers a table mapping. Registration order is preserved.
func (r *Registry) AddTable(name string, cols ...ColumnSpec) (*Table, error) {
	if _, dup := r.byName[name]; dup {
		return nil, fmt.Errorf("orm: table %q already registered", name)
	}
	t := &Table{Name: name, Columns: cols}
	r.tables = append(r.tables, t)
	r.byName[name] = t
	return t, nil
}

// MustTable registers a table mapping and panics on duplicates. Generated
// code uses this form in package-level var declarations.
func (r *Registry) MustTable(name string, cols ...ColumnSpec) *Table {
	t, err := r.AddTable(name, cols...)
	if err != nil {
		panic(err)
	}
	return t
}

// Tables returns every registered table in registration order.
func (r *Registry) Tables() []*Table {
	out := make([]*Table, len(r.tables))
	copy(out, r.tables)
	return out
}

// Table looks up a registered table by name.
func (r *Registry) Table(name string) (*Table, bool) {
	t, ok := r.byName[name]
	return t, ok
}
