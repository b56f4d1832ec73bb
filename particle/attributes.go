// Package particle owns the columnar attribute store and the System
// aggregate built on top of it: the per-particle state (position, velocity,
// mass, mobility, and any user attribute) plus the registered force fields
// that act on it.
//
// The attribute table is grounded on
// _examples/original_source/include/md/detail/attribute_table.hpp, which
// keys columns by a compile-time tag type via a type-hash trick. Go has no
// direct equivalent of that template trick, but Go generics give a cleaner
// one: an Attribute[T] carries both a unique identity and its own type
// parameter, so the compiler — not a runtime type assertion — already
// rejects "view this mass column as a velocity column" at the call site.
package particle

// attrID is the runtime identity of an attribute key. Two Attribute values
// never alias unless they share the same *attrID.
type attrID struct {
	name string
}

// Attribute is a typed key for a particle attribute: T is the value type,
// name is used only for diagnostics, and def is the value new columns (or
// new particles) are filled with.
type Attribute[T any] struct {
	id  *attrID
	def T
}

// NewAttribute creates a fresh attribute key with the given default value.
// Each call returns a distinct key, even if name is reused.
func NewAttribute[T any](name string, def T) Attribute[T] {
	return Attribute[T]{id: &attrID{name: name}, def: def}
}

type column interface {
	resize(n int)
}

type typedColumn[T any] struct {
	data []T
	def  T
}

func (c *typedColumn[T]) resize(n int) {
	if n <= len(c.data) {
		c.data = c.data[:n]
		return
	}
	grown := make([]T, n)
	copy(grown, c.data)
	for i := len(c.data); i < n; i++ {
		grown[i] = c.def
	}
	c.data = grown
}

// Table is a columnar store of per-particle attributes. All columns are
// resized in lockstep so they always hold exactly Size() elements.
type Table struct {
	size    int
	columns map[*attrID]column
}

// NewTable creates an empty attribute table.
func NewTable() *Table {
	return &Table{columns: map[*attrID]column{}}
}

// Size returns the number of elements held by every column.
func (t *Table) Size() int {
	return t.size
}

// Resize resizes every column to n elements, filling any new slots with
// that column's default value.
func (t *Table) Resize(n int) {
	for _, c := range t.columns {
		c.resize(n)
	}
	t.size = n
}

// Require creates a column for attr if it does not already exist. Existing
// particles get attr's default value; it is idempotent.
func Require[T any](t *Table, attr Attribute[T]) {
	if _, ok := t.columns[attr.id]; ok {
		return
	}
	col := &typedColumn[T]{def: attr.def}
	col.resize(t.size)
	t.columns[attr.id] = col
}

// View returns a mutable dense view of attr's column, aliasing the table's
// storage. Looking up an attribute that was never Require'd is a
// programming error and panics, per spec.md 4.3.
func View[T any](t *Table, attr Attribute[T]) []T {
	c, ok := t.columns[attr.id]
	if !ok {
		panic("particle: unregistered attribute " + attr.id.name)
	}
	tc, ok := c.(*typedColumn[T])
	if !ok {
		// Can only happen if a map collision occurs across incompatible
		// instantiations, which attrID identity rules out; kept as a
		// defensive fatal rather than a silent wrong-type read.
		panic("particle: type mismatch for attribute " + attr.id.name)
	}
	return tc.data
}
