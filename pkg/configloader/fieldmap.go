package configloader

import (
	"fmt"
	"reflect"
)

// A Setter checks that a value fits its field and returns the write to
// perform. Nothing is written until commit is called, which lets Load reject
// a file before touching the target. A nil commit with a nil error means
// there is nothing to write.
type Setter func(Value) (commit func(), err error)

// Mapper is implemented by targets that publish their own field table
// instead of relying on reflection.
type Mapper interface {
	ConfigFields() *FieldMap
}

// FieldMap is one level of a field table. Keys not found on a level are
// looked up on its parent, mirroring a type and its ancestors.
type FieldMap struct {
	name   string
	fields map[string]Setter
	parent *FieldMap
}

// NewFieldMap creates an empty level. parent may be nil.
func NewFieldMap(name string, parent *FieldMap) *FieldMap {
	return &FieldMap{
		name:   name,
		fields: make(map[string]Setter),
		parent: parent,
	}
}

// Set registers the setter for key on this level, replacing any previous one.
func (m *FieldMap) Set(key string, setter Setter) *FieldMap {
	m.fields[key] = setter
	return m
}

// Name returns the level's name, used in binding errors.
func (m *FieldMap) Name() string {
	return m.name
}

// Parent returns the next level up, or nil at the top.
func (m *FieldMap) Parent() *FieldMap {
	return m.parent
}

// Len returns the number of keys declared on this level only.
func (m *FieldMap) Len() int {
	return len(m.fields)
}

// Lookup walks from this level up through its parents and returns the first
// setter registered for key together with the name of the level that held it.
func (m *FieldMap) Lookup(key string) (Setter, string, bool) {
	for level := m; level != nil; level = level.parent {
		if setter, ok := level.fields[key]; ok {
			return setter, level.name, true
		}
	}
	return nil, "", false
}

// Bind returns a Setter writing into *p with the same conversion rules used
// for reflected struct fields.
func Bind[T any](p *T) Setter {
	if p == nil {
		panic(fmt.Sprintf("configloader: Bind called with nil %T", p))
	}
	return fieldSetter(reflect.ValueOf(p).Elem())
}
