package configloader

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
	"unsafe"
)

// structLevel describes the fields declared directly on one struct in the
// embedding chain. path locates that struct from the root.
type structLevel struct {
	name   string
	path   []int
	fields map[string]int
}

type structLayout struct {
	levels []structLevel
}

// typeCache keeps one layout per struct type so reflection over the type
// happens once.
type typeCache struct {
	mu      sync.RWMutex
	layouts map[reflect.Type]*structLayout
}

var defaultTypeCache = newTypeCache()

func newTypeCache() *typeCache {
	return &typeCache{layouts: make(map[reflect.Type]*structLayout)}
}

func (c *typeCache) layout(t reflect.Type) *structLayout {
	c.mu.RLock()
	l, ok := c.layouts[t]
	c.mu.RUnlock()
	if ok {
		return l
	}

	l = computeLayout(t)

	c.mu.Lock()
	if existing, ok := c.layouts[t]; ok {
		l = existing
	} else {
		c.layouts[t] = l
	}
	c.mu.Unlock()

	return l
}

func (c *typeCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.layouts)
}

// computeLayout lists the struct itself first, then each embedded struct
// depth-first in declaration order.
func computeLayout(t reflect.Type) *structLayout {
	layout := &structLayout{}
	visiting := make(map[reflect.Type]bool)

	var walk func(t reflect.Type, path []int)
	walk = func(t reflect.Type, path []int) {
		if visiting[t] {
			return
		}
		visiting[t] = true
		defer delete(visiting, t)

		level := structLevel{
			name:   t.String(),
			path:   path,
			fields: make(map[string]int, t.NumField()),
		}
		var embedded []reflect.StructField
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Name == "_" {
				continue
			}
			if f.Anonymous && embeddedStruct(f.Type) != nil {
				embedded = append(embedded, f)
				continue
			}
			level.fields[f.Name] = i
		}
		layout.levels = append(layout.levels, level)

		for _, f := range embedded {
			walk(embeddedStruct(f.Type), append(slices.Clone(path), f.Index...))
		}
	}
	walk(t, nil)

	return layout
}

func embeddedStruct(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	return t
}

// fieldMap materialises the layout against root, which must be an
// addressable struct. Levels behind a nil embedded pointer are skipped.
func (l *structLayout) fieldMap(root reflect.Value) *FieldMap {
	var parent *FieldMap
	for i := len(l.levels) - 1; i >= 0; i-- {
		level := l.levels[i]
		sv, err := root.FieldByIndexErr(level.path)
		if err != nil {
			continue
		}
		m := NewFieldMap(level.name, parent)
		for name, idx := range level.fields {
			m.Set(name, fieldSetter(writable(sv.Field(idx))))
		}
		parent = m
	}
	return parent
}

// writable returns a settable view of f, including unexported fields.
func writable(f reflect.Value) reflect.Value {
	if f.CanSet() {
		return f
	}
	return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
}

// fieldsFor returns the field table for target.
func fieldsFor(target any) (*FieldMap, error) {
	if m, ok := target.(Mapper); ok {
		fields := m.ConfigFields()
		if fields == nil {
			return nil, fmt.Errorf("%w: %T returned no field map", ErrInvalidTarget, target)
		}
		return fields, nil
	}

	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidTarget, target)
	}

	fields := defaultTypeCache.layout(rv.Elem().Type()).fieldMap(rv.Elem())
	if fields == nil {
		return NewFieldMap(rv.Elem().Type().String(), nil), nil
	}
	return fields, nil
}
