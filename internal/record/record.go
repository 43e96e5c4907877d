// Package record provides the single field-access abstraction used by table
// rendering: an ordered list of named values built either from a struct (via
// its json tags) or from a decoded map.
package record

import (
	"reflect"
	"sort"
	"strings"
)

// Field is one named value.
type Field struct {
	Name  string
	Value any
}

// Record is an ordered, read-only collection of named values.
type Record struct {
	fields []Field
	index  map[string]int
}

// New builds a record from fields in the given order. A repeated name keeps
// its last value at its first position.
func New(fields ...Field) Record {
	r := Record{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if pos, ok := r.index[f.Name]; ok {
			r.fields[pos].Value = f.Value
			continue
		}
		r.index[f.Name] = len(r.fields)
		r.fields = append(r.fields, f)
	}
	return r
}

// FromMap builds a record from a map. Keys are ordered lexically so the
// result is deterministic.
func FromMap(m map[string]any) Record {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	fields := make([]Field, 0, len(names))
	for _, name := range names {
		fields = append(fields, Field{Name: name, Value: m[name]})
	}
	return New(fields...)
}

// Of converts a struct, struct pointer, map or Record into a Record. Any other
// value yields an empty record, which renders every column as absent.
func Of(value any) Record {
	switch v := value.(type) {
	case Record:
		return v
	case *Record:
		if v == nil {
			return Record{}
		}
		return *v
	case map[string]any:
		return FromMap(v)
	}
	rv := reflect.ValueOf(value)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Record{}
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return Record{}
	}
	switch rv.Kind() {
	case reflect.Struct:
		return New(structFields(rv)...)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Record{}
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return FromMap(m)
	default:
		return Record{}
	}
}

// List converts every element of a slice with Of.
func List[T any](items []T) []Record {
	if len(items) == 0 {
		return nil
	}
	out := make([]Record, 0, len(items))
	for _, item := range items {
		out = append(out, Of(item))
	}
	return out
}

// Get returns the value stored under name.
func (r Record) Get(name string) (any, bool) {
	pos, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.fields[pos].Value, true
}

// Names lists field names in record order.
func (r Record) Names() []string {
	names := make([]string, 0, len(r.fields))
	for _, f := range r.fields {
		names = append(names, f.Name)
	}
	return names
}

// Fields returns a copy of the ordered fields.
func (r Record) Fields() []Field {
	return append([]Field(nil), r.fields...)
}

// Len reports the number of fields.
func (r Record) Len() int {
	return len(r.fields)
}

func structFields(rv reflect.Value) []Field {
	rt := rv.Type()
	fields := make([]Field, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		fv := rv.Field(i)
		if sf.Anonymous && name == "" {
			inner := fv
			for inner.Kind() == reflect.Pointer {
				if inner.IsNil() {
					break
				}
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				fields = append(fields, structFields(inner)...)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		fields = append(fields, Field{Name: name, Value: fv.Interface()})
	}
	return fields
}
