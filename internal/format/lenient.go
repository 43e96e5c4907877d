package format

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"aiss/internal/formatting"
)

// fieldCache maps struct types to their json field types, keyed by json name.
var fieldCache sync.Map

// conform loosens a decoded document so it fits the field kinds of t.
// Completion services often quote numbers or write 3.0 for an integer:
//   - integer fields accept numeric strings and integral floats;
//   - float fields accept numeric strings;
//   - string fields accept numbers and booleans;
//   - bool fields accept "true"/"false".
//
// Blank strings on numeric fields become absent. Anything else that still does
// not fit is left alone so json.Unmarshal reports it.
func conform(value any, t reflect.Type) any {
	if value == nil || t == nil {
		return value
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Struct:
		doc, ok := value.(map[string]any)
		if !ok {
			return value
		}
		fields := jsonFields(t)
		out := make(map[string]any, len(doc))
		for key, item := range doc {
			if ft, ok := fields[key]; ok {
				out[key] = conform(item, ft)
			} else {
				out[key] = item
			}
		}
		return out
	case reflect.Slice, reflect.Array:
		items, ok := value.([]any)
		if !ok {
			return value
		}
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = conform(item, t.Elem())
		}
		return out
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return conformInteger(value)
	case reflect.Float32, reflect.Float64:
		return conformFloat(value)
	case reflect.String:
		switch v := value.(type) {
		case json.Number:
			return v.String()
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			return strconv.FormatBool(v)
		}
	case reflect.Bool:
		if s, ok := value.(string); ok {
			if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
				return b
			}
		}
	}
	return value
}

func conformInteger(value any) any {
	switch v := value.(type) {
	case json.Number:
		if _, err := v.Int64(); err == nil {
			return v
		}
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
	case float64:
	default:
		return value
	}
	n, err := formatting.CoerceNumeric(value)
	if err != nil || n != math.Trunc(n) || math.Abs(n) >= 1<<63 {
		return value
	}
	return json.Number(strconv.FormatInt(int64(n), 10))
}

func conformFloat(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := formatting.CoerceNumeric(s)
	if err != nil {
		return value
	}
	return json.Number(strconv.FormatFloat(n, 'f', -1, 64))
}

// jsonFields lists the json-visible fields of t, flattening untagged
// embedded structs the way encoding/json does.
func jsonFields(t reflect.Type) map[string]reflect.Type {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.(map[string]reflect.Type)
	}
	out := make(map[string]reflect.Type)
	collectFields(t, out)
	fieldCache.Store(t, out)
	return out
}

func collectFields(t reflect.Type, out map[string]reflect.Type) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if sf.Anonymous && name == "" {
			inner := sf.Type
			if inner.Kind() == reflect.Pointer {
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				collectFields(inner, out)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		if _, seen := out[name]; !seen {
			out[name] = sf.Type
		}
	}
}
