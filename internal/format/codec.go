package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"aiss/internal/services"
)

// ToMap converts an instance into plain nested maps, slices and scalars. The
// context hint is not part of the result.
func ToMap(inst Instance) (map[string]any, error) {
	data, err := json.Marshal(inst)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "format", "to map", "encode instance", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, services.Wrap(services.ErrValidation, "format", "to map", "decode instance", err)
	}
	return out, nil
}

// FromMap builds a fresh instance of d from a map produced by ToMap or by a
// decoded document. Unknown keys are ignored.
func FromMap(d Descriptor, m map[string]any) (Instance, error) {
	if d.New == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, d.ID)
	}
	inst := d.New()
	data, err := json.Marshal(conform(m, reflect.TypeOf(inst)))
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "format", "from map", "encode map", err)
	}
	if err := json.Unmarshal(data, inst); err != nil {
		return nil, services.Wrap(services.ErrValidation, "format", "from map", string(d.ID), err)
	}
	return inst, nil
}

// FromJSON decodes a JSON object into a fresh instance of d. Quoted and
// float-formatted numbers are accepted where the record expects integers.
func FromJSON(d Descriptor, data []byte) (Instance, error) {
	if d.New == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, d.ID)
	}
	inst := d.New()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err == nil {
		if normalised, err := json.Marshal(conform(doc, reflect.TypeOf(inst))); err == nil {
			data = normalised
		}
	}
	if err := json.Unmarshal(data, inst); err != nil {
		return nil, services.Wrap(services.ErrValidation, "format", "from json", string(d.ID), err)
	}
	return inst, nil
}

// OutputInstructions describes the JSON document expected for d, as a
// skeleton object listing every key with an empty value of the right shape.
func OutputInstructions(d Descriptor) string {
	if d.New == nil {
		return ""
	}
	skeleton, err := json.MarshalIndent(Skeleton(d.New()), "", "  ")
	if err != nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("Respond with a single JSON object that uses exactly this structure. ")
	b.WriteString("Use empty strings, 0, null or [] for anything unknown and keep lists in order of importance.\n")
	b.Write(skeleton)
	return b.String()
}

// Skeleton returns an empty example value with the shape of v's json encoding.
// Slices of structs contain one example element.
func Skeleton(v any) any {
	return skeletonOf(reflect.TypeOf(v), 0)
}

func skeletonOf(t reflect.Type, depth int) any {
	if t == nil || depth > 6 {
		return nil
	}
	switch t.Kind() {
	case reflect.Pointer:
		if t.Elem().Kind() == reflect.Struct {
			return skeletonOf(t.Elem(), depth+1)
		}
		return nil
	case reflect.Struct:
		out := make(map[string]any)
		collectSkeleton(t, depth, out)
		return out
	case reflect.Slice, reflect.Array:
		elem := t.Elem()
		for elem.Kind() == reflect.Pointer {
			elem = elem.Elem()
		}
		if elem.Kind() == reflect.Struct {
			return []any{skeletonOf(elem, depth+1)}
		}
		return []any{}
	case reflect.String:
		return ""
	case reflect.Bool:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return 0
	default:
		return nil
	}
}

func collectSkeleton(t reflect.Type, depth int, out map[string]any) {
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
				collectSkeleton(inner, depth, out)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		out[name] = skeletonOf(sf.Type, depth+1)
	}
}
