package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// Unit is the payload of a union case that is encoded as a bare string.
type Unit struct{}

var ErrEmptyUnion = errors.New("union has no variant set")

type UnknownVariantError struct {
	Type    string
	Variant string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("%s: unknown variant %q", e.Type, e.Variant)
}

// Varianter is implemented by every union type of the package.
type Varianter interface {
	Variant() string
}

type unionCase struct {
	name  string
	index int
	unit  bool
}

type unionInfo struct {
	cases  []unionCase
	byName map[string]int
}

var unionCache sync.Map

var unitType = reflect.TypeOf(Unit{})

func describeUnion(t reflect.Type) *unionInfo {
	if cached, ok := unionCache.Load(t); ok {
		return cached.(*unionInfo)
	}

	info := &unionInfo{byName: make(map[string]int, t.NumField())}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, ok := f.Tag.Lookup("variant")
		if !ok || f.Type.Kind() != reflect.Pointer {
			continue
		}

		info.byName[name] = len(info.cases)
		info.cases = append(info.cases, unionCase{
			name:  name,
			index: i,
			unit:  f.Type.Elem() == unitType,
		})
	}

	unionCache.Store(t, info)
	return info
}

// marshalUnion encodes an externally tagged union: unit cases as "Name",
// the others as {"Name": payload}.
func marshalUnion(v any) ([]byte, error) {
	rv := reflect.Indirect(reflect.ValueOf(v))
	info := describeUnion(rv.Type())

	for _, c := range info.cases {
		field := rv.Field(c.index)
		if field.IsNil() {
			continue
		}

		if c.unit {
			return json.Marshal(c.name)
		}

		payload, err := json.Marshal(field.Interface())
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", rv.Type().Name(), c.name, err)
		}

		return json.Marshal(map[string]json.RawMessage{c.name: payload})
	}

	return nil, fmt.Errorf("%s: %w", rv.Type().Name(), ErrEmptyUnion)
}

func unmarshalUnion(data []byte, v any) error {
	rv := reflect.ValueOf(v).Elem()
	typeName := rv.Type().Name()
	info := describeUnion(rv.Type())

	var (
		name    string
		payload json.RawMessage
	)

	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &name); err != nil {
			return fmt.Errorf("%s: %w", typeName, err)
		}
	} else {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(data, &obj); err != nil {
			return fmt.Errorf("%s: %w", typeName, err)
		}
		if len(obj) != 1 {
			return fmt.Errorf("%s: expected exactly one variant key, got %d", typeName, len(obj))
		}
		for k, p := range obj {
			name, payload = k, p
		}
	}

	idx, ok := info.byName[name]
	if !ok {
		return &UnknownVariantError{Type: typeName, Variant: name}
	}
	c := info.cases[idx]

	if payload == nil && !c.unit {
		return fmt.Errorf("%s: variant %s requires a payload", typeName, name)
	}

	rv.Set(reflect.Zero(rv.Type()))
	field := rv.Field(c.index)
	ptr := reflect.New(field.Type().Elem())
	if !c.unit {
		if err := json.Unmarshal(payload, ptr.Interface()); err != nil {
			return fmt.Errorf("%s.%s: %w", typeName, name, err)
		}
	}
	field.Set(ptr)

	return nil
}

func unionVariant(v any) string {
	rv := reflect.Indirect(reflect.ValueOf(v))
	info := describeUnion(rv.Type())

	for _, c := range info.cases {
		if !rv.Field(c.index).IsNil() {
			return c.name
		}
	}

	return ""
}

// UnionVariants lists the case names of an externally tagged union type in
// declaration order.
func UnionVariants(v any) []string {
	info := describeUnion(reflect.Indirect(reflect.ValueOf(v)).Type())
	out := make([]string, 0, len(info.cases))
	for _, c := range info.cases {
		out = append(out, c.name)
	}
	return out
}

// mergeObjects encodes every part as a JSON object and merges their keys,
// later parts winning.
func mergeObjects(parts ...any) ([]byte, error) {
	merged := make(map[string]json.RawMessage)
	for _, part := range parts {
		if part == nil {
			continue
		}

		raw, err := json.Marshal(part)
		if err != nil {
			return nil, err
		}

		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, fmt.Errorf("could not flatten %T: %w", part, err)
		}
		for k, v := range obj {
			merged[k] = v
		}
	}

	return json.Marshal(merged)
}
