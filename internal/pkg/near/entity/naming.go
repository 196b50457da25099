package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// SnakeToCamel maps a wire key such as "block_hash" to "blockHash". Keys that
// do not start with a lowercase letter, such as variant tags, are returned
// as is. A segment that does not start with a letter keeps its underscore,
// so "shard_0" stays "shard_0" and CamelToSnake can reverse every result.
func SnakeToCamel(s string) string {
	if !startsLower(s) {
		return s
	}

	parts := strings.Split(s, "_")
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		if !startsLower(part) {
			b.WriteByte('_')
			b.WriteString(part)
			continue
		}
		b.WriteByte(part[0] - 'a' + 'A')
		b.WriteString(part[1:])
	}
	return b.String()
}

// CamelToSnake maps "blockHash" back to "block_hash".
func CamelToSnake(s string) string {
	if !startsLower(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			b.WriteByte('_')
			b.WriteByte(c - 'A' + 'a')
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func startsLower(s string) bool {
	return s != "" && s[0] >= 'a' && s[0] <= 'z'
}

// ConvertKeys rewrites every object key of a JSON document with fn.
func ConvertKeys(data []byte, fn func(string) string) ([]byte, error) {
	doc, err := decodeAny(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(convertKeys(doc, fn))
}

func convertKeys(v any, fn func(string) string) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fn(k)] = convertKeys(val, fn)
		}
		return out
	case []any:
		for i := range t {
			t[i] = convertKeys(t[i], fn)
		}
		return t
	}
	return v
}

// MarshalCanonical encodes v with object keys sorted, so two encoders agree
// byte for byte.
func MarshalCanonical(v any, indent bool) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	doc, err := decodeAny(raw)
	if err != nil {
		return nil, err
	}

	if indent {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

func decodeAny(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode json: %w", err)
	}
	return doc, nil
}
