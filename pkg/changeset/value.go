// Package changeset models arbitrary-shape entity snapshots as ordered field
// maps over a small tagged value union, and computes minimal field-level diffs
// between two snapshots using structural equality.
package changeset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Kind is the tag of a Value
type Kind uint8

const (
	// KindMissing marks a key that is absent on one side of a diff
	KindMissing Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = map[Kind]string{
	KindMissing: "missing",
	KindNull:    "null",
	KindBool:    "bool",
	KindNumber:  "number",
	KindString:  "string",
	KindArray:   "array",
	KindObject:  "object",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a JSON-like tagged union. The zero Value is Missing.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  []Value
	obj  Object
}

// Missing returns the "absent key" value
func Missing() Value { return Value{kind: KindMissing} }

// Null returns the null value
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a number
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// String wraps a string
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array wraps a list of values
func Array(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindArray, arr: cp}
}

// Nested wraps an object as a value
func Nested(o Object) Value { return Value{kind: KindObject, obj: o.Clone()} }

// Kind returns the tag of the value
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the value marks an absent key
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// AsBool returns the boolean payload
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsNumber returns the numeric payload
func (v Value) AsNumber() (float64, bool) { return v.n, v.kind == KindNumber }

// AsString returns the string payload
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsArray returns a copy of the array payload
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	cp := make([]Value, len(v.arr))
	copy(cp, v.arr)
	return cp, true
}

// AsObject returns a copy of the object payload
func (v Value) AsObject() (Object, bool) {
	if v.kind != KindObject {
		return Object{}, false
	}
	return v.obj.Clone(), true
}

// Equal reports structural equality. Objects are compared by key set and
// per-key value regardless of field order; arrays element by element.
// Missing and Null are distinct.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindMissing, KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.n == b.n || (math.IsNaN(a.n) && math.IsNaN(b.n))
	case KindString:
		return a.s == b.s
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		for _, f := range a.obj.fields {
			other, ok := b.obj.Get(f.Key)
			if !ok || !Equal(f.Value, other) {
				return false
			}
		}
		return true
	}
	return false
}

// MarshalJSON encodes the value. Missing is written as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindMissing, KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(v.b)
	case KindNumber:
		if math.IsNaN(v.n) || math.IsInf(v.n, 0) {
			return nil, fmt.Errorf("changeset: number %v is not representable in JSON", v.n)
		}
		return json.Marshal(v.n)
	case KindString:
		return json.Marshal(v.s)
	case KindArray:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			raw, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(raw)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case KindObject:
		return v.obj.MarshalJSON()
	}
	return nil, fmt.Errorf("changeset: unknown kind %s", v.kind)
}

// UnmarshalJSON decodes any JSON value preserving object key order
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	decoded, err := decodeValue(dec)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, fmt.Errorf("changeset: decode: %w", err)
	}

	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("changeset: decode number %q: %w", t, err)
		}
		return Number(n), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '[':
			items := make([]Value, 0)
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, fmt.Errorf("changeset: decode array end: %w", err)
			}
			return Value{kind: KindArray, arr: items}, nil
		case '{':
			obj, err := decodeObjectBody(dec)
			if err != nil {
				return Value{}, err
			}
			return Value{kind: KindObject, obj: obj}, nil
		}
	}
	return Value{}, fmt.Errorf("changeset: unexpected token %v", tok)
}

// decodeObjectBody reads object members after the opening '{' has been consumed
func decodeObjectBody(dec *json.Decoder) (Object, error) {
	var obj Object
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Object{}, fmt.Errorf("changeset: decode key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return Object{}, fmt.Errorf("changeset: object key must be a string, got %v", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return Object{}, err
		}
		obj.Set(key, val)
	}
	if _, err := dec.Token(); err != nil {
		return Object{}, fmt.Errorf("changeset: decode object end: %w", err)
	}
	return obj, nil
}

// FromAny converts an arbitrary Go value into a Value. Maps with string keys
// are converted with sorted keys; structs and other types go through their
// JSON encoding, so json tags decide field names.
func FromAny(in interface{}) (Value, error) {
	switch t := in.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case Object:
		return Nested(t), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case int:
		return Number(float64(t)), nil
	case int32:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case float32:
		return Number(float64(t)), nil
	case float64:
		return Number(t), nil
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("changeset: number %q: %w", t, err)
		}
		return Number(n), nil
	case []interface{}:
		items := make([]Value, 0, len(t))
		for _, item := range t {
			v, err := FromAny(item)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return Value{kind: KindArray, arr: items}, nil
	case map[string]interface{}:
		obj, err := ObjectFromMap(t)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindObject, obj: obj}, nil
	}

	raw, err := json.Marshal(in)
	if err != nil {
		return Value{}, fmt.Errorf("changeset: marshal %T: %w", in, err)
	}
	var v Value
	if err := v.UnmarshalJSON(raw); err != nil {
		return Value{}, err
	}
	return v, nil
}

// ObjectFromMap builds an Object from a map, ordering keys alphabetically
func ObjectFromMap(m map[string]interface{}) (Object, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var obj Object
	for _, k := range keys {
		v, err := FromAny(m[k])
		if err != nil {
			return Object{}, fmt.Errorf("changeset: field %q: %w", k, err)
		}
		obj.Set(k, v)
	}
	return obj, nil
}
