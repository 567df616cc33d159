package changeset

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Field is a single key/value member of an Object
type Field struct {
	Key   string
	Value Value
}

// Object is an ordered mapping from field name to Value.
// The zero Object is empty and ready to use.
type Object struct {
	fields []Field
}

// NewObject builds an Object from fields; later duplicates overwrite earlier ones
func NewObject(fields ...Field) Object {
	var o Object
	for _, f := range fields {
		o.Set(f.Key, f.Value)
	}
	return o
}

// F is shorthand for building a Field
func F(key string, v Value) Field {
	return Field{Key: key, Value: v}
}

// ObjectOf converts a struct (or any JSON-encodable value producing an
// object) into an Object, keyed by its JSON field names
func ObjectOf(in interface{}) (Object, error) {
	v, err := FromAny(in)
	if err != nil {
		return Object{}, err
	}
	obj, ok := v.AsObject()
	if !ok {
		return Object{}, fmt.Errorf("changeset: %T does not encode to an object (got %s)", in, v.Kind())
	}
	return obj, nil
}

// Len returns the number of fields
func (o Object) Len() int { return len(o.fields) }

// Keys returns field names in insertion order
func (o Object) Keys() []string {
	keys := make([]string, len(o.fields))
	for i, f := range o.fields {
		keys[i] = f.Key
	}
	return keys
}

// Fields returns a copy of the fields in insertion order
func (o Object) Fields() []Field {
	cp := make([]Field, len(o.fields))
	copy(cp, o.fields)
	return cp
}

// Get returns the value for key and whether the key is present
func (o Object) Get(key string) (Value, bool) {
	for _, f := range o.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Missing(), false
}

// Lookup returns the value for key, or Missing when absent
func (o Object) Lookup(key string) Value {
	v, _ := o.Get(key)
	return v
}

// Has reports whether key is present
func (o Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Set inserts or replaces the value for key, keeping the original position on replace
func (o *Object) Set(key string, v Value) {
	for i := range o.fields {
		if o.fields[i].Key == key {
			o.fields[i].Value = v
			return
		}
	}
	o.fields = append(o.fields, Field{Key: key, Value: v})
}

// Delete removes key if present
func (o *Object) Delete(key string) {
	for i := range o.fields {
		if o.fields[i].Key == key {
			o.fields = append(o.fields[:i:i], o.fields[i+1:]...)
			return
		}
	}
}

// Clone returns a copy that does not share storage with o
func (o Object) Clone() Object {
	if o.fields == nil {
		return Object{}
	}
	return Object{fields: o.Fields()}
}

// MarshalJSON encodes fields in insertion order. Missing values are written as null.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		raw, err := f.Value.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("changeset: field %q: %w", f.Key, err)
		}
		buf.Write(raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object preserving key order; null decodes to an empty Object
func (o *Object) UnmarshalJSON(data []byte) error {
	var v Value
	if err := v.UnmarshalJSON(data); err != nil {
		return err
	}
	switch v.kind {
	case KindNull:
		*o = Object{}
		return nil
	case KindObject:
		*o = v.obj
		return nil
	}
	return fmt.Errorf("changeset: expected JSON object, got %s", v.kind)
}

// Value implements driver.Valuer for JSONB columns. The document is bound as
// text: lib/pq encodes []byte parameters as bytea.
func (o Object) Value() (driver.Value, error) {
	raw, err := o.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan implements sql.Scanner for JSON/JSONB columns
func (o *Object) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*o = Object{}
		return nil
	case []byte:
		return o.UnmarshalJSON(v)
	case string:
		return o.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("changeset: cannot scan %T into Object", src)
	}
}
