package frontmatter

import (
	"bytes"
	"encoding/json"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindScalar is a plain string value.
	KindScalar Kind = iota
	// KindMapping is an ordered key/value mapping.
	KindMapping
	// KindSequence is an ordered list of items.
	KindSequence
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Value is one frontmatter value: a scalar string, a nested Mapping, or a
// Sequence of items. The zero Value is an empty scalar.
type Value struct {
	kind     Kind
	scalar   string
	mapping  *Mapping
	sequence []Item
}

func scalarValue(s string) Value { return Value{kind: KindScalar, scalar: s} }

func mappingValue(m *Mapping) Value { return Value{kind: KindMapping, mapping: m} }

func sequenceValue(items []Item) Value { return Value{kind: KindSequence, sequence: items} }

// Kind returns the variant this value holds.
func (v Value) Kind() Kind { return v.kind }

// Scalar returns the scalar string and true if the value is a scalar.
func (v Value) Scalar() (string, bool) {
	if v.kind != KindScalar {
		return "", false
	}
	return v.scalar, true
}

// Mapping returns the nested mapping and true if the value is a mapping.
func (v Value) Mapping() (*Mapping, bool) {
	if v.kind != KindMapping {
		return nil, false
	}
	return v.mapping, true
}

// Sequence returns the item list and true if the value is a sequence.
// Callers must not modify the returned slice.
func (v Value) Sequence() ([]Item, bool) {
	if v.kind != KindSequence {
		return nil, false
	}
	return v.sequence, true
}

// String returns the scalar text, or "" for mappings and sequences.
func (v Value) String() string {
	if v.kind == KindScalar {
		return v.scalar
	}
	return ""
}

// asAny converts the value to plain Go types (map/slice/string).
// Key order is lost; use the typed accessors when order matters.
func (v Value) asAny() any {
	switch v.kind {
	case KindMapping:
		return v.mapping.AsMap()
	case KindSequence:
		out := make([]any, len(v.sequence))
		for i, it := range v.sequence {
			out[i] = it.asAny()
		}
		return out
	default:
		return v.scalar
	}
}

// MarshalJSON encodes the value, preserving key order for mappings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindMapping:
		return v.mapping.MarshalJSON()
	case KindSequence:
		return json.Marshal(v.sequence)
	default:
		return json.Marshal(v.scalar)
	}
}

// Item is one sequence element: a scalar string or a flat Record.
// Records are a single level deep; items never nest further.
type Item struct {
	scalar string
	record *Record
}

func scalarItem(s string) Item { return Item{scalar: s} }

func recordItem(r *Record) Item { return Item{record: r} }

// IsRecord reports whether the item is a flat record.
func (it Item) IsRecord() bool { return it.record != nil }

// Scalar returns the scalar text and true if the item is a scalar.
func (it Item) Scalar() (string, bool) {
	if it.record != nil {
		return "", false
	}
	return it.scalar, true
}

// Record returns the record and true if the item is a record.
func (it Item) Record() (*Record, bool) {
	if it.record == nil {
		return nil, false
	}
	return it.record, true
}

func (it Item) asAny() any {
	if it.record != nil {
		return it.record.AsMap()
	}
	return it.scalar
}

// MarshalJSON encodes the item as either a string or an ordered object.
func (it Item) MarshalJSON() ([]byte, error) {
	if it.record != nil {
		return it.record.MarshalJSON()
	}
	return json.Marshal(it.scalar)
}

// Mapping is an ordered map of string keys to values. Keys are unique;
// insertion order is preserved. A nil Mapping behaves as empty.
type Mapping struct {
	keys []string
	vals map[string]Value
}

func newMapping() *Mapping {
	return &Mapping{vals: make(map[string]Value)}
}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Get returns the value for key and whether it is present.
func (m *Mapping) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// GetString returns the scalar value for key, or "" if the key is absent
// or holds a mapping or sequence.
func (m *Mapping) GetString(key string) string {
	v, ok := m.Get(key)
	if !ok {
		return ""
	}
	return v.String()
}

func (m *Mapping) set(key string, v Value) {
	if _, exists := m.vals[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
}

// AsMap converts the mapping to plain Go types for encoders that cannot
// preserve order (e.g. TOML). Nested mappings become map[string]any.
func (m *Mapping) AsMap() map[string]any {
	out := make(map[string]any, m.Len())
	if m == nil {
		return out
	}
	for _, k := range m.keys {
		out[k] = m.vals[k].asAny()
	}
	return out
}

// MarshalJSON encodes the mapping as a JSON object in insertion order.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Record is an ordered single-level map of string fields, used for one
// sequence item. A nil Record behaves as empty.
type Record struct {
	keys []string
	vals map[string]string
}

func newRecord() *Record {
	return &Record{vals: make(map[string]string)}
}

// Len returns the number of fields.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Get returns the value for a field and whether it is present.
func (r *Record) Get(key string) (string, bool) {
	if r == nil {
		return "", false
	}
	v, ok := r.vals[key]
	return v, ok
}

func (r *Record) set(key, val string) {
	if _, exists := r.vals[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.vals[key] = val
}

// AsMap converts the record to a plain map. Field order is lost.
func (r *Record) AsMap() map[string]string {
	out := make(map[string]string, r.Len())
	if r == nil {
		return out
	}
	for _, k := range r.keys {
		out[k] = r.vals[k]
	}
	return out
}

// MarshalJSON encodes the record as a JSON object in insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(r.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
