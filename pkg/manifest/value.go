package manifest

import "fmt"

// Kind identifies the shape held by a [Value].
type Kind int

const (
	KindOther  Kind = iota // integers, floats, datetimes
	KindTable              // key/value table (including inline tables)
	KindArray              // array of values
	KindString             // string scalar
	KindBool               // boolean scalar
)

var kindNames = map[Kind]string{
	KindOther:  "other",
	KindTable:  "table",
	KindArray:  "array",
	KindString: "string",
	KindBool:   "bool",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is one node of a parsed manifest. The zero Value has KindOther.
type Value struct {
	kind  Kind
	table *Table
	array []Value
	str   string
	b     bool
	raw   any
}

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool returns a bool Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Array returns an array Value holding vs.
func Array(vs ...Value) Value { return Value{kind: KindArray, array: vs} }

// TableValue wraps t as a Value. A nil t yields an empty table.
func TableValue(t *Table) Value {
	if t == nil {
		t = NewTable()
	}
	return Value{kind: KindTable, table: t}
}

// Other wraps a scalar that has no dedicated kind (numbers, datetimes).
func Other(v any) Value { return Value{kind: KindOther, raw: v} }

// Kind reports the shape of v.
func (v Value) Kind() Kind { return v.kind }

// AsTable returns the table held by v, if v is a table.
func (v Value) AsTable() (*Table, bool) {
	if v.kind != KindTable {
		return nil, false
	}
	return v.table, true
}

// AsArray returns the elements held by v, if v is an array.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.array, true
}

// AsString returns the string held by v, if v is a string.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsBool returns the boolean held by v, if v is a bool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Raw returns the decoded scalar behind a KindOther value.
func (v Value) Raw() any { return v.raw }

// Table is a TOML table with keys in declaration order.
type Table struct {
	keys   []string
	values map[string]Value
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{values: make(map[string]Value)}
}

// Set stores v under key. A new key is appended to the key order; setting an
// existing key replaces its value in place.
func (t *Table) Set(key string, v Value) *Table {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = v
	return t
}

// Get returns the value stored under key.
func (t *Table) Get(key string) (Value, bool) {
	if t == nil {
		return Value{}, false
	}
	v, ok := t.values[key]
	return v, ok
}

// Has reports whether key is present, whatever its value.
func (t *Table) Has(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Keys returns the table keys in declaration order.
// The returned slice must not be modified.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	return t.keys
}

// Len returns the number of keys.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}
