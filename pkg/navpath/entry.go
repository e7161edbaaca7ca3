package navpath

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind discriminates the concrete value held by an Entry.
type Kind string

// Supported entry kinds.
const (
	KindInt    Kind = "int"
	KindString Kind = "string"
)

// Entry is a single element of a navigation path. It holds either an integer
// or a string identifier behind one comparable type, so heterogeneous paths
// can share a single ordered sequence. Entries are immutable once created.
type Entry struct {
	kind Kind
	num  int64
	text string
}

// Int creates an integer entry.
func Int(v int64) Entry {
	return Entry{kind: KindInt, num: v}
}

// String creates a string entry.
func String(s string) Entry {
	return Entry{kind: KindString, text: s}
}

// Kind returns the entry's discriminator.
func (e Entry) Kind() Kind {
	return e.kind
}

// Int returns the integer value. Zero for non-integer entries.
func (e Entry) Int() int64 {
	return e.num
}

// Text returns the string value. Empty for non-string entries.
func (e Entry) Text() string {
	return e.text
}

// Equal reports whether two entries hold the same kind and value.
func (e Entry) Equal(other Entry) bool {
	return e == other
}

// IsZero reports whether the entry is the zero value (no kind set).
func (e Entry) IsZero() bool {
	return e.kind == ""
}

// Display returns the entry's value rendered for display.
func (e Entry) Display() string {
	switch e.kind {
	case KindInt:
		return strconv.FormatInt(e.num, 10)
	case KindString:
		return e.text
	}
	return "<empty>"
}

// String implements fmt.Stringer.
func (e Entry) String() string {
	return e.Display()
}

// wireEntry is the tagged JSON representation of an Entry.
type wireEntry struct {
	Kind  Kind            `json:"kind"`
	Value json.RawMessage `json:"value"`
}

// MarshalJSON encodes the entry as a type-tagged object.
func (e Entry) MarshalJSON() ([]byte, error) {
	var value any
	switch e.kind {
	case KindInt:
		value = e.num
	case KindString:
		value = e.text
	default:
		return nil, fmt.Errorf("encode entry: unknown kind %q", e.kind)
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wireEntry{Kind: e.kind, Value: raw})
}

// UnmarshalJSON decodes a type-tagged object into the entry.
// Unknown kinds and mismatched value types are rejected.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var w wireEntry
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	switch w.Kind {
	case KindInt:
		var v int64
		if err := json.Unmarshal(w.Value, &v); err != nil {
			return fmt.Errorf("decode int entry: %w", err)
		}
		*e = Int(v)
	case KindString:
		var s string
		if err := json.Unmarshal(w.Value, &s); err != nil {
			return fmt.Errorf("decode string entry: %w", err)
		}
		*e = String(s)
	default:
		return fmt.Errorf("decode entry: unknown kind %q", w.Kind)
	}
	return nil
}
