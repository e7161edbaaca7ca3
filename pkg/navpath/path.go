package navpath

import (
	"encoding/json"
	"strings"
)

// Path is an ordered sequence of entries representing the screen stack.
// Insertion order is display order is back-stack order: index 0 sits one
// level below the root screen and mutations happen at the tail only.
//
// Path values have copy-on-write semantics: Push and Pop return new paths
// and never modify the receiver, so callers can hold onto a Path without
// worrying about later mutations.
type Path []Entry

// New creates a path from the given entries.
func New(entries ...Entry) Path {
	if len(entries) == 0 {
		return nil
	}
	p := make(Path, len(entries))
	copy(p, entries)
	return p
}

// Ints creates a path of integer entries, preserving argument order.
func Ints(vs ...int64) Path {
	if len(vs) == 0 {
		return nil
	}
	p := make(Path, len(vs))
	for i, v := range vs {
		p[i] = Int(v)
	}
	return p
}

// Push returns a new path with the entries appended to the tail.
func (p Path) Push(entries ...Entry) Path {
	out := make(Path, 0, len(p)+len(entries))
	out = append(out, p...)
	return append(out, entries...)
}

// Pop returns a new path with the tail entry removed.
// Popping an empty path returns an empty path.
func (p Path) Pop() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1].Clone()
}

// Last returns the tail entry, or false when the path is empty.
func (p Path) Last() (Entry, bool) {
	if len(p) == 0 {
		return Entry{}, false
	}
	return p[len(p)-1], true
}

// Len returns the number of entries on the path.
func (p Path) Len() int {
	return len(p)
}

// IsEmpty reports whether the path has no entries, i.e. the root screen
// is showing.
func (p Path) IsEmpty() bool {
	return len(p) == 0
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	if len(p) == 0 {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Equal reports whether two paths hold the same entries in the same order.
// Nil and empty paths compare equal.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if !p[i].Equal(q[i]) {
			return false
		}
	}
	return true
}

// String renders the path as a breadcrumb trail starting at the root.
func (p Path) String() string {
	parts := make([]string, 0, len(p)+1)
	parts = append(parts, "root")
	for _, e := range p {
		parts = append(parts, e.Display())
	}
	return strings.Join(parts, " / ")
}

// Encode serializes the path to its JSON wire format.
// Empty and nil paths encode to an empty JSON array, so a reset path
// persists as an explicit empty sequence rather than null.
func Encode(p Path) ([]byte, error) {
	if len(p) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal([]Entry(p))
}

// Decode deserializes a path from its JSON wire format.
// Any malformed input, including entries of unknown kind, fails decoding
// as a whole; partially decoded paths are never returned.
func Decode(data []byte) (Path, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return Path(entries), nil
}
