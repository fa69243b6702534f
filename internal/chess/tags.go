package chess

// Well-known tag names.
const (
	EventTag  = "Event"
	SiteTag   = "Site"
	DateTag   = "Date"
	RoundTag  = "Round"
	WhiteTag  = "White"
	BlackTag  = "Black"
	ResultTag = "Result"
	FENTag    = "FEN"
	SetUpTag  = "SetUp"
)

// Tags is a string map that remembers insertion order. Order is used when
// rendering and ignored by Equal.
type Tags struct {
	keys   []string
	values map[string]string
}

// NewTags creates tags from alternating key, value arguments.
func NewTags(pairs ...string) Tags {
	var t Tags
	for i := 0; i+1 < len(pairs); i += 2 {
		t = t.With(pairs[i], pairs[i+1])
	}
	return t
}

// Get returns a tag value, or empty string if not present.
func (t Tags) Get(key string) string {
	return t.values[key]
}

// Has returns true if the tag is present.
func (t Tags) Has(key string) bool {
	_, ok := t.values[key]
	return ok
}

// Len returns the number of tags.
func (t Tags) Len() int {
	return len(t.keys)
}

// Keys returns tag names in insertion order.
func (t Tags) Keys() []string {
	return append([]string(nil), t.keys...)
}

// With returns a copy of t with key set to value. An existing key keeps its
// position.
func (t Tags) With(key, value string) Tags {
	out := t.Clone()
	if out.values == nil {
		out.values = make(map[string]string)
	}
	if _, ok := out.values[key]; !ok {
		out.keys = append(out.keys, key)
	}
	out.values[key] = value
	return out
}

// Without returns a copy of t without key.
func (t Tags) Without(key string) Tags {
	if !t.Has(key) {
		return t
	}
	out := Tags{values: make(map[string]string, len(t.values)-1)}
	for _, k := range t.keys {
		if k != key {
			out.keys = append(out.keys, k)
			out.values[k] = t.values[k]
		}
	}
	return out
}

// Clone returns a copy of t sharing no storage with it.
func (t Tags) Clone() Tags {
	if t.values == nil {
		return Tags{}
	}
	out := Tags{
		keys:   append([]string(nil), t.keys...),
		values: make(map[string]string, len(t.values)),
	}
	for k, v := range t.values {
		out.values[k] = v
	}
	return out
}

// Equal reports whether t and other hold the same pairs, in any order.
func (t Tags) Equal(other Tags) bool {
	if len(t.values) != len(other.values) {
		return false
	}
	for k, v := range t.values {
		if ov, ok := other.values[k]; !ok || ov != v {
			return false
		}
	}
	return true
}
