package markup

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingAttribute is returned when an explicit lookup or delete targets a
// key that was never set.
var ErrMissingAttribute = errors.New("markup: missing attribute")

// AttributeError names the key behind an ErrMissingAttribute failure.
type AttributeError struct {
	Key string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("markup: attribute %q is not set", e.Key)
}

// Unwrap lets errors.Is match ErrMissingAttribute.
func (e *AttributeError) Unwrap() error {
	return ErrMissingAttribute
}

// Attrs is an ordered string map. Iteration follows insertion order; setting
// an existing key keeps its original position.
//
// The zero value is ready to use. A nil *Attrs behaves as an empty map for
// reads.
type Attrs struct {
	keys   []string
	values map[string]string
}

// NewAttrs builds an Attrs from alternating key/value arguments. A trailing
// key without a value is stored with an empty value.
func NewAttrs(pairs ...string) *Attrs {
	a := &Attrs{}
	for i := 0; i < len(pairs); i += 2 {
		value := ""
		if i+1 < len(pairs) {
			value = pairs[i+1]
		}
		a.Set(pairs[i], value)
	}
	return a
}

// FromMap copies a plain map. Keys are sorted so the result is deterministic.
func FromMap(src map[string]string) *Attrs {
	a := &Attrs{}
	for _, key := range sortedKeys(src) {
		a.Set(key, src[key])
	}
	return a
}

// Set stores value under key.
func (a *Attrs) Set(key, value string) {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, exists := a.values[key]; !exists {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// SetDefault stores value only when key is absent.
func (a *Attrs) SetDefault(key, value string) {
	if a.Has(key) {
		return
	}
	a.Set(key, value)
}

// Get returns the value stored under key.
func (a *Attrs) Get(key string) (string, bool) {
	if a == nil || a.values == nil {
		return "", false
	}
	value, ok := a.values[key]
	return value, ok
}

// Value returns the stored value or the empty string.
func (a *Attrs) Value(key string) string {
	value, _ := a.Get(key)
	return value
}

// Lookup is the strict variant of Get.
func (a *Attrs) Lookup(key string) (string, error) {
	value, ok := a.Get(key)
	if !ok {
		return "", &AttributeError{Key: key}
	}
	return value, nil
}

// Has reports whether key was set, even to the empty string.
func (a *Attrs) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Delete removes key, failing when it is absent.
func (a *Attrs) Delete(key string) error {
	if !a.Has(key) {
		return &AttributeError{Key: key}
	}
	delete(a.values, key)
	for idx, existing := range a.keys {
		if existing == key {
			a.keys = append(a.keys[:idx], a.keys[idx+1:]...)
			break
		}
	}
	return nil
}

// Keys returns a copy of the keys in insertion order.
func (a *Attrs) Keys() []string {
	if a == nil {
		return nil
	}
	return append([]string(nil), a.keys...)
}

// Len reports the number of stored keys.
func (a *Attrs) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Each calls fn for every pair in insertion order.
func (a *Attrs) Each(fn func(key, value string)) {
	if a == nil {
		return
	}
	for _, key := range a.keys {
		fn(key, a.values[key])
	}
}

// Clone returns a deep copy. Cloning nil yields an empty map.
func (a *Attrs) Clone() *Attrs {
	out := &Attrs{}
	a.Each(out.Set)
	return out
}

// Merge overrides a with the entries of other, key by key. Existing keys keep
// their position, new keys are appended. A nil receiver cannot be updated in
// place, so Merge returns a copy of other instead; use the result.
func (a *Attrs) Merge(other *Attrs) *Attrs {
	if a == nil {
		return other.Clone()
	}
	other.Each(a.Set)
	return a
}

// Map returns a plain map copy.
func (a *Attrs) Map() map[string]string {
	out := make(map[string]string, a.Len())
	a.Each(func(key, value string) {
		out[key] = value
	})
	return out
}

// String renders the attributes as they appear inside a start tag, each
// prefixed by a space. Empty values are skipped.
func (a *Attrs) String() string {
	var b strings.Builder
	a.Each(func(key, value string) {
		if value == "" {
			return
		}
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteString(`="`)
		b.WriteString(strings.ReplaceAll(value, `"`, "&quot;"))
		b.WriteByte('"')
	})
	return b.String()
}
