// internal/challonge/object.go
// Helpers for picking apart the loosely typed JSON the service sends.
//
// The discipline is two-tier on purpose: the *key* must be present in the
// payload (the service always emits it, so its absence means the schema
// drifted and we fail the whole decode), while the *value* is usually
// allowed to be null or wrong-typed and falls back to a zero default.
// Accessors whose name starts with req are strict on the value too.
package challonge

import (
	"strconv"
	"strings"
	"time"
)

type object map[string]any

func intoObject(v any) (object, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, decodeErr("expected a json object", v)
	}
	return object(m), nil
}

// take removes and returns a key. A missing key is always fatal.
func (o object) take(key string) (any, error) {
	v, ok := o[key]
	if !ok {
		return nil, decodeErr("missing key", key)
	}
	delete(o, key)
	return v, nil
}

// decodeSlice maps a per-element decoder over a JSON array. The first
// failing element aborts the whole thing, no partial results.
func decodeSlice[T any](v any, f func(any) (T, error)) ([]T, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, decodeErr("expected a json array", v)
	}
	out := make([]T, 0, len(arr))
	for _, el := range arr {
		d, err := f(el)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// fields extracts typed values out of an object with a sticky first error,
// so an entity decoder stays a flat struct literal instead of forty
// if-err blocks. Once err is set every accessor returns its zero value.
type fields struct {
	o   object
	err error
}

func (f *fields) take(key string) (any, bool) {
	if f.err != nil {
		return nil, false
	}
	v, err := f.o.take(key)
	if err != nil {
		f.err = err
		return nil, false
	}
	return v, true
}

func (f *fields) str(key string) string {
	v, ok := f.take(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func (f *fields) optStr(key string) *string {
	v, ok := f.take(key)
	if !ok {
		return nil
	}
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

func (f *fields) boolean(key string) bool {
	v, ok := f.take(key)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// reqBool is the strict flavor: null or a non-bool fails the decode.
func (f *fields) reqBool(key string) bool {
	v, ok := f.take(key)
	if !ok {
		return false
	}
	b, isBool := v.(bool)
	if !isBool {
		f.err = decodeErr("expected a boolean at "+key, v)
		return false
	}
	return b
}

// uint is lenient: null or a non-number decodes as 0.
func (f *fields) uint(key string) uint64 {
	v, ok := f.take(key)
	if !ok {
		return 0
	}
	n, _ := v.(float64)
	if n < 0 {
		return 0
	}
	return uint64(n)
}

// reqUint is strict: ids and seeds must actually be numbers.
func (f *fields) reqUint(key string) uint64 {
	v, ok := f.take(key)
	if !ok {
		return 0
	}
	n, isNum := v.(float64)
	if !isNum || n < 0 {
		f.err = decodeErr("expected a non-negative number at "+key, v)
		return 0
	}
	return uint64(n)
}

// reqInt is the signed flavor (losers bracket rounds are negative).
func (f *fields) reqInt(key string) int64 {
	v, ok := f.take(key)
	if !ok {
		return 0
	}
	n, isNum := v.(float64)
	if !isNum {
		f.err = decodeErr("expected a number at "+key, v)
		return 0
	}
	return int64(n)
}

func (f *fields) optUint(key string) *uint64 {
	v, ok := f.take(key)
	if !ok {
		return nil
	}
	if n, isNum := v.(float64); isNum && n >= 0 {
		u := uint64(n)
		return &u
	}
	return nil
}

// stamp is for the timestamps every record carries. Absent, null or
// unparseable is a hard decode failure, not a zero time.
func (f *fields) stamp(key string) time.Time {
	v, ok := f.take(key)
	if !ok {
		return time.Time{}
	}
	s, isStr := v.(string)
	if !isStr {
		f.err = decodeErr("expected a timestamp at "+key, v)
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		f.err = decodeErr("unparseable timestamp at "+key, s)
		return time.Time{}
	}
	return t
}

func (f *fields) optStamp(key string) *time.Time {
	v, ok := f.take(key)
	if !ok {
		return nil
	}
	s, isStr := v.(string)
	if !isStr {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}

// floatStr reads the point-configuration floats the service encodes as
// strings ("0.5"). Null or garbage decodes as 0.
func (f *fields) floatStr(key string) float64 {
	v, ok := f.take(key)
	if !ok {
		return 0
	}
	s, _ := v.(string)
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return n
}

// optFloatStr differs from the rest: the key itself may be absent
// (pts_for_bye only exists on swiss tournaments).
func (f *fields) optFloatStr(key string) *float64 {
	if f.err != nil {
		return nil
	}
	v, ok := f.o[key]
	if !ok {
		return nil
	}
	delete(f.o, key)
	s, _ := v.(string)
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &n
}

// unwrap peels the single-key wrapper object every entity payload sits
// under ({"tournament": {...}}) and returns a collector for the inner map.
func unwrap(v any, key string) (*fields, error) {
	outer, err := intoObject(v)
	if err != nil {
		return nil, err
	}
	inner, err := outer.take(key)
	if err != nil {
		return nil, err
	}
	m, err := intoObject(inner)
	if err != nil {
		return nil, err
	}
	return &fields{o: m}, nil
}
