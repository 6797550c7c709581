package ui

import (
	"fmt"
	"strings"
)

// Field is a single label/value pair shown to the right of a bar.
type Field struct {
	Key   string
	Value any
}

// Info is an insertion-ordered set of fields. Keys are unique; setting an
// existing key replaces its value without moving it.
type Info []Field

// NewInfo builds an Info from alternating keys and values. A trailing key
// without a value is ignored.
func NewInfo(kv ...any) Info {
	var info Info
	for i := 0; i+1 < len(kv); i += 2 {
		info = info.Set(fmt.Sprint(kv[i]), kv[i+1])
	}
	return info
}

// Len returns the number of fields.
func (in Info) Len() int {
	return len(in)
}

// Get returns the value stored under key.
func (in Info) Get(key string) (any, bool) {
	for _, f := range in {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Set returns in with key set to value.
func (in Info) Set(key string, value any) Info {
	for i := range in {
		if in[i].Key == key {
			in[i].Value = value
			return in
		}
	}
	return append(in, Field{Key: key, Value: value})
}

// Merge returns a new Info holding the fields of in followed by the fields of
// other whose keys are new. Values from other win on collision. Neither
// receiver nor argument is modified.
func (in Info) Merge(other Info) Info {
	if len(in) == 0 && len(other) == 0 {
		return nil
	}
	merged := make(Info, 0, len(in)+len(other))
	for _, f := range in {
		merged = merged.Set(f.Key, f.Value)
	}
	for _, f := range other {
		merged = merged.Set(f.Key, f.Value)
	}
	return merged
}

// FormatInfo renders info as "k1: v1, k2: v2", using each value's default
// format.
func FormatInfo(info Info) string {
	parts := make([]string, 0, len(info))
	for _, f := range info {
		parts = append(parts, fmt.Sprintf("%s: %v", f.Key, f.Value))
	}
	return strings.Join(parts, ", ")
}
