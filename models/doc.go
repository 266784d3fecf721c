package models

import (
	"fmt"
	"time"

	"github.com/FaithPortal/store"
)

// docFields wraps a raw document's data bag with typed, validated access.
// Documents come out of a schemaless store, so every field read is checked
// rather than trusted; the first type mismatch is kept and reported.
type docFields struct {
	data map[string]interface{}
	err  error
}

func fieldsOf(d store.Document) *docFields {
	return &docFields{data: d.Data}
}

func (f *docFields) str(key string) string {
	v, ok := f.data[key]
	if !ok {
		f.fail("missing required field %q", key)
		return ""
	}
	s, ok := v.(string)
	if !ok {
		f.fail("field %q is not a string", key)
		return ""
	}
	return s
}

func (f *docFields) optStr(key string) string {
	v, ok := f.data[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		f.fail("field %q is not a string", key)
		return ""
	}
	return s
}

func (f *docFields) optTime(key string) time.Time {
	v, ok := f.data[key]
	if !ok || v == nil {
		return time.Time{}
	}
	t, ok := v.(time.Time)
	if !ok {
		f.fail("field %q is not a timestamp", key)
		return time.Time{}
	}
	return t
}

// num accepts the integer encodings the store may hand back.
func (f *docFields) num(key string) int {
	v, ok := f.data[key]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	f.fail("field %q is not a number", key)
	return 0
}

func (f *docFields) optBool(key string) bool {
	v, ok := f.data[key]
	if !ok || v == nil {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		f.fail("field %q is not a boolean", key)
		return false
	}
	return b
}

func (f *docFields) fail(format string, args ...interface{}) {
	if f.err == nil {
		f.err = fmt.Errorf(format, args...)
	}
}
