// Package coerce turns loosely typed JSON values from upstream services into
// Go values without failing. Every function falls back to a zero value when
// the input cannot be interpreted.
package coerce

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Object is a decoded JSON object.
type Object = map[string]any

// Number mirrors `Number(v) || 0`: numeric strings are parsed, booleans become
// 1 or 0, and anything unparseable, NaN or infinite becomes 0.
func Number(v any) float64 {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		f = parsed
	case bool:
		if t {
			return 1
		}
		return 0
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ID converts a numeric or numeric-string identifier. Fractional, negative
// and unparseable values yield 0.
func ID(v any) int64 {
	f := Number(v)
	if f <= 0 || f != math.Trunc(f) || f >= math.MaxInt64 {
		return 0
	}
	return int64(f)
}

// String returns strings trimmed and numbers formatted; other values give "".
func String(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// StringOr returns String(v) or fallback when it is empty.
func StringOr(v any, fallback string) string {
	if s := String(v); s != "" {
		return s
	}
	return fallback
}

// First returns the value of the first key present with a non-null value.
func First(obj Object, keys ...string) any {
	for _, k := range keys {
		if v, ok := obj[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

const dateLayout = "2006-01-02"

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// Date reduces a date or timestamp to a YYYY-MM-DD string in loc. Plain dates
// are returned unchanged; timestamps without an offset are read in loc.
// Unparseable input gives "".
func Date(v any, loc *time.Location) string {
	s := String(v)
	if s == "" {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	if _, err := time.Parse(dateLayout, s); err == nil {
		return s
	}
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t.In(loc).Format(dateLayout)
		}
	}
	return ""
}

// Objects extracts a list of objects from a decoded JSON payload. It accepts
// a bare array or an envelope holding the array under one of the usual keys,
// one or two levels deep ({"data": {"items": [...]}}).
func Objects(payload any) []Object {
	return objects(payload, 2)
}

var envelopeKeys = []string{"data", "items", "records", "results", "sessions", "attendance", "employees", "leaves", "rows"}

func objects(payload any, depth int) []Object {
	switch t := payload.(type) {
	case []any:
		out := make([]Object, 0, len(t))
		for _, item := range t {
			if obj, ok := item.(Object); ok {
				out = append(out, obj)
			}
		}
		return out
	case Object:
		if depth == 0 {
			return nil
		}
		for _, k := range envelopeKeys {
			if inner, ok := t[k]; ok {
				if list := objects(inner, depth-1); list != nil {
					return list
				}
			}
		}
	}
	return nil
}

// Single extracts one object from a payload that is either the object itself
// or an envelope holding it under data or one of keys.
func Single(payload any, keys ...string) Object {
	obj, ok := payload.(Object)
	if !ok {
		return nil
	}
	for _, k := range append([]string{"data"}, keys...) {
		if inner, ok := obj[k].(Object); ok {
			return inner
		}
	}
	return obj
}
