package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// RawRecord is one upstream record as decoded from JSON, before any
// normalization. The pipeline API renames fields between releases, so
// nothing here assumes a fixed set of keys.
type RawRecord map[string]any

// Lookup returns the value of the first candidate key present in the
// record. Presence is what decides, not truthiness: null, 0 and ""
// all count as hits.
func (r RawRecord) Lookup(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// StringField resolves the first present candidate key and coerces its
// value to a string. Missing keys and uncoercible values yield def.
func (r RawRecord) StringField(def string, keys ...string) string {
	v, ok := r.Lookup(keys...)
	if !ok {
		return def
	}
	s, ok := toString(v)
	if !ok {
		return def
	}
	return s
}

// FloatField resolves the first present candidate key and coerces its
// value to a number. Missing keys and uncoercible values yield def.
func (r RawRecord) FloatField(def float64, keys ...string) float64 {
	v, ok := r.Lookup(keys...)
	if !ok {
		return def
	}
	f, ok := toFloat(v)
	if !ok {
		return def
	}
	return f
}

// MapField resolves the first present candidate key holding a JSON object.
func (r RawRecord) MapField(keys ...string) map[string]any {
	v, ok := r.Lookup(keys...)
	if !ok {
		return nil
	}
	m, _ := v.(map[string]any)
	return m
}

func toString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case uint64:
		return strconv.FormatUint(val, 10), true
	case bool:
		return strconv.FormatBool(val), true
	}
	return "", false
}

func toFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint64:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
