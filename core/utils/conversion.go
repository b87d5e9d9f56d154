package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// unknownValue is the placeholder authors write when a value is not known yet.
const unknownValue = "unknown"

// isPlaceholder reports whether s spells "no value".
func isPlaceholder(s string) bool {
	return s == "" || strings.EqualFold(s, unknownValue)
}

// Bool converts val to a boolean using explicit type switching.
// It accepts native booleans and the strings true/yes/1 and false/no/0
// (case-insensitive). Anything else, including "unknown", yields nil.
func Bool(val any) *bool {
	switch v := val.(type) {
	case bool:
		return &v
	case *bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "1":
			b := true
			return &b
		case "false", "no", "0":
			b := false
			return &b
		}
		return nil
	default:
		return nil
	}
}

// Int converts val to an int. Native numbers are truncated toward zero,
// numeric strings must parse as base-10 integers.
func Int(val any) *int {
	switch v := val.(type) {
	case int:
		return &v
	case int64:
		i := int(v)
		return &i
	case int32:
		i := int(v)
		return &i
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		i := int(v)
		return &i
	case float32:
		return Int(float64(v))
	case json.Number:
		if i, err := v.Int64(); err == nil {
			n := int(i)
			return &n
		}
		if f, err := v.Float64(); err == nil {
			return Int(f)
		}
		return nil
	case string:
		s := strings.TrimSpace(v)
		if isPlaceholder(s) {
			return nil
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return nil
		}
		return &i
	default:
		return nil
	}
}

// Float converts val to a float64. Native numbers pass through; numeric
// strings are parsed.
func Float(val any) *float64 {
	switch v := val.(type) {
	case float64:
		return &v
	case float32:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil
		}
		return &f
	case string:
		s := strings.TrimSpace(v)
		if isPlaceholder(s) {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// String returns a pointer to val when it is a string. Other types,
// including nil, are treated as absent.
func String(val any) *string {
	if s, ok := val.(string); ok {
		return &s
	}
	return nil
}
