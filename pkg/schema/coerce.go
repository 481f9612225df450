package schema

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

func coerceValue(kind ValueKind, raw any) (any, bool) {
	switch kind {
	case KindNumber:
		f, ok := ToNumber(raw)
		return f, ok
	case KindBool:
		b, ok := ToBool(raw)
		return b, ok
	case KindJSON:
		s, ok := toJSONString(raw)
		return s, ok
	default:
		s, ok := ToText(raw)
		return s, ok
	}
}

// ToNumber accepts Go numeric types and numeric strings. NaN and infinities
// are rejected so every accepted value survives a JSON round trip.
func ToNumber(raw any) (float64, bool) {
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ToBool accepts booleans and the strings "true"/"false" in any case.
func ToBool(raw any) (bool, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// ToText accepts strings and formats other scalars.
func ToText(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case json.Number:
		return v.String(), true
	}
	if f, ok := ToNumber(raw); ok {
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return "", false
}

// toJSONString keeps strings untouched and encodes native arrays and objects.
func toJSONString(raw any) (string, bool) {
	if s, ok := raw.(string); ok {
		return s, true
	}
	if raw == nil {
		return "", false
	}
	switch reflect.TypeOf(raw).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
	default:
		return "", false
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return "", false
	}
	return string(data), true
}
