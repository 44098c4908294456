// Package bigjson implements the bigint-safe JSON convention used by the
// REST backend: 64-bit integer fields travel as decimal strings because
// JSON numbers lose precision past 2^53.
//
// Decoding is heuristic. A string value is reinterpreted as an integer
// only when its key is on the field allow-list below AND the text is all
// digits. A digit string under any other key stays a string, and any
// digit string under a listed key is coerced. This is a known limitation
// of the wire contract, kept deliberately: the REST collaborator assumes
// exactly this behavior, so it must not be "fixed" with type tags here.
package bigjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
)

// bigintFields are the keys whose string values decode as 64-bit
// integers. The list mirrors the REST contract field for field.
var bigintFields = map[string]bool{
	"balance":        true,
	"amount":         true,
	"price":          true,
	"nav":            true,
	"change":         true,
	"dailyChange":    true,
	"oneDayChange":   true,
	"oneYearReturn":  true,
	"monthlyCredits": true,
	"monthlyDebits":  true,
	"timestamp":      true,
	"createdAt":      true,
	"id":             true,
	"startDate":      true,
	"endDate":        true,
}

var digitsOnly = regexp.MustCompile(`^\d+$`)

// Marshal encodes v as JSON with every 64-bit integer value rendered as a
// decimal string. Other field types are encoded as encoding/json would.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(stringifyValue(reflect.ValueOf(v)))
}

// Unmarshal decodes bigint-safe JSON into v, reviving allow-listed digit
// strings into numbers first so they land in int64 fields losslessly.
func Unmarshal(data []byte, v any) error {
	tree, err := parseTree(data)
	if err != nil {
		return err
	}

	normalized, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("normalize bigint json: %w", err)
	}

	return json.Unmarshal(normalized, v)
}

// Parse decodes bigint-safe JSON into a generic tree: allow-listed digit
// strings become int64, other numbers stay json.Number.
func Parse(data []byte) (any, error) {
	tree, err := parseTree(data)
	if err != nil {
		return nil, err
	}

	return concretize(tree), nil
}

func parseTree(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var tree any
	if err := decoder.Decode(&tree); err != nil {
		return nil, fmt.Errorf("decode bigint json: %w", err)
	}

	return reviveValue("", tree), nil
}

// reviveValue walks the decoded tree applying the key-name heuristic.
func reviveValue(key string, value any) any {
	switch typed := value.(type) {
	case map[string]any:
		for k, v := range typed {
			typed[k] = reviveValue(k, v)
		}
		return typed
	case []any:
		for i, v := range typed {
			typed[i] = reviveValue("", v)
		}
		return typed
	case string:
		if bigintFields[key] && digitsOnly.MatchString(typed) {
			// Values past int64 range stay strings rather than corrupt.
			if _, err := strconv.ParseInt(typed, 10, 64); err == nil {
				return json.Number(typed)
			}
		}
		return typed
	default:
		return value
	}
}

func concretize(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		for k, v := range typed {
			typed[k] = concretize(v)
		}
		return typed
	case []any:
		for i, v := range typed {
			typed[i] = concretize(v)
		}
		return typed
	case json.Number:
		if n, err := strconv.ParseInt(typed.String(), 10, 64); err == nil {
			return n
		}
		return typed
	default:
		return value
	}
}

// stringifyValue converts v into a JSON-encodable form with Int64/Uint64
// values replaced by their decimal string representation.
func stringifyValue(rv reflect.Value) any {
	if !rv.IsValid() {
		return nil
	}

	if rv.Kind() != reflect.Pointer && rv.CanInterface() {
		if marshaler, ok := rv.Interface().(json.Marshaler); ok {
			if raw, err := marshaler.MarshalJSON(); err == nil {
				return json.RawMessage(raw)
			}
		}
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return stringifyValue(rv.Elem())
	case reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Struct:
		return stringifyStruct(rv)
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = stringifyValue(iter.Value())
		}
		return out
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return rv.Interface()
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = stringifyValue(rv.Index(i))
		}
		return out
	default:
		return rv.Interface()
	}
}

func stringifyStruct(rv reflect.Value) map[string]any {
	out := make(map[string]any)
	structType := rv.Type()

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}

		value := rv.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			for k, v := range stringifyStruct(value) {
				out[k] = v
			}
			continue
		}

		name, omitEmpty, skip := jsonFieldName(field)
		if skip {
			continue
		}
		if omitEmpty && value.IsZero() {
			continue
		}

		out[name] = stringifyValue(value)
	}

	return out
}

func jsonFieldName(field reflect.StructField) (name string, omitEmpty, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}

	name = field.Name
	if tag == "" {
		return name, false, false
	}

	parts := bytes.Split([]byte(tag), []byte(","))
	if len(parts[0]) > 0 {
		name = string(parts[0])
	}
	for _, opt := range parts[1:] {
		if string(opt) == "omitempty" {
			omitEmpty = true
		}
	}

	return name, omitEmpty, false
}
