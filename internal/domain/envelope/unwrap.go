// Package envelope interprets what the workflow webhooks send back.
//
// The webhooks are configured outside this service and wrap their payload in
// whatever the workflow engine produced: a one-element array, {"json": ...},
// {"data": ...} or {"body": "<json text>"}. Unwrap peels those layers off;
// Resolve does the same but reports the layers it saw and rejects anything
// that does not end in an object.
package envelope

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Shape names one wrapper layer.
type Shape string

const (
	ShapeArray Shape = "array"
	ShapeJSON  Shape = "json"
	ShapeData  Shape = "data"
	ShapeBody  Shape = "body"
)

// wrapperKeys are checked in this order.
var wrapperKeys = []Shape{ShapeJSON, ShapeData, ShapeBody}

var (
	ErrUnrecognizedEnvelope = errors.New("unrecognized response envelope")
	ErrEmptyEnvelope        = errors.New("empty response envelope")
)

// Unwrap returns the innermost payload of v, a value produced by
// json.Unmarshal into an interface{}. Arrays yield their first element, an
// empty array yields nil. A string "body" that is not valid JSON yields nil.
func Unwrap(v interface{}) interface{} {
	out, _ := unwrap(v, nil)
	return out
}

// UnwrapJSON decodes raw and unwraps it. Malformed JSON yields nil.
func UnwrapJSON(raw []byte) interface{} {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return Unwrap(v)
}

func unwrap(v interface{}, path []Shape) (interface{}, []Shape) {
	for {
		switch t := v.(type) {
		case []interface{}:
			path = append(path, ShapeArray)
			if len(t) == 0 {
				return nil, path
			}
			v = t[0]
		case map[string]interface{}:
			key, inner, ok := wrapped(t)
			if !ok {
				return t, path
			}
			path = append(path, key)
			if s, isString := inner.(string); isString && key == ShapeBody {
				var decoded interface{}
				if err := json.Unmarshal([]byte(s), &decoded); err != nil {
					return nil, path
				}
				inner = decoded
			}
			v = inner
		default:
			return v, path
		}
	}
}

func wrapped(m map[string]interface{}) (Shape, interface{}, bool) {
	for _, key := range wrapperKeys {
		if inner, ok := m[string(key)]; ok {
			return key, inner, true
		}
	}
	return "", nil, false
}

// Resolved is a payload object together with the wrappers that surrounded it,
// outermost first.
type Resolved struct {
	Payload map[string]interface{}
	Shapes  []Shape
}

// Resolve decodes raw and unwraps it into an object.
//
// Empty input, null, an empty array or an empty object give ErrEmptyEnvelope.
// Malformed JSON or a payload that is not an object gives
// ErrUnrecognizedEnvelope.
func Resolve(raw []byte) (Resolved, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return Resolved{}, ErrEmptyEnvelope
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return Resolved{}, fmt.Errorf("%w: %v", ErrUnrecognizedEnvelope, err)
	}

	out, shapes := unwrap(v, nil)
	switch t := out.(type) {
	case nil:
		return Resolved{Shapes: shapes}, ErrEmptyEnvelope
	case map[string]interface{}:
		if len(t) == 0 {
			return Resolved{Shapes: shapes}, ErrEmptyEnvelope
		}
		return Resolved{Payload: t, Shapes: shapes}, nil
	default:
		return Resolved{Shapes: shapes}, fmt.Errorf("%w: payload is %T", ErrUnrecognizedEnvelope, out)
	}
}

// String returns the first non-empty value among keys, formatted as text.
func String(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			return strconv.FormatBool(v)
		}
	}
	return ""
}

// Number returns the first value among keys that is a number or a numeric
// string.
func Number(m map[string]interface{}, keys ...string) (float64, bool) {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			return v, true
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}
