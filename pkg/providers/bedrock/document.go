// JSON value <-> smithy document conversion
package bedrock

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/document"
)

// ToDocument converts a JSON-shaped Go value (nil, bool, number, string,
// []any, map[string]any) into a smithy document suitable for tool input
// schemas. The conversion is structure-preserving: array order and object
// keys are kept verbatim, and numbers keep their integer representation
// whenever they have one.
func ToDocument(v any) document.Interface {
	return document.NewLazyDocument(normalizeJSON(v))
}

// FromDocument converts a smithy document back into the local JSON model.
// Numbers come back as int64 when they fit a signed 64-bit integer, uint64
// when non-negative and representable, and float64 otherwise.
func FromDocument(doc document.Interface) (any, error) {
	if doc == nil {
		return nil, nil
	}

	data, err := doc.MarshalSmithyDocument()
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	return normalizeJSON(value), nil
}

// ExtractStringField returns the string value stored at field, if doc is an
// object-shaped document and that key maps to a string. Any other shape
// reports false rather than an error.
func ExtractStringField(doc document.Interface, field string) (string, bool) {
	if doc == nil {
		return "", false
	}

	value, err := FromDocument(doc)
	if err != nil {
		return "", false
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return "", false
	}

	s, ok := obj[field].(string)
	return s, ok
}

// normalizeJSON maps a decoded JSON value onto the canonical local model.
// Numbers are tried as int64 first, then uint64, then float64; a numeric
// value that fits none of those degrades to nil.
func normalizeJSON(v any) any {
	switch value := v.(type) {
	case nil, bool, string:
		return value
	case json.Number:
		if i, err := value.Int64(); err == nil {
			return i
		}
		if u, err := strconv.ParseUint(value.String(), 10, 64); err == nil {
			return u
		}
		if f, err := value.Float64(); err == nil {
			return f
		}
		return nil
	case int:
		return int64(value)
	case int32:
		return int64(value)
	case int64:
		return value
	case uint:
		return normalizeUint(uint64(value))
	case uint64:
		return normalizeUint(value)
	case float32:
		return normalizeFloat(float64(value))
	case float64:
		return normalizeFloat(value)
	case []any:
		result := make([]any, len(value))
		for i, elem := range value {
			result[i] = normalizeJSON(elem)
		}
		return result
	case map[string]any:
		result := make(map[string]any, len(value))
		for key, elem := range value {
			result[key] = normalizeJSON(elem)
		}
		return result
	default:
		// Non-JSON Go values pass through untouched; the document
		// serializer handles them by reflection.
		return value
	}
}

func normalizeUint(u uint64) any {
	if u <= math.MaxInt64 {
		return int64(u)
	}
	return u
}

func normalizeFloat(f float64) any {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		if f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f)
		}
		if f >= 0 && f < math.MaxUint64 {
			return uint64(f)
		}
	}
	return f
}
