package validator

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// IsNull reports whether v is nil, a nil pointer, or a string that reads
// "null" or "undefined" in any case, ignoring surrounding whitespace.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	if (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) && rv.IsNil() {
		return true
	}

	s := strings.TrimSpace(fmt.Sprint(v))
	return strings.EqualFold(s, "null") || strings.EqualFold(s, "undefined")
}

// IsEmpty reports whether v is null (see IsNull), a map, slice or array
// without elements, or a value whose trimmed text form is "", "{}" or "[]".
func IsEmpty(v any) bool {
	if IsNull(v) {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() == 0
	}

	s := strings.TrimSpace(fmt.Sprint(v))
	return s == "" || s == "{}" || s == "[]"
}

// IsInteger reports whether v holds a whole number: any Go integer, a finite
// float without fraction, or a string parsing as one of those.
func IsInteger(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	case float32:
		return isWhole(float64(n))
	case float64:
		return isWhole(n)
	case string:
		s := strings.TrimSpace(n)
		if _, err := strconv.ParseInt(s, 10, 64); err == nil {
			return true
		}
		f, err := strconv.ParseFloat(s, 64)
		return err == nil && isWhole(f)
	default:
		return false
	}
}

func isWhole(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
}
