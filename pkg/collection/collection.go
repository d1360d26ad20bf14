package collection

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// KeyBy indexes items by the key returned for each of them. Later items win on
// duplicate keys.
func KeyBy[T any, K comparable](items []T, key func(T) K) map[K]T {
	out := make(map[K]T, len(items))
	for _, item := range items {
		out[key(item)] = item
	}
	return out
}

// Key renders v as a map key. Numbers are written in plain decimal form, so
// 1, 1.0, float64(1e6) and their string forms "1" and "1000000" share a key.
// Other values use their fmt.Sprint form.
func Key(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case int:
		return strconv.FormatInt(int64(n), 10)
	case int8:
		return strconv.FormatInt(int64(n), 10)
	case int16:
		return strconv.FormatInt(int64(n), 10)
	case int32:
		return strconv.FormatInt(int64(n), 10)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint:
		return strconv.FormatUint(uint64(n), 10)
	case uint8:
		return strconv.FormatUint(uint64(n), 10)
	case uint16:
		return strconv.FormatUint(uint64(n), 10)
	case uint32:
		return strconv.FormatUint(uint64(n), 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// IndexBy indexes records by the Key of their field value. Records without
// the field are skipped; later records win on duplicate keys.
func IndexBy[M ~map[string]any](items []M, field string) map[string]M {
	out := make(map[string]M, len(items))
	for _, item := range items {
		v, ok := item[field]
		if !ok {
			continue
		}
		out[Key(v)] = item
	}
	return out
}

// Values returns the values of m ordered by key.
func Values[K cmp.Ordered, V any](m map[K]V) []V {
	out := make([]V, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		out = append(out, m[k])
	}
	return out
}

// Concat joins any number of slices into a new one.
func Concat[T any](parts ...[]T) []T {
	size := 0
	for _, p := range parts {
		size += len(p)
	}
	out := make([]T, 0, size)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
