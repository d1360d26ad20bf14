package tree

import (
	"maps"
	"math"
	"reflect"

	"github.com/dmitrymomot/utilkit/pkg/collection"
)

// Node is a single record: a map of named fields.
type Node map[string]any

// Merge returns a new Node holding the fields of every argument. Later
// arguments overwrite earlier ones on conflicting keys; nil nodes are skipped.
// None of the arguments are modified.
func Merge(nodes ...Node) Node {
	size := 0
	for _, n := range nodes {
		size += len(n)
	}
	out := make(Node, size)
	for _, n := range nodes {
		maps.Copy(out, n)
	}
	return out
}

// Children returns the child records stored under field. Typed slices and the
// []any produced by JSON or YAML decoding are both understood; elements that
// are not maps are skipped. The returned nodes share their maps with n.
func (n Node) Children(field string) []Node {
	switch v := n[field].(type) {
	case []Node:
		return v
	case []map[string]any:
		out := make([]Node, 0, len(v))
		for _, c := range v {
			out = append(out, Node(c))
		}
		return out
	case []any:
		out := make([]Node, 0, len(v))
		for _, c := range v {
			switch m := c.(type) {
			case Node:
				out = append(out, m)
			case map[string]any:
				out = append(out, Node(m))
			}
		}
		return out
	default:
		return nil
	}
}

// lookupKey renders an id so that numerically equal values of different Go
// types, and their string form, address the same entry.
func lookupKey(id any) string {
	return collection.Key(id)
}

// isRootParent reports whether a parent id marks its record as a root: absent,
// nil, false, empty string or NaN. Zero of any numeric kind is a real id.
func isRootParent(pid any, ok bool) bool {
	if !ok || pid == nil {
		return true
	}
	switch v := pid.(type) {
	case bool:
		return !v
	case string:
		return v == ""
	case float64:
		return math.IsNaN(v)
	case float32:
		return math.IsNaN(float64(v))
	}

	rv := reflect.ValueOf(pid)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
