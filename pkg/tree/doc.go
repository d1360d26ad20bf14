// Package tree converts between flat collections of records and nested trees.
//
// A record is a Node, an open map of fields with three distinguished keys: the
// identifier, the parent identifier and the children list. Their names default to
// "id", "parentId" and "children" and can be changed per call with options.
//
// # Usage
//
//	items := []tree.Node{
//	    {"id": 1, "parentId": nil, "name": "root"},
//	    {"id": 2, "parentId": 1, "name": "a"},
//	    {"id": 3, "parentId": 1, "name": "b"},
//	}
//
//	roots := tree.ToTree(items)
//	// roots[0]["children"] == []tree.Node{{"id": 2, ...}, {"id": 3, ...}}
//
//	flat := tree.ToArray(roots, true)
//	// children come before their parent: 2, 3, 1
//
// # Conversion rules
//
// ToTree makes a single pass over its input. A record whose parent id is absent,
// nil, false, an empty string or NaN is a root; numeric zero is a valid id. A
// parent id that matches no record creates a placeholder parent holding only the
// id and an empty children list. Duplicate ids collapse into one record whose
// fields are merged with later values winning (see Merge).
//
// Two compatibility rules are kept on purpose:
//
//   - a single-record input is returned as is, without a children field;
//   - when no record is classified as a root, every record that is not some other
//     record's child becomes a root, in first-seen order.
//
// Beyond that, no record is dropped: anything unreachable from the roots (an
// unclaimed placeholder, a cycle) is appended as an extra root, and cyclic back
// edges are cut.
//
// ToArray flattens a tree in post-order: every node's descendants precede it and
// siblings keep their relative order.
//
// # Error Handling
//
// None of the functions return errors. Malformed input degrades to best-effort
// output; a record without an id is grouped under the nil id.
//
// All functions are stateless and safe for concurrent use.
package tree
