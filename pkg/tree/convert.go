package tree

import (
	"github.com/dmitrymomot/utilkit/pkg/collection"
)

// entry is the lookup-table record for one id.
type entry struct {
	fields   Node
	children []*entry
	placed   bool // attached as a root or as a child
	claimed  bool // attached as somebody's child
}

type builder struct {
	cfg    Config
	lookup map[string]*entry
	order  []*entry
}

func (b *builder) get(key string) (*entry, bool) {
	e, ok := b.lookup[key]
	return e, ok
}

func (b *builder) add(key string, fields Node) *entry {
	e := &entry{fields: fields}
	b.lookup[key] = e
	b.order = append(b.order, e)
	return e
}

// ToTree nests a flat list of records by their parent ids and returns the roots.
//
// A single-record input is returned unchanged inside a one-element slice.
// Otherwise every returned record is a fresh map with its children field set to
// the nested children in first-seen input order; the input is never modified.
//
// When no record qualifies as a root, every record nobody claimed as a child is
// returned as a root in the order its id was first seen, placeholders for
// missing parents included. Ids are not sorted: [{id:2 parentId:20},
// {id:1 parentId:10}] yields roots 20 then 10.
func ToTree(items []Node, opts ...Option) []Node {
	if len(items) == 1 {
		return []Node{items[0]}
	}
	if len(items) == 0 {
		return []Node{}
	}

	cfg := newConfig(opts)
	b := &builder{
		cfg:    cfg,
		lookup: make(map[string]*entry, len(items)),
		order:  make([]*entry, 0, len(items)),
	}

	var roots []*entry
	for _, item := range items {
		key := lookupKey(item[cfg.IDField])
		e, ok := b.get(key)
		if !ok {
			e = b.add(key, Node{})
		}
		e.fields = Merge(e.fields, item)

		// Duplicates only contribute fields; placement follows the first occurrence.
		if e.placed {
			continue
		}
		e.placed = true

		pid, hasParent := item[cfg.ParentIDField]
		if isRootParent(pid, hasParent) {
			roots = append(roots, e)
			continue
		}

		pkey := lookupKey(pid)
		parent, ok := b.get(pkey)
		if !ok {
			parent = b.add(pkey, Node{cfg.IDField: pid})
		}
		parent.children = append(parent.children, e)
		e.claimed = true
	}

	if len(roots) == 0 {
		for _, e := range b.order {
			if !e.claimed {
				roots = append(roots, e)
			}
		}
	}

	roots = b.recoverUnreachable(roots)

	out := make([]Node, 0, len(roots))
	path := make(map[*entry]bool)
	for _, r := range roots {
		out = append(out, b.materialize(r, path))
	}
	return out
}

// recoverUnreachable appends every entry not reachable from roots: unclaimed
// entries first, then the first member of each remaining cycle.
func (b *builder) recoverUnreachable(roots []*entry) []*entry {
	reached := make(map[*entry]bool, len(b.order))
	for _, r := range roots {
		mark(r, reached)
	}
	if len(reached) == len(b.order) {
		return roots
	}

	for _, e := range b.order {
		if !reached[e] && !e.claimed {
			roots = append(roots, e)
			mark(e, reached)
		}
	}
	for _, e := range b.order {
		if !reached[e] {
			roots = append(roots, e)
			mark(e, reached)
		}
	}
	return roots
}

func mark(e *entry, reached map[*entry]bool) {
	if reached[e] {
		return
	}
	reached[e] = true
	for _, c := range e.children {
		mark(c, reached)
	}
}

// materialize builds the output record for e. Children already on the current
// path are skipped so cycles terminate.
func (b *builder) materialize(e *entry, path map[*entry]bool) Node {
	path[e] = true
	defer delete(path, e)

	children := make([]Node, 0, len(e.children))
	for _, c := range e.children {
		if path[c] {
			continue
		}
		children = append(children, b.materialize(c, path))
	}

	out := Merge(e.fields)
	out[b.cfg.ChildrenField] = children
	return out
}

// ToArray flattens a tree into a single list. Each node's descendants are
// emitted before the node itself and siblings keep their order. Children fields
// are left on the records.
//
// With deepCopy the tree is cloned first and the caller's records are never
// shared with the result; without it the returned records are the input maps.
func ToArray(nodes []Node, deepCopy bool, opts ...Option) []Node {
	cfg := newConfig(opts)
	if deepCopy {
		nodes = collection.DeepCopy(nodes)
	}
	return flatten(make([]Node, 0, len(nodes)), nodes, cfg.ChildrenField)
}

func flatten(out, nodes []Node, field string) []Node {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		out = flatten(out, n.Children(field), field)
		out = append(out, n)
	}
	return out
}

// Ancestors searches nodes depth-first for the first record whose id equals
// value and returns its ancestors, nearest parent first. The boolean reports
// whether the record was found; a found root has no ancestors.
func Ancestors(nodes []Node, value any, opts ...Option) ([]Node, bool) {
	cfg := newConfig(opts)
	return ancestors(nodes, lookupKey(value), cfg)
}

func ancestors(nodes []Node, want string, cfg Config) ([]Node, bool) {
	for _, n := range nodes {
		if id, ok := n[cfg.IDField]; ok && lookupKey(id) == want {
			return []Node{}, true
		}
		if parents, ok := ancestors(n.Children(cfg.ChildrenField), want, cfg); ok {
			return append(parents, n), true
		}
	}
	return nil, false
}
