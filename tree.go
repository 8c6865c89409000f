// Package linkcut implements a link-cut tree: a dynamic forest of node-
// weighted, undirected trees supporting link, cut, connected, and path
// queries in amortized O(log n) time, plus tree creation/removal, root
// queries, and rerooting.
//
// The forest is represented with an auxiliary splay forest of preferred
// paths (see forest.go) and a driver built on access/expose and reroot-by-
// evert (this file). Nodes are referenced by dense integer ids handed out
// by idalloc; the path-aggregate folded along queries is pluggable via the
// pathagg.Aggregate interface.
//
// The type is not safe for concurrent use; callers must serialize access.
package linkcut

import (
	"fmt"

	"github.com/zyedidia/linkcut/idalloc"
	"github.com/zyedidia/linkcut/iter"
	"github.com/zyedidia/linkcut/pathagg"
)

// Tree is a dynamic forest of node-weighted trees, generic over the weight
// type W and the path-aggregate value type A produced by agg.
type Tree[W weight, A any] struct {
	nodes []node[W, A]
	alloc *idalloc.Allocator
	agg   pathagg.Aggregate[W, A]
}

// New returns an empty forest that folds path queries with agg.
func New[W weight, A any](agg pathagg.Aggregate[W, A]) *Tree[W, A] {
	return &Tree[W, A]{
		alloc: idalloc.New(),
		agg:   agg,
	}
}

func (t *Tree[W, A]) checkID(id int) {
	if id < 0 || id >= len(t.nodes) || !t.alloc.Live(id) {
		panic(fmt.Sprintf("linkcut: invalid id %d", id))
	}
}

// MakeTree creates a new single-node tree with the given weight and returns
// its id. O(1) amortized.
func (t *Tree[W, A]) MakeTree(w W) int {
	id := t.alloc.Insert()
	nd := node[W, A]{
		weight: w,
		left:   noID,
		right:  noID,
		par:    parent{kind: parentRoot},
		agg:    t.agg.Seed(w, id),
	}
	if id == len(t.nodes) {
		t.nodes = append(t.nodes, nd)
	} else {
		t.nodes[id] = nd
	}
	return id
}

// ExtendForest creates one single-node tree per weight in ws and returns
// their ids in order. A convenience wrapper over repeated MakeTree calls.
func (t *Tree[W, A]) ExtendForest(ws []W) []int {
	ids := make([]int, len(ws))
	for i, w := range ws {
		ids[i] = t.MakeTree(w)
	}
	return ids
}

// RemoveTree destroys the single-node tree id, returning its id to the
// allocator. Fatal (panics) if id still has any represented-tree edges.
func (t *Tree[W, A]) RemoveTree(id int) {
	t.checkID(id)
	if t.nodes[id].degree != 0 {
		panic(fmt.Sprintf("linkcut: remove_tree of node %d with nonzero degree %d", id, t.nodes[id].degree))
	}
	t.alloc.Delete(id)
}

// access rearranges the splay forest so the preferred path from v to its
// represented-tree root becomes a single splay tree rooted at v, with v
// having no right child. See forest.go for the rotation/splay primitives.
func (t *Tree[W, A]) access(v int) {
	t.splay(v)
	t.removePreferredChild(v)
	for t.nodes[v].par.kind == parentPath {
		p := t.nodes[v].par.id
		t.splay(p)
		t.removePreferredChild(p)
		t.setRight(p, v)
		t.splay(v)
	}
}

// reroot makes v the represented-tree root of its tree by reversing the
// orientation of the path from v to the current root. Lazy: v's flip bit is
// toggled and pushed one level down at once (v's children are swapped and
// their bits toggled); deeper nodes are normalized on demand.
func (t *Tree[W, A]) reroot(v int) {
	t.access(v)
	t.nodes[v].flipped = !t.nodes[v].flipped
	t.normalize(v)
}

// Reroot makes v the represented-tree root of its tree. No other tree is
// affected.
func (t *Tree[W, A]) Reroot(v int) {
	t.checkID(v)
	t.reroot(v)
}

func (t *Tree[W, A]) connected(v, w int) bool {
	t.reroot(v)
	t.access(w)
	if v == w {
		return true
	}
	return t.nodes[v].par.kind != parentRoot
}

// Connected reports whether v and w lie in the same represented tree.
func (t *Tree[W, A]) Connected(v, w int) bool {
	t.checkID(v)
	t.checkID(w)
	return t.connected(v, w)
}

// Link adds an edge between v and w, making w the represented-tree parent
// of v. Returns false (no-op) if v == w or if they are already connected,
// since that would create a cycle.
func (t *Tree[W, A]) Link(v, w int) bool {
	t.checkID(v)
	t.checkID(w)
	if v == w || t.connected(v, w) {
		return false
	}
	// connected's reroot(v); access(w) leaves v as the splay root of its
	// tree with no left child, and w as the splay root of its own,
	// disjoint tree with no path-parent.
	t.setLeft(v, w)
	return true
}

// Linked reports whether there is a direct represented-tree edge between v
// and w. v == w always returns false.
func (t *Tree[W, A]) Linked(v, w int) bool {
	t.checkID(v)
	t.checkID(w)
	if v == w {
		return false
	}
	t.reroot(v)
	t.access(w)
	return t.nodes[w].left == v && t.nodes[v].right == noID
}

// Cut removes the direct edge between v and w. Returns false (no-op) if
// there is no such edge.
func (t *Tree[W, A]) Cut(v, w int) bool {
	t.checkID(v)
	t.checkID(w)
	if v == w {
		return false
	}
	t.reroot(v)
	t.access(w)
	if !(t.nodes[w].left == v && t.nodes[v].right == noID) {
		return false
	}
	t.cutLeft(w)
	return true
}

// Path returns the path-aggregate fold between v and w, inclusive of both
// endpoints. If v == w this is just the seed for v. If v and w are
// disconnected, it returns the aggregate's sentinel Empty value rather than
// failing — link/cut failures are part of the normal contract, not
// programmer errors.
func (t *Tree[W, A]) Path(v, w int) A {
	t.checkID(v)
	t.checkID(w)
	if v == w {
		return t.agg.Seed(t.nodes[v].weight, v)
	}
	t.reroot(v)
	t.access(w)
	if t.nodes[v].par.kind == parentRoot {
		return t.agg.Empty()
	}
	return t.nodes[w].agg
}

// FindRoot returns the represented-tree root of v's tree.
func (t *Tree[W, A]) FindRoot(v int) int {
	t.checkID(v)
	t.access(v)
	r := v
	for {
		t.normalize(r)
		if t.nodes[r].left == noID {
			break
		}
		r = t.nodes[r].left
	}
	t.splay(r)
	return r
}

// SetWeight updates v's weight and refreshes the cached aggregates that
// depend on it. A single access(v) is sufficient: it brings the entire path
// from v to its represented-tree root into one splay tree rooted at v, so
// no node's aggregate depends on v except v's own.
func (t *Tree[W, A]) SetWeight(v int, w W) {
	t.checkID(v)
	t.access(v)
	t.nodes[v].weight = w
	t.recompute(v)
}

// Weight returns v's current weight.
func (t *Tree[W, A]) Weight(v int) W {
	t.checkID(v)
	return t.nodes[v].weight
}

// WalkPath returns an iterator over the ids on the path from v's
// represented-tree root to v, in that order. Intended for diagnostics and
// tests, not for use on a hot path: it performs a full access and an
// in-order traversal of the resulting splay tree.
func (t *Tree[W, A]) WalkPath(v int) iter.Iter[int] {
	t.checkID(v)
	t.access(v)

	ids := make([]int, 0)
	var inorder func(n int)
	inorder = func(n int) {
		if n == noID {
			return
		}
		t.normalize(n)
		inorder(t.nodes[n].left)
		ids = append(ids, n)
		inorder(t.nodes[n].right)
	}
	inorder(v)
	return iter.Slice(ids)
}
