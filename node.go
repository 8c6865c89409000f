package linkcut

import "golang.org/x/exp/constraints"

// weight is the constraint on node weights: any real-valued floating point
// type. Kept as its own name so the rest of the package reads in domain
// terms rather than repeating the constraints import everywhere.
type weight = constraints.Float

// parentKind tags the three mutually exclusive states a node's parent
// pointer can be in. Conflating Node and Path is the classic source of
// link-cut bugs, so it is kept as its own small sum type rather than two
// optional ids plus a boolean.
type parentKind uint8

const (
	// parentRoot means this node is the splay-tree root of its aux tree
	// and has no path-parent: it is the represented-tree root of its
	// current preferred-path decomposition.
	parentRoot parentKind = iota
	// parentNode means this node is a left or right child of another
	// node on the same preferred path.
	parentNode
	// parentPath means this node is a splay-tree root whose represented-
	// tree parent lies one preferred path up.
	parentPath
)

// noID marks an absent child or parent id.
const noID = -1

// parent is the tagged parent variant described above. id is meaningless
// when kind is parentRoot.
type parent struct {
	kind parentKind
	id   int
}

// node is one arena slot: one live represented-tree vertex, or a freed slot
// pending reuse by idalloc. Nodes never hold direct references to each
// other; all relationships are ids into the owning Tree's node slice, so the
// structure has no cycles to manage and is trivially relocatable.
//
// Invariants (hold at quiescence, between public operations):
//   - left/right/par are mutually consistent: if n.left == c then
//     nodes[c].par == {parentNode, n}, symmetrically for right.
//   - the in-order traversal of a splay tree yields its preferred path in
//     root-of-represented-tree-first order, modulo any pending flip.
//   - a parentPath link is only followed from a splay-tree root.
//   - agg, once flipped is normalized on the path to the splay root, equals
//     the aggregate fold of left.agg, seed(weight, id), and right.agg.
//   - degree counts represented-tree edges incident to this node; it is
//     touched only by setLeft and cutLeft.
type node[W weight, A any] struct {
	weight W
	left   int
	right  int
	par    parent

	// flipped is the lazy eversion bit: when true, this subtree's
	// left/right orientation is reversed and has not yet been pushed to
	// its children.
	flipped bool

	// agg is the cached path aggregate of this node's splay subtree.
	agg A

	// degree is the number of represented-tree edges touching this node;
	// remove_tree is only legal when it is zero.
	degree int
}
