package linkcut

import "fmt"

// This file implements the auxiliary splay forest: rotations, splaying,
// lazy-flip normalization, and the child-linking primitives used by the
// driver in tree.go. Every exported-from-package-internal method here
// assumes its node-id arguments are already valid (checked at the public
// API boundary in tree.go); a violated internal precondition is a bug in
// the driver and panics rather than being reported to the caller.

// normalize pushes a pending flip at n down one level, toggling n's
// children's flip bits and swapping n's own left/right. It must be called
// before any code reads or mutates n's left/right fields. Idempotent: a
// second call with flipped already false is a no-op.
func (t *Tree[W, A]) normalize(n int) {
	nd := &t.nodes[n]
	if !nd.flipped {
		return
	}
	nd.left, nd.right = nd.right, nd.left
	nd.flipped = false
	if nd.left != noID {
		t.nodes[nd.left].flipped = !t.nodes[nd.left].flipped
	}
	if nd.right != noID {
		t.nodes[nd.right].flipped = !t.nodes[nd.right].flipped
	}
}

// recompute refreshes n.agg from its current left/right children. n must
// already be normalized. The fold order is left-then-seed-then-right, which
// is what makes agg equal the in-order (path-order) aggregate of n's
// subtree.
func (t *Tree[W, A]) recompute(n int) {
	nd := &t.nodes[n]
	seed := t.agg.Seed(nd.weight, n)

	var acc A
	if nd.left != noID {
		acc = t.nodes[nd.left].agg
		t.agg.Combine(&acc, seed)
	} else {
		acc = seed
	}
	if nd.right != noID {
		t.agg.Combine(&acc, t.nodes[nd.right].agg)
	}
	nd.agg = acc
}

// rotateLeft requires nodes[n].right != noID. r takes n's position under
// n's former parent — the parent's Node/Root/Path tag migrates to r exactly,
// which is what lets splaying preserve preferred-path boundaries. n becomes
// r's left child; r's former left child becomes n's right child.
func (t *Tree[W, A]) rotateLeft(n int) {
	r := t.nodes[n].right
	if r == noID {
		panic(fmt.Sprintf("linkcut: rotateLeft: node %d has no right child", n))
	}
	p := t.nodes[n].par

	rl := t.nodes[r].left
	t.nodes[n].right = rl
	if rl != noID {
		t.nodes[rl].par = parent{kind: parentNode, id: n}
	}

	t.nodes[r].left = n
	t.nodes[n].par = parent{kind: parentNode, id: r}
	t.nodes[r].par = p
	t.reattach(p, n, r)

	t.recompute(n)
	t.recompute(r)
}

// rotateRight is the mirror of rotateLeft, lifting n's left child.
func (t *Tree[W, A]) rotateRight(n int) {
	l := t.nodes[n].left
	if l == noID {
		panic(fmt.Sprintf("linkcut: rotateRight: node %d has no left child", n))
	}
	p := t.nodes[n].par

	lr := t.nodes[l].right
	t.nodes[n].left = lr
	if lr != noID {
		t.nodes[lr].par = parent{kind: parentNode, id: n}
	}

	t.nodes[l].right = n
	t.nodes[n].par = parent{kind: parentNode, id: l}
	t.nodes[l].par = p
	t.reattach(p, n, l)

	t.recompute(n)
	t.recompute(l)
}

// reattach fixes up the grandparent's child slot after n has been replaced
// by newChild under parent tag p. Root and Path tags carry no structural
// child pointer to fix, so only parentNode needs work.
func (t *Tree[W, A]) reattach(p parent, n, newChild int) {
	if p.kind != parentNode {
		return
	}
	gp := &t.nodes[p.id]
	if gp.left == n {
		gp.left = newChild
	} else {
		gp.right = newChild
	}
}

// rotateUp performs the single rotation that lifts n past its Node-parent.
// n.par must be parentNode; the caller is responsible for normalizing n and
// its parent first.
func (t *Tree[W, A]) rotateUp(n int) {
	p := t.nodes[n].par
	if p.kind != parentNode {
		panic(fmt.Sprintf("linkcut: rotateUp: node %d has no node-parent", n))
	}
	if t.nodes[p.id].left == n {
		t.rotateRight(p.id)
	} else {
		t.rotateLeft(p.id)
	}
}

// splay lifts n to the root of its splay tree via repeated rotations,
// preserving n's path-parent tag (it rides along through the topmost
// rotation, since rotateLeft/rotateRight migrate the parent tag exactly).
// splay never crosses a parentPath link — it only rotates within n's own
// aux tree.
func (t *Tree[W, A]) splay(n int) {
	for {
		pp := t.nodes[n].par
		if pp.kind != parentNode {
			break
		}
		p := pp.id
		gp := t.nodes[p].par

		if gp.kind == parentNode {
			g := gp.id
			// g and p must be normalized before their left/right are
			// read to classify zig-zig vs zig-zag.
			t.normalize(g)
			t.normalize(p)
			t.normalize(n)

			pIsLeftOfG := t.nodes[g].left == p
			nIsLeftOfP := t.nodes[p].left == n
			if pIsLeftOfG == nIsLeftOfP {
				// zig-zig: rotate the grandparent's side first.
				t.rotateUp(p)
				t.rotateUp(n)
			} else {
				// zig-zag: two rotations of n itself.
				t.rotateUp(n)
				t.rotateUp(n)
			}
		} else {
			// zig: p is itself the splay root (or carries the path-
			// parent tag); one rotation suffices.
			t.normalize(p)
			t.normalize(n)
			t.rotateUp(n)
		}
	}
	t.normalize(n)
	t.recompute(n)
}

// removePreferredChild detaches n's right child (the part of the preferred
// path below n) and reattaches it above a parentPath link back to n. n must
// already be the root of its splay tree.
func (t *Tree[W, A]) removePreferredChild(n int) {
	r := t.nodes[n].right
	if r == noID {
		return
	}
	t.nodes[n].right = noID
	t.nodes[r].par = parent{kind: parentPath, id: n}
	t.recompute(n)
}

// requireSplayRoot panics unless c is currently the root of its own splay
// tree (Root or Path tag — i.e. not a Node child of some other node).
func (t *Tree[W, A]) requireSplayRoot(c int) {
	if t.nodes[c].par.kind == parentNode {
		panic(fmt.Sprintf("linkcut: node %d is not a splay root", c))
	}
}

// setLeft installs c as n's left child, converting whatever splay-root tag
// c had (Root or Path) into a Node tag. Used exactly once per call to
// install a represented-tree edge (link), so it also bumps degree on both
// endpoints.
func (t *Tree[W, A]) setLeft(n, c int) {
	if t.nodes[n].left != noID {
		panic(fmt.Sprintf("linkcut: setLeft: node %d already has a left child", n))
	}
	t.requireSplayRoot(c)

	t.nodes[n].left = c
	t.nodes[c].par = parent{kind: parentNode, id: n}
	t.nodes[n].degree++
	t.nodes[c].degree++
	t.recompute(n)
}

// setRight installs c as n's right child. Unlike setLeft this is used only
// to reattach a preferred-path continuation inside access, converting a
// parentPath tag into a parentNode tag; it never changes a represented-tree
// edge, so degree is untouched.
func (t *Tree[W, A]) setRight(n, c int) {
	if t.nodes[n].right != noID {
		panic(fmt.Sprintf("linkcut: setRight: node %d already has a right child", n))
	}
	t.requireSplayRoot(c)

	t.nodes[n].right = c
	t.nodes[c].par = parent{kind: parentNode, id: n}
	t.recompute(n)
}

// cutLeft reverses setLeft: detaches n's left child, marks it a standalone
// splay root, and decrements both endpoints' degree. This is the only
// structural primitive that severs a represented-tree edge.
func (t *Tree[W, A]) cutLeft(n int) {
	c := t.nodes[n].left
	if c == noID {
		panic(fmt.Sprintf("linkcut: cutLeft: node %d has no left child", n))
	}
	t.nodes[n].left = noID
	t.nodes[c].par = parent{kind: parentRoot}
	t.nodes[n].degree--
	t.nodes[c].degree--
	t.recompute(n)
}
