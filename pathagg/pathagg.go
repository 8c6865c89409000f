// Package pathagg provides the path-aggregate trait used by a linkcut.Tree
// to fold per-node weights along a preferred path. An Aggregate is a value
// type A together with a Seed (value -> A) and a Combine (A, A -> A, fold
// into the left argument); Combine must be associative. Predefined
// implementations cover max, min, sum, and xor; callers can implement the
// interface themselves for a custom fold.
package pathagg

import (
	"math"

	"github.com/segmentio/fasthash/fnv1a"
	"golang.org/x/exp/constraints"
)

// Aggregate folds per-node weights of type W into a path-aggregate value of
// type A. Seed produces the aggregate for a single node; Combine folds a
// second aggregate into the first, in path order (left argument is the
// lower/earlier side). Empty returns the sentinel value reported for a path
// query between two nodes that turn out to be disconnected.
type Aggregate[W constraints.Float, A any] interface {
	Seed(w W, id int) A
	Combine(a *A, b A)
	Empty() A
}

// MaxVal is the aggregate value produced by Max: the node with the greatest
// weight seen so far, and its id (for tie-breaking consumers that want to
// know which node attained the maximum).
type MaxVal[W constraints.Float] struct {
	Weight W
	ID     int
}

// Max folds to the maximum-weight node on a path. Ties keep whichever side
// of Combine was seen first.
type Max[W constraints.Float] struct{}

func (Max[W]) Seed(w W, id int) MaxVal[W] { return MaxVal[W]{Weight: w, ID: id} }

func (Max[W]) Combine(a *MaxVal[W], b MaxVal[W]) {
	if b.Weight > a.Weight {
		*a = b
	}
}

func (Max[W]) Empty() MaxVal[W] {
	return MaxVal[W]{Weight: W(math.Inf(-1)), ID: -1}
}

// MinVal is the aggregate value produced by Min.
type MinVal[W constraints.Float] struct {
	Weight W
	ID     int
}

// Min folds to the minimum-weight node on a path. Ties keep whichever side
// of Combine was seen first.
type Min[W constraints.Float] struct{}

func (Min[W]) Seed(w W, id int) MinVal[W] { return MinVal[W]{Weight: w, ID: id} }

func (Min[W]) Combine(a *MinVal[W], b MinVal[W]) {
	if b.Weight < a.Weight {
		*a = b
	}
}

func (Min[W]) Empty() MinVal[W] {
	return MinVal[W]{Weight: W(math.Inf(1)), ID: -1}
}

// Sum folds to the sum of the weights on a path.
type Sum[W constraints.Float] struct{}

func (Sum[W]) Seed(w W, id int) W { return w }

func (Sum[W]) Combine(a *W, b W) { *a += b }

func (Sum[W]) Empty() W { return 0 }

// Xor folds to the xor of the integer-cast weights on a path. I is the
// integer type the float weight is cast to before folding.
type Xor[W constraints.Float, I constraints.Integer] struct{}

func (Xor[W, I]) Seed(w W, id int) I { return I(w) }

func (Xor[W, I]) Combine(a *I, b I) { *a ^= b }

func (Xor[W, I]) Empty() I { return 0 }

// FingerprintVal is the aggregate produced by Fingerprint: an
// order-independent hash of every node id on the path, plus the count of
// nodes folded in.
type FingerprintVal struct {
	Hash  uint64
	Count int
}

// Fingerprint is a custom aggregate (per the pluggable-aggregate extension
// point) that folds a path into a hash of the node ids it passed through,
// independent of fold order. It ignores node weight entirely, demonstrating
// that Seed may depend on id alone.
type Fingerprint[W constraints.Float] struct{}

func (Fingerprint[W]) Seed(w W, id int) FingerprintVal {
	buf := [8]byte{
		byte(id), byte(id >> 8), byte(id >> 16), byte(id >> 24),
		byte(id >> 32), byte(id >> 40), byte(id >> 48), byte(id >> 56),
	}
	return FingerprintVal{Hash: fnv1a.HashBytes64(buf[:]), Count: 1}
}

func (Fingerprint[W]) Combine(a *FingerprintVal, b FingerprintVal) {
	a.Hash ^= b.Hash
	a.Count += b.Count
}

func (Fingerprint[W]) Empty() FingerprintVal {
	return FingerprintVal{}
}
