// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parse

// The error bag.
// Failures accumulate in a small persistent tree with O(1) append; [Run]
// flattens it once, in order, into the []DeadEnd handed to the caller.
// Nodes are immutable and may be shared between failing branches.

// DeadEnd is one failure record: where parsing got stuck, the caller's
// problem tag, and the stack of context frames (innermost first) that were
// open at that point.
type DeadEnd[C, X any] struct {
	Row          int
	Col          int
	Problem      X
	ContextStack []Located[C]
}

// bag is a persistent tree of dead ends: empty, a bag plus one dead end
// appended on the right, or the concatenation of two bags.
type bag[C, X any] interface {
	// walk visits the dead ends in recording order.
	walk(emit func(DeadEnd[C, X]))
}

type emptyBag[C, X any] struct{}

func (emptyBag[C, X]) walk(func(DeadEnd[C, X])) {}

type addRight[C, X any] struct {
	rest    bag[C, X]
	deadEnd DeadEnd[C, X]
}

func (b *addRight[C, X]) walk(emit func(DeadEnd[C, X])) {
	b.rest.walk(emit)
	emit(b.deadEnd)
}

type appendBag[C, X any] struct {
	left  bag[C, X]
	right bag[C, X]
}

func (b *appendBag[C, X]) walk(emit func(DeadEnd[C, X])) {
	b.left.walk(emit)
	b.right.walk(emit)
}

// bagFromState records one dead end at the state's position.
func bagFromState[C, X any](s State[C], problem X) bag[C, X] {
	return &addRight[C, X]{
		rest:    emptyBag[C, X]{},
		deadEnd: DeadEnd[C, X]{Row: s.row, Col: s.col, Problem: problem, ContextStack: s.context},
	}
}

// bagFromInfo records one dead end at an explicit position.
func bagFromInfo[C, X any](row, col int, problem X, context []Located[C]) bag[C, X] {
	return &addRight[C, X]{
		rest:    emptyBag[C, X]{},
		deadEnd: DeadEnd[C, X]{Row: row, Col: col, Problem: problem, ContextStack: context},
	}
}

// bagToList flattens the tree by in-order traversal, yielding dead ends in
// the order they were recorded.
func bagToList[C, X any](b bag[C, X]) []DeadEnd[C, X] {
	var deadEnds []DeadEnd[C, X]
	b.walk(func(d DeadEnd[C, X]) { deadEnds = append(deadEnds, d) })
	return deadEnds
}
