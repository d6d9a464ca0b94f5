package topics

import (
	"fmt"

	"github.com/san-kum/algowalk/internal/step"
)

const (
	opBuildLeaf   step.Op = "build-leaf"
	opCombine     step.Op = "combine"
	opQueryVisit  step.Op = "query-visit"
	opQueryTake   step.Op = "query-take"
	opQueryResult step.Op = "query-result"
	opSetLeaf     step.Op = "set-leaf"
	opRecompute   step.Op = "recompute"
)

// SegTreeState is a snapshot of a sum segment tree in 1-based array form:
// node 1 is the root, node n has children 2n and 2n+1. Index 0 is unused.
type SegTreeState struct {
	Leaves []int
	Tree   []int
	Sum    int // result of the most recent finished query, 0 before any
}

func (s SegTreeState) Clone() SegTreeState {
	c := s
	c.Leaves = append([]int(nil), s.Leaves...)
	c.Tree = append([]int(nil), s.Tree...)
	return c
}

// GenerateSegTree builds a sum tree over 8 leaves, runs a range query, does
// a point update with bottom-up recomputation, then queries the same range
// again to show the changed aggregate.
func GenerateSegTree() []step.Step[SegTreeState] {
	leaves := []int{5, 8, 6, 3, 2, 7, 2, 6}
	n := len(leaves)

	s := SegTreeState{
		Leaves: append([]int(nil), leaves...),
		Tree:   make([]int, 2*n),
	}
	out := make([]step.Step[SegTreeState], 0, 64)
	push := func(op step.Op, desc string, touched ...int) {
		out = append(out, step.Step[SegTreeState]{Op: op, Description: desc, State: s.Clone(), Touched: touched})
	}

	push(step.OpInit, fmt.Sprintf("leaves %v, tree nodes all zero", leaves))

	var build func(node, lo, hi int)
	build = func(node, lo, hi int) {
		if lo == hi {
			s.Tree[node] = s.Leaves[lo]
			push(opBuildLeaf, fmt.Sprintf("leaf [%d] = %d stored at node %d", lo, s.Leaves[lo], node), node)
			return
		}
		mid := (lo + hi) / 2
		build(2*node, lo, mid)
		build(2*node+1, mid+1, hi)
		s.Tree[node] = s.Tree[2*node] + s.Tree[2*node+1]
		push(opCombine, fmt.Sprintf("node %d = node %d + node %d = %d", node, 2*node, 2*node+1, s.Tree[node]), node, 2*node, 2*node+1)
	}
	build(1, 0, n-1)

	var query func(node, lo, hi, l, r int) int
	query = func(node, lo, hi, l, r int) int {
		if r < lo || hi < l {
			return 0
		}
		if l <= lo && hi <= r {
			push(opQueryTake, fmt.Sprintf("node %d covers [%d,%d] fully: take %d", node, lo, hi, s.Tree[node]), node)
			return s.Tree[node]
		}
		push(opQueryVisit, fmt.Sprintf("node %d covers [%d,%d] partially: descend", node, lo, hi), node)
		mid := (lo + hi) / 2
		return query(2*node, lo, mid, l, r) + query(2*node+1, mid+1, hi, l, r)
	}

	runQuery := func(l, r int) {
		sum := query(1, 0, n-1, l, r)
		s.Sum = sum
		push(opQueryResult, fmt.Sprintf("sum(%d..%d) = %d", l, r, sum), 1)
	}

	runQuery(2, 5)

	update := func(i, v int) {
		node := 1
		lo, hi := 0, n-1
		for lo != hi {
			mid := (lo + hi) / 2
			if i <= mid {
				node, hi = 2*node, mid
			} else {
				node, lo = 2*node+1, mid+1
			}
		}
		s.Leaves[i] = v
		s.Tree[node] = v
		push(opSetLeaf, fmt.Sprintf("leaf [%d] set to %d at node %d", i, v, node), node)
		for node > 1 {
			node /= 2
			s.Tree[node] = s.Tree[2*node] + s.Tree[2*node+1]
			push(opRecompute, fmt.Sprintf("recompute node %d = node %d + node %d = %d", node, 2*node, 2*node+1, s.Tree[node]), node)
		}
	}

	update(3, 9)
	runQuery(2, 5)

	push(step.OpDone, fmt.Sprintf("root sum %d after update, last range sum %d", s.Tree[1], s.Sum))
	return out
}

func renderSegTree(s SegTreeState) string {
	if len(s.Tree) < 16 {
		return fmt.Sprintf("leaves %v", s.Leaves)
	}
	return fmt.Sprintf("        [%d]\n    [%d]     [%d]\n  [%d] [%d] [%d] [%d]\n  %v",
		s.Tree[1], s.Tree[2], s.Tree[3], s.Tree[4], s.Tree[5], s.Tree[6], s.Tree[7], s.Tree[8:16])
}
