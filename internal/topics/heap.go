package topics

import (
	"fmt"

	"github.com/san-kum/algowalk/internal/step"
)

const (
	opInsert   step.Op = "insert"
	opCompare  step.Op = "compare"
	opSwap     step.Op = "swap"
	opSettle   step.Op = "settle"
	opExtract  step.Op = "extract"
	opMoveLast step.Op = "move-last"
)

// HeapState is a snapshot of a binary min-heap in its array form, where the
// children of index i live at 2i+1 and 2i+2.
type HeapState struct {
	Items     []int
	Extracted []int
}

func (s HeapState) Clone() HeapState {
	c := s
	c.Items = append([]int(nil), s.Items...)
	c.Extracted = append([]int(nil), s.Extracted...)
	return c
}

// GenerateHeap inserts a fixed value sequence with explicit sift-up levels,
// then extracts the minimum twice with explicit sift-down levels.
func GenerateHeap() []step.Step[HeapState] {
	inserts := []int{5, 3, 8, 1, 9, 2}

	s := HeapState{}
	out := make([]step.Step[HeapState], 0, 64)
	push := func(op step.Op, desc string, touched ...int) {
		out = append(out, step.Step[HeapState]{Op: op, Description: desc, State: s.Clone(), Touched: touched})
	}

	push(step.OpInit, "empty min-heap")

	siftUp := func(i int) {
		for i > 0 {
			p := (i - 1) / 2
			push(opCompare, fmt.Sprintf("compare items[%d]=%d with parent items[%d]=%d", i, s.Items[i], p, s.Items[p]), i, p)
			if s.Items[i] >= s.Items[p] {
				break
			}
			s.Items[i], s.Items[p] = s.Items[p], s.Items[i]
			push(opSwap, fmt.Sprintf("%d < %d: swap indices %d and %d", s.Items[p], s.Items[i], i, p), i, p)
			i = p
		}
		push(opSettle, fmt.Sprintf("%d settled at index %d", s.Items[i], i), i)
	}

	siftDown := func() {
		i := 0
		for {
			l, r := 2*i+1, 2*i+2
			smallest := i
			if l < len(s.Items) {
				push(opCompare, fmt.Sprintf("compare items[%d]=%d with child items[%d]=%d", i, s.Items[i], l, s.Items[l]), i, l)
				if s.Items[l] < s.Items[smallest] {
					smallest = l
				}
			}
			if r < len(s.Items) {
				push(opCompare, fmt.Sprintf("compare items[%d]=%d with child items[%d]=%d", smallest, s.Items[smallest], r, s.Items[r]), smallest, r)
				if s.Items[r] < s.Items[smallest] {
					smallest = r
				}
			}
			if smallest == i {
				push(opSettle, fmt.Sprintf("%d settled at index %d", s.Items[i], i), i)
				return
			}
			s.Items[i], s.Items[smallest] = s.Items[smallest], s.Items[i]
			push(opSwap, fmt.Sprintf("swap indices %d and %d", i, smallest), i, smallest)
			i = smallest
		}
	}

	for _, v := range inserts {
		s.Items = append(s.Items, v)
		push(opInsert, fmt.Sprintf("insert %d at index %d", v, len(s.Items)-1), len(s.Items)-1)
		siftUp(len(s.Items) - 1)
	}

	for n := 0; n < 2; n++ {
		min := s.Items[0]
		last := s.Items[len(s.Items)-1]
		s.Items = s.Items[:len(s.Items)-1]
		s.Extracted = append(s.Extracted, min)
		push(opExtract, fmt.Sprintf("extract min %d from the root", min), 0)
		if len(s.Items) > 0 {
			s.Items[0] = last
			push(opMoveLast, fmt.Sprintf("move last element %d to the root", last), 0)
			siftDown()
		}
	}

	push(step.OpDone, fmt.Sprintf("extracted %v in order, %d element(s) remain", s.Extracted, len(s.Items)))
	return out
}

func renderHeap(s HeapState) string {
	line := fmt.Sprintf("%v", s.Items)
	if len(s.Extracted) > 0 {
		line += fmt.Sprintf("   extracted: %v", s.Extracted)
	}
	return line
}
