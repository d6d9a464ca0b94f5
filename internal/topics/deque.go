package topics

import (
	"fmt"
	"strings"

	"github.com/san-kum/algowalk/internal/step"
)

const (
	opAddFirst    step.Op = "add-first"
	opAddLast     step.Op = "add-last"
	opRemoveFirst step.Op = "remove-first"
	opRemoveLast  step.Op = "remove-last"
)

const dequeCapacity = 8

// DequeState is a snapshot of a circular-buffer deque. Head points at the
// front element; Tail points one past the back element. Both wrap modulo
// Capacity.
type DequeState struct {
	Capacity int
	Slots    []int
	Filled   []bool
	Head     int
	Tail     int
	Size     int
}

func (s DequeState) Clone() DequeState {
	c := s
	c.Slots = append([]int(nil), s.Slots...)
	c.Filled = append([]bool(nil), s.Filled...)
	return c
}

type dequeOp struct {
	kind  string
	value int
}

// GenerateDeque exercises a capacity-8 circular deque, wrapping the head
// backwards past zero and forwards past the end.
func GenerateDeque() []step.Step[DequeState] {
	script := []dequeOp{
		{"addFirst", 5},
		{"addLast", 10},
		{"addFirst", 3},
		{"addLast", 20},
		{"removeFirst", 0},
		{"removeFirst", 0},
		{"addLast", 30},
		{"removeLast", 0},
	}

	s := DequeState{
		Capacity: dequeCapacity,
		Slots:    make([]int, dequeCapacity),
		Filled:   make([]bool, dequeCapacity),
	}
	out := make([]step.Step[DequeState], 0, 2*len(script))
	push := func(op step.Op, desc string, touched ...int) {
		out = append(out, step.Step[DequeState]{Op: op, Description: desc, State: s.Clone(), Touched: touched})
	}

	push(step.OpInit, fmt.Sprintf("empty ring buffer, capacity %d, head = tail = 0", dequeCapacity))

	for _, op := range script {
		switch op.kind {
		case "addFirst":
			prev := s.Head
			s.Head = (s.Head - 1 + s.Capacity) % s.Capacity
			s.Slots[s.Head] = op.value
			s.Filled[s.Head] = true
			s.Size++
			push(opAddFirst,
				fmt.Sprintf("addFirst(%d): head = (%d - 1 + %d) %% %d = %d", op.value, prev, s.Capacity, s.Capacity, s.Head),
				s.Head)
		case "addLast":
			slot := s.Tail
			s.Slots[slot] = op.value
			s.Filled[slot] = true
			s.Tail = (s.Tail + 1) % s.Capacity
			s.Size++
			push(opAddLast,
				fmt.Sprintf("addLast(%d): stored at slot %d, tail advances to %d", op.value, slot, s.Tail),
				slot)
		case "removeFirst":
			slot := s.Head
			v := s.Slots[slot]
			s.Filled[slot] = false
			s.Head = (s.Head + 1) % s.Capacity
			s.Size--
			push(opRemoveFirst,
				fmt.Sprintf("removeFirst() = %d: head advances (%d + 1) %% %d = %d", v, slot, s.Capacity, s.Head),
				slot)
		case "removeLast":
			s.Tail = (s.Tail - 1 + s.Capacity) % s.Capacity
			v := s.Slots[s.Tail]
			s.Filled[s.Tail] = false
			s.Size--
			push(opRemoveLast,
				fmt.Sprintf("removeLast() = %d: tail steps back to %d", v, s.Tail),
				s.Tail)
		}
	}

	push(step.OpDone, fmt.Sprintf("%d element(s) remain, head=%d tail=%d", s.Size, s.Head, s.Tail))
	return out
}

func renderDeque(s DequeState) string {
	cells := make([]string, s.Capacity)
	for i := 0; i < s.Capacity; i++ {
		v := "·"
		if s.Filled[i] {
			v = fmt.Sprintf("%d", s.Slots[i])
		}
		switch {
		case i == s.Head && i == s.Tail:
			v += "*†"
		case i == s.Head:
			v += "*"
		case i == s.Tail:
			v += "†"
		}
		cells[i] = v
	}
	return fmt.Sprintf("[%s]   (* head, † tail, size %d)", strings.Join(cells, " "), s.Size)
}
