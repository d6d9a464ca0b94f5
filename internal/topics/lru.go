package topics

import (
	"fmt"
	"strings"

	"github.com/san-kum/algowalk/internal/step"
)

const (
	opPut     step.Op = "put"
	opGet     step.Op = "get"
	opHit     step.Op = "hit"
	opMiss    step.Op = "miss"
	opEvict   step.Op = "evict"
	opPromote step.Op = "promote"
	opPlace   step.Op = "place"
)

const lruCapacity = 3

// LRUEntry is one cached key/value pair.
type LRUEntry struct {
	Key   int
	Value string
}

// LRUState is a snapshot of the cache. Entries runs head (most recently
// used) to tail (eviction candidate).
type LRUState struct {
	Capacity int
	Entries  []LRUEntry
	Evicted  []int
}

func (s LRUState) Clone() LRUState {
	c := s
	c.Entries = append([]LRUEntry(nil), s.Entries...)
	c.Evicted = append([]int(nil), s.Evicted...)
	return c
}

type lruOp struct {
	kind  string
	key   int
	value string
}

// GenerateLRU walks a capacity-3 cache through put/get traffic that forces
// one promotion and one eviction.
func GenerateLRU() []step.Step[LRUState] {
	script := []lruOp{
		{"put", 1, "A"},
		{"put", 2, "B"},
		{"put", 3, "C"},
		{"get", 2, ""},
		{"put", 4, "D"},
	}

	s := LRUState{Capacity: lruCapacity}
	out := make([]step.Step[LRUState], 0, 4*len(script))
	push := func(op step.Op, desc string, touched ...int) {
		out = append(out, step.Step[LRUState]{Op: op, Description: desc, State: s.Clone(), Touched: touched})
	}

	push(step.OpInit, fmt.Sprintf("empty cache with capacity %d", lruCapacity))

	for _, op := range script {
		switch op.kind {
		case "put":
			push(opPut, fmt.Sprintf("put(%d, %q)", op.key, op.value))
			if i := lruIndexOf(s.Entries, op.key); i >= 0 {
				s.Entries[i].Value = op.value
				s.Entries = lruMoveToFront(s.Entries, i)
				push(opPromote, fmt.Sprintf("key %d already cached: value updated, entry promoted to head", op.key), 0)
				continue
			}
			if len(s.Entries) == s.Capacity {
				victim := s.Entries[len(s.Entries)-1]
				s.Entries = s.Entries[:len(s.Entries)-1]
				s.Evicted = append(s.Evicted, victim.Key)
				push(opEvict, fmt.Sprintf("cache full: evict least recently used key %d", victim.Key))
			}
			s.Entries = append([]LRUEntry{{Key: op.key, Value: op.value}}, s.Entries...)
			push(opPlace, fmt.Sprintf("key %d placed at head", op.key), 0)
		case "get":
			push(opGet, fmt.Sprintf("get(%d)", op.key))
			i := lruIndexOf(s.Entries, op.key)
			if i < 0 {
				push(opMiss, fmt.Sprintf("miss: key %d is not cached", op.key))
				continue
			}
			push(opHit, fmt.Sprintf("hit: key %d = %q", op.key, s.Entries[i].Value), i)
			if i > 0 {
				s.Entries = lruMoveToFront(s.Entries, i)
				push(opPromote, fmt.Sprintf("key %d promoted to head", op.key), 0)
			}
		}
	}

	keys := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		keys[i] = fmt.Sprintf("%d", e.Key)
	}
	push(step.OpDone, fmt.Sprintf("final order head→tail: [%s], evicted: %v", strings.Join(keys, " "), s.Evicted))
	return out
}

func lruIndexOf(entries []LRUEntry, key int) int {
	for i, e := range entries {
		if e.Key == key {
			return i
		}
	}
	return -1
}

func lruMoveToFront(entries []LRUEntry, i int) []LRUEntry {
	e := entries[i]
	rest := append(append([]LRUEntry(nil), entries[:i]...), entries[i+1:]...)
	return append([]LRUEntry{e}, rest...)
}

func renderLRU(s LRUState) string {
	if len(s.Entries) == 0 {
		return fmt.Sprintf("head → (empty) → tail   capacity %d", s.Capacity)
	}
	parts := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		parts[i] = fmt.Sprintf("%d:%s", e.Key, e.Value)
	}
	line := fmt.Sprintf("head → [%s] → tail", strings.Join(parts, " | "))
	if len(s.Evicted) > 0 {
		line += fmt.Sprintf("   evicted: %v", s.Evicted)
	}
	return line
}
