package topics

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"

	"github.com/san-kum/algowalk/internal/step"
)

const (
	opAddServer    step.Op = "add-server"
	opPlacePoint   step.Op = "place-virtual"
	opHashKey      step.Op = "hash-key"
	opResolve      step.Op = "resolve"
	opRemoveServer step.Op = "remove-server"
	opReassign     step.Op = "reassign"
	opKeep         step.Op = "keep"
)

const ringVirtualPoints = 3

// RingPoint is one virtual node: a synthetic position on the 0–359° ring
// belonging to a physical server.
type RingPoint struct {
	Angle  int
	Server string
	Index  int
}

// RingState is a snapshot of the hash ring. Points stays sorted by angle;
// Assignments maps each placed key to the server owning it.
type RingState struct {
	Points      []RingPoint
	KeyAngles   map[string]int
	Assignments map[string]string
}

func (s RingState) Clone() RingState {
	c := RingState{
		Points:      append([]RingPoint(nil), s.Points...),
		KeyAngles:   make(map[string]int, len(s.KeyAngles)),
		Assignments: make(map[string]string, len(s.Assignments)),
	}
	for k, v := range s.KeyAngles {
		c.KeyAngles[k] = v
	}
	for k, v := range s.Assignments {
		c.Assignments[k] = v
	}
	return c
}

func ringHash(name string) int {
	h := fnv.New32a()
	h.Write([]byte(name))
	return int(h.Sum32() % 360)
}

// resolveRing finds the clockwise nearest successor: the first point at or
// past angle, wrapping around to the lowest point when none follows.
func resolveRing(points []RingPoint, angle int) (RingPoint, bool) {
	if len(points) == 0 {
		return RingPoint{}, false
	}
	for _, p := range points {
		if p.Angle >= angle {
			return p, true
		}
	}
	return points[0], true
}

func ringInsert(points []RingPoint, p RingPoint) []RingPoint {
	points = append(points, p)
	sort.Slice(points, func(i, j int) bool {
		if points[i].Angle != points[j].Angle {
			return points[i].Angle < points[j].Angle
		}
		if points[i].Server != points[j].Server {
			return points[i].Server < points[j].Server
		}
		return points[i].Index < points[j].Index
	})
	return points
}

func ringRemove(points []RingPoint, server string) []RingPoint {
	kept := points[:0:0]
	for _, p := range points {
		if p.Server != server {
			kept = append(kept, p)
		}
	}
	return kept
}

// GenerateRing places three servers as virtual points on the ring, resolves
// a handful of keys clockwise, then removes one server and reassigns only
// the keys it owned.
func GenerateRing() []step.Step[RingState] {
	servers := []string{"alpha", "beta", "gamma"}
	keys := []string{"user:42", "order:7", "img:19", "cart:3"}

	s := RingState{
		KeyAngles:   make(map[string]int),
		Assignments: make(map[string]string),
	}
	out := make([]step.Step[RingState], 0, 48)
	push := func(op step.Op, desc string, touched ...int) {
		out = append(out, step.Step[RingState]{Op: op, Description: desc, State: s.Clone(), Touched: touched})
	}

	push(step.OpInit, "empty ring, 0–359°")

	for _, srv := range servers {
		push(opAddServer, fmt.Sprintf("add server %s with %d virtual points", srv, ringVirtualPoints))
		for i := 0; i < ringVirtualPoints; i++ {
			angle := ringHash(fmt.Sprintf("%s#%d", srv, i))
			s.Points = ringInsert(s.Points, RingPoint{Angle: angle, Server: srv, Index: i})
			push(opPlacePoint, fmt.Sprintf("%s#%d placed at %d°", srv, i, angle), ringPointIndex(s.Points, srv, i))
		}
	}

	for _, key := range keys {
		angle := ringHash(key)
		s.KeyAngles[key] = angle
		push(opHashKey, fmt.Sprintf("%s hashes to %d°", key, angle))
		p, _ := resolveRing(s.Points, angle)
		s.Assignments[key] = p.Server
		push(opResolve, fmt.Sprintf("clockwise from %d° → %s#%d at %d°: %s served by %s",
			angle, p.Server, p.Index, p.Angle, key, p.Server), ringPointIndex(s.Points, p.Server, p.Index))
	}

	removed := "beta"
	before := make(map[string]string, len(s.Assignments))
	for k, v := range s.Assignments {
		before[k] = v
	}
	s.Points = ringRemove(s.Points, removed)
	push(opRemoveServer, fmt.Sprintf("remove server %s: its %d virtual points leave the ring", removed, ringVirtualPoints))

	for _, key := range keys {
		if before[key] != removed {
			push(opKeep, fmt.Sprintf("%s still resolves to %s, assignment unchanged", key, before[key]))
			continue
		}
		p, _ := resolveRing(s.Points, s.KeyAngles[key])
		s.Assignments[key] = p.Server
		push(opReassign, fmt.Sprintf("%s reassigned %s → %s", key, removed, p.Server),
			ringPointIndex(s.Points, p.Server, p.Index))
	}

	counts := make(map[string]int)
	for _, srv := range s.Assignments {
		counts[srv]++
	}
	push(step.OpDone, fmt.Sprintf("%d keys across %d servers: %s", len(keys), len(counts), ringCounts(counts)))
	return out
}

func ringPointIndex(points []RingPoint, server string, index int) int {
	for i, p := range points {
		if p.Server == server && p.Index == index {
			return i
		}
	}
	return -1
}

func ringCounts(counts map[string]int) string {
	names := make([]string, 0, len(counts))
	for n := range counts {
		names = append(names, n)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = fmt.Sprintf("%s=%d", n, counts[n])
	}
	return strings.Join(parts, " ")
}

func renderRing(s RingState) string {
	var b strings.Builder
	parts := make([]string, len(s.Points))
	for i, p := range s.Points {
		parts[i] = fmt.Sprintf("%d°:%s#%d", p.Angle, p.Server, p.Index)
	}
	b.WriteString("ring: [" + strings.Join(parts, " ") + "]")
	if len(s.Assignments) > 0 {
		keys := make([]string, 0, len(s.Assignments))
		for k := range s.Assignments {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		kv := make([]string, len(keys))
		for i, k := range keys {
			kv[i] = fmt.Sprintf("%s→%s", k, s.Assignments[k])
		}
		b.WriteString("\nkeys: " + strings.Join(kv, "  "))
	}
	return b.String()
}
