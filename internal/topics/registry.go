// Package topics holds the step generators: pure functions that replay a
// canned operation script against a local structure and freeze a snapshot
// after every meaningful sub-action. Generators never reuse a mutable
// container across steps; each push deep-copies the working state.
package topics

import (
	"fmt"
	"sort"

	"github.com/san-kum/algowalk/internal/step"
)

// Topic couples a walkthrough generator with its display metadata.
type Topic struct {
	Name     string
	Title    string
	Summary  string
	Generate func() []step.Frame
}

type Registry struct {
	topics map[string]Topic
}

func NewRegistry() *Registry {
	r := &Registry{topics: make(map[string]Topic)}

	r.topics["lru"] = Topic{
		Name: "lru", Title: "LRU Cache",
		Summary:  "least-recently-used eviction",
		Generate: frames(GenerateLRU, renderLRU),
	}
	r.topics["deque"] = Topic{
		Name: "deque", Title: "Circular Deque",
		Summary:  "ring buffer with modulo wraparound",
		Generate: frames(GenerateDeque, renderDeque),
	}
	r.topics["heap"] = Topic{
		Name: "heap", Title: "Binary Min-Heap",
		Summary:  "sift-up and sift-down",
		Generate: frames(GenerateHeap, renderHeap),
	}
	r.topics["ring"] = Topic{
		Name: "ring", Title: "Consistent Hashing",
		Summary:  "virtual nodes on a hash ring",
		Generate: frames(GenerateRing, renderRing),
	}
	r.topics["segtree"] = Topic{
		Name: "segtree", Title: "Segment Tree",
		Summary:  "range sums with point updates",
		Generate: frames(GenerateSegTree, renderSegTree),
	}

	return r
}

func (r *Registry) Get(name string) (Topic, error) {
	t, ok := r.topics[name]
	if !ok {
		return Topic{}, fmt.Errorf("unknown topic: %s", name)
	}
	return t, nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.topics))
	for name := range r.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// frames erases a typed generator into the display form consumed by the
// playback surfaces.
func frames[S any](gen step.Generator[S], detail func(S) string) func() []step.Frame {
	return func() []step.Frame {
		steps := gen()
		out := make([]step.Frame, len(steps))
		for i, st := range steps {
			out[i] = step.Frame{
				Op:          st.Op,
				Description: st.Description,
				Detail:      detail(st.State),
				Touched:     append([]int(nil), st.Touched...),
			}
		}
		return out
	}
}
