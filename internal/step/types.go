package step

// Op tags the kind of transition a step represents. Each topic defines its
// own vocabulary; every walkthrough opens with OpInit and closes with OpDone.
type Op string

const (
	OpInit Op = "init"
	OpDone Op = "done"
)

// Step is one frozen snapshot of a simulated structure together with the
// narration of the transition that produced it. State must be an independent
// copy of the generator's working structure: playback renders steps in
// arbitrary order and must see each one exactly as it was when pushed.
type Step[S any] struct {
	Op          Op
	Description string
	State       S
	Touched     []int
}

// Generator produces a complete walkthrough from a canned operation script.
// Calling it twice yields structurally identical sequences.
type Generator[S any] func() []Step[S]

// Frame is the display-erased form of a step consumed by the playback
// surfaces. Detail holds the rendered snapshot text.
type Frame struct {
	Op          Op
	Description string
	Detail      string
	Touched     []int
}
