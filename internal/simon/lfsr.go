package simon

import "math/bits"

// lfsrWidth is fixed: every published constant sequence comes from a 5-bit
// register.
const lfsrWidth = 5

const lfsrMask = 1<<lfsrWidth - 1

// Feedback configuration indices. The reverse matrix sits at index 0 and
// the forward matrix at index 1, matching the engine's direction encoding.
const (
	lfsrReverse = 0
	lfsrForward = 1
)

// FeedbackMatrix is a 5x5 GF(2) next-state matrix stored column-wise:
// bit i of the next state is the parity of state&m[i].
type FeedbackMatrix [lfsrWidth]uint8

func (m FeedbackMatrix) apply(state uint8) uint8 {
	var next uint8
	for i := 0; i < lfsrWidth; i++ {
		next |= uint8(bits.OnesCount8(state&m[i])&1) << uint(i)
	}
	return next
}

// ReconfigurableLFSR is a 5-bit register with two selectable linear
// feedback configurations. LoadSeed and Advance are mutually exclusive
// within one engine step: a step either reseeds or advances, never both.
type ReconfigurableLFSR struct {
	state    uint8
	matrices [2]FeedbackMatrix
}

// NewReconfigurableLFSR builds a register over the given reverse (index 0)
// and forward (index 1) matrices. State is undefined until LoadSeed.
func NewReconfigurableLFSR(reverse, forward FeedbackMatrix) ReconfigurableLFSR {
	return ReconfigurableLFSR{matrices: [2]FeedbackMatrix{reverse, forward}}
}

// LoadSeed unconditionally overwrites the register.
func (l *ReconfigurableLFSR) LoadSeed(seed uint8) {
	l.state = seed & lfsrMask
}

// Output is the most-significant state bit, i.e. the bit any step observes
// before that step's update is applied.
func (l *ReconfigurableLFSR) Output() uint8 {
	return l.state >> (lfsrWidth - 1)
}

// Advance applies the selected feedback matrix and returns the pre-update
// output bit.
func (l *ReconfigurableLFSR) Advance(config int) uint8 {
	out := l.Output()
	l.state = l.matrices[config].apply(l.state)
	return out
}
