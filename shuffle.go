package ringq

import "math/rand/v2"

// golden is 2^64 divided by the golden ratio, the usual odd constant
// for spreading one 64-bit seed over a second word.
const golden = 0x9e3779b97f4a7c15

// NewRand returns a pseudo-random generator with a fixed seed, for
// reproducible shuffles. Not cryptographically safe.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^golden))
}

func intn(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}

// Shuffle reorders the queue uniformly at random with a Fisher-Yates
// pass that relinks elements rather than copying values. Walking from
// the back, each position is exchanged with an element picked from
// the positions not yet fixed. A nil rng uses the process-wide
// generator.
//
// Returns false, leaving the queue untouched, when it is nil or holds
// fewer than two elements.
func (q *Queue) Shuffle(rng *rand.Rand) bool {
	if q.Empty() || q.Singular() {
		return false
	}

	head := &q.root
	remaining := q.Size()
	for tail := head.prev; tail != head; tail, remaining = tail.prev, remaining-1 {
		target := head.next
		for j := intn(rng, remaining); j > 0; j-- {
			target = target.next
		}
		if target == tail {
			continue
		}

		prev := target.prev
		target.moveAfter(tail)
		tail.moveAfter(prev)
		tail = target
	}
	return true
}
