package ringq

import (
	"fmt"

	"github.com/tychoish/ringq/ers"
)

// ErrContainerStateImpossible is returned (wrapped) by Validate when
// the links of a queue no longer describe a single well formed ring.
const ErrContainerStateImpossible ers.Error = ers.Error("impossible container state")

var errCorrupted = fmt.Errorf("%w: %w", ErrContainerStateImpossible, ers.ErrInvariantViolation)

// Validate walks the queue and checks that every element's links
// agree with its neighbors' and that the walk returns to the
// sentinel. Errors are rooted in both ErrContainerStateImpossible and
// ers.ErrInvariantViolation. Nil queues are valid.
func (q *Queue) Validate() error {
	if q == nil {
		return nil
	}

	head := q.sentinel()
	prev := head
	idx := 0
	for e := head.next; e != head; prev, e = e, e.next {
		switch {
		case e == nil:
			return corrupted("element %d has no next link", idx-1)
		case e.root:
			return corrupted("element %d links to a foreign sentinel", idx-1)
		case e.prev != prev:
			return corrupted("element %d previous link does not match", idx)
		}
		idx++
	}

	return ers.Whenf(head.prev != prev, "sentinel previous link does not reach the last element (%d): %w", idx-1, errCorrupted)
}

func corrupted(tmpl string, args ...any) error { return ers.Wrapf(errCorrupted, tmpl, args...) }
