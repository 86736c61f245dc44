package ringq

// DeleteMid removes and releases the middle element of the queue:
// index (n-1)/2 for an odd length n, and index n/2-1, the front-side
// of the two central elements, for an even length. Returns false for
// a nil or empty queue.
func (q *Queue) DeleteMid() bool {
	if q.Empty() {
		return false
	}

	mid := q.middle()
	mid.unlink()
	mid.Release()
	return true
}

// DeleteDup removes every element whose value occurs more than once
// in a row: each run of two or more equal, adjacent values is
// deleted entirely. The queue must already be sorted for this to
// remove all duplicates; runs that are not adjacent are not detected.
// Returns false for a nil or empty queue.
func (q *Queue) DeleteDup() bool {
	if q.Empty() {
		return false
	}

	head := &q.root
	dup := false
	for e, next := head.next, head.next.next; e != head; e, next = next, next.next {
		switch {
		case next != head && e.value == next.value:
			dup = true
		case dup:
			dup = false
		default:
			continue
		}
		e.unlink()
		e.Release()
	}
	return true
}

// Ascend removes every element that has a strictly smaller value
// anywhere to its right, leaving a non-decreasing queue. Returns the
// number of remaining elements.
func (q *Queue) Ascend() int {
	return q.prune(func(val, floor string) bool { return val > floor })
}

// Descend removes every element that has a strictly greater value
// anywhere to its right, leaving a non-increasing queue. Returns the
// number of remaining elements.
func (q *Queue) Descend() int {
	return q.prune(func(val, ceiling string) bool { return val < ceiling })
}

// prune walks from the back to the front carrying the extreme value
// of the surviving elements to the right, and releases every element
// that the extreme dominates.
func (q *Queue) prune(dominated func(val, extreme string) bool) int {
	if q.Empty() {
		return 0
	}

	head := &q.root
	extreme := head.prev
	count := 1
	for e, prev := extreme.prev, extreme.prev.prev; e != head; e, prev = prev, prev.prev {
		if dominated(e.value, extreme.value) {
			e.unlink()
			e.Release()
			continue
		}
		extreme = e
		count++
	}
	return count
}
