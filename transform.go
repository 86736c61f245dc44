package ringq

// Reverse inverts the order of the queue in place. Each element, in
// its original order, is moved to directly follow the sentinel; no
// values are copied.
func (q *Queue) Reverse() {
	if q.Empty() {
		return
	}

	head := &q.root
	for e, next := head.next, head.next.next; e != head; e, next = next, next.next {
		e.moveAfter(head)
	}
}

// ReverseK reverses each consecutive group of k elements in place.
// A trailing group with fewer than k elements keeps its order. Values
// of k less than 2, or greater than the length of the queue, leave
// the queue unchanged.
func (q *Queue) ReverseK(k int) {
	if q.Empty() || k < 2 {
		return
	}

	head := &q.root
	anchor := head
	for {
		last := anchor
		for i := 0; i < k; i++ {
			last = last.next
			if last == head {
				return
			}
		}

		// the group's first element ends up last, and is the anchor
		// for the next group.
		first := anchor.next
		for anchor.next != last {
			anchor.next.moveAfter(last)
		}
		anchor = first
	}
}

// Swap exchanges every two adjacent elements. An odd element at the
// end stays in place.
func (q *Queue) Swap() { q.ReverseK(2) }
