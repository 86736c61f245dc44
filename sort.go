package ringq

// lessThan reports whether a must be placed strictly before b.
type lessThan func(a, b string) bool

func ascending(a, b string) bool  { return a < b }
func descending(a, b string) bool { return a > b }

func order(descend bool) lessThan {
	if descend {
		return descending
	}
	return ascending
}

// Sort orders the queue by value, byte-wise, ascending or (when
// descend is true) descending, using a top-down merge sort that only
// relinks elements and allocates nothing. The sort is stable:
// elements with equal values keep their relative order.
func (q *Queue) Sort(descend bool) {
	if q.Empty() || q.Singular() {
		return
	}
	sortRun(&q.root, q.Size(), order(descend))
}

// IsSorted reports whether the queue is in ascending order, or in
// descending order when descend is true. Nil and empty queues are
// sorted.
func (q *Queue) IsSorted(descend bool) bool {
	if q.Empty() {
		return true
	}

	lt := order(descend)
	for e := q.root.next.next; e != &q.root; e = e.next {
		if lt(e.value, e.prev.value) {
			return false
		}
	}
	return true
}

// sortRun sorts the n elements that follow before, in place, and
// returns the last element of the sorted run. The front half is the
// larger one when n is odd, which puts the split right after the
// element middle would pick.
func sortRun(before *Element, n int, lt lessThan) *Element {
	switch n {
	case 0:
		return before
	case 1:
		return before.next
	}

	left := (n + 1) / 2
	leftTail := sortRun(before, left, lt)
	rightTail := sortRun(leftTail, n-left, lt)

	return mergeRuns(before, leftTail, rightTail, left, n-left, lt)
}

// middle walks one pointer from each end toward the other, one step
// at a time, and returns the front pointer once they meet or become
// adjacent. For an even number of elements this is the front-side
// of the two central elements. The queue must not be empty.
func (q *Queue) middle() *Element {
	first, end := q.root.next, q.root.prev
	for first != end && first.next != end {
		first, end = first.next, end.prev
	}
	return first
}

// mergeRuns merges two adjacent sorted runs: the nl elements after
// before, ending at leftTail, and the nr elements after leftTail,
// ending at rightTail. Right elements are moved in front of the first
// left element that sorts after them, so the left run wins ties.
// Returns the last element of the merged run.
func mergeRuns(before, leftTail, rightTail *Element, nl, nr int, lt lessThan) *Element {
	left, right := before.next, leftTail.next
	for nl > 0 && nr > 0 {
		if lt(right.value, left.value) {
			next := right.next
			right.moveBefore(left)
			right = next
			nr--
			continue
		}
		left = left.next
		nl--
	}

	if nr == 0 {
		return leftTail
	}
	return rightTail
}
