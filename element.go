package ringq

// Element is the unit stored in a Queue: the two ring links and an
// owned string value. Elements are provided by the Front/Back
// accessors and by the Remove operations. Use Ok() to tell a live
// element from the queue's sentinel or a missing (nil) element.
//
// An Element is owned by exactly one place at a time: the queue it
// is linked into, or, once removed, the caller.
type Element struct {
	next  *Element
	prev  *Element
	root  bool
	value string
}

// NewElement produces a detached element holding the value, ready to
// be linked with InsertElementHead or InsertElementTail.
func NewElement(val string) *Element { return &Element{value: val} }

// String returns the value of the element.
func (e *Element) String() string { return e.Value() }

// Value accesses the element's value. Nil elements and sentinels
// report the empty string.
func (e *Element) Value() (out string) {
	if e.Ok() {
		out = e.value
	}
	return
}

// Ok checks that an element is a live payload element: non-nil and
// not the sentinel of a queue.
func (e *Element) Ok() bool { return e != nil && !e.root }

// Next produces the next element. At the end of a queue this is the
// sentinel, which reports false for Ok. Detached elements return nil.
func (e *Element) Next() *Element {
	if e == nil {
		return nil
	}
	return e.next
}

// Previous produces the previous element. At the front of a queue
// this is the sentinel, which reports false for Ok. Detached elements
// return nil.
func (e *Element) Previous() *Element {
	if e == nil {
		return nil
	}
	return e.prev
}

// Release drops the value held by a detached element. Releasing an
// element that is still linked into a queue, or the sentinel, is a
// noop; remove it first.
func (e *Element) Release() {
	if !e.Ok() || !e.isDetached() {
		return
	}
	e.value = ""
}

func (e *Element) isDetached() bool { return e.next == nil && e.prev == nil }

// linkAfter inserts the detached element val directly after e.
func (e *Element) linkAfter(val *Element) {
	val.prev = e
	val.next = e.next
	val.prev.next = val
	val.next.prev = val
}

// unlink removes e from its ring and clears its links.
func (e *Element) unlink() {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil
	e.prev = nil
}

// moveAfter relinks e (already a member of some ring) so that it
// directly follows at. Both neighbors are updated before e is
// reattached, so the ring is never left half linked.
func (e *Element) moveAfter(at *Element) {
	if e == at || at.next == e {
		return
	}
	e.unlink()
	at.linkAfter(e)
}

// moveBefore relinks e so that it directly precedes at.
func (e *Element) moveBefore(at *Element) { e.moveAfter(at.prev) }

// spliceRange moves the run first..last (inclusive, in ring order)
// out of its ring and places it directly before at. O(1).
func spliceRange(first, last, at *Element) {
	// detach
	first.prev.next = last.next
	last.next.prev = first.prev

	// reattach
	first.prev = at.prev
	last.next = at
	at.prev.next = first
	at.prev = last
}
