package ringq

import (
	"iter"
	"strings"
)

// Queue is a deque of strings built on an intrusive circular doubly
// linked list. The queue's own sentinel element closes the ring, so
// the first element follows the sentinel and the last element
// precedes it. Callers are responsible for their own concurrency
// control.
//
// The zero value is an empty queue ready to use. Every method is safe
// to call on a nil *Queue, and reports the zero result.
type Queue struct {
	root Element
}

// New returns an empty queue.
func New() *Queue { return new(Queue).init() }

func (q *Queue) init() *Queue {
	q.root.root = true
	q.root.next = &q.root
	q.root.prev = &q.root
	return q
}

// sentinel returns the ring's anchor, setting up the ring for zero
// valued queues.
func (q *Queue) sentinel() *Element {
	if q.root.next == nil {
		q.init()
	}
	return &q.root
}

// Free releases every element in the queue and leaves the queue
// empty. The traversal holds on to the next element before releasing
// the current one.
func (q *Queue) Free() {
	if q == nil {
		return
	}

	head := q.sentinel()
	for e, next := head.next, head.next.next; e != head; e, next = next, next.next {
		e.next, e.prev = nil, nil
		e.Release()
	}
	q.init()
}

// InsertHead adds a new element holding s to the front of the
// queue. Returns false only when the queue is nil.
func (q *Queue) InsertHead(s string) bool {
	if q == nil {
		return false
	}
	q.sentinel().linkAfter(NewElement(s))
	return true
}

// InsertTail adds a new element holding s to the back of the
// queue. Returns false only when the queue is nil.
func (q *Queue) InsertTail(s string) bool {
	if q == nil {
		return false
	}
	q.sentinel().prev.linkAfter(NewElement(s))
	return true
}

// InsertElementHead links a detached element, typically one returned
// by RemoveHead or RemoveTail, to the front of the queue, returning
// ownership of it to the queue. Elements that are nil, attached, or
// sentinels are rejected.
func (q *Queue) InsertElementHead(e *Element) bool {
	if q == nil || !e.Ok() || !e.isDetached() {
		return false
	}
	q.sentinel().linkAfter(e)
	return true
}

// InsertElementTail links a detached element to the back of the
// queue. See InsertElementHead.
func (q *Queue) InsertElementTail(e *Element) bool {
	if q == nil || !e.Ok() || !e.isDetached() {
		return false
	}
	q.sentinel().prev.linkAfter(e)
	return true
}

// RemoveHead detaches the first element and hands it to the caller,
// who may Release it or insert it elsewhere. When buf is non-empty,
// up to len(buf)-1 bytes of the value are copied into it followed by
// a NUL byte. Returns nil for a nil or empty queue.
func (q *Queue) RemoveHead(buf []byte) *Element {
	if q.Empty() {
		return nil
	}
	return q.remove(q.root.next, buf)
}

// RemoveTail detaches the last element and hands it to the caller.
// See RemoveHead.
func (q *Queue) RemoveTail(buf []byte) *Element {
	if q.Empty() {
		return nil
	}
	return q.remove(q.root.prev, buf)
}

func (*Queue) remove(e *Element, buf []byte) *Element {
	copyValue(buf, e.value)
	e.unlink()
	return e
}

// copyValue writes a NUL terminated, possibly truncated, copy of val
// into buf.
func copyValue(buf []byte, val string) {
	if len(buf) == 0 {
		return
	}
	n := copy(buf[:len(buf)-1], val)
	buf[n] = 0
}

// Size counts the elements in the queue by walking the ring. This is
// an O(n) operation.
func (q *Queue) Size() int {
	if q.Empty() {
		return 0
	}

	count := 0
	for e := q.root.next; e != &q.root; e = e.next {
		count++
	}
	return count
}

// Empty reports whether the queue holds no elements. Nil queues are
// empty.
func (q *Queue) Empty() bool { return q == nil || q.sentinel().next == &q.root }

// Singular reports whether the queue holds exactly one element.
func (q *Queue) Singular() bool { return !q.Empty() && q.root.next == q.root.prev }

// Front returns the first element of the queue. If the queue is
// empty this is the sentinel, which reports false for Ok. You can use
// this to begin a c-style iteration over the queue:
//
//	for e := q.Front(); e.Ok(); e = e.Next() {
//	       // operate
//	}
//
// Returns nil for a nil queue.
func (q *Queue) Front() *Element {
	if q == nil {
		return nil
	}
	return q.sentinel().next
}

// Back returns the last element of the queue, or the sentinel when
// the queue is empty. Returns nil for a nil queue.
//
//	for e := q.Back(); e.Ok(); e = e.Previous() {
//	       // operate
//	}
func (q *Queue) Back() *Element {
	if q == nil {
		return nil
	}
	return q.sentinel().prev
}

// Seq returns a native go iterator over the values in the queue,
// front to back. The queue must not be modified during iteration.
func (q *Queue) Seq() iter.Seq[string] {
	return func(yield func(string) bool) {
		for e := q.Front(); e.Ok(); e = e.next {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Values exports the contents of the queue to a slice.
func (q *Queue) Values() []string {
	out := []string{}
	for v := range q.Seq() {
		out = append(out, v)
	}
	return out
}

// String renders the queue as a bracketed, space separated list.
func (q *Queue) String() string { return "[" + strings.Join(q.Values(), " ") + "]" }

// Splice moves every element of other to the back of q in O(1),
// leaving other empty. Splicing a queue into itself is a noop.
func (q *Queue) Splice(other *Queue) {
	if q == nil || other == q || other.Empty() {
		return
	}
	spliceRange(other.root.next, other.root.prev, q.sentinel())
}
