// Package ringq provides a queue of strings built on an intrusive,
// circular, doubly linked list.
//
// Every element carries its own links; the queue's sentinel element
// closes the ring. All of the restructuring operations (reverse,
// k-group reverse, sort, merge, shuffle, and the filters) work by
// relinking elements in place, so values are never copied and no
// element is reallocated.
//
// Queues are not safe for concurrent use: callers that share a queue
// between goroutines must serialize access themselves. All methods
// accept nil receivers and report the zero result.
package ringq
