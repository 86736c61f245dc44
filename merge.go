package ringq

// Chain links a set of independent queues together so that they can
// be merged into one. A Chain references its queues but does not own
// them. The zero value is an empty chain ready to use.
type Chain struct {
	root   Context
	length int
}

// Context is a chain's record for one queue: the queue itself, its
// element count as of the last time the chain looked, and its
// position in the chain.
type Context struct {
	next  *Context
	prev  *Context
	root  bool
	id    int
	size  int
	queue *Queue
}

// NewChain returns an empty chain.
func NewChain() *Chain { return new(Chain).init() }

func (c *Chain) init() *Chain {
	c.root.root = true
	c.root.next = &c.root
	c.root.prev = &c.root
	return c
}

func (c *Chain) sentinel() *Context {
	if c.root.next == nil {
		c.init()
	}
	return &c.root
}

// Add appends a context for q to the end of the chain and returns
// it. A nil queue is replaced with a new empty one. Returns nil when
// the chain is nil or q is already part of the chain.
func (c *Chain) Add(q *Queue) *Context {
	if c == nil {
		return nil
	}
	if q == nil {
		q = New()
	}

	head := c.sentinel()
	for ctx := head.next; ctx != head; ctx = ctx.next {
		if ctx.queue == q {
			return nil
		}
	}

	ctx := &Context{id: c.length, size: q.Size(), queue: q}
	ctx.prev = head.prev
	ctx.next = head
	head.prev.next = ctx
	head.prev = ctx
	c.length++
	return ctx
}

// Len reports the number of contexts in the chain.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return c.length
}

// Front returns the first context in the chain. On an empty chain
// this is the chain's sentinel, which reports false for Ok.
func (c *Chain) Front() *Context {
	if c == nil {
		return nil
	}
	return c.sentinel().next
}

// Merge moves the elements of every queue in the chain into the
// first queue, and sorts the combined queue in ascending order, or in
// descending order when descend is true. Each queue is spliced in
// O(1); the later queues are left empty but are not released. Returns
// the total number of elements, or 0 for a nil or empty chain.
func (c *Chain) Merge(descend bool) int {
	if c.Len() == 0 {
		return 0
	}

	head := &c.root
	first := head.next
	total := first.queue.Size()
	for ctx := first.next; ctx != head; ctx = ctx.next {
		total += ctx.queue.Size()
		first.queue.Splice(ctx.queue)
		ctx.size = 0
	}

	first.size = total
	first.queue.Sort(descend)
	return total
}

// Ok reports whether the context refers to a queue, rather than being
// nil or the chain's sentinel.
func (ctx *Context) Ok() bool { return ctx != nil && !ctx.root }

// Next returns the following context; past the end of the chain this
// is the sentinel, which reports false for Ok.
func (ctx *Context) Next() *Context {
	if ctx == nil {
		return nil
	}
	return ctx.next
}

// Queue returns the queue the context refers to.
func (ctx *Context) Queue() *Queue {
	if !ctx.Ok() {
		return nil
	}
	return ctx.queue
}

// ID returns the context's position in the chain at the time it was
// added.
func (ctx *Context) ID() int {
	if !ctx.Ok() {
		return 0
	}
	return ctx.id
}

// Size returns the element count recorded for the context when it
// was added, or after the most recent Merge.
func (ctx *Context) Size() int {
	if !ctx.Ok() {
		return 0
	}
	return ctx.size
}
