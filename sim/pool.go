package sim

// Pool is a reuse-based allocator for one entity variant. Released items go
// onto a free-list stack and are handed back out by Acquire before any new
// item is constructed, avoiding per-frame allocation churn.
//
// Invariants: an item is a member of exactly one of {free list, active set}
// at any time; Acquire never returns an item already in the active set;
// Release of an item that is not currently active is a no-op, so a
// double-release can never corrupt the free list. Pools grow unbounded
// under sustained demand.
type Pool[T comparable] struct {
	factory func() T
	reset   func(T)

	free        []T
	active      []T       // insertion-ordered for stable iteration
	index       map[T]int // item -> position in active
	constructed int
}

// NewPool creates a pool that builds items with factory and clears them
// with reset before they return to the free list.
func NewPool[T comparable](factory func() T, reset func(T)) *Pool[T] {
	return &Pool[T]{
		factory: factory,
		reset:   reset,
		index:   make(map[T]int),
	}
}

// Acquire returns a ready-to-use item, drawing from the free list if
// non-empty, else constructing a new one.
func (p *Pool[T]) Acquire() T {
	var item T
	if n := len(p.free); n > 0 {
		item = p.free[n-1]
		var zero T
		p.free[n-1] = zero
		p.free = p.free[:n-1]
	} else {
		item = p.factory()
		p.constructed++
	}
	p.index[item] = len(p.active)
	p.active = append(p.active, item)
	return item
}

// Release resets item and returns it to the free list. Items not currently
// tracked as active are ignored.
func (p *Pool[T]) Release(item T) {
	i, ok := p.index[item]
	if !ok {
		return
	}
	// Swap-remove from the active slice, keeping the index map consistent.
	last := len(p.active) - 1
	moved := p.active[last]
	p.active[i] = moved
	p.index[moved] = i
	var zero T
	p.active[last] = zero
	p.active = p.active[:last]
	delete(p.index, item)

	p.reset(item)
	p.free = append(p.free, item)
}

// ReleaseAll reclaims every currently active item. Used on game restart.
func (p *Pool[T]) ReleaseAll() {
	for len(p.active) > 0 {
		p.Release(p.active[len(p.active)-1])
	}
}

// Active returns the live items. The slice is owned by the pool and is
// invalidated by Acquire and Release; callers iterate, they do not retain.
func (p *Pool[T]) Active() []T {
	return p.active
}

// ActiveCount returns the number of items currently checked out.
func (p *Pool[T]) ActiveCount() int {
	return len(p.active)
}

// FreeCount returns the number of items waiting on the free list.
func (p *Pool[T]) FreeCount() int {
	return len(p.free)
}

// Constructed returns the total number of items ever built by the factory.
func (p *Pool[T]) Constructed() int {
	return p.constructed
}
