package sim

import (
	"math/rand"
	"testing"
)

// TestPoolInvariant verifies active+free equals total constructed after any
// mix of acquires and releases followed by ReleaseAll.
func TestPoolInvariant(t *testing.T) {
	pool := NewPool(func() *Bullet { return &Bullet{} }, func(b *Bullet) { b.reset() })
	rng := rand.New(rand.NewSource(42))

	var live []*Bullet
	for i := 0; i < 1000; i++ {
		if len(live) == 0 || rng.Intn(3) > 0 {
			live = append(live, pool.Acquire())
		} else {
			idx := rng.Intn(len(live))
			pool.Release(live[idx])
			live = append(live[:idx], live[idx+1:]...)
		}

		if got := pool.ActiveCount() + pool.FreeCount(); got != pool.Constructed() {
			t.Fatalf("step %d: active %d + free %d != constructed %d",
				i, pool.ActiveCount(), pool.FreeCount(), pool.Constructed())
		}
	}

	pool.ReleaseAll()
	if pool.ActiveCount() != 0 {
		t.Fatalf("active after ReleaseAll = %d, want 0", pool.ActiveCount())
	}
	if pool.FreeCount() != pool.Constructed() {
		t.Fatalf("free %d != constructed %d after ReleaseAll", pool.FreeCount(), pool.Constructed())
	}
}

// TestPoolNoDualMembership checks no item sits in both the active set and
// the free list.
func TestPoolNoDualMembership(t *testing.T) {
	pool := NewPool(func() *Enemy { return &Enemy{} }, func(e *Enemy) { e.reset() })

	a := pool.Acquire()
	b := pool.Acquire()
	pool.Release(a)

	for _, item := range pool.Active() {
		if item == a {
			t.Fatal("released item still in active set")
		}
	}
	if pool.ActiveCount() != 1 || pool.FreeCount() != 1 {
		t.Fatalf("counts active=%d free=%d, want 1/1", pool.ActiveCount(), pool.FreeCount())
	}
	_ = b
}

// TestPoolIdempotentRelease verifies a double release leaves the pool
// exactly as a single release does.
func TestPoolIdempotentRelease(t *testing.T) {
	pool := NewPool(func() *Particle { return &Particle{} }, func(p *Particle) { p.reset() })

	a := pool.Acquire()
	pool.Acquire()

	pool.Release(a)
	active, free := pool.ActiveCount(), pool.FreeCount()

	pool.Release(a)
	if pool.ActiveCount() != active || pool.FreeCount() != free {
		t.Fatalf("double release changed state: active %d->%d free %d->%d",
			active, pool.ActiveCount(), free, pool.FreeCount())
	}
}

// TestPoolReleaseUntracked verifies releasing a foreign item is a no-op.
func TestPoolReleaseUntracked(t *testing.T) {
	pool := NewPool(func() *Collectible { return &Collectible{} }, func(c *Collectible) { c.reset() })
	pool.Acquire()

	pool.Release(&Collectible{})

	if pool.FreeCount() != 0 {
		t.Fatalf("untracked release grew free list to %d", pool.FreeCount())
	}
	if pool.Constructed() != 1 {
		t.Fatalf("constructed = %d, want 1", pool.Constructed())
	}
}

// TestPoolReuse verifies Acquire drains the free list before constructing.
func TestPoolReuse(t *testing.T) {
	pool := NewPool(func() *Bullet { return &Bullet{} }, func(b *Bullet) { b.reset() })

	a := pool.Acquire()
	a.Damage = 99
	pool.Release(a)

	b := pool.Acquire()
	if b != a {
		t.Fatal("expected the freed item back from Acquire")
	}
	if b.Damage != 0 {
		t.Fatalf("reused item not reset, damage = %v", b.Damage)
	}
	if pool.Constructed() != 1 {
		t.Fatalf("constructed = %d, want 1", pool.Constructed())
	}
}
