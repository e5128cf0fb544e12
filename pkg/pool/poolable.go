package pool

import "sync/atomic"

// Poolable is the contract every pooled instance must satisfy. The in-use
// flag is authoritative: the pool only ever hands out instances whose flag
// reads false, and marks the flag while holding the pool lock so that two
// concurrent checkouts can never select the same instance.
//
// The flag may also be cleared by the instance itself (self-despawn) or by an
// OnDespawn hook; the pool never clears it on Despawn.
type Poolable interface {
	// InUse reports whether the instance is currently checked out.
	InUse() bool
	// SetInUse marks or clears the checked-out state.
	SetInUse(bool)
}

// BasePoolable is a ready-made Poolable implementation backed by an atomic
// flag. Embed it in a resource type to make it poolable:
//
//	type conn struct {
//	    pool.BasePoolable
//	    // ... resource state
//	}
type BasePoolable struct {
	inUse atomic.Bool
}

// InUse reports whether the instance is currently checked out.
func (b *BasePoolable) InUse() bool {
	return b.inUse.Load()
}

// SetInUse marks or clears the checked-out state. Calling SetInUse(false)
// from the instance itself is the self-despawn path: the instance becomes
// eligible for the next checkout immediately.
func (b *BasePoolable) SetInUse(v bool) {
	b.inUse.Store(v)
}
