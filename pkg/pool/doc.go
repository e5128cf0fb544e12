// Package pool implements a slab-based, type-safe object pool for
// expensive-to-create resources. Callers check instances out ("spawn") and
// return them ("despawn") instead of constructing and destroying them on
// every use, keeping creation counts controlled and bounded.
//
// # Architecture
//
// The pool owns an ordered slab of instances of a single resource type. A
// checkout scans the slab round-robin from a rotating cursor and hands out
// the first free instance; the cursor advances past the selection so
// repeated checkouts visit slots in cyclic order. When every slot is taken,
// the ExhaustionBehaviour fixed at Initialize decides the outcome:
//
//   - Throw: fail with an exhausted error
//   - NullOrDefault: return the zero value of T, no error
//   - AddOne: create one extra instance and return it
//   - Double: double the slab, then retry the scan once
//
// Core Types:
//
//   - Pool[T]: the generic pool engine
//   - Poolable: the contract pooled instances satisfy (an in-use flag)
//   - BasePoolable: an embeddable atomic-flag implementation of Poolable
//   - Hooks[T]: optional OnCreate/OnSpawn/OnDespawn/OnDestroy callbacks
//   - Snapshot: a read-only diagnostic view of pool state
//
// # Concurrency
//
// Initialize, TrySpawn and Destroy share one per-pool lock, so concurrent
// checkouts never select the same free slot and growth is indivisible with
// respect to other checkout attempts. Factory callbacks run with the lock
// held; a slow factory blocks concurrent checkouts for its duration.
// Despawn is intentionally outside the lock: the pool trusts the caller and
// leaves flag clearing to the OnDespawn hook or the instance's own
// self-despawn path.
//
// # Example
//
//	type conn struct {
//	    pool.BasePoolable
//	}
//
//	p := pool.New[*conn]("connections")
//	if err := p.Initialize(func() *conn { return &conn{} }, 8, pool.Throw); err != nil {
//	    return err
//	}
//	c, err := p.Spawn()
//	if err != nil {
//	    return err
//	}
//	// ... use c ...
//	p.Despawn(c)
package pool
