// Package pooledobjects provides reusable object pooling for expensive-to-create
// resources. Instead of constructing and destroying heavy objects on every use,
// callers check instances out of a pool ("spawn") and return them ("despawn"),
// keeping creation counts controlled and bounded.
//
// # Architecture
//
// The module is organized around a small set of packages:
//
//   - pool: the generic pool engine — the slab of instances, the round-robin
//     checkout scan, the exhaustion policies, and the per-pool locking
//     discipline.
//   - poolerrors: structured errors with categorization and stack traces.
//   - registry: an optional process-wide registry of live pools for
//     diagnostic inspection. The pool engine works identically without it.
//   - metrics: Prometheus collectors for pool activity.
//   - config: YAML pool configuration with environment substitution.
//   - logger: structured logging built on zap.
//
// # Quick Start
//
//	import (
//	    "github.com/Clpsplug/PooledObjects/pkg/pool"
//	)
//
//	type conn struct {
//	    pool.BasePoolable
//	    // ... expensive resource state
//	}
//
//	p := pool.New[*conn]("connections")
//	if err := p.Initialize(func() *conn { return &conn{} }, 8, pool.AddOne); err != nil {
//	    // handle
//	}
//	c, err := p.Spawn()
//	// ... use c ...
//	p.Despawn(c)
//
// # Exhaustion Policies
//
// When a checkout finds no free instance, the pool applies the policy fixed at
// Initialize time: fail (Throw), return a zero-value sentinel (NullOrDefault),
// create one extra instance (AddOne), or double the slab (Double).
package pooledobjects
