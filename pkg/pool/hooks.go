package pool

// Hooks carries the four overridable lifecycle callbacks a concrete pool can
// attach to synchronize pooled-resource state with pool transitions, for
// example activating a resource on spawn and deactivating it on despawn.
// Nil fields are no-ops; the zero value is a valid, fully inert hook set.
//
// OnCreate and OnDestroy fire while the pool lock is held (during Initialize,
// exhaustion-triggered growth and Destroy), so they must not call back into
// the pool. OnSpawn and OnDespawn fire outside the lock.
type Hooks[T Poolable] struct {
	// OnCreate fires once per instance after a creation batch completes:
	// every instance of the batch exists before the first OnCreate runs.
	OnCreate func(item T)
	// OnSpawn fires after a successful checkout with the spawn-time
	// arguments passed to SpawnWith, e.g. placement data.
	OnSpawn func(item T, args ...any)
	// OnDespawn fires when the instance is returned. A typical
	// implementation clears the in-use flag; the pool itself never does.
	OnDespawn func(item T)
	// OnDestroy fires once per instance during Destroy and during the
	// teardown pass of a re-Initialize.
	OnDestroy func(item T)
}

func (h Hooks[T]) create(item T) {
	if h.OnCreate != nil {
		h.OnCreate(item)
	}
}

func (h Hooks[T]) spawn(item T, args ...any) {
	if h.OnSpawn != nil {
		h.OnSpawn(item, args...)
	}
}

func (h Hooks[T]) despawn(item T) {
	if h.OnDespawn != nil {
		h.OnDespawn(item)
	}
}

func (h Hooks[T]) destroy(item T) {
	if h.OnDestroy != nil {
		h.OnDestroy(item)
	}
}
