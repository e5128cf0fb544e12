package pool

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Clpsplug/PooledObjects/pkg/logger"
	"github.com/Clpsplug/PooledObjects/pkg/metrics"
	"github.com/Clpsplug/PooledObjects/pkg/poolerrors"
)

// Factory produces one new pooled instance. It is supplied by the caller at
// Initialize time and invoked only during initialization and during
// exhaustion-triggered growth. Growth runs with the pool lock held, so a slow
// factory blocks concurrent checkouts for its duration.
type Factory[T Poolable] func() T

// Pool manages a slab of reusable instances of a single resource type.
// Checkouts scan the slab round-robin starting at a rotating cursor; when no
// free instance exists, the configured ExhaustionBehaviour decides the
// outcome. Initialize, TrySpawn and Destroy share one per-pool lock, so a
// checkout can never race a growth or teardown. Despawn is deliberately
// unguarded: the pool trusts the caller and leaves flag clearing to the
// OnDespawn hook or the instance's own self-despawn path.
type Pool[T Poolable] struct {
	name      string
	logger    *zap.Logger
	hooks     Hooks[T]
	collector *metrics.Collector

	mu        sync.Mutex
	slab      []T
	cursor    int
	factory   Factory[T]
	behaviour ExhaustionBehaviour

	spawned     atomic.Uint64
	despawned   atomic.Uint64
	created     atomic.Uint64
	exhaustions atomic.Uint64
}

// Option configures a Pool at construction time.
type Option[T Poolable] func(*Pool[T])

// WithHooks attaches lifecycle callbacks to the pool.
func WithHooks[T Poolable](h Hooks[T]) Option[T] {
	return func(p *Pool[T]) { p.hooks = h }
}

// WithLogger replaces the default global logger.
func WithLogger[T Poolable](l *zap.Logger) Option[T] {
	return func(p *Pool[T]) { p.logger = l }
}

// WithCollector attaches a Prometheus metrics collector. Without one the
// pool records no metrics.
func WithCollector[T Poolable](c *metrics.Collector) Option[T] {
	return func(p *Pool[T]) { p.collector = c }
}

// New creates an uninitialized pool. The pool holds no instances until
// Initialize is called; any checkout before that fails.
func New[T Poolable](name string, opts ...Option[T]) *Pool[T] {
	p := &Pool[T]{
		name: name,
		logger: logger.Get().With(
			zap.String("component", "pool"),
			zap.String("pool", name),
		),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the pool's identifier, used in logs, metrics labels and the
// diagnostic registry.
func (p *Pool[T]) Name() string {
	return p.name
}

// Initialize fills the pool with initialCount fresh instances from factory
// and fixes the exhaustion behaviour until the next Initialize. A zero-value
// behaviour means Throw.
//
// If the slab is already populated the existing instances are torn down
// first, firing OnDestroy for each. Creation is two passes: every instance of
// the batch exists before the first OnCreate fires. The cursor resets to 0.
//
// Fails with an invalid-argument error when initialCount is not positive or
// factory is nil; no state is mutated on that path.
func (p *Pool[T]) Initialize(factory Factory[T], initialCount int, behaviour ExhaustionBehaviour) error {
	if initialCount <= 0 {
		return poolerrors.New(poolerrors.ErrorTypeInvalidArgument, "initial count must be positive").
			WithDetail("pool", p.name).
			WithDetail("initial_count", initialCount)
	}
	if factory == nil {
		return poolerrors.New(poolerrors.ErrorTypeInvalidArgument, "factory must not be nil").
			WithDetail("pool", p.name)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.slab) > 0 {
		p.teardownLocked()
	}

	p.factory = factory
	p.behaviour = behaviour
	p.growLocked(initialCount, "initialize")
	p.cursor = 0

	p.logger.Info("pool initialized",
		zap.Int("instances", initialCount),
		zap.Stringer("behaviour", behaviour))
	if p.collector != nil {
		p.collector.SetAvailable(p.availableLocked())
	}
	return nil
}

// TrySpawn returns one available instance, marking it in use, or applies the
// exhaustion behaviour when every slot is taken. Under NullOrDefault an
// exhausted pool yields the zero value of T with a nil error; the Throw
// behaviour yields an exhausted error instead. A pool with an empty slab
// fails with a not-initialized error.
func (p *Pool[T]) TrySpawn() (T, error) {
	item, _, err := p.trySpawn()
	return item, err
}

// trySpawn is the checkout core. ok reports whether a real instance was
// selected, distinguishing the NullOrDefault sentinel from a success so the
// spawn front-ends know whether to fire OnSpawn.
func (p *Pool[T]) trySpawn() (item T, ok bool, err error) {
	var zero T
	start := time.Now()

	p.mu.Lock()
	n := len(p.slab)
	if n == 0 {
		p.mu.Unlock()
		if p.collector != nil {
			p.collector.RecordSpawn("not_initialized", time.Since(start))
		}
		return zero, false, poolerrors.New(poolerrors.ErrorTypeNotInitialized, "pool is not initialized").
			WithDetail("pool", p.name)
	}

	if it, found := p.scanLocked(); found {
		it.SetInUse(true)
		p.mu.Unlock()
		p.noteSpawn(start)
		return it, true, nil
	}

	// Every slot is taken; the behaviour fixed at Initialize decides.
	p.exhaustions.Add(1)
	if p.collector != nil {
		p.collector.RecordExhaustion(p.behaviour.String())
	}

	switch p.behaviour {
	case NullOrDefault:
		p.mu.Unlock()
		if p.collector != nil {
			p.collector.RecordSpawn("sentinel", time.Since(start))
		}
		return zero, false, nil

	case AddOne:
		batch := p.growLocked(1, "add_one")
		it := batch[0]
		it.SetInUse(true)
		p.mu.Unlock()
		p.logger.Debug("pool grew by one", zap.Int("instances", n+1))
		p.noteSpawn(start)
		return it, true, nil

	case Double:
		p.growLocked(n, "double")
		// The retry cannot miss: every appended instance is free.
		it, _ := p.scanLocked()
		it.SetInUse(true)
		p.mu.Unlock()
		p.logger.Debug("pool doubled", zap.Int("instances", n*2))
		p.noteSpawn(start)
		return it, true, nil

	default: // Throw
		p.mu.Unlock()
		if p.collector != nil {
			p.collector.RecordSpawn("exhausted", time.Since(start))
		}
		return zero, false, poolerrors.New(poolerrors.ErrorTypeExhausted, "no free instance in pool").
			WithDetail("pool", p.name).
			WithDetail("instance_count", n)
	}
}

// Spawn checks out one instance and fires OnSpawn with no extra arguments.
func (p *Pool[T]) Spawn() (T, error) {
	return p.SpawnWith()
}

// SpawnWith checks out one instance and fires OnSpawn with the given
// spawn-time arguments, e.g. placement data. It carries no state of its own
// and propagates TrySpawn's failures unchanged; OnSpawn does not fire for
// the NullOrDefault sentinel.
func (p *Pool[T]) SpawnWith(args ...any) (T, error) {
	item, ok, err := p.trySpawn()
	if err != nil {
		var zero T
		return zero, err
	}
	if ok {
		p.hooks.spawn(item, args...)
	}
	return item, nil
}

// Despawn returns an instance by firing the OnDespawn hook with it. The pool
// does not verify slab membership and does not clear the in-use flag itself;
// that belongs to the hook or to the instance's self-despawn logic. The
// contract is deliberately minimal: the pool trusts the caller.
func (p *Pool[T]) Despawn(item T) {
	p.hooks.despawn(item)
	p.despawned.Add(1)
	if p.collector != nil {
		p.collector.RecordDespawn()
	}
}

// Destroy fires OnDestroy for every slab member, empties the slab and resets
// the cursor. The pool needs a fresh Initialize before any further checkout
// succeeds.
func (p *Pool[T]) Destroy() {
	p.mu.Lock()
	n := len(p.slab)
	p.teardownLocked()
	p.mu.Unlock()

	if p.collector != nil {
		p.collector.SetSize(0)
		p.collector.SetAvailable(0)
	}
	p.logger.Info("pool destroyed", zap.Int("instances", n))
}

// InstanceCount returns the current slab size.
func (p *Pool[T]) InstanceCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.slab)
}

// AvailableInstances recomputes the number of free instances on demand.
func (p *Pool[T]) AvailableInstances() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.availableLocked()
}

// ExhaustionBehaviour returns the policy fixed by the last Initialize.
func (p *Pool[T]) ExhaustionBehaviour() ExhaustionBehaviour {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.behaviour
}

// scanLocked walks up to slabSize positions starting at the cursor, wrapping
// modulo the slab size, and selects the first free slot. The cursor advances
// one past the selection so repeated checkouts visit slots in cyclic order
// instead of always reusing slot 0. A single-instance slab is checked
// directly, skipping the modulo arithmetic.
func (p *Pool[T]) scanLocked() (item T, found bool) {
	n := len(p.slab)
	if n == 1 {
		if !p.slab[0].InUse() {
			return p.slab[0], true
		}
		return item, false
	}
	for i := 0; i < n; i++ {
		idx := (p.cursor + i) % n
		if !p.slab[idx].InUse() {
			p.cursor = (idx + 1) % n
			return p.slab[idx], true
		}
	}
	return item, false
}

// growLocked builds n fresh instances and appends them to the slab. Creation
// and hook firing are two passes: the whole batch exists before the first
// OnCreate runs. Returns the appended batch. Caller holds the lock.
func (p *Pool[T]) growLocked(n int, trigger string) []T {
	batch := make([]T, 0, n)
	for i := 0; i < n; i++ {
		batch = append(batch, p.factory())
	}
	p.slab = append(p.slab, batch...)
	for _, item := range batch {
		p.hooks.create(item)
	}
	p.created.Add(uint64(n))
	if p.collector != nil {
		p.collector.RecordCreated(n, trigger)
		p.collector.SetSize(len(p.slab))
	}
	return batch
}

// teardownLocked fires OnDestroy for every member, empties the slab and
// resets the cursor. Caller holds the lock.
func (p *Pool[T]) teardownLocked() {
	for _, item := range p.slab {
		p.hooks.destroy(item)
	}
	p.slab = nil
	p.cursor = 0
}

func (p *Pool[T]) availableLocked() int {
	free := 0
	for _, item := range p.slab {
		if !item.InUse() {
			free++
		}
	}
	return free
}

func (p *Pool[T]) noteSpawn(start time.Time) {
	p.spawned.Add(1)
	if p.collector != nil {
		p.collector.RecordSpawn("success", time.Since(start))
	}
}
