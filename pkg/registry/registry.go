// Package registry provides an optional process-wide registry of live pools
// for diagnostic enumeration. Pools register themselves (or are registered
// by their owner) at construction time; an inspector then lists them and
// reads their snapshots. The registry only consumes read-only snapshots and
// the pool engine functions identically with this package entirely absent.
package registry

import (
	"io"
	"sort"
	"sync"

	"github.com/goccy/go-json"

	"github.com/Clpsplug/PooledObjects/pkg/pool"
	"github.com/Clpsplug/PooledObjects/pkg/poolerrors"
)

// Inspectable is the narrow interface a pool exposes to the registry:
// a stable name and an on-demand read-only snapshot. pool.Pool[T]
// satisfies it for any T.
type Inspectable interface {
	Name() string
	Snapshot() pool.Snapshot
}

var (
	mu    sync.RWMutex
	pools = make(map[string]Inspectable)
)

// Register adds a pool to the registry under its name. Registering a second
// pool under an existing name fails; deregister the first one explicitly.
func Register(p Inspectable) error {
	mu.Lock()
	defer mu.Unlock()

	name := p.Name()
	if _, exists := pools[name]; exists {
		return poolerrors.New(poolerrors.ErrorTypeInvalidArgument, "pool already registered").
			WithDetail("pool", name)
	}
	pools[name] = p
	return nil
}

// Deregister removes a pool by name. Unknown names are ignored.
func Deregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	delete(pools, name)
}

// List returns the registered pool names in sorted order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(pools))
	for name := range pools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the registered pool with the given name, or false.
func Get(name string) (Inspectable, bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := pools[name]
	return p, ok
}

// Snapshots captures a fresh snapshot of every registered pool, ordered by
// pool name.
func Snapshots() []pool.Snapshot {
	mu.RLock()
	targets := make([]Inspectable, 0, len(pools))
	for _, p := range pools {
		targets = append(targets, p)
	}
	mu.RUnlock()

	// Snapshot outside the registry lock; each snapshot takes its pool lock.
	snaps := make([]pool.Snapshot, 0, len(targets))
	for _, p := range targets {
		snaps = append(snaps, p.Snapshot())
	}
	sort.Slice(snaps, func(i, j int) bool { return snaps[i].Name < snaps[j].Name })
	return snaps
}

// DumpJSON writes the current snapshots of all registered pools to w as
// indented JSON. This is the data feed a diagnostic UI consumes.
func DumpJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Snapshots()); err != nil {
		return poolerrors.Wrap(err, poolerrors.ErrorTypeInternal, "encoding pool snapshots failed")
	}
	return nil
}
