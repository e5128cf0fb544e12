package registry_test

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Clpsplug/PooledObjects/pkg/pool"
	"github.com/Clpsplug/PooledObjects/pkg/poolerrors"
	"github.com/Clpsplug/PooledObjects/pkg/registry"
)

type widget struct {
	pool.BasePoolable
}

func newPool(t *testing.T, name string, count int) *pool.Pool[*widget] {
	t.Helper()
	p := pool.New[*widget](name)
	require.NoError(t, p.Initialize(func() *widget { return &widget{} }, count, pool.Throw))
	t.Cleanup(p.Destroy)
	return p
}

func TestRegisterAndList(t *testing.T) {
	b := newPool(t, "beta", 2)
	a := newPool(t, "alpha", 1)

	require.NoError(t, registry.Register(b))
	require.NoError(t, registry.Register(a))
	defer registry.Deregister("alpha")
	defer registry.Deregister("beta")

	assert.Equal(t, []string{"alpha", "beta"}, registry.List())

	got, ok := registry.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, "alpha", got.Name())

	_, ok = registry.Get("missing")
	assert.False(t, ok)
}

func TestRegisterDuplicate(t *testing.T) {
	p := newPool(t, "dup", 1)
	require.NoError(t, registry.Register(p))
	defer registry.Deregister("dup")

	err := registry.Register(p)
	require.Error(t, err)
	assert.True(t, poolerrors.IsType(err, poolerrors.ErrorTypeInvalidArgument))
}

func TestSnapshots(t *testing.T) {
	p := newPool(t, "snaps", 3)
	require.NoError(t, registry.Register(p))
	defer registry.Deregister("snaps")

	_, err := p.Spawn()
	require.NoError(t, err)

	snaps := registry.Snapshots()
	require.Len(t, snaps, 1)
	assert.Equal(t, "snaps", snaps[0].Name)
	assert.Equal(t, 3, snaps[0].InstanceCount)
	assert.Equal(t, 2, snaps[0].AvailableInstances)
}

func TestDumpJSON(t *testing.T) {
	p := newPool(t, "dumped", 2)
	require.NoError(t, registry.Register(p))
	defer registry.Deregister("dumped")

	var buf bytes.Buffer
	require.NoError(t, registry.DumpJSON(&buf))

	var snaps []pool.Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &snaps))
	require.Len(t, snaps, 1)
	assert.Equal(t, "dumped", snaps[0].Name)
	assert.Equal(t, "throw", snaps[0].ExhaustionBehaviour)
}

func TestDeregisterUnknownIsNoop(t *testing.T) {
	registry.Deregister("never-registered")
}
