package poolerrors_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Clpsplug/PooledObjects/pkg/poolerrors"
)

func TestNew(t *testing.T) {
	err := poolerrors.New(poolerrors.ErrorTypeInvalidArgument, "bad argument")

	assert.Equal(t, "invalid_argument: bad argument", err.Error())
	assert.Equal(t, poolerrors.ErrorTypeInvalidArgument, err.Type)
	assert.NotEmpty(t, err.Stack, "stack is captured at creation")
}

func TestWrap(t *testing.T) {
	t.Run("preserves cause", func(t *testing.T) {
		err := poolerrors.Wrap(io.EOF, poolerrors.ErrorTypeConfig, "reading config failed")
		require.NotNil(t, err)
		assert.ErrorIs(t, err, io.EOF)
		assert.Equal(t, "config: reading config failed: EOF", err.Error())
	})

	t.Run("nil passthrough", func(t *testing.T) {
		assert.Nil(t, poolerrors.Wrap(nil, poolerrors.ErrorTypeConfig, "ignored"))
	})

	t.Run("preserves inner stack", func(t *testing.T) {
		inner := poolerrors.New(poolerrors.ErrorTypeExhausted, "no free instance")
		outer := poolerrors.Wrap(inner, poolerrors.ErrorTypeInternal, "checkout failed")
		assert.Equal(t, inner.Stack, outer.Stack)
	})
}

func TestWithDetail(t *testing.T) {
	err := poolerrors.New(poolerrors.ErrorTypeExhausted, "no free instance").
		WithDetail("pool", "connections").
		WithDetail("instance_count", 4)

	assert.Equal(t, "connections", err.Details["pool"])
	assert.Equal(t, 4, err.Details["instance_count"])
}

func TestIsType(t *testing.T) {
	err := poolerrors.New(poolerrors.ErrorTypeNotInitialized, "pool is not initialized")

	assert.True(t, poolerrors.IsType(err, poolerrors.ErrorTypeNotInitialized))
	assert.False(t, poolerrors.IsType(err, poolerrors.ErrorTypeExhausted))
	assert.False(t, poolerrors.IsType(errors.New("plain"), poolerrors.ErrorTypeExhausted))
	assert.False(t, poolerrors.IsType(nil, poolerrors.ErrorTypeExhausted))

	// Works through wrapping layers via errors.As.
	wrapped := poolerrors.Wrap(err, poolerrors.ErrorTypeInternal, "outer")
	assert.True(t, poolerrors.IsType(wrapped, poolerrors.ErrorTypeInternal))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, poolerrors.IsRetryable(poolerrors.New(poolerrors.ErrorTypeExhausted, "x")))
	assert.False(t, poolerrors.IsRetryable(poolerrors.New(poolerrors.ErrorTypeInvalidArgument, "x")))
	assert.False(t, poolerrors.IsRetryable(io.EOF))
}
