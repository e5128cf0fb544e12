// Package poolerrors provides examples of structured error handling in PooledObjects.
package poolerrors_test

import (
	"fmt"
	"io"

	"github.com/Clpsplug/PooledObjects/pkg/poolerrors"
)

// Example demonstrates basic error creation and wrapping.
func Example() {
	// Create a new error with type
	err := poolerrors.New(poolerrors.ErrorTypeExhausted, "no free instance in pool")

	// Add context details
	err = err.WithDetail("pool", "connections").
		WithDetail("instance_count", 8)

	// Print the error
	fmt.Println(err.Error())

	// Output:
	// exhausted: no free instance in pool
}

// ExampleWrap shows how to wrap existing errors with context.
func ExampleWrap() {
	// Simulate an underlying error
	originalErr := io.EOF

	// Wrap the error with context
	err := poolerrors.Wrap(originalErr, poolerrors.ErrorTypeConfig, "failed to read pool config").
		WithDetail("path", "pool.yaml")

	// Check the error type
	if poolerrors.IsType(err, poolerrors.ErrorTypeConfig) {
		fmt.Println("This is a config error")
	}

	// Output:
	// This is a config error
}

// ExampleIsRetryable demonstrates retryability detection.
func ExampleIsRetryable() {
	exhausted := poolerrors.New(poolerrors.ErrorTypeExhausted, "no free instance in pool")
	sequencing := poolerrors.New(poolerrors.ErrorTypeNotInitialized, "pool is not initialized")

	fmt.Println(poolerrors.IsRetryable(exhausted))
	fmt.Println(poolerrors.IsRetryable(sequencing))

	// Output:
	// true
	// false
}
