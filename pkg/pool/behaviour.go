package pool

import (
	"github.com/Clpsplug/PooledObjects/pkg/poolerrors"
)

// ExhaustionBehaviour selects what a checkout does when every instance in the
// slab is in use. It is fixed for the pool's lifetime at Initialize and is a
// closed set; there is no plugin point for additional strategies.
type ExhaustionBehaviour int

const (
	// Throw fails the checkout with an exhausted error.
	Throw ExhaustionBehaviour = iota
	// NullOrDefault returns the zero value of the pooled type with no error.
	// This is a policy choice, not error suppression: callers opting into it
	// must check for the sentinel themselves.
	NullOrDefault
	// AddOne creates exactly one extra instance, appends it to the slab and
	// returns it directly. The new slot does not enter the round-robin
	// rotation for that call.
	AddOne
	// Double creates slabSize extra instances (doubling the slab) and retries
	// the scan once. The retry always succeeds because every appended
	// instance is free.
	Double
)

// String returns the canonical lowercase name of the behaviour.
func (b ExhaustionBehaviour) String() string {
	switch b {
	case Throw:
		return "throw"
	case NullOrDefault:
		return "null_or_default"
	case AddOne:
		return "add_one"
	case Double:
		return "double"
	default:
		return "unknown"
	}
}

// ParseExhaustionBehaviour converts a configuration string into an
// ExhaustionBehaviour. The empty string maps to Throw, matching the
// initialization default.
func ParseExhaustionBehaviour(s string) (ExhaustionBehaviour, error) {
	switch s {
	case "", "throw":
		return Throw, nil
	case "null_or_default":
		return NullOrDefault, nil
	case "add_one":
		return AddOne, nil
	case "double":
		return Double, nil
	default:
		return Throw, poolerrors.New(poolerrors.ErrorTypeInvalidArgument, "unknown exhaustion behaviour").
			WithDetail("behaviour", s)
	}
}
