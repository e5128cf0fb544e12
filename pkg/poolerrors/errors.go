// Package poolerrors provides structured error handling for PooledObjects
// with rich context, stack traces, and error categorization. It enables
// consistent error handling patterns across the module.
//
// # Overview
//
// The poolerrors package extends Go's standard error handling with:
//   - Error categorization through ErrorType
//   - Structured context with key-value details
//   - Automatic stack trace capture
//   - Error wrapping with cause preservation
//
// # Basic Usage
//
//	// Create a new error
//	err := poolerrors.New(poolerrors.ErrorTypeInvalidArgument, "initial count must be positive")
//
//	// Add context
//	err = err.WithDetail("pool", "connections").
//	         WithDetail("initial_count", -1)
//
//	// Wrap existing errors
//	if err := config.Load(path, &cfg); err != nil {
//	    return poolerrors.Wrap(err, poolerrors.ErrorTypeConfig, "loading pool config failed").
//	        WithDetail("path", path)
//	}
//
// # Error Types
//
// The three checkout-path categories map directly onto caller obligations:
// an invalid-argument error means the call site is wrong, not-initialized
// means a sequencing bug (checkout before Initialize or after Destroy), and
// exhausted is an expected, recoverable condition callers must handle by
// backing off or choosing a different exhaustion behaviour.
//
// # Thread Safety
//
// Error instances are not thread-safe for modification. Create new
// instances or finish WithDetail chains before sharing across goroutines.
package poolerrors

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrorType represents the category of error, used for error handling
// strategies, monitoring, and caller-facing diagnostics.
type ErrorType string

const (
	// ErrorTypeInvalidArgument represents a malformed call: the caller must
	// fix the call site. No pool state is mutated on this path.
	ErrorTypeInvalidArgument ErrorType = "invalid_argument"
	// ErrorTypeNotInitialized represents a checkout attempted before any
	// successful Initialize, or after Destroy.
	ErrorTypeNotInitialized ErrorType = "not_initialized"
	// ErrorTypeExhausted represents a checkout under the Throw behaviour
	// with no free instance and none created. Recoverable and expected.
	ErrorTypeExhausted ErrorType = "exhausted"
	// ErrorTypeConfig represents configuration loading or validation errors.
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeInternal represents internal errors.
	ErrorTypeInternal ErrorType = "internal"
)

// Error represents a structured error with context, providing rich debugging
// information and enabling error handling based on category.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Details map[string]interface{}
	Stack   []StackFrame
}

// StackFrame represents a single frame in the call stack, capturing the
// function name, file path, and line number for debugging.
type StackFrame struct {
	Function string // Fully qualified function name
	File     string // Source file path
	Line     int    // Line number in source file
}

// Error implements the error interface, returning a formatted error message
// that includes the error type, message, and cause (if present).
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error, enabling compatibility with errors.Is
// and errors.As for error chain inspection.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a key-value detail to the error, providing additional
// context for debugging and monitoring. This method can be chained.
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a new error with the given type and message, automatically
// capturing the call stack at the point of creation.
func New(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Stack:   captureStack(2),
	}
}

// Wrap wraps an existing error with additional context, preserving the
// original error as the cause. If the error is already a structured Error,
// its stack trace is preserved. Returns nil if the input error is nil.
func Wrap(err error, errType ErrorType, message string) *Error {
	if err == nil {
		return nil
	}

	// If already our error type, preserve the stack
	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Type:    errType,
			Message: message,
			Cause:   err,
			Stack:   existingErr.Stack,
		}
	}

	return &Error{
		Type:    errType,
		Message: message,
		Cause:   err,
		Stack:   captureStack(2),
	}
}

// IsType checks if the error is of the given type, useful for conditional
// logic based on error categories.
//
// Example:
//
//	item, err := p.Spawn()
//	if poolerrors.IsType(err, poolerrors.ErrorTypeExhausted) {
//	    // back off and retry, or switch to a growing behaviour
//	}
func IsType(err error, errType ErrorType) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Type == errType
}

// IsRetryable returns true if the error represents a condition a caller can
// reasonably retry. Only exhaustion qualifies: the pool may free up as other
// callers despawn. Sequencing and argument errors are caller bugs.
func IsRetryable(err error) bool {
	return IsType(err, ErrorTypeExhausted)
}

// captureStack captures the current call stack up to maxFrames deep,
// skipping the specified number of frames from the top.
func captureStack(skip int) []StackFrame {
	const maxFrames = 32
	frames := make([]StackFrame, 0, maxFrames)

	for i := skip; i < maxFrames+skip; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}

		frames = append(frames, StackFrame{
			Function: fn.Name(),
			File:     file,
			Line:     line,
		})
	}

	return frames
}
