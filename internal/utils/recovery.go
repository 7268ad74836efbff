package utils

import (
	"fmt"
	"runtime/debug"
)

// PanicError carries a recovered panic value and the stack it came from.
type PanicError struct {
	Value interface{}
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Recovery turns a panic in the calling goroutine into an error stored in
// *err. It must be deferred directly.
func Recovery(err *error) {
	if r := recover(); r != nil {
		*err = &PanicError{Value: r, Stack: debug.Stack()}
	}
}

// RecoveryWithCallback hands the recovered value to callback instead.
func RecoveryWithCallback(callback func(any)) {
	if r := recover(); r != nil && callback != nil {
		callback(r)
	}
}
