// Package assert implements the fail-fast precondition checks used across
// graphcore. Every condition checked here is a programmer error, never a
// runtime condition an external caller can recover from: violation panics
// immediately rather than returning an error.
package assert

import "fmt"

// True panics with the formatted message if cond is false.
func True(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
