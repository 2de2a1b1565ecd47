// Package assert guards internal preconditions that, if violated, indicate
// a programming bug rather than bad input — spec error kind 3, "invariant
// violation". These are never reachable under correct input and are not
// user-visible; they exist so a broken invariant fails loudly near its
// source instead of corrupting a frame sequence silently.
package assert

import "fmt"

// Invariant panics with msg (formatted per fmt.Sprintf with args) if cond
// is false.
func Invariant(cond bool, format string, args ...interface{}) {
	if !cond {
		panic("ipdr: invariant violation: " + fmt.Sprintf(format, args...))
	}
}
