// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "fmt"

// Sentinel errors returned by the package. Callers can match against these
// with errors.Is.
var (
	ErrBadSignal   = fmt.Errorf("robdd: invalid signal")
	ErrBadVariable = fmt.Errorf("robdd: variable out of range")
	ErrReplacer    = fmt.Errorf("robdd: malformed replacer")
)

// invariant panics with a formatted message when cond is false. We use it to
// guard internal consistency assumptions that a correct caller can never
// violate, as opposed to genuine error conditions (bad variable index,
// malformed replacer, ...) which are reported through regular error returns.
func invariant(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("robdd: invariant violation: "+format, args...))
	}
}
