// Package money provides an opaque wrapper over an int64 monetary amount.
// Its purpose is to keep money-shaped integers from mixing with plain ones:
// a Money value cannot be produced by conversion or literal, only by Zero,
// FromInt, or one of the operations below, so an `int64` can never slip into
// an amount position (or vice versa) without an explicit FromInt/ToInt at
// the boundary.
//
// Amounts are immutable values. Every operation returns a new Money and
// leaves its arguments untouched, so values may be shared across goroutines
// freely. Equality via == coincides with equality of the wrapped integers,
// and the Money zero value is the same value Zero returns.
//
// Beyond Add and Subtract, arbitrary arithmetic is expressed by lifting a
// plain integer function over one or more amounts with Map through Map6
// rather than by unwrapping and rewrapping at each call site:
//
//	total := money.Map2(func(price, tax int64) int64 {
//	    return price + tax
//	}, price, tax)
//
// The wrapper itself never fails. A panic raised by a caller-supplied
// function propagates unchanged, and arithmetic overflow follows int64
// two's-complement wraparound; nothing here rounds, clamps, or traps.
package money
