// Package parse implements the recognizer layer: trivia, lexical atoms,
// the expression precedence cascade, and statements, all built on top of
// span.Span and composed from the small set of combinators in this file
// and combinators.go.
//
// Every recognizer returns a tri-state Outcome (Ok / Err / Incomplete)
// rather than a plain (value, error) pair, because the engine must
// distinguish "this input is invalid" from "this input might still be
// valid given more bytes". The latter only matters to a streaming caller,
// but the distinction has to exist at this layer for ParseExpression et al.
// to collapse it correctly at the boundary (see api.go).
package parse

import "rink/span"

type outcomeKind int

const (
	kindOk outcomeKind = iota
	kindErr
	kindIncomplete
)

// Outcome is the tri-state result of a recognizer: exactly one of Ok, Err
// or Incomplete holds at a time.
type Outcome[T any] struct {
	kind      outcomeKind
	remainder span.Span
	value     T
	err       *ParseError
	needed    int
}

// Ok builds a successful Outcome: value was recognized, remainder is the
// unconsumed span.Span left after it.
func Ok[T any](remainder span.Span, value T) Outcome[T] {
	return Outcome[T]{kind: kindOk, remainder: remainder, value: value}
}

// Fail builds a failed Outcome carrying the structured error.
func Fail[T any](err *ParseError) Outcome[T] {
	return Outcome[T]{kind: kindErr, err: err}
}

// NeedMore builds an Incomplete Outcome: the recognizer could not yet
// decide, and needs at least `needed` additional bytes to make progress
// (0 when the exact count is unknown).
func NeedMore[T any](needed int) Outcome[T] {
	return Outcome[T]{kind: kindIncomplete, needed: needed}
}

func (o Outcome[T]) IsOk() bool         { return o.kind == kindOk }
func (o Outcome[T]) IsErr() bool        { return o.kind == kindErr }
func (o Outcome[T]) IsIncomplete() bool { return o.kind == kindIncomplete }

// Remainder returns the unconsumed span.Span. Only meaningful when IsOk.
func (o Outcome[T]) Remainder() span.Span { return o.remainder }

// Value returns the recognized value. Only meaningful when IsOk.
func (o Outcome[T]) Value() T { return o.value }

// Err returns the structured error. Only meaningful when IsErr.
func (o Outcome[T]) Err() *ParseError { return o.err }

// Needed returns the minimum additional byte count. Only meaningful when
// IsIncomplete.
func (o Outcome[T]) Needed() int { return o.needed }

// ParseFunc is the shape of every recognizer in this package: a function
// from a Span to a tri-state Outcome carrying a T.
type ParseFunc[T any] func(span.Span) Outcome[T]

// convert re-wraps a non-Ok Outcome[A] as an Outcome[B], for combinators
// that thread one recognizer's failure through as another's without
// touching the success value (which only exists on the Ok arm).
func convert[A, B any](o Outcome[A]) Outcome[B] {
	switch {
	case o.IsErr():
		return Fail[B](o.Err())
	case o.IsIncomplete():
		return NeedMore[B](o.Needed())
	default:
		panic("parse: convert called on an Ok outcome")
	}
}
