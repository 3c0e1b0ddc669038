package simple

import "errors"

var (
	// ErrUnboundVariable reports a lookup of a name absent from the
	// environment.
	ErrUnboundVariable = errors.New("unbound variable")

	// ErrDomain reports an operator applied to operand types it is not
	// defined for.
	ErrDomain = errors.New("operator not defined for operand types")

	// ErrDivisionByZero reports an integer division by zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrType reports a conditional whose guard reduced to a non-boolean
	// value.
	ErrType = errors.New("non-boolean condition")

	// ErrIrreducible reports a reduction attempted on a normal form. This is
	// a caller bug, not a program error.
	ErrIrreducible = errors.New("term is not reducible")
)
