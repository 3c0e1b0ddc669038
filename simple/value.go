package simple

import "strconv"

// Value is an irreducible expression term. Equality is the equality of the
// underlying primitive, via ==.
type Value interface {
	Expression
	isValue()
}

type Number int

func (Number) Reducible() bool  { return false }
func (n Number) String() string { return strconv.Itoa(int(n)) }
func (Number) isExpression()    {}
func (Number) isValue()         {}

type Boolean bool

func (Boolean) Reducible() bool  { return false }
func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }
func (Boolean) isExpression()    {}
func (Boolean) isValue()         {}
