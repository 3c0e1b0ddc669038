package simple

// UnaryOp applies a unary operator to a sub-expression.
type UnaryOp struct {
	Op      Operator
	Operand Expression
}

func (UnaryOp) Reducible() bool { return true }

func (u UnaryOp) String() string {
	return unaryOps[u.Op].symbol + operand(u.Operand)
}

func (UnaryOp) isExpression() {}
