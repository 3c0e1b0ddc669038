package simple

import "fmt"

// BinaryOp applies a binary operator to two sub-expressions. The left
// operand reduces to a value before the right one is touched.
type BinaryOp struct {
	Op    Operator
	Left  Expression
	Right Expression
}

func (BinaryOp) Reducible() bool { return true }

func (b BinaryOp) String() string {
	return fmt.Sprintf("%s %s %s", operand(b.Left), binaryOps[b.Op].symbol, operand(b.Right))
}

func (BinaryOp) isExpression() {}

// operand parenthesizes compound sub-terms for display.
func operand(e Expression) string {
	switch e.(type) {
	case BinaryOp, UnaryOp:
		return "(" + e.String() + ")"
	}
	return e.String()
}
