package simple

import "fmt"

// ReduceExpression applies exactly one reduction rule to expr. For every
// reducible expression exactly one rule applies, so reduction is a function:
// two calls on the same term and environment return structurally identical
// results. Calling it on a value reports ErrIrreducible.
func ReduceExpression(expr Expression, env *Env) (Expression, error) {
	switch t := expr.(type) {

	case Variable:
		return env.Lookup(string(t))

	case BinaryOp:
		if t.Left.Reducible() {
			left, err := ReduceExpression(t.Left, env)
			if err != nil {
				return nil, err
			}
			return BinaryOp{Op: t.Op, Left: left, Right: t.Right}, nil
		}
		if t.Right.Reducible() {
			right, err := ReduceExpression(t.Right, env)
			if err != nil {
				return nil, err
			}
			return BinaryOp{Op: t.Op, Left: t.Left, Right: right}, nil
		}
		entry, ok := binaryOps[t.Op]
		if !ok {
			return nil, fmt.Errorf("unknown binary operator: %d", t.Op)
		}
		return entry.apply(t.Left.(Value), t.Right.(Value))

	case UnaryOp:
		if t.Operand.Reducible() {
			inner, err := ReduceExpression(t.Operand, env)
			if err != nil {
				return nil, err
			}
			return UnaryOp{Op: t.Op, Operand: inner}, nil
		}
		entry, ok := unaryOps[t.Op]
		if !ok {
			return nil, fmt.Errorf("unknown unary operator: %d", t.Op)
		}
		return entry.apply(t.Operand.(Value))

	}
	return nil, fmt.Errorf("%w: %s", ErrIrreducible, expr)
}

// ReduceStatement applies exactly one reduction rule to stmt, producing the
// next statement and the environment it holds after the step. Calling it on
// DoNothing reports ErrIrreducible.
func ReduceStatement(stmt Statement, env *Env) (Statement, *Env, error) {
	switch t := stmt.(type) {
	case Sequence:
		return reduceSequence(t, env)
	case Assign:
		return reduceAssign(t, env)
	case If:
		return reduceIf(t, env)
	case While:
		return reduceWhile(t, env)
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrIrreducible, stmt)
}
