package simple

import "fmt"

// If reduces its condition to a boolean, then becomes the chosen branch.
type If struct {
	Condition   Expression
	Consequence Statement
	Alternative Statement
}

func (If) Reducible() bool { return true }

func (i If) String() string {
	return fmt.Sprintf("if (%s) { %s } else { %s }", i.Condition, i.Consequence, i.Alternative)
}

func (If) isStatement() {}

func reduceIf(i If, env *Env) (Statement, *Env, error) {
	if i.Condition.Reducible() {
		cond, err := ReduceExpression(i.Condition, env)
		if err != nil {
			return nil, nil, err
		}
		return If{Condition: cond, Consequence: i.Consequence, Alternative: i.Alternative}, env, nil
	}
	switch cond := i.Condition.(type) {
	case Boolean:
		if cond {
			return i.Consequence, env, nil
		}
		return i.Alternative, env, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrType, cond)
	}
}
