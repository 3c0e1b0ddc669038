package simple

import "fmt"

// Assign binds a name once its right-hand side has reduced to a value.
type Assign struct {
	Name       string
	Expression Expression
}

func (Assign) Reducible() bool { return true }

func (a Assign) String() string {
	return fmt.Sprintf("%s = %s", a.Name, a.Expression)
}

func (Assign) isStatement() {}

func reduceAssign(a Assign, env *Env) (Statement, *Env, error) {
	if a.Expression.Reducible() {
		expr, err := ReduceExpression(a.Expression, env)
		if err != nil {
			return nil, nil, err
		}
		return Assign{Name: a.Name, Expression: expr}, env, nil
	}
	// the same step that commits the binding also finishes the statement
	return DoNothing{}, env.Extend(a.Name, a.Expression.(Value)), nil
}
