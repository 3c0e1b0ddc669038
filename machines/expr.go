package machines

import (
	"github.com/seako/understanding-computation/logs"
	"github.com/seako/understanding-computation/simple"
	"github.com/seako/understanding-computation/simpleconfigs"
)

// ExprMachine reduces an expression to a value. Expressions never change
// the environment, so the trace is expressions only.
type ExprMachine struct {
	expression simple.Expression
	env        *simple.Env
	budget     int
	logger     logs.Logger
}

type NewExpr func(expression simple.Expression, env *simple.Env) *ExprMachine

func (Module) NewExpr(
	logger logs.Logger,
	budget simpleconfigs.StepBudget,
) NewExpr {
	return func(expression simple.Expression, env *simple.Env) *ExprMachine {
		return &ExprMachine{
			expression: expression,
			env:        env,
			budget:     int(budget),
			logger:     logger,
		}
	}
}

func (m *ExprMachine) Run(yield func(simple.Expression, error) bool) {
	expression := m.expression

	if !yield(expression, nil) {
		return
	}

	for steps := 0; expression.Reducible(); steps++ {
		if m.budget > 0 && steps >= m.budget {
			yield(nil, ErrBudget)
			return
		}

		next, err := simple.ReduceExpression(expression, m.env)
		if err != nil {
			yield(nil, err)
			return
		}
		expression = next

		m.logger.Debug("step",
			"expression", expression,
		)

		if !yield(expression, nil) {
			return
		}
	}
}

func (m *ExprMachine) RunAll() ([]simple.Expression, error) {
	var trace []simple.Expression
	for expression, err := range m.Run {
		if err != nil {
			return trace, err
		}
		trace = append(trace, expression)
	}
	return trace, nil
}
