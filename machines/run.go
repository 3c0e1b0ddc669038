package machines

import (
	"errors"

	"github.com/seako/understanding-computation/simple"
)

// ErrBudget reports that a machine hit its step budget before reaching an
// irreducible term.
var ErrBudget = errors.New("step budget exceeded")

// Run yields the initial configuration, then one configuration per
// reduction step, until the statement is irreducible. A reduction failure
// is yielded as an error and ends the run.
func (m *Machine) Run(yield func(Step, error) bool) {
	statement := m.statement
	env := m.env

	if !yield(Step{Statement: statement, Env: env}, nil) {
		return
	}

	for steps := 0; statement.Reducible(); steps++ {
		if m.budget > 0 && steps >= m.budget {
			yield(Step{}, ErrBudget)
			return
		}

		next, nextEnv, err := simple.ReduceStatement(statement, env)
		if err != nil {
			yield(Step{}, err)
			return
		}
		statement, env = next, nextEnv

		m.logger.Debug("step",
			"statement", statement,
			"environment", env,
		)

		if !yield(Step{Statement: statement, Env: env}, nil) {
			return
		}
	}
}

// RunAll runs the machine to completion and returns the full trace. On
// failure the trace holds the configurations reached before the error.
func (m *Machine) RunAll() ([]Step, error) {
	var trace []Step
	for step, err := range m.Run {
		if err != nil {
			return trace, err
		}
		trace = append(trace, step)
	}
	return trace, nil
}
