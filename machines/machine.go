package machines

import (
	"github.com/seako/understanding-computation/logs"
	"github.com/seako/understanding-computation/simple"
	"github.com/seako/understanding-computation/simpleconfigs"
)

// Step is one configuration of a running machine: the statement still to
// be executed and the environment it executes in.
type Step struct {
	Statement simple.Statement
	Env       *simple.Env
}

// Machine repeatedly reduces a statement until it is irreducible.
type Machine struct {
	statement simple.Statement
	env       *simple.Env
	budget    int
	logger    logs.Logger
}

type New func(statement simple.Statement, env *simple.Env) *Machine

func (Module) New(
	logger logs.Logger,
	budget simpleconfigs.StepBudget,
) New {
	return func(statement simple.Statement, env *simple.Env) *Machine {
		return &Machine{
			statement: statement,
			env:       env,
			budget:    int(budget),
			logger:    logger,
		}
	}
}
