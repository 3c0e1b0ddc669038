package simpleconfigs

import (
	"github.com/seako/understanding-computation/cmds"
	"github.com/seako/understanding-computation/configs"
	"github.com/seako/understanding-computation/vars"
)

// StepBudget bounds the number of reduction steps a machine may take.
// Zero means unbounded.
type StepBudget int

var _ configs.Configurable = StepBudget(0)

func (StepBudget) SimpleConfigurable() {}

var stepBudgetFlag = cmds.Var[int]("-budget")

func (Module) StepBudget(
	loader configs.Loader,
) StepBudget {
	return StepBudget(vars.FirstNonZero(
		*stepBudgetFlag,
		configs.First[int](loader, "step_budget"),
	))
}
