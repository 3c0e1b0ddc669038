package simpleconfigs

import (
	"testing"

	"github.com/reusee/dscope"

	"github.com/seako/understanding-computation/cmds"
	"github.com/seako/understanding-computation/configs"
	"github.com/seako/understanding-computation/modes"
)

func TestStepBudget(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(func() configs.Loader {
		return configs.NewLoader([]string{"test.cue"}, schema)
	}).Call(func(
		budget StepBudget,
	) {
		if budget != 12 {
			t.Fatalf("got %v", budget)
		}
	})
}

func TestStepBudgetFlag(t *testing.T) {
	cmds.MustExecute([]string{"-budget", "3"})
	defer cmds.MustExecute([]string{"-budget."})

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(func() configs.Loader {
		return configs.NewLoader(nil, schema)
	}).Call(func(
		budget StepBudget,
	) {
		if budget != 3 {
			t.Fatalf("got %v", budget)
		}
	})
}
