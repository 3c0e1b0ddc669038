package machines

import (
	"errors"
	"testing"

	"github.com/reusee/dscope"

	"github.com/seako/understanding-computation/modes"
	"github.com/seako/understanding-computation/simple"
	"github.com/seako/understanding-computation/simpleconfigs"
)

func testScope(t *testing.T, defs ...any) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(defs...)
}

func TestMachineWhile(t *testing.T) {
	testScope(t).Call(func(
		newMachine New,
	) {
		// while (x < 5) { x = x + 1 } under {x: 1}
		machine := newMachine(
			simple.While{
				Condition: simple.BinaryOp{Op: simple.OpLt, Left: simple.Variable("x"), Right: simple.Number(5)},
				Body: simple.Assign{
					Name:       "x",
					Expression: simple.BinaryOp{Op: simple.OpAdd, Left: simple.Variable("x"), Right: simple.Number(1)},
				},
			},
			(*simple.Env)(nil).Extend("x", simple.Number(1)),
		)

		trace, err := machine.RunAll()
		if err != nil {
			t.Fatal(err)
		}

		if len(trace) == 0 {
			t.Fatal("empty trace")
		}
		if !trace[0].Statement.Reducible() {
			t.Fatal("trace should start at the initial configuration")
		}

		final := trace[len(trace)-1]
		if final.Statement != simple.Statement(simple.DoNothing{}) {
			t.Fatalf("got %s", final.Statement)
		}
		v, err := final.Env.Lookup("x")
		if err != nil {
			t.Fatal(err)
		}
		if v != simple.Value(simple.Number(5)) {
			t.Fatalf("got %v", v)
		}
	})
}

func TestMachineSequence(t *testing.T) {
	testScope(t).Call(func(
		newMachine New,
	) {
		machine := newMachine(
			simple.Sequence{
				First:  simple.Assign{Name: "x", Expression: simple.BinaryOp{Op: simple.OpAdd, Left: simple.Number(1), Right: simple.Number(1)}},
				Second: simple.Assign{Name: "y", Expression: simple.BinaryOp{Op: simple.OpAdd, Left: simple.Variable("x"), Right: simple.Number(3)}},
			},
			nil,
		)

		trace, err := machine.RunAll()
		if err != nil {
			t.Fatal(err)
		}
		final := trace[len(trace)-1]
		if final.Env.String() != "{x: 2, y: 5}" {
			t.Fatalf("got %s", final.Env)
		}
	})
}

func TestMachineIf(t *testing.T) {
	testScope(t).Call(func(
		newMachine New,
	) {
		machine := newMachine(
			simple.If{
				Condition:   simple.Variable("b"),
				Consequence: simple.Assign{Name: "x", Expression: simple.Number(1)},
				Alternative: simple.Assign{Name: "x", Expression: simple.Number(2)},
			},
			(*simple.Env)(nil).Extend("b", simple.Boolean(false)),
		)

		trace, err := machine.RunAll()
		if err != nil {
			t.Fatal(err)
		}
		final := trace[len(trace)-1]
		if v, _ := final.Env.Lookup("x"); v != simple.Value(simple.Number(2)) {
			t.Fatalf("got %v", v)
		}
	})
}

func TestMachineError(t *testing.T) {
	testScope(t).Call(func(
		newMachine New,
	) {
		machine := newMachine(
			simple.Sequence{
				First:  simple.Assign{Name: "x", Expression: simple.Number(1)},
				Second: simple.Assign{Name: "y", Expression: simple.BinaryOp{Op: simple.OpDiv, Left: simple.Variable("x"), Right: simple.Number(0)}},
			},
			nil,
		)

		trace, err := machine.RunAll()
		if !errors.Is(err, simple.ErrDivisionByZero) {
			t.Fatalf("got %v", err)
		}
		// the partial trace holds every configuration before the failure
		if len(trace) == 0 {
			t.Fatal("no partial trace")
		}
		for _, step := range trace {
			if step.Statement == nil {
				t.Fatal("nil statement in trace")
			}
		}
	})
}

func TestMachineUnboundVariable(t *testing.T) {
	testScope(t).Call(func(
		newMachine New,
	) {
		machine := newMachine(
			simple.Assign{Name: "x", Expression: simple.Variable("missing")},
			nil,
		)
		_, err := machine.RunAll()
		if !errors.Is(err, simple.ErrUnboundVariable) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestMachineBudget(t *testing.T) {
	testScope(t,
		func() simpleconfigs.StepBudget {
			return 10
		},
	).Call(func(
		newMachine New,
	) {
		machine := newMachine(
			simple.While{
				Condition: simple.Boolean(true),
				Body:      simple.Assign{Name: "x", Expression: simple.Number(1)},
			},
			nil,
		)
		trace, err := machine.RunAll()
		if !errors.Is(err, ErrBudget) {
			t.Fatalf("got %v", err)
		}
		if len(trace) != 11 {
			t.Fatalf("got %d configurations", len(trace))
		}
	})
}

func TestMachineEarlyStop(t *testing.T) {
	testScope(t).Call(func(
		newMachine New,
	) {
		machine := newMachine(
			simple.While{
				Condition: simple.Boolean(true),
				Body:      simple.Assign{Name: "x", Expression: simple.Number(1)},
			},
			nil,
		)
		// consumers may stop a run at any point
		n := 0
		for _, err := range machine.Run {
			if err != nil {
				t.Fatal(err)
			}
			n++
			if n == 5 {
				break
			}
		}
		if n != 5 {
			t.Fatalf("got %d", n)
		}
	})
}
