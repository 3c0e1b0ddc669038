package scripts

import (
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"

	"github.com/seako/understanding-computation/modes"
)

func testScope(t *testing.T) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	)
}

func TestBuild(t *testing.T) {
	testScope(t).Call(func(
		build Build,
	) {
		term, err := build("test.star", `
program = sequence(
    assign("x", number(1)),
    while_(
        less_than(variable("x"), number(5)),
        assign("x", add(variable("x"), number(1))),
    ),
)
`)
		if err != nil {
			t.Fatal(err)
		}
		if term.String() != "x = 1; while (x < 5) { x = x + 1 }" {
			t.Fatalf("got %s", term)
		}
	})
}

func TestBuildLiterals(t *testing.T) {
	testScope(t).Call(func(
		build Build,
	) {
		// bare ints, bools and strings are literals
		term, err := build("test.star", `
program = if_(
    and_(true, less_than("x", 5)),
    assign("y", 1),
)
`)
		if err != nil {
			t.Fatal(err)
		}
		if term.String() != "if (true && (x < 5)) { y = 1 } else { do-nothing }" {
			t.Fatalf("got %s", term)
		}
	})
}

func TestBuildNoProgram(t *testing.T) {
	testScope(t).Call(func(
		build Build,
	) {
		_, err := build("test.star", `x = do_nothing()`)
		if !errors.Is(err, ErrNoProgram) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestBuildNotATerm(t *testing.T) {
	testScope(t).Call(func(
		build Build,
	) {
		_, err := build("test.star", `program = 42`)
		if err == nil || !strings.Contains(err.Error(), "not a term") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestBuildBadArgument(t *testing.T) {
	testScope(t).Call(func(
		build Build,
	) {
		// a statement is not an expression
		_, err := build("test.star", `program = add(do_nothing(), 1)`)
		if err == nil || !strings.Contains(err.Error(), "not an expression") {
			t.Fatalf("got %v", err)
		}

		// an expression is not a statement
		_, err = build("test.star", `program = sequence(number(1))`)
		if err == nil || !strings.Contains(err.Error(), "not a statement") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestBuildScriptError(t *testing.T) {
	testScope(t).Call(func(
		build Build,
	) {
		_, err := build("test.star", `program = undefined_builtin()`)
		if err == nil {
			t.Fatal("should error")
		}
	})
}
