package scripts

import (
	"fmt"

	"go.starlark.net/starlark"

	"github.com/seako/understanding-computation/simple"
)

// TermValue carries a term through a starlark script.
type TermValue struct {
	Term simple.Term
}

var _ starlark.Value = TermValue{}

func (t TermValue) String() string {
	return t.Term.String()
}

func (t TermValue) Type() string {
	return "term"
}

func (t TermValue) Freeze() {}

func (t TermValue) Truth() starlark.Bool {
	return starlark.True
}

func (t TermValue) Hash() (uint32, error) {
	return starlark.String(t.Term.String()).Hash()
}

// exprValue converts a script value to an expression. Bare ints, bools and
// strings act as number, boolean and variable literals.
func exprValue(v starlark.Value) (simple.Expression, error) {
	switch v := v.(type) {

	case TermValue:
		if e, ok := v.Term.(simple.Expression); ok {
			return e, nil
		}
		return nil, fmt.Errorf("not an expression: %s", v.Term)

	case starlark.Int:
		n, ok := v.Int64()
		if !ok {
			return nil, fmt.Errorf("number out of range: %s", v)
		}
		return simple.Number(int(n)), nil

	case starlark.Bool:
		return simple.Boolean(bool(v)), nil

	case starlark.String:
		return simple.Variable(string(v)), nil

	}
	return nil, fmt.Errorf("cannot use %s as expression", v.Type())
}

// stmtValue converts a script value to a statement. None acts as do-nothing.
func stmtValue(v starlark.Value) (simple.Statement, error) {
	switch v := v.(type) {

	case TermValue:
		if s, ok := v.Term.(simple.Statement); ok {
			return s, nil
		}
		return nil, fmt.Errorf("not a statement: %s", v.Term)

	case starlark.NoneType:
		return simple.DoNothing{}, nil

	}
	return nil, fmt.Errorf("cannot use %s as statement", v.Type())
}
