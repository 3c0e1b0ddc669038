package scripts

import (
	"fmt"

	"go.starlark.net/starlark"

	"github.com/seako/understanding-computation/simple"
)

// Builtins is the construction surface scripts build programs with.
func Builtins() starlark.StringDict {
	return starlark.StringDict{
		"number":   starlark.NewBuiltin("number", number),
		"boolean":  starlark.NewBuiltin("boolean", boolean),
		"variable": starlark.NewBuiltin("variable", variable),

		"add":          binaryBuiltin("add", simple.OpAdd),
		"subtract":     binaryBuiltin("subtract", simple.OpSub),
		"multiply":     binaryBuiltin("multiply", simple.OpMul),
		"divide":       binaryBuiltin("divide", simple.OpDiv),
		"less_than":    binaryBuiltin("less_than", simple.OpLt),
		"greater_than": binaryBuiltin("greater_than", simple.OpGt),
		"and_":         binaryBuiltin("and_", simple.OpAnd),
		"or_":          binaryBuiltin("or_", simple.OpOr),
		"not_":         starlark.NewBuiltin("not_", not),

		"assign":     starlark.NewBuiltin("assign", assign),
		"sequence":   starlark.NewBuiltin("sequence", sequence),
		"if_":        starlark.NewBuiltin("if_", ifStmt),
		"while_":     starlark.NewBuiltin("while_", while),
		"do_nothing": starlark.NewBuiltin("do_nothing", doNothing),
	}
}

func number(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var n int
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &n); err != nil {
		return nil, err
	}
	return TermValue{Term: simple.Number(n)}, nil
}

func boolean(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var v bool
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &v); err != nil {
		return nil, err
	}
	return TermValue{Term: simple.Boolean(v)}, nil
}

func variable(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &name); err != nil {
		return nil, err
	}
	return TermValue{Term: simple.Variable(name)}, nil
}

func binaryBuiltin(name string, op simple.Operator) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var left, right starlark.Value
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &left, &right); err != nil {
			return nil, err
		}
		l, err := exprValue(left)
		if err != nil {
			return nil, err
		}
		r, err := exprValue(right)
		if err != nil {
			return nil, err
		}
		return TermValue{Term: simple.BinaryOp{Op: op, Left: l, Right: r}}, nil
	})
}

func not(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var operand starlark.Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &operand); err != nil {
		return nil, err
	}
	e, err := exprValue(operand)
	if err != nil {
		return nil, err
	}
	return TermValue{Term: simple.UnaryOp{Op: simple.OpNot, Operand: e}}, nil
}

func assign(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var value starlark.Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &name, &value); err != nil {
		return nil, err
	}
	e, err := exprValue(value)
	if err != nil {
		return nil, err
	}
	return TermValue{Term: simple.Assign{Name: name, Expression: e}}, nil
}

func sequence(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) > 0 {
		return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
	}
	if len(args) == 0 {
		return TermValue{Term: simple.DoNothing{}}, nil
	}
	stmt, err := stmtValue(args[len(args)-1])
	if err != nil {
		return nil, err
	}
	for i := len(args) - 2; i >= 0; i-- {
		first, err := stmtValue(args[i])
		if err != nil {
			return nil, err
		}
		stmt = simple.Sequence{First: first, Second: stmt}
	}
	return TermValue{Term: stmt}, nil
}

func ifStmt(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var condition, consequence starlark.Value
	alternative := starlark.Value(starlark.None)
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &condition, &consequence, &alternative); err != nil {
		return nil, err
	}
	cond, err := exprValue(condition)
	if err != nil {
		return nil, err
	}
	cons, err := stmtValue(consequence)
	if err != nil {
		return nil, err
	}
	alt, err := stmtValue(alternative)
	if err != nil {
		return nil, err
	}
	return TermValue{Term: simple.If{Condition: cond, Consequence: cons, Alternative: alt}}, nil
}

func while(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var condition, body starlark.Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &condition, &body); err != nil {
		return nil, err
	}
	cond, err := exprValue(condition)
	if err != nil {
		return nil, err
	}
	stmt, err := stmtValue(body)
	if err != nil {
		return nil, err
	}
	return TermValue{Term: simple.While{Condition: cond, Body: stmt}}, nil
}

func doNothing(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	return TermValue{Term: simple.DoNothing{}}, nil
}
