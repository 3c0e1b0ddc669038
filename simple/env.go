package simple

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Env is an immutable mapping from variable name to Value, stored as a
// parent-chained binding list. The nil *Env is the empty environment.
// Extend returns a new Env and never alters the receiver, so environments
// recorded in earlier reduction steps stay valid.
type Env struct {
	parent *Env
	name   string
	value  Value
}

func (e *Env) Lookup(name string) (Value, error) {
	for env := e; env != nil; env = env.parent {
		if env.name == name {
			return env.value, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnboundVariable, name)
}

func (e *Env) Extend(name string, value Value) *Env {
	return &Env{
		parent: e,
		name:   name,
		value:  value,
	}
}

// Bindings returns the visible bindings; newer bindings shadow older ones.
func (e *Env) Bindings() map[string]Value {
	bindings := make(map[string]Value)
	for env := e; env != nil; env = env.parent {
		if _, ok := bindings[env.name]; !ok {
			bindings[env.name] = env.value
		}
	}
	return bindings
}

func (e *Env) String() string {
	bindings := e.Bindings()
	var sb strings.Builder
	sb.WriteString("{")
	for i, name := range slices.Sorted(maps.Keys(bindings)) {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(bindings[name].String())
	}
	sb.WriteString("}")
	return sb.String()
}
