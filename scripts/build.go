package scripts

import (
	"errors"
	"fmt"
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/seako/understanding-computation/logs"
	"github.com/seako/understanding-computation/simple"
)

// ErrNoProgram reports a script that completed without defining the
// program global.
var ErrNoProgram = errors.New("script does not define program")

// Build executes a starlark script and returns the term bound to its
// program global.
type Build func(name string, src any) (simple.Term, error)

func (Module) Build(
	logger logs.Logger,
) Build {
	return func(name string, src any) (simple.Term, error) {
		thread := &starlark.Thread{
			Name: name,
		}
		globals, err := starlark.ExecFileOptions(
			&syntax.FileOptions{
				Set:             true,
				TopLevelControl: true,
			},
			thread,
			name,
			src,
			Builtins(),
		)
		if err != nil {
			return nil, err
		}

		v, ok := globals["program"]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNoProgram, name)
		}
		tv, ok := v.(TermValue)
		if !ok {
			return nil, fmt.Errorf("program is not a term: %s", v.Type())
		}

		logger.Debug("script built",
			"name", name,
			"program", tv.Term,
		)
		return tv.Term, nil
	}
}

// Load builds a program from a script file.
type Load func(path string) (simple.Term, error)

func (Module) Load(
	build Build,
) Load {
	return func(path string) (simple.Term, error) {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return build(path, content)
	}
}
