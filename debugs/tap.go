package debugs

import (
	"context"
	"maps"
	"slices"

	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/seako/understanding-computation/logs"
	"github.com/seako/understanding-computation/modes"
)

// Tap drops into an interactive repl with the passed values bound as
// globals. Development only.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
	mode modes.Mode,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		if mode == modes.ModeProduction {
			logger.WarnContext(ctx, "tap ignored: "+what)
			return
		}

		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Collect(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := make(starlark.StringDict)
		for name, value := range globals {
			mappings[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}
