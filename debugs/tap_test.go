package debugs

import (
	"testing"

	"github.com/reusee/dscope"

	"github.com/seako/understanding-computation/modes"
	"github.com/seako/understanding-computation/simple"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", map[string]any{
			"term": simple.Statement(simple.Assign{
				Name:       "x",
				Expression: simple.Number(1),
			}),
		})
	})
}

func TestTapProduction(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		tap Tap,
	) {
		// must not open a repl
		tap(t.Context(), "test", nil)
	})
}
