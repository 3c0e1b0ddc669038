package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/reusee/dscope"
	"golang.org/x/term"

	"github.com/seako/understanding-computation/cmds"
	"github.com/seako/understanding-computation/debugs"
	"github.com/seako/understanding-computation/logs"
	"github.com/seako/understanding-computation/machines"
	"github.com/seako/understanding-computation/modes"
	"github.com/seako/understanding-computation/scripts"
	"github.com/seako/understanding-computation/simple"
	"github.com/seako/understanding-computation/syncs"
)

var (
	scriptPaths = cmds.Collect[string]("run")
	tapFlag     = cmds.Switch("-tap")
)

// demo runs when no script is given:
// x = 1; while (x < 5) { x = x + 1 }
var demo = simple.Sequence{
	First: simple.Assign{Name: "x", Expression: simple.Number(1)},
	Second: simple.While{
		Condition: simple.BinaryOp{Op: simple.OpLt, Left: simple.Variable("x"), Right: simple.Number(5)},
		Body: simple.Assign{
			Name:       "x",
			Expression: simple.BinaryOp{Op: simple.OpAdd, Left: simple.Variable("x"), Right: simple.Number(1)},
		},
	},
}

func main() {
	cmds.MustExecute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		load scripts.Load,
		build scripts.Build,
		newMachine machines.New,
		newExpr machines.NewExpr,
		tap debugs.Tap,
	) {

		run := func(ctx context.Context, w io.Writer, program simple.Term) error {
			ctx, _ = newSpan(ctx)
			logger.InfoContext(ctx, "run",
				"program", program,
			)

			if expression, ok := program.(simple.Expression); ok {
				machine := newExpr(expression, nil)
				for expression, err := range machine.Run {
					if err != nil {
						return logs.WrapSpan(ctx, err)
					}
					fmt.Fprintln(w, expression)
				}
				return nil
			}

			machine := newMachine(program.(simple.Statement), nil)
			var final machines.Step
			for step, err := range machine.Run {
				if err != nil {
					return logs.WrapSpan(ctx, err)
				}
				fmt.Fprintf(w, "%s\t%s\n", step.Statement, step.Env)
				final = step
			}

			if *tapFlag {
				tap(ctx, "final configuration", map[string]any{
					"statement":   final.Statement,
					"environment": final.Env,
					"bindings":    final.Env.Bindings(),
				})
			}
			return nil
		}

		// scripts run concurrently, traces print in argument order
		if paths := *scriptPaths; len(paths) > 0 {
			var wg sync.WaitGroup
			semaphore := syncs.NewSemaphore(runtime.GOMAXPROCS(0))
			outputs := make([]bytes.Buffer, len(paths))
			errs := make([]error, len(paths))

			for i, path := range paths {
				wg.Add(1)
				go func() {
					defer wg.Done()
					semaphore.Acquire()
					defer semaphore.Release()

					program, err := load(path)
					if err != nil {
						errs[i] = err
						return
					}
					errs[i] = run(ctx, &outputs[i], program)
				}()
			}
			wg.Wait()

			failed := false
			for i, path := range paths {
				os.Stdout.Write(outputs[i].Bytes())
				if errs[i] != nil {
					failed = true
					logger.ErrorContext(ctx, "run failed",
						"script", path,
						"error", errs[i],
					)
				}
			}
			if failed {
				os.Exit(1)
			}
			return
		}

		var program simple.Term
		if stdin := getStdinContent(); len(stdin) > 0 {
			p, err := build("stdin", stdin)
			ce(err)
			program = p
		} else {
			program = demo
		}

		if err := run(ctx, os.Stdout, program); err != nil {
			logger.ErrorContext(ctx, "run failed",
				"error", err,
			)
			os.Exit(1)
		}
	})

}

func getStdinContent() (ret []byte) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	ret, err := io.ReadAll(os.Stdin)
	ce(err)
	return
}
