package simple

import "fmt"

// While unrolls one iteration per step by rewriting itself to an If whose
// consequence re-enters the loop; the If and Sequence rules drive the actual
// looping. A condition that never becomes false produces an unbounded
// reduction path, which is not an error.
type While struct {
	Condition Expression
	Body      Statement
}

func (While) Reducible() bool { return true }

func (w While) String() string {
	return fmt.Sprintf("while (%s) { %s }", w.Condition, w.Body)
}

func (While) isStatement() {}

func reduceWhile(w While, env *Env) (Statement, *Env, error) {
	return If{
		Condition:   w.Condition,
		Consequence: Sequence{First: w.Body, Second: w},
		Alternative: DoNothing{},
	}, env, nil
}
