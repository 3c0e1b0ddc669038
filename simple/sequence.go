package simple

import "fmt"

// Sequence reduces its first statement to completion before starting the
// second; the environment threads forward through the first branch only.
type Sequence struct {
	First  Statement
	Second Statement
}

func (Sequence) Reducible() bool { return true }

func (s Sequence) String() string {
	return fmt.Sprintf("%s; %s", s.First, s.Second)
}

func (Sequence) isStatement() {}

func reduceSequence(s Sequence, env *Env) (Statement, *Env, error) {
	if s.First == (DoNothing{}) {
		return s.Second, env, nil
	}
	first, env, err := ReduceStatement(s.First, env)
	if err != nil {
		return nil, nil, err
	}
	return Sequence{First: first, Second: s.Second}, env, nil
}
