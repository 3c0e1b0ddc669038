package simple

// Variable reduces in one step to its value in the environment.
type Variable string

func (Variable) Reducible() bool  { return true }
func (v Variable) String() string { return string(v) }
func (Variable) isExpression()    {}
