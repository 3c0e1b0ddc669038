package simple

// Term is a node of a SIMPLE abstract syntax tree. Terms are immutable;
// reduction builds new terms instead of mutating old ones, so terms recorded
// in earlier trace steps stay valid.
type Term interface {
	// Reducible reports whether a one-step reduction rule applies.
	// It is false only for normal forms: values and DoNothing.
	Reducible() bool
	String() string
}

// Expression terms reduce against an environment without changing it.
type Expression interface {
	Term
	isExpression()
}

// Statement terms reduce to a next statement and possibly a new environment.
type Statement interface {
	Term
	isStatement()
}
