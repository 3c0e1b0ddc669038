package logs

// Span identifies one logical operation across log records, for example a
// single machine run.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
