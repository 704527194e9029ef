package logs

// Span identifies one run in the logs.
type Span string

type spanKey struct{}

var SpanKey spanKey
