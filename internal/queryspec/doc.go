// Package queryspec defines the structured query specification that the
// querypath compiler translates into a JMESPath expression.
//
// A Spec is a composite of up to three independent stages:
//
//   - Filter: keep elements where a field path compares true against a
//     scalar literal
//   - Sort: order elements by a field path, ascending or descending
//   - Projection: extract one or more field paths from each element
//
// Absence of all three is the identity query: the compiler degenerates to
// the selector for "every element of the top-level collection".
//
// VALIDATION BOUNDARY:
//
// The compiler itself never validates a Spec - a malformed spec compiles to
// a malformed-but-deterministic expression, and the failure surfaces when
// the evaluation engine rejects it. Validate in this package is the
// upstream check callers run before compiling; the CLI additionally
// validates spec files against a CUE schema before building a Spec at all.
package queryspec
