// Package engine is the boundary to the external JMESPath evaluation
// engine. It executes compiled expressions against in-memory document
// collections and never mutates its input.
//
// Per the engine contract, a property path that does not exist on the
// input evaluates to null (Go nil), not an error. Errors are reserved for
// expressions the engine cannot parse.
package engine

import (
	"fmt"

	"github.com/jmespath/go-jmespath"

	"github.com/roach88/sift/internal/querypath"
	"github.com/roach88/sift/internal/queryspec"
)

// Execute runs a compiled query against an in-memory collection and
// returns the result. The input is never mutated; the engine builds a new
// value. A nil result with a nil error means "not found" and callers must
// treat it as a normal outcome.
func Execute(data any, query string) (any, error) {
	result, err := jmespath.Search(query, data)
	if err != nil {
		return nil, fmt.Errorf("execute query %q: %w", query, err)
	}
	return result, nil
}

// Query compiles a spec and executes it against the collection in one
// step. The collection only rides along to Execute - compilation inspects
// the spec alone.
func Query(data any, spec queryspec.Spec) (any, error) {
	return Execute(data, querypath.Compile(spec))
}
