// Package querypath compiles a queryspec.Spec to a JMESPath expression.
//
// The compiler is a pure structural translator: each present stage is
// rendered to an independent expression, present stages are collected in
// filter → sort → projection order, and the list is joined with the
// JMESPath pipe operator. An empty spec compiles to the identity selector.
//
// No validation happens here - a spec with an unknown relation or
// direction compiles to a malformed-but-deterministic expression, and the
// failure surfaces when the evaluation engine parses it. Upstream checks
// live in queryspec.Validate and the CLI's schema-validating loader.
package querypath

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/roach88/sift/internal/queryspec"
	"github.com/roach88/sift/internal/value"
)

const (
	// identitySelector selects every element of the top-level collection.
	identitySelector = "[*]"

	// pipeSeparator feeds the left expression's result into the right
	// expression.
	pipeSeparator = " | "

	// currentItem is the JMESPath token for the element under evaluation.
	currentItem = "@"
)

// bareIdentifier matches a path segment expressible without quoting per
// the JMESPath token grammar.
var bareIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Compile translates a spec into a JMESPath expression string.
//
// Stages are composed left-to-right in filter → sort → projection order.
// Every produced stage is syntactically self-contained, so joining any
// subset with the pipe operator yields a valid composite query.
func Compile(spec queryspec.Spec) string {
	if spec.IsEmpty() {
		return identitySelector
	}

	stages := make([]string, 0, 3)

	if spec.Filter != nil {
		stages = append(stages, renderFilter(*spec.Filter))
	}
	if spec.Sort != nil {
		stages = append(stages, renderSort(*spec.Sort))
	}
	if spec.Projection != nil {
		stages = append(stages, renderProjection(*spec.Projection))
	}

	return strings.Join(stages, pipeSeparator)
}

// renderFilter produces the predicate form of the identity selector:
// a bracketed ?-prefixed comparison over each element.
// Example: [? user.age <= `7`]
func renderFilter(f queryspec.Filter) string {
	return "[? " + RenderPath(f.Path) + " " + string(f.Relation) + " " + Literal(f.Value) + "]"
}

// renderSort produces a stable sort-by invocation keyed on the sort path.
// Descending order wraps the ascending invocation in a reversal.
func renderSort(s queryspec.Sort) string {
	expr := "sort_by(" + currentItem + ", &" + RenderPath(s.Path) + ")"
	if s.Direction == queryspec.Descending {
		expr = "reverse(" + expr + ")"
	}
	return expr
}

// renderProjection produces the extraction stage. A single path projects
// the field directly ([*].a.b); multiple paths build an object per element,
// keyed by each path's last segment and preserving input order
// ([*].{k1: a.b, k2: c}).
func renderProjection(p queryspec.Projection) string {
	if len(p.Paths) == 1 {
		if len(p.Paths[0]) == 0 {
			// The element itself; "[*].@" is a syntax error.
			return identitySelector
		}
		return identitySelector + "." + RenderPath(p.Paths[0])
	}

	parts := make([]string, len(p.Paths))
	for i, path := range p.Paths {
		key := currentItem
		if n := len(path); n > 0 {
			key = renderSegment(path[n-1])
		}
		parts[i] = key + ": " + RenderPath(path)
	}
	return identitySelector + ".{" + strings.Join(parts, ", ") + "}"
}

// RenderPath joins path segments with ".", double-quoting any segment that
// is not a bare identifier. An empty path renders the current-item token.
func RenderPath(path queryspec.Path) string {
	if len(path) == 0 {
		return currentItem
	}

	segments := make([]string, len(path))
	for i, seg := range path {
		segments[i] = renderSegment(seg)
	}
	return strings.Join(segments, ".")
}

// renderSegment renders one path segment, quoting it when it contains
// characters outside the bare-identifier grammar.
func renderSegment(seg string) string {
	if bareIdentifier.MatchString(seg) {
		return seg
	}
	quoted, err := json.Marshal(seg)
	if err != nil {
		// json.Marshal of a string cannot fail; keep the translator total
		return seg
	}
	return string(quoted)
}

// Literal serializes a scalar into the JMESPath literal syntax: the JSON
// form of the value wrapped in the back-tick escape delimiter, so the
// engine treats it as a literal rather than a path.
//
// Numbers render bare inside the delimiter (`7`, `2.3`), booleans as
// `true`/`false`, null as `null`, and strings as a double-quoted JSON
// string (`"foo"`). A nil Value degrades to the null literal.
func Literal(v value.Value) string {
	body, err := value.Marshal(v)
	if err != nil {
		// Marshal is total over the sealed variants; keep the translator
		// total here as well
		return "`null`"
	}

	// A back-tick inside the literal would close the delimiter early.
	escaped := strings.ReplaceAll(string(body), "`", "\\`")
	return "`" + escaped + "`"
}
