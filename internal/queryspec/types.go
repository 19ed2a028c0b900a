package queryspec

import "github.com/roach88/sift/internal/value"

// Path is an ordered sequence of field-path segments identifying a possibly
// nested property access, e.g. {"user", "age"}. An empty Path denotes the
// current item as a whole (no property access).
type Path []string

// Relation is a comparison operator applied between a field path and a
// literal value in a Filter.
type Relation string

const (
	RelEqual          Relation = "=="
	RelNotEqual       Relation = "!="
	RelLess           Relation = "<"
	RelLessOrEqual    Relation = "<="
	RelGreater        Relation = ">"
	RelGreaterOrEqual Relation = ">="
)

// Relations lists the supported comparison operators.
var Relations = []Relation{
	RelEqual, RelNotEqual, RelLess, RelLessOrEqual, RelGreater, RelGreaterOrEqual,
}

// Direction is a sort order.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Filter keeps the elements whose field at Path compares true against
// Value under Relation.
//
// An empty Path compares the element itself ("the current item").
type Filter struct {
	Path     Path        `json:"path"`
	Relation Relation    `json:"relation"`
	Value    value.Value `json:"value"`
}

// Sort orders elements by the field at Path. Sorting is stable; Descending
// reverses the ascending order.
type Sort struct {
	Path      Path      `json:"path"`
	Direction Direction `json:"direction"`
}

// Projection extracts one or more field paths from each element. Order
// matters and is preserved in the output. With a single path the result is
// the bare field value; with multiple paths each element becomes an object
// keyed by the last segment of each path.
type Projection struct {
	Paths []Path `json:"paths"`
}

// Spec is the full query specification. Each stage is optional; a zero
// Spec compiles to the identity query.
type Spec struct {
	Filter     *Filter     `json:"filter,omitempty"`
	Sort       *Sort       `json:"sort,omitempty"`
	Projection *Projection `json:"projection,omitempty"`
}

// IsEmpty reports whether no stage is present.
func (s Spec) IsEmpty() bool {
	return s.Filter == nil && s.Sort == nil && s.Projection == nil
}
