package queryspec

import "fmt"

// ValidationResult contains the findings of a structural Spec check.
type ValidationResult struct {
	// IsValid indicates the spec uses only documented relations,
	// directions, and stage shapes.
	IsValid bool

	// Problems lists everything that would compile to an expression the
	// evaluation engine rejects. Empty when IsValid is true.
	Problems []string
}

// Validate checks a Spec against the documented stage forms.
//
// The compiler deliberately does not call this: it is a pure structural
// translator and malformed specs produce malformed-but-deterministic
// output. Callers embedding user input should validate first.
//
// Validate is a pure function with no side effects.
func Validate(s Spec) ValidationResult {
	var problems []string

	if s.Filter != nil {
		if !isKnownRelation(s.Filter.Relation) {
			problems = append(problems,
				fmt.Sprintf("filter: unknown relation %q", s.Filter.Relation))
		}
		if s.Filter.Value == nil {
			problems = append(problems, "filter: value is not set")
		}
	}

	if s.Sort != nil {
		if s.Sort.Direction != Ascending && s.Sort.Direction != Descending {
			problems = append(problems,
				fmt.Sprintf("sort: unknown direction %q", s.Sort.Direction))
		}
	}

	if s.Projection != nil {
		if len(s.Projection.Paths) == 0 {
			problems = append(problems, "projection: no paths given")
		}
		for i, p := range s.Projection.Paths {
			if len(s.Projection.Paths) > 1 && len(p) == 0 {
				problems = append(problems,
					fmt.Sprintf("projection: path %d is empty; multi-path projections need a last segment to key by", i))
			}
		}
	}

	return ValidationResult{
		IsValid:  len(problems) == 0,
		Problems: problems,
	}
}

func isKnownRelation(r Relation) bool {
	for _, known := range Relations {
		if r == known {
			return true
		}
	}
	return false
}
