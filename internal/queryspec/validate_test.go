package queryspec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/sift/internal/value"
)

func TestValidate_EmptySpecIsValid(t *testing.T) {
	result := Validate(Spec{})
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Problems)
}

func TestValidate_WellFormedSpec(t *testing.T) {
	spec := Spec{
		Filter: &Filter{
			Path:     Path{"user", "age"},
			Relation: RelLessOrEqual,
			Value:    value.Number(7),
		},
		Sort: &Sort{
			Path:      Path{"user", "name"},
			Direction: Ascending,
		},
		Projection: &Projection{
			Paths: []Path{{"user", "name"}},
		},
	}

	result := Validate(spec)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Problems)
}

func TestValidate_Problems(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		problem string
	}{
		{
			name: "unknown relation",
			spec: Spec{Filter: &Filter{
				Path:     Path{"a"},
				Relation: "===",
				Value:    value.Number(1),
			}},
			problem: `unknown relation "==="`,
		},
		{
			name: "missing filter value",
			spec: Spec{Filter: &Filter{
				Path:     Path{"a"},
				Relation: RelEqual,
			}},
			problem: "value is not set",
		},
		{
			name: "unknown direction",
			spec: Spec{Sort: &Sort{
				Path:      Path{"a"},
				Direction: "descending",
			}},
			problem: `unknown direction "descending"`,
		},
		{
			name:    "empty projection",
			spec:    Spec{Projection: &Projection{}},
			problem: "no paths given",
		},
		{
			name: "empty path in multi-path projection",
			spec: Spec{Projection: &Projection{
				Paths: []Path{{"a"}, {}},
			}},
			problem: "path 1 is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.spec)
			assert.False(t, result.IsValid)

			found := false
			for _, p := range result.Problems {
				if strings.Contains(p, tt.problem) {
					found = true
				}
			}
			assert.True(t, found, "expected a problem containing %q, got %v", tt.problem, result.Problems)
		})
	}
}

func TestValidate_EmptyFilterPathIsAllowed(t *testing.T) {
	// An empty filter path means "compare the current item itself".
	spec := Spec{Filter: &Filter{
		Relation: RelNotEqual,
		Value:    value.Null{},
	}}

	result := Validate(spec)
	assert.True(t, result.IsValid)
}

func TestValidate_SingleEmptyProjectionPathIsAllowed(t *testing.T) {
	// A lone empty path projects the element itself; only multi-path
	// projections need a key segment.
	spec := Spec{Projection: &Projection{Paths: []Path{{}}}}

	result := Validate(spec)
	assert.True(t, result.IsValid)
}
