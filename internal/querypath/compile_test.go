package querypath

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/sift/internal/queryspec"
	"github.com/roach88/sift/internal/value"
)

func TestCompile_EmptySpecIsIdentity(t *testing.T) {
	assert.Equal(t, "[*]", Compile(queryspec.Spec{}))
}

func TestCompile_FilterOnly(t *testing.T) {
	spec := queryspec.Spec{
		Filter: &queryspec.Filter{
			Path:     queryspec.Path{"user", "age"},
			Relation: queryspec.RelLessOrEqual,
			Value:    value.Number(7),
		},
	}

	assert.Equal(t, "[? user.age <= `7`]", Compile(spec))
}

func TestCompile_FilterWithEmptyPath(t *testing.T) {
	// An empty filter path compares the current item itself.
	spec := queryspec.Spec{
		Filter: &queryspec.Filter{
			Relation: queryspec.RelNotEqual,
			Value:    value.Null{},
		},
	}

	assert.Equal(t, "[? @ != `null`]", Compile(spec))
}

func TestCompile_SortAscending(t *testing.T) {
	spec := queryspec.Spec{
		Sort: &queryspec.Sort{
			Path:      queryspec.Path{"user", "name"},
			Direction: queryspec.Ascending,
		},
	}

	assert.Equal(t, "sort_by(@, &user.name)", Compile(spec))
}

func TestCompile_SortDescendingWrapsInReverse(t *testing.T) {
	spec := queryspec.Spec{
		Sort: &queryspec.Sort{
			Path:      queryspec.Path{"user", "name"},
			Direction: queryspec.Descending,
		},
	}

	assert.Equal(t, "reverse(sort_by(@, &user.name))", Compile(spec))
}

func TestCompile_SingleProjectionIsDottedPath(t *testing.T) {
	spec := queryspec.Spec{
		Projection: &queryspec.Projection{
			Paths: []queryspec.Path{{"user", "name"}},
		},
	}

	assert.Equal(t, "[*].user.name", Compile(spec))
}

func TestCompile_SingleEmptyProjectionPathIsIdentity(t *testing.T) {
	// The element itself; must not render the invalid "[*].@" form.
	spec := queryspec.Spec{
		Projection: &queryspec.Projection{
			Paths: []queryspec.Path{{}},
		},
	}

	assert.Equal(t, "[*]", Compile(spec))
}

func TestCompile_SingleEmptyProjectionPathAfterFilter(t *testing.T) {
	spec := queryspec.Spec{
		Filter: &queryspec.Filter{
			Path:     queryspec.Path{"user", "age"},
			Relation: queryspec.RelGreater,
			Value:    value.Number(6),
		},
		Projection: &queryspec.Projection{
			Paths: []queryspec.Path{{}},
		},
	}

	assert.Equal(t, "[? user.age > `6`] | [*]", Compile(spec))
}

func TestCompile_MultiProjectionBuildsObject(t *testing.T) {
	spec := queryspec.Spec{
		Projection: &queryspec.Projection{
			Paths: []queryspec.Path{
				{"user", "name"},
				{"_id"},
			},
		},
	}

	// Keys come from each path's last segment, input order preserved.
	assert.Equal(t, "[*].{name: user.name, _id: _id}", Compile(spec))
}

func TestCompile_MultiProjectionPreservesOrder(t *testing.T) {
	spec := queryspec.Spec{
		Projection: &queryspec.Projection{
			Paths: []queryspec.Path{
				{"z"},
				{"a"},
				{"m"},
			},
		},
	}

	assert.Equal(t, "[*].{z: z, a: a, m: m}", Compile(spec))
}

func TestCompile_FullPipelineOrder(t *testing.T) {
	spec := queryspec.Spec{
		Filter: &queryspec.Filter{
			Path:     queryspec.Path{"user", "age"},
			Relation: queryspec.RelLessOrEqual,
			Value:    value.Coerce("7"),
		},
		Sort: &queryspec.Sort{
			Path:      queryspec.Path{"user", "name"},
			Direction: queryspec.Ascending,
		},
		Projection: &queryspec.Projection{
			Paths: []queryspec.Path{{"user", "name"}},
		},
	}

	assert.Equal(t,
		"[? user.age <= `7`] | sort_by(@, &user.name) | [*].user.name",
		Compile(spec))
}

func TestCompile_FilterAndSortOnly(t *testing.T) {
	spec := queryspec.Spec{
		Filter: &queryspec.Filter{
			Path:     queryspec.Path{"status"},
			Relation: queryspec.RelEqual,
			Value:    value.String("active"),
		},
		Sort: &queryspec.Sort{
			Path:      queryspec.Path{"rank"},
			Direction: queryspec.Descending,
		},
	}

	assert.Equal(t,
		"[? status == `\"active\"`] | reverse(sort_by(@, &rank))",
		Compile(spec))
}

func TestCompile_Deterministic(t *testing.T) {
	spec := queryspec.Spec{
		Filter: &queryspec.Filter{
			Path:     queryspec.Path{"user", "age"},
			Relation: queryspec.RelGreater,
			Value:    value.Number(6),
		},
		Projection: &queryspec.Projection{
			Paths: []queryspec.Path{{"user", "name"}, {"user", "age"}},
		},
	}

	assert.Equal(t, Compile(spec), Compile(spec))
}

func TestCompile_DoesNotMutateSpec(t *testing.T) {
	path := queryspec.Path{"user", "first name"}
	spec := queryspec.Spec{
		Sort: &queryspec.Sort{Path: path, Direction: queryspec.Ascending},
	}

	Compile(spec)

	assert.Equal(t, queryspec.Path{"user", "first name"}, spec.Sort.Path)
}

func TestRenderPath(t *testing.T) {
	tests := []struct {
		name     string
		path     queryspec.Path
		expected string
	}{
		{"empty path is current item", nil, "@"},
		{"single segment", queryspec.Path{"name"}, "name"},
		{"nested", queryspec.Path{"user", "age"}, "user.age"},
		{"underscore prefix", queryspec.Path{"_id"}, "_id"},
		{"space needs quoting", queryspec.Path{"user", "first name"}, `user."first name"`},
		{"punctuation needs quoting", queryspec.Path{"user-id"}, `"user-id"`},
		{"leading digit needs quoting", queryspec.Path{"1st"}, `"1st"`},
		{"empty segment needs quoting", queryspec.Path{""}, `""`},
		{"dot inside segment", queryspec.Path{"a.b", "c"}, `"a.b".c`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RenderPath(tt.path))
		})
	}
}

func TestLiteral_AllVariants(t *testing.T) {
	tests := []struct {
		name     string
		value    value.Value
		expected string
	}{
		{"null", value.Null{}, "`null`"},
		{"true", value.Bool(true), "`true`"},
		{"false", value.Bool(false), "`false`"},
		{"integer", value.Number(7), "`7`"},
		{"decimal", value.Number(2.3), "`2.3`"},
		{"string", value.String("foo"), "`\"foo\"`"},
		{"string with quotes", value.String(`say "hi"`), "`\"say \\\"hi\\\"\"`"},
		{"string with backtick", value.String("a`b"), "`\"a\\`b\"`"},
		{"nil value degrades to null", nil, "`null`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Literal(tt.value))
		})
	}
}

func TestCompile_QuotedSegmentInProjectionKey(t *testing.T) {
	spec := queryspec.Spec{
		Projection: &queryspec.Projection{
			Paths: []queryspec.Path{
				{"user", "first name"},
				{"user", "age"},
			},
		},
	}

	assert.Equal(t,
		`[*].{"first name": user."first name", age: user.age}`,
		Compile(spec))
}

func TestCompile_GarbageInIsDeterministic(t *testing.T) {
	// Unknown relations are not validated here; they pass through verbatim.
	spec := queryspec.Spec{
		Filter: &queryspec.Filter{
			Path:     queryspec.Path{"a"},
			Relation: "~=",
			Value:    value.Number(1),
		},
	}

	assert.Equal(t, "[? a ~= `1`]", Compile(spec))
}
