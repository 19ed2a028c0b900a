package cli

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/sift/internal/queryspec"
	"github.com/roach88/sift/internal/value"
)

//go:embed schema.cue
var schemaCUE string

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric  = "E001" // Generic/unknown error
	ErrCodeNotFound = "E002" // Path not found
	ErrCodeParse    = "E003" // Spec file is not valid YAML
	ErrCodeSchema   = "E004" // Spec file violates the CUE schema
	ErrCodeData     = "E005" // Data file is not a JSON array
	ErrCodeStore    = "E006" // Store/database error
	ErrCodeExecute  = "E007" // Query execution rejected by the engine
)

// LoadError represents an error that occurred while loading a spec or
// data file.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// specFile mirrors the on-disk YAML shape of a query spec. The filter
// value stays untyped here: raw text is run through the literal coercion,
// already-typed scalars map directly.
type specFile struct {
	Filter *struct {
		Path     []string `yaml:"path"`
		Relation string   `yaml:"relation"`
		Value    any      `yaml:"value"`
	} `yaml:"filter"`
	Sort *struct {
		Path      []string `yaml:"path"`
		Direction string   `yaml:"direction"`
	} `yaml:"sort"`
	Projection *struct {
		Paths [][]string `yaml:"paths"`
	} `yaml:"projection"`
}

// LoadSpec reads a YAML spec file, validates it against the embedded CUE
// schema, and builds a queryspec.Spec. This is the upstream validation the
// compiler itself deliberately skips.
func LoadSpec(path string) (*queryspec.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("spec file not found: %s", path)}
		}
		return nil, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("reading spec file: %v", err)}
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("parsing spec file: %v", err)}
	}

	if err := validateSpecSchema(raw); err != nil {
		return nil, err
	}

	var file specFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("parsing spec file: %v", err)}
	}

	spec := &queryspec.Spec{}
	if file.Filter != nil {
		spec.Filter = &queryspec.Filter{
			Path:     queryspec.Path(file.Filter.Path),
			Relation: queryspec.Relation(file.Filter.Relation),
			Value:    coerceRaw(file.Filter.Value),
		}
	}
	if file.Sort != nil {
		spec.Sort = &queryspec.Sort{
			Path:      queryspec.Path(file.Sort.Path),
			Direction: queryspec.Direction(file.Sort.Direction),
		}
	}
	if file.Projection != nil {
		paths := make([]queryspec.Path, len(file.Projection.Paths))
		for i, p := range file.Projection.Paths {
			paths[i] = queryspec.Path(p)
		}
		spec.Projection = &queryspec.Projection{Paths: paths}
	}

	return spec, nil
}

// validateSpecSchema unifies the raw spec document with the #QuerySpec
// definition. Definitions are closed, so unknown fields and malformed
// enums are rejected here rather than compiling to a broken expression.
func validateSpecSchema(raw any) error {
	if raw == nil {
		// Empty file is the identity spec.
		return nil
	}

	ctx := cuecontext.New()

	schemaVal := ctx.CompileString(schemaCUE)
	if err := schemaVal.Err(); err != nil {
		return &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("compiling spec schema: %v", err)}
	}

	schema := schemaVal.LookupPath(cue.ParsePath("#QuerySpec"))
	if err := schema.Err(); err != nil {
		return &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("locating #QuerySpec: %v", err)}
	}

	unified := schema.Unify(ctx.Encode(raw))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &LoadError{Code: ErrCodeSchema, Message: fmt.Sprintf("spec does not match schema: %v", err)}
	}

	return nil
}

// coerceRaw maps a spec-file filter value to a Value. Raw text goes
// through the literal coercion (so "7" means the number 7, "null" means
// null); scalars the YAML parser already typed map directly.
func coerceRaw(v any) value.Value {
	if s, ok := v.(string); ok {
		return value.Coerce(s)
	}
	return value.FromNative(v)
}

// LoadDocuments reads a JSON document collection from a file, or from
// stdin when path is "-". The top level must be an array.
func LoadDocuments(path string, stdin io.Reader) ([]any, error) {
	var data []byte
	var err error

	if path == "-" {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("reading stdin: %v", err)}
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("data file not found: %s", path)}
			}
			return nil, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("reading data file: %v", err)}
		}
	}

	var docs []any
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, &LoadError{Code: ErrCodeData, Message: fmt.Sprintf("data must be a JSON array: %v", err)}
	}

	return docs, nil
}
