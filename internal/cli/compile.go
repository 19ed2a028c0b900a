package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/roach88/sift/internal/querypath"
	"github.com/roach88/sift/internal/queryspec"
)

// CompileOptions holds flags for the compile command.
type CompileOptions struct {
	*RootOptions
}

// CompileResult is the JSON payload of a successful compile.
type CompileResult struct {
	Query string `json:"query"`
}

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compile <spec-file>",
		Short: "Compile a query spec to a JMESPath expression",
		Long: `Compile a YAML query spec (filter, sort, projection) to the JMESPath
expression the engine would execute, without running it.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompileSpec(opts, args[0], cmd)
		},
	}

	return cmd
}

func runCompileSpec(opts *CompileOptions, specPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	spec, err := LoadSpec(specPath)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	if result := queryspec.Validate(*spec); !result.IsValid {
		_ = formatter.Error(ErrCodeSchema, "spec failed validation", result.Problems)
		return NewExitError(ExitFailure, "spec failed validation")
	}

	query := querypath.Compile(*spec)
	formatter.VerboseLog("compiled %s", specPath)

	if formatter.Format == "json" {
		return formatter.Success(CompileResult{Query: query})
	}
	return formatter.Success(query)
}

// outputLoadError renders a loader error and maps it to an exit code:
// schema/validation problems are expected failures, everything else is a
// command error.
func outputLoadError(formatter *OutputFormatter, err error) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
		code := ExitCommandError
		if loadErr.Code == ErrCodeSchema {
			code = ExitFailure
		}
		return WrapExitError(code, loadErr.Message, err)
	}

	_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
	return WrapExitError(ExitCommandError, err.Error(), err)
}
