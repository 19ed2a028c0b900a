package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/sift/internal/engine"
	"github.com/roach88/sift/internal/querypath"
	"github.com/roach88/sift/internal/value"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	ShowQuery bool
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <spec-file> <data-file>",
		Short: "Compile a spec and execute it against a JSON collection",
		Long: `Compile a YAML query spec and execute the resulting JMESPath expression
against a JSON array of documents. Pass "-" as the data file to read from
stdin. Results print as canonical JSON.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.ShowQuery, "show-query", false, "print the compiled expression to stderr")

	return cmd
}

func runRun(opts *RunOptions, specPath, dataPath string, cmd *cobra.Command) error {
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

	docs, err := LoadDocuments(dataPath, cmd.InOrStdin())
	if err != nil {
		return outputLoadError(formatter, err)
	}

	query := querypath.Compile(*spec)
	formatter.VerboseLog("query: %s", query)
	if opts.ShowQuery {
		fmt.Fprintln(cmd.ErrOrStderr(), query)
	}

	result, err := engine.Execute(docs, query)
	if err != nil {
		_ = formatter.Error(ErrCodeExecute, err.Error(), nil)
		return WrapExitError(ExitFailure, "query execution failed", err)
	}

	rendered, err := value.MarshalCanonical(result)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "rendering result", err)
	}

	return formatter.Raw(rendered)
}
