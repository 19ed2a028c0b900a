package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/sift/internal/engine"
	"github.com/roach88/sift/internal/querypath"
	"github.com/roach88/sift/internal/store"
	"github.com/roach88/sift/internal/value"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	*RootOptions
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QueryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "query <collection> <spec-file>",
		Short: "Run a query spec against a stored collection",
		Long: `Load a named collection from the SQLite database, compile the YAML
query spec, and execute it. Results print as canonical JSON.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(opts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runQuery(opts *QueryOptions, collection, specPath string, cmd *cobra.Command) error {
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

	db, err := store.Open(opts.DBPath)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "opening store", err)
	}
	defer db.Close()

	docs, err := db.Load(cmd.Context(), collection)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading collection", err)
	}

	query := querypath.Compile(*spec)
	formatter.VerboseLog("query: %s", query)
	formatter.VerboseLog("collection %q: %d document(s)", collection, len(docs))

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
