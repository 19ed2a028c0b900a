package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/sift/internal/store"
)

// LoadCmdOptions holds flags for the load command.
type LoadCmdOptions struct {
	*RootOptions
	Replace bool
}

// LoadResult is the JSON payload of a successful load.
type LoadResult struct {
	Collection string `json:"collection"`
	Stored     int    `json:"stored"`
	Replaced   int64  `json:"replaced,omitempty"`
}

// NewLoadCommand creates the load command.
func NewLoadCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LoadCmdOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "load <collection> <data-file>",
		Short: "Store a JSON collection in the database",
		Long: `Read a JSON array of documents and store it as a named collection in
the SQLite database. Pass "-" as the data file to read from stdin.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Replace, "replace", false, "drop existing documents in the collection first")

	return cmd
}

func runLoad(opts *LoadCmdOptions, collection, dataPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	docs, err := LoadDocuments(dataPath, cmd.InOrStdin())
	if err != nil {
		return outputLoadError(formatter, err)
	}

	db, err := store.Open(opts.DBPath)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "opening store", err)
	}
	defer db.Close()

	ctx := cmd.Context()

	var replaced int64
	if opts.Replace {
		replaced, err = db.Delete(ctx, collection)
		if err != nil {
			_ = formatter.Error(ErrCodeStore, err.Error(), nil)
			return WrapExitError(ExitCommandError, "replacing collection", err)
		}
	}

	ids, err := db.PutAll(ctx, collection, docs)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "storing documents", err)
	}

	formatter.VerboseLog("stored %d document(s) in %q (%s)", len(ids), collection, opts.DBPath)

	result := LoadResult{Collection: collection, Stored: len(ids), Replaced: replaced}
	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(fmt.Sprintf("stored %d document(s) in %s", result.Stored, collection))
}
