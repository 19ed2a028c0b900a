package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/sift/internal/store"
)

// CollectionsOptions holds flags for the collections command.
type CollectionsOptions struct {
	*RootOptions
}

// CollectionInfo is one entry in the collections listing.
type CollectionInfo struct {
	Name      string `json:"name"`
	Documents int64  `json:"documents"`
}

// NewCollectionsCommand creates the collections command.
func NewCollectionsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CollectionsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "collections",
		Short:         "List stored collections and their document counts",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollections(opts, cmd)
		},
	}

	return cmd
}

func runCollections(opts *CollectionsOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	db, err := store.Open(opts.DBPath)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "opening store", err)
	}
	defer db.Close()

	ctx := cmd.Context()

	names, err := db.Collections(ctx)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "listing collections", err)
	}

	infos := make([]CollectionInfo, 0, len(names))
	for _, name := range names {
		n, err := db.Count(ctx, name)
		if err != nil {
			_ = formatter.Error(ErrCodeStore, err.Error(), nil)
			return WrapExitError(ExitCommandError, "counting collection", err)
		}
		infos = append(infos, CollectionInfo{Name: name, Documents: n})
	}

	if formatter.Format == "json" {
		return formatter.Success(infos)
	}

	for _, info := range infos {
		fmt.Fprintf(formatter.Writer, "%s\t%d\n", info.Name, info.Documents)
	}
	return nil
}
