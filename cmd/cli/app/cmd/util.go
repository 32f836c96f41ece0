package cmd

import (
	"ifile/cmd/cli/app"

	"github.com/spf13/cobra"
)

// FileNameCompletion completes the first argument with the names of stored files.
func FileNameCompletion(
	cmd *cobra.Command,
	args []string,
	toComplete string,
) ([]cobra.Completion, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	fileStore, err := app.InjectFileStore()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names, err := fileStore.List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	return names, cobra.ShellCompDirectiveNoFileComp
}
