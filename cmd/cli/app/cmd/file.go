package cmd

import (
	"ifile/cmd/cli/app"

	"github.com/spf13/cobra"
)

var writeUnique bool

func init() {
	writeCmd.Flags().BoolVarP(&writeUnique, "unique", "u", false, "skip lines already present in the file")
	rootCmd.AddCommand(existsCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(containsCmd)
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(pathCmd)
}

var existsCmd = &cobra.Command{
	Use:               "exists <file>",
	Short:             "Check whether a file exists",
	Long:              `Exit with status 0 if the file exists in the storage directory, 1 otherwise.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: FileNameCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectFileCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleExists(args[0])
	},
}

var readCmd = &cobra.Command{
	Use:   "read <file>",
	Short: "Print every line of a file",
	Example: `  # Print the stored favorites
  ifile read favorites

  # Count them
  ifile read favorites | wc -l`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: FileNameCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectFileCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleRead(args[0])
	},
}

var containsCmd = &cobra.Command{
	Use:   "contains <file> <line>",
	Short: "Check whether a file contains a line",
	Long: `Exit with status 0 if a line exactly equal to <line> is present in the file,
1 otherwise. The comparison is case-sensitive and matches whole lines only. A missing
file contains no lines.`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: FileNameCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectFileCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleContains(args[0], args[1])
	},
}

var writeCmd = &cobra.Command{
	Use:   "write <file> [line]...",
	Short: "Append lines to a file",
	Long: `Append each line to the end of the file followed by a line separator, creating
the file if needed. Lines are written verbatim and in order. Without line arguments,
lines are read from stdin when it is piped.`,
	Example: `  # Append one line
  ifile write favorites com.example.app

  # Append only if not already present
  ifile write --unique favorites com.example.app

  # Append the lines of another file
  cat apps.txt | ifile write favorites`,
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: FileNameCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectFileCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleWrite(args[0], args[1:], writeUnique)
	},
}

var removeCmd = &cobra.Command{
	Use:               "remove <file>",
	Short:             "Delete a file",
	Long:              `Delete the file from the storage directory. Removing a file that does not exist succeeds.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: FileNameCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectFileCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleRemove(args[0])
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectFileCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleList()
	},
}

var pathCmd = &cobra.Command{
	Use:               "path <file>",
	Short:             "Print the location of a file",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: FileNameCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectFileCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandlePath(args[0])
	},
}
