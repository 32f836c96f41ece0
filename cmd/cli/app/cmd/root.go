package cmd

import (
	"errors"
	"os"

	"ifile/internal/cli/output"
	"ifile/internal/core/handler"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ifile",
	Short: "Line-oriented storage for application-private files",
	Long: `ifile keeps small line-oriented text files in a private storage directory
(~/.ifile/files by default) and lets you query and append to them.

Configuration is read from ~/.ifile-config.yaml when present. Run 'ifile initialize'
to write a configuration file with the default values.

Common workflows:
  ifile write favorites com.example.app    Append a line (creates the file)
  ifile contains favorites com.example.app Exit 0 if the line is present, 1 otherwise
  ifile read favorites                     Print every line
  ifile remove favorites                   Delete the file`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, handler.ErrNegativeResult) {
			output.PrintError(err.Error())
		}
		os.Exit(1)
	}
}
