package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pdftool/pkg/logger"
)

var cliLog = logger.New(logger.WithPrefix("[pdftool] "), logger.WithOutput(os.Stderr))

func main() {
	var verbose bool

	root := &cobra.Command{
		Use:           "pdftool",
		Short:         "Merge PDFs, delete pages, and inspect page counts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cliLog.SetVerbose(verbose)
		},
		// Bare invocation drops into the interactive menu.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose logging")

	root.AddCommand(mergeCmd(), deleteCmd(), infoCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
