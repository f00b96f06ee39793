package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pdftool/internal/pdfops"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show page count and size of a PDF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.OutOrStdout(), args[0])
		},
	}
}

func runInfo(out io.Writer, path string) error {
	if err := checkPDFPath(path); err != nil {
		return err
	}

	count, err := pdfops.PageCountFile(path)
	if err != nil {
		return err
	}

	fi, err := os.Stat(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "File: %s\n", path)
	fmt.Fprintf(out, "Pages: %d\n", count)
	fmt.Fprintf(out, "Size: %d bytes (%.1f KB)\n", fi.Size(), float64(fi.Size())/1024)
	return nil
}
