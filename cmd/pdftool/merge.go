package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"pdftool/internal/pdfops"
)

func mergeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "merge <file>...",
		Short: "Merge multiple PDF files into one",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd.OutOrStdout(), args, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "merged.pdf", "output PDF file")

	return cmd
}

func runMerge(out io.Writer, inputs []string, output string) error {
	if len(inputs) < 2 {
		return errors.New("at least 2 PDF files are required for merging")
	}
	for _, path := range inputs {
		if err := checkPDFPath(path); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "Processing %d PDF files...\n", len(inputs))

	docs := make([]pdfops.Document, 0, len(inputs))
	for i, path := range inputs {
		fmt.Fprintf(out, "  [%d/%d] Reading: %s\n", i+1, len(inputs), filepath.Base(path))
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error merging PDFs: %w", err)
		}
		cliLog.Debug("read %d bytes from %s", len(data), path)
		docs = append(docs, pdfops.Document{Name: path, Data: data})
	}

	merged, err := pdfops.Merge(docs)
	if err != nil {
		return fmt.Errorf("error merging PDFs: %w", err)
	}

	fmt.Fprintf(out, "Writing merged PDF to: %s\n", output)
	if err := os.WriteFile(output, merged, 0644); err != nil {
		return fmt.Errorf("error merging PDFs: %w", err)
	}

	fmt.Fprintf(out, "Successfully merged %d PDFs into: %s\n", len(inputs), output)
	return nil
}

// checkPDFPath verifies the path exists and carries a .pdf suffix.
func checkPDFPath(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", path)
	}
	return nil
}
