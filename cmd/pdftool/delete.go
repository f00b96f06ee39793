package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"pdftool/internal/pages"
	"pdftool/internal/pdfops"
)

func deleteCmd() *cobra.Command {
	var pagesSpec, output string

	cmd := &cobra.Command{
		Use:   "delete <file>",
		Short: "Delete pages from a PDF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd.OutOrStdout(), args[0], pagesSpec, output)
		},
	}
	cmd.Flags().StringVarP(&pagesSpec, "pages", "p", "", `pages to delete (e.g. "1,3-5,7")`)
	cmd.MarkFlagRequired("pages")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PDF file (default: <input>_modified.pdf)")

	return cmd
}

// runDelete is stricter than the HTTP surface: page indices outside the
// document are rejected up front, listing the offenders.
func runDelete(out io.Writer, input, spec, output string) error {
	if err := checkPDFPath(input); err != nil {
		return err
	}
	if output == "" {
		output = defaultModifiedName(input)
	}

	fmt.Fprintf(out, "Reading PDF: %s\n", input)
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("error deleting pages: %w", err)
	}

	total, err := pdfops.PageCount(data)
	if err != nil {
		return fmt.Errorf("error deleting pages: %w", err)
	}

	set, err := pages.Parse(spec)
	if err != nil {
		return fmt.Errorf("invalid page range format: %w", err)
	}
	cliLog.Debug("parsed deletion set %v against %d pages", set.Sorted(), total)

	fmt.Fprintf(out, "Total pages in PDF: %d\n", total)
	fmt.Fprintf(out, "Pages to delete: %v\n", set.Sorted())

	if invalid := set.OutOfRange(total); len(invalid) > 0 {
		return fmt.Errorf("invalid page numbers: %v (pages must be between 1 and %d)", invalid, total)
	}

	result, err := pdfops.DeletePages(pdfops.Document{Name: input, Data: data}, spec)
	if err != nil {
		return fmt.Errorf("error deleting pages: %w", err)
	}

	fmt.Fprintf(out, "Writing modified PDF to: %s\n", output)
	if err := os.WriteFile(output, result.PDF, 0644); err != nil {
		return fmt.Errorf("error deleting pages: %w", err)
	}

	fmt.Fprintf(out, "Successfully deleted %d pages. Kept %d pages.\n", result.Removed, result.Kept)
	fmt.Fprintf(out, "Output saved to: %s\n", output)
	return nil
}

func defaultModifiedName(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "_modified.pdf"
}
