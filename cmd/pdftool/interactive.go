package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"pdftool/internal/pages"
	"pdftool/internal/pdfops"
)

// runInteractive loops over a numbered menu until the user exits or input
// ends. Each action validates its inputs with re-prompts instead of failing
// the whole session.
func runInteractive(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "PDF Tool - Command Line Interface")
	fmt.Fprintln(out, "==================================")

	for {
		fmt.Fprintln(out, "\nChoose an option:")
		fmt.Fprintln(out, "1. Merge PDFs")
		fmt.Fprintln(out, "2. Delete pages from PDF")
		fmt.Fprintln(out, "3. Exit")
		fmt.Fprint(out, "\nEnter your choice (1-3): ")

		choice, ok := readLine(scanner)
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			interactiveMerge(scanner, out)
		case "2":
			interactiveDelete(scanner, out)
		case "3":
			fmt.Fprintln(out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice. Please enter 1, 2, or 3.")
		}
	}
}

func interactiveMerge(scanner *bufio.Scanner, out io.Writer) {
	fmt.Fprintln(out, "\n=== PDF Merge Tool ===")

	var files []string
	for {
		fmt.Fprint(out, "\nEnter PDF file path (or 'done' to finish): ")
		path, ok := readLine(scanner)
		if !ok {
			return
		}
		if path == "done" {
			break
		}
		if path == "" {
			fmt.Fprintln(out, "Please enter a valid file path.")
			continue
		}
		if err := checkPDFPath(path); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		files = append(files, path)
		fmt.Fprintf(out, "Added: %s\n", path)
	}

	if len(files) < 2 {
		fmt.Fprintln(out, "At least 2 PDF files are required for merging.")
		return
	}

	fmt.Fprint(out, "\nEnter output filename (default: merged.pdf): ")
	output, ok := readLine(scanner)
	if !ok {
		return
	}
	if output == "" {
		output = "merged.pdf"
	}

	if err := runMerge(out, files, output); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}

func interactiveDelete(scanner *bufio.Scanner, out io.Writer) {
	fmt.Fprintln(out, "\n=== PDF Page Deletion Tool ===")

	var input string
	for {
		fmt.Fprint(out, "\nEnter PDF file path: ")
		path, ok := readLine(scanner)
		if !ok {
			return
		}
		if path == "" {
			fmt.Fprintln(out, "Please enter a valid file path.")
			continue
		}
		if err := checkPDFPath(path); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		input = path
		break
	}

	data, err := os.ReadFile(input)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	total, err := pdfops.PageCount(data)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	fmt.Fprintf(out, "\nTotal pages in PDF: %d\n", total)
	fmt.Fprintf(out, "Page numbers range from 1 to %d\n", total)

	var spec string
	for {
		fmt.Fprint(out, "\nEnter pages to delete (e.g., 1,3-5,7): ")
		line, ok := readLine(scanner)
		if !ok {
			return
		}
		if line == "" {
			fmt.Fprintln(out, "Please enter page numbers.")
			continue
		}

		set, err := pages.Parse(line)
		if err != nil {
			fmt.Fprintln(out, "Invalid page format. Use numbers and ranges like: 1,3-5,7")
			continue
		}
		if set.Len() >= total {
			fmt.Fprintln(out, "Cannot delete all pages. At least one page must remain.")
			continue
		}

		spec = line
		break
	}

	fmt.Fprintf(out, "\nEnter output filename (default: %s): ", defaultModifiedName(input))
	output, ok := readLine(scanner)
	if !ok {
		return
	}
	if output == "" {
		output = defaultModifiedName(input)
	}

	if err := runDelete(out, input, spec, output); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}

func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}
