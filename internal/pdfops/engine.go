// Package pdfops performs the structural PDF operations: merging documents,
// deleting pages, and counting pages. All manipulation is delegated to
// pdfcpu; this package only decides which pages end up where and enforces
// the input contract.
package pdfops

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"pdftool/internal/pages"
)

// Document is one named PDF input. Data holds the entire encoded file; no
// document outlives a single operation.
type Document struct {
	Name string
	Data []byte
}

// DeleteResult carries the modified document plus the counts reported by the
// CLI surface.
type DeleteResult struct {
	PDF        []byte
	TotalPages int
	Kept       int
	Removed    int
}

func conf() *model.Configuration {
	return model.NewDefaultConfiguration()
}

func hasPDFSuffix(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".pdf")
}

// Merge appends every page of every input document, in input order, into one
// output document. The name gate runs over all inputs before any document is
// decoded, so the first offending name fails the whole operation.
func Merge(docs []Document) ([]byte, error) {
	if len(docs) < 2 {
		return nil, invalidInput("At least 2 PDF files are required")
	}

	for _, d := range docs {
		if !hasPDFSuffix(d.Name) {
			return nil, invalidInput("File %s is not a PDF", d.Name)
		}
	}

	readers := make([]io.ReadSeeker, len(docs))
	for i, d := range docs {
		readers[i] = bytes.NewReader(d.Data)
	}

	var out bytes.Buffer
	if err := api.MergeRaw(readers, &out, false, conf()); err != nil {
		return nil, processing(err)
	}

	return out.Bytes(), nil
}

// DeletePages produces a new document containing, in original order, every
// page whose 1-based position is not in the parsed set. Indices beyond the
// document's page count never match a page and are ignored here; callers
// wanting strict bounds enforcement validate before invoking this.
func DeletePages(doc Document, spec string) (*DeleteResult, error) {
	if !hasPDFSuffix(doc.Name) {
		return nil, invalidInput("File must be a PDF")
	}
	if spec == "" {
		return nil, invalidInput("Pages parameter is required")
	}

	set, err := pages.Parse(spec)
	if err != nil {
		return nil, invalidInput("Invalid page range format")
	}

	total, err := PageCount(doc.Data)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, total)
	for n := 1; n <= total; n++ {
		if !set.Contains(n) {
			kept = append(kept, strconv.Itoa(n))
		}
	}

	// pdfcpu cannot serialize a zero-page document.
	if len(kept) == 0 {
		return nil, processing(errors.New("deletion would remove every page"))
	}

	var out bytes.Buffer
	if err := api.Collect(bytes.NewReader(doc.Data), &out, kept, conf()); err != nil {
		return nil, processing(err)
	}

	return &DeleteResult{
		PDF:        out.Bytes(),
		TotalPages: total,
		Kept:       len(kept),
		Removed:    total - len(kept),
	}, nil
}

// PageCount returns the number of pages in an encoded document.
func PageCount(data []byte) (int, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf())
	if err != nil {
		return 0, processing(err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return 0, processing(err)
	}
	return ctx.PageCount, nil
}

// PageCountFile is PageCount against a file on disk. A missing file is a
// NotFound error rather than a processing failure.
func PageCountFile(path string) (int, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return 0, notFound("File not found")
		}
		return 0, processing(err)
	}

	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, processing(err)
	}
	return n, nil
}
