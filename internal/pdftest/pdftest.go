// Package pdftest builds minimal but structurally valid PDF fixtures so
// tests exercise real decoding instead of mocks.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// PDF returns an n-page document with blank US Letter pages. n must be at
// least 1; PDF cannot represent an empty page tree in a useful way.
func PDF(n int) []byte {
	if n < 1 {
		panic("pdftest: page count must be >= 1")
	}

	var buf bytes.Buffer
	var offsets []int

	buf.WriteString("%PDF-1.4\n")

	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	kids := make([]string, n)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", 3+i)
	}

	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), n))
	for i := 0; i < n; i++ {
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>\nendobj\n", 3+i))
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefOffset)

	return buf.Bytes()
}

// WritePDF writes an n-page fixture to path.
func WritePDF(path string, n int) error {
	return os.WriteFile(path, PDF(n), 0644)
}
