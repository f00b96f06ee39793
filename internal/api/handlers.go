package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"pdftool/internal/pdfops"
)

func (s *Server) handleMerge(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Field 'files' is required"})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Field 'files' is required"})
		return
	}
	if len(files) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "At least 2 PDF files are required"})
		return
	}

	docs := make([]pdfops.Document, 0, len(files))
	for _, fh := range files {
		if fh.Size > s.cfg.MaxFileSize {
			c.JSON(http.StatusBadRequest, gin.H{
				"detail": fmt.Sprintf("File %s exceeds the maximum size of %d bytes", fh.Filename, s.cfg.MaxFileSize),
			})
			return
		}
		data, err := readUpload(fh)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}
		docs = append(docs, pdfops.Document{Name: fh.Filename, Data: data})
	}

	merged, err := pdfops.Merge(docs)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	sendPDF(c, merged, "merged.pdf")
}

func (s *Server) handleDeletePages(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Field 'file' is required"})
		return
	}
	if fh.Size > s.cfg.MaxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": fmt.Sprintf("File %s exceeds the maximum size of %d bytes", fh.Filename, s.cfg.MaxFileSize),
		})
		return
	}

	data, err := readUpload(fh)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	result, err := pdfops.DeletePages(pdfops.Document{Name: fh.Filename, Data: data}, c.PostForm("pages"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	sendPDF(c, result.PDF, "modified.pdf")
}

func (s *Server) handlePageCount(c *gin.Context) {
	filename := c.Param("filename")
	if !strings.HasSuffix(filename, ".pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "File is not a PDF"})
		return
	}

	path := filepath.Join(s.cfg.TempDir, sanitizeFilename(filename))
	count, err := pdfops.PageCountFile(path)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page_count": count})
}

// abortWithError maps engine error kinds to HTTP status codes. Processing
// failures pass the underlying message through verbatim.
func (s *Server) abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pdfops.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.Is(err, pdfops.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	default:
		s.log.Info("PDF operation error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	}
}

func sendPDF(c *gin.Context, data []byte, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// sanitizeFilename strips path traversal attempts from a client-supplied name.
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "..", "")
	filename = strings.ReplaceAll(filename, "/", "_")
	filename = strings.ReplaceAll(filename, "\\", "_")
	return filepath.Base(strings.TrimSpace(filename))
}
