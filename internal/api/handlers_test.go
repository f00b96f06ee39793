package api_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/gin-gonic/gin"

	"pdftool/internal/api"
	"pdftool/internal/config"
	"pdftool/internal/pdfops"
	"pdftool/internal/pdftest"
	"pdftool/pkg/logger"
)

const allowedOrigin = "http://localhost:5173"

type upload struct {
	field string
	name  string
	data  []byte
}

func multipartRequest(target string, uploads []upload, fields map[string]string) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, u := range uploads {
		part, err := writer.CreateFormFile(u.field, u.name)
		Expect(err).NotTo(HaveOccurred())
		_, err = part.Write(u.data)
		Expect(err).NotTo(HaveOccurred())
	}
	for k, v := range fields {
		Expect(writer.WriteField(k, v)).To(Succeed())
	}
	Expect(writer.Close()).To(Succeed())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func detailOf(rec *httptest.ResponseRecorder) string {
	var body struct {
		Detail string `json:"detail"`
	}
	Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
	return body.Detail
}

var _ = Describe("HTTP API", func() {
	var (
		router  *gin.Engine
		tempDir string
	)

	BeforeEach(func() {
		tempDir = GinkgoT().TempDir()
		cfg := &config.Config{
			Port:           "0",
			TempDir:        tempDir,
			MaxFileSize:    10 * 1024 * 1024,
			AllowedOrigins: []string{allowedOrigin},
		}
		log := logger.New(logger.WithOutput(GinkgoWriter))

		router = gin.New()
		api.NewServer(cfg, log).SetupRoutes(router)
	})

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	Describe("POST /merge", func() {
		It("merges two uploads into one attachment", func() {
			req := multipartRequest("/merge", []upload{
				{"files", "a.pdf", pdftest.PDF(1)},
				{"files", "b.pdf", pdftest.PDF(2)},
			}, nil)
			rec := serve(req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(Equal("application/pdf"))
			Expect(rec.Header().Get("Content-Disposition")).To(Equal("attachment; filename=merged.pdf"))

			count, err := pdfops.PageCount(rec.Body.Bytes())
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(3))
		})

		It("rejects a single upload", func() {
			req := multipartRequest("/merge", []upload{
				{"files", "a.pdf", pdftest.PDF(1)},
			}, nil)
			rec := serve(req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(detailOf(rec)).To(Equal("At least 2 PDF files are required"))
		})

		It("rejects a request without any files", func() {
			req := multipartRequest("/merge", nil, map[string]string{"unrelated": "x"})
			rec := serve(req)

			Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))
		})

		It("rejects a non-PDF filename and names the offender", func() {
			req := multipartRequest("/merge", []upload{
				{"files", "a.pdf", pdftest.PDF(1)},
				{"files", "notes.txt", pdftest.PDF(1)},
			}, nil)
			rec := serve(req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(detailOf(rec)).To(Equal("File notes.txt is not a PDF"))
		})

		It("maps decode failures to 500 with the library message", func() {
			req := multipartRequest("/merge", []upload{
				{"files", "a.pdf", []byte("junk")},
				{"files", "b.pdf", pdftest.PDF(1)},
			}, nil)
			rec := serve(req)

			Expect(rec.Code).To(Equal(http.StatusInternalServerError))
			Expect(detailOf(rec)).NotTo(BeEmpty())
		})
	})

	Describe("POST /delete-pages", func() {
		It("deletes the requested page", func() {
			req := multipartRequest("/delete-pages", []upload{
				{"file", "doc.pdf", pdftest.PDF(3)},
			}, map[string]string{"pages": "2"})
			rec := serve(req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Disposition")).To(Equal("attachment; filename=modified.pdf"))

			count, err := pdfops.PageCount(rec.Body.Bytes())
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(2))
		})

		It("deletes a range", func() {
			req := multipartRequest("/delete-pages", []upload{
				{"file", "doc.pdf", pdftest.PDF(5)},
			}, map[string]string{"pages": "2-4"})
			rec := serve(req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			count, err := pdfops.PageCount(rec.Body.Bytes())
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(2))
		})

		It("ignores out-of-range indices", func() {
			req := multipartRequest("/delete-pages", []upload{
				{"file", "doc.pdf", pdftest.PDF(3)},
			}, map[string]string{"pages": "2,9"})
			rec := serve(req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			count, err := pdfops.PageCount(rec.Body.Bytes())
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(2))
		})

		It("rejects a missing pages field", func() {
			req := multipartRequest("/delete-pages", []upload{
				{"file", "doc.pdf", pdftest.PDF(3)},
			}, nil)
			rec := serve(req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(detailOf(rec)).To(Equal("Pages parameter is required"))
		})

		It("rejects an unparseable pages field", func() {
			req := multipartRequest("/delete-pages", []upload{
				{"file", "doc.pdf", pdftest.PDF(3)},
			}, map[string]string{"pages": "abc"})
			rec := serve(req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(detailOf(rec)).To(Equal("Invalid page range format"))
		})

		It("rejects a non-PDF filename", func() {
			req := multipartRequest("/delete-pages", []upload{
				{"file", "notes.txt", pdftest.PDF(3)},
			}, map[string]string{"pages": "1"})
			rec := serve(req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(detailOf(rec)).To(Equal("File must be a PDF"))
		})

		It("rejects a request without a file", func() {
			req := multipartRequest("/delete-pages", nil, map[string]string{"pages": "1"})
			rec := serve(req)

			Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))
		})
	})

	Describe("GET /page-count/:filename", func() {
		It("returns the page count of a staged file", func() {
			Expect(pdftest.WritePDF(filepath.Join(tempDir, "sample.pdf"), 3)).To(Succeed())

			rec := serve(httptest.NewRequest(http.MethodGet, "/page-count/sample.pdf", nil))

			Expect(rec.Code).To(Equal(http.StatusOK))
			var body struct {
				PageCount int `json:"page_count"`
			}
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body.PageCount).To(Equal(3))
		})

		It("returns 404 for a missing file", func() {
			rec := serve(httptest.NewRequest(http.MethodGet, "/page-count/missing.pdf", nil))

			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(detailOf(rec)).To(Equal("File not found"))
		})

		It("returns 400 for a name without a .pdf suffix", func() {
			rec := serve(httptest.NewRequest(http.MethodGet, "/page-count/notes.txt", nil))

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(detailOf(rec)).To(Equal("File is not a PDF"))
		})
	})

	Describe("CORS", func() {
		It("echoes an allowed origin", func() {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.Header.Set("Origin", allowedOrigin)
			rec := serve(req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal(allowedOrigin))
			Expect(rec.Header().Get("Access-Control-Allow-Methods")).NotTo(BeEmpty())
			Expect(rec.Header().Get("Access-Control-Allow-Headers")).NotTo(BeEmpty())
		})

		It("omits the header for an unknown origin", func() {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.Header.Set("Origin", "http://evil.example")
			rec := serve(req)

			Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
		})

		It("short-circuits preflight requests", func() {
			req := httptest.NewRequest(http.MethodOptions, "/merge", nil)
			req.Header.Set("Origin", allowedOrigin)
			rec := serve(req)

			Expect(rec.Code).To(Equal(http.StatusNoContent))
			Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal(allowedOrigin))
		})
	})

	Describe("GET /health", func() {
		It("reports healthy", func() {
			rec := serve(httptest.NewRequest(http.MethodGet, "/health", nil))

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring("healthy"))
		})
	})
})
