// Package api exposes the PDF operations over HTTP.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pdftool/internal/config"
	"pdftool/pkg/logger"
)

type Server struct {
	cfg *config.Config
	log *logger.Logger
}

func NewServer(cfg *config.Config, log *logger.Logger) *Server {
	return &Server{cfg: cfg, log: log}
}

func (s *Server) SetupRoutes(r *gin.Engine) {
	r.Use(CORS(s.cfg.AllowedOrigins))

	r.POST("/merge", s.handleMerge)
	r.POST("/delete-pages", s.handleDeletePages)
	r.GET("/page-count/:filename", s.handlePageCount)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "pdftool",
		})
	})
}
