package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"hashicon/internal/domain"
)

// Server serves icon descriptions over HTTP.
type Server struct {
	router *gin.Engine
	icons  domain.IconService
	sizes  domain.SizeTable
	log    *zap.Logger
}

// New builds a server around an icon service and its size table.
func New(icons domain.IconService, sizes domain.SizeTable, log *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		router: gin.New(),
		icons:  icons,
		sizes:  sizes,
		log:    log,
	}
	s.router.Use(gin.Recovery(), s.accessLog())

	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.router.GET("/sizes", s.handleSizes)
	s.router.GET("/icon/:seed", s.handleIcon)
	return s
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves on addr until the listener fails.
func (s *Server) Run(addr string) error { return s.router.Run(addr) }

func (s *Server) handleSizes(c *gin.Context) {
	c.JSON(http.StatusOK, s.sizes)
}

func (s *Server) handleIcon(c *gin.Context) {
	opts, err := parseOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	img, err := s.icons.Render(c.Param("seed"), opts)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidArgument) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	body, err := json.Marshal(img)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	tag := etag(body)
	c.Header("ETag", tag)
	if c.GetHeader("If-None-Match") == tag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func parseOptions(c *gin.Context) (domain.Options, error) {
	opts := domain.Options{Size: domain.SizeCategory(c.Query("size"))}
	if raw := c.Query("px"); raw != "" {
		px, err := strconv.Atoi(raw)
		if err != nil {
			return domain.Options{}, errors.New("px must be an integer")
		}
		opts.CustomSize = px
	}
	if raw := c.Query("circular"); raw != "" {
		circular, err := strconv.ParseBool(raw)
		if err != nil {
			return domain.Options{}, errors.New("circular must be a boolean")
		}
		opts.Circular = circular
	}
	return opts, nil
}

// accessLog records method, path, status, bytes and duration per request,
// tagging each with a generated request id.
func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		c.Next()

		s.log.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Int("bytes", c.Writer.Size()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
