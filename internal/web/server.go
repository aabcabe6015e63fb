package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/five82/shelf/internal/catalog"
	"github.com/five82/shelf/internal/logger"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Catalog is the API surface the page handler needs: both fetches plus
// cover image resolution against the same base URL.
type Catalog interface {
	catalog.Fetcher
	CoverURL(b catalog.Book) string
}

var _ Catalog = (*catalog.Client)(nil)

// Options configure the web front end.
type Options struct {
	Catalog Catalog
	Listen  string
}

// Server renders the catalog page over HTTP.
type Server struct {
	catalog Catalog
	engine  *gin.Engine
	srv     *http.Server
}

const shutdownGrace = 5 * time.Second

// New builds the router. It does not start listening.
func New(opts Options) (*Server, error) {
	if opts.Catalog == nil {
		return nil, errors.New("web: catalog is required")
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), requestLogger(), instrument())
	engine.SetHTMLTemplate(tmpl)

	s := &Server{
		catalog: opts.Catalog,
		engine:  engine,
		srv: &http.Server{
			Addr:              opts.Listen,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	engine.GET("/", s.index)
	engine.GET("/healthz", s.healthz)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens until Shutdown is called. A graceful stop returns nil.
func (s *Server) Run(ctx context.Context) error {
	logger.For(ctx).WithField("listen", s.srv.Addr).Info("shelf-web listening")
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests, waiting at most a few seconds.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
