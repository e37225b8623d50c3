package http

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fwojciec/campusguide"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// ShutdownTimeout is how long Run waits for in-flight requests on shutdown.
const ShutdownTimeout = 5 * time.Second

// Server serves the campusguide HTTP API.
//
// Exported fields must be set before calling Handler, Open, or Run.
type Server struct {
	// Addr is the TCP address to listen on, e.g. ":5000".
	Addr string

	// WebRoot holds index.html.
	WebRoot string

	// Catalog answers search and listing requests. Required.
	Catalog *campusguide.Catalog

	// Images serves /static/images/*. Optional.
	Images campusguide.AssetStore

	// Assets resolves a location's image path. Optional.
	Assets campusguide.AssetStore

	// Guide answers /api/ask. Optional; 501 when nil.
	Guide campusguide.Guide

	// Observer records search and asset outcomes. Optional.
	Observer campusguide.SearchObserver

	// MetricsHandler serves /metrics. Optional.
	MetricsHandler http.Handler

	// Limiter rate limits /api requests per client IP. Optional.
	Limiter *ClientLimiter

	// TrustedProxies lists proxy IPs or CIDRs whose X-Forwarded-For header
	// names the client. Empty means the socket peer is the client.
	TrustedProxies []string

	Logger *slog.Logger

	ln     net.Listener
	server *http.Server
}

// NewServer returns a new Server with defaults.
func NewServer() *Server {
	return &Server{
		Addr:    ":5000",
		WebRoot: ".",
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// Handler builds the gin router for the server.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	if err := r.SetTrustedProxies(s.TrustedProxies); err != nil {
		s.Logger.Error("invalid trusted proxies; trusting none", "proxies", s.TrustedProxies, "err", err)
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.Recovery(), requestID(), requestLogger(s.Logger), cors())

	r.GET("/", s.handleIndex)
	r.GET("/healthz", s.handleHealth)
	r.GET("/static/images/*filepath", s.handleStaticImage)

	api := r.Group("/api")
	if s.Limiter != nil {
		api.Use(s.rateLimit)
	}
	api.POST("/search", s.handleSearch)
	api.GET("/locations", s.handleListLocations)
	api.GET("/locations/:id/image", s.handleLocationImage)
	api.POST("/ask", s.handleAsk)

	if s.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(s.MetricsHandler))
	}

	return r
}

// Open starts listening on Addr. Use URL to find the bound address.
func (s *Server) Open() (err error) {
	if s.Catalog == nil {
		return campusguide.Errorf(campusguide.EINVALID, "catalog required")
	}
	if err := gin.New().SetTrustedProxies(s.TrustedProxies); err != nil {
		return campusguide.Errorf(campusguide.EINVALID, "invalid trusted proxies: %s", err)
	}
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return nil
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	addr := s.ln.Addr().(*net.TCPAddr)
	host := "localhost"
	if !addr.IP.IsUnspecified() {
		host = addr.IP.String()
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(addr.Port))
}

// Run serves requests until ctx is canceled, then shuts down gracefully.
// Open must be called first.
func (s *Server) Run(ctx context.Context) error {
	if s.server == nil {
		return errors.New("server not open")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.server.Serve(s.ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// Close stops the server immediately.
func (s *Server) Close() error {
	if s.server != nil {
		return s.server.Close()
	}
	if s.ln != nil {
		return s.ln.Close()
	}
	return nil
}

func (s *Server) indexPath() string {
	return filepath.Join(s.WebRoot, "index.html")
}
