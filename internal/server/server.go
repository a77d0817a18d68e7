// Package server exposes the resale reports over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/etnz/resale"
	"github.com/etnz/resale/date"
	"github.com/etnz/resale/internal/cache"
	"github.com/etnz/resale/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Service computes the reports served.
type Service interface {
	Today() date.Date
	Report(ctx context.Context, requested resale.Scope) (*resale.Report, error)
	Years(ctx context.Context) ([]int, error)
	Platforms(ctx context.Context, year int, month time.Month) (*resale.PlatformMonth, error)
	PlatformYear(ctx context.Context, year int) ([]resale.PlatformMonth, error)
}

// Cache keeps marshalled payloads.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte)
}

// Server handles the HTTP API.
type Server struct {
	svc    Service
	cache  Cache
	router *gin.Engine
}

// New returns a Server answering with svc. cache may be nil.
func New(svc Service, cache Cache) *Server {
	s := &Server{svc: svc, cache: cache}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/healthz", s.health)
	api := router.Group("/api")
	{
		api.GET("/years", s.years)
		api.GET("/reports", s.report)
		api.GET("/reports/platforms", s.platformMonth)
		api.GET("/reports/platforms/:year", s.platformYear)
	}
	s.router = router
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.router.ServeHTTP(w, r) }

// Run listens on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s, ReadHeaderTimeout: 10 * time.Second}

	errc := make(chan error, 1)
	go func() {
		logging.Logger.WithField("addr", addr).Info("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) years(c *gin.Context) {
	years, err := s.svc.Years(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availableYears": years})
}

func (s *Server) report(c *gin.Context) {
	scope := resale.ParseScope(c.Query("year"), s.svc.Today())
	s.cached(c, []string{"report", scope.String(), s.svc.Today().String()}, func(ctx context.Context) (any, error) {
		return s.svc.Report(ctx, scope)
	})
}

func (s *Server) platformMonth(c *gin.Context) {
	year, ok := s.year(c, c.Query("year"))
	if !ok {
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be a number between 1 and 12"})
		return
	}
	s.cached(c, []string{"platforms", strconv.Itoa(year), strconv.Itoa(month)}, func(ctx context.Context) (any, error) {
		return s.svc.Platforms(ctx, year, time.Month(month))
	})
}

func (s *Server) platformYear(c *gin.Context) {
	year, ok := s.year(c, c.Param("year"))
	if !ok {
		return
	}
	s.cached(c, []string{"platforms", strconv.Itoa(year)}, func(ctx context.Context) (any, error) {
		return s.svc.PlatformYear(ctx, year)
	})
}

// year reads a single year parameter. Platform reports have no whole history
// view, so "all" is rejected.
func (s *Server) year(c *gin.Context, param string) (int, bool) {
	scope := resale.ParseScope(param, s.svc.Today())
	if scope.All {
		c.JSON(http.StatusBadRequest, gin.H{"error": "platform reports need a single year"})
		return 0, false
	}
	return scope.Year, true
}

// cached serves the payload stored under key, or computes, stores and serves it.
func (s *Server) cached(c *gin.Context, key []string, compute func(context.Context) (any, error)) {
	ctx := c.Request.Context()
	k := cache.Key(key...)
	if s.cache != nil {
		if payload, ok := s.cache.Get(ctx, k); ok {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, gin.MIMEJSON, payload)
			return
		}
	}

	v, err := compute(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	payload, err := json.Marshal(v)
	if err != nil {
		writeError(c, err)
		return
	}
	if s.cache != nil {
		s.cache.Set(ctx, k, payload)
	}
	c.Data(http.StatusOK, gin.MIMEJSON, payload)
}

// writeError maps err to an HTTP status and logs it.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, resale.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, resale.ErrInvalidMonth):
		status = http.StatusBadRequest
	case errors.Is(err, context.Canceled):
		status = 499 // client closed request
	}
	logging.Logger.WithFields(logrus.Fields{
		"path":   c.Request.URL.Path,
		"status": status,
	}).WithError(err).Error("request failed")
	c.JSON(status, gin.H{"error": err.Error()})
}

// requestLogger logs every request with logrus.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.Logger.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"query":   c.Request.URL.RawQuery,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("request")
	}
}
