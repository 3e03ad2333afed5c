// Package httpapi exposes the users service as a JSON API over gin.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/courtbook/internal/logging"
	"github.com/dmitrijs2005/courtbook/internal/server/users"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address   string
	users     *users.Service
	logger    logging.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
	router    *gin.Engine
}

func NewHTTPServer(a string, l logging.Logger, us *users.Service, secretKey string, tokenTTL time.Duration) *HTTPServer {
	s := &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		jwtSecret: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}
	s.router = s.routes()
	return s
}

func (s *HTTPServer) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestID())

	r.GET("/healthz", s.healthz)

	a := r.Group("/auth")
	a.POST("/register", s.register)
	a.POST("/login", s.login)

	u := r.Group("/users")
	u.GET("", s.listUsers)
	u.GET("/search", s.searchUsers)
	u.GET("/by-username/:username", s.getUserByUsername)
	u.GET("/:id", s.getUser)
	u.GET("/:id/history", s.getUserHistory)
	u.PUT("/:id", s.authenticate(), s.updateUser)

	return r
}

// Handler returns the router, for tests and embedding.
func (s *HTTPServer) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
