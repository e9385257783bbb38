package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"storefront-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	db *sql.DB

	classifierCacheSize int
	rateLimitPerSecond  float64
	rateLimitBurst      int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB *sql.DB

	ClassifierCacheSize int
	RateLimitPerSecond  float64
	RateLimitBurst      int
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                   cfg.Logger,
		gin:                 gin.New(),
		port:                cfg.Port,
		mode:                cfg.Mode,
		environment:         cfg.Environment,
		db:                  cfg.DB,
		classifierCacheSize: cfg.ClassifierCacheSize,
		rateLimitPerSecond:  cfg.RateLimitPerSecond,
		rateLimitBurst:      cfg.RateLimitBurst,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	return nil
}
