package api

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cosmos/cosmos-sdk/client"

	"github.com/veris-chain/veris/api/telemetry"
)

// Server is the read-only HTTP gateway over a running node. All handlers
// resolve state through ABCI store queries, so the gateway itself keeps no
// chain state.
type Server struct {
	router    *gin.Engine
	clientCtx client.Context
	config    *Config
	telemetry *telemetry.Provider
}

// Config holds server configuration
type Config struct {
	Host             string
	Port             string
	ChainID          string
	NodeURI          string
	Environment      string
	CORSOrigins      []string
	RateLimitRPS     int
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	TLSEnabled       bool
	TLSCertFile      string
	TLSKeyFile       string
	TelemetryEnabled bool
	OTLPEndpoint     string
	TraceSampleRate  float64
	MetricsEnabled   bool
}

// DefaultConfig returns default server configuration
func DefaultConfig() *Config {
	return &Config{
		Host:            "0.0.0.0",
		Port:            "5000",
		ChainID:         "veris-1",
		NodeURI:         "tcp://localhost:26657",
		Environment:     "testnet",
		CORSOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
		RateLimitRPS:    100,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		OTLPEndpoint:    "localhost:4318",
		TraceSampleRate: 0.1,
		MetricsEnabled:  true,
	}
}

// NewServer creates a new API server instance
func NewServer(clientCtx client.Context, config *Config) (*Server, error) {
	if config == nil {
		config = DefaultConfig()
	}

	provider, err := telemetry.NewProvider(telemetry.Config{
		Enabled:           config.TelemetryEnabled,
		OTLPEndpoint:      config.OTLPEndpoint,
		SampleRate:        config.TraceSampleRate,
		Environment:       config.Environment,
		ChainID:           config.ChainID,
		PrometheusEnabled: config.MetricsEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	server := &Server{
		clientCtx: clientCtx,
		config:    config,
		telemetry: provider,
	}

	server.setupRouter()

	return server, nil
}

// setupRouter configures the Gin router with all routes and middleware
func (s *Server) setupRouter() {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	s.router = gin.New()

	// Recovery first so later middleware panics are caught too.
	s.router.Use(gin.Recovery())
	s.router.Use(SecurityHeadersMiddleware())
	s.router.Use(RequestIDMiddleware())
	if s.config.TelemetryEnabled {
		s.router.Use(TracingMiddleware())
	}
	s.router.Use(LoggerMiddleware())
	s.router.Use(s.CORSMiddleware())
	s.router.Use(RateLimitMiddleware(s.config.RateLimitRPS))

	s.router.GET("/health", s.healthCheck)
	if s.config.MetricsEnabled {
		s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := s.router.Group("/api")
	{
		api.GET("/params", s.handleParams)
		api.GET("/registry", s.handleRegistry)
		api.GET("/feeds/:authority/:name", s.handleFeed)
		api.GET("/feeds/:authority/:name/history", s.handleAnswerHistory)
		api.GET("/data-sources/:id", s.handleDataSource)
		api.GET("/links/:owner/:grantee", s.handleEthLink)
	}
}

// healthCheck returns server health status
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Unix(),
		ChainID:   s.config.ChainID,
	})
}

// Start starts the HTTP server and blocks until an interrupt triggers a
// graceful shutdown.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:           fmt.Sprintf("%s:%s", s.config.Host, s.config.Port),
		Handler:        s.router,
		ReadTimeout:    s.config.ReadTimeout,
		WriteTimeout:   s.config.WriteTimeout,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	if s.config.TLSEnabled {
		srv.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS13,
			CipherSuites: []uint16{
				tls.TLS_AES_128_GCM_SHA256,
				tls.TLS_AES_256_GCM_SHA384,
				tls.TLS_CHACHA20_POLY1305_SHA256,
			},
		}
	}

	go func() {
		if s.config.TLSEnabled {
			fmt.Printf("Starting oracle gateway (TLS) on %s:%s\n", s.config.Host, s.config.Port)
			if err := srv.ListenAndServeTLS(s.config.TLSCertFile, s.config.TLSKeyFile); err != nil && err != http.ErrServerClosed {
				fmt.Printf("Server error: %v\n", err)
			}
		} else {
			fmt.Printf("Starting oracle gateway (HTTP) on %s:%s\n", s.config.Host, s.config.Port)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				fmt.Printf("Server error: %v\n", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	if err := s.telemetry.Shutdown(ctx); err != nil {
		fmt.Printf("Telemetry shutdown error: %v\n", err)
	}

	fmt.Println("Server exited")
	return nil
}

// GetClientContext returns the client context
func (s *Server) GetClientContext() client.Context {
	return s.clientCtx
}
