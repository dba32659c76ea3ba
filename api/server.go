// Package api exposes the conversion engine over HTTP.
package api

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/homdahal997/fileapi/convert"
)

// Server represents the API server
type Server struct {
	handlers *Handlers
	logger   *zap.Logger
	port     string
}

// NewServer creates a new API server
func NewServer(service *convert.Service, logger *zap.Logger, port string, maxUploadBytes int64) *Server {
	return &Server{
		handlers: NewHandlers(service, logger, maxUploadBytes),
		logger:   logger,
		port:     port,
	}
}

// Start starts the API server
func (s *Server) Start() error {
	mux := http.NewServeMux()

	// Register API endpoints
	mux.HandleFunc("/api/v1/convert", s.handlers.Convert)
	mux.HandleFunc("/api/v1/file-info", s.handlers.FileInfo)
	mux.HandleFunc("/api/v1/formats", s.handlers.Formats)

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:              ":" + s.port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("starting API server", zap.String("port", s.port))
	return server.ListenAndServe()
}
