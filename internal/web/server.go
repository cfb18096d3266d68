package web

import (
	"context"
	"net/http"
	"time"

	"github.com/vitos/cryptopeek/internal/domain"
	"go.uber.org/zap"
)

type Server struct {
	router   *http.ServeMux
	server   *http.Server
	upstream domain.MarketData
	logger   *zap.Logger
}

func NewServer(addr string, upstream domain.MarketData, logger *zap.Logger) *Server {
	s := &Server{
		router:   http.NewServeMux(),
		upstream: upstream,
		logger:   logger,
	}
	s.routes()
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  20 * time.Second,
		WriteTimeout: 20 * time.Second,
	}
	return s
}

func (s *Server) routes() {
	// Upstream pass-through
	s.router.HandleFunc("GET /api/exchanges", s.handleProxy)
	s.router.HandleFunc("GET /api/asset_platforms", s.handleProxy)
	s.router.HandleFunc("GET /api/coins/markets", s.handleProxy)

	// Health
	s.router.HandleFunc("GET /healthz", s.handleHealth)
}

// Handler is the router wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	return s.recoverer(s.requestID(s.accessLog(cors(s.router))))
}

func (s *Server) Start() error {
	s.logger.Info("Starting proxy server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
