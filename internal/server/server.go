package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"todo-tracker/internal/config"
	"todo-tracker/internal/services"
)

// Server owns the gin engine and the services the handlers call into.
type Server struct {
	cfg       *config.Config
	log       *zap.SugaredLogger
	tasks     services.TaskService
	summaries services.SummaryService
	engine    *gin.Engine
	http      *http.Server
}

// New builds a Server with its routes and middleware registered.
func New(cfg *config.Config, log *zap.SugaredLogger, tasks services.TaskService, summaries services.SummaryService) *Server {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	setupMiddleware(engine, log)

	if cfg.Server.TemplateGlob != "" {
		engine.LoadHTMLGlob(cfg.Server.TemplateGlob)
	}

	s := &Server{
		cfg:       cfg,
		log:       log,
		tasks:     tasks,
		summaries: summaries,
		engine:    engine,
	}
	s.registerRoutes(engine)

	return s
}

// Engine exposes the underlying gin engine, used by handler tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves HTTP until the context is cancelled, then shuts down
// gracefully within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	s.http = &http.Server{
		Addr:    s.cfg.Server.Addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infow("server listening", "addr", s.cfg.Server.Addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Infow("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	return s.http.Shutdown(shutdownCtx)
}
