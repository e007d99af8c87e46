// Package server exposes the generation pipelines over a small JSON API.
// Generation endpoints run the same workflows the CLI tools use, then archive
// the result so it can be listed and fetched later.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/newsdraft/newsdraft/pkg/domain"
	"github.com/newsdraft/newsdraft/pkg/store"
	"github.com/newsdraft/newsdraft/pkg/workflow"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/article_generator.go -pkg mocks -skip-ensure -fmt goimports . ArticleGenerator
//go:generate moq -out mocks/script_generator.go -pkg mocks -skip-ensure -fmt goimports . ScriptGenerator
//go:generate moq -out mocks/archive.go -pkg mocks -skip-ensure -fmt goimports . Archive

// generation endpoints hold the connection through multi-minute LLM
// conversations, so their deadline is the base timeout times this multiple
const generationMultiple = 10

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	articles ArticleGenerator
	scripts  ScriptGenerator
	archive  Archive
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ArticleGenerator runs the feed-to-article pipeline
type ArticleGenerator interface {
	Run(ctx context.Context, feedURL string) (*workflow.ArticleResult, error)
}

// ScriptGenerator runs the keyword-to-script pipeline
type ScriptGenerator interface {
	Run(ctx context.Context, keyword string, audience domain.Audience) (*domain.ScriptResult, error)
}

// Archive persists generated artifacts and serves them back
type Archive interface {
	SaveArticle(ctx context.Context, feedURL string, article *domain.Article) (int64, error)
	GetArticle(ctx context.Context, id int64) (*store.ArticleRecord, error)
	ListArticles(ctx context.Context, limit int) ([]store.ArticleRecord, error)
	SaveScript(ctx context.Context, result *domain.ScriptResult) (int64, error)
	GetScript(ctx context.Context, id int64) (*store.ScriptRecord, error)
	ListScripts(ctx context.Context, limit int) ([]store.ScriptRecord, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, articles ArticleGenerator, scripts ScriptGenerator, archive Archive, version string, debug bool) *Server {
	s := &Server{
		config:   cfg,
		articles: articles,
		scripts:  scripts,
		archive:  archive,
		version:  version,
		debug:    debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout * generationMultiple,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newsdraft", "newsdraft", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("POST /articles", s.createArticleHandler)
		r.HandleFunc("GET /articles", s.listArticlesHandler)
		r.HandleFunc("GET /articles/{id}", s.getArticleHandler)

		r.HandleFunc("POST /scripts", s.createScriptHandler)
		r.HandleFunc("GET /scripts", s.listScriptsHandler)
		r.HandleFunc("GET /scripts/{id}", s.getScriptHandler)
	})
}
