// File path: internal/api/server.go
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/friendlynotebook/vuai/internal/assist"
	"github.com/friendlynotebook/vuai/internal/cache"
	"github.com/friendlynotebook/vuai/internal/common"
	"github.com/friendlynotebook/vuai/internal/kb"
	"github.com/friendlynotebook/vuai/internal/llm"
)

// Store is the slice of the knowledge store the handlers need.
type Store interface {
	UpsertKnowledge(ctx context.Context, entry kb.KnowledgeEntry) (kb.KnowledgeEntry, error)
	ListKnowledge(ctx context.Context, role kb.Role) ([]kb.KnowledgeEntry, error)
	CountKnowledge(ctx context.Context) (map[kb.Role]int, error)
	History(ctx context.Context, userID string, role kb.Role, limit int) ([]kb.ChatRecord, error)
}

type Server struct {
	router    chi.Router
	store     Store
	searcher  assist.SearchService
	responder *assist.Responder
	cache     *cache.ResponseCache
	provider  llm.Provider
	startedAt time.Time
}

func NewServer(store Store, searcher assist.SearchService, responder *assist.Responder, responseCache *cache.ResponseCache, provider llm.Provider) (*Server, error) {
	logger := common.Logger()
	if store == nil {
		return nil, fmt.Errorf("store required")
	}
	if searcher == nil {
		return nil, fmt.Errorf("searcher required")
	}
	if responder == nil {
		return nil, fmt.Errorf("responder required")
	}
	if responseCache == nil {
		return nil, fmt.Errorf("cache required")
	}
	providerName := "unknown"
	if provider != nil {
		providerName = provider.Name()
	}
	logger.Info("api: building server", "provider", providerName)
	srv := &Server{
		router:    chi.NewRouter(),
		store:     store,
		searcher:  searcher,
		responder: responder,
		cache:     responseCache,
		provider:  provider,
		startedAt: time.Now(),
	}
	srv.routes()
	logger.Info("api: server ready")
	return srv, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Post("/v1/assist", s.handleAssist)
	s.router.Get("/v1/search", s.handleSearch)
	s.router.Get("/v1/status", s.handleStatus)
	s.router.Get("/v1/cache/stats", s.handleCacheStats)
	s.router.Post("/v1/cache/clear", s.handleCacheClear)
	s.router.Get("/v1/knowledge", s.handleKnowledgeList)
	s.router.Post("/v1/knowledge", s.handleKnowledgeUpsert)
	s.router.Get("/v1/history", s.handleHistory)
	s.router.Get("/v1/logs", s.handleLogs)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
