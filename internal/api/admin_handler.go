// File path: internal/api/admin_handler.go
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/friendlynotebook/vuai/internal/common"
	"github.com/friendlynotebook/vuai/internal/kb"
)

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	providerName := "unknown"
	if s.provider != nil {
		providerName = s.provider.Name()
	}
	counts, err := s.store.CountKnowledge(r.Context())
	if err != nil {
		common.Logger().Warn("api: status knowledge count failed", "error", err)
		counts = nil
	}
	knowledge := make(map[string]int, len(counts))
	for role, n := range counts {
		knowledge[role.String()] = n
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"provider":       providerName,
		"uptime_seconds": int64(time.Since(s.startedAt).Seconds()),
		"metrics":        s.responder.Metrics().Snapshot(),
		"cache":          s.cache.Stats(),
		"knowledge":      knowledge,
	})
}

func (s *Server) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.cache.Stats())
}

func (s *Server) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req cacheClearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if raw := strings.TrimSpace(req.Role); raw != "" {
		role, err := kb.ParseRole(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		removed := s.cache.ClearPrefix(role.String() + ":")
		logger.Info("api: cache cleared", "role", role, "removed", removed)
		writeJSON(w, http.StatusOK, cacheClearResponse{Cleared: role.String(), Removed: removed})
		return
	}
	s.cache.Clear()
	logger.Info("api: cache cleared", "role", "all")
	writeJSON(w, http.StatusOK, cacheClearResponse{Cleared: "all"})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	var role kb.Role
	if raw := strings.TrimSpace(r.URL.Query().Get("role")); raw != "" {
		parsed, err := kb.ParseRole(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		role = parsed
	}
	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, errors.New("invalid limit"))
			return
		}
		limit = parsed
	}
	records, err := s.store.History(r.Context(), userID, role, limit)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	if records == nil {
		records = []kb.ChatRecord{}
	}
	writeJSON(w, http.StatusOK, historyResponse{Records: records})
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	entries := common.LogEntries()
	if entries == nil {
		entries = []common.LogEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": entries})
}
