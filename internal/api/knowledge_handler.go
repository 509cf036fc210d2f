// File path: internal/api/knowledge_handler.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/friendlynotebook/vuai/internal/common"
	"github.com/friendlynotebook/vuai/internal/kb"
)

func (s *Server) handleKnowledgeList(w http.ResponseWriter, r *http.Request) {
	var role kb.Role
	if raw := strings.TrimSpace(r.URL.Query().Get("role")); raw != "" {
		parsed, err := kb.ParseRole(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		role = parsed
	}
	entries, err := s.store.ListKnowledge(r.Context(), role)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", raw))
			return
		}
		if len(entries) > limit {
			entries = entries[:limit]
		}
	}
	if entries == nil {
		entries = []kb.KnowledgeEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": entries})
}

func (s *Server) handleKnowledgeUpsert(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var entry kb.KnowledgeEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	role, err := kb.ParseRole(entry.Role.String())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	entry.Role = role
	if strings.TrimSpace(entry.Topic) == "" || strings.TrimSpace(entry.Content) == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("topic and content required"))
		return
	}
	stored, err := s.store.UpsertKnowledge(r.Context(), entry)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	// Cached answers for this role may now be stale; drop them so the
	// next question sees the new material.
	removed := s.cache.ClearPrefix(role.String() + ":")
	logger.Info("api: knowledge upserted", "role", role, "topic", stored.Topic, "cache_invalidated", removed)
	writeJSON(w, http.StatusOK, stored)
}
