// File path: internal/api/search_handler.go
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/friendlynotebook/vuai/internal/common"
	"github.com/friendlynotebook/vuai/internal/kb"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("query parameter q required"))
		return
	}
	role, err := kb.ParseRole(r.URL.Query().Get("role"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", raw))
			return
		}
	}
	results, err := s.searcher.Search(r.Context(), query, role, limit)
	if err != nil {
		// Unlike assist, a direct search has no fallback to offer: the
		// store outage is the caller's answer.
		if errors.Is(err, kb.ErrStoreUnavailable) {
			writeError(w, http.StatusServiceUnavailable, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Debug("api: search completed", "role", role, "results", len(results))
	if results == nil {
		results = []kb.ScoredEntry{}
	}
	writeJSON(w, http.StatusOK, searchResponse{Query: query, Role: role, Results: results})
}
