// File path: internal/api/assist_handler.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/friendlynotebook/vuai/internal/assist"
	"github.com/friendlynotebook/vuai/internal/common"
	"github.com/friendlynotebook/vuai/internal/kb"
)

func (s *Server) handleAssist(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req assistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: assist decode failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("query required"))
		return
	}
	role, err := kb.ParseRole(req.Role)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	logger.Info("api: assist request received", "role", role, "query_length", len(req.Query))
	resp, err := s.responder.Respond(r.Context(), assist.Request{
		Query:  req.Query,
		Role:   role,
		UserID: strings.TrimSpace(req.UserID),
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	providerName := "unknown"
	if s.provider != nil {
		providerName = s.provider.Name()
	}
	writeJSON(w, http.StatusOK, assistResponse{
		Response: resp,
		Role:     role,
		Provider: providerName,
	})
}
