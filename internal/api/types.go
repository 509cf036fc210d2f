// File path: internal/api/types.go
package api

import (
	"github.com/friendlynotebook/vuai/internal/assist"
	"github.com/friendlynotebook/vuai/internal/kb"
)

type assistRequest struct {
	Query  string `json:"query"`
	Role   string `json:"role"`
	UserID string `json:"user_id"`
}

type assistResponse struct {
	assist.Response
	Role     kb.Role `json:"role"`
	Provider string  `json:"provider"`
}

type searchResponse struct {
	Query   string           `json:"query"`
	Role    kb.Role          `json:"role"`
	Results []kb.ScoredEntry `json:"results"`
}

type cacheClearRequest struct {
	Role string `json:"role"`
}

type cacheClearResponse struct {
	Cleared string `json:"cleared"`
	Removed int    `json:"removed,omitempty"`
}

type historyResponse struct {
	Records []kb.ChatRecord `json:"records"`
}
