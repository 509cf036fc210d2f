// File path: internal/store/history.go
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/friendlynotebook/vuai/internal/kb"
)

// AppendHistory persists one question/answer exchange.
func (s *Store) AppendHistory(ctx context.Context, record kb.ChatRecord) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("%w: store not initialised", kb.ErrStoreUnavailable)
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}
	const query = `INSERT INTO chat_history (id, user_id, role, message, response, source, timestamp)
                VALUES (?, ?, ?, ?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query,
		record.ID, record.UserID, record.Role, record.Message,
		record.Response, record.Source, record.Timestamp); err != nil {
		return fmt.Errorf("%w: %v", kb.ErrStoreUnavailable, err)
	}
	return nil
}

// History returns the most recent exchanges, newest first. Empty userID
// or role leaves that dimension unfiltered.
func (s *Store) History(ctx context.Context, userID string, role kb.Role, limit int) ([]kb.ChatRecord, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("%w: store not initialised", kb.ErrStoreUnavailable)
	}
	if limit <= 0 {
		limit = 50
	}
	var (
		clauses []string
		args    []interface{}
	)
	if userID != "" {
		clauses = append(clauses, "user_id = ?")
		args = append(args, userID)
	}
	if role != "" {
		clauses = append(clauses, "role = ?")
		args = append(args, role)
	}
	query := `SELECT id, user_id, role, message, response, source, timestamp FROM chat_history`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY timestamp DESC LIMIT ?"
	args = append(args, limit)

	var records []kb.ChatRecord
	if err := s.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("%w: %v", kb.ErrStoreUnavailable, err)
	}
	return records, nil
}
