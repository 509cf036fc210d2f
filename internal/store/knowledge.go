// File path: internal/store/knowledge.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/friendlynotebook/vuai/internal/kb"
)

// SearchKnowledge returns candidate entries for the role whose searchable
// columns contain any of the extracted terms. The filter is deliberately
// broad (OR across terms and columns); precise ranking happens in memory
// after the fetch. With no terms the query degrades to a bare role scan so
// a noise-only question still reaches the newest material. Results come
// back newest-first, capped at limit.
//
// Any database failure is wrapped in kb.ErrStoreUnavailable so callers can
// degrade to an empty knowledge context instead of surfacing the error.
func (s *Store) SearchKnowledge(ctx context.Context, role kb.Role, terms []string, limit int) ([]kb.KnowledgeEntry, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("%w: store not initialised", kb.ErrStoreUnavailable)
	}
	if limit <= 0 {
		limit = 10
	}

	var (
		sb   strings.Builder
		args []interface{}
	)
	sb.WriteString(`SELECT id, role, category, subject, topic, content, tags, last_updated, updated_by
                FROM knowledge WHERE role = ?`)
	args = append(args, role)
	if len(terms) > 0 {
		clauses := make([]string, 0, len(terms))
		for _, term := range terms {
			pattern := "%" + escapeLike(term) + "%"
			clauses = append(clauses,
				`(topic LIKE ? ESCAPE '\' OR content LIKE ? ESCAPE '\' OR category LIKE ? ESCAPE '\' OR subject LIKE ? ESCAPE '\' OR tags LIKE ? ESCAPE '\')`)
			// The tags column holds a JSON array; matching the quoted
			// term keeps the element comparison exact.
			args = append(args, pattern, pattern, pattern, pattern, "%\""+escapeLike(term)+"\"%")
		}
		sb.WriteString(" AND (" + strings.Join(clauses, " OR ") + ")")
	}
	sb.WriteString(" ORDER BY last_updated DESC LIMIT ?")
	args = append(args, limit)

	var entries []kb.KnowledgeEntry
	if err := s.db.SelectContext(ctx, &entries, sb.String(), args...); err != nil {
		return nil, fmt.Errorf("%w: %v", kb.ErrStoreUnavailable, err)
	}
	return entries, nil
}

// UpsertKnowledge inserts entry or, when an entry with the same role,
// category, subject, and topic exists, replaces its content, tags, and
// audit fields. The stored entry (with its assigned ID) is returned.
func (s *Store) UpsertKnowledge(ctx context.Context, entry kb.KnowledgeEntry) (kb.KnowledgeEntry, error) {
	if s == nil || s.db == nil {
		return kb.KnowledgeEntry{}, fmt.Errorf("%w: store not initialised", kb.ErrStoreUnavailable)
	}
	if entry.LastUpdated.IsZero() {
		entry.LastUpdated = time.Now().UTC()
	}
	const query = `INSERT INTO knowledge (role, category, subject, topic, content, tags, last_updated, updated_by)
                VALUES (?, ?, ?, ?, ?, ?, ?, ?)
                ON CONFLICT(role, category, subject, topic) DO UPDATE SET
                        content = excluded.content,
                        tags = excluded.tags,
                        last_updated = excluded.last_updated,
                        updated_by = excluded.updated_by`
	if _, err := s.db.ExecContext(ctx, query,
		entry.Role, entry.Category, entry.Subject, entry.Topic,
		entry.Content, entry.Tags, entry.LastUpdated, entry.UpdatedBy); err != nil {
		return kb.KnowledgeEntry{}, fmt.Errorf("%w: %v", kb.ErrStoreUnavailable, err)
	}
	var stored kb.KnowledgeEntry
	const fetch = `SELECT id, role, category, subject, topic, content, tags, last_updated, updated_by
                FROM knowledge WHERE role = ? AND category = ? AND subject = ? AND topic = ?`
	if err := s.db.GetContext(ctx, &stored, fetch, entry.Role, entry.Category, entry.Subject, entry.Topic); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entry, nil
		}
		return kb.KnowledgeEntry{}, fmt.Errorf("%w: %v", kb.ErrStoreUnavailable, err)
	}
	return stored, nil
}

// ListKnowledge returns every entry for the role, newest first. An empty
// role lists the whole table.
func (s *Store) ListKnowledge(ctx context.Context, role kb.Role) ([]kb.KnowledgeEntry, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("%w: store not initialised", kb.ErrStoreUnavailable)
	}
	var entries []kb.KnowledgeEntry
	var err error
	const base = `SELECT id, role, category, subject, topic, content, tags, last_updated, updated_by FROM knowledge`
	if role == "" {
		err = s.db.SelectContext(ctx, &entries, base+" ORDER BY last_updated DESC")
	} else {
		err = s.db.SelectContext(ctx, &entries, base+" WHERE role = ? ORDER BY last_updated DESC", role)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kb.ErrStoreUnavailable, err)
	}
	return entries, nil
}

// CountKnowledge reports the number of entries per role.
func (s *Store) CountKnowledge(ctx context.Context) (map[kb.Role]int, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("%w: store not initialised", kb.ErrStoreUnavailable)
	}
	rows := []struct {
		Role  kb.Role `db:"role"`
		Total int     `db:"total"`
	}{}
	if err := s.db.SelectContext(ctx, &rows, `SELECT role, COUNT(*) AS total FROM knowledge GROUP BY role`); err != nil {
		return nil, fmt.Errorf("%w: %v", kb.ErrStoreUnavailable, err)
	}
	counts := make(map[kb.Role]int, len(rows))
	for _, row := range rows {
		counts[row.Role] = row.Total
	}
	return counts, nil
}

func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}
