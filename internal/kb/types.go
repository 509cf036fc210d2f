// File path: internal/kb/types.go
package kb

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Role selects which knowledge collection and assistant persona apply to a
// request. Unknown role strings are rejected at the boundary rather than
// silently defaulted, so every downstream lookup is total.
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// Roles lists every valid role in a stable order.
var Roles = []Role{RoleStudent, RoleFaculty, RoleAdmin}

// ParseRole normalizes and validates a role string.
func ParseRole(value string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case RoleStudent:
		return RoleStudent, nil
	case RoleFaculty:
		return RoleFaculty, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("unknown role %q", value)
}

func (r Role) String() string { return string(r) }

// KnowledgeEntry is one searchable document in a role's knowledge base.
// Subject carries the finer grouping under Category; the admin collection
// historically called this field "module" but it is the same slot.
type KnowledgeEntry struct {
	ID          int64      `db:"id" json:"id,omitempty"`
	Role        Role       `db:"role" json:"role"`
	Category    string     `db:"category" json:"category"`
	Subject     string     `db:"subject" json:"subject"`
	Topic       string     `db:"topic" json:"topic"`
	Content     string     `db:"content" json:"content"`
	Tags        StringList `db:"tags" json:"tags"`
	LastUpdated time.Time  `db:"last_updated" json:"last_updated"`
	UpdatedBy   string     `db:"updated_by" json:"updated_by,omitempty"`
}

// ScoredEntry is a KnowledgeEntry with its per-query relevance score.
// Scores are request-scoped and never persisted.
type ScoredEntry struct {
	KnowledgeEntry
	RelevanceScore int `json:"relevance_score"`
}

// ChatRecord is one persisted question/answer exchange.
type ChatRecord struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Role      Role      `db:"role" json:"role"`
	Message   string    `db:"message" json:"message"`
	Response  string    `db:"response" json:"response"`
	Source    string    `db:"source" json:"source"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
}

// StringList stores a []string as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}
	return string(data), nil
}

func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("scan tags: unsupported type %T", src)
	}
	if len(data) == 0 {
		*l = nil
		return nil
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("decode tags: %w", err)
	}
	*l = out
	return nil
}

// Failure taxonomy shared across the store, search, and assist layers.
var (
	// ErrStoreUnavailable reports that the knowledge store could not be
	// queried. Callers treat it as "no knowledge available" and continue
	// with an empty context rather than aborting the response.
	ErrStoreUnavailable = errors.New("knowledge store unavailable")

	// ErrComposeTimeout reports that the external composer exceeded its
	// deadline.
	ErrComposeTimeout = errors.New("compose timed out")

	// ErrComposeUnavailable reports any other composer failure.
	ErrComposeUnavailable = errors.New("composer unavailable")
)
