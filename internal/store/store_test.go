// File path: internal/store/store_test.go
package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/friendlynotebook/vuai/internal/kb"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "vuai_test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestUpsertAndSearchKnowledge(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	entry := kb.KnowledgeEntry{
		Role:     kb.RoleStudent,
		Category: "Academics",
		Subject:  "Python Programming",
		Topic:    "Decorators",
		Content:  "Decorators wrap a function to extend its behaviour.",
		Tags:     kb.StringList{"python", "decorators"},
	}
	stored, err := s.UpsertKnowledge(ctx, entry)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if stored.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	results, err := s.SearchKnowledge(ctx, kb.RoleStudent, []string{"python"}, 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].Topic != "Decorators" {
		t.Fatalf("unexpected results: %+v", results)
	}
	if len(results[0].Tags) != 2 {
		t.Fatalf("expected tags round-trip, got %v", results[0].Tags)
	}
}

func TestUpsertReplacesExistingTopic(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	entry := kb.KnowledgeEntry{
		Role:     kb.RoleFaculty,
		Category: "Teaching",
		Subject:  "Course Management",
		Topic:    "Uploads",
		Content:  "original",
	}
	if _, err := s.UpsertKnowledge(ctx, entry); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	entry.Content = "revised"
	entry.UpdatedBy = "hod"
	if _, err := s.UpsertKnowledge(ctx, entry); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	all, err := s.ListKnowledge(ctx, kb.RoleFaculty)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected single row after replace, got %d", len(all))
	}
	if all[0].Content != "revised" || all[0].UpdatedBy != "hod" {
		t.Fatalf("expected replaced content, got %+v", all[0])
	}
}

func TestSearchScopedToRole(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, role := range []kb.Role{kb.RoleStudent, kb.RoleAdmin} {
		if _, err := s.UpsertKnowledge(ctx, kb.KnowledgeEntry{
			Role: role, Category: "Fees", Topic: "Fee Deadlines",
			Content: "fee deadline details for " + role.String(),
		}); err != nil {
			t.Fatalf("upsert %s: %v", role, err)
		}
	}

	results, err := s.SearchKnowledge(ctx, kb.RoleStudent, []string{"fee"}, 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].Role != kb.RoleStudent {
		t.Fatalf("expected only student entries, got %+v", results)
	}
}

func TestSearchWithNoTermsReturnsNewest(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	for i, topic := range []string{"Older", "Newer"} {
		if _, err := s.UpsertKnowledge(ctx, kb.KnowledgeEntry{
			Role: kb.RoleStudent, Category: "General", Topic: topic,
			Content: topic, LastUpdated: base.Add(time.Duration(i) * time.Hour),
		}); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	results, err := s.SearchKnowledge(ctx, kb.RoleStudent, nil, 1)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].Topic != "Newer" {
		t.Fatalf("expected newest entry first, got %+v", results)
	}
}

func TestSearchTagMatchIsExactElement(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.UpsertKnowledge(ctx, kb.KnowledgeEntry{
		Role: kb.RoleStudent, Category: "General", Topic: "Style",
		Content: "idioms", Tags: kb.StringList{"pythonic"},
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	results, err := s.SearchKnowledge(ctx, kb.RoleStudent, []string{"python"}, 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no match for partial tag, got %+v", results)
	}
}

func TestSearchFailureWrapsStoreUnavailable(t *testing.T) {
	s := newTestStore(t)
	s.Close()
	_, err := s.SearchKnowledge(context.Background(), kb.RoleStudent, []string{"python"}, 10)
	if !errors.Is(err, kb.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.Seed(ctx)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if first == 0 {
		t.Fatalf("expected seed entries")
	}
	if _, err := s.Seed(ctx); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	counts, err := s.CountKnowledge(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	if total != first {
		t.Fatalf("expected reseed to keep %d rows, got %d", first, total)
	}
	for _, role := range kb.Roles {
		if counts[role] == 0 {
			t.Fatalf("expected seed entries for %s", role)
		}
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, time.June, 2, 9, 0, 0, 0, time.UTC)
	records := []kb.ChatRecord{
		{ID: "r1", UserID: "u1", Role: kb.RoleStudent, Message: "q1", Response: "a1", Source: "generated", Timestamp: base},
		{ID: "r2", UserID: "u2", Role: kb.RoleFaculty, Message: "q2", Response: "a2", Source: "cache", Timestamp: base.Add(time.Minute)},
		{ID: "r3", UserID: "u1", Role: kb.RoleStudent, Message: "q3", Response: "a3", Source: "fallback", Timestamp: base.Add(2 * time.Minute)},
	}
	for _, rec := range records {
		if err := s.AppendHistory(ctx, rec); err != nil {
			t.Fatalf("append %s: %v", rec.ID, err)
		}
	}

	all, err := s.History(ctx, "", "", 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(all) != 3 || all[0].ID != "r3" {
		t.Fatalf("expected newest-first history, got %+v", all)
	}

	scoped, err := s.History(ctx, "u1", "", 10)
	if err != nil {
		t.Fatalf("scoped history: %v", err)
	}
	if len(scoped) != 2 {
		t.Fatalf("expected two records for u1, got %d", len(scoped))
	}
	for _, rec := range scoped {
		if rec.UserID != "u1" {
			t.Fatalf("unexpected user in scoped history: %+v", rec)
		}
	}

	byRole, err := s.History(ctx, "", kb.RoleFaculty, 10)
	if err != nil {
		t.Fatalf("role history: %v", err)
	}
	if len(byRole) != 1 || byRole[0].ID != "r2" {
		t.Fatalf("expected faculty record only, got %+v", byRole)
	}
}
