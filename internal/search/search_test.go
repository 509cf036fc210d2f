// File path: internal/search/search_test.go
package search

import (
	"context"
	"errors"
	"testing"

	"github.com/friendlynotebook/vuai/internal/kb"
)

type fakeSource struct {
	entries []kb.KnowledgeEntry
	err     error

	gotRole  kb.Role
	gotTerms []string
	gotLimit int
}

func (f *fakeSource) SearchKnowledge(ctx context.Context, role kb.Role, terms []string, limit int) ([]kb.KnowledgeEntry, error) {
	f.gotRole = role
	f.gotTerms = terms
	f.gotLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

func TestSearchRanksByRelevance(t *testing.T) {
	source := &fakeSource{entries: []kb.KnowledgeEntry{
		{Topic: "Mess Timings", Content: "hostel mess schedule"},
		{Topic: "Python Basics", Content: "python programming for beginners covers python syntax"},
		{Topic: "Library Hours", Content: "python books available"},
	}}
	searcher := New(source)

	results, err := searcher.Search(context.Background(), "python programming", kb.RoleStudent, 5)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected all candidates returned, got %d", len(results))
	}
	if results[0].Topic != "Python Basics" {
		t.Fatalf("expected best match first, got %q", results[0].Topic)
	}
	for i := 1; i < len(results); i++ {
		if results[i].RelevanceScore > results[i-1].RelevanceScore {
			t.Fatalf("results not sorted descending at %d", i)
		}
	}
	if source.gotRole != kb.RoleStudent {
		t.Fatalf("expected role forwarded, got %q", source.gotRole)
	}
	if source.gotLimit != DefaultFetchLimit {
		t.Fatalf("expected default fetch limit, got %d", source.gotLimit)
	}
}

func TestSearchCapsResults(t *testing.T) {
	source := &fakeSource{entries: []kb.KnowledgeEntry{
		{Topic: "A", Content: "exams"},
		{Topic: "B", Content: "exams"},
		{Topic: "C", Content: "exams"},
	}}
	results, err := New(source).Search(context.Background(), "exams", kb.RoleStudent, 2)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected capped results, got %d", len(results))
	}
}

func TestSearchStableOrderForEqualScores(t *testing.T) {
	// Store order is newest-first; equal scores must keep it.
	source := &fakeSource{entries: []kb.KnowledgeEntry{
		{Topic: "Newer", Content: "exams schedule"},
		{Topic: "Older", Content: "exams schedule"},
	}}
	results, err := New(source).Search(context.Background(), "exams", kb.RoleStudent, 5)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if results[0].Topic != "Newer" || results[1].Topic != "Older" {
		t.Fatalf("expected stable order preserved, got %+v", results)
	}
}

func TestSearchPropagatesStoreFailure(t *testing.T) {
	source := &fakeSource{err: kb.ErrStoreUnavailable}
	_, err := New(source).Search(context.Background(), "anything", kb.RoleAdmin, 5)
	if !errors.Is(err, kb.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestSearchForwardsExtractedTerms(t *testing.T) {
	source := &fakeSource{}
	if _, err := New(source, WithFetchLimit(25)).Search(context.Background(), "Please help me with Python", kb.RoleStudent, 5); err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(source.gotTerms) != 1 || source.gotTerms[0] != "python" {
		t.Fatalf("expected extracted terms forwarded, got %v", source.gotTerms)
	}
	if source.gotLimit != 25 {
		t.Fatalf("expected fetch limit option honoured, got %d", source.gotLimit)
	}
}
