// File path: internal/search/search.go
package search

import (
	"context"
	"sort"

	"github.com/friendlynotebook/vuai/internal/kb"
)

const (
	// DefaultFetchLimit caps how many candidates the store hands back for
	// in-memory ranking.
	DefaultFetchLimit = 10
	// DefaultResultLimit caps how many ranked entries a search returns.
	DefaultResultLimit = 5
)

// KnowledgeSource is the slice of the store the searcher needs.
type KnowledgeSource interface {
	SearchKnowledge(ctx context.Context, role kb.Role, terms []string, limit int) ([]kb.KnowledgeEntry, error)
}

// Searcher turns a free-text question into ranked knowledge entries: terms
// are extracted, the store supplies a broad candidate set, and each
// candidate is scored and sorted in memory.
type Searcher struct {
	source     KnowledgeSource
	fetchLimit int
}

// Option adjusts searcher construction.
type Option func(*Searcher)

// WithFetchLimit overrides how many candidates are pulled from the store.
func WithFetchLimit(limit int) Option {
	return func(s *Searcher) {
		if limit > 0 {
			s.fetchLimit = limit
		}
	}
}

func New(source KnowledgeSource, opts ...Option) *Searcher {
	s := &Searcher{source: source, fetchLimit: DefaultFetchLimit}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Search returns up to limit entries for the role, ranked by descending
// relevance. The sort is stable, so candidates with equal scores keep the
// store's newest-first order. Store failures propagate wrapped in
// kb.ErrStoreUnavailable; callers decide how to degrade.
func (s *Searcher) Search(ctx context.Context, query string, role kb.Role, limit int) ([]kb.ScoredEntry, error) {
	if limit <= 0 {
		limit = DefaultResultLimit
	}
	terms := kb.ExtractTerms(query)
	candidates, err := s.source.SearchKnowledge(ctx, role, terms, s.fetchLimit)
	if err != nil {
		return nil, err
	}
	scored := make([]kb.ScoredEntry, 0, len(candidates))
	for _, entry := range candidates {
		scored = append(scored, kb.ScoredEntry{
			KnowledgeEntry: entry,
			RelevanceScore: kb.Relevance(entry, query, terms),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}
