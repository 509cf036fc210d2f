// File path: internal/kb/score_test.go
package kb

import "testing"

func TestRelevancePhraseMatchOutscoresTermMatches(t *testing.T) {
	query := "binary search trees"
	terms := ExtractTerms(query)

	phrase := KnowledgeEntry{
		Topic:   "Data Structures",
		Content: "An introduction to binary search trees and their rotations.",
	}
	scattered := KnowledgeEntry{
		Topic:   "Data Structures",
		Content: "A binary heap supports search; unlike trees it is array backed.",
	}

	phraseScore := Relevance(phrase, query, terms)
	scatteredScore := Relevance(scattered, query, terms)
	if phraseScore <= scatteredScore {
		t.Fatalf("expected phrase match to outscore term matches: %d <= %d", phraseScore, scatteredScore)
	}
}

func TestRelevanceTermFrequency(t *testing.T) {
	terms := []string{"recursion"}
	once := KnowledgeEntry{Content: "recursion"}
	twice := KnowledgeEntry{Content: "recursion explains recursion"}
	if got := Relevance(once, "unrelated query", terms); got != 2 {
		t.Fatalf("expected 2 for single occurrence, got %d", got)
	}
	if got := Relevance(twice, "unrelated query", terms); got != 4 {
		t.Fatalf("expected 4 for double occurrence, got %d", got)
	}
}

func TestRelevanceCategorySubjectAndTags(t *testing.T) {
	entry := KnowledgeEntry{
		Category: "Programming Languages",
		Subject:  "Python",
		Topic:    "Generators",
		Content:  "Lazy iteration in python.",
		Tags:     StringList{"python", "iterators"},
	}
	query := "programming languages python generators"
	terms := ExtractTerms(query)

	score := Relevance(entry, query, terms)
	// +5 category substring, +5 subject substring, +3 tag "python",
	// plus term-frequency points; the fixed bonuses must all land.
	base := Relevance(KnowledgeEntry{
		Topic:   entry.Topic,
		Content: entry.Content,
	}, query, terms)
	if score < base+13 {
		t.Fatalf("expected category/subject/tag bonuses, got %d (base %d)", score, base)
	}
}

func TestRelevanceTagMatchIsExact(t *testing.T) {
	entry := KnowledgeEntry{Tags: StringList{"pythonic"}}
	terms := []string{"python"}
	if got := Relevance(entry, "zzz", terms); got != 0 {
		t.Fatalf("expected no tag bonus for partial match, got %d", got)
	}
}

func TestRelevanceCaseInsensitive(t *testing.T) {
	entry := KnowledgeEntry{Topic: "SQL Joins", Content: "INNER JOIN semantics"}
	terms := []string{"join"}
	if got := Relevance(entry, "sql joins", terms); got < 10 {
		t.Fatalf("expected phrase bonus regardless of case, got %d", got)
	}
}
