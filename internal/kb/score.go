// File path: internal/kb/score.go
package kb

import "strings"

// Relevance computes the additive heuristic score ranking a knowledge entry
// against a query. All comparisons are case-insensitive. The weights are
// load-bearing compatibility constants:
//
//	+10  searchable text contains the full query as a substring
//	 +2  per non-overlapping occurrence of each extracted term
//	 +5  category appears inside the query
//	 +5  subject appears inside the query
//	 +3  per tag exactly present in the extracted terms
//
// Term frequency is deliberately not normalized by content length, so
// verbose entries can accumulate more frequency points than terse ones.
func Relevance(entry KnowledgeEntry, query string, terms []string) int {
	queryLower := strings.ToLower(query)
	text := strings.ToLower(entry.Topic + " " + entry.Content + " " + entry.Category + " " + entry.Subject)

	score := 0
	if queryLower != "" && strings.Contains(text, queryLower) {
		score += 10
	}
	for _, term := range terms {
		score += 2 * strings.Count(text, term)
	}
	if entry.Category != "" && strings.Contains(queryLower, strings.ToLower(entry.Category)) {
		score += 5
	}
	if entry.Subject != "" && strings.Contains(queryLower, strings.ToLower(entry.Subject)) {
		score += 5
	}
	for _, tag := range entry.Tags {
		lowered := strings.ToLower(tag)
		for _, term := range terms {
			if term == lowered {
				score += 3
				break
			}
		}
	}
	return score
}
