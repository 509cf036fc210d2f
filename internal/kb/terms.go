// File path: internal/kb/terms.go
package kb

import "strings"

// maxTerms bounds the extracted term list so the store's OR-filter stays
// small; it is a size cap, not a ranking decision.
const maxTerms = 5

// stopWords holds noise tokens dropped during term extraction: articles,
// prepositions, auxiliary verbs, and politeness words.
var stopWords = map[string]struct{}{
	"the": {}, "is": {}, "at": {}, "which": {}, "on": {}, "and": {},
	"or": {}, "but": {}, "in": {}, "with": {}, "a": {}, "an": {},
	"to": {}, "for": {}, "of": {}, "as": {}, "by": {}, "was": {},
	"were": {}, "been": {}, "be": {}, "have": {}, "has": {}, "had": {},
	"do": {}, "does": {}, "did": {}, "will": {}, "would": {},
	"could": {}, "should": {}, "may": {}, "might": {}, "can": {},
	"must": {}, "shall": {}, "help": {}, "me": {}, "please": {},
	"thank": {}, "you": {},
}

// ExtractTerms reduces a free-text query to at most five lowercase search
// terms. Tokens are stripped to word characters first, then dropped when
// shorter than three characters or present in the stop-word set. Order is
// preserved. Deterministic with no side effects.
func ExtractTerms(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	var terms []string
	for _, field := range fields {
		token := stripNonWord(field)
		if len(token) <= 2 {
			continue
		}
		if _, noise := stopWords[token]; noise {
			continue
		}
		terms = append(terms, token)
		if len(terms) == maxTerms {
			break
		}
	}
	return terms
}

func stripNonWord(token string) string {
	var b strings.Builder
	b.Grow(len(token))
	for _, r := range token {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
