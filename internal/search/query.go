package search

import (
	"sort"

	"github.com/anthropics/docindex/pkg/types"
)

// Query is the parsed form of a raw query string: an ordered sequence
// of plus-words and an ordered sequence of minus-words. Query objects
// are transient, constructed per call and never stored.
type Query struct {
	PlusWords  []string
	MinusWords []string
}

// ParseQuery converts raw into a Query, filtering stop-words and
// validating negation syntax per token.
//
// Per token:
//  1. Reject empty.
//  2. A leading '-' marks the token negative and is stripped.
//  3. Reject empty after stripping, a second leading '-', or any
//     control character — all three raise ErrInvalidQuery.
//  4. If the stripped token is a stop-word, discard it.
//  5. Otherwise append to plus-words or minus-words.
//
// When needSort is true, plus-words and minus-words are each replaced
// by a sorted, deduplicated copy. The parallel match path passes
// needSort = false and tolerates duplicate work to avoid an O(n log n)
// sort on the critical path; both ranking paths pass needSort = true.
func ParseQuery(raw string, stop *StopWords, needSort bool) (*Query, error) {
	q := &Query{}

	for _, tok := range Split(raw) {
		if tok == "" {
			return nil, types.Errorf("search.ParseQuery", types.ErrInvalidQuery,
				"empty query token")
		}

		negative := false
		stripped := tok
		if stripped[0] == '-' {
			negative = true
			stripped = stripped[1:]
		}

		if stripped == "" {
			return nil, types.Errorf("search.ParseQuery", types.ErrInvalidQuery,
				"query token %q is empty after stripping '-'", tok)
		}
		if stripped[0] == '-' {
			return nil, types.Errorf("search.ParseQuery", types.ErrInvalidQuery,
				"query token %q contains a second leading '-'", tok)
		}
		if !IsValidToken(stripped) {
			return nil, types.Errorf("search.ParseQuery", types.ErrInvalidQuery,
				"query token %q contains a control character", tok)
		}

		if stop.Contains(stripped) {
			continue
		}

		if negative {
			q.MinusWords = append(q.MinusWords, stripped)
		} else {
			q.PlusWords = append(q.PlusWords, stripped)
		}
	}

	if needSort {
		q.PlusWords = sortDedupe(q.PlusWords)
		q.MinusWords = sortDedupe(q.MinusWords)
	}

	return q, nil
}

// sortDedupe sorts words and removes adjacent duplicates, returning a
// new slice (the input is not modified in place beyond what sort.Strings
// requires on its own backing array).
func sortDedupe(words []string) []string {
	if len(words) == 0 {
		return words
	}
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)

	out := sorted[:1]
	for _, w := range sorted[1:] {
		if w != out[len(out)-1] {
			out = append(out, w)
		}
	}
	return out
}

// dedupe removes duplicates from words while preserving first-seen
// order, without sorting.
func dedupe(words []string) []string {
	if len(words) == 0 {
		return words
	}
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
