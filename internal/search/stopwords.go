package search

import (
	"github.com/anthropics/docindex/pkg/types"
)

// StopWords is an immutable membership set of tokens ignored in both
// documents and queries.
type StopWords struct {
	words map[string]struct{}
}

// NewStopWords builds a StopWords set from a sequence of tokens,
// filtering empty entries and deduplicating. Construction fails with
// ErrInvalidStopWord if any surviving token contains a control
// character.
func NewStopWords(words []string) (*StopWords, error) {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if !IsValidToken(w) {
			return nil, types.Errorf("search.NewStopWords", types.ErrInvalidStopWord,
				"stop-word %q contains a control character", w)
		}
		set[w] = struct{}{}
	}
	return &StopWords{words: set}, nil
}

// NewStopWordsFromString builds a StopWords set from a string delimited
// by ASCII spaces (split with Split), the alternate constructor form
// named in the external interfaces.
func NewStopWordsFromString(s string) (*StopWords, error) {
	return NewStopWords(Split(s))
}

// Contains reports whether tok is a stop-word. Accepts borrowed tokens
// without allocation.
func (sw *StopWords) Contains(tok string) bool {
	if sw == nil {
		return false
	}
	_, ok := sw.words[tok]
	return ok
}

// Len returns the number of distinct stop-words.
func (sw *StopWords) Len() int {
	if sw == nil {
		return 0
	}
	return len(sw.words)
}
