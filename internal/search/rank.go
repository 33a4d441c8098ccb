package search

import (
	"math"
	"sort"
	"sync"

	"github.com/anthropics/docindex/pkg/types"
)

// DefaultPredicate selects documents with status ACTUAL, the default
// FindTopDocuments overload in the original design.
func DefaultPredicate() types.Predicate {
	return StatusPredicate(types.StatusActual)
}

// StatusPredicate returns a predicate matching documents whose status
// equals s, the status-equality overload.
func StatusPredicate(s types.Status) types.Predicate {
	return func(_ types.DocumentID, status types.Status, _ int) bool {
		return status == s
	}
}

// FindTopDocuments ranks documents by TF-IDF relevance against rawQuery,
// accumulating sequentially in an ordinary map. A nil predicate defaults
// to StatusPredicate(StatusActual).
func (idx *Index) FindTopDocuments(rawQuery string, predicate types.Predicate) ([]types.SearchResult, error) {
	if predicate == nil {
		predicate = DefaultPredicate()
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	q, err := ParseQuery(rawQuery, idx.stop, true)
	if err != nil {
		return nil, err
	}

	n := len(idx.ids)
	relevance := make(map[int64]float64)

	for _, w := range q.PlusWords {
		pl, ok := idx.postings[w]
		if !ok {
			continue
		}
		entries := pl.snapshot()
		df := len(entries)
		if df == 0 {
			continue
		}
		idf := math.Log(float64(n) / float64(df))

		for id, tf := range entries {
			m, ok := idx.meta[id]
			if !ok || !predicate(types.DocumentID(id), m.status, m.rating) {
				continue
			}
			relevance[id] += tf * idf
		}
	}

	idx.excludeMinusWords(q.MinusWords, relevance)

	return idx.buildResults(relevance), nil
}

// FindTopDocumentsParallel has the same effect as FindTopDocuments but
// fans the plus-word iteration across goroutines, accumulating into a
// ShardedMap before merging, minus-word exclusion and sorting remain
// sequential. Relevance values may differ from the sequential path by a
// few ULPs due to floating-point reassociation; the configured
// tolerance absorbs this when sorting.
func (idx *Index) FindTopDocumentsParallel(rawQuery string, predicate types.Predicate) ([]types.SearchResult, error) {
	if predicate == nil {
		predicate = DefaultPredicate()
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	q, err := ParseQuery(rawQuery, idx.stop, true)
	if err != nil {
		return nil, err
	}

	n := len(idx.ids)
	sm := NewShardedMap(idx.cfg.ShardCount)

	var wg sync.WaitGroup
	wg.Add(len(q.PlusWords))
	for _, w := range q.PlusWords {
		go func(w string) {
			defer wg.Done()

			pl, ok := idx.postings[w]
			if !ok {
				return
			}
			entries := pl.snapshot()
			df := len(entries)
			if df == 0 {
				return
			}
			idf := math.Log(float64(n) / float64(df))

			for id, tf := range entries {
				m, ok := idx.meta[id]
				if !ok || !predicate(types.DocumentID(id), m.status, m.rating) {
					continue
				}
				sm.Add(id, tf*idf)
			}
		}(w)
	}
	wg.Wait()

	relevance := sm.BuildOrdinary()
	idx.excludeMinusWords(q.MinusWords, relevance)

	return idx.buildResults(relevance), nil
}

// FindTopDocumentsByStatus is the status-filter overload of
// FindTopDocuments, defaulting the predicate to status equality.
func (idx *Index) FindTopDocumentsByStatus(rawQuery string, status types.Status) ([]types.SearchResult, error) {
	return idx.FindTopDocuments(rawQuery, StatusPredicate(status))
}

// FindTopDocumentsByStatusParallel is the parallel variant of
// FindTopDocumentsByStatus.
func (idx *Index) FindTopDocumentsByStatusParallel(rawQuery string, status types.Status) ([]types.SearchResult, error) {
	return idx.FindTopDocumentsParallel(rawQuery, StatusPredicate(status))
}

func (idx *Index) excludeMinusWords(minusWords []string, relevance map[int64]float64) {
	for _, w := range minusWords {
		pl, ok := idx.postings[w]
		if !ok {
			continue
		}
		for id := range pl.snapshot() {
			delete(relevance, id)
		}
	}
}

// buildResults materializes relevance into sorted, truncated results.
// Caller holds idx.mu for reading.
func (idx *Index) buildResults(relevance map[int64]float64) []types.SearchResult {
	results := make([]types.SearchResult, 0, len(relevance))
	for id, rel := range relevance {
		m, ok := idx.meta[id]
		if !ok {
			continue
		}
		results = append(results, types.SearchResult{
			ID:        types.DocumentID(id),
			Relevance: rel,
			Rating:    m.rating,
		})
	}

	tol := idx.cfg.RelevanceTolerance
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if diff := a.Relevance - b.Relevance; diff > tol || diff < -tol {
			return a.Relevance > b.Relevance
		}
		return a.Rating > b.Rating
	})

	if len(results) > idx.cfg.MaxResults {
		results = results[:idx.cfg.MaxResults]
	}
	return results
}

// MatchDocument reports which of rawQuery's plus-words appear in id's
// document, using the sequential parse (need_sort = true). If any
// minus-word is present in the document, the match list is empty. An id
// that is not live returns ErrUnknownDocument.
func (idx *Index) MatchDocument(rawQuery string, id int64) (types.MatchResult, error) {
	return idx.matchDocument(rawQuery, id, true)
}

// MatchDocumentParallel is the parallel-policy variant: it parses with
// need_sort = false and sorts and deduplicates the matched-words result
// before returning.
func (idx *Index) MatchDocumentParallel(rawQuery string, id int64) (types.MatchResult, error) {
	return idx.matchDocument(rawQuery, id, false)
}

func (idx *Index) matchDocument(rawQuery string, id int64, needSort bool) (types.MatchResult, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	q, err := ParseQuery(rawQuery, idx.stop, needSort)
	if err != nil {
		return types.MatchResult{}, err
	}

	m, ok := idx.meta[id]
	if !ok {
		return types.MatchResult{}, types.Errorf("search.MatchDocument", types.ErrUnknownDocument,
			"document %d is not live", id)
	}
	freq := idx.perDocFreq[id]

	for _, w := range q.MinusWords {
		if _, present := freq[w]; present {
			return types.MatchResult{Status: m.status}, nil
		}
	}

	var matched []string
	for _, w := range q.PlusWords {
		if _, present := freq[w]; present {
			matched = append(matched, w)
		}
	}

	if !needSort {
		matched = sortDedupe(matched)
	}

	return types.MatchResult{MatchedWords: matched, Status: m.status}, nil
}
