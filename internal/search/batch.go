package search

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/anthropics/docindex/pkg/types"
)

// ProcessQueries executes queries data-parallel across goroutines, one
// per query, each using the sequential ranking path internally. Results
// are returned in the same length and order as queries; the index must
// be quiescent (no concurrent mutation) for the duration of the call.
func ProcessQueries(idx *Index, queries []types.BatchQuery, logger zerolog.Logger) ([][]types.SearchResult, error) {
	batchID := uuid.NewString()

	results := make([][]types.SearchResult, len(queries))
	errs := make([]error, len(queries))

	var wg sync.WaitGroup
	wg.Add(len(queries))
	for i, q := range queries {
		go func(i int, q types.BatchQuery) {
			defer wg.Done()
			res, err := idx.FindTopDocuments(q.Text, q.Predicate)
			results[i] = res
			errs[i] = err
		}(i, q)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			logger.Warn().Str("batch_id", batchID).Err(err).Msg("batch query run failed")
			return nil, err
		}
	}

	logger.Info().
		Str("batch_id", batchID).
		Int("query_count", len(queries)).
		Msg("batch query run completed")

	return results, nil
}

// ProcessQueriesJoined runs ProcessQueries and concatenates all results
// in input order into a single ordered list.
func ProcessQueriesJoined(idx *Index, queries []types.BatchQuery, logger zerolog.Logger) ([]types.SearchResult, error) {
	perQuery, err := ProcessQueries(idx, queries, logger)
	if err != nil {
		return nil, err
	}

	var joined []types.SearchResult
	for _, res := range perQuery {
		joined = append(joined, res...)
	}
	return joined, nil
}
