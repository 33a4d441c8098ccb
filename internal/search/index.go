package search

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/anthropics/docindex/pkg/types"
)

// emptyFreqMap is returned, shared rather than freshly allocated per
// call, by WordFrequencies for an id that is not live.
var emptyFreqMap = map[string]float64{}

// postingList is the document-id -> term-frequency map for one token.
// It carries its own lock so that parallel removal can erase entries
// from distinct posting lists concurrently without contending on the
// index's top-level lock, and so that two erasures into the same
// posting list (however that arises) never race.
type postingList struct {
	mu      sync.Mutex
	entries map[int64]float64
}

func newPostingList() *postingList {
	return &postingList{entries: make(map[int64]float64)}
}

func (p *postingList) add(id int64, delta float64) {
	p.mu.Lock()
	p.entries[id] += delta
	p.mu.Unlock()
}

func (p *postingList) remove(id int64) {
	p.mu.Lock()
	delete(p.entries, id)
	p.mu.Unlock()
}

func (p *postingList) snapshot() map[int64]float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[int64]float64, len(p.entries))
	for k, v := range p.entries {
		out[k] = v
	}
	return out
}

func (p *postingList) size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}

// docMeta is the metadata record kept for each live document.
type docMeta struct {
	rating int
	status types.Status
	text   string
}

// Index is the in-memory inverted-index document store. It holds
// documents, their metadata, per-term postings, per-document term
// frequencies, and the set of live document ids. Add, Remove, and query
// operations on a shared Index are not safe under concurrent mutation
// with each other; callers observing this discipline may still read
// concurrently while no mutation is in flight.
type Index struct {
	mu sync.RWMutex

	stop   *StopWords
	cfg    *types.IndexConfig
	logger zerolog.Logger

	postings   map[string]*postingList
	perDocFreq map[int64]map[string]float64
	meta       map[int64]*docMeta
	ids        map[int64]struct{}
}

// NewIndex constructs an empty Index over the given stop-word set,
// configuration, and logger.
func NewIndex(stop *StopWords, cfg *types.IndexConfig, logger zerolog.Logger) *Index {
	if cfg == nil {
		cfg = types.DefaultIndexConfig()
	}
	return &Index{
		stop:       stop,
		cfg:        cfg,
		logger:     logger,
		postings:   make(map[string]*postingList),
		perDocFreq: make(map[int64]map[string]float64),
		meta:       make(map[int64]*docMeta),
		ids:        make(map[int64]struct{}),
	}
}

// AddDocument tokenizes text, stop-word filters and validates it, and
// inserts id as a live document with the given status and average
// rating. The index takes ownership of text.
func (idx *Index) AddDocument(id int64, text string, status types.Status, ratings []int) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, live := idx.ids[id]; id < 0 || live {
		return types.Errorf("search.AddDocument", types.ErrDuplicateOrNegativeID,
			"id %d is negative or already present", id)
	}

	var survivors []string
	for _, tok := range Split(text) {
		if tok == "" || idx.stop.Contains(tok) {
			continue
		}
		if !IsValidToken(tok) {
			return types.Errorf("search.AddDocument", types.ErrInvalidWord,
				"token %q contains a control character", tok)
		}
		survivors = append(survivors, tok)
	}

	n := len(survivors)
	if n == 0 {
		return types.Errorf("search.AddDocument", types.ErrEmptyDocument,
			"document %d has no indexable tokens after stop-word filtering", id)
	}
	invN := 1.0 / float64(n)

	freq := make(map[string]float64, n)
	for _, tok := range survivors {
		freq[tok] += invN
	}

	for tok, tf := range freq {
		pl, ok := idx.postings[tok]
		if !ok {
			pl = newPostingList()
			idx.postings[tok] = pl
		}
		pl.add(id, tf)
	}

	idx.perDocFreq[id] = freq
	idx.meta[id] = &docMeta{
		rating: averageRating(ratings),
		status: status,
		text:   text,
	}
	idx.ids[id] = struct{}{}

	idx.logger.Info().
		Int64("id", id).
		Str("status", status.String()).
		Int("tokens", n).
		Msg("document added")

	return nil
}

// averageRating computes the truncated integer mean of ratings, 0 if
// ratings is empty. Go's integer division already truncates toward zero,
// matching the original design's requirement.
func averageRating(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return sum / len(ratings)
}

// RemoveDocument removes id from the index sequentially. If id is not
// live this is a no-op, not an error.
func (idx *Index) RemoveDocument(id int64) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	tokens, live := idx.removePrepare(id)
	if !live {
		return
	}
	for tok := range tokens {
		idx.postings[tok].remove(id)
	}
}

// RemoveDocumentParallel removes id from the index with the same final
// state as RemoveDocument, but erases the document's posting-list
// entries across goroutines, one per token, each holding only that
// token's own posting-list lock.
func (idx *Index) RemoveDocumentParallel(id int64) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	tokens, live := idx.removePrepare(id)
	if !live {
		return
	}

	toks := make([]string, 0, len(tokens))
	for tok := range tokens {
		toks = append(toks, tok)
	}

	var wg sync.WaitGroup
	wg.Add(len(toks))
	for _, tok := range toks {
		go func(tok string) {
			defer wg.Done()
			idx.postings[tok].remove(id)
		}(tok)
	}
	wg.Wait()
}

// removePrepare purges id from the id set, metadata, and per-document
// frequency map, returning the token set that must still be erased from
// postings and whether id was live. Caller holds idx.mu.
func (idx *Index) removePrepare(id int64) (tokens map[string]float64, live bool) {
	if _, ok := idx.ids[id]; !ok {
		return nil, false
	}
	tokens = idx.perDocFreq[id]
	delete(idx.ids, id)
	delete(idx.meta, id)
	delete(idx.perDocFreq, id)

	idx.logger.Info().Int64("id", id).Msg("document removed")
	return tokens, true
}

// DocumentCount returns the number of live documents.
func (idx *Index) DocumentCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.ids)
}

// IterateIDs returns the live document ids in ascending order.
func (idx *Index) IterateIDs() []int64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	ids := make([]int64, 0, len(idx.ids))
	for id := range idx.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// WordFrequencies returns the token -> term-frequency map for id. If id
// is not live, a shared empty map is returned.
func (idx *Index) WordFrequencies(id int64) map[string]float64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	freq, ok := idx.perDocFreq[id]
	if !ok {
		return emptyFreqMap
	}
	return freq
}

// Contains reports whether id is currently live.
func (idx *Index) Contains(id int64) bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	_, ok := idx.ids[id]
	return ok
}

// Stats returns introspection counters about the index.
func (idx *Index) Stats() map[string]interface{} {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	totalPostings := 0
	for _, pl := range idx.postings {
		totalPostings += pl.size()
	}

	return map[string]interface{}{
		"document_count": len(idx.ids),
		"distinct_terms": len(idx.postings),
		"total_postings": totalPostings,
	}
}
