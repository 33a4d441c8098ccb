package search

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RemoveDuplicates scans live documents in ascending id order. For each
// document it computes the set of distinct tokens (the keys of its
// per-document frequency map) and checks it against the set-of-sets seen
// so far; the first occurrence of a token set is retained, every later
// occurrence is recorded for removal and logged. After the pass, all
// recorded ids are removed. Returns the removed ids in removal order.
func RemoveDuplicates(idx *Index, logger zerolog.Logger) []int64 {
	runID := uuid.NewString()

	seen := make(map[string]int64) // token-set fingerprint -> first id seen
	var toRemove []int64

	for _, id := range idx.IterateIDs() {
		fp := fingerprint(idx.WordFrequencies(id))
		if firstID, dup := seen[fp]; dup {
			toRemove = append(toRemove, id)
			logger.Info().
				Str("run_id", runID).
				Int64("removed_id", id).
				Int64("kept_id", firstID).
				Msg("duplicate document removed")
			continue
		}
		seen[fp] = id
	}

	for _, id := range toRemove {
		idx.RemoveDocument(id)
	}

	return toRemove
}

// fingerprint builds a canonical, order-independent fingerprint of a
// document's distinct token set. Tokens cannot contain control
// characters (the index rejects them at AddDocument time), so a NUL
// byte is a safe, unambiguous separator.
func fingerprint(freq map[string]float64) string {
	tokens := make([]string, 0, len(freq))
	for tok := range freq {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)

	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok)
		b.WriteByte(0)
	}
	return b.String()
}
