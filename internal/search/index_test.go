package search

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/anthropics/docindex/pkg/types"
)

func newTestIndex(t *testing.T, stopWords ...string) *Index {
	t.Helper()
	sw, err := NewStopWords(stopWords)
	if err != nil {
		t.Fatalf("NewStopWords() error = %v", err)
	}
	return NewIndex(sw, types.DefaultIndexConfig(), zerolog.Nop())
}

func TestIndex_AddDocument(t *testing.T) {
	idx := newTestIndex(t)

	if err := idx.AddDocument(42, "cat in the city", types.StatusActual, []int{1, 2, 3}); err != nil {
		t.Fatalf("AddDocument() error = %v", err)
	}

	if idx.DocumentCount() != 1 {
		t.Errorf("DocumentCount() = %d, want 1", idx.DocumentCount())
	}
	if !idx.Contains(42) {
		t.Error("expected document 42 to be live")
	}

	freq := idx.WordFrequencies(42)
	if len(freq) != 4 {
		t.Errorf("WordFrequencies() has %d entries, want 4", len(freq))
	}
	sum := 0.0
	for _, tf := range freq {
		sum += tf
	}
	if diff := sum - 1.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("term frequencies sum to %v, want 1.0", sum)
	}
}

func TestIndex_AddDocument_DuplicateID(t *testing.T) {
	idx := newTestIndex(t)
	if err := idx.AddDocument(1, "a b", types.StatusActual, nil); err != nil {
		t.Fatalf("AddDocument() error = %v", err)
	}
	err := idx.AddDocument(1, "c d", types.StatusActual, nil)
	if !errors.Is(err, types.ErrDuplicateOrNegativeID) {
		t.Errorf("expected ErrDuplicateOrNegativeID, got %v", err)
	}
}

func TestIndex_AddDocument_NegativeID(t *testing.T) {
	idx := newTestIndex(t)
	err := idx.AddDocument(-1, "a b", types.StatusActual, nil)
	if !errors.Is(err, types.ErrDuplicateOrNegativeID) {
		t.Errorf("expected ErrDuplicateOrNegativeID, got %v", err)
	}
}

func TestIndex_AddDocument_InvalidWord(t *testing.T) {
	idx := newTestIndex(t)
	err := idx.AddDocument(1, "cat\tcity", types.StatusActual, nil)
	if !errors.Is(err, types.ErrInvalidWord) {
		t.Errorf("expected ErrInvalidWord, got %v", err)
	}
}

func TestIndex_AddDocument_EmptyAfterStopWords(t *testing.T) {
	idx := newTestIndex(t, "in", "the")
	err := idx.AddDocument(1, "in the", types.StatusActual, nil)
	if !errors.Is(err, types.ErrEmptyDocument) {
		t.Errorf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestIndex_AddDocument_RatingBoundaries(t *testing.T) {
	idx := newTestIndex(t)

	if err := idx.AddDocument(1, "a b", types.StatusActual, nil); err != nil {
		t.Fatal(err)
	}
	if idx.meta[1].rating != 0 {
		t.Errorf("empty ratings should yield rating 0, got %d", idx.meta[1].rating)
	}

	if err := idx.AddDocument(2, "a b", types.StatusActual, []int{-1, -2, -3}); err != nil {
		t.Fatal(err)
	}
	if idx.meta[2].rating != -2 {
		t.Errorf("negative ratings should truncate toward zero, got %d, want -2", idx.meta[2].rating)
	}
}

func TestIndex_RemoveDocument(t *testing.T) {
	idx := newTestIndex(t)
	if err := idx.AddDocument(42, "cat in the city", types.StatusActual, nil); err != nil {
		t.Fatal(err)
	}

	idx.RemoveDocument(42)

	if idx.Contains(42) {
		t.Error("expected document 42 to be removed")
	}
	if idx.DocumentCount() != 0 {
		t.Errorf("DocumentCount() = %d, want 0", idx.DocumentCount())
	}
	if pl, ok := idx.postings["cat"]; ok && pl.size() != 0 {
		t.Error("expected postings for removed document to be purged")
	}
	freq := idx.WordFrequencies(42)
	if len(freq) != 0 {
		t.Error("expected empty word frequencies for removed document")
	}
}

func TestIndex_RemoveDocument_Unknown(t *testing.T) {
	idx := newTestIndex(t)
	idx.RemoveDocument(999) // must not panic
}

func TestIndex_RemoveDocumentParallel_MatchesSequential(t *testing.T) {
	seq := newTestIndex(t)
	par := newTestIndex(t)

	for _, idx := range []*Index{seq, par} {
		if err := idx.AddDocument(1, "cat fluffy tail fluffy", types.StatusActual, nil); err != nil {
			t.Fatal(err)
		}
		if err := idx.AddDocument(2, "cat city", types.StatusActual, nil); err != nil {
			t.Fatal(err)
		}
	}

	seq.RemoveDocument(1)
	par.RemoveDocumentParallel(1)

	if seq.DocumentCount() != par.DocumentCount() {
		t.Fatalf("document counts differ: %d vs %d", seq.DocumentCount(), par.DocumentCount())
	}
	for _, tok := range []string{"cat", "fluffy", "tail", "city"} {
		seqPL, seqOK := seq.postings[tok]
		parPL, parOK := par.postings[tok]
		if seqOK != parOK {
			t.Fatalf("posting presence for %q differs", tok)
		}
		if seqOK && seqPL.snapshot()[2] != parPL.snapshot()[2] {
			t.Errorf("posting for %q differs between sequential and parallel removal", tok)
		}
	}
}

func TestIndex_AddThenRemove_ReturnsToPriorState(t *testing.T) {
	idx := newTestIndex(t)
	if err := idx.AddDocument(1, "a b c", types.StatusActual, nil); err != nil {
		t.Fatal(err)
	}
	before := idx.DocumentCount()

	if err := idx.AddDocument(2, "d e f", types.StatusActual, nil); err != nil {
		t.Fatal(err)
	}
	idx.RemoveDocument(2)

	if idx.DocumentCount() != before {
		t.Errorf("DocumentCount() = %d, want %d", idx.DocumentCount(), before)
	}
	if idx.Contains(2) {
		t.Error("document 2 should no longer be live")
	}
}

func TestIndex_IterateIDs_Ascending(t *testing.T) {
	idx := newTestIndex(t)
	for _, id := range []int64{5, 1, 3} {
		if err := idx.AddDocument(id, "a b", types.StatusActual, nil); err != nil {
			t.Fatal(err)
		}
	}
	ids := idx.IterateIDs()
	want := []int64{1, 3, 5}
	for i, id := range want {
		if ids[i] != id {
			t.Errorf("IterateIDs()[%d] = %d, want %d", i, ids[i], id)
		}
	}
}

func TestIndex_Stats(t *testing.T) {
	idx := newTestIndex(t)
	if err := idx.AddDocument(1, "a b", types.StatusActual, nil); err != nil {
		t.Fatal(err)
	}
	stats := idx.Stats()
	if stats["document_count"] != 1 {
		t.Errorf("document_count = %v, want 1", stats["document_count"])
	}
}
