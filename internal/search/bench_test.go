package search

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/anthropics/docindex/pkg/types"
)

func BenchmarkIndex_AddDocument(b *testing.B) {
	sw, _ := NewStopWords([]string{"the", "in", "a"})
	idx := NewIndex(sw, types.DefaultIndexConfig(), zerolog.Nop())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = idx.AddDocument(int64(i), "the quick fox jumps over a lazy dog in the yard", types.StatusActual, []int{1, 2, 3})
	}
}

func BenchmarkIndex_FindTopDocuments(b *testing.B) {
	sw, _ := NewStopWords([]string{"the", "in", "a"})
	idx := NewIndex(sw, types.DefaultIndexConfig(), zerolog.Nop())
	for i := 0; i < 1000; i++ {
		_ = idx.AddDocument(int64(i), fmt.Sprintf("fox number %d jumps over dog %d", i, i%7), types.StatusActual, nil)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = idx.FindTopDocuments("fox dog", nil)
	}
}

func BenchmarkIndex_FindTopDocumentsParallel(b *testing.B) {
	sw, _ := NewStopWords([]string{"the", "in", "a"})
	idx := NewIndex(sw, types.DefaultIndexConfig(), zerolog.Nop())
	for i := 0; i < 1000; i++ {
		_ = idx.AddDocument(int64(i), fmt.Sprintf("fox number %d jumps over dog %d", i, i%7), types.StatusActual, nil)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = idx.FindTopDocumentsParallel("fox dog", nil)
	}
}
