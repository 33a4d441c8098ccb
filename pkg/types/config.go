package types

// IndexConfig holds the instance-level knobs the original design treated
// as process-wide constants (see SPEC_FULL.md §6).
type IndexConfig struct {
	// MaxResults caps the number of documents FindTopDocuments returns.
	MaxResults int `json:"max_results"`

	// RelevanceTolerance is the epsilon below which two relevance
	// scores are treated as tied and broken by rating.
	RelevanceTolerance float64 `json:"relevance_tolerance"`

	// ShardCount is the number of shards used by the concurrent map
	// during parallel ranking. Zero or negative selects runtime.NumCPU(),
	// rounded up to the next power of two.
	ShardCount int `json:"shard_count"`
}

// DefaultIndexConfig returns the configuration matching the original
// design's MAX_RESULT_DOCUMENT_COUNT and relevance-equality tolerance.
func DefaultIndexConfig() *IndexConfig {
	return &IndexConfig{
		MaxResults:         5,
		RelevanceTolerance: 1e-6,
		ShardCount:         0,
	}
}
