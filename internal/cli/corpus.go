package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/anthropics/docindex/internal/search"
	"github.com/anthropics/docindex/pkg/types"
)

// consoleLogger builds the human-readable logger every subcommand uses.
// Errors are reported through cobra's RunE return, not through the
// logger, so this is configured for info-level operational messages.
func consoleLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
}

// buildIndex constructs an Index from the --corpus and --stop-words
// flags shared by every subcommand. The library itself has no persisted
// state (see SPEC_FULL.md §6); the corpus file is ordinary input that
// seeds one process's in-memory index, not an index store.
func buildIndex(cmd *cobra.Command, logger zerolog.Logger) (*search.Index, error) {
	stopWords, _ := cmd.Flags().GetStringSlice("stop-words")
	sw, err := search.NewStopWords(stopWords)
	if err != nil {
		return nil, err
	}

	idx := search.NewIndex(sw, loadIndexConfig(cmd), logger)

	corpusPath, _ := cmd.Flags().GetString("corpus")
	if corpusPath == "" {
		return idx, nil
	}
	if err := loadCorpus(corpusPath, idx); err != nil {
		return nil, err
	}
	return idx, nil
}

// loadCorpus reads tab-separated records of the form
// "id\tstatus\trating,rating,...\ttext" and adds each as a document.
func loadCorpus(path string, idx *search.Index) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening corpus file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 4)
		if len(fields) != 4 {
			return fmt.Errorf("corpus line %d: expected 4 tab-separated fields, got %d", lineNo, len(fields))
		}

		id, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return fmt.Errorf("corpus line %d: invalid id %q: %w", lineNo, fields[0], err)
		}
		status, err := parseStatus(fields[1])
		if err != nil {
			return fmt.Errorf("corpus line %d: %w", lineNo, err)
		}
		ratings, err := parseRatings(fields[2])
		if err != nil {
			return fmt.Errorf("corpus line %d: %w", lineNo, err)
		}

		if err := idx.AddDocument(id, fields[3], status, ratings); err != nil {
			return fmt.Errorf("corpus line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

func parseStatus(s string) (types.Status, error) {
	switch strings.ToUpper(s) {
	case "ACTUAL":
		return types.StatusActual, nil
	case "IRRELEVANT":
		return types.StatusIrrelevant, nil
	case "BANNED":
		return types.StatusBanned, nil
	case "REMOVED":
		return types.StatusRemoved, nil
	default:
		return 0, fmt.Errorf("unknown status %q", s)
	}
}

func parseRatings(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ratings := make([]int, 0, len(parts))
	for _, p := range parts {
		r, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid rating %q: %w", p, err)
		}
		ratings = append(ratings, r)
	}
	return ratings, nil
}
