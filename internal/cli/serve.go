package cli

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/anthropics/docindex/internal/search"
	"github.com/anthropics/docindex/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Read queries from stdin, one per line, and print ranked results for each",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := buildIndex(cmd, consoleLogger())
		if err != nil {
			return err
		}

		printBanner(idx.DocumentCount())

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		lines := make(chan string)
		go func() {
			defer close(lines)
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				lines <- scanner.Text()
			}
		}()

		parallel, _ := cmd.Flags().GetBool("parallel")

		for {
			select {
			case <-sigChan:
				log.Info().Msg("shutdown signal received, stopping")
				return nil
			case line, ok := <-lines:
				if !ok {
					log.Info().Msg("stdin closed, stopping")
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if err := runQuery(idx, line, parallel); err != nil {
					fmt.Fprintf(os.Stderr, "query %q: %v\n", line, err)
				}
			}
		}
	},
}

// runQuery runs one query line against idx and prints its ranked
// results, one per line, as "id\trelevance\trating".
func runQuery(idx *search.Index, rawQuery string, parallel bool) error {
	var rs []types.SearchResult
	var err error
	if parallel {
		rs, err = idx.FindTopDocumentsParallel(rawQuery, nil)
	} else {
		rs, err = idx.FindTopDocuments(rawQuery, nil)
	}
	if err != nil {
		return err
	}
	for _, r := range rs {
		fmt.Printf("%d\t%.6f\t%d\n", r.ID, r.Relevance, r.Rating)
	}
	return nil
}

func printBanner(docCount int) {
	fmt.Println(`
docindex — in-memory TF-IDF search, reading queries from stdin`)
	fmt.Printf("  documents loaded: %d\n", docCount)
	fmt.Println("  one query per line, plus/minus terms supported, Ctrl-D or Ctrl-C to stop")
	fmt.Println()
}
