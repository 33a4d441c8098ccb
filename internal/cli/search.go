package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/anthropics/docindex/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run a plus/minus query against a freshly built index and print ranked results",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := buildIndex(cmd, consoleLogger())
		if err != nil {
			return err
		}

		statusFlag, _ := cmd.Flags().GetString("status")
		parallel, _ := cmd.Flags().GetBool("parallel")

		var results []types.SearchResult
		switch {
		case statusFlag != "" && parallel:
			status, serr := parseStatus(statusFlag)
			if serr != nil {
				return serr
			}
			results, err = idx.FindTopDocumentsByStatusParallel(args[0], status)
		case statusFlag != "":
			status, serr := parseStatus(statusFlag)
			if serr != nil {
				return serr
			}
			results, err = idx.FindTopDocumentsByStatus(args[0], status)
		case parallel:
			results, err = idx.FindTopDocumentsParallel(args[0], nil)
		default:
			results, err = idx.FindTopDocuments(args[0], nil)
		}
		if err != nil {
			return err
		}

		log.Info().Str("query", args[0]).Int("result_count", len(results)).Msg("search completed")
		for _, r := range results {
			fmt.Printf("%d\t%.6f\t%d\n", r.ID, r.Relevance, r.Rating)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().String("status", "", "Filter by status (ACTUAL, IRRELEVANT, BANNED, REMOVED)")
}
