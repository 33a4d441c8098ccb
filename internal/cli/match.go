package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/anthropics/docindex/pkg/types"
)

var matchCmd = &cobra.Command{
	Use:   "match <id> <query>",
	Short: "Explain which of a query's plus-words a document matches",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := buildIndex(cmd, consoleLogger())
		if err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid document id %q: %w", args[0], err)
		}

		parallel, _ := cmd.Flags().GetBool("parallel")

		var result types.MatchResult
		if parallel {
			result, err = idx.MatchDocumentParallel(args[1], id)
		} else {
			result, err = idx.MatchDocument(args[1], id)
		}
		if err != nil {
			return err
		}

		log.Info().Int64("id", id).Str("status", result.Status.String()).Msg("match completed")
		fmt.Printf("status\t%s\n", result.Status)
		fmt.Printf("matched\t%s\n", strings.Join(result.MatchedWords, ","))
		return nil
	},
}
