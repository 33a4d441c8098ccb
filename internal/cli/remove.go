package cli

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a document from a freshly built index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := buildIndex(cmd, consoleLogger())
		if err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid document id %q: %w", args[0], err)
		}

		wasLive := idx.Contains(id)

		parallel, _ := cmd.Flags().GetBool("parallel")
		if parallel {
			idx.RemoveDocumentParallel(id)
		} else {
			idx.RemoveDocument(id)
		}

		log.Info().Int64("id", id).Bool("was_live", wasLive).Msg("remove completed")
		return nil
	},
}
