package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/anthropics/docindex/internal/search"
)

var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Remove documents that share an identical token set with an earlier document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := buildIndex(cmd, consoleLogger())
		if err != nil {
			return err
		}

		removed := search.RemoveDuplicates(idx, consoleLogger())

		log.Info().Int("removed_count", len(removed)).Msg("dedupe completed")
		for _, id := range removed {
			fmt.Println(id)
		}
		return nil
	},
}
