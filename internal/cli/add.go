package cli

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <id> <status> <ratings> <text>",
	Short: "Add a document to a freshly built index and print its word frequencies",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := buildIndex(cmd, consoleLogger())
		if err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		status, err := parseStatus(args[1])
		if err != nil {
			return err
		}
		ratings, err := parseRatings(args[2])
		if err != nil {
			return err
		}

		if err := idx.AddDocument(id, args[3], status, ratings); err != nil {
			return err
		}

		log.Info().Int64("id", id).Msg("document added")
		for tok, tf := range idx.WordFrequencies(id) {
			fmt.Printf("%s\t%f\n", tok, tf)
		}
		return nil
	},
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid document id %q: %w", s, err)
	}
	return id, nil
}
