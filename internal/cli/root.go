// Package cli implements the thin command-line wrapper around the
// document index library. None of the ranking, indexing, or concurrency
// logic lives here; every command below only parses flags and calls
// into internal/search.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/anthropics/docindex/pkg/types"
)

var rootCmd = &cobra.Command{
	Use:   "docindex",
	Short: "docindex — an in-memory inverted-index TF-IDF search engine",
	Long: `
docindex — add short text documents, query them with plus/minus terms,
and get back the top matching documents ranked by TF-IDF relevance.

  docindex add      — add a document
  docindex search   — run a query
  docindex match    — explain why a document does or doesn't match
  docindex remove   — remove a document
  docindex dedupe   — drop documents with duplicate token sets
  docindex inspect   — print index statistics
  docindex serve    — read queries from stdin, one per line

Run 'docindex <command> --help' for details on each command.`,
}

// Execute is the CLI entrypoint.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(dedupeCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(serveCmd)

	rootCmd.PersistentFlags().String("config", "", "Config file (overrides index defaults)")
	rootCmd.PersistentFlags().String("corpus", "", "Path to a tab-separated corpus file to seed the index")
	rootCmd.PersistentFlags().Int("max-results", 0, "Override MaxResults (0 = use config/default)")
	rootCmd.PersistentFlags().Int("shard-count", 0, "Override ShardCount (0 = auto)")
	rootCmd.PersistentFlags().StringSlice("stop-words", nil, "Stop-words for this run")
	rootCmd.PersistentFlags().Bool("parallel", false, "Use the parallel execution policy")

	viper.BindPFlag("max_results", rootCmd.PersistentFlags().Lookup("max-results"))
	viper.BindPFlag("shard_count", rootCmd.PersistentFlags().Lookup("shard-count"))
}

// loadIndexConfig builds an IndexConfig from viper-bound flags, falling
// back to DefaultIndexConfig for anything left at zero.
func loadIndexConfig(cmd *cobra.Command) *types.IndexConfig {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		_ = viper.ReadInConfig() // best-effort; CLI demo only
	}

	cfg := types.DefaultIndexConfig()
	if v := viper.GetInt("max_results"); v > 0 {
		cfg.MaxResults = v
	}
	if v := viper.GetInt("shard_count"); v > 0 {
		cfg.ShardCount = v
	}
	if v := viper.GetFloat64("relevance_tolerance"); v > 0 {
		cfg.RelevanceTolerance = v
	}
	return cfg
}
