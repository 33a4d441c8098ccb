package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print statistics and document ids for a freshly built index",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := buildIndex(cmd, consoleLogger())
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		ids := idx.IterateIDs()

		if asJSON {
			out := map[string]interface{}{
				"stats": idx.Stats(),
				"ids":   ids,
			}
			enc, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(enc))
			return nil
		}

		for k, v := range idx.Stats() {
			fmt.Printf("%s\t%v\n", k, v)
		}
		fmt.Printf("ids\t%v\n", ids)
		return nil
	},
}

func init() {
	inspectCmd.Flags().Bool("json", false, "Output as JSON")
}
