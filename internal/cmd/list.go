package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"steamlet.dev/launcher/internal/store"
)

// Width of the id column, expressed in tab stops of four characters.
const listIndentTabs = 4

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists all aliases and their associated Steam game IDs",
	Args:  cobra.NoArgs,
	RunE: func(command *cobra.Command, arguments []string) error {
		output := command.OutOrStdout()
		aliasStore, err := store.Open(dataDir())
		if err != nil {
			return err
		}
		fmt.Fprintf(output, "Path: %s\n\n", aliasStore.Path())
		for _, entry := range aliasStore.List() {
			fmt.Fprint(output, formatEntry(entry))
		}
		return nil
	},
}

// formatEntry aligns the id in a tab column next to the alias, moving it to
// its own indented line when the alias would overflow the column.
func formatEntry(entry store.Entry) string {
	indent := strings.Repeat("\t", listIndentTabs)
	if int(math.Round(float64(len(entry.Alias))/4.0)) > listIndentTabs {
		return fmt.Sprintf("%s\n%s%d\n", entry.Alias, indent, entry.GameID)
	}
	return fmt.Sprintf("%s%s%d\n", entry.Alias, indent, entry.GameID)
}

func init() {
	rootCmd.AddCommand(listCmd)
}
