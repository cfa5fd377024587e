package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"steamlet.dev/launcher/internal/store"
)

var removeCmd = &cobra.Command{
	Use:     "remove <aliases...>",
	Aliases: []string{"rm"},
	Short:   "Removes one or more aliases",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(command *cobra.Command, arguments []string) error {
		output := command.OutOrStdout()
		aliasStore, err := store.Open(dataDir())
		if err != nil {
			return err
		}
		removed, missing := aliasStore.Remove(arguments)
		for _, alias := range missing {
			fmt.Fprintf(output, "Alias '%s' not found\n", alias)
		}
		if len(removed) == 0 {
			fmt.Fprintf(output, "Nothing to be removed; total aliases = %d\n", aliasStore.Len())
			return nil
		}
		persist(output, aliasStore, fmt.Sprintf(
			"Aliases '%s' successfully removed; total aliases = %d",
			strings.Join(removed, ", "), aliasStore.Len()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
