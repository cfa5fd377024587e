package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"steamlet.dev/launcher/internal/store"
)

var setCmd = &cobra.Command{
	Use:     "set <alias> <steam_id>",
	Aliases: []string{"add"},
	Short:   "Adds or sets an alias to an associated Steam game ID",
	Args:    cobra.ExactArgs(2),
	RunE: func(command *cobra.Command, arguments []string) error {
		output := command.OutOrStdout()
		parsedID, err := strconv.ParseUint(arguments[1], 10, 32)
		if err != nil {
			fmt.Fprintln(output, "Steam ID must be a number")
			return nil
		}
		aliasStore, err := store.Open(dataDir())
		if err != nil {
			return err
		}
		key, err := aliasStore.Set(arguments[0], uint32(parsedID))
		if errors.Is(err, store.ErrEmptyAlias) {
			fmt.Fprintln(output, "Alias must not be empty")
			return nil
		}
		persist(output, aliasStore, fmt.Sprintf(
			"Alias '%s' successfully set to %d; total aliases = %d",
			key, parsedID, aliasStore.Len()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
