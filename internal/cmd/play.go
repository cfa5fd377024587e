package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"steamlet.dev/launcher/internal/history"
	"steamlet.dev/launcher/internal/launcher"
	"steamlet.dev/launcher/internal/store"
)

// gameDispatcher is swapped by tests to avoid spawning real processes.
var gameDispatcher interface {
	Launch(output io.Writer, gameID uint32) error
} = launcher.NewDispatcher(nil)

var useID bool

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Plays a Steam game via an alias or by a Steam game ID (with -i)",
	Args:  cobra.ExactArgs(1),
	RunE: func(command *cobra.Command, arguments []string) error {
		output := command.OutOrStdout()
		if useID {
			parsedID, err := strconv.ParseUint(arguments[0], 10, 32)
			if err != nil {
				fmt.Fprintln(output, "Steam ID must be a number")
				return nil
			}
			gameID := uint32(parsedID)
			fmt.Fprintf(output, "Starting application with ID '%d'\n", gameID)
			if err := gameDispatcher.Launch(output, gameID); err != nil {
				return err
			}
			recordLaunch("", gameID)
			return nil
		}

		aliasStore, err := store.Open(dataDir())
		if err != nil {
			return err
		}
		alias := store.Normalize(arguments[0])
		gameID, found := aliasStore.Lookup(alias)
		if !found {
			fmt.Fprintf(output, "Could not find alias '%s'\n", alias)
			return nil
		}
		fmt.Fprintf(output, "Starting %s (%d)\n", alias, gameID)
		if err := gameDispatcher.Launch(output, gameID); err != nil {
			return err
		}
		recordLaunch(alias, gameID)
		return nil
	},
}

// recordLaunch appends to the launch history. The game is already starting,
// so failures here are warnings and never change the command outcome.
func recordLaunch(alias string, gameID uint32) {
	launchHistory, err := history.Open(dataDir())
	if err != nil {
		logrus.Warn("Cannot open the launch history: ", err)
		return
	}
	defer launchHistory.Close()
	if err = launchHistory.Record(alias, gameID); err != nil {
		logrus.Warn("Cannot record the launch: ", err)
	}
}

func init() {
	playCmd.Flags().BoolVarP(&useID, "id", "i", false, "use a game ID instead of an alias")
	rootCmd.AddCommand(playCmd)
}
