package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"steamlet.dev/launcher/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Lists the most recently launched games, newest first",
	Args:  cobra.NoArgs,
	RunE: func(command *cobra.Command, arguments []string) error {
		output := command.OutOrStdout()
		launchHistory, err := history.Open(dataDir())
		if err != nil {
			return err
		}
		defer launchHistory.Close()
		launches, err := launchHistory.Recent(historyLimit)
		if err != nil {
			return err
		}
		for _, launch := range launches {
			name := launch.Alias
			if name == "" {
				name = "-"
			}
			fmt.Fprintf(output, "%s\t%s\t%d\n",
				launch.CreatedAt.Format(time.DateTime), name, launch.GameID)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum number of launches to show")
	rootCmd.AddCommand(historyCmd)
}
