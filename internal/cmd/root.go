package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"steamlet.dev/launcher/internal/configloader"
	"steamlet.dev/launcher/internal/folder"
	"steamlet.dev/launcher/internal/store"
)

var (
	configuration     configloader.Config
	configurationFile string
)

var rootCmd = &cobra.Command{
	Use:           "steamlet",
	Short:         "Run Steam games on the commandline intuitively via aliases or IDs",
	SilenceUsage:  true,
	SilenceErrors: true,
	Example: `  Play a Steam game using the Steam game ID:
      steamlet play -i 227300

  Add an alias with an associated ID:
      steamlet add ets2 227300

  Play a Steam game with an alias:
      steamlet play ets2

  You can also use spaces in your aliases with double-quotes:
      steamlet add "euro truck simulator 2" 227300

  Remove alias(es):
      steamlet remove ets2 "euro truck simulator 2" [...]`,
	PersistentPreRunE: func(command *cobra.Command, arguments []string) (err error) {
		if configuration, err = configloader.LoadConfiguration(folder.ApplicationName, configurationFile); err != nil {
			return
		}
		var level logrus.Level
		if level, err = logrus.ParseLevel(configuration.LogLevel); err != nil {
			return
		}
		logrus.SetLevel(level)
		return
	},
}

// Execute runs the root command. User errors are reported on standard output
// by the commands themselves and end with a zero status; only environment
// failures reach this error path.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configurationFile, "config", "", "configuration file path")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func dataDir() string {
	return folder.DataDir(configuration.DataDir)
}

// persist rewrites the backing file, reporting the given message on success.
// A failed rewrite is a warning for the user, not a process failure.
func persist(output io.Writer, aliasStore *store.Store, message string) {
	if err := aliasStore.Persist(); err != nil {
		logrus.Debug(err)
		fmt.Fprintln(output, "Error while writing to "+folder.DataFileName)
		return
	}
	fmt.Fprintln(output, message)
}
