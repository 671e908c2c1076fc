package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "anchira",
	Short: "Browse, search and download galleries from Anchira.",
	Long: `Browse, search and download galleries from Anchira.

Provide a configuration file using one of the following methods:
1. Use the --config <path> or -c <path> flag.
2. Place a config.yaml file in the default user configuration directory (e.g., ~/.config/anchira/).
3. Place a config.yaml file a folder inside your home directory (e.g., ~/.anchira/).
4. Place a config.yaml file in the directory of the binary.`,
}

func init() {
	initRootFlags()
	initSearchFlags()
	initFavoritesFlags()
	initDownloadFlags()

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(favoritesCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(watchCmd)
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
