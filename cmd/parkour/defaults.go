package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/parkour/internal/config"
)

var flagLocate bool

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default configuration file",
	Long: `Prints the built-in parkour.yaml. Redirect it to a file to customise
the world physics and the level catalog.

With --locate, prints the config file that would be loaded instead.

Examples:
  parkour defaults > ~/.parkour/parkour.yaml
  parkour defaults --locate`,
	Args: cobra.NoArgs,
	Run:  runDefaults,
}

func init() {
	defaultsCmd.Flags().BoolVar(&flagLocate, "locate", false, "Print the path of the active config file")
}

func runDefaults(_ *cobra.Command, _ []string) {
	if flagLocate {
		path := config.Locate(flagConfig)
		if path == "" {
			fmt.Println("(built-in defaults)")
			return
		}
		fmt.Println(path)
		return
	}

	if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
		fail("%v", err)
	}
}
