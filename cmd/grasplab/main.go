// Grasplab is an interactive workbench for the grasp gesture recognizers.
//
// The root command opens an Ebitengine playground with one live pane per
// consumer (carousel, swipe list, pull feed, zoom box) plus a long-press menu
// over the whole window. Subcommands print the default tuning profile and
// replay gesture scripts headlessly.
package main

import (
	"os"

	"github.com/phanxgames/grasp"
	"github.com/spf13/cobra"
)

var (
	configPath string
	debugFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "grasplab",
	Short: "Interactive playground for the grasp gesture recognizers",
	RunE:  runPlayground,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML gesture profile")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "trace recognizer transitions to stderr")
	rootCmd.AddCommand(profileCmd, replayCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// activeProfile resolves the gesture profile: the --config file when given,
// the shipped defaults otherwise.
func activeProfile() (grasp.Profile, error) {
	if configPath == "" {
		return grasp.DefaultProfile(), nil
	}
	return grasp.LoadProfileFile(configPath)
}
