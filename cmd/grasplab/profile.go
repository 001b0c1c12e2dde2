package main

import (
	"os"

	"github.com/phanxgames/grasp"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Print the default gesture profile as YAML",
	Long:  "Prints the shipped recognizer thresholds as YAML, a starting point for a --config file.",
	RunE:  runProfile,
}

func runProfile(cmd *cobra.Command, args []string) error {
	return grasp.DefaultProfile().Write(os.Stdout)
}
