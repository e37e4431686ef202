package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "con-espressione",
	Short: "Expressive performance prediction codec",
	Long:  `Decodes precomputed Basis Mixer predictions into per-score-position performance parameters.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
