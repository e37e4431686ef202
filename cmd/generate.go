package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stefan-balke/con-espressione/preds"
)

var generateDeadpan bool

func init() {
	generateCmd.Flags().BoolVar(&generateDeadpan, "deadpan", false,
		"generate a performance without expression instead of a random one")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate <midi-file> <out-file>",
	Short: "Generates dummy predictions from a MIDI score",
	Long:  `Generates dummy predictions from a MIDI score`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := preds.GenerateDummy(args[0], args[1], generateDeadpan); err != nil {
			panic("Could not generate predictions: " + err.Error())
		}
		fmt.Printf("Wrote predictions to %v\n", args[1])
	},
}
