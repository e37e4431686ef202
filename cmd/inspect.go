package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stefan-balke/con-espressione/config"
	"github.com/stefan-balke/con-espressione/preds"
	"github.com/stefan-balke/con-espressione/scoremap"
)

var inspectDeadpan bool
var inspectConfigPath string

func init() {
	inspectCmd.Flags().BoolVar(&inspectDeadpan, "deadpan", false,
		"ignore the expressive columns and decode a deadpan performance")
	inspectCmd.Flags().StringVar(&inspectConfigPath, "config", "",
		"YAML file with post-processing options")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <preds-file>",
	Short: "Inspects a prediction file",
	Long:  `Inspects a prediction file`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inspect(args[0])
	},
}

func inspect(path string) {
	var cfg config.PostProcess
	if inspectConfigPath != "" {
		var err error
		cfg, err = config.LoadFile(inspectConfigPath)
		if err != nil {
			panic("Could not load config: " + err.Error())
		}
	}

	scoreMap, err := preds.Load(path, inspectDeadpan, cfg)
	if err != nil {
		panic("Could not load predictions: " + err.Error())
	}

	onsets := scoremap.SortedOnsets(scoreMap)
	fmt.Printf("%v score positions\n", len(onsets))
	for _, on := range onsets {
		p := scoreMap[on]
		fmt.Printf("t=%.3f ioi=%.3f pitches=%v velTrend=%.3f logBpr=%.3f\n",
			on, p.Ioi, p.Pitches, p.VelTrend, p.LogBpr)
	}
}
