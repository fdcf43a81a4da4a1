package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/splashlog/splash/internal/app"
)

var flagDetectSamples int

func init() {
	rootCmd.AddCommand(cmdDetect)
	cmdDetect.Flags().IntVarP(&flagDetectSamples, "samples", "n", 10, "number of trailing lines to sample")
}

var cmdDetect = &cobra.Command{
	Use:   "detect <path>",
	Short: "Score how confidently each plugin handles a file's format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Detect(os.Stdout, rootOptions(), args[0], flagDetectSamples)
	},
}
