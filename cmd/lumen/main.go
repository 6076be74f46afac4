// Command lumen renders built-in scenes to PNG images.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lumen-engine/lumen/log"
)

var logger = log.New("lumen")

func main() {
	root := &cobra.Command{
		Use:           "lumen",
		Short:         "Monte Carlo path tracer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.Debug)
		}
	}

	root.AddCommand(newRenderCommand())

	if err := root.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
