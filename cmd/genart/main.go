// Command genart composites random shapes into images.
//
// Usage:
//
//	genart -n 4 -W 1000 -H 1000 -o output
//	genart --config genart.yaml --output.contact_sheet
//	genart defaultconfig > genart.json
//	genart version
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := rootCommand()
	root.AddCommand(versionCommand(), defaultConfigCommand())
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "genart",
		Short:         "Generate images from random boxes, circles and slices",
		Long:          `Generate a batch of images, each layered with random boxes, circles and pie slices, and write them to the output directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, _ := cmd.Flags().GetString("config")
			return run(cmd, configFile, cmd.ErrOrStderr())
		},
	}
	defineFlags(cmd)
	return cmd
}
