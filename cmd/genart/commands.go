package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/gogpu/genart/internal/build"
	"github.com/gogpu/genart/internal/config"
)

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "genart version information",
		Long:  `Print the version information of genart`,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "genart v%s (Go version: %s)\n", build.Version, runtime.Version())
		},
	}
}

func defaultConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "defaultconfig",
		Short: "Print the default configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(config.Default())
		},
	}
}
